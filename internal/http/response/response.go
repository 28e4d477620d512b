// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков: конверт для статусных сообщений, карту
// ошибок валидации по полям и структурированное описание ошибки 404.
package response

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Response описывает структуру JSON‑ответа для статусных сообщений.
// Поле Status — статус запроса ("OK" или "Error").
// Поле Error — текст ошибки (опционально, при неуспехе).
// Поле Data — данные ответа (опционально, при успехе).
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

// ProblemDetails — структурированное описание ошибки в стиле RFC 7807,
// возвращается при обращении к несуществующему товару.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// OKWithData возвращает успешный Response с переданными данными.
func OKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// NotFoundProblem формирует ProblemDetails для отсутствующего ресурса.
// Instance — путь запроса, по которому ресурс не был найден.
func NotFoundProblem(detail, instance string) ProblemDetails {
	return ProblemDetails{
		Type:     "https://tools.ietf.org/html/rfc9110#section-15.5.5",
		Title:    "Not Found",
		Status:   404,
		Detail:   detail,
		Instance: instance,
	}
}

// ValidationErrors формирует карту ошибок валидации: имя поля -> список
// человеко‑читаемых сообщений. Проверяются все поля, нарушения не
// обрываются на первом, поэтому клиент получает полный список за один ответ.
func ValidationErrors(errs validator.ValidationErrors) map[string][]string {
	result := make(map[string][]string)

	for _, err := range errs {
		var msg string
		switch err.ActualTag() {
		case "required":
			msg = fmt.Sprintf("field %s is required", err.Field())
		case "max":
			msg = fmt.Sprintf("field %s cannot exceed %s characters", err.Field(), err.Param())
		case "min":
			msg = fmt.Sprintf("field %s must be at least %s characters long", err.Field(), err.Param())
		case "gt":
			msg = fmt.Sprintf("field %s must be a positive value", err.Field())
		case "gte":
			msg = fmt.Sprintf("field %s cannot be negative", err.Field())
		case "lte":
			msg = fmt.Sprintf("field %s must be %s or less", err.Field(), err.Param())
		case "email":
			msg = fmt.Sprintf("field %s must be a valid email address", err.Field())
		default:
			msg = fmt.Sprintf("field %s is not valid", err.Field())
		}
		result[err.Field()] = append(result[err.Field()], msg)
	}
	return result
}
