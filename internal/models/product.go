// Package models содержит доменные структуры, описывающие товар,
// а также вспомогательные типы для работы с данными из внешних источников (JSON-запросы и ответы).
package models

import "time"

// Product представляет собой основную модель товара,
// используемую в бизнес-логике и хранилище.
// Поле LastUpdatedDate может быть nil — это означает, что товар
// ни разу не обновлялся после создания.
type Product struct {
	ID              int        // Идентификатор, выдается сервером при создании
	Name            string     // Название товара
	Description     string     // Описание товара, может быть пустым
	Price           float64    // Цена товара
	Stock           int        // Количество на складе
	CreatedDate     time.Time  // Дата создания записи, неизменна
	LastUpdatedDate *time.Time // Дата последнего обновления
}

// ProductRequest используется для приёма данных из JSON-запроса
// на создание или полное обновление товара. Идентификатор и даты
// клиент не передает, их назначает сервер.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`      // Название (обязательно, до 100 символов)
	Description string  `json:"description" validate:"max=500"`        // Описание (до 500 символов)
	Price       float64 `json:"price" validate:"required,gt=0,lte=999999.99"` // Цена (0 < price <= 999999.99)
	Stock       int     `json:"stock" validate:"gte=0"`                // Остаток (>= 0)
}

// ProductView - представление товара, возвращаемое клиенту.
type ProductView struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	Stock           int        `json:"stock"`
	CreatedDate     time.Time  `json:"createdDate"`
	LastUpdatedDate *time.Time `json:"lastUpdatedDate"`
}

// ViewFromProduct конвертирует доменную модель в представление для ответа.
func ViewFromProduct(p *Product) ProductView {
	return ProductView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Stock:           p.Stock,
		CreatedDate:     p.CreatedDate,
		LastUpdatedDate: p.LastUpdatedDate,
	}
}
