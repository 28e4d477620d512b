// Package stockapi предоставляет маршруты приложения.
package stockapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/stock-api/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/stock-api/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/stock-api/internal/http/handlers/product/create"
	"github.com/magabrotheeeer/stock-api/internal/http/handlers/product/list"
	"github.com/magabrotheeeer/stock-api/internal/http/handlers/product/read"
	"github.com/magabrotheeeer/stock-api/internal/http/handlers/product/remove"
	"github.com/magabrotheeeer/stock-api/internal/http/handlers/product/update"
	"github.com/magabrotheeeer/stock-api/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/stock-api/internal/services/auth"
	productservice "github.com/magabrotheeeer/stock-api/internal/services/product"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Чтение товаров открыто, изменяющие операции защищены JWT middleware.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, productService *productservice.ProductService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", register.New(logger, authService).ServeHTTP)
			r.Post("/login", login.New(logger, authService).ServeHTTP)
		})

		r.Route("/products", func(r chi.Router) {
			// Открытые конечные точки
			r.Get("/", list.New(logger, productService).ServeHTTP)
			r.Get("/{id}", read.New(logger, productService).ServeHTTP)

			// Группа с JWT аутентификацией
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.JWTMiddleware(authService, logger))
				r.Post("/", create.New(logger, productService).ServeHTTP)
				r.Put("/{id}", update.New(logger, productService).ServeHTTP)
				r.Delete("/{id}", remove.New(logger, productService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
