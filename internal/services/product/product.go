// Package services содержит бизнес-логику для управления товарами и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/stock-api/internal/models"
)

// ProductRepository определяет методы для работы с товарами в хранилище.
type ProductRepository interface {
	// CreateProduct добавляет новый товар и возвращает его ID.
	CreateProduct(ctx context.Context, product models.Product) (int, error)
	// GetProduct возвращает товар по ID.
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	// ListProducts возвращает все товары в порядке создания.
	ListProducts(ctx context.Context) ([]*models.Product, error)
	// UpdateProduct целиком заменяет бизнес-поля товара по ID.
	UpdateProduct(ctx context.Context, id int, product models.Product, updatedAt time.Time) error
	// DeleteProduct удаляет товар по ID.
	DeleteProduct(ctx context.Context, id int) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// ProductService реализует бизнес-логику работы с товарами, включая кеширование.
//
// Конкурентные изменения одного товара не сериализуются на уровне сервиса:
// атомарность одиночных операций обеспечивает PostgreSQL, при одновременных
// обновлениях побеждает последняя запись.
type ProductService struct {
	repo  ProductRepository
	cache Cache
	log   *slog.Logger
}

// NewProductService создает новый экземпляр ProductService.
func NewProductService(repo ProductRepository, cache Cache, log *slog.Logger) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый товар и возвращает его вместе с назначенным ID.
// Дата создания проставляется сервером, дата обновления остается пустой.
func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CreatedDate: time.Now().UTC(),
	}

	id, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	s.log.Info("created new product", slog.Int("id", id))

	cacheKey := fmt.Sprintf("product:%d", id)
	if err := s.cache.Set(cacheKey, &product, time.Hour); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return &product, nil
}

// Read возвращает товар по ID, используя кеш или репозиторий.
func (s *ProductService) Read(ctx context.Context, id int) (*models.Product, error) {
	var result *models.Product
	cacheKey := fmt.Sprintf("product:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found && err == nil {
		return result, nil
	}
	result, err = s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает все товары.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	return s.repo.ListProducts(ctx)
}

// Update целиком заменяет бизнес-поля товара и проставляет дату последнего
// обновления. ID и дата создания не меняются.
func (s *ProductService) Update(ctx context.Context, id int, req models.ProductRequest) error {
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	if err := s.repo.UpdateProduct(ctx, id, product, time.Now().UTC()); err != nil {
		return err
	}
	s.log.Info("updated product in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("product:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return nil
}

// Remove удаляет товар по ID и инвалидирует кеш.
func (s *ProductService) Remove(ctx context.Context, id int) error {
	cacheKey := fmt.Sprintf("product:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return s.repo.DeleteProduct(ctx, id)
}
