package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/stock-api/internal/models"
)

// CreateProduct сохраняет новый товар и возвращает назначенный ему ID.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (int, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int
	query := `INSERT INTO products (name, description, price, stock, created_date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		product.CreatedDate).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// GetProduct возвращает товар по его ID или ErrProductNotFound.
func (s *Storage) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	const op = "storage.GetProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, stock, created_date, last_updated_date
			  FROM products
			  WHERE id = $1`
	p := &models.Product{}
	row := s.DB.QueryRowContext(ctx, query, id)

	var lastUpdated sql.NullTime
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.CreatedDate, &lastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if lastUpdated.Valid {
		p.LastUpdatedDate = &lastUpdated.Time
	}
	return p, nil
}

// ListProducts возвращает все товары в порядке их создания.
func (s *Storage) ListProducts(ctx context.Context) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, stock, created_date, last_updated_date
			  FROM products
			  ORDER BY id;`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var p models.Product
		var lastUpdated sql.NullTime
		if err = rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.CreatedDate, &lastUpdated); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if lastUpdated.Valid {
			p.LastUpdatedDate = &lastUpdated.Time
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateProduct целиком заменяет бизнес-поля товара и проставляет дату
// последнего обновления. ID и дата создания не меняются.
//
// Возвращает ErrProductNotFound, если товара с таким ID нет.
func (s *Storage) UpdateProduct(ctx context.Context, id int, product models.Product, updatedAt time.Time) error {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE products
			  SET name = $1,
			      description = $2,
			      price = $3,
			      stock = $4,
			      last_updated_date = $5
			  WHERE id = $6`
	res, err := s.DB.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		updatedAt, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}
	return nil
}

// DeleteProduct удаляет товар по ID.
//
// Возвращает ErrProductNotFound, если товара с таким ID нет.
func (s *Storage) DeleteProduct(ctx context.Context, id int) error {
	const op = "storage.DeleteProduct"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM products WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}
	return nil
}
