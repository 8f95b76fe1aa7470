package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atquya/intershop/internal/models"
	"github.com/atquya/intershop/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	return s.Repo.CreateProduct(ctx, product)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return product, err
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

// UpdateProduct merges name and price from req onto the stored record.
// The id never changes; a missing id creates nothing.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, name string, price float64) (*models.Product, error) {
	var out *models.Product
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		product, err := tx.GetProduct(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return err
		}
		product.Name = name
		product.Price = price
		if err := tx.SaveProduct(ctx, product); err != nil {
			return err
		}
		out = product
		return nil
	})
	return out, err
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.Repo.DeleteProduct(ctx, id)
}
