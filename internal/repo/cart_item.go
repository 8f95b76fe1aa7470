package repo

import (
	"context"

	"github.com/atquya/intershop/internal/models"
)

func (r *GormRepo) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	if err := r.DB.WithContext(ctx).Omit("Product").Create(item).Error; err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Preload("Product").First(item, item.ID).Error
}

func (r *GormRepo) SaveCartItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Omit("Product").Save(item).Error
}

func (r *GormRepo) GetCartItem(ctx context.Context, id uint) (*models.CartItem, error) {
	item := models.CartItem{}
	if err := r.DB.WithContext(ctx).Preload("Product").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) GetCartItems(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Preload("Product").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetCartItemByProduct finds the cart line for a product so repeated
// adds merge into it. The lookup is keyed on the product id.
func (r *GormRepo) GetCartItemByProduct(ctx context.Context, productID uint) (*models.CartItem, error) {
	item := models.CartItem{}
	if err := r.DB.WithContext(ctx).Preload("Product").
		Where("product_id = ?", productID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Delete(item).Error
}
