package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atquya/intershop/internal/models"
	"github.com/atquya/intershop/internal/repo"
)

var ErrNotFound = errors.New("not found")

// CartService orchestrates mutations of the single shared cart against
// the product and cart-item stores.
type CartService struct {
	Repo *repo.GormRepo
}

// AddProductToCart resolves the product and either increments the
// existing cart line for it or creates a new one. The merge lookup is
// keyed on the resolved product's id. Runs in one transaction, so a
// failed lookup leaves the store untouched.
func (s *CartService) AddProductToCart(ctx context.Context, productID uint, quantity int) (*models.CartItem, error) {
	var out *models.CartItem
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		product, err := tx.GetProduct(ctx, productID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		item, err := tx.GetCartItemByProduct(ctx, product.ID)
		switch {
		case err == nil:
			item.Quantity += quantity
			if err := tx.SaveCartItem(ctx, item); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = &models.CartItem{ProductID: product.ID, Quantity: quantity}
			if err := tx.CreateCartItem(ctx, item); err != nil {
				return err
			}
		default:
			return err
		}

		out = item
		return nil
	})
	return out, err
}

func (s *CartService) RemoveProductFromCart(ctx context.Context, cartItemID uint) error {
	return s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		item, err := tx.GetCartItem(ctx, cartItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart item %d: %w", cartItemID, ErrNotFound)
		}
		if err != nil {
			return err
		}
		return tx.DeleteCartItem(ctx, item)
	})
}

// ChangeQuantity overwrites the quantity of a cart line. No lower
// bound: zero and negative values are stored as given.
func (s *CartService) ChangeQuantity(ctx context.Context, cartItemID uint, newQuantity int) (*models.CartItem, error) {
	var out *models.CartItem
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		item, err := tx.GetCartItem(ctx, cartItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart item %d: %w", cartItemID, ErrNotFound)
		}
		if err != nil {
			return err
		}
		item.Quantity = newQuantity
		if err := tx.SaveCartItem(ctx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	return out, err
}

func (s *CartService) GetShoppingCart(ctx context.Context) ([]models.CartItem, error) {
	return s.Repo.GetCartItems(ctx)
}

// AddCartItem saves a cart line directly, without the merge lookup.
// Backs the raw POST /api/cart/items/add endpoint.
func (s *CartService) AddCartItem(ctx context.Context, productID uint, quantity int) (*models.CartItem, error) {
	item := models.CartItem{ProductID: productID, Quantity: quantity}
	if err := s.Repo.CreateCartItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
