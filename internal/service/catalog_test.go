package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGetProduct(t *testing.T) {
	r := initTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	prod := createProduct(t, r, "Widget", 9.99)
	require.NotZero(t, prod.ID)

	got, err := svc.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, "Widget", got.Name)
	require.Equal(t, 9.99, got.Price)
}

func TestGetProductUnknownID(t *testing.T) {
	r := initTestRepo(t)
	svc := &CatalogService{Repo: r}

	_, err := svc.GetProduct(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetProductsInsertionOrder(t *testing.T) {
	r := initTestRepo(t)
	svc := &CatalogService{Repo: r}

	createProduct(t, r, "Widget", 9.99)
	createProduct(t, r, "Gadget", 19.99)

	items, err := svc.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Widget", items[0].Name)
	require.Equal(t, "Gadget", items[1].Name)
}

func TestUpdateProductMergesNameAndPrice(t *testing.T) {
	r := initTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	prod := createProduct(t, r, "Widget", 9.99)

	updated, err := svc.UpdateProduct(ctx, prod.ID, "Gadget", 19.99)
	require.NoError(t, err)
	require.Equal(t, prod.ID, updated.ID)
	require.Equal(t, "Gadget", updated.Name)
	require.Equal(t, 19.99, updated.Price)
}

func TestUpdateProductUnknownIDCreatesNothing(t *testing.T) {
	r := initTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, 42, "Gadget", 19.99)
	require.ErrorIs(t, err, ErrNotFound)

	items, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 0)
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	r := initTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	prod := createProduct(t, r, "Widget", 9.99)

	require.NoError(t, svc.DeleteProduct(ctx, prod.ID))
	require.NoError(t, svc.DeleteProduct(ctx, prod.ID))

	items, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 0)
}

func TestDeleteProductLeavesCartLineDangling(t *testing.T) {
	r := initTestRepo(t)
	catalog := &CatalogService{Repo: r}
	cart := &CartService{Repo: r}
	ctx := context.Background()

	prod := createProduct(t, r, "Widget", 9.99)
	_, err := cart.AddProductToCart(ctx, prod.ID, 2)
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(ctx, prod.ID))

	items, err := cart.GetShoppingCart(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, prod.ID, items[0].ProductID)
	require.Zero(t, items[0].Product.ID)
}
