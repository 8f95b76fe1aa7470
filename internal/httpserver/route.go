package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/cart/add", d.CartHandler.AddProductToCart)
	api.DELETE("/cart/remove/:cartItemId", d.CartHandler.RemoveProductFromCart)
	api.PUT("/cart/quantity/:cartItemId", d.CartHandler.ChangeQuantity)
	api.GET("/cart/items", d.CartHandler.GetShoppingCart)
	api.POST("/cart/items/add", d.CartHandler.AddCartItem)

	api.POST("/products/add", d.ProductHandler.CreateProduct)
	api.GET("/products", d.ProductHandler.GetProducts)
	api.GET("/products/:id", d.ProductHandler.GetProduct)
	api.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	api.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
}
