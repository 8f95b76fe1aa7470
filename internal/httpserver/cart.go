package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atquya/intershop/internal/logging"
	"github.com/atquya/intershop/internal/mykafka"
	"github.com/atquya/intershop/internal/service"
	"github.com/atquya/intershop/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "cart_events", fmt.Sprint(event["cartItemID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *CartHTTP) AddProductToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	productID, err := strconv.Atoi(c.QueryParam("productID"))
	if err != nil || productID < 0 {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "invalid productID")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid productID")
	}
	quantity, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "invalid quantity")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	item, err := h.Svc.AddProductToCart(ctx, uint(productID), quantity)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("add_to_cart_failed", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("add_to_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product to cart")
	}

	h.publish(c, map[string]any{
		"type":       "cart_item_added",
		"cartItemID": item.ID,
		"productID":  item.ProductID,
		"quantity":   item.Quantity,
	})

	l.Info("add_to_cart_success", "cart_item_id", item.ID, "quantity", item.Quantity)
	return c.NoContent(http.StatusOK)
}

func (h *CartHTTP) RemoveProductFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	id, err := strconv.Atoi(c.Param("cartItemId"))
	if err != nil || id < 0 {
		l.Warn("remove_from_cart_failed", "status", 400, "reason", "invalid id")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.RemoveProductFromCart(ctx, uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_failed", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		l.Error("remove_from_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot remove cart item")
	}

	h.publish(c, map[string]any{
		"type":       "cart_item_removed",
		"cartItemID": id,
	})

	l.Info("remove_from_cart_success", "cart_item_id", id)
	return c.NoContent(http.StatusOK)
}

func (h *CartHTTP) ChangeQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.quantity")

	id, err := strconv.Atoi(c.Param("cartItemId"))
	if err != nil || id < 0 {
		l.Warn("change_quantity_failed", "status", 400, "reason", "invalid id")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	newQuantity, err := strconv.Atoi(c.QueryParam("newQuantity"))
	if err != nil {
		l.Warn("change_quantity_failed", "status", 400, "reason", "invalid newQuantity")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid newQuantity")
	}

	item, err := h.Svc.ChangeQuantity(ctx, uint(id), newQuantity)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("change_quantity_failed", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		l.Error("change_quantity_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot change quantity")
	}

	h.publish(c, map[string]any{
		"type":       "cart_quantity_changed",
		"cartItemID": item.ID,
		"quantity":   item.Quantity,
	})

	l.Info("change_quantity_success", "cart_item_id", item.ID, "quantity", item.Quantity)
	return c.NoContent(http.StatusOK)
}

func (h *CartHTTP) GetShoppingCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.items")

	items, err := h.Svc.GetShoppingCart(ctx)
	if err != nil {
		l.Error("get_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read cart")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.items.add")

	var req transport.CreateCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_cart_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddCartItem(ctx, req.Product.ID, req.Quantity)
	if err != nil {
		l.Error("add_cart_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create cart item")
	}

	h.publish(c, map[string]any{
		"type":       "cart_item_added",
		"cartItemID": item.ID,
		"productID":  item.ProductID,
		"quantity":   item.Quantity,
	})

	l.Info("add_cart_item_success", "cart_item_id", item.ID)
	return c.JSON(http.StatusOK, item)
}
