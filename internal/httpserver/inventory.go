package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rky1/sweet_shop/internal/logging"
	"github.com/Rky1/sweet_shop/internal/mykafka"
	"github.com/Rky1/sweet_shop/internal/search"
	"github.com/Rky1/sweet_shop/internal/service"
	"github.com/Rky1/sweet_shop/internal/transport"

	authmw "github.com/Rky1/sweet_shop/internal/middleware/auth"
)

type InventoryHTTP struct {
	Svc      *service.InventoryService
	Producer *mykafka.Producer
	Indexer  *search.Indexer
}

func (h *InventoryHTTP) Purchase(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.purchase")

	id, err := parseSweetID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Sweet not found")
	}

	var req transport.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("purchase_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	// Omitted quantity means buying a single item.
	quantity := int64(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	sweet, err := h.Svc.Purchase(ctx, id, quantity)
	if err != nil {
		var ve *service.ValidationError
		var ise *service.InsufficientStockError
		switch {
		case errors.As(err, &ve):
			return respondError(c, http.StatusBadRequest, "Please provide a valid quantity")
		case errors.Is(err, service.ErrNotFound):
			return respondError(c, http.StatusNotFound, "Sweet not found")
		case errors.Is(err, service.ErrOutOfStock):
			return respondError(c, http.StatusBadRequest, "This sweet is out of stock")
		case errors.As(err, &ise):
			return respondError(c, http.StatusBadRequest,
				fmt.Sprintf("insufficient stock. Only %d items available", ise.Available))
		default:
			l.Error("purchase_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Server error while purchasing sweet")
		}
	}

	event := map[string]any{
		"type":     "sweet_purchased",
		"sweetID":  sweet.ID.String(),
		"userID":   authmw.UserIDFromContext(c),
		"quantity": quantity,
	}
	publishInventoryEvent(c, h.Producer, event)
	reindexSweet(c, h.Indexer, sweet)

	return respondDataMessage(c, http.StatusOK, sweet,
		fmt.Sprintf("%d %s(s) purchased successfully", quantity, sweet.Name))
}

func (h *InventoryHTTP) Restock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "inventory.restock")

	id, err := parseSweetID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Sweet not found")
	}

	var req transport.RestockRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("restock_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Quantity == nil {
		return respondError(c, http.StatusBadRequest, "Please provide a valid quantity to restock")
	}

	sweet, err := h.Svc.Restock(ctx, id, *req.Quantity)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			return respondError(c, http.StatusBadRequest, "Please provide a valid quantity to restock")
		case errors.Is(err, service.ErrNotFound):
			return respondError(c, http.StatusNotFound, "Sweet not found")
		default:
			l.Error("restock_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Server error while restocking sweet")
		}
	}

	event := map[string]any{
		"type":     "sweet_restocked",
		"sweetID":  sweet.ID.String(),
		"userID":   authmw.UserIDFromContext(c),
		"quantity": *req.Quantity,
	}
	publishInventoryEvent(c, h.Producer, event)
	reindexSweet(c, h.Indexer, sweet)

	return respondDataMessage(c, http.StatusOK, sweet,
		fmt.Sprintf("%s restocked successfully with %d items", sweet.Name, *req.Quantity))
}
