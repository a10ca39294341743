package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rky1/sweet_shop/internal/logging"
	"github.com/Rky1/sweet_shop/internal/models"
	"github.com/Rky1/sweet_shop/internal/repo"
)

// InventoryService owns the two stock-mutating operations. Quantity is
// only ever changed through conditional single-statement updates in the
// repo, never through load-modify-save, so concurrent purchases cannot
// oversell a sweet.
type InventoryService struct {
	Repo *repo.GormRepo
}

func (s *InventoryService) Purchase(ctx context.Context, id uuid.UUID, quantity int64) (*models.Sweet, error) {
	l := logging.FromContext(ctx).With("svc", "inventory.purchase", "sweetID", id)

	if quantity < 1 {
		return nil, validationErr("Please provide a valid quantity")
	}

	ok, err := s.Repo.DecrementQuantity(ctx, id, uint(quantity))
	if err != nil {
		l.Error("purchase_error", "status", 500, "error", err)
		return nil, err
	}
	if ok {
		sweet, err := s.Repo.SweetByID(ctx, id)
		if err != nil {
			l.Error("purchase_error", "status", 500, "reason", "reload after decrement", "error", err)
			return nil, err
		}
		l.Info("purchase_success", "quantity", quantity, "remaining", sweet.Quantity)
		return sweet, nil
	}

	// The conditional update matched nothing; read the row once more to
	// tell the caller why. Exhausted stock gets its own message so the
	// buyer sees more than a generic shortage.
	sweet, err := s.Repo.SweetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		l.Error("purchase_error", "status", 500, "error", err)
		return nil, err
	}
	if sweet.Quantity == 0 {
		l.Warn("purchase_failed", "status", 400, "reason", "out of stock")
		return nil, ErrOutOfStock
	}
	l.Warn("purchase_failed", "status", 400, "reason", "insufficient stock", "available", sweet.Quantity)
	return nil, &InsufficientStockError{Available: sweet.Quantity}
}

func (s *InventoryService) Restock(ctx context.Context, id uuid.UUID, quantity int64) (*models.Sweet, error) {
	l := logging.FromContext(ctx).With("svc", "inventory.restock", "sweetID", id)

	if quantity < 1 {
		return nil, validationErr("Please provide a valid quantity to restock")
	}

	ok, err := s.Repo.IncrementQuantity(ctx, id, uint(quantity))
	if err != nil {
		l.Error("restock_error", "status", 500, "error", err)
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	sweet, err := s.Repo.SweetByID(ctx, id)
	if err != nil {
		l.Error("restock_error", "status", 500, "reason", "reload after increment", "error", err)
		return nil, err
	}
	l.Info("restock_success", "quantity", quantity, "total", sweet.Quantity)
	return sweet, nil
}
