package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rky1/sweet_shop/internal/models"
	"github.com/Rky1/sweet_shop/internal/transport"
)

func (r *GormRepo) CreateSweet(ctx context.Context, sweet *models.Sweet) (*models.Sweet, error) {
	if err := r.DB.WithContext(ctx).Create(sweet).Error; err != nil {
		return nil, err
	}
	return sweet, nil
}

func (r *GormRepo) SweetByID(ctx context.Context, id uuid.UUID) (*models.Sweet, error) {
	var sweet models.Sweet
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&sweet).Error; err != nil {
		return nil, err
	}
	return &sweet, nil
}

func (r *GormRepo) ListSweets(ctx context.Context) ([]models.Sweet, error) {
	var items []models.Sweet
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchSweets applies the provided filters conjunctively; a nil filter
// imposes no constraint. Name matching is a case-insensitive substring
// match, price bounds are inclusive.
func (r *GormRepo) SearchSweets(ctx context.Context, q transport.SearchSweetsQuery) ([]models.Sweet, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Sweet{})

	if q.Name != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Name)+"%")
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}

	var items []models.Sweet
	if err := tx.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) PatchSweet(ctx context.Context, req transport.UpdateSweetRequest, id uuid.UUID) (*models.Sweet, error) {
	var sweet models.Sweet
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&sweet).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		sweet.Name = *req.Name
	}
	if req.Category != nil {
		sweet.Category = *req.Category
	}
	if req.Price != nil {
		sweet.Price = *req.Price
	}
	if req.Quantity != nil {
		sweet.Quantity = uint(*req.Quantity)
	}
	if req.Description != nil {
		sweet.Description = *req.Description
	}

	if err := r.DB.WithContext(ctx).Save(&sweet).Error; err != nil {
		return nil, err
	}

	return &sweet, nil
}

func (r *GormRepo) DeleteSweet(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Sweet{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementQuantity takes qty units off the sweet's stock in a single
// conditional UPDATE. The stock check happens inside the statement, so
// two concurrent purchases can never both consume the same units. The
// false return means no row matched (missing sweet or not enough stock);
// the caller decides which.
func (r *GormRepo) DecrementQuantity(ctx context.Context, id uuid.UUID, qty uint) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Sweet{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Updates(map[string]any{"quantity": gorm.Expr("quantity - ?", qty)})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IncrementQuantity adds qty units of stock. False means the sweet does
// not exist.
func (r *GormRepo) IncrementQuantity(ctx context.Context, id uuid.UUID, qty uint) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Sweet{}).
		Where("id = ?", id).
		Updates(map[string]any{"quantity": gorm.Expr("quantity + ?", qty)})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
