package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rky1/sweet_shop/internal/models"
	"github.com/Rky1/sweet_shop/internal/repo"
	"github.com/Rky1/sweet_shop/internal/transport"
)

const maxDescriptionLen = 500

type CatalogService struct {
	Repo *repo.GormRepo
}

func validateSweetFields(name, category string, price float64, quantity int64, description string) []string {
	var problems []string
	if name == "" {
		problems = append(problems, "Sweet name is required")
	} else if len(name) < 2 {
		problems = append(problems, "Sweet name must be at least 2 characters long")
	}
	if category == "" {
		problems = append(problems, "Category is required")
	} else if !models.ValidCategory(category) {
		problems = append(problems, "Invalid category")
	}
	if price < 0 {
		problems = append(problems, "Price cannot be negative")
	}
	if quantity < 0 {
		problems = append(problems, "Quantity cannot be negative")
	}
	if len(description) > maxDescriptionLen {
		problems = append(problems, fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLen))
	}
	return problems
}

func (s *CatalogService) Create(ctx context.Context, req transport.CreateSweetRequest) (*models.Sweet, error) {
	var problems []string
	if req.Price == nil {
		problems = append(problems, "Price is required")
	}
	quantity := int64(0)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	price := float64(0)
	if req.Price != nil {
		price = *req.Price
	}
	problems = append(problems, validateSweetFields(req.Name, req.Category, price, quantity, req.Description)...)
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	sweet := &models.Sweet{
		Name:        req.Name,
		Category:    req.Category,
		Price:       price,
		Quantity:    uint(quantity),
		Description: req.Description,
	}
	return s.Repo.CreateSweet(ctx, sweet)
}

func (s *CatalogService) List(ctx context.Context) ([]models.Sweet, error) {
	return s.Repo.ListSweets(ctx)
}

func (s *CatalogService) Search(ctx context.Context, q transport.SearchSweetsQuery) ([]models.Sweet, error) {
	return s.Repo.SearchSweets(ctx, q)
}

func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*models.Sweet, error) {
	sweet, err := s.Repo.SweetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sweet, nil
}

// Update overwrites exactly the fields whose keys were present in the
// payload. A present-but-zero value (quantity 0, empty description)
// overwrites; an absent key keeps the stored value.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req transport.UpdateSweetRequest) (*models.Sweet, error) {
	current, err := s.Repo.SweetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	name := current.Name
	if req.Name != nil {
		name = *req.Name
	}
	category := current.Category
	if req.Category != nil {
		category = *req.Category
	}
	price := current.Price
	if req.Price != nil {
		price = *req.Price
	}
	quantity := int64(current.Quantity)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	description := current.Description
	if req.Description != nil {
		description = *req.Description
	}

	if problems := validateSweetFields(name, category, price, quantity, description); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	sweet, err := s.Repo.PatchSweet(ctx, req, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sweet, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteSweet(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
