package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrOutOfStock         = errors.New("out of stock")
)

// ValidationError carries every violated field rule, not just the
// first one.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

func validationErr(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

// InsufficientStockError reports how much stock is actually left so the
// client can tell the buyer.
type InsufficientStockError struct {
	Available uint
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock. Only %d items available", e.Available)
}
