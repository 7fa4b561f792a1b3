package domain

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrDishNotFound   = errors.New("dish not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrNoItems        = errors.New("order must have items")
)
