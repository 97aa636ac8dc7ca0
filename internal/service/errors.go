package service

import "errors"

var (
	ErrInvalidProductID = errors.New("one or more product ids are invalid")
	ErrProductNotFound  = errors.New("one or more products not found")
	ErrEmptyOrder       = errors.New("order has no items")
)
