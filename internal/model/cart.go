package model

import "github.com/shopspring/decimal"

// CartItem is one line of a checkout request. Price accepts a JSON number or a
// numeric string, since catalog prices are stored as text.
type CartItem struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
	Qty   int64           `json:"qty" validate:"gte=1"`
}
