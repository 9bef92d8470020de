package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the confirmation produced when a checkout session is placed.
// Orders are not persisted anywhere; the confirmation payload is all there is.
type Order struct {
	Ref      string          `json:"ref"`
	Items    []CartItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}
