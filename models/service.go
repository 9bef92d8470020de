package models

import "github.com/shopspring/decimal"

// Service is a bookable in-store service (eye exam, fitting, ...).
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Duration    string          `json:"duration"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}
