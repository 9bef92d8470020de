package models

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryGlasses    Category = "glasses"
	CategorySunglasses Category = "sunglasses"
	CategoryLenses     Category = "lenses"
)

type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Brand          string            `json:"brand"`
	Price          decimal.Decimal   `json:"price"`
	OriginalPrice  decimal.Decimal   `json:"original_price"`
	Image          string            `json:"image"`
	Category       Category          `json:"category"`
	FrameShape     string            `json:"frame_shape"`
	Color          string            `json:"color"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Description    string            `json:"description"`
	Specifications map[string]string `json:"specifications"`
	IsNew          bool              `json:"is_new"`
	IsBestseller   bool              `json:"is_bestseller"`
}
