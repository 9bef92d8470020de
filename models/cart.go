package models

// CartItem pairs a catalog product with a purchase quantity. The Product is
// the snapshot that was active when the line was first added; a later add of
// the same id only bumps Quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
