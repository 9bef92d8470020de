// Package pricing computes the order summary numbers (subtotal, discount,
// shipping, tax, total) from a cart. Everything is decimal end to end;
// rounding to two places happens only when a breakdown is serialized.
package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Kirtan82004/VisionCare/models"
)

// ErrInvalidPromo is returned when a promo code is not recognized.
var ErrInvalidPromo = errors.New("invalid promo code")

// PromoWelcome is the only promo code currently honored (10% off).
const PromoWelcome = "WELCOME10"

var (
	freeShippingOver = decimal.NewFromInt(100)
	flatShippingFee  = decimal.NewFromInt(15)
	promoRate        = decimal.NewFromFloat(0.10)
	insuranceRate    = decimal.NewFromFloat(0.20)
	taxRate          = decimal.NewFromFloat(0.08)
)

// Breakdown is a derived order summary. It is a pure function of the cart
// plus the active discount; it is never stored.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Round returns the breakdown with every figure rounded to cents, for the
// JSON edge. Internal math stays unrounded.
func (b Breakdown) Round() Breakdown {
	return Breakdown{
		Subtotal: b.Subtotal.Round(2),
		Discount: b.Discount.Round(2),
		Shipping: b.Shipping.Round(2),
		Tax:      b.Tax.Round(2),
		Total:    b.Total.Round(2),
	}
}

// Subtotal sums price×quantity over the cart.
func Subtotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Shipping is free only strictly above the threshold: a subtotal of exactly
// 100 still pays the flat fee.
func Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(freeShippingOver) {
		return decimal.Zero
	}
	return flatShippingFee
}

// ValidatePromo normalizes and checks a promo code, returning the canonical
// form. Matching is case-insensitive; only PromoWelcome is accepted.
func ValidatePromo(code string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(code), PromoWelcome) {
		return PromoWelcome, nil
	}
	return "", ErrInvalidPromo
}

// CartQuote prices the cart page flow: an optional promo code drives the
// discount, and tax applies to the discounted subtotal.
func CartQuote(items []models.CartItem, promo string) (Breakdown, error) {
	subtotal := Subtotal(items)

	discount := decimal.Zero
	if promo != "" {
		if _, err := ValidatePromo(promo); err != nil {
			return Breakdown{}, err
		}
		discount = subtotal.Mul(promoRate)
	}

	shipping := Shipping(subtotal)
	tax := subtotal.Sub(discount).Mul(taxRate)

	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Sub(discount).Add(shipping).Add(tax),
	}, nil
}

// CheckoutQuote prices the checkout flow: the discount comes from vision
// insurance, and tax applies to the raw subtotal, unlike CartQuote which
// taxes the discounted amount. The asymmetry is carried over from the
// storefront this replaces and is pinned by tests; reconcile both flows
// together or not at all.
func CheckoutQuote(items []models.CartItem, useInsurance bool) Breakdown {
	subtotal := Subtotal(items)

	discount := decimal.Zero
	if useInsurance {
		discount = subtotal.Mul(insuranceRate)
	}

	shipping := Shipping(subtotal)
	tax := subtotal.Mul(taxRate)

	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Sub(discount).Add(shipping).Add(tax),
	}
}
