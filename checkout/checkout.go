// Package checkout drives the multi-step checkout flow: a strictly linear
// step sequence decided once per session from the cart contents, ending in
// order placement.
package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kirtan82004/VisionCare/models"
	"github.com/Kirtan82004/VisionCare/pricing"
	"github.com/Kirtan82004/VisionCare/store"
)

type Step string

const (
	StepShipping     Step = "shipping"
	StepPrescription Step = "prescription"
	StepPayment      Step = "payment"
	StepReview       Step = "review"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrNotAtReview   = errors.New("order can only be placed from the review step")
	ErrAlreadyPlaced = errors.New("order already placed")
)

// Session is one walk through checkout. The step sequence is fixed at
// construction: prescription is part of it only when the cart held at least
// one pair of glasses on entry, so 3 steps vs 4. The mutex doubles as the
// submission lock: a second PlaceOrder blocks behind the first and then
// fails, rather than placing twice.
type Session struct {
	mu           sync.Mutex
	store        *store.Store
	steps        []Step
	current      int
	placed       bool
	useInsurance bool
}

// NewSession starts a checkout over the session store's current cart.
func NewSession(s *store.Store) (*Session, error) {
	state := s.State()
	if len(state.Cart) == 0 {
		return nil, ErrEmptyCart
	}

	steps := []Step{StepShipping}
	if needsPrescription(state.Cart) {
		steps = append(steps, StepPrescription)
	}
	steps = append(steps, StepPayment, StepReview)

	return &Session{store: s, steps: steps}, nil
}

func needsPrescription(cart []models.CartItem) bool {
	for _, item := range cart {
		if item.Product.Category == models.CategoryGlasses {
			return true
		}
	}
	return false
}

// Steps returns the full sequence decided at entry.
func (s *Session) Steps() []Step {
	return append([]Step{}, s.steps...)
}

// Current returns the step the session is on.
func (s *Session) Current() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps[s.current]
}

// Next advances one step. Advancement is unconditional; field validation,
// when it arrives, hooks in here. Past the final step it stays put.
func (s *Session) Next() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current < len(s.steps)-1 {
		s.current++
	}
	return s.steps[s.current]
}

// Back moves one step back, a no-op on the first step.
func (s *Session) Back() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current > 0 {
		s.current--
	}
	return s.steps[s.current]
}

// SetInsurance records whether the vision insurance discount applies.
func (s *Session) SetInsurance(use bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.useInsurance = use
}

// Insurance reports the session's insurance choice.
func (s *Session) Insurance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.useInsurance
}

// Quote prices the cart as it stands, with the session's insurance choice.
func (s *Session) Quote() pricing.Breakdown {
	return pricing.CheckoutQuote(s.store.State().Cart, s.Insurance())
}

// PlaceOrder completes the flow: only legal from the review step, and only
// once. The processing delay runs through the context so a caller-side
// timeout or disconnect aborts before the cart is touched; on success the
// cart is cleared and the confirmation returned.
func (s *Session) PlaceOrder(ctx context.Context, processingDelay time.Duration) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.placed {
		return models.Order{}, ErrAlreadyPlaced
	}
	if s.steps[s.current] != StepReview {
		return models.Order{}, ErrNotAtReview
	}

	state := s.store.State()
	if len(state.Cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	// Stand-in for the payment gateway round trip. Always succeeds today;
	// the error branch is where a real gateway result will land.
	if err := wait(ctx, processingDelay); err != nil {
		return models.Order{}, err
	}

	quote := pricing.CheckoutQuote(state.Cart, s.useInsurance).Round()
	order := models.Order{
		Ref:      orderRef(),
		Items:    state.Cart,
		Subtotal: quote.Subtotal,
		Discount: quote.Discount,
		Shipping: quote.Shipping,
		Tax:      quote.Tax,
		Total:    quote.Total,
		PlacedAt: time.Now(),
	}

	s.store.Dispatch(store.ClearCart{})
	s.placed = true
	return order, nil
}

// Placed reports whether the session already produced an order.
func (s *Session) Placed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placed
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// orderRef builds a unique order reference, e.g. 20250908130500-<uuid>.
func orderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
