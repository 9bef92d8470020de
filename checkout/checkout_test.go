package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirtan82004/VisionCare/models"
	"github.com/Kirtan82004/VisionCare/store"
)

func storeWithCart(t *testing.T, categories ...models.Category) *store.Store {
	t.Helper()
	s := store.New()
	for i, cat := range categories {
		s.Dispatch(store.AddToCart{Product: models.Product{
			ID:       string(rune('a' + i)),
			Name:     "Item",
			Price:    decimal.NewFromInt(50),
			Category: cat,
		}})
	}
	return s
}

func TestNewSessionRequiresItems(t *testing.T) {
	_, err := NewSession(store.New())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestStepSequenceWithGlasses(t *testing.T) {
	s := storeWithCart(t, models.CategorySunglasses, models.CategoryGlasses)

	sess, err := NewSession(s)
	require.NoError(t, err)

	assert.Equal(t, []Step{StepShipping, StepPrescription, StepPayment, StepReview}, sess.Steps())
	assert.Len(t, sess.Steps(), 4)
}

func TestStepSequenceWithoutGlasses(t *testing.T) {
	s := storeWithCart(t, models.CategorySunglasses, models.CategoryLenses)

	sess, err := NewSession(s)
	require.NoError(t, err)

	assert.Equal(t, []Step{StepShipping, StepPayment, StepReview}, sess.Steps())
	assert.Len(t, sess.Steps(), 3)
}

func TestSequenceIsFixedAtEntry(t *testing.T) {
	s := storeWithCart(t, models.CategoryGlasses)

	sess, err := NewSession(s)
	require.NoError(t, err)

	// Removing the glasses mid-flow does not shrink the sequence.
	s.Dispatch(store.ClearCart{})
	s.Dispatch(store.AddToCart{Product: models.Product{ID: "x", Price: decimal.NewFromInt(10), Category: models.CategoryLenses}})
	assert.Len(t, sess.Steps(), 4)
}

func TestNextAndBackBounds(t *testing.T) {
	s := storeWithCart(t, models.CategoryLenses)
	sess, err := NewSession(s)
	require.NoError(t, err)

	assert.Equal(t, StepShipping, sess.Current())
	assert.Equal(t, StepShipping, sess.Back()) // no-op at the first step

	assert.Equal(t, StepPayment, sess.Next())
	assert.Equal(t, StepReview, sess.Next())
	assert.Equal(t, StepReview, sess.Next()) // stays at the last step

	assert.Equal(t, StepPayment, sess.Back())
	assert.Equal(t, StepShipping, sess.Back())
}

func TestPlaceOrderOnlyFromReview(t *testing.T) {
	s := storeWithCart(t, models.CategoryLenses)
	sess, err := NewSession(s)
	require.NoError(t, err)

	_, err = sess.PlaceOrder(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotAtReview)

	sess.Next() // payment
	_, err = sess.PlaceOrder(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotAtReview)
}

func TestPlaceOrderClearsCart(t *testing.T) {
	s := storeWithCart(t, models.CategoryLenses, models.CategorySunglasses)
	sess, err := NewSession(s)
	require.NoError(t, err)

	sess.Next()
	sess.Next() // review

	order, err := sess.PlaceOrder(context.Background(), 0)
	require.NoError(t, err)

	assert.NotEmpty(t, order.Ref)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, s.State().Cart)
	assert.True(t, sess.Placed())
}

func TestPlaceOrderTwiceFails(t *testing.T) {
	s := storeWithCart(t, models.CategoryLenses)
	sess, err := NewSession(s)
	require.NoError(t, err)

	sess.Next()
	sess.Next()
	_, err = sess.PlaceOrder(context.Background(), 0)
	require.NoError(t, err)

	_, err = sess.PlaceOrder(context.Background(), 0)
	assert.ErrorIs(t, err, ErrAlreadyPlaced)
}

func TestPlaceOrderHonorsContext(t *testing.T) {
	s := storeWithCart(t, models.CategoryLenses)
	sess, err := NewSession(s)
	require.NoError(t, err)
	sess.Next()
	sess.Next()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = sess.PlaceOrder(ctx, time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	// An aborted placement leaves the cart alone.
	assert.Len(t, s.State().Cart, 1)
	assert.False(t, sess.Placed())
}

func TestPlaceOrderUsesCheckoutPricing(t *testing.T) {
	s := store.New()
	s.Dispatch(store.AddToCart{Product: models.Product{ID: "1", Price: decimal.NewFromInt(110), Category: models.CategoryLenses}})

	sess, err := NewSession(s)
	require.NoError(t, err)
	sess.SetInsurance(true)
	sess.Next()
	sess.Next()

	order, err := sess.PlaceOrder(context.Background(), 0)
	require.NoError(t, err)

	// subtotal 110, insurance 22, free shipping, tax on raw subtotal 8.80
	assert.Equal(t, "110", order.Subtotal.String())
	assert.Equal(t, "22", order.Discount.String())
	assert.Equal(t, "0", order.Shipping.String())
	assert.Equal(t, "8.8", order.Tax.String())
	assert.Equal(t, "96.8", order.Total.String())
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("sess")
	assert.ErrorIs(t, err, ErrNoSession)

	s := storeWithCart(t, models.CategoryLenses)
	sess, err := NewSession(s)
	require.NoError(t, err)

	r.Put("sess", sess)
	got, err := r.Get("sess")
	require.NoError(t, err)
	assert.Same(t, sess, got)

	r.Drop("sess")
	_, err = r.Get("sess")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRegistryReleasesSweptSessions(t *testing.T) {
	m := store.NewManager(time.Minute)
	r := NewRegistry()

	s := m.Get("sess-a")
	s.Dispatch(store.AddToCart{Product: models.Product{
		ID:       "1",
		Name:     "Item",
		Price:    decimal.NewFromInt(50),
		Category: models.CategoryLenses,
	}})
	sess, err := NewSession(s)
	require.NoError(t, err)
	r.Put("sess-a", sess)

	// An abandoned checkout goes when its session does.
	swept := m.Sweep(time.Now().Add(2 * time.Minute))
	require.Equal(t, []string{"sess-a"}, swept)
	r.DropAll(swept)

	_, ok := m.Lookup("sess-a")
	assert.False(t, ok)
	_, err = r.Get("sess-a")
	assert.ErrorIs(t, err, ErrNoSession)
}
