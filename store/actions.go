package store

import "github.com/Kirtan82004/VisionCare/models"

// Action is the closed set of state transitions the reducer understands.
// Each action is its own struct so payloads are typed at compile time; the
// unexported marker method keeps the set closed to this package.
type Action interface {
	isAction()
}

// SetUser replaces the signed-in user. A nil User means logout.
type SetUser struct {
	User *models.User
}

// SetProducts replaces the product listing wholesale.
type SetProducts struct {
	Products []models.Product
}

// AddToCart merges a product into the cart: an existing line for the same
// product id gains one unit, otherwise a new line with quantity 1 is
// appended.
type AddToCart struct {
	Product models.Product
}

// RemoveFromCart drops the line for the given product id, if any.
type RemoveFromCart struct {
	ProductID string
}

// UpdateCartQuantity sets the quantity on the line for the given product id.
// A quantity of zero or less removes the line.
type UpdateCartQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// AddToWishlist saves a product for later. Saving a product that is
// already on the wishlist is a no-op.
type AddToWishlist struct {
	Product models.Product
}

// RemoveFromWishlist drops the saved product with the given id, if any.
type RemoveFromWishlist struct {
	ProductID string
}

// AddAppointment appends a booked appointment.
type AddAppointment struct {
	Appointment models.Appointment
}

// SetAppointmentStatus moves an appointment through its status lifecycle.
// Transitions the appointment does not allow leave state unchanged.
type SetAppointmentStatus struct {
	AppointmentID string
	Status        models.AppointmentStatus
}

// SetLoading flips the loading flag.
type SetLoading struct {
	Loading bool
}

func (SetUser) isAction()              {}
func (SetProducts) isAction()          {}
func (AddToCart) isAction()            {}
func (RemoveFromCart) isAction()       {}
func (UpdateCartQuantity) isAction()   {}
func (ClearCart) isAction()            {}
func (AddToWishlist) isAction()        {}
func (RemoveFromWishlist) isAction()   {}
func (AddAppointment) isAction()       {}
func (SetAppointmentStatus) isAction() {}
func (SetLoading) isAction()           {}
