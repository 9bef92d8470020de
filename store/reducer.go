package store

import "github.com/Kirtan82004/VisionCare/models"

// AppState is the whole per-session application state. It is only ever
// replaced, never edited in place: Reduce returns a fresh value with fresh
// slices for whatever changed.
type AppState struct {
	User         *models.User         `json:"user"`
	Products     []models.Product     `json:"products"`
	Cart         []models.CartItem    `json:"cart"`
	Wishlist     []models.Product     `json:"wishlist"`
	Appointments []models.Appointment `json:"appointments"`
	IsLoading    bool                 `json:"is_loading"`
}

// NewAppState returns the state a fresh session starts from.
func NewAppState() AppState {
	return AppState{
		Products:     []models.Product{},
		Cart:         []models.CartItem{},
		Wishlist:     []models.Product{},
		Appointments: []models.Appointment{},
	}
}

// Reduce maps (state, action) to the next state. It is pure: no I/O, no
// mutation of the input, and it is total — every action value, including
// ones this version does not recognize, yields a valid state.
func Reduce(state AppState, action Action) AppState {
	switch a := action.(type) {
	case SetUser:
		state.User = a.User
		return state

	case SetProducts:
		state.Products = append([]models.Product{}, a.Products...)
		return state

	case AddToCart:
		cart := append([]models.CartItem{}, state.Cart...)
		for i, item := range cart {
			if item.Product.ID == a.Product.ID {
				cart[i].Quantity++
				state.Cart = cart
				return state
			}
		}
		state.Cart = append(cart, models.CartItem{Product: a.Product, Quantity: 1})
		return state

	case RemoveFromCart:
		return removeFromCart(state, a.ProductID)

	case UpdateCartQuantity:
		// Quantity is clamped here, not in the callers: anything at or
		// below zero means the line goes away.
		if a.Quantity <= 0 {
			return removeFromCart(state, a.ProductID)
		}
		cart := append([]models.CartItem{}, state.Cart...)
		for i, item := range cart {
			if item.Product.ID == a.ProductID {
				cart[i].Quantity = a.Quantity
			}
		}
		state.Cart = cart
		return state

	case ClearCart:
		state.Cart = []models.CartItem{}
		return state

	case AddToWishlist:
		for _, p := range state.Wishlist {
			if p.ID == a.Product.ID {
				return state
			}
		}
		state.Wishlist = append(append([]models.Product{}, state.Wishlist...), a.Product)
		return state

	case RemoveFromWishlist:
		wishlist := make([]models.Product, 0, len(state.Wishlist))
		for _, p := range state.Wishlist {
			if p.ID != a.ProductID {
				wishlist = append(wishlist, p)
			}
		}
		state.Wishlist = wishlist
		return state

	case AddAppointment:
		state.Appointments = append(append([]models.Appointment{}, state.Appointments...), a.Appointment)
		return state

	case SetAppointmentStatus:
		appointments := append([]models.Appointment{}, state.Appointments...)
		for i, appt := range appointments {
			if appt.ID == a.AppointmentID && appt.CanTransition(a.Status) {
				appointments[i].Status = a.Status
			}
		}
		state.Appointments = appointments
		return state

	case SetLoading:
		state.IsLoading = a.Loading
		return state

	default:
		return state
	}
}

func removeFromCart(state AppState, productID string) AppState {
	cart := make([]models.CartItem, 0, len(state.Cart))
	for _, item := range state.Cart {
		if item.Product.ID != productID {
			cart = append(cart, item)
		}
	}
	state.Cart = cart
	return state
}
