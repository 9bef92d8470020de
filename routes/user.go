package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Kirtan82004/VisionCare/checkout"
	appointmentControllers "github.com/Kirtan82004/VisionCare/controllers/appointment"
	cartControllers "github.com/Kirtan82004/VisionCare/controllers/cart"
	checkoutControllers "github.com/Kirtan82004/VisionCare/controllers/checkout"
	productcontroller "github.com/Kirtan82004/VisionCare/controllers/product"
	userControllers "github.com/Kirtan82004/VisionCare/controllers/user"
	wishlistControllers "github.com/Kirtan82004/VisionCare/controllers/wishlist"
	"github.com/Kirtan82004/VisionCare/middleware"
	"github.com/Kirtan82004/VisionCare/store"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, manager *store.Manager, registry *checkout.Registry) {
	// Booking reference data is public
	r.GET("/services", appointmentControllers.GetServices)
	r.GET("/time-slots", appointmentControllers.GetTimeSlots)

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(manager))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(manager)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(manager))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(manager))                 // POST /user/cart
			cartGroup.PUT("/", cartControllers.UpdateCartItem(manager))               // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(manager)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(manager))             // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(manager))                            // GET /user/wishlist
			wishlistGroup.POST("/", wishlistControllers.AddWishlistItem(manager))                       // POST /user/wishlist
			wishlistGroup.DELETE("/:product_id", wishlistControllers.DeleteWishlistItem(manager))       // DELETE /user/wishlist/:product_id
			wishlistGroup.POST("/:product_id/cart", wishlistControllers.AddWishlistItemToCart(manager)) // POST /user/wishlist/:product_id/cart
			wishlistGroup.POST("/cart", wishlistControllers.AddAllWishlistItemsToCart(manager))         // POST /user/wishlist/cart
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(manager))        // GET /user/products
		userGroup.GET("/products/:id", productcontroller.GetProductByID(manager)) // GET /user/products/:id

		// ──────────────── Appointments ────────────────
		appointmentGroup := userGroup.Group("/appointments")
		{
			appointmentGroup.GET("/", appointmentControllers.GetAppointments(manager))
			appointmentGroup.POST("/", appointmentControllers.BookAppointment(manager))
			appointmentGroup.PUT("/:id/status", appointmentControllers.UpdateAppointmentStatus(manager))
		}

		// ──────────────── Checkout ────────────────
		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.POST("/start", checkoutControllers.StartCheckout(manager, registry))
			checkoutGroup.GET("/", checkoutControllers.GetCheckout(registry))
			checkoutGroup.POST("/next", checkoutControllers.NextStep(registry))
			checkoutGroup.POST("/back", checkoutControllers.PreviousStep(registry))
			checkoutGroup.PUT("/insurance", checkoutControllers.SetInsurance(registry))
			checkoutGroup.POST("/place-order", checkoutControllers.PlaceOrder(registry))
		}
	}
}
