package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirtan82004/VisionCare/catalog"
	"github.com/Kirtan82004/VisionCare/models"
	"github.com/Kirtan82004/VisionCare/store"
)

const testSession = "test-session"

func setupRouter(manager *store.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", testSession)
	})
	r.GET("/user/cart", GetUserCart(manager))
	r.POST("/user/cart", AddCartItem(manager))
	r.PUT("/user/cart", UpdateCartItem(manager))
	r.DELETE("/user/cart/:product_id", DeleteCartItem(manager))
	r.DELETE("/user/cart", ClearUserCart(manager))
	return r
}

func newManager() *store.Manager {
	manager := store.NewManager(time.Hour)
	s := manager.Get(testSession)
	s.Dispatch(store.SetProducts{Products: catalog.FetchProducts()})
	return manager
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemMerges(t *testing.T) {
	manager := newManager()
	r := setupRouter(manager)

	w := do(r, http.MethodPost, "/user/cart", `{"product_id":"1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/user/cart", `{"product_id":"1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var cart []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r := setupRouter(newManager())

	w := do(r, http.MethodPost, "/user/cart", `{"product_id":"999"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	manager := newManager()
	r := setupRouter(manager)

	do(r, http.MethodPost, "/user/cart", `{"product_id":"1"}`)
	w := do(r, http.MethodPut, "/user/cart", `{"product_id":"1","quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var cart []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart)
}

func TestDeleteAndClearCart(t *testing.T) {
	manager := newManager()
	r := setupRouter(manager)

	do(r, http.MethodPost, "/user/cart", `{"product_id":"1"}`)
	do(r, http.MethodPost, "/user/cart", `{"product_id":"2"}`)

	w := do(r, http.MethodDelete, "/user/cart/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cart []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart, 1)

	w = do(r, http.MethodDelete, "/user/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, manager.Get(testSession).State().Cart)
}

func TestGetUserCartWithPromo(t *testing.T) {
	manager := newManager()
	r := setupRouter(manager)

	// Product 1 costs 199; promo takes 10%.
	do(r, http.MethodPost, "/user/cart", `{"product_id":"1"}`)

	w := do(r, http.MethodGet, "/user/cart?promo=welcome10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Breakdown struct {
			Subtotal string `json:"subtotal"`
			Discount string `json:"discount"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "199", resp.Breakdown.Subtotal)
	assert.Equal(t, "19.9", resp.Breakdown.Discount)
}

func TestGetUserCartRejectsBadPromo(t *testing.T) {
	r := setupRouter(newManager())

	w := do(r, http.MethodGet, "/user/cart?promo=SAVE50", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "promo code")
}

func TestUnknownSessionIs404(t *testing.T) {
	manager := store.NewManager(time.Hour) // no session created
	r := setupRouter(manager)

	w := do(r, http.MethodGet, "/user/cart", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
