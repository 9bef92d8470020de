package wishlistControllers

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
	r.GET("/user/wishlist", GetWishlist(manager))
	r.POST("/user/wishlist", AddWishlistItem(manager))
	r.DELETE("/user/wishlist/:product_id", DeleteWishlistItem(manager))
	r.POST("/user/wishlist/:product_id/cart", AddWishlistItemToCart(manager))
	r.POST("/user/wishlist/cart", AddAllWishlistItemsToCart(manager))
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

func TestAddWishlistItemIgnoresDuplicates(t *testing.T) {
	r := setupRouter(newManager())

	w := do(r, http.MethodPost, "/user/wishlist", `{"product_id":"1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/user/wishlist", `{"product_id":"1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var wishlist []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wishlist))
	require.Len(t, wishlist, 1)
	assert.Equal(t, "1", wishlist[0].ID)
}

func TestAddWishlistItemUnknownProduct(t *testing.T) {
	r := setupRouter(newManager())

	w := do(r, http.MethodPost, "/user/wishlist", `{"product_id":"999"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestDeleteWishlistItem(t *testing.T) {
	r := setupRouter(newManager())

	do(r, http.MethodPost, "/user/wishlist", `{"product_id":"1"}`)
	do(r, http.MethodPost, "/user/wishlist", `{"product_id":"2"}`)

	w := do(r, http.MethodDelete, "/user/wishlist/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var wishlist []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wishlist))
	require.Len(t, wishlist, 1)
	assert.Equal(t, "2", wishlist[0].ID)
}

func TestAddWishlistItemToCartKeepsItOnWishlist(t *testing.T) {
	manager := newManager()
	r := setupRouter(manager)

	do(r, http.MethodPost, "/user/wishlist", `{"product_id":"1"}`)

	w := do(r, http.MethodPost, "/user/wishlist/1/cart", "")
	require.Equal(t, http.StatusCreated, w.Code)

	state := manager.Get(testSession).State()
	require.Len(t, state.Cart, 1)
	assert.Equal(t, "1", state.Cart[0].Product.ID)
	require.Len(t, state.Wishlist, 1)
}

func TestAddWishlistItemToCartNotSaved(t *testing.T) {
	r := setupRouter(newManager())

	w := do(r, http.MethodPost, "/user/wishlist/1/cart", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not on the wishlist")
}

func TestAddAllWishlistItemsToCart(t *testing.T) {
	manager := newManager()
	r := setupRouter(manager)

	do(r, http.MethodPost, "/user/wishlist", `{"product_id":"1"}`)
	do(r, http.MethodPost, "/user/wishlist", `{"product_id":"2"}`)

	w := do(r, http.MethodPost, "/user/wishlist/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	state := manager.Get(testSession).State()
	require.Len(t, state.Cart, 2)
	require.Len(t, state.Wishlist, 2)
}

func TestGetWishlistCount(t *testing.T) {
	r := setupRouter(newManager())

	do(r, http.MethodPost, "/user/wishlist", `{"product_id":"3"}`)

	w := do(r, http.MethodGet, "/user/wishlist", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.Product `json:"items"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Items, 1)
}

func TestUnknownSessionIs404(t *testing.T) {
	manager := store.NewManager(time.Hour) // no session created
	r := setupRouter(manager)

	w := do(r, http.MethodGet, "/user/wishlist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
