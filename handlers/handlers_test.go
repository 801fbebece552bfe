package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"qr-menu-api/billing"
	"qr-menu-api/catalog"
	"qr-menu-api/config"
	"qr-menu-api/handlers"
	"qr-menu-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenDB(":memory:")
	require.NoError(t, err)
	config.DB = db
	handlers.Init(catalog.New(db), billing.NewService(db), nil, nil)

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func registerOwner(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Owner", "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	r := newTestRouter(t)

	registerOwner(t, r, "a@cafe.test")

	// duplicate email
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Owner", "email": "a@cafe.test", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@cafe.test", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@cafe.test", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/restaurant", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decode(t, w)["error"])

	w = doJSON(r, http.MethodGet, "/api/restaurant", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFullMenuFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerOwner(t, r, "a@cafe.test")

	w := doJSON(r, http.MethodPost, "/api/restaurant", token, gin.H{"name": "Cafe X"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/menus", token, gin.H{"name": "Lunch"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	menuID := decode(t, w)["menu"].(map[string]interface{})["id"].(string)

	w = doJSON(r, http.MethodPost, "/api/menus/"+menuID+"/categories", token, gin.H{"name": "Mains"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	categoryID := decode(t, w)["category"].(map[string]interface{})["id"].(string)

	w = doJSON(r, http.MethodPost, "/api/menus/"+menuID+"/items", token, gin.H{
		"name": "Burger", "price": 9.50, "category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// not published yet: the public page 404s
	w = doJSON(r, http.MethodGet, "/menu/"+menuID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/api/menus/"+menuID, token, gin.H{"is_published": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/menu/"+menuID, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view := decode(t, w)
	categories := view["categories"].([]interface{})
	require.Len(t, categories, 1)
	items := categories[0].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "9.50", items[0].(map[string]interface{})["price"])
}

func TestOwnershipIsolationOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	tokenA := registerOwner(t, r, "a@cafe.test")
	tokenB := registerOwner(t, r, "b@cafe.test")

	w := doJSON(r, http.MethodPost, "/api/restaurant", tokenA, gin.H{"name": "Cafe A"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/restaurant", tokenB, gin.H{"name": "Cafe B"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/menus", tokenA, gin.H{"name": "Lunch"})
	require.Equal(t, http.StatusCreated, w.Code)
	menuID := decode(t, w)["menu"].(map[string]interface{})["id"].(string)

	// owner B sees NotFound, not Forbidden and not the data
	w = doJSON(r, http.MethodGet, "/api/menus/"+menuID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decode(t, w)["error"])
}

func TestSlugConflictOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerOwner(t, r, "a@cafe.test")

	w := doJSON(r, http.MethodPost, "/api/restaurant", token, gin.H{"name": "Cafe X"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/menus", token, gin.H{"name": "Lunch"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/menus", token, gin.H{"name": "Lunch"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestVerifyPaymentOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerOwner(t, r, "a@cafe.test")

	w := doJSON(r, http.MethodPost, "/api/restaurant", token, gin.H{"name": "Cafe X"})
	require.Equal(t, http.StatusCreated, w.Code)

	payload := func(sig string) gin.H {
		return gin.H{
			"order_id":   "order_1",
			"payment_id": "pay_1",
			"signature":  sig,
			"plan_type":  "PRO_MONTHLY",
		}
	}

	w = doJSON(r, http.MethodPost, "/api/billing/verify", token, payload("bogus"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	sig := billing.Sign("order_1", "pay_1", config.PaymentSecret)
	w = doJSON(r, http.MethodPost, "/api/billing/verify", token, payload(sig))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "PRO_MONTHLY", decode(t, w)["plan"])

	w = doJSON(r, http.MethodGet, "/api/billing/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])
}

func TestPlansEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(r, http.MethodGet, "/api/billing/plans", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	plans := decode(t, w)["plans"].([]interface{})
	assert.Len(t, plans, 2)
}

func TestPatchItemOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := registerOwner(t, r, "a@cafe.test")

	w := doJSON(r, http.MethodPost, "/api/restaurant", token, gin.H{"name": "Cafe X"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/menus", token, gin.H{"name": "Lunch"})
	require.Equal(t, http.StatusCreated, w.Code)
	menuID := decode(t, w)["menu"].(map[string]interface{})["id"].(string)
	w = doJSON(r, http.MethodPost, "/api/menus/"+menuID+"/categories", token, gin.H{"name": "Mains"})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := decode(t, w)["category"].(map[string]interface{})["id"].(string)
	w = doJSON(r, http.MethodPost, "/api/menus/"+menuID+"/items", token, gin.H{
		"name": "Burger", "price": 9.5, "category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := decode(t, w)["item"].(map[string]interface{})["id"].(string)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/menus/%s/items/%s", menuID, itemID), token, gin.H{
		"is_available": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	item := decode(t, w)["item"].(map[string]interface{})
	assert.Equal(t, false, item["is_available"])
}
