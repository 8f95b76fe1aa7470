package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/atquya/intershop/internal/models"
	"github.com/atquya/intershop/internal/mykafka"
	"github.com/atquya/intershop/internal/repo"
	"github.com/atquya/intershop/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	P  *ProductHTTP
	C  *CartHTTP
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		P: &ProductHTTP{
			Svc:      &service.CatalogService{Repo: gormRepo},
			Producer: &mykafka.Producer{},
		},
		C: &CartHTTP{
			Svc:      &service.CartService{Repo: gormRepo},
			Producer: &mykafka.Producer{},
		},
	}
}

func (env *testEnv) doJSONRequest(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}

func (env *testEnv) createProduct(name string, price float64) models.Product {
	env.T.Helper()

	rec, c := env.doJSONRequest(http.MethodPost, "/api/products/add", map[string]any{
		"name":  name,
		"price": price,
	})
	require.NoError(env.T, env.P.CreateProduct(c))
	require.Equal(env.T, http.StatusOK, rec.Code)

	var prod models.Product
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &prod))
	require.NotZero(env.T, prod.ID)
	return prod
}

func (env *testEnv) cartItems() []models.CartItem {
	env.T.Helper()

	rec, c := env.doJSONRequest(http.MethodGet, "/api/cart/items", nil)
	require.NoError(env.T, env.C.GetShoppingCart(c))
	require.Equal(env.T, http.StatusOK, rec.Code)

	var items []models.CartItem
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}
