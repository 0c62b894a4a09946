package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftplanner/internal/building"
	"github.com/osse101/craftplanner/internal/catalog"
	"github.com/osse101/craftplanner/internal/crafting"
	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/handler"
	"github.com/osse101/craftplanner/internal/naming"
	"github.com/osse101/craftplanner/internal/planner"
	"github.com/osse101/craftplanner/internal/session"
	"github.com/osse101/craftplanner/internal/testing/leaktest"
)

func newTestService(t *testing.T) (crafting.Service, *domain.Catalog) {
	t.Helper()
	cat := domain.NewCatalog([]domain.Item{
		{ID: "1", Name: "Flax", Rarity: domain.RarityCommon},
		{ID: "2", Name: "Linen", Tier: 1, Rarity: domain.RarityCommon, Recipes: []domain.Recipe{{
			OutputQuantity: 1,
			ConsumedItems:  []domain.Ingredient{{ItemID: "1", Quantity: 3}},
		}}},
	})
	svc := crafting.NewService(
		planner.New(cat),
		session.NewStore(8, time.Hour, nil),
		naming.NewResolver(cat),
		building.NewCorrector(nil),
	)
	return svc, cat
}

func testOptions(apiKey string, cat *domain.Catalog) Options {
	return Options{
		APIKey:       apiKey,
		Version:      "test",
		CatalogItems: cat.Len(),
		Readiness:    handler.HealthCheckFunc(func(context.Context) error { return nil }),
	}
}

func newTestRouter(t *testing.T, apiKey string) http.Handler {
	t.Helper()
	svc, cat := newTestService(t)
	return NewRouter(testOptions(apiKey, cat), svc)
}

func TestRouter_EndToEnd(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, APIPrefix+"/sessions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	var info crafting.SessionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))

	base := APIPrefix + "/sessions/" + info.ID
	req = httptest.NewRequest(http.MethodPost, base+"/build", strings.NewReader(`{"item_id":"2","quantity":2}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, base+"/materials", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var materials handler.DataResponse[domain.MaterialRequirement]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &materials))
	require.Len(t, materials.Data, 1)
	assert.Equal(t, "1", materials.Data[0].ItemID)
	assert.Equal(t, 6, materials.Data[0].Needed)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	router := newTestRouter(t, "secret")

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType), path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, APIPrefix+"/items", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, APIPrefix+"/items", nil)
	req.Header.Set(HeaderAPIKey, "secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequestIDPassthrough(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, APIPrefix+"/items/2", nil)
	req.Header.Set(HeaderRequestID, "upstream-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "upstream-123", rec.Header().Get(HeaderRequestID))
}

func TestRouter_BodyTooLarge(t *testing.T) {
	router := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, APIPrefix+"/sessions", nil))
	var info crafting.SessionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))

	huge := `{"item_id":"2","quantity":1,"pad":"` + strings.Repeat("x", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, APIPrefix+"/sessions/"+info.ID+"/build", strings.NewReader(huge))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_StartStopReleasesGoroutines(t *testing.T) {
	svc, cat := newTestService(t)

	leaktest.CheckNoGoroutineLeak(t, 2*time.Second, func() {
		srv := NewServer(testOptions("", cat), svc)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, srv.Stop(ctx))
		assert.ErrorIs(t, <-errCh, http.ErrServerClosed)
	})
}

// panickingService blows up on catalog listing and delegates everything else
type panickingService struct {
	crafting.Service
}

func (panickingService) ListItems(context.Context, catalog.Criteria) ([]*domain.Item, error) {
	panic("catalog index corrupted")
}

func TestRouter_RecoversFromHandlerPanic(t *testing.T) {
	svc, cat := newTestService(t)
	router := NewRouter(testOptions("", cat), panickingService{Service: svc})

	req := httptest.NewRequest(http.MethodGet, APIPrefix+"/items", nil)
	rec := httptest.NewRecorder()
	require.NotPanics(t, func() { router.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	req = httptest.NewRequest(http.MethodGet, APIPrefix+"/items/2", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
