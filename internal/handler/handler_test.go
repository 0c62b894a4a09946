package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftplanner/internal/building"
	"github.com/osse101/craftplanner/internal/crafting"
	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/naming"
	"github.com/osse101/craftplanner/internal/planner"
	"github.com/osse101/craftplanner/internal/session"
)

const (
	oreID   = "1"
	ingotID = "2"
	nailsID = "3"
)

func testCatalog() *domain.Catalog {
	smithing := &domain.SkillRequirement{SkillName: "Smithing", SkillLevel: 1}
	return domain.NewCatalog([]domain.Item{
		{ID: oreID, Name: "Copper Ore", Rarity: domain.RarityCommon},
		{ID: ingotID, Name: "Copper Ingot", Tier: 1, Rarity: domain.RarityCommon, Recipes: []domain.Recipe{{
			OutputQuantity:   1,
			ConsumedItems:    []domain.Ingredient{{ItemID: oreID, Quantity: 2}},
			SkillRequirement: smithing,
		}}},
		{ID: nailsID, Name: "Copper Nails", Tier: 2, Rarity: domain.RarityUncommon, Recipes: []domain.Recipe{{
			OutputQuantity:   10,
			ConsumedItems:    []domain.Ingredient{{ItemID: ingotID, Quantity: 1}},
			SkillRequirement: smithing,
		}}},
	})
}

func newTestService() crafting.Service {
	cat := testCatalog()
	return crafting.NewService(
		planner.New(cat),
		session.NewStore(16, time.Hour, nil),
		naming.NewResolver(cat),
		building.NewCorrector(nil),
	)
}

// newTestRouter mounts the handlers at the same paths the server uses
func newTestRouter(svc crafting.Service) http.Handler {
	items := NewItemHandlers(svc)
	sessions := NewSessionHandlers(svc)

	r := chi.NewRouter()
	r.Get("/items", items.HandleListItems)
	r.Get("/items/{itemID}", items.HandleGetItem)
	r.Get("/items/{itemID}/tree", items.HandleRecipeTree)
	r.Get("/items/{itemID}/calculate", items.HandleCalculate)
	r.Get("/resolve", items.HandleResolve)

	r.Post("/sessions", sessions.HandleCreateSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Delete("/", sessions.HandleDeleteSession)
		r.Get("/inventory", sessions.HandleGetInventory)
		r.Put("/inventory", sessions.HandleSetInventory)
		r.Delete("/inventory", sessions.HandleClearInventory)
		r.Delete("/inventory/{itemID}", sessions.HandleRemoveInventoryItem)
		r.Get("/build", sessions.HandleGetBuildList)
		r.Post("/build", sessions.HandleAddToBuildList)
		r.Delete("/build", sessions.HandleClearBuildList)
		r.Put("/build/{itemID}", sessions.HandleUpdateBuildListItem)
		r.Delete("/build/{itemID}", sessions.HandleRemoveFromBuildList)
		r.Get("/effective/{itemID}", sessions.HandleEffectiveQuantity)
		r.Get("/materials", sessions.HandleRequiredMaterials)
		r.Get("/materials/all", sessions.HandleAllMaterials)
		r.Get("/shopping", sessions.HandleShoppingList)
		r.Get("/steps", sessions.HandleCraftingSteps)
		r.Get("/buildings", sessions.HandleBuildings)
		r.Get("/report", sessions.HandleReport)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	info := decode[crafting.SessionInfo](t, rec)
	require.NotEmpty(t, info.ID)
	return info.ID
}

func TestHandleListItems(t *testing.T) {
	h := newTestRouter(newTestService())

	tests := []struct {
		name     string
		query    string
		wantCode int
		wantIDs  []string
	}{
		{name: "all items sorted by name", query: "", wantCode: http.StatusOK, wantIDs: []string{ingotID, nailsID, oreID}},
		{name: "name substring", query: "?q=nail", wantCode: http.StatusOK, wantIDs: []string{nailsID}},
		{name: "base only", query: "?type=base", wantCode: http.StatusOK, wantIDs: []string{oreID}},
		{name: "tier filter", query: "?tier=1", wantCode: http.StatusOK, wantIDs: []string{ingotID}},
		{name: "rarity filter", query: "?rarity=2", wantCode: http.StatusOK, wantIDs: []string{nailsID}},
		{name: "limit", query: "?limit=1", wantCode: http.StatusOK, wantIDs: []string{ingotID}},
		{name: "bad tier", query: "?tier=high", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/items"+tt.query, nil)
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			resp := decode[DataResponse[domain.Item]](t, rec)
			ids := make([]string, 0, len(resp.Data))
			for _, item := range resp.Data {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), resp.Count)
		})
	}
}

func TestHandleGetItem(t *testing.T) {
	h := newTestRouter(newTestService())

	rec := do(t, h, http.MethodGet, "/items/"+ingotID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	item := decode[domain.Item](t, rec)
	assert.Equal(t, "Copper Ingot", item.Name)
	assert.Len(t, item.Recipes, 1)

	rec = do(t, h, http.MethodGet, "/items/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrMsgItemNotFoundError, decode[ErrorResponse](t, rec).Error)
}

func TestHandleCalculate(t *testing.T) {
	h := newTestRouter(newTestService())

	rec := do(t, h, http.MethodGet, "/items/"+nailsID+"/calculate?quantity=20", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	calc := decode[domain.Calculation](t, rec)
	require.Len(t, calc.BaseMaterials, 1)
	assert.Equal(t, oreID, calc.BaseMaterials[0].ItemID)
	assert.Equal(t, 4, calc.BaseMaterials[0].Quantity)

	rec = do(t, h, http.MethodGet, "/items/"+nailsID+"/calculate?quantity=lots", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecipeTree(t *testing.T) {
	h := newTestRouter(newTestService())

	rec := do(t, h, http.MethodGet, "/items/"+nailsID+"/tree?quantity=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tree := decode[domain.RecipeTree](t, rec)
	require.NotNil(t, tree.Root)
	assert.Equal(t, nailsID, tree.Root.ItemID)
	require.Len(t, tree.Root.Children, 1)
	assert.Equal(t, ingotID, tree.Root.Children[0].ItemID)
	assert.Equal(t, []domain.SkillLevel{{SkillName: "Smithing", SkillLevel: 1}}, tree.Skills)

	rec = do(t, h, http.MethodGet, "/items/"+nailsID+"/tree?recipe=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[domain.RecipeTree](t, rec).Root.RecipeIndex)

	rec = do(t, h, http.MethodGet, "/items/"+nailsID+"/tree?recipe=first", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResolve(t *testing.T) {
	h := newTestRouter(newTestService())

	rec := do(t, h, http.MethodGet, "/resolve?name=copper%20ingot", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[crafting.ResolveResult](t, rec)
	require.NotNil(t, result.Item)
	assert.Equal(t, ingotID, result.Item.ID)

	rec = do(t, h, http.MethodGet, "/resolve", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandlers_Inventory(t *testing.T) {
	h := newTestRouter(newTestService())
	id := createSession(t, h)
	base := "/sessions/" + id

	rec := do(t, h, http.MethodPut, base+"/inventory", SetInventoryRequest{ItemID: oreID, Quantity: 5})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPut, base+"/inventory", SetInventoryRequest{ItemID: "", Quantity: 5})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[ValidationErrorResponse](t, rec).Fields, "itemid")

	rec = do(t, h, http.MethodPut, base+"/inventory", SetInventoryRequest{ItemID: "999", Quantity: 5})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, base+"/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[DataResponse[map[string]any]](t, rec).Count)

	rec = do(t, h, http.MethodDelete, base+"/inventory/"+oreID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MsgInventoryRemoved, decode[SuccessResponse](t, rec).Message)

	rec = do(t, h, http.MethodDelete, base+"/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, base+"/inventory", nil)
	assert.Equal(t, 0, decode[DataResponse[map[string]any]](t, rec).Count)
}

func TestSessionHandlers_BuildListAndPlans(t *testing.T) {
	h := newTestRouter(newTestService())
	id := createSession(t, h)
	base := "/sessions/" + id

	rec := do(t, h, http.MethodPost, base+"/build", BuildListRequest{ItemID: nailsID, Quantity: 10})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, h, http.MethodPost, base+"/build", BuildListRequest{ItemID: nailsID, Quantity: 10})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 20, decode[domain.BuildDemand](t, rec).Quantity)

	rec = do(t, h, http.MethodGet, base+"/materials", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	materials := decode[DataResponse[domain.MaterialRequirement]](t, rec)
	require.Len(t, materials.Data, 1)
	assert.Equal(t, oreID, materials.Data[0].ItemID)
	assert.Equal(t, 4, materials.Data[0].Needed)

	rec = do(t, h, http.MethodGet, base+"/materials/all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decode[DataResponse[domain.MaterialRequirement]](t, rec).Count)

	do(t, h, http.MethodPut, base+"/inventory", SetInventoryRequest{ItemID: oreID, Quantity: 1})
	rec = do(t, h, http.MethodGet, base+"/shopping", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	shopping := decode[DataResponse[domain.ShoppingItem]](t, rec)
	require.Len(t, shopping.Data, 1)
	assert.Equal(t, 3, shopping.Data[0].Missing)

	rec = do(t, h, http.MethodGet, base+"/steps", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	steps := decode[DataResponse[crafting.Step]](t, rec)
	require.Len(t, steps.Data, 2)
	assert.Equal(t, ingotID, steps.Data[0].ItemID)
	assert.Equal(t, nailsID, steps.Data[1].ItemID)

	rec = do(t, h, http.MethodGet, base+"/buildings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotZero(t, decode[DataResponse[domain.BuildingGroup]](t, rec).Count)

	rec = do(t, h, http.MethodGet, base+"/effective/"+oreID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[crafting.EffectiveInfo](t, rec).Effective)

	rec = do(t, h, http.MethodGet, base+"/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPut, base+"/build/"+nailsID, UpdateBuildListRequest{Quantity: 5})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, decode[domain.BuildDemand](t, rec).Quantity)

	rec = do(t, h, http.MethodPut, base+"/build/"+oreID, UpdateBuildListRequest{Quantity: 5})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, base+"/build/"+nailsID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, base+"/build", nil)
	assert.Equal(t, 0, decode[DataResponse[domain.BuildDemand]](t, rec).Count)

	rec = do(t, h, http.MethodDelete, base+"/build", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandlers_UnknownSession(t *testing.T) {
	h := newTestRouter(newTestService())

	for _, path := range []string{"/inventory", "/build", "/materials", "/steps", "/report"} {
		rec := do(t, h, http.MethodGet, "/sessions/nope"+path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, ErrMsgSessionNotFoundError, decode[ErrorResponse](t, rec).Error)
	}

	id := createSession(t, h)
	rec := do(t, h, http.MethodDelete, "/sessions/"+id+"/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodDelete, "/sessions/"+id+"/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDecodeAndValidateRequest_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	var body BuildListRequest
	err := DecodeAndValidateRequest(req, rec, &body, "test")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMsgInvalidRequest, decode[ErrorResponse](t, rec).Error)
}

func TestHealthHandlers(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	ready := HealthCheckFunc(func(context.Context) error { return nil })
	rec = httptest.NewRecorder()
	HandleReadyz(ready)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	notReady := HealthCheckFunc(func(context.Context) error { return domain.ErrEmptyCatalog })
	rec = httptest.NewRecorder()
	HandleReadyz(notReady)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, StatusUnavailable, decode[HealthResponse](t, rec).Status)
}

func TestHandleVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleVersion("1.2.3", 3)(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[VersionInfo](t, rec)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, 3, info.CatalogItems)
	assert.NotEmpty(t, info.GoVersion)
}
