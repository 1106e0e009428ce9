package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/muntadher/nizam-api/internal/middleware"
	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/internal/store"
	"github.com/muntadher/nizam-api/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContentPlanTest(t *testing.T) (http.Handler, string) {
	t.Helper()
	st := store.NewMemory()
	sessions := services.NewSessionService("test-secret-key", 24*time.Hour)
	handler := NewContentPlanHandler(services.NewContentPlanService(st.ContentPlan))

	app := drift.New()
	app.Use(driftmw.BodyParser())

	protected := app.Group("")
	protected.Use(middleware.Auth(sessions))
	protected.Get("/workspaces/:wid/content-plan", handler.List)
	protected.Post("/workspaces/:wid/content-plan", handler.Create)
	protected.Post("/workspaces/:wid/content-plan/reset", handler.Reset)
	protected.Delete("/workspaces/:wid/content-plan/:id", handler.Delete)

	token, err := sessions.Generate("muntadher")
	require.NoError(t, err)
	return app, token
}

func createPlanItem(t *testing.T, app http.Handler, token, month string, day int, title string) {
	t.Helper()
	rec := doJSON(t, app, http.MethodPost, "/workspaces/khotawat/content-plan", token,
		dto.CreateContentPlanItemRequest{PlanMonth: month, DayOfMonth: day, Title: title})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestContentPlanHandler_Reset(t *testing.T) {
	app, token := setupContentPlanTest(t)

	createPlanItem(t, app, token, "2025-06", 3, "launch teaser")
	createPlanItem(t, app, token, "2025-06", 10, "product photos")
	createPlanItem(t, app, token, "2025-07", 1, "summer promo")

	rec := doJSON(t, app, http.MethodPost, "/workspaces/khotawat/content-plan/reset", token,
		dto.ResetContentPlanRequest{Month: "2025-06"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ResetContentPlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Deleted)

	rec = doJSON(t, app, http.MethodGet, "/workspaces/khotawat/content-plan", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var items []models.ContentPlanItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "summer promo", items[0].Title)
}

func TestContentPlanHandler_Reset_MonthFromQuery(t *testing.T) {
	app, token := setupContentPlanTest(t)

	createPlanItem(t, app, token, "2025-06", 3, "launch teaser")

	rec := doJSON(t, app, http.MethodPost, "/workspaces/khotawat/content-plan/reset?month=2025-06", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ResetContentPlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Deleted)
}

func TestContentPlanHandler_Reset_MissingMonth(t *testing.T) {
	app, token := setupContentPlanTest(t)

	rec := doJSON(t, app, http.MethodPost, "/workspaces/khotawat/content-plan/reset", token, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "month is required")
}

func TestContentPlanHandler_List_MonthFilter(t *testing.T) {
	app, token := setupContentPlanTest(t)

	createPlanItem(t, app, token, "2025-06", 10, "product photos")
	createPlanItem(t, app, token, "2025-06", 3, "launch teaser")
	createPlanItem(t, app, token, "2025-07", 1, "summer promo")

	rec := doJSON(t, app, http.MethodGet, "/workspaces/khotawat/content-plan?month=2025-06", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var items []models.ContentPlanItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "launch teaser", items[0].Title)
	assert.Equal(t, "product photos", items[1].Title)
}
