package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/propertydesk/propertydesk/internal/api/handlers"
	"github.com/propertydesk/propertydesk/internal/core/form"
	"github.com/propertydesk/propertydesk/internal/core/property"
	"github.com/propertydesk/propertydesk/internal/core/validation"
	"github.com/propertydesk/propertydesk/internal/storage/memory"
)

func newTestRouter(t *testing.T) (*gin.Engine, *memory.Slot) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	slot := memory.New()
	store := property.NewStore(slot, property.WithLogger(logger))
	store.Load(context.Background())

	forms := form.NewService(store, validation.NewValidator(), 0)
	router := NewRouter(logger,
		handlers.NewPropertyHandler(store, forms),
		handlers.NewFilterHandler(store),
	)
	return router.Setup(gin.TestMode), slot
}

func TestRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/api/status", "", http.StatusOK},
		{http.MethodGet, "/api/properties", "", http.StatusOK},
		{http.MethodGet, "/api/properties/view", "", http.StatusOK},
		{http.MethodGet, "/api/properties/3", "", http.StatusOK},
		{http.MethodPost, "/api/properties", `{"name":"Lake Cabin","type":"House","price":"210000","location":"Tahoe, CA"}`, http.StatusCreated},
		{http.MethodPut, "/api/properties/3", `{"name":"Luxury Waterfront Condo","type":"Condo","price":"1150000","location":"Miami, FL"}`, http.StatusOK},
		{http.MethodDelete, "/api/properties/1", "", http.StatusNoContent},
		{http.MethodGet, "/api/filters", "", http.StatusOK},
		{http.MethodPatch, "/api/filters", `{"search":"cabin"}`, http.StatusOK},
		{http.MethodDelete, "/api/filters", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d (body %s)", tt.method, tt.path, w.Code, tt.want, w.Body.String())
		}
	}
}

func TestMutationsArePersisted(t *testing.T) {
	r, slot := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/properties/2", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	data, err := slot.Get(context.Background(), property.SnapshotKey)
	if err != nil {
		t.Fatalf("slot.Get: %v", err)
	}
	saved, err := property.DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if len(saved) != 2 {
		t.Errorf("persisted %d records, want 2", len(saved))
	}
}

func TestStatus_ReportsWriteWarning(t *testing.T) {
	r, slot := newTestRouter(t)
	slot.PutErr = io.ErrShortWrite

	req := httptest.NewRequest(http.MethodDelete, "/api/properties/2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	var st property.Status
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	if st.Warning == "" || st.Total != 2 {
		t.Errorf("status = %+v, want warning and 2 records", st)
	}
}
