package bodyComposition

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	route := gin.New()
	// validation paths never reach the store
	ctl := NewController(nil)
	route.POST("/api/body-composition", ctl.Create)
	route.GET("/api/body-composition", ctl.List)
	return route
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	route := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/body-composition", strings.NewReader(`{"weight": 82.5}`))
	req.Header.Set("Content-Type", "application/json")
	route.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "date") {
		t.Errorf("error should name the missing field: %s", w.Body.String())
	}
}

func TestListRejectsBadPagination(t *testing.T) {
	route := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/body-composition?limit=ten", nil)
	route.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
