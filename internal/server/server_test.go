package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/0r3ntal/RigMonitor/internal/config"
	"github.com/0r3ntal/RigMonitor/internal/handler"
	"github.com/0r3ntal/RigMonitor/internal/protocol"
	"github.com/0r3ntal/RigMonitor/internal/sensor"
	"github.com/0r3ntal/RigMonitor/internal/service"
	"github.com/0r3ntal/RigMonitor/internal/websocket"
)

func newTestRouter() http.Handler {
	log := zap.NewNop()
	dashboard := service.NewDashboardService(log, sensor.NewSeededGenerator(11), config.Default().Dashboard)
	hub := websocket.NewManager(log)
	return NewRouter(log, handler.NewSensorHandler(log, dashboard, hub))
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCategories(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/categories")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var infos []protocol.CategoryInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, want := len(infos), 5; got != want {
		t.Fatalf("category count = %d, want %d", got, want)
	}
	if infos[0].Category != "corrosion" || infos[0].Unit != "mm/year" {
		t.Errorf("first category = %+v, want corrosion in mm/year", infos[0])
	}
}

func TestOverviewEndpoint(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/sensors/pressure")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var overview protocol.OverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, want := len(overview.Rows), 10; got != want {
		t.Fatalf("row count = %d, want %d", got, want)
	}
	for i, row := range overview.Rows {
		if row.SensorID != i {
			t.Errorf("row %d sensor id = %d", i, row.SensorID)
		}
	}
}

func TestOverviewUnknownCategory(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/sensors/vibration")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message in the response body")
	}
}

func TestDetailEndpoint(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/sensors/corrosion/3?hours=2&interval=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var detail protocol.DetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.SensorID != 3 || detail.Hours != 2 || detail.Interval != 10 {
		t.Errorf("detail = (id %d, %dh, %dm), want (3, 2h, 10m)", detail.SensorID, detail.Hours, detail.Interval)
	}
	if got, want := len(detail.Readings), 13; got != want {
		t.Errorf("reading count = %d, want %d", got, want)
	}
	if len(detail.Mechanisms) == 0 {
		t.Error("corrosion detail reports no mechanisms")
	}
}

func TestDetailBadSensorID(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/sensors/pressure/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDetailWindowOutOfBounds(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/sensors/pressure/3?hours=999")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDashboardPage(t *testing.T) {
	rec := get(t, newTestRouter(), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Oil Rig Sensor Dashboard") {
		t.Error("dashboard page missing title")
	}
}
