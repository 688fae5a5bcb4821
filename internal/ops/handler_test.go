package ops_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specto/internal/ops"
	"specto/pkg/domain"
	"specto/pkg/geom"
	"specto/pkg/overlay"
)

// fakeController backs the handlers with canned state.
type fakeController struct {
	records []domain.AuditRecord
	layers  []overlay.LayerState
	toggled map[domain.LayerName]bool
	err     error
}

func (f *fakeController) Records(context.Context) []domain.AuditRecord { return f.records }

func (f *fakeController) Layers(context.Context) []overlay.LayerState { return f.layers }

func (f *fakeController) ToggleLayer(_ context.Context, name domain.LayerName, visible bool) error {
	if f.err != nil {
		return f.err
	}
	if f.toggled == nil {
		f.toggled = make(map[domain.LayerName]bool)
	}
	f.toggled[name] = visible
	return nil
}

func newServer(t *testing.T, ctrl *fakeController) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(ops.NewRouter(ops.New(ctrl, logger)))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newServer(t, &fakeController{})

	var body map[string]string
	status := getJSON(t, srv.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestAuditDump(t *testing.T) {
	ctrl := &fakeController{records: []domain.AuditRecord{
		{
			ID:        1,
			Type:      domain.InteractionOptimize,
			Position:  geom.Vec3{X: 1, Y: 2, Z: 3},
			Metadata:  map[string]any{"hub": "SP"},
			Timestamp: time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC),
		},
		{ID: 2, Type: "surprise"},
	}}
	srv := newServer(t, ctrl)

	var body struct {
		Count   int `json:"count"`
		Records []struct {
			ID       uint64         `json:"id"`
			Type     string         `json:"type"`
			Position map[string]any `json:"position"`
			Metadata map[string]any `json:"metadata"`
		} `json:"records"`
	}
	status := getJSON(t, srv.URL+"/audit", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Records, 2)
	assert.Equal(t, "optimize", body.Records[0].Type)
	assert.Equal(t, 1.0, body.Records[0].Position["x"])
	assert.Equal(t, "SP", body.Records[0].Metadata["hub"])
	assert.Equal(t, "surprise", body.Records[1].Type)
}

func TestLayers(t *testing.T) {
	ctrl := &fakeController{layers: []overlay.LayerState{
		{Name: domain.LayerAudit, Visible: true, Objects: 5},
		{Name: domain.LayerConfidence, Visible: false, Objects: 0},
	}}
	srv := newServer(t, ctrl)

	var body struct {
		Layers []struct {
			Name    string `json:"name"`
			Visible bool   `json:"visible"`
			Objects int    `json:"objects"`
		} `json:"layers"`
	}
	status := getJSON(t, srv.URL+"/layers", &body)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, body.Layers, 2)
	assert.Equal(t, "audit", body.Layers[0].Name)
	assert.True(t, body.Layers[0].Visible)
	assert.Equal(t, 5, body.Layers[0].Objects)
}

func TestToggleLayer(t *testing.T) {
	ctrl := &fakeController{}
	srv := newServer(t, ctrl)

	resp, err := http.Post(srv.URL+"/layers/audit", "application/json", strings.NewReader(`{"visible": false}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[domain.LayerName]bool{domain.LayerAudit: false}, ctrl.toggled)

	var body struct {
		Layer   string `json:"layer"`
		Visible bool   `json:"visible"`
		Known   bool   `json:"known"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "audit", body.Layer)
	assert.False(t, body.Visible)
	assert.True(t, body.Known)
}

func TestToggleUnknownLayerIsNoOp(t *testing.T) {
	ctrl := &fakeController{}
	srv := newServer(t, ctrl)

	resp, err := http.Post(srv.URL+"/layers/shadow", "application/json", strings.NewReader(`{"visible": true}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Known bool `json:"known"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Known)
}

func TestToggleLayerBadRequests(t *testing.T) {
	srv := newServer(t, &fakeController{})

	resp, err := http.Post(srv.URL+"/layers/audit", "application/json", strings.NewReader(`{`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/layers/audit", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpointMounted(t *testing.T) {
	srv := newServer(t, &fakeController{})

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
