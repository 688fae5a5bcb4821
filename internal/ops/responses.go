package ops

import (
	"encoding/json"
	"net/http"
	"time"

	"specto/pkg/domain"
	"specto/pkg/overlay"
)

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type positionDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type recordDTO struct {
	ID        uint64         `json:"id"`
	Type      string         `json:"type"`
	Position  positionDTO    `json:"position"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type auditResponse struct {
	Count   int         `json:"count"`
	Records []recordDTO `json:"records"`
}

type layerDTO struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Objects int    `json:"objects"`
}

type layersResponse struct {
	Layers []layerDTO `json:"layers"`
}

type toggleLayerRequest struct {
	Visible *bool `json:"visible"`
}

type toggleLayerResponse struct {
	Layer   string `json:"layer"`
	Visible bool   `json:"visible"`
	Known   bool   `json:"known"`
}

func toAuditResponse(records []domain.AuditRecord) auditResponse {
	out := auditResponse{Count: len(records), Records: make([]recordDTO, 0, len(records))}
	for _, rec := range records {
		out.Records = append(out.Records, recordDTO{
			ID:        uint64(rec.ID),
			Type:      rec.Type.String(),
			Position:  positionDTO{X: rec.Position.X, Y: rec.Position.Y, Z: rec.Position.Z},
			Metadata:  rec.Metadata,
			Timestamp: rec.Timestamp,
		})
	}
	return out
}

func toLayersResponse(states []overlay.LayerState) layersResponse {
	out := layersResponse{Layers: make([]layerDTO, 0, len(states))}
	for _, s := range states {
		out.Layers = append(out.Layers, layerDTO{Name: s.Name.String(), Visible: s.Visible, Objects: s.Objects})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
