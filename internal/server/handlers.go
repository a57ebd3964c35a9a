package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ironsheep/color-mixer/internal/mixer"
	"github.com/ironsheep/color-mixer/internal/swatch"
)

// addColorRequest is the body of POST /api/add-color.
type addColorRequest struct {
	// Color is required: a family name, fused shade name, or recognized hex
	// code.
	Color string `json:"color"`

	// Quantity defaults to 1 when omitted and must be greater than zero.
	Quantity *int `json:"quantity,omitempty"`

	// Shade defaults to "standard". Ignored for hex codes and fused names.
	Shade string `json:"shade,omitempty"`
}

// colorResponse carries one color in both representations the front-end
// uses.
type colorResponse struct {
	Color string   `json:"color"` // "#RRGGBB"
	RGB   [3]uint8 `json:"rgb"`
}

// historyRecord is the wire form of one saved mix.
type historyRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Inputs    []string  `json:"inputs"` // hex strings, insertion order
	Color     string    `json:"color"`
	RGB       [3]uint8  `json:"rgb"`
}

// statusResponse is the liveness payload.
type statusResponse struct {
	Status string `json:"status"`
	Colors int    `json:"colors"`
}

func toColorResponse(c mixer.Color) colorResponse {
	return colorResponse{Color: c.Hex(), RGB: c.RGB()}
}

func toHistoryRecord(e mixer.HistoryEntry) historyRecord {
	inputs := make([]string, len(e.Inputs))
	for i, c := range e.Inputs {
		inputs[i] = c.Hex()
	}
	return historyRecord{
		Timestamp: e.At,
		Inputs:    inputs,
		Color:     e.Result.Hex(),
		RGB:       e.Result.RGB(),
	}
}

// handleAddColor validates the request, adds the colors atomically, and
// responds with the fresh mix.
func (s *Server) handleAddColor(w http.ResponseWriter, r *http.Request) {
	var req addColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", mixer.ErrInvalidColorFormat))
		return
	}

	if req.Color == "" {
		writeError(w, fmt.Errorf("%w: color cannot be empty", mixer.ErrInvalidColorFormat))
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := s.mixer.AddMany(req.Color, req.Shade, quantity); err != nil {
		writeError(w, err)
		return
	}

	result, err := s.mixer.MixedColor()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toColorResponse(result))
}

func (s *Server) handleCurrentColor(w http.ResponseWriter, r *http.Request) {
	result, err := s.mixer.MixedColor()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toColorResponse(result))
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mixer.Clear()
	writeJSON(w, http.StatusOK, statusResponse{Status: "cleared"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries := s.mixer.History()
	records := make([]historyRecord, len(entries))
	for i, e := range entries {
		records[i] = toHistoryRecord(e)
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleSaveHistory(w http.ResponseWriter, r *http.Request) {
	entry, err := s.mixer.SaveToHistory()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryRecord(entry))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Colors: s.mixer.Len()})
}

// handleSwatch renders a PNG preview of the current mix. Dimensions come
// from the width/height query parameters, both defaulting to
// swatch.DefaultSize.
func (s *Server) handleSwatch(w http.ResponseWriter, r *http.Request) {
	width, err := sizeParam(r, "width")
	if err != nil {
		writeError(w, err)
		return
	}
	height, err := sizeParam(r, "height")
	if err != nil {
		writeError(w, err)
		return
	}

	result, inputs, err := s.mixer.CurrentMix()
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := swatch.RenderPNG(result, inputs, width, height)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	if _, err := w.Write(payload); err != nil {
		log.Printf("failed to write swatch response: %v", err)
	}
}

func sizeParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return swatch.DefaultSize, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse %q", mixer.ErrInvalidColorFormat, name)
	}
	return n, nil
}
