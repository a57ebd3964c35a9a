package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/ironsheep/color-mixer/internal/mixer"
)

// Server exposes one Mixer over HTTP.
type Server struct {
	mixer     *mixer.Mixer
	staticDir string
}

// New creates a server around the given mixer. staticDir is the directory
// served for non-API paths; an empty value disables static serving.
func New(m *mixer.Mixer, staticDir string) *Server {
	return &Server{
		mixer:     m,
		staticDir: staticDir,
	}
}

// Handler builds the route table. Exposed separately from Serve so tests can
// drive it through httptest without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/add-color", s.handleAddColor)
	mux.HandleFunc("GET /api/current-color", s.handleCurrentColor)
	mux.HandleFunc("DELETE /api/clear", s.handleClear)
	// The first iteration of the front-end cleared with POST; kept working.
	mux.HandleFunc("POST /api/clear", s.handleClear)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("POST /api/history", s.handleSaveHistory)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/swatch", s.handleSwatch)
	if s.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}
	return mux
}

// shutdownWhenDone invokes http.Server.Shutdown when the given context is
// cancelled. Blocks until cancellation.
func shutdownWhenDone(ctx context.Context, server *http.Server) {
	<-ctx.Done()

	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Print("shutting down server")
	if err := server.Shutdown(c); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// Serve accepts connections on the listener until the context is cancelled,
// then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := http.Server{
		Handler: s.Handler(),
	}

	go shutdownWhenDone(ctx, &server)

	log.Printf("server listening on %s", listener.Addr())
	err := server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		log.Print("server stopped")
		return nil
	}
	return err
}

// errorBody is the JSON error envelope: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// statusForError maps core errors to HTTP statuses: everything user-caused
// is 400, the rest 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, mixer.ErrUnsupportedColor),
		errors.Is(err, mixer.ErrInvalidColorFormat),
		errors.Is(err, mixer.ErrMaxColorsReached),
		errors.Is(err, mixer.ErrNoColors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("failed to marshal response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(`{"error":"internal error"}`)); err != nil {
			log.Printf("failed to write HTTP 500 response: %v", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		log.Printf("failed to write HTTP response: %v", err)
	}
}
