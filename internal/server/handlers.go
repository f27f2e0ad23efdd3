package server

import (
	"encoding/json"
	"net/http"
)

// apiResponse is the wire envelope shared by every endpoint.
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeSuccess writes a success envelope.
func (s *Server) writeSuccess(w http.ResponseWriter, data interface{}) {
	s.writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: data})
}

// writeError writes a failure envelope.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, apiResponse{Success: false, Error: msg})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "ok",
		"message": "Backend is running",
		"mode":    s.client.Mode(),
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleSearch searches the static catalog; no upstream call, no cache entry.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	sector := r.URL.Query().Get("sector")

	s.writeSuccess(w, s.catalog.Search(query, sector))
}

// handleSectors lists the distinct catalog sectors.
func (s *Server) handleSectors(w http.ResponseWriter, r *http.Request) {
	s.writeSuccess(w, s.catalog.Sectors())
}
