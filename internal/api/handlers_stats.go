package api

import "net/http"

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"backend": s.backend,
		"model":   s.model,
		"stats":   s.stats.Snapshot(),
	})
}
