package httpapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lexicore/symspell/internal/audit"
	"github.com/lexicore/symspell/internal/symspell"
)

// handleSpellchecker implements the embedding contract named in spec.md
// §6: POST a body {"text": "..."}, get back {"text": best.Term}. Body
// parsing uses gjson instead of encoding/json + a struct, since the only
// field read is "text".
func (s *Server) handleSpellchecker(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "reading request body", http.StatusBadRequest)
		return
	}

	text := gjson.GetBytes(body, "text")
	if !text.Exists() {
		http.Error(w, `missing "text" field`, http.StatusBadRequest)
		return
	}

	corrected, item, err := s.corrector.CorrectPhrase(text.String())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.tracker != nil {
		rec := audit.CorrectionRecord{
			Original:    text.String(),
			Corrected:   corrected,
			Distance:    item.Distance,
			Count:       item.Count,
			Verbosity:   "top",
			CorrectedAt: time.Now(),
			ClientID:    r.Header.Get("X-Client-Id"),
		}
		if err := s.tracker.RecordCorrection(false, rec); err != nil {
			log.Printf("recording correction: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": corrected})
}

// handleLookup exposes SingleTermLookup directly, a natural complement to
// the compound endpoint that exercises every Verbosity mode over HTTP.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		http.Error(w, "missing word query parameter", http.StatusBadRequest)
		return
	}

	verbosity := symspell.Top
	switch r.URL.Query().Get("verbosity") {
	case "closest":
		verbosity = symspell.Closest
	case "all":
		verbosity = symspell.All
	}

	maxDistance := s.maxEditDistance
	if raw := r.URL.Query().Get("max_distance"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			maxDistance = parsed
		}
	}

	suggestions, err := s.engine.Lookup(word, verbosity, maxDistance, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, suggestions)
}

// handleHealthz is a liveness probe: it always reports status "ok" together
// with the number of live dictionary terms, from which a caller can tell
// whether a dictionary has actually been loaded.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	stats := s.engine.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"term_count": stats.TermCount,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
