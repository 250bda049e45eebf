package api

import (
	"encoding/json"
	"net/http"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/questiongen"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// GenerateHandler produces a fresh practice set through the LLM provider.
func GenerateHandler(gen *questiongen.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gen == nil {
			writeError(w, http.StatusServiceUnavailable, "no LLM provider configured")
			return
		}

		var req questiongen.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}

		set, err := gen.Generate(r.Context(), req)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, set)
	}
}

// AnalyticsHandler returns the aggregate report, or a 404 error object
// when no sessions have been recorded yet.
func AnalyticsHandler(tracker *progress.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := tracker.ComputeAnalytics()
		if report == nil {
			writeError(w, http.StatusNotFound, "no practice data yet")
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// RecommendationsHandler returns study recommendations. The lists are
// empty, never absent, when there is nothing to recommend.
func RecommendationsHandler(tracker *progress.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, tracker.Recommendations())
	}
}

// HistoryHandler returns the recorded sessions, most recent last.
func HistoryHandler(tracker *progress.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history := tracker.History()
		if history == nil {
			history = []progress.PracticeSession{}
		}
		writeJSON(w, http.StatusOK, history)
	}
}

// ClearDataHandler wipes all stored progress.
func ClearDataHandler(tracker *progress.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := tracker.ClearAll(); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
	}
}
