package server

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/smartmatch/jobmatcher/internal/matching"
	"github.com/smartmatch/jobmatcher/internal/preferences"
)

// maxBodySize bounds the request body; preference documents are small.
const maxBodySize = 1 << 20

type recommendResponse struct {
	Status      string                   `json:"status"`
	Preferences *preferences.Preferences `json:"converted_preferences"`
	Results     matching.Results         `json:"results"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"jobs":   s.catalog.Len(),
	})
}

// handleRecommend accepts a raw preference document of any supported shape,
// normalizes it and returns the scored matches. Only syntactically invalid
// JSON is rejected; odd-but-parseable input normalizes best-effort.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read_failed", "reading request body failed")
		return
	}

	prefs, err := preferences.Normalize(body)
	if err != nil {
		var formatErr *preferences.FormatError
		code := "bad_request"
		if errors.As(err, &formatErr) {
			code = "invalid_format"
		}
		s.logger.Debug("rejecting preferences input", zap.Error(err))
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}

	results := matching.Match(prefs, s.catalog)
	s.logger.Info("recommendation served",
		zap.Int("results", len(results)),
		zap.Int("min_salary", prefs.MinSalary),
	)

	writeJSON(w, http.StatusOK, recommendResponse{
		Status:      "success",
		Preferences: prefs,
		Results:     results,
	})
}
