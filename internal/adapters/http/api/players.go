package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/playerdata/internal/domain/convert"
	"github.com/okian/playerdata/internal/domain/model"
)

// readBody reads the request body up to the configured limit.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	limit := int64(s.deps.MaxInputBytes())
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrPayloadTooLarge
		}
		return nil, badRequest("read body: %v", err)
	}
	return data, nil
}

// formatParam reads ?format=, falling back to def.
func formatParam(r *http.Request, def convert.Format) (convert.Format, error) {
	name := r.URL.Query().Get("format")
	if name == "" {
		return def, nil
	}
	return convert.ParseFormat(name)
}

func playerParam(r *http.Request) (model.Player, error) {
	return model.NewPlayer(chi.URLParam(r, "player"))
}

// handleConvert handles POST /v1/convert/{format}.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	format, err := convert.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.deps.Convert(r.Context(), format, data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, renderConversion(res))
}

// handleIngestFeed handles POST /v1/players/{player}/feed.
func (s *Server) handleIngestFeed(w http.ResponseWriter, r *http.Request) {
	player, err := playerParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format, err := formatParam(r, convert.FormatMarkup)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	report, err := s.deps.IngestFeed(r.Context(), player, format, data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleGetFeed handles GET /v1/players/{player}/feed.
func (s *Server) handleGetFeed(w http.ResponseWriter, r *http.Request) {
	player, err := playerParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	f, err := s.deps.Feed(r.Context(), player)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, renderFeed(player.Name, f))
}

// handleIngestHighscore handles POST /v1/players/{player}/highscore.
func (s *Server) handleIngestHighscore(w http.ResponseWriter, r *http.Request) {
	player, err := playerParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format, err := formatParam(r, convert.FormatLite)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	report, err := s.deps.IngestHighscore(r.Context(), player, format, data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleGetHighscore handles GET /v1/players/{player}/highscore.
func (s *Server) handleGetHighscore(w http.ResponseWriter, r *http.Request) {
	player, err := playerParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	snapshot, err := s.deps.LatestHighscore(r.Context(), player)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, renderSnapshot(snapshot))
}

// handleGetHighscoreHistory handles GET /v1/players/{player}/highscore/history.
func (s *Server) handleGetHighscoreHistory(w http.ResponseWriter, r *http.Request) {
	player, err := playerParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	history, err := s.deps.HighscoreHistory(r.Context(), player)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]snapshotResponse, 0, len(history))
	for _, snapshot := range history {
		out = append(out, renderSnapshot(snapshot))
	}
	writeJSON(w, http.StatusOK, out)
}
