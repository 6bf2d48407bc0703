package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-timeline/internal/logger"
	"github.com/jonathan/resume-timeline/internal/rendering"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex renders the resume page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc, err := s.reader.Document(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	view, err := s.reader.View(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := rendering.RenderHTML(&buf, doc, view); err != nil {
		s.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// handleResume returns the loaded document
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	doc, err := s.reader.Document(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, doc)
}

// handleTimeline returns both sorted timelines
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	view, err := s.reader.View(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, view)
}

// handleTimelineSection returns one sorted timeline
func (s *Server) handleTimelineSection(w http.ResponseWriter, r *http.Request) {
	view, err := s.reader.View(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	entries, err := view.Section(r.PathValue("section"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, entries)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Ctx(r.Context()).Error().Err(err).Msg("Error encoding JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.jsonResponse(w, r, status, map[string]string{"error": message})
}

// handleError maps err to a status code and writes it as JSON.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= 500 {
		logger.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
	}
	s.errorResponse(w, r, status, PublicMessage(err))
}
