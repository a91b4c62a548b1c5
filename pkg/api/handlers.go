package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/jxs/go-id3/pkg/frame"
	"github.com/jxs/go-id3/pkg/library"
	"github.com/jxs/go-id3/pkg/tag"
)

// Server holds the API server state
type Server struct {
	library TrackLibrary
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(lib TrackLibrary, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		library: lib,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports service health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleListTracks returns all indexed tracks.
func (s *Server) handleListTracks(w http.ResponseWriter, r *http.Request) {
	entries, err := s.library.List()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, entries)
}

// handleGetTrack returns a single track entry.
func (s *Server) handleGetTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, err := s.library.Get(id)
	if errors.Is(err, library.ErrNotFound) {
		sendError(w, "Track not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, entry)
}

// handleGetFrames decodes the track's tag afresh and returns its frames.
func (s *Server) handleGetFrames(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, err := s.library.Get(id)
	if errors.Is(err, library.ErrNotFound) {
		sendError(w, "Track not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	f, err := os.Open(entry.Path)
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	t, err := tag.Decode(f)
	if err != nil {
		s.metrics.RecordTagDecode(false, 0)
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.metrics.RecordTagDecode(true, len(t.Frames()))

	frames := make([]FrameInfo, 0, len(t.Frames()))
	for _, fr := range t.Frames() {
		frames = append(frames, FrameInfo{
			ID:                    fr.ID(),
			Kind:                  contentKind(fr.Content()),
			Summary:               fr.String(),
			TagAlterPreservation:  fr.TagAlterPreservation(),
			FileAlterPreservation: fr.FileAlterPreservation(),
			ReadOnly:              fr.ReadOnly(),
		})
	}
	sendSuccess(w, frames)
}

// handleDeleteTrack removes a track from the index.
func (s *Server) handleDeleteTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.library.Delete(id); err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]string{"id": id})
}

// handleScan indexes a directory of audio files.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid scan request", http.StatusBadRequest)
		return
	}
	dir := req.Dir
	if dir == "" {
		dir = s.config.MusicDir
	}

	added, skipped, err := s.library.ScanDir(dir)
	if err != nil {
		s.metrics.RecordScan(false)
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordScan(true)
	sendSuccess(w, ScanResult{Added: added, Skipped: skipped})
}

// contentKind names a content variant for the wire.
func contentKind(c frame.Content) string {
	switch c.(type) {
	case frame.Text:
		return "text"
	case frame.Link:
		return "link"
	case frame.ExtendedText:
		return "extended_text"
	case frame.ExtendedLink:
		return "extended_link"
	case frame.Comment:
		return "comment"
	case frame.Lyrics:
		return "lyrics"
	case frame.Picture:
		return "picture"
	default:
		return "unknown"
	}
}
