package api

import "github.com/jxs/go-id3/pkg/library"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// FrameInfo is the wire representation of one decoded frame.
type FrameInfo struct {
	ID                    string `json:"id"`
	Kind                  string `json:"kind"`
	Summary               string `json:"summary"`
	TagAlterPreservation  bool   `json:"tag_alter_preservation"`
	FileAlterPreservation bool   `json:"file_alter_preservation"`
	ReadOnly              bool   `json:"read_only"`
}

// ScanRequest asks the server to index a directory of audio files.
type ScanRequest struct {
	Dir string `json:"dir"`
}

// ScanResult reports the outcome of a scan.
type ScanResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind     string
	Port     int
	APIKey   string
	MusicDir string
}

// TrackLibrary defines the library operations the API needs.
type TrackLibrary interface {
	Get(id string) (*library.Entry, error)
	List() ([]library.Entry, error)
	Delete(id string) error
	ScanDir(dir string) (added, skipped int, err error)
}
