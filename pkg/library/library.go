// Package library maintains a persistent index of scanned audio files and
// the metadata decoded from their ID3v2 tags.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/jxs/go-id3/pkg/tag"
)

// ErrNotFound is returned when no entry exists for an ID.
var ErrNotFound = fmt.Errorf("library: entry not found")

// Entry is one indexed audio file.
type Entry struct {
	ID         string    `json:"id"`
	Path       string    `json:"path"`
	Title      string    `json:"title,omitempty"`
	Artist     string    `json:"artist,omitempty"`
	Album      string    `json:"album,omitempty"`
	Genre      string    `json:"genre,omitempty"`
	FrameCount int       `json:"frame_count"`
	AddedAt    time.Time `json:"added_at"`
}

// Library is a pebble-backed index of entries keyed by KSUID.
type Library struct {
	db *pebble.DB
}

// Open opens (or creates) a library at the given path.
func Open(path string) (*Library, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("library: opening database: %w", err)
	}
	return &Library{db: db}, nil
}

// Close closes the underlying database.
func (l *Library) Close() error {
	return l.db.Close()
}

// Add stores an entry under a fresh KSUID and returns its ID.
func (l *Library) Add(e Entry) (string, error) {
	id := ksuid.New()
	e.ID = id.String()
	if e.AddedAt.IsZero() {
		e.AddedAt = time.Now().UTC()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("library: marshaling entry: %w", err)
	}
	if err := l.db.Set(id.Bytes(), data, pebble.NoSync); err != nil {
		return "", fmt.Errorf("library: storing entry: %w", err)
	}
	return e.ID, nil
}

// Get returns the entry with the given ID.
func (l *Library) Get(id string) (*Entry, error) {
	key, err := ksuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("library: invalid entry id %q: %w", id, err)
	}

	data, closer, err := l.db.Get(key.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("library: reading entry: %w", err)
	}
	defer closer.Close()

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("library: unmarshaling entry: %w", err)
	}
	return &e, nil
}

// List returns all entries in key order.
func (l *Library) List() ([]Entry, error) {
	iter, err := l.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("library: creating iterator: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		var e Entry
		if err := json.Unmarshal(iter.Value(), &e); err != nil {
			return nil, fmt.Errorf("library: unmarshaling entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("library: iterating entries: %w", err)
	}
	return entries, nil
}

// Delete removes the entry with the given ID.
func (l *Library) Delete(id string) error {
	key, err := ksuid.Parse(id)
	if err != nil {
		return fmt.Errorf("library: invalid entry id %q: %w", id, err)
	}
	if err := l.db.Delete(key.Bytes(), pebble.NoSync); err != nil {
		return fmt.Errorf("library: deleting entry: %w", err)
	}
	return nil
}

// AddFile decodes the ID3v2 tag of the file at path and indexes it.
func (l *Library) AddFile(path string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("library: opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := tag.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("library: decoding tag of %s: %w", path, err)
	}

	e := Entry{
		Path:       path,
		Title:      t.Title(),
		Artist:     t.Artist(),
		Album:      t.Album(),
		Genre:      t.Genre(),
		FrameCount: len(t.Frames()),
		AddedAt:    time.Now().UTC(),
	}
	id, err := l.Add(e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return &e, nil
}

// ScanDir walks dir and indexes every .mp3 file whose tag decodes. Files
// without a tag or with one this codec rejects are skipped; the scan
// reports how many entries were added and how many files were skipped.
func (l *Library) ScanDir(dir string) (added, skipped int, err error) {
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}
		if _, err := l.AddFile(path); err != nil {
			skipped++
			return nil
		}
		added++
		return nil
	})
	if err != nil {
		return added, skipped, fmt.Errorf("library: scanning %s: %w", dir, err)
	}
	return added, skipped, nil
}
