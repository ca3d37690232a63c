// Package store persists application state as a single flat JSON file, read
// wholesale at startup and rewritten wholesale on every mutation. Last writer
// wins; there is no locking across processes. That is the intended contract
// for a single-user data file, not an oversight.
package store

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/KashifaTajreen/Fitness/internal/diary"
)

const DefaultPath = "calmate_db.json"

type FileStore struct {
	path string

	mu    sync.Mutex
	state State
}

// Open loads the state file at path. A missing or unreadable file yields an
// empty state; a corrupt file is discarded rather than surfaced, so the app
// always starts.
func Open(path string) *FileStore {
	return &FileStore{
		path:  path,
		state: loadState(path),
	}
}

func loadState(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		return emptyState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("store: ignoring corrupt state file %s: %v", path, err)
		return emptyState()
	}
	if state.Users == nil {
		state.Users = make(map[string]*UserRecord)
	}
	return state
}

// persist rewrites the whole document. Failures are logged, never surfaced:
// the in-memory state keeps the session working either way. Callers must
// hold mu.
func (s *FileStore) persist() {
	data, err := json.MarshalIndent(&s.state, "", "  ")
	if err != nil {
		log.Printf("store: failed to encode state: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		log.Printf("store: failed to save %s: %v", s.path, err)
	}
}

// ensureUser returns the record for username, creating it if needed.
// Callers must hold mu.
func (s *FileStore) ensureUser(username string) *UserRecord {
	rec, ok := s.state.Users[username]
	if !ok {
		rec = &UserRecord{Entries: make(map[string][]diary.Entry)}
		s.state.Users[username] = rec
	}
	if rec.Entries == nil {
		rec.Entries = make(map[string][]diary.Entry)
	}
	return rec
}
