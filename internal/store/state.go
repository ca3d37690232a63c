package store

import "github.com/KashifaTajreen/Fitness/internal/diary"

// UserRecord is one user's slice of the state file. The json keys ("pw",
// "entries", "remember") are the established file layout; changing them
// orphans existing data files.
type UserRecord struct {
	PasswordHash string                   `json:"pw"`
	Entries      map[string][]diary.Entry `json:"entries"`
	Remember     bool                     `json:"remember"`
}

// State is the whole on-disk document: every user keyed by username.
type State struct {
	Users map[string]*UserRecord `json:"users"`
}

func emptyState() State {
	return State{Users: make(map[string]*UserRecord)}
}
