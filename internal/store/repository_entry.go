package store

import "github.com/KashifaTajreen/Fitness/internal/diary"

// FileEntryRepository implements diary.EntryRepository over the shared state
// file.
type FileEntryRepository struct {
	store *FileStore
}

func NewFileEntryRepository(store *FileStore) *FileEntryRepository {
	return &FileEntryRepository{store: store}
}

func (r *FileEntryRepository) Append(username, date string, entries []diary.Entry) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ensureUser(username)
	rec.Entries[date] = append(rec.Entries[date], entries...)

	s.persist()
	return nil
}

func (r *FileEntryRepository) List(username, date string) ([]diary.Entry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.state.Users[username]
	if !ok {
		return nil, nil
	}

	day := rec.Entries[date]
	out := make([]diary.Entry, len(day))
	copy(out, day)
	return out, nil
}

func (r *FileEntryRepository) ClearDay(username, date string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.state.Users[username]
	if !ok {
		return nil
	}
	delete(rec.Entries, date)

	s.persist()
	return nil
}

// ResetAll wipes a user's entries but keeps the account itself.
func (r *FileEntryRepository) ResetAll(username string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.state.Users[username]
	if !ok {
		return nil
	}
	rec.Entries = make(map[string][]diary.Entry)

	s.persist()
	return nil
}
