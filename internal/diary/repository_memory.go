package diary

type InMemoryEntryRepository struct {
	days map[string]map[string][]Entry
}

func NewInMemoryEntryRepository() *InMemoryEntryRepository {
	return &InMemoryEntryRepository{
		days: make(map[string]map[string][]Entry),
	}
}

func (r *InMemoryEntryRepository) Append(username, date string, entries []Entry) error {
	if r.days[username] == nil {
		r.days[username] = make(map[string][]Entry)
	}
	r.days[username][date] = append(r.days[username][date], entries...)
	return nil
}

func (r *InMemoryEntryRepository) List(username, date string) ([]Entry, error) {
	return r.days[username][date], nil
}

func (r *InMemoryEntryRepository) ClearDay(username, date string) error {
	if r.days[username] != nil {
		delete(r.days[username], date)
	}
	return nil
}

func (r *InMemoryEntryRepository) ResetAll(username string) error {
	delete(r.days, username)
	return nil
}
