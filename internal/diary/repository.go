package diary

// EntryRepository defines the data-access contract for day logs.
// Service depends ONLY on this interface.
type EntryRepository interface {
	Append(username, date string, entries []Entry) error
	List(username, date string) ([]Entry, error)
	ClearDay(username, date string) error
	ResetAll(username string) error
}
