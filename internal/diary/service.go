package diary

import (
	"regexp"
	"strings"

	"github.com/KashifaTajreen/Fitness/internal/food"
	"github.com/KashifaTajreen/Fitness/internal/suggest"

	"github.com/google/uuid"
)

const defaultTargetKcal = 2000

// Illustrative macro split of the day's calories: 50% carbs, 20% protein,
// 30% fat. Display guidance only, not a nutrition claim.
const (
	carbsShare   = 0.5
	proteinShare = 0.2
	fatShare     = 0.3
)

var splitInput = regexp.MustCompile(`[,\n]+`)

type Service struct {
	repo EntryRepository
}

func NewService(repo EntryRepository) *Service {
	return &Service{repo: repo}
}

// LogMeals splits free text on commas and newlines, resolves each phrase in
// input order, and appends the results to the user's day. Returns the added
// entries and their calorie sum.
func (s *Service) LogMeals(username, date, text string) ([]Entry, int, error) {
	var added []Entry
	total := 0

	for _, part := range splitInput.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		r := food.Resolve(part)
		added = append(added, Entry{
			ID:   uuid.New().String(),
			Raw:  r.Raw,
			Name: r.Name,
			Kcal: r.Kcal,
		})
		total += r.Kcal
	}

	if len(added) == 0 {
		return nil, 0, nil
	}

	if err := s.repo.Append(username, date, added); err != nil {
		return nil, 0, err
	}

	return added, total, nil
}

// Day assembles the dashboard summary for one date: entries, totals, an
// illustrative macro split, progress toward the calorie target, swap tips and
// activity nudges.
func (s *Service) Day(username, date string, targetKcal int) (DaySummary, error) {
	entries, err := s.repo.List(username, date)
	if err != nil {
		return DaySummary{}, err
	}

	if targetKcal <= 0 {
		targetKcal = defaultTargetKcal
	}

	total := 0
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		total += e.Kcal
		names = append(names, e.Name)
	}

	pct := float64(total) / float64(targetKcal)
	if pct > 1 {
		pct = 1
	}

	return DaySummary{
		Date:        date,
		Entries:     entries,
		ItemCount:   len(entries),
		TotalKcal:   total,
		CarbsKcal:   int(float64(total) * carbsShare),
		ProteinKcal: int(float64(total) * proteinShare),
		FatKcal:     int(float64(total) * fatShare),
		TargetKcal:  targetKcal,
		TargetPct:   pct,
		Tips:        suggest.Alternatives(names),
		Activities:  suggest.Activities(total),
	}, nil
}

func (s *Service) ClearDay(username, date string) error {
	return s.repo.ClearDay(username, date)
}

func (s *Service) ResetAll(username string) error {
	return s.repo.ResetAll(username)
}
