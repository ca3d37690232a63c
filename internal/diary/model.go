package diary

// Entry is one logged food item for a given day. The json tags match the
// on-disk state file layout.
type Entry struct {
	ID   string `json:"id,omitempty"`
	Raw  string `json:"raw"`
	Name string `json:"name"`
	Kcal int    `json:"kcal"`
}

// DaySummary is everything the dashboard shows for one date.
type DaySummary struct {
	Date        string   `json:"date"`
	Entries     []Entry  `json:"entries"`
	ItemCount   int      `json:"item_count"`
	TotalKcal   int      `json:"total_kcal"`
	CarbsKcal   int      `json:"carbs_kcal"`
	ProteinKcal int      `json:"protein_kcal"`
	FatKcal     int      `json:"fat_kcal"`
	TargetKcal  int      `json:"target_kcal"`
	TargetPct   float64  `json:"target_pct"`
	Tips        []string `json:"tips"`
	Activities  []string `json:"activities"`
}
