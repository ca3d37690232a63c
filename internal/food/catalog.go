package food

// Calorie values are per typical serving. Several labels embed the serving
// size directly, e.g. "rice (1 cup)". Insertion order matters for fuzzy
// matching ties, so the table is a slice and the lookup map is derived.
type catalogEntry struct {
	name string
	kcal int
}

var catalogEntries = []catalogEntry{
	// Indian staples
	{"roti", 80}, {"chapati", 80}, {"paratha", 180}, {"naan", 260}, {"puri", 100},
	{"rice (1 cup)", 206}, {"brown rice (1 cup)", 215}, {"biryani (1 plate)", 550},
	{"dal (1 cup)", 180}, {"sambar (1 cup)", 150}, {"rasam (1 cup)", 60},
	{"idli (1 piece)", 58}, {"dosa (1)", 180}, {"vada (1)", 140}, {"uttapam (1)", 220},
	{"poha (1 plate)", 250}, {"upma (1 bowl)", 250}, {"pav bhaji (1 plate)", 450},
	{"chole (1 cup)", 280}, {"rajma (1 cup)", 260},
	{"paneer butter masala (1 cup)", 450}, {"kadai paneer (1 cup)", 320},
	{"butter chicken (1 cup)", 420}, {"chicken curry (1 cup)", 300},
	{"mutton curry (1 cup)", 450}, {"fish curry (1 cup)", 320},
	{"egg (1)", 78}, {"omelette (2 eggs)", 190},
	{"maggi (1 packet)", 330},
	// Snacks & street
	{"samosa (1)", 250}, {"pakora (5 pcs)", 300}, {"chicken roll (1)", 380},
	{"kachori (1)", 200}, {"jalebi (100 g)", 400}, {"golgappa (6)", 150},
	// Beverages
	{"chai (1 cup)", 100}, {"coffee (1 cup)", 60}, {"lassi (1 glass)", 250},
	{"buttermilk (1 glass)", 70}, {"soda (1 can)", 140},
	// Western/common
	{"pizza slice (1)", 285}, {"burger (1)", 500}, {"fries (medium)", 365},
	{"sandwich (1)", 300}, {"pasta (1 cup)", 220},
	// Breakfast & sides
	{"bread slice (1)", 70}, {"butter (1 tbsp)", 102}, {"ghee (1 tbsp)", 120},
	{"curd (1 cup)", 200}, {"yogurt (1 cup)", 150}, {"milk (1 cup)", 120},
	{"oats (1 cup cooked)", 160}, {"quinoa (1 cup cooked)", 220},
	{"cornflakes (1 cup)", 100},
	// Fruits
	{"apple (1)", 95}, {"banana (1)", 105}, {"orange (1)", 62}, {"grapes (1 cup)", 104},
	// Desserts
	{"gulab jamun (1)", 150}, {"ladoo (1)", 185}, {"kheer (1 bowl)", 300}, {"halwa (1 bowl)", 350},
	// Salads
	{"salad (1 bowl)", 120},
}

var (
	catalog      map[string]int
	catalogOrder []string
)

func init() {
	catalog = make(map[string]int, len(catalogEntries))
	catalogOrder = make([]string, 0, len(catalogEntries))
	for _, e := range catalogEntries {
		catalog[e.name] = e.kcal
		catalogOrder = append(catalogOrder, e.name)
	}
}

// synonym maps an informal phrase fragment to a canonical label. Matching is
// substring containment and the FIRST matching entry wins, so the order of
// this table is load-bearing: do not sort or convert it to a map.
type synonym struct {
	fragment  string
	canonical string
}

var synonyms = []synonym{
	{"chapathi", "chapati"},
	{"chapathi roti", "roti"},
	{"parantha", "paratha"},
	{"tea", "chai"},
	{"coffee", "coffee"},
	{"paneer butter", "paneer butter masala (1 cup)"},
	{"butter paneer", "paneer butter masala (1 cup)"},
	{"chicken biryani", "biryani (1 plate)"},
	{"veg biryani", "biryani (1 plate)"},
	{"curd", "yogurt (1 cup)"},
	{"dahi", "yogurt (1 cup)"},
	{"bhaji", "pav bhaji (1 plate)"},
	{"fried potatoes", "fries (medium)"},
	{"french fries", "fries (medium)"},
	{"omelet", "omelette (2 eggs)"},
	{"maggi noodles", "maggi (1 packet)"},
}

// quantityWord maps a spelled-out count to its value. Checked whole-word, in
// this order, only when the phrase carries no digits.
type quantityWord struct {
	word  string
	value int
}

var quantityWords = []quantityWord{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
	{"a", 1}, {"an", 1},
}
