// Package suggest produces food-swap tips and activity nudges from a day's
// resolved food labels. Everything here is a pure function over static tables.
package suggest

import "strings"

type swapTip struct {
	keyword string
	tip     string
}

// Matched by substring against each resolved label, in table order.
var swapTips = []swapTip{
	{"paratha", "Swap paratha with chapati/roti 🫓 to cut oil and save ~80–100 kcal per piece."},
	{"biryani", "Try veg pulao 🍚 or smaller portion biryani; pair with salad to fill up."},
	{"paneer butter masala", "Choose kadai paneer 🌶️ or palak paneer; ask for less butter/ghee."},
	{"fries", "Baked sweet potato wedges 🍠 or roasted chana."},
	{"burger", "Grilled chicken or paneer sandwich 🥪 with whole wheat bread, skip extra cheese."},
	{"pizza", "Thin-crust veggie pizza 🍕, go easy on cheese, add a side salad."},
	{"samosa", "Air-fried samosa or chana chaat 🥗; limit to one."},
	{"jalebi", "Fresh fruit 🍎 or a small piece of dark chocolate."},
	{"halwa", "Fruit yogurt 🍓 or kheer with less sugar."},
}

var genericTips = []string{
	"Choose grilled/roasted over fried 🔥→🍽️, and ask for less butter/ghee.",
	"Add a fiber boost: salad, veggies, dal 🥗 to feel full with fewer calories.",
}

// highIntakeKcal is the daily total above which an extra activity nudge is
// appended.
const highIntakeKcal = 2200

// Alternatives collects swap tips for the given resolved food labels plus the
// two generic tips, de-duplicated preserving first occurrence.
func Alternatives(names []string) []string {
	var tips []string
	for _, name := range names {
		key := strings.ToLower(name)
		for _, s := range swapTips {
			if strings.Contains(key, s.keyword) {
				tips = append(tips, s.tip)
			}
		}
	}
	tips = append(tips, genericTips...)
	return dedupe(tips)
}

// Activities returns light activity suggestions for the day, with one extra
// nudge when the calorie total runs high.
func Activities(totalKcal int) []string {
	suggestions := []string{
		"Take a brisk walk 🚶‍♀️ 20–30 minutes after meals to support digestion and energy.",
		"Try 10–15 minutes of bodyweight moves 💪 (squats, lunges, planks) to feel active.",
		"On busy days, split short walks: 3×10 minutes 🕒.",
	}
	if totalKcal > highIntakeKcal {
		suggestions = append(suggestions, "If intake is higher than usual, consider a longer walk today 🌤️ or add light yoga 🧘.")
	}
	return suggestions
}

func dedupe(tips []string) []string {
	seen := make(map[string]bool, len(tips))
	out := make([]string, 0, len(tips))
	for _, tip := range tips {
		if seen[tip] {
			continue
		}
		seen[tip] = true
		out = append(out, tip)
	}
	return out
}
