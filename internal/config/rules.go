package config

import "sort"

// CategoryRule maps a category to the keywords that select it. Rules are
// ordered: the first category with a matching keyword wins.
type CategoryRule struct {
	Category string
	Keywords []string
}

// defaultCategoryRules is the built-in keyword set, tuned for Nordic bank
// statement descriptions.
var defaultCategoryRules = []CategoryRule{
	{"Groceries", []string{"coop365", "superbrugsen", "netto", "rema1000", "føtex", "meny", "lidl", "irma"}},
	{"Salary", []string{"løn", "salary", "indkomst"}},
	{"Rent/Mortgage", []string{"husleje", "rent", "boligudgift", "mortgage payment", "realkredit"}},
	{"Household", []string{"ikea", "jysk", "imerco", "silvan", "bauhaus"}},
	{"Transport", []string{"dsb", "rejsekort", "movia", "uber", "bolt", "benzin", "circle k", "shell", "parkering", "brobizz"}},
	{"Utilities", []string{"hofor", "vand", "varme", "el", "gas", "forsyning"}},
	{"Shopping", []string{"magasin", "zalando", "elgiganten", "power", "matas"}},
	{"Internet/Phone", []string{"bredbånd", "telia", "tdc", "hiper", "yousee", "cbb mobil", "telefon"}},
	{"Dining Out", []string{"restaurant", "cafe", "just eat", "wolt", "mcdonalds", "pizzeria"}},
	{"Subscriptions", []string{"netflix", "spotify", "hbo", "disney+", "storytel", "tv2 play", "viaplay"}},
	{"Sports", []string{"fitnessworld", "sats", "gym", "sportmaster"}},
	{"Healthcare", []string{"apotek", "læge", "tandlæge", "optiker", "fysioterapeut"}},
	{"Transfers", []string{"overførsel", "transfer", "egen konto", "mobilepay overførsel"}},
	{"Cash Withdrawal", []string{"hævning", "atm", "kontant", "bankautomat"}},
	{"Entertainment", []string{"biograf", "koncert", "teater", "museum", "tivoli"}},
	{"Financial/Fees", []string{"gebyr", "renteudgift", "bank fee"}},
	{"Other Income", []string{"tilbagebetaling", "refund", "renteindtægt"}},
}

// CategoryRules returns the built-in rules with config overrides applied.
// An override for an existing category replaces its keywords; new
// categories are appended after the built-ins, sorted by name for
// deterministic matching order.
func (c Config) CategoryRules() []CategoryRule {
	rules := make([]CategoryRule, len(defaultCategoryRules))
	copy(rules, defaultCategoryRules)

	seen := make(map[string]int, len(rules))
	for i, r := range rules {
		seen[r.Category] = i
	}

	extras := make([]string, 0, len(c.Categories))
	for category := range c.Categories {
		if i, ok := seen[category]; ok {
			rules[i].Keywords = c.Categories[category]
		} else {
			extras = append(extras, category)
		}
	}

	sort.Strings(extras)
	for _, category := range extras {
		rules = append(rules, CategoryRule{Category: category, Keywords: c.Categories[category]})
	}
	return rules
}
