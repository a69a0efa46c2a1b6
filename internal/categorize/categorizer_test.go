package categorize

import (
	"testing"

	"finplan/internal/config"
	"finplan/internal/model"
)

func defaultCategorizer() *Categorizer {
	return New(config.Config{}.CategoryRules())
}

func TestCategorize_Defaults(t *testing.T) {
	c := defaultCategorizer()

	cases := []struct {
		desc string
		want string
	}{
		{"COOP365 SLUSEHOLMEN Den 19.01", "Groceries"},
		{"IKEA COPENHAGEN DYBBOE", "Household"},
		{"Netflix Subscription", "Subscriptions"},
		{"Salary payment ACME ApS", "Salary"},
		{"Payment for something unknown", Uncategorized},
		{"", Uncategorized},
	}

	for _, tc := range cases {
		if got := c.Categorize(tc.desc); got != tc.want {
			t.Errorf("Categorize(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	c := defaultCategorizer()
	if got := c.Categorize("NETFLIX.COM"); got != "Subscriptions" {
		t.Errorf("Categorize = %q, want Subscriptions", got)
	}
}

func TestCategorize_WordBoundaries(t *testing.T) {
	c := New([]config.CategoryRule{
		{Category: "Transport", Keywords: []string{"car"}},
	})

	if got := c.Categorize("rental car pickup"); got != "Transport" {
		t.Errorf("whole word should match, got %q", got)
	}
	if got := c.Categorize("mastercard payment"); got != Uncategorized {
		t.Errorf("substring must not match, got %q", got)
	}
}

func TestCategorize_FirstRuleWins(t *testing.T) {
	c := New([]config.CategoryRule{
		{Category: "A", Keywords: []string{"shop"}},
		{Category: "B", Keywords: []string{"shop"}},
	})
	if got := c.Categorize("the shop"); got != "A" {
		t.Errorf("Categorize = %q, want A (rule order)", got)
	}
}

func TestCategorize_ConfigOverrides(t *testing.T) {
	cfg := config.Config{
		Categories: map[string][]string{
			"Salary":  {"acme corp"},
			"Daycare": {"børnehave"},
		},
	}
	c := New(cfg.CategoryRules())

	if got := c.Categorize("ACME CORP payroll"); got != "Salary" {
		t.Errorf("override keywords should apply, got %q", got)
	}
	if got := c.Categorize("Børnehave betaling"); got != "Daycare" {
		t.Errorf("new category should apply, got %q", got)
	}
	// Replaced keyword set: the default salary keywords are gone.
	if got := c.Categorize("salary transfer"); got == "Salary" {
		t.Error("replaced rule should drop default keywords")
	}
}

func TestApply(t *testing.T) {
	c := defaultCategorizer()
	txs := []model.Transaction{
		{Description: "Netflix"},
		{Description: "mystery"},
	}
	c.Apply(txs)

	if txs[0].Category != "Subscriptions" || txs[1].Category != Uncategorized {
		t.Errorf("Apply results: %q, %q", txs[0].Category, txs[1].Category)
	}
}
