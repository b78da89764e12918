package analysis

import (
	"testing"

	"filmstats/internal/data"
)

func TestFindExtremes(t *testing.T) {
	films := []data.Film{
		film("Mid", 100, 0, 500),
		film("Pricey", 900, 0, 50),
		film("Blockbuster", 400, 0, 2000),
		film("Cheap", 10, 0, 30),
	}

	ex := FindExtremes(films)
	if !ex.Found {
		t.Fatal("expected extremes on non-empty table")
	}
	if ex.MaxBudget.Title != "Pricey" {
		t.Errorf("max budget = %q", ex.MaxBudget.Title)
	}
	if ex.MaxWorldwide.Title != "Blockbuster" {
		t.Errorf("max worldwide = %q", ex.MaxWorldwide.Title)
	}
	if ex.MinBudget.Title != "Cheap" {
		t.Errorf("min budget = %q", ex.MinBudget.Title)
	}
}

func TestFindExtremesFirstOccurrenceWinsTies(t *testing.T) {
	films := []data.Film{
		film("First", 500, 0, 100),
		film("Second", 500, 0, 100),
		film("AlsoMin", 500, 0, 100),
	}

	ex := FindExtremes(films)
	if ex.MaxBudget.Title != "First" || ex.MinBudget.Title != "First" || ex.MaxWorldwide.Title != "First" {
		t.Errorf("ties must resolve to first occurrence, got %q/%q/%q",
			ex.MaxBudget.Title, ex.MinBudget.Title, ex.MaxWorldwide.Title)
	}
}

func TestFindExtremesEmpty(t *testing.T) {
	if ex := FindExtremes(nil); ex.Found {
		t.Error("empty table must report no extremes")
	}
}

func TestZeroDomestic(t *testing.T) {
	films := []data.Film{
		film("HasDomestic", 100, 50, 200),
		film("ZeroA", 300, 0, 200),
		film("ZeroB", 700, 0, 0),
		film("ZeroC", 500, 0, 100),
		film("ZeroD", 200, 0, 0),
		film("ZeroE", 400, 0, 0),
		film("ZeroF", 600, 0, 0),
	}

	got := ZeroDomestic(films, 5)
	if len(got) != 5 {
		t.Fatalf("expected top 5, got %d", len(got))
	}
	wantOrder := []string{"ZeroB", "ZeroF", "ZeroC", "ZeroE", "ZeroA"}
	for i, w := range wantOrder {
		if got[i].Title != w {
			t.Errorf("rank %d = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestZeroDomesticStableOnEqualBudgets(t *testing.T) {
	films := []data.Film{
		film("EarlierRow", 300, 0, 0),
		film("LaterRow", 300, 0, 0),
	}
	got := ZeroDomestic(films, 5)
	if got[0].Title != "EarlierRow" {
		t.Error("equal budgets must keep table order")
	}
}

func TestZeroWorldwide(t *testing.T) {
	films := []data.Film{
		film("Released", 100, 10, 500),
		film("Shelved", 900, 0, 0),
	}
	got := ZeroWorldwide(films, 5)
	if len(got) != 1 || got[0].Title != "Shelved" {
		t.Errorf("got %v", got)
	}

	if got := ZeroWorldwide(films[:1], 5); len(got) != 0 {
		t.Error("no matches must yield an empty listing")
	}
}

func TestInternationalOnly(t *testing.T) {
	films := []data.Film{
		film("Domestic", 100, 50, 200),
		film("IntlB", 100, 0, 300),
		film("NoGross", 100, 0, 0),
		film("IntlA", 100, 0, 900),
	}

	got := InternationalOnly(films, 5)
	// table order, no sort
	if len(got) != 2 || got[0].Title != "IntlB" || got[1].Title != "IntlA" {
		t.Errorf("got %v", got)
	}

	if got := InternationalOnly(films, 1); len(got) != 1 || got[0].Title != "IntlB" {
		t.Errorf("topN truncation failed: %v", got)
	}
}

func TestZeroListingsDoNotMutateTable(t *testing.T) {
	films := []data.Film{
		film("B", 200, 0, 0),
		film("A", 900, 0, 0),
	}
	ZeroDomestic(films, 5)
	if films[0].Title != "B" {
		t.Error("listing sort leaked into the base table")
	}
}
