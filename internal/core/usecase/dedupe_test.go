package usecase

import (
	"reflect"
	"testing"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
)

func TestDeduplicateFirstSeenWins(t *testing.T) {
	bills := []domain.Bill{
		{Jurisdiction: "California", Identifier: "AB-1", Title: "first"},
		{Jurisdiction: "Texas", Identifier: "HB 2", Title: "second"},
		{Jurisdiction: "California", Identifier: "AB-1", Title: "duplicate"},
	}

	got := Deduplicate(bills)
	if len(got) != 2 {
		t.Fatalf("expected 2 unique bills, got %d", len(got))
	}
	if got[0].Title != "first" {
		t.Fatalf("expected first occurrence to win, got title %q", got[0].Title)
	}
	if got[1].Jurisdiction != "Texas" {
		t.Fatalf("expected order of first occurrence preserved, got %q", got[1].Jurisdiction)
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	bills := []domain.Bill{
		{Jurisdiction: "California", Identifier: "AB-1"},
		{Jurisdiction: "California", Identifier: "AB-1"},
		{Jurisdiction: "New York", Identifier: "S 100"},
	}

	once := Deduplicate(bills)
	twice := Deduplicate(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedup not idempotent: %v vs %v", once, twice)
	}
}

func TestDeduplicateKeysAreExactStrings(t *testing.T) {
	bills := []domain.Bill{
		{Jurisdiction: "California", Identifier: "AB-1"},
		{Jurisdiction: "california", Identifier: "AB-1"},
		{Jurisdiction: "California", Identifier: "AB-1 "},
	}

	got := Deduplicate(bills)
	if len(got) != 3 {
		t.Fatalf("expected no case/whitespace folding, got %d bills", len(got))
	}
}

func TestDeduplicateEmptyInput(t *testing.T) {
	if got := Deduplicate(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
