package usecase

import "testing"

func TestFilterAcceptsInclusionMatch(t *testing.T) {
	filter := NewRelevanceFilter(DefaultIncludeKeywords(), DefaultExcludeKeywords())

	if !filter.IsRelevant("Artificial Intelligence in hiring", "") {
		t.Fatalf("expected title inclusion match to be accepted")
	}
	if !filter.IsRelevant("An act relating to consumer protection", "regulates machine learning systems") {
		t.Fatalf("expected abstract inclusion match to be accepted")
	}
}

func TestFilterRejectsWithoutInclusionMatch(t *testing.T) {
	filter := NewRelevanceFilter(DefaultIncludeKeywords(), DefaultExcludeKeywords())

	if filter.IsRelevant("An act relating to water rights", "irrigation districts") {
		t.Fatalf("expected non-matching bill to be rejected")
	}
}

func TestFilterExclusionOverridesInclusion(t *testing.T) {
	filter := NewRelevanceFilter([]string{"artificial intelligence"}, []string{"hearing aid"})

	if filter.IsRelevant("Artificial intelligence and hearing aid coverage", "") {
		t.Fatalf("expected exclusion term to override inclusion term")
	}
}

func TestFilterIsDeterministic(t *testing.T) {
	filter := NewRelevanceFilter(DefaultIncludeKeywords(), DefaultExcludeKeywords())

	title, abstract := "Deepfake disclosure act", "requires labeling of synthetic media"
	first := filter.IsRelevant(title, abstract)
	for i := 0; i < 10; i++ {
		if filter.IsRelevant(title, abstract) != first {
			t.Fatalf("filter result changed between evaluations")
		}
	}
}

func TestFilterMatchesCaseInsensitively(t *testing.T) {
	filter := NewRelevanceFilter([]string{"deepfake"}, nil)

	if !filter.IsRelevant("DEEPFAKE ACCOUNTABILITY ACT", "") {
		t.Fatalf("expected case-insensitive inclusion match")
	}
}
