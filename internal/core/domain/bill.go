package domain

import "time"

// Bill is a raw legislative record as returned by the upstream search API.
// Actions are ordered most recent first; Abstract and URL hold the first
// element of the upstream lists when present.
type Bill struct {
	Jurisdiction string
	Identifier   string
	Title        string
	Abstract     string
	Actions      []string
	Session      string
	CreatedAt    string
	UpdatedAt    string
	URL          string
}

// BillKey identifies a bill across search terms and pages. Jurisdiction and
// Identifier are compared as opaque strings; no case or whitespace folding.
type BillKey struct {
	Jurisdiction string
	Identifier   string
}

func (b Bill) Key() BillKey {
	return BillKey{Jurisdiction: b.Jurisdiction, Identifier: b.Identifier}
}

// Status is the normalized lifecycle state derived from a bill's most recent
// action description.
type Status string

const (
	StatusEnacted     Status = "Enacted"
	StatusPassed      Status = "Passed"
	StatusInCommittee Status = "In Committee"
	StatusFailed      Status = "Failed"
	StatusVetoed      Status = "Vetoed"
	StatusIntroduced  Status = "Introduced"
	StatusActive      Status = "Active"
)

// CategoryGeneral is the sentinel category assigned when no topical keyword
// set matches.
const CategoryGeneral = "General AI"

// YearUnknown marks a bill whose creation year could not be determined.
const YearUnknown = 0

// ProcessedBill is one row of the per-bill output table.
type ProcessedBill struct {
	Jurisdiction string
	Identifier   string
	Title        string
	Status       Status
	Categories   []string
	Session      string
	Year         int
	CreatedAt    string
	UpdatedAt    string
	URL          string
	Abstract     string
	ProcessedAt  time.Time
}

// JurisdictionSummary is one row of the per-state rollup table.
type JurisdictionSummary struct {
	Jurisdiction  string
	TotalBills    int
	Enacted       int
	ActivePending int
	FailedVetoed  int
	Categories    []string
	Years         []int
	Maturity      Maturity
}

// Maturity is the derived three-tier classification of a jurisdiction's
// AI-legislation activity.
type Maturity string

const (
	MaturityMinimal       Maturity = "Minimal"
	MaturitySomeActivity  Maturity = "Some Activity"
	MaturityComprehensive Maturity = "Comprehensive"
)

// YearTrend is one row of the year-over-year trend table.
type YearTrend struct {
	Year       int
	Introduced int
	Enacted    int
	Rate       string
}

// Snapshot bundles the three output tables produced by one pipeline run.
type Snapshot struct {
	Bills         []ProcessedBill
	Jurisdictions []JurisdictionSummary
	Trends        []YearTrend
}
