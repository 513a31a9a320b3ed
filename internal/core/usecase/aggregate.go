package usecase

import (
	"fmt"
	"sort"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
)

// Aggregate builds the three output tables from the processed bill set.
// Bills with an unknown year sort after all dated bills and are excluded
// from the trend table.
func Aggregate(bills []domain.ProcessedBill, yearFloor int) domain.Snapshot {
	sorted := make([]domain.ProcessedBill, len(bills))
	copy(sorted, bills)
	sortBills(sorted)

	return domain.Snapshot{
		Bills:         sorted,
		Jurisdictions: summarizeJurisdictions(sorted),
		Trends:        buildYearTrends(sorted, yearFloor),
	}
}

func sortBills(bills []domain.ProcessedBill) {
	sort.SliceStable(bills, func(i, j int) bool {
		a, b := bills[i], bills[j]
		if a.Year != b.Year {
			// Unknown (0) sorts below every real year.
			return a.Year > b.Year
		}
		if a.Jurisdiction != b.Jurisdiction {
			return a.Jurisdiction < b.Jurisdiction
		}
		return a.Identifier < b.Identifier
	})
}

func summarizeJurisdictions(bills []domain.ProcessedBill) []domain.JurisdictionSummary {
	type acc struct {
		summary    domain.JurisdictionSummary
		categories map[string]struct{}
		years      map[int]struct{}
	}

	byState := make(map[string]*acc)
	var order []string
	for _, bill := range bills {
		entry, ok := byState[bill.Jurisdiction]
		if !ok {
			entry = &acc{
				summary:    domain.JurisdictionSummary{Jurisdiction: bill.Jurisdiction},
				categories: make(map[string]struct{}),
				years:      make(map[int]struct{}),
			}
			byState[bill.Jurisdiction] = entry
			order = append(order, bill.Jurisdiction)
		}

		entry.summary.TotalBills++
		switch bill.Status {
		case domain.StatusEnacted:
			entry.summary.Enacted++
		case domain.StatusPassed, domain.StatusInCommittee, domain.StatusActive:
			entry.summary.ActivePending++
		case domain.StatusFailed, domain.StatusVetoed:
			entry.summary.FailedVetoed++
		}
		for _, cat := range bill.Categories {
			entry.categories[cat] = struct{}{}
		}
		if bill.Year != domain.YearUnknown {
			entry.years[bill.Year] = struct{}{}
		}
	}

	summaries := make([]domain.JurisdictionSummary, 0, len(byState))
	for _, state := range order {
		entry := byState[state]
		entry.summary.Categories = collectCategories(entry.categories)
		entry.summary.Years = collectYears(entry.years)
		entry.summary.Maturity = maturityTier(entry.summary.Enacted, entry.summary.TotalBills)
		summaries = append(summaries, entry.summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].TotalBills != summaries[j].TotalBills {
			return summaries[i].TotalBills > summaries[j].TotalBills
		}
		return summaries[i].Jurisdiction < summaries[j].Jurisdiction
	})
	return summaries
}

// The sentinel category only appears in a rollup when a jurisdiction has no
// topically classified bills at all.
func collectCategories(set map[string]struct{}) []string {
	categories := make([]string, 0, len(set))
	for cat := range set {
		if cat == domain.CategoryGeneral && len(set) > 1 {
			continue
		}
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories
}

func collectYears(set map[int]struct{}) []int {
	years := make([]int, 0, len(set))
	for year := range set {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

func maturityTier(enacted, total int) domain.Maturity {
	switch {
	case enacted >= 3:
		return domain.MaturityComprehensive
	case enacted >= 1 || total >= 3:
		return domain.MaturitySomeActivity
	default:
		return domain.MaturityMinimal
	}
}

func buildYearTrends(bills []domain.ProcessedBill, yearFloor int) []domain.YearTrend {
	byYear := make(map[int]*domain.YearTrend)
	for _, bill := range bills {
		if bill.Year == domain.YearUnknown || bill.Year < yearFloor {
			continue
		}
		trend, ok := byYear[bill.Year]
		if !ok {
			trend = &domain.YearTrend{Year: bill.Year}
			byYear[bill.Year] = trend
		}
		trend.Introduced++
		if bill.Status == domain.StatusEnacted {
			trend.Enacted++
		}
	}

	trends := make([]domain.YearTrend, 0, len(byYear))
	for _, trend := range byYear {
		trend.Rate = enactmentRate(trend.Enacted, trend.Introduced)
		trends = append(trends, *trend)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Year < trends[j].Year })
	return trends
}

func enactmentRate(enacted, introduced int) string {
	if introduced == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(enacted)/float64(introduced)*100)
}
