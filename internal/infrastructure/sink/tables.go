// Package sink renders a pipeline snapshot into the three fixed output
// tables; the format-specific writers live in the subpackages.
package sink

import (
	"strconv"
	"strings"
	"time"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
)

const multiValueSeparator = "; "

// Table is one output table with its fixed header and pre-rendered rows.
type Table struct {
	FileStem string
	Sheet    string
	Header   []string
	Rows     [][]string
}

// Tables renders the snapshot into the per-bill, per-state, and year-trend
// tables. Headers are emitted even when a table has no rows.
func Tables(snap domain.Snapshot) []Table {
	return []Table{
		{
			FileStem: "ai_bills",
			Sheet:    "Bills",
			Header:   []string{"State", "Bill_ID", "Title", "Status", "Category", "Year", "Session", "Created", "Updated", "URL", "Abstract", "Last_Checked"},
			Rows:     billRows(snap.Bills),
		},
		{
			FileStem: "state_summary",
			Sheet:    "State Summary",
			Header:   []string{"State", "Total_Bills", "Enacted", "Active_Pending", "Failed_Vetoed", "Categories", "Years_Active", "Framework_Status"},
			Rows:     jurisdictionRows(snap.Jurisdictions),
		},
		{
			FileStem: "year_trends",
			Sheet:    "Year Trends",
			Header:   []string{"Year", "Bills_Introduced", "Bills_Enacted", "Enactment_Rate"},
			Rows:     trendRows(snap.Trends),
		},
	}
}

func billRows(bills []domain.ProcessedBill) [][]string {
	rows := make([][]string, 0, len(bills))
	for _, bill := range bills {
		rows = append(rows, []string{
			bill.Jurisdiction,
			bill.Identifier,
			bill.Title,
			string(bill.Status),
			strings.Join(bill.Categories, multiValueSeparator),
			formatYear(bill.Year),
			bill.Session,
			bill.CreatedAt,
			bill.UpdatedAt,
			bill.URL,
			bill.Abstract,
			bill.ProcessedAt.Format(time.RFC3339),
		})
	}
	return rows
}

func jurisdictionRows(summaries []domain.JurisdictionSummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		years := make([]string, 0, len(summary.Years))
		for _, year := range summary.Years {
			years = append(years, strconv.Itoa(year))
		}
		rows = append(rows, []string{
			summary.Jurisdiction,
			strconv.Itoa(summary.TotalBills),
			strconv.Itoa(summary.Enacted),
			strconv.Itoa(summary.ActivePending),
			strconv.Itoa(summary.FailedVetoed),
			strings.Join(summary.Categories, multiValueSeparator),
			strings.Join(years, multiValueSeparator),
			string(summary.Maturity),
		})
	}
	return rows
}

func trendRows(trends []domain.YearTrend) [][]string {
	rows := make([][]string, 0, len(trends))
	for _, trend := range trends {
		rows = append(rows, []string{
			strconv.Itoa(trend.Year),
			strconv.Itoa(trend.Introduced),
			strconv.Itoa(trend.Enacted),
			trend.Rate,
		})
	}
	return rows
}

func formatYear(year int) string {
	if year == domain.YearUnknown {
		return "Unknown"
	}
	return strconv.Itoa(year)
}
