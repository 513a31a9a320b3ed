package usecase

import "github.com/legintel/ai-legislation-tracker/internal/core/domain"

// Deduplicate collapses the concatenated multi-term result stream to at most
// one bill per (jurisdiction, identifier) key, keeping the first occurrence
// and its position. Keys are exact strings: "HB 123" and "hb 123" stay
// distinct, matching upstream identifiers as-is.
func Deduplicate(bills []domain.Bill) []domain.Bill {
	if len(bills) == 0 {
		return nil
	}

	seen := make(map[domain.BillKey]struct{}, len(bills))
	out := make([]domain.Bill, 0, len(bills))
	for _, bill := range bills {
		key := bill.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, bill)
	}
	return out
}
