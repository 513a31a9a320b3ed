package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/legintel/ai-legislation-tracker/internal/core/domain"
	"github.com/legintel/ai-legislation-tracker/internal/core/ports"
)

const maxAbstractLen = 500

type categoryRule struct {
	label    string
	keywords []string
}

// Category assignment is table-driven: a new topic is a new row, not a new
// branch. Rules are evaluated independently; a bill may carry several labels.
var categoryRules = []categoryRule{
	{"Algorithmic Discrimination", []string{"discrimination", "bias", "disparate impact", "algorithmic accountability", "fairness"}},
	{"Deepfakes & Synthetic Media", []string{"deepfake", "deep fake", "synthetic media", "digital replica", "deceptive media"}},
	{"Privacy & Data Protection", []string{"privacy", "personal data", "biometric", "facial recognition", "data protection", "surveillance"}},
	{"Employment", []string{"employment", "hiring", "worker", "workplace", "workforce", "automated employment decision"}},
	{"Healthcare", []string{"health care", "healthcare", "medical", "patient", "clinical", "diagnosis"}},
	{"Education", []string{"education", "school", "student", "curriculum"}},
	{"Government Use", []string{"state agency", "government use", "public sector", "procurement", "law enforcement"}},
	{"Elections", []string{"election", "political advertisement", "campaign", "candidate"}},
	{"Transparency & Disclosure", []string{"disclosure", "transparency", "watermark", "provenance"}},
	{"Autonomous Vehicles", []string{"autonomous vehicle", "self-driving", "driverless"}},
	{"Generative AI", []string{"generative", "chatbot", "foundation model", "large language model"}},
}

type statusRule struct {
	status   domain.Status
	keywords []string
}

// Status rules are tried in priority order; the first hit wins.
var statusRules = []statusRule{
	{domain.StatusEnacted, []string{"signed by governor", "signed by the governor", "signed into law", "enacted", "chaptered", "became law", "approved by the governor"}},
	{domain.StatusPassed, []string{"passed", "adopted", "third reading"}},
	{domain.StatusInCommittee, []string{"committee", "referred"}},
	{domain.StatusFailed, []string{"failed", "died", "withdrawn", "indefinitely postponed"}},
	{domain.StatusVetoed, []string{"vetoed", "veto"}},
}

// Categorize returns the topical labels whose keyword sets match the
// lower-cased title+abstract text, or the sentinel label when none do.
func Categorize(title, abstract string) []string {
	text := strings.ToLower(title + " " + abstract)

	var labels []string
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				labels = append(labels, rule.label)
				break
			}
		}
	}
	if len(labels) == 0 {
		return []string{domain.CategoryGeneral}
	}
	return labels
}

// NormalizeStatus derives a status from the most recent action description.
// An empty action list means the bill has only been introduced; an action
// matching no rule leaves the bill Active.
func NormalizeStatus(actions []string) domain.Status {
	if len(actions) == 0 {
		return domain.StatusIntroduced
	}

	latest := strings.ToLower(actions[0])
	for _, rule := range statusRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(latest, keyword) {
				return rule.status
			}
		}
	}
	return domain.StatusActive
}

// ExtractYear pulls the calendar year out of an upstream timestamp. It tries
// full timestamp layouts first, then falls back to reading the first four
// characters as a literal year, then gives up.
func ExtractYear(ts string) int {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, ts); err == nil {
			return parsed.Year()
		}
	}
	if len(ts) >= 4 {
		if year, err := strconv.Atoi(ts[:4]); err == nil && year > 0 {
			return year
		}
	}
	return domain.YearUnknown
}

// Classifier turns accepted raw bills into processed rows, stamping each with
// the injected clock so tests stay deterministic.
type Classifier struct {
	clock ports.Clock
}

func NewClassifier(clock ports.Clock) Classifier {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return Classifier{clock: clock}
}

func (c Classifier) Process(bill domain.Bill) domain.ProcessedBill {
	return domain.ProcessedBill{
		Jurisdiction: bill.Jurisdiction,
		Identifier:   bill.Identifier,
		Title:        bill.Title,
		Status:       NormalizeStatus(bill.Actions),
		Categories:   Categorize(bill.Title, bill.Abstract),
		Session:      bill.Session,
		Year:         ExtractYear(bill.CreatedAt),
		CreatedAt:    bill.CreatedAt,
		UpdatedAt:    bill.UpdatedAt,
		URL:          bill.URL,
		Abstract:     truncateAbstract(bill.Abstract),
		ProcessedAt:  c.clock.Now(),
	}
}

func truncateAbstract(abstract string) string {
	runes := []rune(abstract)
	if len(runes) <= maxAbstractLen {
		return abstract
	}
	return string(runes[:maxAbstractLen-3]) + "..."
}
