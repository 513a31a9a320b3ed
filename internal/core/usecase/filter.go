package usecase

import "strings"

// RelevanceFilter decides whether a bill is about AI policy at all, using
// substring tests over the lower-cased title+abstract text. Exclusion terms
// take precedence over inclusion terms.
type RelevanceFilter struct {
	include []string
	exclude []string
}

// DefaultIncludeKeywords accept a bill when any of them appears in the text.
// The padded " ai " form avoids matching words that merely contain the pair.
func DefaultIncludeKeywords() []string {
	return []string{
		"artificial intelligence",
		"machine learning",
		" ai ",
		"automated decision",
		"algorithmic",
		"deepfake",
		"deep fake",
		"neural network",
		"facial recognition",
		"generative",
		"chatbot",
		"large language model",
		"autonomous system",
	}
}

// DefaultExcludeKeywords reject known false positives of the inclusion list.
func DefaultExcludeKeywords() []string {
	return []string{
		"hearing aid",
		"first aid",
		"financial aid",
		"legal aid",
		"foreign aid",
		"rural aid",
	}
}

func NewRelevanceFilter(include, exclude []string) RelevanceFilter {
	lower := func(terms []string) []string {
		out := make([]string, len(terms))
		for i, term := range terms {
			out[i] = strings.ToLower(term)
		}
		return out
	}
	return RelevanceFilter{include: lower(include), exclude: lower(exclude)}
}

// IsRelevant reports whether the title+abstract text matches at least one
// inclusion keyword and no exclusion keyword. Pure and order-independent.
func (f RelevanceFilter) IsRelevant(title, abstract string) bool {
	text := strings.ToLower(title + " " + abstract)

	for _, term := range f.exclude {
		if strings.Contains(text, term) {
			return false
		}
	}
	for _, term := range f.include {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
