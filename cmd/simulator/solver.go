package main

import (
	"github.com/dom/wardle/internal/domain"
)

// narrow keeps the candidates that would have produced verdict had they
// been the answer.
func narrow(candidates []*domain.Champion, guess *domain.Champion, verdict domain.Verdict) []*domain.Champion {
	var kept []*domain.Champion
	for _, c := range candidates {
		if c.ID == guess.ID {
			continue
		}
		if sameVerdict(domain.Compare(guess, c), verdict) {
			kept = append(kept, c)
		}
	}
	return kept
}

func sameVerdict(a, b domain.Verdict) bool {
	for _, attr := range domain.Attributes {
		if a[attr] != b[attr] {
			return false
		}
	}
	return true
}

func without(candidates []*domain.Champion, name string) []*domain.Champion {
	var kept []*domain.Champion
	for _, c := range candidates {
		if !domain.SameName(c.Name, name) {
			kept = append(kept, c)
		}
	}
	return kept
}

// remove drops name from names, matching case-insensitively.
func remove(names []string, name string) []string {
	kept := names[:0:0]
	for _, n := range names {
		if !domain.SameName(n, name) {
			kept = append(kept, n)
		}
	}
	return kept
}
