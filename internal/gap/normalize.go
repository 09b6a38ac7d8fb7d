// Package gap maps raw skill names onto the catalog and compares them with
// what a target role requires.
package gap

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/hbollon/go-edlib"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// FuzzyThreshold is the minimum Jaro-Winkler similarity for a near-miss
// spelling to resolve to a catalog skill.
const FuzzyThreshold = 0.92

// Resolve maps one raw skill name to a catalog skill ID. Lookups try, in
// order: skill ID, skill name, alias, then the closest fuzzy match.
func Resolve(g *skillgraph.Graph, raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}

	skills := g.AllSkills()
	for _, s := range skills {
		if strings.ToLower(s.ID) == key {
			return s.ID, true
		}
	}
	for _, s := range skills {
		if strings.ToLower(s.Name) == key {
			return s.ID, true
		}
	}
	for _, s := range skills {
		for _, a := range s.Aliases {
			if strings.ToLower(a) == key {
				return s.ID, true
			}
		}
	}

	best, bestScore := "", float32(0)
	for _, s := range skills {
		for _, term := range terms(s) {
			score := edlib.JaroWinklerSimilarity(key, term)
			if score > bestScore {
				best, bestScore = s.ID, score
			}
		}
	}
	if bestScore >= FuzzyThreshold {
		return best, true
	}
	return "", false
}

// Normalize maps raw names to catalog skill IDs. Names that match nothing are
// kept verbatim (trimmed) so callers can still show them. The result is
// deduplicated, keeping first occurrences.
func Normalize(g *skillgraph.Graph, names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if id, ok := Resolve(g, name); ok {
			name = id
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

// Detect finds catalog skills mentioned in free text by whole-word matching
// of skill names and aliases. The result is sorted by skill ID.
func Detect(g *skillgraph.Graph, text string) []string {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	var found []string
	for _, s := range g.AllSkills() {
		for _, term := range terms(s) {
			if mentions(lower, term) {
				found = append(found, s.ID)
				break
			}
		}
	}
	sort.Strings(found)
	return found
}

// terms returns the lower-cased name and aliases of a skill.
func terms(s skillgraph.Skill) []string {
	out := make([]string, 0, len(s.Aliases)+1)
	out = append(out, strings.ToLower(s.Name))
	for _, a := range s.Aliases {
		out = append(out, strings.ToLower(a))
	}
	return out
}

// wordPatterns caches compiled whole-word patterns by lower-cased term.
var wordPatterns sync.Map

func mentions(text, term string) bool {
	if term == "" || !strings.Contains(text, term) {
		return false
	}
	return wordPattern(term).MatchString(text)
}

func wordPattern(term string) *regexp.Regexp {
	if cached, ok := wordPatterns.Load(term); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	actual, _ := wordPatterns.LoadOrStore(term, re)
	return actual.(*regexp.Regexp)
}
