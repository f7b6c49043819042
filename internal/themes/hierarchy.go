// Package themes maps free-text queries onto a three-level topic taxonomy.
package themes

import (
	"maps"
	"slices"
	"strings"
)

// Hierarchy is a theme -> sub-theme -> keywords taxonomy. Names are matched
// exactly, so the default tree is all lower case.
type Hierarchy map[string]map[string][]string

// DefaultHierarchy returns a fresh copy of the built-in taxonomy.
func DefaultHierarchy() Hierarchy {
	return Hierarchy{
		"technology": {
			"artificial intelligence": {"machine learning", "chatbot", "neural network", "automation"},
			"software":                {"app", "cloud", "open source", "cybersecurity"},
			"hardware":                {"chip", "semiconductor", "smartphone", "laptop"},
		},
		"politics": {
			"elections":               {"vote", "ballot", "campaign", "candidate", "poll"},
			"government":              {"congress", "parliament", "senate", "policy", "legislation"},
			"international relations": {"diplomacy", "treaty", "sanctions", "summit"},
		},
		"business": {
			"markets":   {"stocks", "bonds", "inflation", "earnings"},
			"companies": {"merger", "acquisition", "startup", "ipo"},
			"economy":   {"gdp", "jobs", "recession", "trade"},
		},
		"science": {
			"space":   {"nasa", "rocket", "mars", "satellite"},
			"climate": {"emissions", "warming", "carbon", "renewable"},
			"health":  {"vaccine", "pandemic", "cancer", "nutrition"},
		},
		"sports": {
			"football":   {"nfl", "soccer", "quarterback", "touchdown"},
			"basketball": {"nba", "playoffs", "dunk"},
			"tennis":     {"wimbledon", "grand slam", "racket"},
		},
		"entertainment": {
			"movies":     {"box office", "oscars", "director"},
			"music":      {"album", "concert", "grammys"},
			"television": {"series", "episode", "sitcom"},
		},
	}
}

// Themes lists the top-level themes in sorted order.
func (h Hierarchy) Themes() []string {
	return slices.Sorted(maps.Keys(h))
}

// SubThemes lists the sub-themes of theme in sorted order.
func (h Hierarchy) SubThemes(theme string) []string {
	return slices.Sorted(maps.Keys(h[theme]))
}

// Clone deep-copies the hierarchy.
func (h Hierarchy) Clone() Hierarchy {
	out := make(Hierarchy, len(h))
	for theme, subs := range h {
		out[theme] = cloneBranch(subs)
	}
	return out
}

// Phrases returns every multi-word name in the tree.
func (h Hierarchy) Phrases() []string {
	var phrases []string
	add := func(name string) {
		if strings.Contains(name, " ") {
			phrases = append(phrases, name)
		}
	}
	for theme, subs := range h {
		add(theme)
		for sub, keywords := range subs {
			add(sub)
			for _, kw := range keywords {
				add(kw)
			}
		}
	}
	slices.Sort(phrases)
	return slices.Compact(phrases)
}

func cloneBranch(subs map[string][]string) map[string][]string {
	out := make(map[string][]string, len(subs))
	for sub, keywords := range subs {
		out[sub] = slices.Clone(keywords)
	}
	return out
}
