package themes

import "slices"

// Result maps a matched theme to the part of its branch that matched.
type Result map[string]map[string][]string

// Match walks the hierarchy for each noun in order. A theme match attaches the
// whole branch, a sub-theme match attaches that sub-theme, and a keyword match
// attaches just the keyword. Each match replaces any earlier entry for the same
// top-level theme.
func Match(h Hierarchy, nouns []string) Result {
	result := Result{}
	for _, noun := range nouns {
		theme, branch, ok := matchOne(h, noun)
		if ok {
			result[theme] = branch
		}
	}
	return result
}

func matchOne(h Hierarchy, noun string) (string, map[string][]string, bool) {
	if subs, ok := h[noun]; ok {
		return noun, cloneBranch(subs), true
	}

	themes := h.Themes()
	for _, theme := range themes {
		if keywords, ok := h[theme][noun]; ok {
			return theme, map[string][]string{noun: slices.Clone(keywords)}, true
		}
	}
	for _, theme := range themes {
		for _, sub := range h.SubThemes(theme) {
			if slices.Contains(h[theme][sub], noun) {
				return theme, map[string][]string{sub: {noun}}, true
			}
		}
	}
	return "", nil, false
}

// Theme names the matched themes in sorted order.
func (r Result) Themes() []string {
	return Hierarchy(r).Themes()
}
