package match

import (
	"cmp"
	"slices"
)

// MinSuggestScore is the lowest KeySimilarity a candidate needs to be
// offered as a suggestion.
const MinSuggestScore = 0.5

type scored struct {
	key   string
	score float64
}

// Suggest returns up to limit keys most similar to name, best first.
// Ties keep the order in which the keys were given.
func Suggest(name string, keys []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var ranked []scored

	for _, k := range keys {
		if k == name {
			continue
		}

		if s := KeySimilarity(name, k); s >= MinSuggestScore {
			ranked = append(ranked, scored{key: k, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked {
		if len(out) == limit {
			break
		}

		out = append(out, r.key)
	}

	return out
}

// FindFolded returns the first key whose folded form equals the folded
// form of name.
func FindFolded(name string, keys []string) (string, bool) {
	want := FoldKey(name)
	if want == "" {
		return "", false
	}

	for _, k := range keys {
		if FoldKey(k) == want {
			return k, true
		}
	}

	return "", false
}
