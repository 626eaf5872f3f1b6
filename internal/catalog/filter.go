package catalog

import "strings"

// Query selects exercises. Empty facet fields behave like Wildcard.
type Query struct {
	Search        string
	Category      string
	Difficulty    string
	Type          string
	Equipment     string
	FavoritesOnly bool
}

// Filter returns the exercises matching every predicate of q, in input order.
// favorites is only consulted when q.FavoritesOnly is set; a nil set matches nothing then.
func Filter(exercises []Exercise, q Query, favorites *FavoriteSet) []Exercise {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if !matchesText(ex, search) {
			continue
		}
		if !isWildcard(q.Category) && !strings.EqualFold(ex.WorkoutType, q.Category) && !strings.EqualFold(ex.Category, q.Category) {
			continue
		}
		if !isWildcard(q.Difficulty) && !strings.EqualFold(string(ex.Difficulty), q.Difficulty) {
			continue
		}
		if !isWildcard(q.Type) && !strings.EqualFold(string(ex.Type), q.Type) {
			continue
		}
		if !isWildcard(q.Equipment) && !containsFold(ex.Equipment, q.Equipment) {
			continue
		}
		if q.FavoritesOnly && !favorites.Contains(ex.ID) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func matchesText(ex Exercise, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(ex.Name), search) || strings.Contains(strings.ToLower(ex.Category), search) {
		return true
	}
	for _, m := range ex.MuscleGroups {
		if strings.Contains(strings.ToLower(m), search) {
			return true
		}
	}
	return false
}

func isWildcard(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, Wildcard)
}

func containsFold(values []string, want string) bool {
	want = strings.TrimSpace(want)
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
