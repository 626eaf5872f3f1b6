// internal/catalog/exercise.go
package catalog

import (
	"sort"
	"strings"
)

// Difficulty of an exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Type is the training modality of an exercise.
type Type string

const (
	TypeStrength    Type = "strength"
	TypeCardio      Type = "cardio"
	TypeFlexibility Type = "flexibility"
	TypePlyometric  Type = "plyometric"
	TypeCore        Type = "core"
	TypeWarmup      Type = "warmup"
)

// Wildcard is the facet value that matches everything.
const Wildcard = "All"

// Exercise is a read-only library entry.
// Category holds the raw category string of the source, WorkoutType its coarse bucket.
type Exercise struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	WorkoutType       string     `json:"workoutType"`
	MuscleGroups      []string   `json:"muscleGroups"`
	Equipment         []string   `json:"equipment"`
	Difficulty        Difficulty `json:"difficulty"`
	Type              Type       `json:"type"`
	Duration          string     `json:"duration"`
	Instructions      []string   `json:"instructions,omitempty"`
	Tips              []string   `json:"tips,omitempty"`
	CaloriesPerMinute float64    `json:"caloriesPerMinute"`
}

// Catalog is an immutable, ordered exercise collection loaded once at startup.
type Catalog struct {
	exercises []Exercise
	byID      map[int]int
}

// New builds a catalog preserving the given order. Later duplicates of an id are ignored.
func New(exercises []Exercise) *Catalog {
	c := &Catalog{
		exercises: make([]Exercise, 0, len(exercises)),
		byID:      make(map[int]int, len(exercises)),
	}
	for _, ex := range exercises {
		if _, dup := c.byID[ex.ID]; dup {
			continue
		}
		c.byID[ex.ID] = len(c.exercises)
		c.exercises = append(c.exercises, ex)
	}
	return c
}

// All returns the exercises in catalog order. Callers must not modify the result.
func (c *Catalog) All() []Exercise {
	return c.exercises
}

// Len reports the number of exercises.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// Get looks an exercise up by id.
func (c *Catalog) Get(id int) (Exercise, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Exercise{}, false
	}
	return c.exercises[idx], true
}

// Facets lists the selectable values of every filter dimension.
type Facets struct {
	Categories   []string `json:"categories"`
	Difficulties []string `json:"difficulties"`
	Types        []string `json:"types"`
	Equipment    []string `json:"equipment"`
}

// Facets derives the option lists from the catalog contents; each list starts with Wildcard.
func (c *Catalog) Facets() Facets {
	categories := map[string]struct{}{}
	equipment := map[string]struct{}{}
	for _, ex := range c.exercises {
		categories[ex.WorkoutType] = struct{}{}
		for _, eq := range ex.Equipment {
			equipment[eq] = struct{}{}
		}
	}
	return Facets{
		Categories:   withWildcard(sortedKeys(categories)),
		Difficulties: withWildcard([]string{"Beginner", "Intermediate", "Advanced"}),
		Types:        withWildcard([]string{"Strength", "Cardio", "Flexibility", "Plyometric", "Core", "Warmup"}),
		Equipment:    withWildcard(sortedKeys(equipment)),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		if strings.TrimSpace(k) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func withWildcard(values []string) []string {
	return append([]string{Wildcard}, values...)
}
