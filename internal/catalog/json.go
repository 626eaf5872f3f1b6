package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInvalidCatalog = errors.New("catalog: invalid exercise record")

// externalRecord is one entry of an ExerciseDB-style export.
type externalRecord struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	BodyPart          string   `json:"bodyPart"`
	Target            string   `json:"target"`
	SecondaryMuscles  []string `json:"secondaryMuscles"`
	Equipment         string   `json:"equipment"`
	Difficulty        string   `json:"difficulty"`
	Type              string   `json:"type"`
	Duration          string   `json:"duration"`
	Instructions      []string `json:"instructions"`
	CaloriesPerMinute float64  `json:"caloriesPerMinute"`
}

// LoadJSON reads an external exercise export (a JSON array) and derives the workout-type bucket
// of every record from its body part.
func LoadJSON(r io.Reader) (*Catalog, error) {
	var records []externalRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode exercise catalog: %w", err)
	}

	seen := make(map[int]struct{}, len(records))
	exercises := make([]Exercise, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("%w: record %d has no name", ErrInvalidCatalog, i)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidCatalog, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		ex, err := rec.toExercise()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidCatalog, i, err)
		}
		exercises = append(exercises, ex)
	}
	return New(exercises), nil
}

func (rec externalRecord) toExercise() (Exercise, error) {
	bucket := Bucket(rec.BodyPart)

	difficulty := DifficultyIntermediate
	if rec.Difficulty != "" {
		difficulty = Difficulty(strings.ToLower(rec.Difficulty))
		switch difficulty {
		case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		default:
			return Exercise{}, fmt.Errorf("unknown difficulty %q", rec.Difficulty)
		}
	}

	exType := TypeStrength
	if bucket == BucketCardio {
		exType = TypeCardio
	}
	if rec.Type != "" {
		exType = Type(strings.ToLower(rec.Type))
		switch exType {
		case TypeStrength, TypeCardio, TypeFlexibility, TypePlyometric, TypeCore, TypeWarmup:
		default:
			return Exercise{}, fmt.Errorf("unknown type %q", rec.Type)
		}
	}

	muscles := make([]string, 0, 1+len(rec.SecondaryMuscles))
	if rec.Target != "" {
		muscles = append(muscles, rec.Target)
	}
	muscles = append(muscles, rec.SecondaryMuscles...)

	var equipment []string
	if rec.Equipment != "" {
		equipment = []string{rec.Equipment}
	}

	return Exercise{
		ID:                rec.ID,
		Name:              rec.Name,
		Category:          rec.BodyPart,
		WorkoutType:       bucket,
		MuscleGroups:      muscles,
		Equipment:         equipment,
		Difficulty:        difficulty,
		Type:              exType,
		Duration:          rec.Duration,
		Instructions:      rec.Instructions,
		CaloriesPerMinute: rec.CaloriesPerMinute,
	}, nil
}
