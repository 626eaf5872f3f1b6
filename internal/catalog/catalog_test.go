package catalog_test

import (
	"strings"
	"testing"

	"alcyxob/fitness-tracker/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(exercises []catalog.Exercise) []string {
	out := make([]string, len(exercises))
	for i, ex := range exercises {
		out[i] = ex.Name
	}
	return out
}

func TestFilter_EmptyQueryReturnsFullCatalog(t *testing.T) {
	all := catalog.Builtin().All()
	got := catalog.Filter(all, catalog.Query{Category: "All", Difficulty: "All", Type: "All", Equipment: "All"}, nil)
	assert.Equal(t, all, got)

	got = catalog.Filter(all, catalog.Query{}, nil)
	assert.Equal(t, all, got)
}

func TestFilter_NoMatch(t *testing.T) {
	got := catalog.Filter(catalog.Builtin().All(), catalog.Query{Search: "zzz-nothing"}, nil)
	assert.Empty(t, got)
}

func TestFilter_Predicates(t *testing.T) {
	all := catalog.Builtin().All()

	tests := []struct {
		name  string
		query catalog.Query
		want  []string
	}{
		{"search by name", catalog.Query{Search: "PUSH"}, []string{"Push-ups"}},
		{"search by category", catalog.Query{Search: "flex"}, []string{"Yoga Flow"}},
		{"search by muscle group", catalog.Query{Search: "glutes"}, []string{"Squats", "Deadlift"}},
		{"category facet", catalog.Query{Category: "lower body"}, []string{"Squats", "Deadlift"}},
		{"difficulty facet", catalog.Query{Difficulty: "Intermediate"}, []string{"Deadlift", "Mountain Climbers"}},
		{"type facet", catalog.Query{Type: "plyometric"}, []string{"Burpees", "Mountain Climbers"}},
		{"equipment membership", catalog.Query{Equipment: "dumbbells"}, []string{"Deadlift"}},
		{"facets combine with and", catalog.Query{Search: "shoulders", Difficulty: "beginner"}, []string{"Push-ups", "Plank"}},
		{"search and facet disagree", catalog.Query{Search: "running", Type: "strength"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(catalog.Filter(all, tt.query, nil)))
		})
	}
}

func TestFilter_FavoritesOnly(t *testing.T) {
	all := catalog.Builtin().All()
	favs := catalog.NewFavoriteSet(8, 2)

	got := catalog.Filter(all, catalog.Query{FavoritesOnly: true}, favs)
	assert.Equal(t, []string{"Squats", "Yoga Flow"}, names(got), "catalog order is preserved")

	got = catalog.Filter(all, catalog.Query{FavoritesOnly: true}, nil)
	assert.Empty(t, got)

	got = catalog.Filter(all, catalog.Query{}, favs)
	assert.Len(t, got, len(all), "favorites ignored unless requested")
}

func TestFavoriteSet_ToggleRoundTrip(t *testing.T) {
	s := catalog.NewFavoriteSet(1, 3)
	before := s.IDs()

	assert.True(t, s.Toggle(5))
	assert.True(t, s.Contains(5))
	assert.False(t, s.Toggle(5))
	assert.Equal(t, before, s.IDs())

	assert.False(t, s.Toggle(1))
	assert.True(t, s.Toggle(1))
	assert.Equal(t, before, s.IDs())
	assert.Equal(t, 2, s.Len())

	var zero catalog.FavoriteSet
	assert.True(t, zero.Toggle(7))
	assert.Equal(t, []int{7}, zero.IDs())
}

func TestBucket(t *testing.T) {
	tests := map[string]string{
		"shoulders":             catalog.BucketUpperBody,
		"  Upper Arms ":         catalog.BucketUpperBody,
		"lower legs":            catalog.BucketLowerBody,
		"WAIST":                 catalog.BucketCore,
		"cardio":                catalog.BucketCardio,
		"cardiovascular system": catalog.BucketCardio,
		"unknown-xyz":           catalog.BucketFullBody,
		"":                      catalog.BucketFullBody,
	}
	for in, want := range tests {
		assert.Equal(t, want, catalog.Bucket(in), "bucket for %q", in)
	}
}

func TestFacets(t *testing.T) {
	f := catalog.Builtin().Facets()
	assert.Equal(t, []string{"All", "Cardio", "Core", "Flexibility", "Full Body", "Lower Body", "Upper Body"}, f.Categories)
	assert.Equal(t, []string{"All", "Barbell", "Bodyweight", "Dumbbells", "None", "Yoga Mat"}, f.Equipment)
	assert.Equal(t, "All", f.Difficulties[0])
	assert.Equal(t, "All", f.Types[0])
}

func TestCatalog_Get(t *testing.T) {
	c := catalog.Builtin()
	require.Equal(t, 8, c.Len())

	ex, ok := c.Get(6)
	require.True(t, ok)
	assert.Equal(t, "Deadlift", ex.Name)

	_, ok = c.Get(99)
	assert.False(t, ok)
}

const externalCatalog = `[
  {"id": 10, "name": "Dumbbell Shoulder Press", "bodyPart": "shoulders", "target": "delts",
   "secondaryMuscles": ["triceps"], "equipment": "dumbbell", "difficulty": "Beginner"},
  {"id": 11, "name": "Jumping Jack", "bodyPart": "cardio", "target": "cardiovascular system", "equipment": "body weight"},
  {"id": 12, "name": "Band Pull Apart", "bodyPart": "mystery", "target": "rhomboids", "equipment": "band", "type": "warmup"}
]`

func TestLoadJSON(t *testing.T) {
	c, err := catalog.LoadJSON(strings.NewReader(externalCatalog))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	press, _ := c.Get(10)
	assert.Equal(t, "shoulders", press.Category)
	assert.Equal(t, catalog.BucketUpperBody, press.WorkoutType)
	assert.Equal(t, []string{"delts", "triceps"}, press.MuscleGroups)
	assert.Equal(t, catalog.DifficultyBeginner, press.Difficulty)
	assert.Equal(t, catalog.TypeStrength, press.Type)

	jack, _ := c.Get(11)
	assert.Equal(t, catalog.BucketCardio, jack.WorkoutType)
	assert.Equal(t, catalog.TypeCardio, jack.Type)
	assert.Equal(t, catalog.DifficultyIntermediate, jack.Difficulty)

	band, _ := c.Get(12)
	assert.Equal(t, catalog.BucketFullBody, band.WorkoutType)
	assert.Equal(t, catalog.TypeWarmup, band.Type)

	// the category facet accepts the derived bucket as well as the raw category
	got := catalog.Filter(c.All(), catalog.Query{Category: "Upper Body"}, nil)
	assert.Equal(t, []string{"Dumbbell Shoulder Press"}, names(got))
	got = catalog.Filter(c.All(), catalog.Query{Category: "Shoulders"}, nil)
	assert.Equal(t, []string{"Dumbbell Shoulder Press"}, names(got))
}

func TestLoadJSON_Rejects(t *testing.T) {
	_, err := catalog.LoadJSON(strings.NewReader(`[{"id":1,"name":"a"},{"id":1,"name":"b"}]`))
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)

	_, err = catalog.LoadJSON(strings.NewReader(`[{"id":1,"name":""}]`))
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)

	_, err = catalog.LoadJSON(strings.NewReader(`[{"id":1,"name":"a","difficulty":"extreme"}]`))
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)

	_, err = catalog.LoadJSON(strings.NewReader(`{not json`))
	assert.Error(t, err)
}
