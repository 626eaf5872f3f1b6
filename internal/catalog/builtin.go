package catalog

// Builtin returns the hand-written exercise library.
func Builtin() *Catalog {
	exercises := []Exercise{
		{
			ID:           1,
			Name:         "Push-ups",
			Category:     "Upper Body",
			MuscleGroups: []string{"Chest", "Shoulders", "Triceps"},
			Equipment:    []string{"Bodyweight"},
			Difficulty:   DifficultyBeginner,
			Type:         TypeStrength,
			Duration:     "3-5 sets",
			Instructions: []string{
				"Start in a plank position with hands slightly wider than shoulders",
				"Lower your body until chest nearly touches the floor",
				"Push back up to starting position",
				"Keep your core tight throughout the movement",
			},
			Tips: []string{
				"Start with knee push-ups if regular push-ups are too difficult",
				"Focus on controlled movement rather than speed",
				"Keep your head in neutral position",
			},
			CaloriesPerMinute: 8,
		},
		{
			ID:           2,
			Name:         "Squats",
			Category:     "Lower Body",
			MuscleGroups: []string{"Quadriceps", "Glutes", "Hamstrings"},
			Equipment:    []string{"Bodyweight"},
			Difficulty:   DifficultyBeginner,
			Type:         TypeStrength,
			Duration:     "3-4 sets",
			Instructions: []string{
				"Stand with feet shoulder-width apart",
				"Lower your body as if sitting back into a chair",
				"Keep your chest up and knees tracking over toes",
				"Return to standing position",
			},
			Tips: []string{
				"Keep your weight in your heels",
				"Don't let knees cave inward",
				"Maintain a straight back throughout",
			},
			CaloriesPerMinute: 6,
		},
		{
			ID:           3,
			Name:         "Burpees",
			Category:     "Full Body",
			MuscleGroups: []string{"Full Body"},
			Equipment:    []string{"Bodyweight"},
			Difficulty:   DifficultyAdvanced,
			Type:         TypePlyometric,
			Duration:     "10-15 reps",
			Instructions: []string{
				"Start standing, then squat down and place hands on ground",
				"Jump feet back into plank position",
				"Do a push-up (optional)",
				"Jump feet back to squat position",
				"Jump up with arms overhead",
			},
			Tips: []string{
				"Land softly to protect your joints",
				"Modify by stepping instead of jumping",
				"Focus on form over speed",
			},
			CaloriesPerMinute: 12,
		},
		{
			ID:           4,
			Name:         "Plank",
			Category:     "Core",
			MuscleGroups: []string{"Core", "Shoulders"},
			Equipment:    []string{"Bodyweight"},
			Difficulty:   DifficultyBeginner,
			Type:         TypeCore,
			Duration:     "30-60 seconds",
			Instructions: []string{
				"Start in push-up position",
				"Lower onto forearms",
				"Keep body in straight line from head to heels",
				"Hold position while breathing normally",
			},
			Tips: []string{
				"Don't let hips sag or pike up",
				"Engage your core muscles",
				"Start with shorter holds and build up",
			},
			CaloriesPerMinute: 3,
		},
		{
			ID:           5,
			Name:         "Running",
			Category:     "Cardio",
			MuscleGroups: []string{"Legs", "Cardiovascular"},
			Equipment:    []string{"None"},
			Difficulty:   DifficultyBeginner,
			Type:         TypeCardio,
			Duration:     "20-60 minutes",
			Instructions: []string{
				"Start with a 5-minute warm-up walk",
				"Maintain a steady, comfortable pace",
				"Land on midfoot, not heel",
				"Keep shoulders relaxed and arms swinging naturally",
			},
			Tips: []string{
				"Start slowly and build distance gradually",
				"Invest in proper running shoes",
				"Stay hydrated during longer runs",
			},
			CaloriesPerMinute: 10,
		},
		{
			ID:           6,
			Name:         "Deadlift",
			Category:     "Lower Body",
			MuscleGroups: []string{"Hamstrings", "Glutes", "Lower Back"},
			Equipment:    []string{"Barbell", "Dumbbells"},
			Difficulty:   DifficultyIntermediate,
			Type:         TypeStrength,
			Duration:     "3-5 sets",
			Instructions: []string{
				"Stand with feet hip-width apart, bar over mid-foot",
				"Hinge at hips, keeping chest up and back straight",
				"Grip bar with hands shoulder-width apart",
				"Drive through heels to lift, extending hips and knees together",
			},
			Tips: []string{
				"Keep the bar close to your body throughout",
				"Start with lighter weight to master form",
				"Engage your lats to protect your back",
			},
			CaloriesPerMinute: 8,
		},
		{
			ID:           7,
			Name:         "Mountain Climbers",
			Category:     "Full Body",
			MuscleGroups: []string{"Core", "Shoulders", "Legs"},
			Equipment:    []string{"Bodyweight"},
			Difficulty:   DifficultyIntermediate,
			Type:         TypePlyometric,
			Duration:     "30-60 seconds",
			Instructions: []string{
				"Start in plank position",
				"Bring right knee toward chest",
				"Quickly switch, bringing left knee to chest",
				"Continue alternating at a rapid pace",
			},
			Tips: []string{
				"Keep hips level throughout movement",
				"Maintain plank position in upper body",
				"Start slower to ensure proper form",
			},
			CaloriesPerMinute: 10,
		},
		{
			ID:           8,
			Name:         "Yoga Flow",
			Category:     "Flexibility",
			MuscleGroups: []string{"Full Body"},
			Equipment:    []string{"Yoga Mat"},
			Difficulty:   DifficultyBeginner,
			Type:         TypeFlexibility,
			Duration:     "20-60 minutes",
			Instructions: []string{
				"Begin in child's pose to center yourself",
				"Move through sun salutation sequence",
				"Hold each pose for 5-8 breaths",
				"End with relaxation in savasana",
			},
			Tips: []string{
				"Focus on breath throughout practice",
				"Never force a stretch",
				"Modify poses as needed for your body",
			},
			CaloriesPerMinute: 3,
		},
	}

	// hand-written categories are already display buckets
	for i := range exercises {
		exercises[i].WorkoutType = exercises[i].Category
	}
	return New(exercises)
}
