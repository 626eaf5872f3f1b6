package catalog

import "strings"

// Workout-type buckets used to group raw categories.
const (
	BucketUpperBody = "Upper Body"
	BucketLowerBody = "Lower Body"
	BucketCore      = "Core"
	BucketCardio    = "Cardio"
	BucketFullBody  = "Full Body"
)

var bucketTable = map[string]string{
	"upper body": BucketUpperBody,
	"chest":      BucketUpperBody,
	"back":       BucketUpperBody,
	"shoulders":  BucketUpperBody,
	"upper arms": BucketUpperBody,
	"lower arms": BucketUpperBody,
	"arms":       BucketUpperBody,
	"biceps":     BucketUpperBody,
	"triceps":    BucketUpperBody,
	"forearms":   BucketUpperBody,
	"lats":       BucketUpperBody,
	"traps":      BucketUpperBody,
	"neck":       BucketUpperBody,

	"lower body":  BucketLowerBody,
	"legs":        BucketLowerBody,
	"upper legs":  BucketLowerBody,
	"lower legs":  BucketLowerBody,
	"quadriceps":  BucketLowerBody,
	"hamstrings":  BucketLowerBody,
	"glutes":      BucketLowerBody,
	"calves":      BucketLowerBody,
	"hips":        BucketLowerBody,
	"adductors":   BucketLowerBody,
	"abductors":   BucketLowerBody,

	"core":       BucketCore,
	"waist":      BucketCore,
	"abs":        BucketCore,
	"abdominals": BucketCore,
	"obliques":   BucketCore,
	"lower back": BucketCore,

	"cardio":                BucketCardio,
	"cardiovascular":        BucketCardio,
	"cardiovascular system": BucketCardio,
}

// Bucket maps a raw body-area category onto a workout-type bucket.
// Every input yields a bucket; unknown categories fall back to Full Body.
func Bucket(rawCategory string) string {
	if b, ok := bucketTable[strings.ToLower(strings.TrimSpace(rawCategory))]; ok {
		return b
	}
	return BucketFullBody
}
