package models

import "math"

type Rating struct {
	PatientID string  `bson:"patientId"`
	Value     float64 `bson:"value"`
}

const (
	MinRatingValue = 0
	MaxRatingValue = 5
)

func IsValidRatingValue(value float64) bool {
	return !math.IsNaN(value) && value >= MinRatingValue && value <= MaxRatingValue
}

// AverageRating returns the mean of the rating values rounded to two decimals,
// or 0 for an empty list.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, rating := range ratings {
		sum += rating.Value
	}
	return math.Round(sum/float64(len(ratings))*100) / 100
}
