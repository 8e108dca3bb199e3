package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	t.Run("No Ratings", func(t *testing.T) {
		assert.Equal(t, 0.0, AverageRating(nil))
		assert.Equal(t, 0.0, AverageRating([]Rating{}))
	})

	t.Run("Whole Mean", func(t *testing.T) {
		ratings := []Rating{
			{PatientID: "a", Value: 3},
			{PatientID: "b", Value: 4},
			{PatientID: "c", Value: 5},
		}
		assert.Equal(t, 4.0, AverageRating(ratings))
	})

	t.Run("Rounded To Two Decimals", func(t *testing.T) {
		ratings := []Rating{
			{PatientID: "a", Value: 5},
			{PatientID: "b", Value: 4},
			{PatientID: "c", Value: 4},
		}
		assert.Equal(t, 4.33, AverageRating(ratings))
	})
}

func TestIsValidRatingValue(t *testing.T) {
	assert.True(t, IsValidRatingValue(0))
	assert.True(t, IsValidRatingValue(5))
	assert.True(t, IsValidRatingValue(2.5))
	assert.False(t, IsValidRatingValue(-0.1))
	assert.False(t, IsValidRatingValue(5.01))
	assert.False(t, IsValidRatingValue(math.NaN()))
}
