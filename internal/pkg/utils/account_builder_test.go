package utils

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAccountFromSignup(t *testing.T) {
	age := 31
	years := 12
	birth := time.Date(1993, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Patient Ignores Practitioner Fields", func(t *testing.T) {
		request := &requests.Signup{
			Email: "jane@example.com", Role: "Patient", Name: "Jane", Contact: "123",
			Age: &age, Gender: "Female", Birth: &birth, Profession: "Surgeon",
		}
		account, err := BuildAccountFromSignup(request, "hash")
		require.NoError(t, err)
		assert.True(t, account.IsPatient())
		assert.Nil(t, account.Practitioner)
		assert.Equal(t, "hash", account.Password)
		assert.Equal(t, []string{}, account.Patient.History)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("Practitioner Missing Location", func(t *testing.T) {
		request := &requests.Signup{
			Email: "doc@example.com", Role: "Practitioner", Name: "Doc", Contact: "123",
			Profession: "Surgeon", YearsExperience: &years,
		}
		_, err := BuildAccountFromSignup(request, "hash")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("Unknown Role", func(t *testing.T) {
		_, err := BuildAccountFromSignup(&requests.Signup{Role: "Admin"}, "hash")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}

func TestApplyAccountEdits(t *testing.T) {
	age := 40
	years := 3
	account := &models.Account{
		Name: "Jane",
		Role: models.RolePatient,
		Patient: &models.PatientProfile{
			Age:     30,
			History: []string{"h1"},
		},
	}

	err := ApplyAccountEdits(account, &requests.EditAccount{
		Name:            "Jane Doe",
		Age:             &age,
		YearsExperience: &years,
		Location:        "Berlin",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", account.Name)
	assert.Equal(t, 40, account.Patient.Age)
	assert.Equal(t, []string{"h1"}, account.Patient.History)
	assert.Nil(t, account.Practitioner)
	assert.Equal(t, models.RolePatient, account.Role)
}
