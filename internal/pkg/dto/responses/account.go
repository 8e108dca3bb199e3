package responses

import "time"

type Rating struct {
	PatientID string  `json:"patientId"`
	Value     float64 `json:"value"`
}

// Account is the role-specific profile view. Only the fields of the
// account's own variant are populated.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Age       *int       `json:"age,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	Birth     *time.Time `json:"birth,omitempty"`
	Histories []History  `json:"history,omitempty"`
	Inquiries []string   `json:"inquiries,omitempty"`

	Profession      string      `json:"profession,omitempty"`
	YearsExperience *int        `json:"yearsExperience,omitempty"`
	Location        string      `json:"location,omitempty"`
	AvailableDays   []time.Time `json:"availableDays,omitempty"`
	Ratings         []Rating    `json:"ratings,omitempty"`
	AverageRating   *float64    `json:"averageRating,omitempty"`
}
