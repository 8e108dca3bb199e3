package requests

import "time"

type EditAccount struct {
	AccountID string `json:"-" validate:"required"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Image     string `json:"image"`

	Age    *int       `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Birth  *time.Time `json:"birth"`

	Profession      string `json:"profession"`
	YearsExperience *int   `json:"yearsExperience" validate:"omitempty,gte=0"`
	Location        string `json:"location"`
}

type AddAvailableDates struct {
	PractitionerID string `json:"-" validate:"required"`
	Dates          []Date `json:"dates" validate:"required,min=1,dive,required"`
}

type ReserveDate struct {
	PractitionerID string `json:"-" validate:"required"`
	Date           Date   `json:"date" validate:"required"`
}

type RatePractitioner struct {
	PractitionerID string   `json:"-" validate:"required"`
	PatientID      string   `json:"patientId"`
	Value          *float64 `json:"value" validate:"required,gte=0,lte=5"`
}

type UnlinkHistory struct {
	AccountID string `validate:"required"`
	HistoryID string `validate:"required"`
}
