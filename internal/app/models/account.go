package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

var ErrAccountVariantMismatch = errors.New("account role does not match its profile variant")

// Account is a user of the platform. Role selects which of Patient or
// Practitioner is set; exactly one of them is non-nil for a valid account.
type Account struct {
	ID           string               `bson:"_id,omitempty"`
	Email        string               `bson:"email"`
	Password     string               `bson:"password"`
	Name         string               `bson:"name"`
	Contact      string               `bson:"contact"`
	Image        string               `bson:"image,omitempty"`
	Role         Role                 `bson:"role"`
	Patient      *PatientProfile      `bson:"patient,omitempty"`
	Practitioner *PractitionerProfile `bson:"practitioner,omitempty"`
	TimeModel    `bson:",inline"`
}

type PatientProfile struct {
	Age       int       `bson:"age"`
	Gender    Gender    `bson:"gender"`
	Birth     time.Time `bson:"birth"`
	History   []string  `bson:"history"`
	Inquiries []string  `bson:"inquiries"`
}

type PractitionerProfile struct {
	Profession      string      `bson:"profession"`
	YearsExperience int         `bson:"yearsExperience"`
	Location        string      `bson:"location"`
	AvailableDays   []time.Time `bson:"availableDays"`
	Ratings         []Rating    `bson:"ratings"`
}

// Match dispatches on the account variant. It fails when the role tag and the
// populated profile disagree.
func (a *Account) Match(onPatient func(*PatientProfile) error, onPractitioner func(*PractitionerProfile) error) error {
	switch a.Role {
	case RolePatient:
		if a.Patient == nil || a.Practitioner != nil {
			return ErrAccountVariantMismatch
		}
		return onPatient(a.Patient)
	case RolePractitioner:
		if a.Practitioner == nil || a.Patient != nil {
			return ErrAccountVariantMismatch
		}
		return onPractitioner(a.Practitioner)
	default:
		return fmt.Errorf("unknown role %q: %w", a.Role, ErrAccountVariantMismatch)
	}
}

func (a *Account) IsPatient() bool {
	return a != nil && a.Role == RolePatient && a.Patient != nil
}

func (a *Account) IsPractitioner() bool {
	return a != nil && a.Role == RolePractitioner && a.Practitioner != nil
}

// AverageRating is zero for a patient account.
func (a *Account) AverageRating() float64 {
	if !a.IsPractitioner() {
		return 0
	}
	return AverageRating(a.Practitioner.Ratings)
}

// InitCollections replaces nil list fields with empty ones so the stored
// document holds arrays that $push and $addToSet can target.
func (a *Account) InitCollections() {
	if a.Patient != nil {
		if a.Patient.History == nil {
			a.Patient.History = []string{}
		}
		if a.Patient.Inquiries == nil {
			a.Patient.Inquiries = []string{}
		}
	}
	if a.Practitioner != nil {
		if a.Practitioner.AvailableDays == nil {
			a.Practitioner.AvailableDays = []time.Time{}
		}
		if a.Practitioner.Ratings == nil {
			a.Practitioner.Ratings = []Rating{}
		}
	}
}

// ConvertProfileToBsonM returns the editable fields as a $set document. Role,
// credentials and the reference lists, availability and ratings are never included.
func (a *Account) ConvertProfileToBsonM() bson.M {
	fields := bson.M{
		"name":      a.Name,
		"contact":   a.Contact,
		"image":     a.Image,
		"updatedAt": a.UpdatedAt,
	}
	switch a.Role {
	case RolePatient:
		if a.Patient != nil {
			fields["patient.age"] = a.Patient.Age
			fields["patient.gender"] = a.Patient.Gender
			fields["patient.birth"] = a.Patient.Birth
		}
	case RolePractitioner:
		if a.Practitioner != nil {
			fields["practitioner.profession"] = a.Practitioner.Profession
			fields["practitioner.yearsExperience"] = a.Practitioner.YearsExperience
			fields["practitioner.location"] = a.Practitioner.Location
		}
	}
	return fields
}
