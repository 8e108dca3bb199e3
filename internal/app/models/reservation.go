package models

import "time"

// Reservation records a date taken out of a practitioner's availability. The
// reminder job reads these.
type Reservation struct {
	ID               string    `bson:"_id,omitempty"`
	PractitionerID   string    `bson:"practitionerId"`
	PractitionerName string    `bson:"practitionerName"`
	PatientID        string    `bson:"patientId"`
	PatientName      string    `bson:"patientName"`
	PatientEmail     string    `bson:"patientEmail"`
	Date             time.Time `bson:"date"`
	CreatedAt        time.Time `bson:"createdAt"`
}
