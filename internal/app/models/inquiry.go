package models

import "time"

type Inquiry struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"userId"`
	Inquiry   string    `bson:"inquiry"`
	Comments  []Comment `bson:"comments"`
	TimeModel `bson:",inline"`
}

// Comment is immutable once appended to an inquiry.
type Comment struct {
	PractitionerID string    `bson:"practitionerId"`
	Text           string    `bson:"text"`
	CreatedAt      time.Time `bson:"createdAt"`
}
