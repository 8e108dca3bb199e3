package responses

import "time"

type Comment struct {
	PractitionerID   string    `json:"practitionerId"`
	PractitionerName string    `json:"practitionerName"`
	Text             string    `json:"text"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Inquiry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"name"`
	Inquiry   string    `json:"inquiry"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
