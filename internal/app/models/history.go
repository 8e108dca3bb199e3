package models

type History struct {
	ID          string `bson:"_id,omitempty"`
	Title       string `bson:"title"`
	Media       string `bson:"media,omitempty"`
	Description string `bson:"description,omitempty"`
	TimeModel   `bson:",inline"`
}
