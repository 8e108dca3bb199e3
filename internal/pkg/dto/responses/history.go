package responses

import "time"

type History struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Media       string    `json:"media,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UploadedMedia struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
}
