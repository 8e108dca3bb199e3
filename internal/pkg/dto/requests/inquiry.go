package requests

type CreateInquiry struct {
	UserID  string `json:"userId"`
	Inquiry string `json:"inquiry" validate:"required"`
}

type UpdateInquiry struct {
	InquiryID string `json:"-" validate:"required"`
	Inquiry   string `json:"inquiry" validate:"required"`
}

type AddComment struct {
	InquiryID      string `json:"-" validate:"required"`
	PractitionerID string `json:"practitionerId"`
	Text           string `json:"text" validate:"required"`
}
