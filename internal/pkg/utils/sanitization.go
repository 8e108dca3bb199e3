package utils

import (
	"carelink-service/internal/pkg/dto/requests"
	"strings"
)

func capitalizeFirstLetter(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func SanitizeSignupRequest(input *requests.Signup) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = capitalizeFirstLetter(strings.TrimSpace(input.Role))
	input.Name = strings.TrimSpace(input.Name)
	input.Contact = strings.TrimSpace(input.Contact)
	input.Image = strings.TrimSpace(input.Image)
	input.Gender = capitalizeFirstLetter(strings.TrimSpace(input.Gender))
	input.Profession = strings.TrimSpace(input.Profession)
	input.Location = strings.TrimSpace(input.Location)
}

func SanitizeSigninRequest(input *requests.Signin) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeEditAccountRequest(input *requests.EditAccount) {
	input.Name = strings.TrimSpace(input.Name)
	input.Contact = strings.TrimSpace(input.Contact)
	input.Image = strings.TrimSpace(input.Image)
	input.Gender = capitalizeFirstLetter(strings.TrimSpace(input.Gender))
	input.Profession = strings.TrimSpace(input.Profession)
	input.Location = strings.TrimSpace(input.Location)
}

func SanitizeRatePractitionerRequest(input *requests.RatePractitioner) {
	input.PatientID = strings.TrimSpace(input.PatientID)
}

func SanitizeCreateInquiryRequest(input *requests.CreateInquiry) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Inquiry = strings.TrimSpace(input.Inquiry)
}

func SanitizeUpdateInquiryRequest(input *requests.UpdateInquiry) {
	input.Inquiry = strings.TrimSpace(input.Inquiry)
}

func SanitizeAddCommentRequest(input *requests.AddComment) {
	input.PractitionerID = strings.TrimSpace(input.PractitionerID)
	input.Text = strings.TrimSpace(input.Text)
}

func SanitizeCreateHistoryRequest(input *requests.CreateHistory) {
	input.Title = strings.TrimSpace(input.Title)
	input.Media = strings.TrimSpace(input.Media)
	input.Description = strings.TrimSpace(input.Description)
}

func SanitizeUpdateHistoryRequest(input *requests.UpdateHistory) {
	for _, field := range []*string{input.Title, input.Media, input.Description} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}
