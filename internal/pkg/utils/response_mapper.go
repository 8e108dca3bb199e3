package utils

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/responses"
)

func BuildAccountSummary(account *models.Account) responses.AccountSummary {
	return responses.AccountSummary{
		ID:    account.ID,
		Email: account.Email,
		Role:  account.Role.String(),
		Name:  account.Name,
	}
}

// BuildAccountResponse renders the profile of account. histories is only used
// for patients and holds the resolved history records.
func BuildAccountResponse(account *models.Account, histories []models.History) (*responses.Account, error) {
	response := &responses.Account{
		ID:        account.ID,
		Email:     account.Email,
		Role:      account.Role.String(),
		Name:      account.Name,
		Contact:   account.Contact,
		Image:     account.Image,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	err := account.Match(
		func(patient *models.PatientProfile) error {
			age := patient.Age
			birth := patient.Birth
			response.Age = &age
			response.Gender = string(patient.Gender)
			response.Birth = &birth
			response.Inquiries = patient.Inquiries
			response.Histories = BuildHistoriesResponse(histories)
			return nil
		},
		func(practitioner *models.PractitionerProfile) error {
			yearsExperience := practitioner.YearsExperience
			averageRating := account.AverageRating()
			response.Profession = practitioner.Profession
			response.YearsExperience = &yearsExperience
			response.Location = practitioner.Location
			response.AvailableDays = practitioner.AvailableDays
			response.Ratings = make([]responses.Rating, 0, len(practitioner.Ratings))
			for _, rating := range practitioner.Ratings {
				response.Ratings = append(response.Ratings, responses.Rating{PatientID: rating.PatientID, Value: rating.Value})
			}
			response.AverageRating = &averageRating
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func BuildHistoryResponse(history *models.History) responses.History {
	return responses.History{
		ID:          history.ID,
		Title:       history.Title,
		Media:       history.Media,
		Description: history.Description,
		CreatedAt:   history.CreatedAt,
		UpdatedAt:   history.UpdatedAt,
	}
}

func BuildHistoriesResponse(histories []models.History) []responses.History {
	result := make([]responses.History, 0, len(histories))
	for i := range histories {
		result = append(result, BuildHistoryResponse(&histories[i]))
	}
	return result
}

// BuildInquiryResponse attaches display names. names maps account id to name;
// missing owners and commenters get the unknown placeholders.
func BuildInquiryResponse(inquiry *models.Inquiry, names map[string]string, unknownUser, unknownPractitioner string) responses.Inquiry {
	userName, ok := names[inquiry.UserID]
	if !ok {
		userName = unknownUser
	}

	comments := make([]responses.Comment, 0, len(inquiry.Comments))
	for _, comment := range inquiry.Comments {
		practitionerName, ok := names[comment.PractitionerID]
		if !ok {
			practitionerName = unknownPractitioner
		}
		comments = append(comments, responses.Comment{
			PractitionerID:   comment.PractitionerID,
			PractitionerName: practitionerName,
			Text:             comment.Text,
			CreatedAt:        comment.CreatedAt,
		})
	}

	return responses.Inquiry{
		ID:        inquiry.ID,
		UserID:    inquiry.UserID,
		UserName:  userName,
		Inquiry:   inquiry.Inquiry,
		Comments:  comments,
		CreatedAt: inquiry.CreatedAt,
		UpdatedAt: inquiry.UpdatedAt,
	}
}
