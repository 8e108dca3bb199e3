package utils

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"errors"
)

// BuildAccountFromSignup maps a signup request to a new account holding only
// the profile of its role. Fields of the other role are ignored.
func BuildAccountFromSignup(request *requests.Signup, hashedPassword string) (*models.Account, error) {
	role, err := models.ParseRole(request.Role)
	if err != nil {
		return nil, exceptions.ErrInvalidRoleType(err, request.Role)
	}

	account := &models.Account{
		Email:    request.Email,
		Password: hashedPassword,
		Name:     request.Name,
		Contact:  request.Contact,
		Image:    request.Image,
		Role:     role,
	}

	switch role {
	case models.RolePatient:
		if request.Age == nil || request.Gender == "" || request.Birth == nil {
			return nil, exceptions.ErrMissingRoleFields(errors.New("age, gender and birth are required"), role.String())
		}
		account.Patient = &models.PatientProfile{
			Age:    *request.Age,
			Gender: models.Gender(request.Gender),
			Birth:  request.Birth.UTC(),
		}
	case models.RolePractitioner:
		if request.Profession == "" || request.YearsExperience == nil || request.Location == "" {
			return nil, exceptions.ErrMissingRoleFields(errors.New("profession, yearsExperience and location are required"), role.String())
		}
		account.Practitioner = &models.PractitionerProfile{
			Profession:      request.Profession,
			YearsExperience: *request.YearsExperience,
			Location:        request.Location,
		}
	}

	account.InitCollections()
	account.SetCreatedAtUpdatedAt()
	return account, nil
}

// ApplyAccountEdits copies the non-empty fields of request onto account.
// Fields that belong to the other role are ignored.
func ApplyAccountEdits(account *models.Account, request *requests.EditAccount) error {
	if request.Name != "" {
		account.Name = request.Name
	}
	if request.Contact != "" {
		account.Contact = request.Contact
	}
	if request.Image != "" {
		account.Image = request.Image
	}

	err := account.Match(
		func(patient *models.PatientProfile) error {
			if request.Age != nil {
				patient.Age = *request.Age
			}
			if request.Gender != "" {
				patient.Gender = models.Gender(request.Gender)
			}
			if request.Birth != nil {
				patient.Birth = request.Birth.UTC()
			}
			return nil
		},
		func(practitioner *models.PractitionerProfile) error {
			if request.Profession != "" {
				practitioner.Profession = request.Profession
			}
			if request.YearsExperience != nil {
				practitioner.YearsExperience = *request.YearsExperience
			}
			if request.Location != "" {
				practitioner.Location = request.Location
			}
			return nil
		},
	)
	if err != nil {
		return exceptions.ErrInvalidRoleType(err, account.Role.String())
	}

	account.SetUpdatedAt()
	return nil
}
