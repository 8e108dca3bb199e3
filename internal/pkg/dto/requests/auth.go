package requests

import "time"

type Signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"required,oneof=Patient Practitioner"`
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Image    string `json:"image"`

	Age    *int       `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Birth  *time.Time `json:"birth"`

	Profession      string `json:"profession"`
	YearsExperience *int   `json:"yearsExperience" validate:"omitempty,gte=0"`
	Location        string `json:"location"`
}

type Signin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ValidateToken struct {
	Token string `validate:"required"`
}
