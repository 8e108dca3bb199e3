package models

import "fmt"

type Role string

const (
	RolePatient      Role = "Patient"
	RolePractitioner Role = "Practitioner"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RolePatient:
		return RolePatient, nil
	case RolePractitioner:
		return RolePractitioner, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

func (r Role) String() string {
	return string(r)
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)
