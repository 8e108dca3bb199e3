package responses

type AccountSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type Auth struct {
	Token string         `json:"token"`
	User  AccountSummary `json:"user"`
}
