package constvars

const (
	ResponseUnknown = "unknown"

	// Accounts
	SignupSuccessMessage            = "user registered successfully"
	SigninSuccessMessage            = "successfully login"
	ValidateTokenSuccessMessage     = "token is valid"
	GetProfileSuccessMessage        = "get profile successfully"
	GetPatientsSuccessMessage       = "get patients successfully"
	GetPractitionersSuccessMessage  = "get practitioners successfully"
	CreateUserSuccessMessage        = "user created successfully"
	UpdateUserSuccessMessage        = "user updated successfully"
	DeleteUserSuccessMessage        = "user deleted successfully"
	AddAvailableDatesSuccessMessage = "available dates added successfully"
	ReserveDateSuccessMessage       = "date reserved successfully"
	RatePractitionerSuccessMessage  = "rating submitted successfully"

	// Inquiries
	GetInquiriesSuccessMessage  = "get inquiries successfully"
	GetInquirySuccessMessage    = "get inquiry successfully"
	CreateInquirySuccessMessage = "inquiry created successfully"
	UpdateInquirySuccessMessage = "inquiry updated successfully"
	DeleteInquirySuccessMessage = "inquiry deleted successfully"
	AddCommentSuccessMessage    = "comment added successfully"

	// Histories
	GetHistoriesSuccessMessage       = "get histories successfully"
	GetHistorySuccessMessage         = "get history successfully"
	CreateHistorySuccessMessage      = "history created successfully"
	UpdateHistorySuccessMessage      = "history updated successfully"
	DeleteHistorySuccessMessage      = "history deleted successfully"
	UploadHistoryMediaSuccessMessage = "media uploaded successfully"
)
