package constvars

const (
	URLParamID        = "id"
	URLParamUserID    = "userId"
	URLParamHistoryID = "historyId"
	URLParamPatientID = "patientId"

	FormFieldMedia = "media"
)
