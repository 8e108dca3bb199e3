package constvars

const (
	EmailSendBasicEmailSubjectFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n"

	EmailSubjectAppointmentReminder = "Appointment Reminder"
	EmailBodyAppointmentReminder    = "Dear %s,\n\nThis is a reminder for your appointment with %s on %s.\n\nThank you."
	EmailReminderDateLayout         = "Monday, 02 January 2006"
)
