package requests

import (
	"io"
	"mime/multipart"
)

type CreateHistory struct {
	PatientID   string `json:"-" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Media       string `json:"media"`
	Description string `json:"description"`
}

type UpdateHistory struct {
	HistoryID   string  `json:"-" validate:"required"`
	Title       *string `json:"title"`
	Media       *string `json:"media"`
	Description *string `json:"description"`
}

type UploadHistoryMedia struct {
	File       io.Reader             `validate:"required"`
	FileHeader *multipart.FileHeader `validate:"required"`
}
