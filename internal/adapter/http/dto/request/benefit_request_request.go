package request

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"slices"
	"strings"

	"beneficios_inss/internal/domain/entities"
)

// Multipart field names used by the citizen endpoints.
const (
	FieldBenefitID   = "benefit_id"
	FieldDescription = "description"
	FieldText        = "text"
	FieldDocuments   = "documents[]"
	FieldDocumentsV2 = "documents"
)

var ErrInvalidStatus = errors.New("invalid status")

// IssueExigenciaRequest is sent by a caseworker to ask the citizen for more information.
type IssueExigenciaRequest struct {
	Text string `json:"text" binding:"required"`
}

// SetStatusRequest changes the request status. Reason is only kept for indeferido.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

func (r SetStatusRequest) ResolveStatus() (entities.RequestStatus, error) {
	s := entities.RequestStatus(strings.TrimSpace(r.Status))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

type RecommendationRequest struct {
	Description string `json:"description" binding:"required"`
}

// DocumentFiles returns the uploaded files, accepting both "documents[]" and "documents".
func DocumentFiles(form *multipart.Form) []*multipart.FileHeader {
	if form == nil {
		return nil
	}
	return slices.Concat(form.File[FieldDocuments], form.File[FieldDocumentsV2])
}

// ReadUploads loads every file into memory. Size and type checks happen in the use case.
func ReadUploads(files []*multipart.FileHeader) ([]entities.DocumentUpload, error) {
	uploads := make([]entities.DocumentUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		uploads = append(uploads, entities.DocumentUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return uploads, nil
}
