package response

import (
	"fmt"
	"time"

	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/domain/lifecycle"
)

// DocumentResponse hides the stored location; clients fetch the file through ViewPath.
type DocumentResponse struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	ViewPath    string `json:"view_path"`
}

type ApplicantResponse struct {
	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`
}

type ExigenciaAnswerResponse struct {
	Text        string             `json:"text"`
	Documents   []DocumentResponse `json:"documents"`
	RespondedAt time.Time          `json:"responded_at"`
}

type ExigenciaResponse struct {
	Text             string                   `json:"text"`
	CreatedAt        time.Time                `json:"created_at"`
	ResponseDeadline time.Time                `json:"response_deadline"`
	Response         *ExigenciaAnswerResponse `json:"response,omitempty"`
}

type BenefitRequestResponse struct {
	ID           string             `json:"id"`
	Protocol     string             `json:"protocol"`
	BenefitID    string             `json:"benefit_id"`
	BenefitTitle string             `json:"benefit_title"`
	RequestDate  time.Time          `json:"request_date"`
	Status       string             `json:"status"`
	StatusLabel  string             `json:"status_label"`
	Description  string             `json:"description"`
	Documents    []DocumentResponse `json:"documents"`
	Applicant    ApplicantResponse  `json:"applicant"`
	DenialReason string             `json:"denial_reason,omitempty"`
	Exigencia    *ExigenciaResponse `json:"exigencia,omitempty"`
	IsActive     bool               `json:"is_active"`
	IsFinished   bool               `json:"is_finished"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromBenefitRequest(r entities.BenefitRequest) BenefitRequestResponse {
	res := BenefitRequestResponse{
		ID:           r.ID,
		Protocol:     r.Protocol,
		BenefitID:    r.BenefitID,
		BenefitTitle: r.BenefitTitle,
		RequestDate:  r.RequestDate,
		Status:       string(r.Status),
		StatusLabel:  r.Status.Label(),
		Description:  r.Description,
		Documents:    fromDocuments(r.ID, "", r.Documents),
		Applicant:    ApplicantResponse{FullName: r.Applicant.FullName, CPF: r.Applicant.CPF},
		DenialReason: r.DenialReason,
		IsActive:     lifecycle.IsActive(r),
		IsFinished:   lifecycle.IsFinished(r),
		UpdatedAt:    r.UpdatedAt,
	}
	if e := r.Exigencia; e != nil {
		res.Exigencia = &ExigenciaResponse{
			Text:             e.Text,
			CreatedAt:        e.CreatedAt,
			ResponseDeadline: lifecycle.ResponseDeadline(*e),
		}
		if a := e.Response; a != nil {
			res.Exigencia.Response = &ExigenciaAnswerResponse{
				Text:        a.Text,
				Documents:   fromDocuments(r.ID, "exigencia", a.Documents),
				RespondedAt: a.RespondedAt,
			}
		}
	}
	return res
}

func FromBenefitRequests(list []entities.BenefitRequest) []BenefitRequestResponse {
	out := make([]BenefitRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromBenefitRequest(r))
	}
	return out
}

func fromDocuments(requestID, source string, docs []entities.DocumentRef) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for i, d := range docs {
		path := fmt.Sprintf("/v1/requests/%s/documents/%d", requestID, i)
		if source != "" {
			path += "?source=" + source
		}
		out = append(out, DocumentResponse{Name: d.Name, ContentType: d.ContentType, ViewPath: path})
	}
	return out
}
