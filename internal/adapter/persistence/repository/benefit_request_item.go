package repository

import (
	"beneficios_inss/internal/domain/entities"
)

// Storage shapes shared by the DynamoDB and Firestore request repositories.
// Timestamps are RFC3339 strings so both stores sort and compare them the same way.

type documentItem struct {
	Name        string `dynamodbav:"name" firestore:"name"`
	ContentType string `dynamodbav:"content_type" firestore:"content_type"`
	Location    string `dynamodbav:"location" firestore:"location"`
}

type exigenciaResponseItem struct {
	Text        string         `dynamodbav:"text" firestore:"text"`
	Documents   []documentItem `dynamodbav:"documents" firestore:"documents"`
	RespondedAt string         `dynamodbav:"responded_at" firestore:"responded_at"`
}

type exigenciaItem struct {
	Text      string                 `dynamodbav:"text" firestore:"text"`
	CreatedAt string                 `dynamodbav:"created_at" firestore:"created_at"`
	Response  *exigenciaResponseItem `dynamodbav:"response,omitempty" firestore:"response,omitempty"`
}

type requestItem struct {
	ID            string         `dynamodbav:"id" firestore:"id"`
	Protocol      string         `dynamodbav:"protocol" firestore:"protocol"`
	BenefitID     string         `dynamodbav:"benefit_id" firestore:"benefit_id"`
	BenefitTitle  string         `dynamodbav:"benefit_title" firestore:"benefit_title"`
	RequestDate   string         `dynamodbav:"request_date" firestore:"request_date"`
	Status        string         `dynamodbav:"status" firestore:"status"`
	Description   string         `dynamodbav:"description" firestore:"description"`
	Documents     []documentItem `dynamodbav:"documents" firestore:"documents"`
	ApplicantName string         `dynamodbav:"applicant_name" firestore:"applicant_name"`
	ApplicantCPF  string         `dynamodbav:"applicant_cpf" firestore:"applicant_cpf"`
	DenialReason  string         `dynamodbav:"denial_reason,omitempty" firestore:"denial_reason,omitempty"`
	Exigencia     *exigenciaItem `dynamodbav:"exigencia,omitempty" firestore:"exigencia,omitempty"`
	UpdatedAt     string         `dynamodbav:"updated_at" firestore:"updated_at"`
}

// protocolItem reserves a protocol for exactly one request.
type protocolItem struct {
	Protocol  string `dynamodbav:"protocol" firestore:"protocol"`
	RequestID string `dynamodbav:"request_id" firestore:"request_id"`
	CreatedAt string `dynamodbav:"created_at" firestore:"created_at"`
}

type userItem struct {
	CPF       string `dynamodbav:"cpf" firestore:"cpf"`
	FullName  string `dynamodbav:"full_name" firestore:"full_name"`
	BirthDate string `dynamodbav:"birth_date,omitempty" firestore:"birth_date,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty" firestore:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty" firestore:"email,omitempty"`
	Address   string `dynamodbav:"address,omitempty" firestore:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at" firestore:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at" firestore:"updated_at"`
}

func toRequestItem(r entities.BenefitRequest) requestItem {
	return requestItem{
		ID:            r.ID,
		Protocol:      r.Protocol,
		BenefitID:     r.BenefitID,
		BenefitTitle:  r.BenefitTitle,
		RequestDate:   formatTime(r.RequestDate),
		Status:        string(r.Status),
		Description:   r.Description,
		Documents:     toDocumentItems(r.Documents),
		ApplicantName: r.Applicant.FullName,
		ApplicantCPF:  r.Applicant.CPF,
		DenialReason:  r.DenialReason,
		Exigencia:     toExigenciaItem(r.Exigencia),
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
}

func fromRequestItem(it requestItem) entities.BenefitRequest {
	return entities.BenefitRequest{
		ID:           it.ID,
		Protocol:     it.Protocol,
		BenefitID:    it.BenefitID,
		BenefitTitle: it.BenefitTitle,
		RequestDate:  parseTime(it.RequestDate),
		Status:       entities.RequestStatus(it.Status),
		Description:  it.Description,
		Documents:    fromDocumentItems(it.Documents),
		Applicant:    entities.Applicant{FullName: it.ApplicantName, CPF: it.ApplicantCPF},
		DenialReason: it.DenialReason,
		Exigencia:    fromExigenciaItem(it.Exigencia),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

func toExigenciaItem(e *entities.ExigenciaRecord) *exigenciaItem {
	if e == nil {
		return nil
	}
	out := &exigenciaItem{Text: e.Text, CreatedAt: formatTime(e.CreatedAt)}
	if e.Response != nil {
		out.Response = &exigenciaResponseItem{
			Text:        e.Response.Text,
			Documents:   toDocumentItems(e.Response.Documents),
			RespondedAt: formatTime(e.Response.RespondedAt),
		}
	}
	return out
}

func fromExigenciaItem(it *exigenciaItem) *entities.ExigenciaRecord {
	if it == nil {
		return nil
	}
	out := &entities.ExigenciaRecord{Text: it.Text, CreatedAt: parseTime(it.CreatedAt)}
	if it.Response != nil {
		out.Response = &entities.ExigenciaResponse{
			Text:        it.Response.Text,
			Documents:   fromDocumentItems(it.Response.Documents),
			RespondedAt: parseTime(it.Response.RespondedAt),
		}
	}
	return out
}

func toDocumentItems(docs []entities.DocumentRef) []documentItem {
	out := make([]documentItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentItem{Name: d.Name, ContentType: d.ContentType, Location: d.Location})
	}
	return out
}

func fromDocumentItems(items []documentItem) []entities.DocumentRef {
	out := make([]entities.DocumentRef, 0, len(items))
	for _, d := range items {
		out = append(out, entities.DocumentRef{Name: d.Name, ContentType: d.ContentType, Location: d.Location})
	}
	return out
}

func toUserItem(p entities.UserProfile) userItem {
	return userItem{
		CPF:       p.CPF,
		FullName:  p.FullName,
		BirthDate: p.BirthDate,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func fromUserItem(it userItem) entities.UserProfile {
	return entities.UserProfile{
		CPF:       it.CPF,
		FullName:  it.FullName,
		BirthDate: it.BirthDate,
		Phone:     it.Phone,
		Email:     it.Email,
		Address:   it.Address,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
