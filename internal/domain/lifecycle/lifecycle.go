// Package lifecycle holds the benefit request state machine.
//
// Every function here is pure: it receives the current request and returns
// either the partial update to write or an error. Nothing is persisted.
//
//	UnderReview ──issueExigencia──▶ InformationRequested ──respond──▶ UnderReview
//	any non-terminal ──setStatus──▶ UnderReview | InPersonRequired | Approved | Denied
//
// Approved and Denied are terminal.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"beneficios_inss/internal/domain/entities"
)

// ResponseWindow is the informational deadline for answering an exigência.
const ResponseWindow = 30 * 24 * time.Hour

// MinDescriptionLength is the shortest accepted citizen statement.
const MinDescriptionLength = 10

// NewRequestInput is everything the citizen submission flow provides.
type NewRequestInput struct {
	ID          string
	Benefit     entities.Benefit
	Applicant   entities.Applicant
	Description string
	Documents   []entities.DocumentRef
	Now         time.Time
}

// NewRequest builds a request in UnderReview. This is the only place documents
// are attached to the request itself.
func NewRequest(in NewRequestInput) (entities.BenefitRequest, error) {
	description := strings.TrimSpace(in.Description)
	if len([]rune(description)) < MinDescriptionLength {
		return entities.BenefitRequest{}, ValidationError("description", fmt.Sprintf("must have at least %d characters", MinDescriptionLength))
	}
	if in.Benefit.ID == "" {
		return entities.BenefitRequest{}, ValidationError("benefit_id", "unknown benefit")
	}
	if strings.TrimSpace(in.Applicant.CPF) == "" || strings.TrimSpace(in.Applicant.FullName) == "" {
		return entities.BenefitRequest{}, ValidationError("applicant", "applicant snapshot is incomplete")
	}

	now := in.Now.UTC()
	var docs []entities.DocumentRef
	if in.Documents != nil {
		docs = append([]entities.DocumentRef{}, in.Documents...)
	}

	return entities.BenefitRequest{
		ID:           in.ID,
		Protocol:     NewProtocol(now),
		BenefitID:    in.Benefit.ID,
		BenefitTitle: in.Benefit.Title,
		RequestDate:  now,
		Status:       entities.RequestStatusUnderReview,
		Description:  description,
		Documents:    docs,
		Applicant:    in.Applicant,
		UpdatedAt:    now,
	}, nil
}

// AttachToRequest sets the original documents of a request that is being
// created. A nil Documents list is still open; attaching, even zero documents,
// closes it. Stored requests always carry a non-nil list.
func AttachToRequest(r entities.BenefitRequest, documents []entities.DocumentRef) (entities.BenefitRequest, error) {
	if r.Documents != nil {
		return r, InvalidStateError("documents are only attached at creation")
	}
	r.Documents = append([]entities.DocumentRef{}, documents...)
	return r, nil
}

// NewProtocol derives the tracking code: four-digit year followed by the last
// six digits of the millisecond clock.
func NewProtocol(now time.Time) string {
	return fmt.Sprintf("%04d%06d", now.Year(), now.UnixMilli()%1_000_000)
}

// IssueExigencia opens a new exigência. Any previous record, answered or not,
// is replaced by a fresh one with no response.
func IssueExigencia(r entities.BenefitRequest, text string, now time.Time) (entities.RequestPatch, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.RequestPatch{}, ValidationError("text", "exigencia text is required")
	}
	if r.Status.Terminal() {
		return entities.RequestPatch{}, InvalidStateError(fmt.Sprintf("request is %s", r.Status))
	}
	return entities.RequestPatch{
		Status: entities.RequestStatusInformationRequested,
		Exigencia: &entities.ExigenciaRecord{
			Text:      text,
			CreatedAt: now.UTC(),
		},
	}, nil
}

// SetStatus moves the request to status. Denied records reason; every other
// target clears any denial reason. InformationRequested is only reachable
// through IssueExigencia.
func SetStatus(r entities.BenefitRequest, status entities.RequestStatus, reason string) (entities.RequestPatch, error) {
	if !status.Valid() {
		return entities.RequestPatch{}, ValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	if status == entities.RequestStatusInformationRequested {
		return entities.RequestPatch{}, ValidationError("status", "use issue exigencia to request information")
	}
	if r.Status.Terminal() {
		return entities.RequestPatch{}, InvalidStateError(fmt.Sprintf("request is %s", r.Status))
	}

	patch := entities.RequestPatch{
		Status:    status,
		Exigencia: copyExigencia(r.Exigencia),
	}
	if status == entities.RequestStatusDenied {
		patch.DenialReason = strings.TrimSpace(reason)
	}
	return patch, nil
}

// AuthorizeApplicant fails unless cpf owns the request.
func AuthorizeApplicant(r entities.BenefitRequest, cpf string) error {
	if cpf == "" || r.Applicant.CPF != cpf {
		return AuthorizationError("request belongs to another applicant")
	}
	return nil
}

// CheckCanRespond runs the state checks of RespondToExigencia without
// building the patch, so callers can reject before uploading documents.
func CheckCanRespond(r entities.BenefitRequest, callerCPF string) error {
	if err := AuthorizeApplicant(r, callerCPF); err != nil {
		return err
	}
	if r.Exigencia == nil {
		return &Error{Kind: ErrNoActiveExigencia, Field: "exigencia"}
	}
	if r.Exigencia.Response != nil {
		return &Error{Kind: ErrAlreadyResponded, Field: "exigencia.response"}
	}
	if r.Status != entities.RequestStatusInformationRequested {
		return InvalidStateError(fmt.Sprintf("request is %s", r.Status))
	}
	return nil
}

// ValidateResponseContent rejects an empty reply: no text and no documents.
func ValidateResponseContent(text string, documentCount int) error {
	if strings.TrimSpace(text) == "" && documentCount == 0 {
		return ValidationError("text", "resposta vazia: informe um texto ou anexe ao menos um documento")
	}
	return nil
}

// RespondToExigencia records the citizen reply and reopens review.
func RespondToExigencia(r entities.BenefitRequest, callerCPF, text string, documents []entities.DocumentRef, now time.Time) (entities.RequestPatch, error) {
	if err := CheckCanRespond(r, callerCPF); err != nil {
		return entities.RequestPatch{}, err
	}
	if err := ValidateResponseContent(text, len(documents)); err != nil {
		return entities.RequestPatch{}, err
	}

	docs := make([]entities.DocumentRef, len(documents))
	copy(docs, documents)

	exigencia := copyExigencia(r.Exigencia)
	exigencia.Response = &entities.ExigenciaResponse{
		Text:        strings.TrimSpace(text),
		Documents:   docs,
		RespondedAt: now.UTC(),
	}
	return entities.RequestPatch{
		Status:    entities.RequestStatusUnderReview,
		Exigencia: exigencia,
	}, nil
}

// IsActive reports whether the request still awaits a decision.
func IsActive(r entities.BenefitRequest) bool {
	switch r.Status {
	case entities.RequestStatusUnderReview, entities.RequestStatusInformationRequested, entities.RequestStatusInPersonRequired:
		return true
	}
	return false
}

// IsFinished reports whether the request reached a terminal decision.
func IsFinished(r entities.BenefitRequest) bool {
	return r.Status.Terminal()
}

// ResponseDeadline is informational; nothing happens when it passes.
func ResponseDeadline(e entities.ExigenciaRecord) time.Time {
	return e.CreatedAt.Add(ResponseWindow)
}

// ActiveStatuses lists the statuses IsActive accepts.
func ActiveStatuses() []entities.RequestStatus {
	return []entities.RequestStatus{
		entities.RequestStatusUnderReview,
		entities.RequestStatusInformationRequested,
		entities.RequestStatusInPersonRequired,
	}
}

func copyExigencia(e *entities.ExigenciaRecord) *entities.ExigenciaRecord {
	if e == nil {
		return nil
	}
	out := *e
	if e.Response != nil {
		resp := *e.Response
		resp.Documents = append([]entities.DocumentRef(nil), e.Response.Documents...)
		out.Response = &resp
	}
	return &out
}
