package entities

import "time"

// RequestStatus represents the lifecycle of a benefit request (pedido).
//
// Domain notes:
//   - Approved (deferido) and Denied (indeferido) are terminal.
//   - InformationRequested (exigência) is only entered by issuing an exigência.
type RequestStatus string

const (
	RequestStatusUnderReview          RequestStatus = "em_analise"
	RequestStatusInformationRequested RequestStatus = "exigencia"
	RequestStatusApproved             RequestStatus = "deferido"
	RequestStatusDenied               RequestStatus = "indeferido"
	RequestStatusInPersonRequired     RequestStatus = "compareca_presencialmente"
)

var requestStatusLabels = map[RequestStatus]string{
	RequestStatusUnderReview:          "Em análise",
	RequestStatusInformationRequested: "Exigência",
	RequestStatusApproved:             "Deferido",
	RequestStatusDenied:               "Indeferido",
	RequestStatusInPersonRequired:     "Compareça presencialmente",
}

// AllRequestStatuses lists every status in display order.
func AllRequestStatuses() []RequestStatus {
	return []RequestStatus{
		RequestStatusUnderReview,
		RequestStatusInformationRequested,
		RequestStatusApproved,
		RequestStatusDenied,
		RequestStatusInPersonRequired,
	}
}

// Valid reports whether s is a known status.
func (s RequestStatus) Valid() bool {
	_, ok := requestStatusLabels[s]
	return ok
}

// Label is the Portuguese text shown to citizens and caseworkers.
func (s RequestStatus) Label() string {
	if l, ok := requestStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Terminal reports whether no further caseworker transition is allowed.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusApproved || s == RequestStatusDenied
}

// Applicant is the citizen snapshot copied into a request at creation time.
// It is not kept in sync with the UserProfile afterwards.
type Applicant struct {
	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`
}

// ExigenciaResponse is the citizen's reply to an exigência. Write-once.
type ExigenciaResponse struct {
	Text        string        `json:"text"`
	Documents   []DocumentRef `json:"documents"`
	RespondedAt time.Time     `json:"responded_at"`
}

// ExigenciaRecord is a caseworker request for supplemental information.
type ExigenciaRecord struct {
	Text      string             `json:"text"`
	CreatedAt time.Time          `json:"created_at"`
	Response  *ExigenciaResponse `json:"response,omitempty"`
}

// BenefitRequest is the benefit request (pedido) persisted by the request store.
//
// Storage model:
//   - PK: id
//   - GSI1 (applicant_cpf-index): applicant_cpf
//
// ID, Protocol, BenefitID, BenefitTitle, RequestDate, Description, Documents and
// Applicant are written once at creation; only Status, DenialReason and
// Exigencia change afterwards. Documents is nil only while a new request waits
// for its attachments.
type BenefitRequest struct {
	ID           string           `json:"id"`
	Protocol     string           `json:"protocol"`
	BenefitID    string           `json:"benefit_id"`
	BenefitTitle string           `json:"benefit_title"`
	RequestDate  time.Time        `json:"request_date"`
	Status       RequestStatus    `json:"status"`
	Description  string           `json:"description"`
	Documents    []DocumentRef    `json:"documents"`
	Applicant    Applicant        `json:"applicant"`
	DenialReason string           `json:"denial_reason,omitempty"`
	Exigencia    *ExigenciaRecord `json:"exigencia,omitempty"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// RequestPatch is the partial update issued against the request store.
// Only the mutable lifecycle fields can be expressed here.
type RequestPatch struct {
	Status       RequestStatus
	DenialReason string
	Exigencia    *ExigenciaRecord
}

// Apply returns a copy of r with the patch fields written over it.
func (p RequestPatch) Apply(r BenefitRequest) BenefitRequest {
	r.Status = p.Status
	r.DenialReason = p.DenialReason
	r.Exigencia = p.Exigencia
	return r
}

// RequestFilter narrows a request listing.
type RequestFilter struct {
	ApplicantCPF string
	Statuses     []RequestStatus
}

// Matches reports whether r satisfies the filter.
func (f RequestFilter) Matches(r BenefitRequest) bool {
	if f.ApplicantCPF != "" && r.Applicant.CPF != f.ApplicantCPF {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if r.Status == s {
			return true
		}
	}
	return false
}
