package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"beneficios_inss/internal/domain/catalog"
	"beneficios_inss/internal/domain/cpf"
	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/domain/lifecycle"
	"beneficios_inss/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrRequestNotFound      = errors.New("benefit request not found")
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrApplicantNotFound    = errors.New("applicant profile not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrInvalidDocumentQuery = errors.New("invalid document source")
)

// maxProtocolAttempts bounds how many protocols Submit tries before giving up.
const maxProtocolAttempts = 5

// Lifecycle event names, used for logs and metrics.
const (
	EventSubmit         = "submit"
	EventIssueExigencia = "issue_exigencia"
	EventSetStatus      = "set_status"
	EventRespond        = "respond_exigencia"
)

// Document sources accepted by GetDocument.
const (
	DocumentSourceMain   = "request"
	DocumentSourceAnswer = "exigencia"
)

// SubmitRequestInput is what a citizen sends when filing a request.
type SubmitRequestInput struct {
	BenefitID   string
	Description string
	Documents   []entities.DocumentUpload
}

// Caller identifies who is reading a request: a citizen by CPF or a caseworker.
type Caller struct {
	CPF        string
	Caseworker bool
}

// IBenefitRequestUseCase exposes the benefit request lifecycle.
//
//   - citizen: Submit, ListForApplicant, GetForApplicant, RespondToExigencia
//   - caseworker: ListForCaseworker, GetByID, IssueExigencia, SetStatus
//   - both: GetDocument
type IBenefitRequestUseCase interface {
	Submit(ctx context.Context, applicantCPF string, in SubmitRequestInput) (entities.BenefitRequest, error)
	ListForApplicant(ctx context.Context, applicantCPF string) ([]entities.BenefitRequest, error)
	GetForApplicant(ctx context.Context, applicantCPF, id string) (entities.BenefitRequest, error)
	RespondToExigencia(ctx context.Context, applicantCPF, id, text string, uploads []entities.DocumentUpload) (entities.BenefitRequest, error)
	ListForCaseworker(ctx context.Context, includeFinished bool) ([]entities.BenefitRequest, error)
	GetByID(ctx context.Context, id string) (entities.BenefitRequest, error)
	IssueExigencia(ctx context.Context, id, text string) (entities.BenefitRequest, error)
	SetStatus(ctx context.Context, id string, status entities.RequestStatus, reason string) (entities.BenefitRequest, error)
	GetDocument(ctx context.Context, caller Caller, id, source string, index int) (entities.DocumentRef, error)
}

type BenefitRequestUseCase struct {
	repo     interfaces.IBenefitRequestRepository
	profiles interfaces.IUserProfileRepository
	uploader *DocumentUploader
	recorder interfaces.ITransitionRecorder
	now      func() time.Time
	newID    func() string
}

var _ IBenefitRequestUseCase = (*BenefitRequestUseCase)(nil)

func NewBenefitRequestUseCase(
	repo interfaces.IBenefitRequestRepository,
	profiles interfaces.IUserProfileRepository,
	uploader *DocumentUploader,
	recorder interfaces.ITransitionRecorder,
) *BenefitRequestUseCase {
	return &BenefitRequestUseCase{
		repo:     repo,
		profiles: profiles,
		uploader: uploader,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (u *BenefitRequestUseCase) Submit(ctx context.Context, applicantCPF string, in SubmitRequestInput) (entities.BenefitRequest, error) {
	logger := log.With().Str("applicant", cpf.Mask(applicantCPF)).Str("benefit_id", in.BenefitID).Logger()
	logger.Info().Int("documents", len(in.Documents)).Msg("[request][usecase] submit start")

	profile, err := u.profiles.GetByCPF(ctx, applicantCPF)
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventSubmit, lifecycle.StoreUnavailableError(err))
	}
	if profile.CPF == "" {
		return entities.BenefitRequest{}, u.reject(EventSubmit, ErrApplicantNotFound)
	}

	benefit, ok := catalog.Lookup(strings.TrimSpace(in.BenefitID))
	if !ok {
		return entities.BenefitRequest{}, u.reject(EventSubmit, lifecycle.ValidationError("benefit_id", "unknown benefit"))
	}

	req, err := lifecycle.NewRequest(lifecycle.NewRequestInput{
		ID:          u.newID(),
		Benefit:     benefit,
		Applicant:   entities.Applicant{FullName: profile.FullName, CPF: profile.CPF},
		Description: in.Description,
		Now:         u.now(),
	})
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventSubmit, err)
	}

	refs, err := u.uploader.Upload(ctx, "requests/"+req.ID, nil, in.Documents)
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventSubmit, err)
	}
	if req, err = lifecycle.AttachToRequest(req, refs); err != nil {
		u.uploader.Discard(ctx, refs)
		return entities.BenefitRequest{}, u.reject(EventSubmit, err)
	}

	created, err := u.create(ctx, req)
	if err != nil {
		logger.Error().Err(err).Str("request_id", req.ID).Msg("[request][usecase] create failed")
		u.uploader.Discard(ctx, refs)
		return entities.BenefitRequest{}, u.reject(EventSubmit, lifecycle.StoreUnavailableError(err))
	}

	logger.Info().Str("request_id", created.ID).Str("protocol", created.Protocol).Msg("[request][usecase] submit success")
	u.record(EventSubmit, created.Status)
	return created, nil
}

// create writes req, drawing a new protocol while the store reports it taken.
func (u *BenefitRequestUseCase) create(ctx context.Context, req entities.BenefitRequest) (entities.BenefitRequest, error) {
	for attempt := 1; ; attempt++ {
		created, err := u.repo.Create(ctx, req)
		if !errors.Is(err, interfaces.ErrProtocolTaken) || attempt == maxProtocolAttempts {
			return created, err
		}
		log.Warn().Str("request_id", req.ID).Str("protocol", req.Protocol).Int("attempt", attempt).Msg("[request][usecase] protocol taken, drawing another")
		req.Protocol = lifecycle.NewProtocol(u.now().Add(time.Duration(attempt) * time.Millisecond))
	}
}

func (u *BenefitRequestUseCase) ListForApplicant(ctx context.Context, applicantCPF string) ([]entities.BenefitRequest, error) {
	if applicantCPF == "" {
		return nil, lifecycle.AuthorizationError("missing applicant")
	}
	list, err := u.repo.List(ctx, entities.RequestFilter{ApplicantCPF: applicantCPF})
	if err != nil {
		return nil, lifecycle.StoreUnavailableError(err)
	}
	sortNewestFirst(list)
	return list, nil
}

func (u *BenefitRequestUseCase) GetForApplicant(ctx context.Context, applicantCPF, id string) (entities.BenefitRequest, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.BenefitRequest{}, err
	}
	if err := lifecycle.AuthorizeApplicant(r, applicantCPF); err != nil {
		return entities.BenefitRequest{}, err
	}
	return r, nil
}

func (u *BenefitRequestUseCase) RespondToExigencia(ctx context.Context, applicantCPF, id, text string, uploads []entities.DocumentUpload) (entities.BenefitRequest, error) {
	logger := log.With().Str("request_id", id).Str("applicant", cpf.Mask(applicantCPF)).Logger()
	logger.Info().Int("documents", len(uploads)).Msg("[request][usecase] respond start")

	r, err := u.load(ctx, id)
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventRespond, err)
	}
	if err := lifecycle.CheckCanRespond(r, applicantCPF); err != nil {
		logger.Info().Err(err).Msg("[request][usecase] respond rejected")
		return entities.BenefitRequest{}, u.reject(EventRespond, err)
	}
	if err := lifecycle.ValidateResponseContent(text, len(uploads)); err != nil {
		return entities.BenefitRequest{}, u.reject(EventRespond, err)
	}

	refs, err := u.uploader.Upload(ctx, "requests/"+r.ID+"/exigencia", r.Documents, uploads)
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventRespond, err)
	}

	patch, err := lifecycle.RespondToExigencia(r, applicantCPF, text, refs, u.now())
	if err != nil {
		u.uploader.Discard(ctx, refs)
		return entities.BenefitRequest{}, u.reject(EventRespond, err)
	}

	updated, err := u.write(ctx, r.ID, patch)
	if err != nil {
		u.uploader.Discard(ctx, refs)
		return entities.BenefitRequest{}, u.reject(EventRespond, err)
	}

	logger.Info().Str("status", string(updated.Status)).Msg("[request][usecase] respond success")
	u.record(EventRespond, updated.Status)
	return updated, nil
}

func (u *BenefitRequestUseCase) ListForCaseworker(ctx context.Context, includeFinished bool) ([]entities.BenefitRequest, error) {
	filter := entities.RequestFilter{}
	if !includeFinished {
		filter.Statuses = lifecycle.ActiveStatuses()
	}
	list, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, lifecycle.StoreUnavailableError(err)
	}
	sortNewestFirst(list)
	return list, nil
}

func (u *BenefitRequestUseCase) GetByID(ctx context.Context, id string) (entities.BenefitRequest, error) {
	return u.load(ctx, id)
}

func (u *BenefitRequestUseCase) IssueExigencia(ctx context.Context, id, text string) (entities.BenefitRequest, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventIssueExigencia, err)
	}
	patch, err := lifecycle.IssueExigencia(r, text, u.now())
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventIssueExigencia, err)
	}
	updated, err := u.write(ctx, r.ID, patch)
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventIssueExigencia, err)
	}

	log.Info().Str("request_id", updated.ID).Str("from", string(r.Status)).Msg("[request][usecase] exigencia issued")
	u.record(EventIssueExigencia, updated.Status)
	return updated, nil
}

func (u *BenefitRequestUseCase) SetStatus(ctx context.Context, id string, status entities.RequestStatus, reason string) (entities.BenefitRequest, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventSetStatus, err)
	}
	patch, err := lifecycle.SetStatus(r, status, reason)
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventSetStatus, err)
	}
	updated, err := u.write(ctx, r.ID, patch)
	if err != nil {
		return entities.BenefitRequest{}, u.reject(EventSetStatus, err)
	}

	log.Info().Str("request_id", updated.ID).Str("from", string(r.Status)).Str("to", string(updated.Status)).Msg("[request][usecase] status changed")
	u.record(EventSetStatus, updated.Status)
	return updated, nil
}

func (u *BenefitRequestUseCase) GetDocument(ctx context.Context, caller Caller, id, source string, index int) (entities.DocumentRef, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.DocumentRef{}, err
	}
	if !caller.Caseworker {
		if err := lifecycle.AuthorizeApplicant(r, caller.CPF); err != nil {
			return entities.DocumentRef{}, err
		}
	}

	var docs []entities.DocumentRef
	switch source {
	case "", DocumentSourceMain:
		docs = r.Documents
	case DocumentSourceAnswer:
		if r.Exigencia != nil && r.Exigencia.Response != nil {
			docs = r.Exigencia.Response.Documents
		}
	default:
		return entities.DocumentRef{}, ErrInvalidDocumentQuery
	}
	if index < 0 || index >= len(docs) {
		return entities.DocumentRef{}, ErrDocumentNotFound
	}
	return docs[index], nil
}

func (u *BenefitRequestUseCase) load(ctx context.Context, id string) (entities.BenefitRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BenefitRequest{}, ErrInvalidRequestID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Msg("[request][usecase] load failed")
		return entities.BenefitRequest{}, lifecycle.StoreUnavailableError(err)
	}
	if r.ID == "" {
		return entities.BenefitRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *BenefitRequestUseCase) write(ctx context.Context, id string, patch entities.RequestPatch) (entities.BenefitRequest, error) {
	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Msg("[request][usecase] update failed")
		return entities.BenefitRequest{}, lifecycle.StoreUnavailableError(err)
	}
	if updated.ID == "" {
		return entities.BenefitRequest{}, ErrRequestNotFound
	}
	return updated, nil
}

func (u *BenefitRequestUseCase) record(event string, to entities.RequestStatus) {
	if u.recorder != nil {
		u.recorder.RecordTransition(event, to)
	}
}

func (u *BenefitRequestUseCase) reject(event string, err error) error {
	if u.recorder != nil {
		u.recorder.RecordRejection(event, RejectionReason(err))
	}
	return err
}

// RejectionReason names the failure kind of err for metrics labels.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		return "validation"
	case errors.Is(err, lifecycle.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, lifecycle.ErrAlreadyResponded):
		return "already_responded"
	case errors.Is(err, lifecycle.ErrNoActiveExigencia):
		return "no_active_exigencia"
	case errors.Is(err, lifecycle.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, lifecycle.ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, ErrRequestNotFound), errors.Is(err, ErrApplicantNotFound):
		return "not_found"
	default:
		return "other"
	}
}

func sortNewestFirst(list []entities.BenefitRequest) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].RequestDate.After(list[j].RequestDate)
	})
}
