package interfaces

import (
	"context"
	"errors"

	"beneficios_inss/internal/domain/entities"
)

// ErrProtocolTaken is returned by Create when the protocol is already assigned.
var ErrProtocolTaken = errors.New("protocol already assigned")

// IBenefitRequestRepository abstracts the request store.
//
// The lifecycle only ever needs:
//   - create a request when the citizen submits it
//   - read one request / list requests by applicant or status
//   - partially update status, denial reason and exigência
//
// GetByID and Update return a zero BenefitRequest (empty ID) when the id is unknown.
// Create reserves the request protocol together with the request and fails with
// ErrProtocolTaken when another request already holds it; nothing is written then.
type IBenefitRequestRepository interface {
	Create(ctx context.Context, r entities.BenefitRequest) (entities.BenefitRequest, error)
	GetByID(ctx context.Context, id string) (entities.BenefitRequest, error)
	List(ctx context.Context, filter entities.RequestFilter) ([]entities.BenefitRequest, error)
	Update(ctx context.Context, id string, patch entities.RequestPatch) (entities.BenefitRequest, error)
}
