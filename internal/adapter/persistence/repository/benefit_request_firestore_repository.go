package repository

import (
	"context"
	"errors"
	"time"

	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	requestsCollection  = "requests"
	protocolsCollection = "protocols"
)

// BenefitRequestFirestoreRepository persists BenefitRequest documents in the
// "requests" collection, document id = request id. Protocols are reserved in
// the "protocols" collection, document id = protocol.
type BenefitRequestFirestoreRepository struct {
	client *firestore.Client
	now    func() time.Time
}

var _ interfaces.IBenefitRequestRepository = (*BenefitRequestFirestoreRepository)(nil)

func NewBenefitRequestFirestoreRepository(client *firestore.Client) *BenefitRequestFirestoreRepository {
	return &BenefitRequestFirestoreRepository{client: client, now: time.Now}
}

// Create reserves the protocol and writes the request in one transaction.
func (r *BenefitRequestFirestoreRepository) Create(ctx context.Context, req entities.BenefitRequest) (entities.BenefitRequest, error) {
	protocolRef := r.client.Collection(protocolsCollection).Doc(req.Protocol)
	requestRef := r.client.Collection(requestsCollection).Doc(req.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(protocolRef); err == nil {
			return interfaces.ErrProtocolTaken
		} else if status.Code(err) != codes.NotFound {
			return err
		}
		reservation := protocolItem{Protocol: req.Protocol, RequestID: req.ID, CreatedAt: formatTime(req.RequestDate)}
		if err := tx.Create(protocolRef, reservation); err != nil {
			return err
		}
		return tx.Create(requestRef, toRequestItem(req))
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrProtocolTaken) || status.Code(err) == codes.AlreadyExists {
			return entities.BenefitRequest{}, interfaces.ErrProtocolTaken
		}
		return entities.BenefitRequest{}, err
	}
	return req, nil
}

func (r *BenefitRequestFirestoreRepository) GetByID(ctx context.Context, id string) (entities.BenefitRequest, error) {
	snap, err := r.client.Collection(requestsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return entities.BenefitRequest{}, nil
		}
		return entities.BenefitRequest{}, err
	}
	var it requestItem
	if err := snap.DataTo(&it); err != nil {
		return entities.BenefitRequest{}, err
	}
	return fromRequestItem(it), nil
}

func (r *BenefitRequestFirestoreRepository) List(ctx context.Context, filter entities.RequestFilter) ([]entities.BenefitRequest, error) {
	q := r.client.Collection(requestsCollection).Query
	if filter.ApplicantCPF != "" {
		q = q.Where("applicant_cpf", "==", filter.ApplicantCPF)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where("status", "in", statuses)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	list := make([]entities.BenefitRequest, 0, len(snaps))
	for _, snap := range snaps {
		var it requestItem
		if err := snap.DataTo(&it); err != nil {
			return nil, err
		}
		list = append(list, fromRequestItem(it))
	}
	return list, nil
}

// Update writes only the lifecycle fields; last write wins.
func (r *BenefitRequestFirestoreRepository) Update(ctx context.Context, id string, patch entities.RequestPatch) (entities.BenefitRequest, error) {
	doc := r.client.Collection(requestsCollection).Doc(id)
	if _, err := doc.Update(ctx, patchUpdates(patch, formatTime(r.now()))); err != nil {
		if status.Code(err) == codes.NotFound {
			return entities.BenefitRequest{}, nil
		}
		return entities.BenefitRequest{}, err
	}
	return r.GetByID(ctx, id)
}

func patchUpdates(patch entities.RequestPatch, now string) []firestore.Update {
	updates := []firestore.Update{
		{Path: "status", Value: string(patch.Status)},
		{Path: "updated_at", Value: now},
	}
	if patch.DenialReason != "" {
		updates = append(updates, firestore.Update{Path: "denial_reason", Value: patch.DenialReason})
	} else {
		updates = append(updates, firestore.Update{Path: "denial_reason", Value: firestore.Delete})
	}
	if patch.Exigencia != nil {
		updates = append(updates, firestore.Update{Path: "exigencia", Value: toExigenciaItem(patch.Exigencia)})
	} else {
		updates = append(updates, firestore.Update{Path: "exigencia", Value: firestore.Delete})
	}
	return updates
}
