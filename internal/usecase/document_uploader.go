package usecase

import (
	"context"
	"errors"
	"fmt"

	"beneficios_inss/internal/domain/documents"
	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/domain/lifecycle"
	"beneficios_inss/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentUploads bounds the store calls of a single batch.
const maxConcurrentUploads = 4

var ErrDocumentStoreNotConfigured = errors.New("document store not configured")

// DocumentUploader validates a batch of uploads and stores them.
// A batch is all-or-nothing: if any store call fails the already stored
// documents are removed and no reference is returned.
type DocumentUploader struct {
	validator    *documents.Validator
	store        interfaces.IDocumentStore
	inlineBudget int64
}

func NewDocumentUploader(validator *documents.Validator, store interfaces.IDocumentStore) *DocumentUploader {
	if validator == nil {
		validator = documents.NewValidator(0, nil)
	}
	return &DocumentUploader{validator: validator, store: store}
}

// WithInlineBudget caps the embedded payload bytes one request record may
// carry. Zero means no cap, for stores that keep files outside the record.
func (u *DocumentUploader) WithInlineBudget(bytes int64) *DocumentUploader {
	u.inlineBudget = bytes
	return u
}

// Upload stores every upload under keyPrefix/<index>-<name>. Refs keep the
// order of uploads. existing are the documents already embedded in the same
// record and count against the inline budget.
func (u *DocumentUploader) Upload(ctx context.Context, keyPrefix string, existing []entities.DocumentRef, uploads []entities.DocumentUpload) ([]entities.DocumentRef, error) {
	if len(uploads) == 0 {
		return []entities.DocumentRef{}, nil
	}
	if err := u.validator.ValidateAll(uploads); err != nil {
		return nil, err
	}
	if err := u.checkInlineBudget(existing, uploads); err != nil {
		return nil, err
	}
	if u.store == nil {
		return nil, ErrDocumentStoreNotConfigured
	}

	refs := make([]entities.DocumentRef, len(uploads))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUploads)
	for i, up := range uploads {
		g.Go(func() error {
			key := fmt.Sprintf("%s/%d-%s", keyPrefix, i, up.Name)
			ref, err := u.store.Store(gctx, key, up)
			if err != nil {
				return fmt.Errorf("store %s: %w", up.Name, err)
			}
			refs[i] = ref
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Str("prefix", keyPrefix).Int("count", len(uploads)).Msg("[document][usecase] batch upload failed, rolling back")
		u.rollback(context.WithoutCancel(ctx), refs)
		return nil, lifecycle.StoreUnavailableError(err)
	}

	log.Info().Str("prefix", keyPrefix).Int("count", len(refs)).Msg("[document][usecase] batch uploaded")
	return refs, nil
}

func (u *DocumentUploader) checkInlineBudget(existing []entities.DocumentRef, uploads []entities.DocumentUpload) error {
	if u.inlineBudget <= 0 {
		return nil
	}
	var total int64
	for _, ref := range existing {
		if ref.Embedded() {
			total += int64(len(ref.Location))
		}
	}
	for _, up := range uploads {
		total += documents.EncodedDataURLLen(up)
	}
	if total > u.inlineBudget {
		return lifecycle.ValidationError("documents", fmt.Sprintf("documents add up to more than the %d bytes a request can hold", u.inlineBudget))
	}
	return nil
}

// Discard removes refs that were stored but never written to a request.
func (u *DocumentUploader) Discard(ctx context.Context, refs []entities.DocumentRef) {
	u.rollback(context.WithoutCancel(ctx), refs)
}

func (u *DocumentUploader) rollback(ctx context.Context, refs []entities.DocumentRef) {
	if u.store == nil {
		return
	}
	for _, ref := range refs {
		if ref.Location == "" {
			continue
		}
		if err := u.store.Remove(ctx, ref); err != nil {
			log.Warn().Err(err).Str("document", ref.Name).Msg("[document][usecase] rollback remove failed")
		}
	}
}
