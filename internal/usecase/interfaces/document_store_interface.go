package interfaces

import (
	"context"

	"beneficios_inss/internal/domain/entities"
)

// IDocumentStore abstracts where uploaded files live (object storage or embedded payloads).
//
// Store receives an already validated upload and a key unique to the attachment point.
// Remove is only used to undo a partially stored batch.
type IDocumentStore interface {
	Store(ctx context.Context, key string, upload entities.DocumentUpload) (entities.DocumentRef, error)
	Remove(ctx context.Context, ref entities.DocumentRef) error
}
