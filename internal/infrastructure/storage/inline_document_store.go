package storage

import (
	"context"

	"beneficios_inss/internal/domain/documents"
	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/usecase/interfaces"
)

// InlineDocumentStore embeds each file in its reference as a data URL, so the
// request record carries its own documents. Suited to small files only.
type InlineDocumentStore struct{}

var _ interfaces.IDocumentStore = (*InlineDocumentStore)(nil)

func NewInlineDocumentStore() *InlineDocumentStore {
	return &InlineDocumentStore{}
}

func (s *InlineDocumentStore) Store(_ context.Context, _ string, upload entities.DocumentUpload) (entities.DocumentRef, error) {
	return entities.DocumentRef{
		Name:        upload.Name,
		ContentType: documents.NormalizeType(upload.ContentType),
		Location:    documents.EncodeDataURL(upload),
	}, nil
}

// Remove is a no-op: nothing lives outside the reference.
func (s *InlineDocumentStore) Remove(context.Context, entities.DocumentRef) error {
	return nil
}
