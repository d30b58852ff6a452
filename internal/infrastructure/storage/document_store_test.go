package storage

import (
	"context"
	"testing"

	"beneficios_inss/internal/domain/documents"
	"beneficios_inss/internal/domain/entities"
)

func TestInlineDocumentStore_Store(t *testing.T) {
	s := NewInlineDocumentStore()
	ref, err := s.Store(context.Background(), "requests/r1/0-rg.png", entities.DocumentUpload{
		Name:        "rg.png",
		ContentType: "image/png; charset=binary",
		Content:     []byte("binary-ish"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.Embedded() || ref.Name != "rg.png" || ref.ContentType != "image/png" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
	ct, raw, err := documents.DecodeDataURL(ref.Location)
	if err != nil || ct != "image/png" || string(raw) != "binary-ish" {
		t.Fatalf("unexpected payload %q %q %v", ct, raw, err)
	}
	if err := s.Remove(context.Background(), ref); err != nil {
		t.Fatalf("remove should be a no-op, got %v", err)
	}
}

func TestGCSDocumentStore_ObjectURL(t *testing.T) {
	s := &GCSDocumentStore{bucketName: "inss-docs"}

	loc := s.objectURL("requests/r1/0-laudo médico.pdf")
	if loc != "https://storage.googleapis.com/inss-docs/requests/r1/0-laudo%20m%C3%A9dico.pdf" {
		t.Fatalf("unexpected url %q", loc)
	}
	key, ok := s.objectKey(loc)
	if !ok || key != "requests/r1/0-laudo médico.pdf" {
		t.Fatalf("unexpected key %q %v", key, ok)
	}
	if _, ok := s.objectKey("https://storage.googleapis.com/other/requests/r1/x.pdf"); ok {
		t.Fatalf("expected foreign bucket to be rejected")
	}
}
