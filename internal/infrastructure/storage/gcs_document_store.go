package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/usecase/interfaces"

	"cloud.google.com/go/storage"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSDocumentStore writes each upload to its own object in a Cloud Storage
// bucket and references it by URL.
type GCSDocumentStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

var _ interfaces.IDocumentStore = (*GCSDocumentStore)(nil)

// ConnectGCS opens a Cloud Storage client with Application Default Credentials.
func ConnectGCS(ctx context.Context) (*storage.Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return client, nil
}

func NewGCSDocumentStore(client *storage.Client, bucketName string) *GCSDocumentStore {
	return &GCSDocumentStore{bucket: client.Bucket(bucketName), bucketName: bucketName}
}

// Store never overwrites: keys are unique per attachment point, so an existing
// object means a duplicate write and fails.
func (s *GCSDocumentStore) Store(ctx context.Context, key string, upload entities.DocumentUpload) (entities.DocumentRef, error) {
	obj := s.bucket.Object(key).If(storage.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	w.ContentType = upload.ContentType
	w.Metadata = map[string]string{"original_name": upload.Name}

	if _, err := w.Write(upload.Content); err != nil {
		_ = w.Close()
		return entities.DocumentRef{}, fmt.Errorf("write gcs object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusPreconditionFailed {
			log.Warn().Str("object", key).Msg("[document][gcs] object already exists")
		}
		return entities.DocumentRef{}, fmt.Errorf("finalize gcs object %s: %w", key, err)
	}

	return entities.DocumentRef{
		Name:        upload.Name,
		ContentType: upload.ContentType,
		Location:    s.objectURL(key),
	}, nil
}

func (s *GCSDocumentStore) Remove(ctx context.Context, ref entities.DocumentRef) error {
	key, ok := s.objectKey(ref.Location)
	if !ok {
		return fmt.Errorf("location %q is not in bucket %s", ref.Location, s.bucketName)
	}
	err := s.bucket.Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (s *GCSDocumentStore) objectURL(key string) string {
	return gcsPublicHost + "/" + s.bucketName + "/" + (&url.URL{Path: key}).EscapedPath()
}

func (s *GCSDocumentStore) objectKey(location string) (string, bool) {
	prefix := gcsPublicHost + "/" + s.bucketName + "/"
	escaped, ok := strings.CutPrefix(location, prefix)
	if !ok {
		return "", false
	}
	key, err := url.PathUnescape(escaped)
	if err != nil {
		return "", false
	}
	return key, true
}
