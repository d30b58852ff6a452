package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
)

// ConnectFirestore opens a Firestore client for projectID. Credentials come
// from Application Default Credentials; FIRESTORE_EMULATOR_HOST is honored
// by the client library.
func ConnectFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	log.Info().Str("project", projectID).Msg("[database][firestore] client ready")
	return client, nil
}
