// Package config loads service settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

const (
	StoreDynamoDB  = "dynamodb"
	StoreFirestore = "firestore"

	DocumentsInline = "inline"
	DocumentsGCS    = "gcs"
)

// Record size limits of the request stores. Inline documents live inside the
// request record, so they share it with every other field.
const (
	DynamoDBItemLimit      int64 = 400 << 10
	FirestoreDocumentLimit int64 = 1 << 20
	recordOverhead         int64 = 32 << 10

	// Default per-document ceilings when MAX_DOCUMENT_BYTES is unset.
	defaultInlineMaxBytes int64 = 256 << 10
	defaultGCSMaxBytes    int64 = 5 << 20
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"dynamodb"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
	RequestsTable      string `env:"REQUESTS_TABLE" envDefault:"benefit_requests"`
	UsersTable         string `env:"USERS_TABLE" envDefault:"users"`
	ProtocolsTable     string `env:"PROTOCOLS_TABLE" envDefault:"benefit_protocols"`

	GCPProjectID string `env:"GCP_PROJECT_ID"`

	DocumentStore        string   `env:"DOCUMENT_STORE" envDefault:"inline"`
	DocumentsBucket      string   `env:"DOCUMENTS_BUCKET"`
	MaxDocumentBytes     int64    `env:"MAX_DOCUMENT_BYTES"`
	AllowedDocumentTypes []string `env:"ALLOWED_DOCUMENT_TYPES" envSeparator:"," envDefault:"application/pdf,image/jpeg,image/png"`

	VertexAIRegion         string        `env:"VERTEX_AI_REGION" envDefault:"us-central1"`
	VertexAIModel          string        `env:"VERTEX_AI_MODEL" envDefault:"gemini-2.0-flash"`
	RedisURL               string        `env:"REDIS_URL"`
	RecommendationCacheTTL time.Duration `env:"RECOMMENDATION_CACHE_TTL" envDefault:"24h"`

	JWTSecret              string        `env:"JWT_SECRET"`
	JWTAccessTTL           time.Duration `env:"JWT_ACCESS_TTL" envDefault:"8h"`
	CaseworkerEmail        string        `env:"CASEWORKER_EMAIL"`
	CaseworkerPasswordHash string        `env:"CASEWORKER_PASSWORD_HASH"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load parses the environment and checks the combinations that cannot work.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxDocumentBytes == 0 {
		cfg.MaxDocumentBytes = defaultGCSMaxBytes
		if strings.EqualFold(cfg.DocumentStore, DocumentsInline) {
			cfg.MaxDocumentBytes = defaultInlineMaxBytes
		}
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch strings.ToLower(c.StoreBackend) {
	case StoreDynamoDB:
	case StoreFirestore:
		if c.GCPProjectID == "" {
			return fmt.Errorf("GCP_PROJECT_ID is required when STORE_BACKEND=firestore")
		}
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}

	switch strings.ToLower(c.DocumentStore) {
	case DocumentsInline:
	case DocumentsGCS:
		if c.DocumentsBucket == "" {
			return fmt.Errorf("DOCUMENTS_BUCKET is required when DOCUMENT_STORE=gcs")
		}
	default:
		return fmt.Errorf("unsupported DOCUMENT_STORE %q", c.DocumentStore)
	}

	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must have at least 32 characters")
	}
	if c.MaxDocumentBytes <= 0 {
		return fmt.Errorf("MAX_DOCUMENT_BYTES must be positive")
	}
	if budget := c.InlineRecordBudget(); budget > 0 && base64Len(c.MaxDocumentBytes) > budget {
		return fmt.Errorf("MAX_DOCUMENT_BYTES=%d does not fit a %s record once base64 encoded (budget %d bytes); lower it or use DOCUMENT_STORE=gcs",
			c.MaxDocumentBytes, strings.ToLower(c.StoreBackend), budget)
	}
	return nil
}

// InlineRecordBudget is how many bytes of embedded documents one request
// record may carry. Zero when documents are stored outside the record.
func (c Config) InlineRecordBudget() int64 {
	if !strings.EqualFold(c.DocumentStore, DocumentsInline) {
		return 0
	}
	if strings.EqualFold(c.StoreBackend, StoreFirestore) {
		return FirestoreDocumentLimit - recordOverhead
	}
	return DynamoDBItemLimit - recordOverhead
}

func base64Len(n int64) int64 {
	return (n + 2) / 3 * 4
}

// RecommendationsEnabled reports whether the assistant has a model to call.
func (c Config) RecommendationsEnabled() bool {
	return c.GCPProjectID != "" && c.VertexAIModel != ""
}
