package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("k", 32))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.StoreBackend != StoreDynamoDB || cfg.DocumentStore != DocumentsInline {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.MaxDocumentBytes != 256<<10 || len(cfg.AllowedDocumentTypes) != 3 {
		t.Fatalf("unexpected document defaults: %+v", cfg)
	}
	if cfg.JWTAccessTTL != 8*time.Hour || cfg.RecommendationCacheTTL != 24*time.Hour {
		t.Fatalf("unexpected ttl defaults: %+v", cfg)
	}
	if cfg.RecommendationsEnabled() {
		t.Fatalf("recommendations need a project id")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("k", 40))
	t.Setenv("STORE_BACKEND", "firestore")
	t.Setenv("GCP_PROJECT_ID", "inss-dev")
	t.Setenv("DOCUMENT_STORE", "gcs")
	t.Setenv("DOCUMENTS_BUCKET", "inss-docs")
	t.Setenv("ALLOWED_DOCUMENT_TYPES", "application/pdf")
	t.Setenv("RATE_LIMIT_RPS", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DocumentsBucket != "inss-docs" || len(cfg.AllowedDocumentTypes) != 1 || cfg.RateLimitRPS != 0.5 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.MaxDocumentBytes != 5<<20 || cfg.InlineRecordBudget() != 0 {
		t.Fatalf("gcs keeps files outside the record: max=%d budget=%d", cfg.MaxDocumentBytes, cfg.InlineRecordBudget())
	}
	if !cfg.RecommendationsEnabled() {
		t.Fatalf("expected recommendations enabled")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		StoreBackend:     StoreDynamoDB,
		DocumentStore:    DocumentsInline,
		JWTSecret:        strings.Repeat("k", 32),
		MaxDocumentBytes: 1,
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "short secret", mutate: func(c *Config) { c.JWTSecret = "short" }, want: "JWT_SECRET"},
		{name: "unknown store", mutate: func(c *Config) { c.StoreBackend = "mongo" }, want: "STORE_BACKEND"},
		{name: "firestore without project", mutate: func(c *Config) { c.StoreBackend = StoreFirestore }, want: "GCP_PROJECT_ID"},
		{name: "gcs without bucket", mutate: func(c *Config) { c.DocumentStore = DocumentsGCS }, want: "DOCUMENTS_BUCKET"},
		{name: "unknown document store", mutate: func(c *Config) { c.DocumentStore = "s3" }, want: "DOCUMENT_STORE"},
		{name: "zero max bytes", mutate: func(c *Config) { c.MaxDocumentBytes = 0 }, want: "MAX_DOCUMENT_BYTES"},
		{name: "inline document larger than a dynamodb item", mutate: func(c *Config) { c.MaxDocumentBytes = 1 << 20 }, want: "MAX_DOCUMENT_BYTES"},
		{name: "inline document larger than a firestore document", mutate: func(c *Config) {
			c.StoreBackend = StoreFirestore
			c.GCPProjectID = "inss-dev"
			c.MaxDocumentBytes = 1 << 20
		}, want: "MAX_DOCUMENT_BYTES"},
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %s, got %v", tc.want, err)
			}
		})
	}
}

func TestInlineRecordBudget(t *testing.T) {
	c := Config{StoreBackend: StoreDynamoDB, DocumentStore: DocumentsInline, JWTSecret: strings.Repeat("k", 32), MaxDocumentBytes: 5 << 20}
	if err := c.Validate(); err == nil {
		t.Fatalf("a 5 MiB inline document cannot fit a dynamodb item")
	}
	if got := c.InlineRecordBudget(); got <= 0 || got >= DynamoDBItemLimit {
		t.Fatalf("unexpected dynamodb budget %d", got)
	}

	c.StoreBackend = StoreFirestore
	c.GCPProjectID = "inss-dev"
	c.MaxDocumentBytes = 600 << 10
	if err := c.Validate(); err != nil {
		t.Fatalf("600 KiB fits a firestore document once encoded: %v", err)
	}
	if got := c.InlineRecordBudget(); got <= DynamoDBItemLimit || got >= FirestoreDocumentLimit {
		t.Fatalf("unexpected firestore budget %d", got)
	}

	c.DocumentStore = DocumentsGCS
	c.DocumentsBucket = "inss-docs"
	c.MaxDocumentBytes = 20 << 20
	if err := c.Validate(); err != nil {
		t.Fatalf("gcs has no record budget: %v", err)
	}
}
