// Package documents validates citizen uploads before they reach a document store.
package documents

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"strings"

	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/domain/lifecycle"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const (
	DefaultMaxBytes int64 = 5 << 20
	MaxPerCall            = 10
)

// DefaultAllowedTypes are accepted when no allow list is configured.
var DefaultAllowedTypes = []string{"application/pdf", "image/jpeg", "image/png"}

// Validator enforces the size ceiling and the content type allow list.
type Validator struct {
	maxBytes int64
	allowed  map[string]struct{}
}

func NewValidator(maxBytes int64, allowedTypes []string) *Validator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedTypes
	}
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		if t = NormalizeType(t); t != "" {
			allowed[t] = struct{}{}
		}
	}
	return &Validator{maxBytes: maxBytes, allowed: allowed}
}

// MaxBytes is the configured ceiling.
func (v *Validator) MaxBytes() int64 {
	return v.maxBytes
}

// ValidateAll checks every upload and returns the first failure. Nothing is
// stored by the caller unless the whole batch passes.
func (v *Validator) ValidateAll(uploads []entities.DocumentUpload) error {
	if len(uploads) > MaxPerCall {
		return lifecycle.ValidationError("documents", fmt.Sprintf("at most %d documents per submission", MaxPerCall))
	}
	for i, u := range uploads {
		if err := v.Validate(u); err != nil {
			var le *lifecycle.Error
			if errors.As(err, &le) {
				le.Field = fmt.Sprintf("documents[%d]", i)
			}
			return err
		}
	}
	return nil
}

// Validate checks a single upload.
func (v *Validator) Validate(u entities.DocumentUpload) error {
	if strings.TrimSpace(u.Name) == "" {
		return lifecycle.ValidationError("documents", "file name is required")
	}
	if u.Size() == 0 {
		return lifecycle.ValidationError("documents", fmt.Sprintf("%s is empty", u.Name))
	}
	if u.Size() > v.maxBytes {
		return lifecycle.ValidationError("documents", fmt.Sprintf("%s exceeds %d bytes", u.Name, v.maxBytes))
	}
	ct := NormalizeType(u.ContentType)
	if _, ok := v.allowed[ct]; !ok {
		return lifecycle.ValidationError("documents", fmt.Sprintf("%s has unsupported type %q", u.Name, u.ContentType))
	}
	if !contentMatches(u.Content, ct) {
		return lifecycle.ValidationError("documents", fmt.Sprintf("%s content is not %s", u.Name, ct))
	}
	if ct == "application/pdf" {
		conf := model.NewDefaultConfiguration()
		conf.ValidationMode = model.ValidationRelaxed
		if err := api.Validate(bytes.NewReader(u.Content), conf); err != nil {
			return lifecycle.ValidationError("documents", fmt.Sprintf("%s is not a readable PDF", u.Name))
		}
	}
	return nil
}

// contentMatches sniffs content and accepts it when the detected type, or one
// of its parents, is the declared type.
func contentMatches(content []byte, declared string) bool {
	for m := mimetype.Detect(content); m != nil; m = m.Parent() {
		if m.Is(declared) {
			return true
		}
	}
	return false
}

// NormalizeType lower-cases ct and drops media type parameters.
func NormalizeType(ct string) string {
	ct = strings.TrimSpace(strings.ToLower(ct))
	if ct == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	return ct
}
