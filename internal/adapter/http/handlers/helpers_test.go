package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"beneficios_inss/internal/adapter/http/middleware"
	"beneficios_inss/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const citizenCPF = "123.456.789-00"

// asCitizen stands in for the auth middleware in handler tests.
func asCitizen(cpf string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeySubject, cpf)
		c.Set(middleware.ContextKeyAudience, auth.AudienceCitizen)
		c.Set(middleware.ContextKeyRoles, []string{auth.RoleCitizen})
		c.Next()
	}
}

func asCaseworker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeySubject, "servidor@inss.gov.br")
		c.Set(middleware.ContextKeyAudience, auth.AudienceCaseworker)
		c.Set(middleware.ContextKeyRoles, []string{auth.RoleCaseworker})
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type formFile struct {
	name        string
	contentType string
	content     []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="documents[]"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write(f.content)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func doMultipart(r http.Handler, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
