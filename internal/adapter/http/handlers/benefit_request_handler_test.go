package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"beneficios_inss/internal/adapter/http/handlers/mocks"
	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/domain/lifecycle"
	"beneficios_inss/internal/usecase"
	"beneficios_inss/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleRequest() entities.BenefitRequest {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return entities.BenefitRequest{
		ID:           "req-1",
		Protocol:     "2025123456",
		BenefitID:    "auxilio-doenca",
		BenefitTitle: "Auxílio-Doença",
		RequestDate:  now,
		Status:       entities.RequestStatusUnderReview,
		Description:  "Afastado do trabalho desde janeiro",
		Documents:    []entities.DocumentRef{},
		Applicant:    entities.Applicant{FullName: "Maria Silva", CPF: citizenCPF},
		UpdatedAt:    now,
	}
}

func newCitizenRequestRouter(t *testing.T, maxBody int64) (*gin.Engine, *mocks.MockIBenefitRequestUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBenefitRequestUseCase(ctrl)
	h := NewBenefitRequestHandler(uc, maxBody)

	r := gin.New()
	g := r.Group("/v1/requests", asCitizen(citizenCPF))
	g.POST("", h.Submit)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("/:id/exigencia/response", h.RespondToExigencia)
	g.GET("/:id/documents/:index", h.GetDocument)
	return r, uc
}

func TestBenefitRequestHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("json body rejected", func(t *testing.T) {
		r, _ := newCitizenRequestRouter(t, 0)
		w := doJSON(r, http.MethodPost, "/v1/requests", `{"benefit_id":"auxilio-doenca"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error carries field", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		uc.EXPECT().Submit(gomock.Any(), citizenCPF, gomock.Any()).Return(entities.BenefitRequest{}, lifecycle.ValidationError("description", "must have at least 10 characters"))

		body, ct := multipartBody(t, map[string]string{"benefit_id": "auxilio-doenca", "description": "curta"})
		w := doMultipart(r, "/v1/requests", body, ct)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var res pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.Code != "VALIDATION_ERROR" || res.Field != "description" {
			t.Fatalf("unexpected error body: %+v", res)
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		uc.EXPECT().Submit(gomock.Any(), citizenCPF, gomock.Any()).Return(entities.BenefitRequest{}, lifecycle.StoreUnavailableError(errors.New("bucket down")))

		body, ct := multipartBody(t, map[string]string{"benefit_id": "auxilio-doenca", "description": "Afastado do trabalho"})
		w := doMultipart(r, "/v1/requests", body, ct)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("body too large", func(t *testing.T) {
		r, _ := newCitizenRequestRouter(t, 64)
		body, ct := multipartBody(t, map[string]string{"benefit_id": "auxilio-doenca"},
			formFile{name: "big.png", contentType: "image/png", content: bytes.Repeat([]byte("x"), 4096)})
		w := doMultipart(r, "/v1/requests", body, ct)
		if w.Code != http.StatusRequestEntityTooLarge && w.Code != http.StatusBadRequest {
			t.Fatalf("expected 413 or 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		uc.EXPECT().Submit(gomock.Any(), citizenCPF, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.SubmitRequestInput) (entities.BenefitRequest, error) {
				if in.BenefitID != "auxilio-doenca" || in.Description != "Afastado do trabalho desde janeiro" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if len(in.Documents) != 2 || in.Documents[0].Name != "atestado.pdf" || in.Documents[1].ContentType != "image/png" {
					t.Fatalf("unexpected documents: %+v", in.Documents)
				}
				out := sampleRequest()
				out.Documents = []entities.DocumentRef{
					{Name: "atestado.pdf", ContentType: "application/pdf", Location: "data:application/pdf;base64,JVBERg=="},
					{Name: "rg.png", ContentType: "image/png", Location: "data:image/png;base64,AAAA"},
				}
				return out, nil
			})

		body, ct := multipartBody(t,
			map[string]string{"benefit_id": "auxilio-doenca", "description": "Afastado do trabalho desde janeiro"},
			formFile{name: "atestado.pdf", contentType: "application/pdf", content: []byte("%PDF-1.4")},
			formFile{name: "rg.png", contentType: "image/png", content: []byte("png")},
		)
		w := doMultipart(r, "/v1/requests", body, ct)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res struct {
			Status      string `json:"status"`
			StatusLabel string `json:"status_label"`
			Documents   []struct {
				ViewPath string `json:"view_path"`
			} `json:"documents"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.Status != "em_analise" || res.StatusLabel != "Em análise" || len(res.Documents) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if bytes.Contains(w.Body.Bytes(), []byte("base64")) {
			t.Fatalf("stored locations must not leak into the response")
		}
	})
}

func TestBenefitRequestHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		uc.EXPECT().ListForApplicant(gomock.Any(), citizenCPF).Return([]entities.BenefitRequest{sampleRequest()}, nil)

		w := doJSON(r, http.MethodGet, "/v1/requests", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if len(res) != 1 || res[0]["is_active"] != true {
			t.Fatalf("unexpected list: %s", w.Body.String())
		}
	})

	t.Run("get other applicant", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		uc.EXPECT().GetForApplicant(gomock.Any(), citizenCPF, "req-9").Return(entities.BenefitRequest{}, lifecycle.AuthorizationError("not the applicant"))

		w := doJSON(r, http.MethodGet, "/v1/requests/req-9", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("get unknown", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		uc.EXPECT().GetForApplicant(gomock.Any(), citizenCPF, "nope").Return(entities.BenefitRequest{}, usecase.ErrRequestNotFound)

		w := doJSON(r, http.MethodGet, "/v1/requests/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBenefitRequestHandler_RespondToExigencia(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"already responded", &lifecycle.Error{Kind: lifecycle.ErrAlreadyResponded, Field: "exigencia"}, http.StatusConflict},
		{"no active exigencia", &lifecycle.Error{Kind: lifecycle.ErrNoActiveExigencia, Field: "exigencia"}, http.StatusConflict},
		{"status moved on", lifecycle.InvalidStateError("request is not awaiting an answer"), http.StatusConflict},
		{"empty answer", lifecycle.ValidationError("text", "text or documents required"), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newCitizenRequestRouter(t, 0)
			uc.EXPECT().RespondToExigencia(gomock.Any(), citizenCPF, "req-1", "Segue o laudo", gomock.Any()).Return(entities.BenefitRequest{}, tc.err)

			body, ct := multipartBody(t, map[string]string{"text": "Segue o laudo"})
			w := doMultipart(r, "/v1/requests/req-1/exigencia/response", body, ct)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		out := sampleRequest()
		out.Exigencia = &entities.ExigenciaRecord{
			Text:      "Envie o laudo",
			CreatedAt: out.RequestDate,
			Response:  &entities.ExigenciaResponse{Text: "Segue o laudo", Documents: []entities.DocumentRef{}, RespondedAt: out.RequestDate},
		}
		uc.EXPECT().RespondToExigencia(gomock.Any(), citizenCPF, "req-1", "Segue o laudo", gomock.Len(1)).Return(out, nil)

		body, ct := multipartBody(t, map[string]string{"text": "Segue o laudo"},
			formFile{name: "laudo.pdf", contentType: "application/pdf", content: []byte("%PDF-1.4")})
		w := doMultipart(r, "/v1/requests/req-1/exigencia/response", body, ct)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBenefitRequestHandler_GetDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("inline document is decoded", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		uc.EXPECT().GetDocument(gomock.Any(), usecase.Caller{CPF: citizenCPF}, "req-1", "", 0).
			Return(entities.DocumentRef{Name: "rg.png", ContentType: "image/png", Location: "data:image/png;base64,aGVsbG8="}, nil)

		w := doJSON(r, http.MethodGet, "/v1/requests/req-1/documents/0", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "hello" || w.Header().Get("Content-Type") != "image/png" {
			t.Fatalf("unexpected payload %q (%s)", w.Body.String(), w.Header().Get("Content-Type"))
		}
	})

	t.Run("stored object redirects", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		uc.EXPECT().GetDocument(gomock.Any(), gomock.Any(), "req-1", "exigencia", 1).
			Return(entities.DocumentRef{Name: "laudo.pdf", Location: "https://storage.googleapis.com/docs/requests/req-1/exigencia/1-laudo.pdf"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/requests/req-1/documents/1?source=exigencia", "")
		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if w.Header().Get("Location") != "https://storage.googleapis.com/docs/requests/req-1/exigencia/1-laudo.pdf" {
			t.Fatalf("unexpected location %q", w.Header().Get("Location"))
		}
	})

	t.Run("bad index", func(t *testing.T) {
		r, _ := newCitizenRequestRouter(t, 0)
		w := doJSON(r, http.MethodGet, "/v1/requests/req-1/documents/first", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		r, uc := newCitizenRequestRouter(t, 0)
		uc.EXPECT().GetDocument(gomock.Any(), gomock.Any(), "req-1", "", 5).Return(entities.DocumentRef{}, usecase.ErrDocumentNotFound)

		w := doJSON(r, http.MethodGet, "/v1/requests/req-1/documents/5", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("caseworker reads any request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBenefitRequestUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/requests/:id/documents/:index", asCaseworker(), NewBenefitRequestHandler(uc, 0).GetDocument)

		uc.EXPECT().GetDocument(gomock.Any(), usecase.Caller{Caseworker: true}, "req-1", "", 0).
			Return(entities.DocumentRef{Location: "https://example.com/doc"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/requests/req-1/documents/0", "")
		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
	})
}
