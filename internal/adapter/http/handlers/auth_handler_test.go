package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"beneficios_inss/internal/adapter/http/handlers/mocks"
	"beneficios_inss/internal/domain/cpf"
	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/usecase"
	"beneficios_inss/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_CitizenLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/auth/citizen", NewAuthHandler(uc).CitizenLogin)
		return r, uc
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/auth/citizen", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing cpf", func(t *testing.T) {
		r, _ := newRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/auth/citizen", `{"fullName":"Maria Silva"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed cpf", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().CitizenLogin(gomock.Any(), "Maria Silva", "123").Return(usecase.Session{}, cpf.ErrInvalidFormat)

		w := doJSON(r, http.MethodPost, "/v1/auth/citizen", `{"fullName":"Maria Silva","cpf":"123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Field != "cpf" {
			t.Fatalf("expected field cpf, got %+v", body)
		}
	})

	t.Run("name mismatch", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().CitizenLogin(gomock.Any(), "Outra Pessoa", citizenCPF).Return(usecase.Session{}, usecase.ErrNameMismatch)

		w := doJSON(r, http.MethodPost, "/v1/auth/citizen", `{"fullName":"Outra Pessoa","cpf":"`+citizenCPF+`"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRouter(t)
		exp := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
		uc.EXPECT().CitizenLogin(gomock.Any(), "Maria Silva", citizenCPF).Return(usecase.Session{
			Token:     "tok",
			ExpiresAt: exp,
			Profile:   entities.UserProfile{CPF: citizenCPF, FullName: "Maria Silva"},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/citizen", `{"fullName":"Maria Silva","cpf":"`+citizenCPF+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Token     string `json:"token"`
			TokenType string `json:"token_type"`
			Profile   struct {
				CPF string `json:"cpf"`
			} `json:"profile"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Token != "tok" || body.TokenType != "Bearer" || body.Profile.CPF != citizenCPF {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_CaseworkerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/auth/caseworker", NewAuthHandler(uc).CaseworkerLogin)
		return r, uc
	}

	t.Run("wrong password", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().CaseworkerLogin(gomock.Any(), "servidor@inss.gov.br", "bad").Return(usecase.Session{}, usecase.ErrInvalidCredentials)

		w := doJSON(r, http.MethodPost, "/v1/auth/caseworker", `{"email":"servidor@inss.gov.br","password":"bad"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().CaseworkerLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.Session{}, usecase.ErrCaseworkerDisabled)

		w := doJSON(r, http.MethodPost, "/v1/auth/caseworker", `{"email":"a@b.com","password":"x"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().CaseworkerLogin(gomock.Any(), "servidor@inss.gov.br", "s3cret").Return(usecase.Session{Token: "tok", Email: "servidor@inss.gov.br"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/caseworker", `{"email":"servidor@inss.gov.br","password":"s3cret"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
