package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beneficios_inss/internal/adapter/http/handlers/mocks"
	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/infrastructure/auth"
	"beneficios_inss/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router   *gin.Engine
	jwt      *auth.JWTManager
	requests *mocks.MockIBenefitRequestUseCase
	profiles *mocks.MockIUserProfileUseCase
}

func newRouterFixture(t *testing.T) routerFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	jwt := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	f := routerFixture{
		jwt:      jwt,
		requests: mocks.NewMockIBenefitRequestUseCase(ctrl),
		profiles: mocks.NewMockIUserProfileUseCase(ctrl),
	}
	f.router = NewRouter(Dependencies{
		Auth:            mocks.NewMockIAuthUseCase(ctrl),
		Profiles:        f.profiles,
		Requests:        f.requests,
		Recommendations: mocks.NewMockIRecommendationUseCase(ctrl),
		Tokens:          jwt,
		Metrics:         metrics.New(),
		MaxUploadBody:   1 << 20,
		RateLimitRPS:    100,
		RateLimitBurst:  100,
	})
	return f
}

func (f routerFixture) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t)

	if w := f.get("/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}
	if w := f.get("/v1/benefits", ""); w.Code != http.StatusOK {
		t.Fatalf("benefits: expected 200, got %d", w.Code)
	}

	f.get("/v1/ping", "")
	w := f.get("/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "beneficios_http_request_duration_seconds") {
		t.Fatalf("expected http histogram in metrics output")
	}
}

func TestRouter_CitizenRoutesRequireCitizenToken(t *testing.T) {
	f := newRouterFixture(t)

	if w := f.get("/v1/requests", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	caseworker, _, _ := f.jwt.IssueCaseworkerToken("servidor@inss.gov.br")
	if w := f.get("/v1/requests", caseworker); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for caseworker on citizen listing, got %d", w.Code)
	}

	citizen, _, _ := f.jwt.IssueCitizenToken("123.456.789-00")
	f.requests.EXPECT().ListForApplicant(gomock.Any(), "123.456.789-00").Return([]entities.BenefitRequest{}, nil)
	if w := f.get("/v1/requests", citizen); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for citizen, got %d", w.Code)
	}

	f.profiles.EXPECT().GetProfile(gomock.Any(), "123.456.789-00").Return(entities.UserProfile{CPF: "123.456.789-00"}, nil)
	if w := f.get("/v1/me", citizen); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for /me, got %d", w.Code)
	}
}

func TestRouter_AdminRoutesRequireCaseworker(t *testing.T) {
	f := newRouterFixture(t)

	citizen, _, _ := f.jwt.IssueCitizenToken("123.456.789-00")
	if w := f.get("/v1/admin/requests", citizen); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for citizen, got %d", w.Code)
	}

	caseworker, _, _ := f.jwt.IssueCaseworkerToken("servidor@inss.gov.br")
	f.requests.EXPECT().ListForCaseworker(gomock.Any(), false).Return([]entities.BenefitRequest{}, nil)
	if w := f.get("/v1/admin/requests", caseworker); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for caseworker, got %d", w.Code)
	}
}

func TestRouter_DocumentViewerAcceptsBothAudiences(t *testing.T) {
	f := newRouterFixture(t)
	ref := entities.DocumentRef{Name: "rg.png", Location: "https://storage.googleapis.com/docs/rg.png"}

	caseworker, _, _ := f.jwt.IssueCaseworkerToken("servidor@inss.gov.br")
	f.requests.EXPECT().GetDocument(gomock.Any(), gomock.Any(), "req-1", "", 0).Return(ref, nil).Times(2)
	if w := f.get("/v1/requests/req-1/documents/0", caseworker); w.Code != http.StatusFound {
		t.Fatalf("expected 302 for caseworker, got %d", w.Code)
	}

	citizen, _, _ := f.jwt.IssueCitizenToken("123.456.789-00")
	if w := f.get("/v1/requests/req-1/documents/0", citizen); w.Code != http.StatusFound {
		t.Fatalf("expected 302 for citizen, got %d", w.Code)
	}
}
