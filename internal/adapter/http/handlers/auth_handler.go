package handlers

import (
	"net/http"

	request "beneficios_inss/internal/adapter/http/dto/request"
	response "beneficios_inss/internal/adapter/http/dto/response"
	"beneficios_inss/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler opens sessions for citizens and caseworkers.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// CitizenLogin godoc
// @Summary      Citizen login
// @Description  Finds the citizen by CPF or registers it on first access.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.CitizenLoginRequest  true  "Full name and CPF"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/citizen [post]
func (h *AuthHandler) CitizenLogin(c *gin.Context) {
	var payload request.CitizenLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	session, err := h.usecase.CitizenLogin(c.Request.Context(), payload.FullName, payload.CPF)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCitizenSession(session.Token, session.ExpiresAt, session.Profile))
}

// CaseworkerLogin godoc
// @Summary      Caseworker login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.CaseworkerLoginRequest  true  "Credentials"
// @Success      200   {object}  response.SessionResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/caseworker [post]
func (h *AuthHandler) CaseworkerLogin(c *gin.Context) {
	var payload request.CaseworkerLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	session, err := h.usecase.CaseworkerLogin(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCaseworkerSession(session.Token, session.ExpiresAt, session.Email))
}
