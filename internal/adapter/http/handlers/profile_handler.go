package handlers

import (
	"net/http"

	request "beneficios_inss/internal/adapter/http/dto/request"
	response "beneficios_inss/internal/adapter/http/dto/response"
	"beneficios_inss/internal/adapter/http/middleware"
	"beneficios_inss/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	usecase usecase.IUserProfileUseCase
}

func NewProfileHandler(uc usecase.IUserProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// GetMe godoc
// @Summary   Current citizen profile
// @Tags      profile
// @Produce   json
// @Success   200  {object}  response.ProfileResponse
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	subject := middleware.Subject(c)
	if subject == "" {
		writeError(c, errMissingSubject)
		return
	}

	profile, err := h.usecase.GetProfile(c.Request.Context(), subject)
	if err != nil {
		writeError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(profile))
}

// UpdateMe godoc
// @Summary   Update contact fields
// @Tags      profile
// @Accept    json
// @Produce   json
// @Param     body  body      request.UpdateProfileRequest  true  "Fields to change"
// @Success   200   {object}  response.ProfileResponse
// @Failure   400   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /me [patch]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	subject := middleware.Subject(c)
	if subject == "" {
		writeError(c, errMissingSubject)
		return
	}

	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		writeError(c, errInvalidPayload)
		return
	}

	profile, err := h.usecase.UpdateProfile(c.Request.Context(), subject, payload.ToUpdate())
	if err != nil {
		writeError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(profile))
}
