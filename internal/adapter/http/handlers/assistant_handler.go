package handlers

import (
	"net/http"

	request "beneficios_inss/internal/adapter/http/dto/request"
	response "beneficios_inss/internal/adapter/http/dto/response"
	"beneficios_inss/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewAssistantHandler(uc usecase.IRecommendationUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

// Recommend godoc
// @Summary   Suggest benefits for a described situation
// @Tags      assistant
// @Accept    json
// @Produce   json
// @Param     body  body      request.RecommendationRequest  true  "Free text situation"
// @Success   200   {object}  response.RecommendationResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   503   {object}  pkg.HTTPError
// @Router    /assistant/recommendations [post]
func (h *AssistantHandler) Recommend(c *gin.Context) {
	var payload request.RecommendationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithField("description"))
		return
	}

	answer, err := h.usecase.Recommend(c.Request.Context(), payload.Description)
	if err != nil {
		writeError(c, mapAssistantError(err))
		return
	}
	c.JSON(http.StatusOK, response.RecommendationResponse{RecommendedBenefits: answer})
}
