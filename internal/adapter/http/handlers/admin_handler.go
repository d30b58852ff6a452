package handlers

import (
	"net/http"
	"strconv"

	request "beneficios_inss/internal/adapter/http/dto/request"
	response "beneficios_inss/internal/adapter/http/dto/response"
	"beneficios_inss/internal/usecase"
	"beneficios_inss/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStatus = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Unknown status", http.StatusBadRequest).WithField("status")

// AdminHandler is the caseworker dashboard.
type AdminHandler struct {
	usecase usecase.IBenefitRequestUseCase
}

func NewAdminHandler(uc usecase.IBenefitRequestUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// ListRequests godoc
// @Summary   List requests, active only unless all=true
// @Tags      admin
// @Produce   json
// @Param     all  query     bool  false  "Include deferido and indeferido"
// @Success   200  {array}   response.BenefitRequestResponse
// @Security  Bearer
// @Router    /admin/requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	includeFinished := false
	if raw := c.Query("all"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(c, errInvalidPayload.WithField("all"))
			return
		}
		includeFinished = v
	}

	list, err := h.usecase.ListForCaseworker(c.Request.Context(), includeFinished)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBenefitRequests(list))
}

// GetRequest godoc
// @Summary   Get any request
// @Tags      admin
// @Produce   json
// @Param     id   path      string  true  "Request id"
// @Success   200  {object}  response.BenefitRequestResponse
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/requests/{id} [get]
func (h *AdminHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBenefitRequest(r))
}

// IssueExigencia godoc
// @Summary   Ask the citizen for more information
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     id    path      string                          true  "Request id"
// @Param     body  body      request.IssueExigenciaRequest  true  "Exigência text"
// @Success   200   {object}  response.BenefitRequestResponse
// @Failure   409   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/requests/{id}/exigencia [post]
func (h *AdminHandler) IssueExigencia(c *gin.Context) {
	var payload request.IssueExigenciaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithField("text"))
		return
	}

	updated, err := h.usecase.IssueExigencia(c.Request.Context(), c.Param("id"), payload.Text)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBenefitRequest(updated))
}

// SetStatus godoc
// @Summary   Change the request status
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     id    path      string                    true  "Request id"
// @Param     body  body      request.SetStatusRequest  true  "Target status and optional denial reason"
// @Success   200   {object}  response.BenefitRequestResponse
// @Failure   409   {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/requests/{id}/status [patch]
func (h *AdminHandler) SetStatus(c *gin.Context) {
	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithField("status"))
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		writeError(c, errInvalidStatus)
		return
	}

	updated, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), status, payload.Reason)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBenefitRequest(updated))
}

// StatusOptions godoc
// @Summary   Statuses a caseworker can pick
// @Tags      admin
// @Produce   json
// @Success   200  {array}  response.StatusOption
// @Security  Bearer
// @Router    /admin/statuses [get]
func (h *AdminHandler) StatusOptions(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusOptions())
}
