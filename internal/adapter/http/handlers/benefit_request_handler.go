package handlers

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	request "beneficios_inss/internal/adapter/http/dto/request"
	response "beneficios_inss/internal/adapter/http/dto/response"
	"beneficios_inss/internal/adapter/http/middleware"
	"beneficios_inss/internal/domain/documents"
	"beneficios_inss/internal/usecase"
	"beneficios_inss/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errPayloadTooLarge = pkg.NewDomainErrorSimple("PAYLOAD_TOO_LARGE", "Upload exceeds the allowed size", http.StatusRequestEntityTooLarge)

// BenefitRequestHandler serves the citizen side of the request lifecycle and
// the document viewer shared with caseworkers.
type BenefitRequestHandler struct {
	usecase usecase.IBenefitRequestUseCase
	maxBody int64
}

// NewBenefitRequestHandler caps multipart bodies at maxBody bytes; zero disables the cap.
func NewBenefitRequestHandler(uc usecase.IBenefitRequestUseCase, maxBody int64) *BenefitRequestHandler {
	return &BenefitRequestHandler{usecase: uc, maxBody: maxBody}
}

// Submit godoc
// @Summary   File a benefit request
// @Tags      requests
// @Accept    mpfd
// @Produce   json
// @Param     benefit_id   formData  string  true   "Catalog benefit id"
// @Param     description  formData  string  true   "Situation, at least 10 characters"
// @Param     documents[]  formData  file    false  "Supporting documents"
// @Success   201  {object}  response.BenefitRequestResponse
// @Failure   400  {object}  pkg.HTTPError
// @Failure   503  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /requests [post]
func (h *BenefitRequestHandler) Submit(c *gin.Context) {
	subject := middleware.Subject(c)
	if subject == "" {
		writeError(c, errMissingSubject)
		return
	}

	form, appErr := h.readForm(c)
	if appErr != nil {
		writeError(c, appErr)
		return
	}
	uploads, err := request.ReadUploads(request.DocumentFiles(form))
	if err != nil {
		writeError(c, errInvalidMultipart)
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), subject, usecase.SubmitRequestInput{
		BenefitID:   c.PostForm(request.FieldBenefitID),
		Description: c.PostForm(request.FieldDescription),
		Documents:   uploads,
	})
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromBenefitRequest(created))
}

// List godoc
// @Summary   List the caller's requests, newest first
// @Tags      requests
// @Produce   json
// @Success   200  {array}  response.BenefitRequestResponse
// @Security  Bearer
// @Router    /requests [get]
func (h *BenefitRequestHandler) List(c *gin.Context) {
	list, err := h.usecase.ListForApplicant(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBenefitRequests(list))
}

// Get godoc
// @Summary   Get one of the caller's requests
// @Tags      requests
// @Produce   json
// @Param     id   path      string  true  "Request id"
// @Success   200  {object}  response.BenefitRequestResponse
// @Failure   403  {object}  pkg.HTTPError
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /requests/{id} [get]
func (h *BenefitRequestHandler) Get(c *gin.Context) {
	r, err := h.usecase.GetForApplicant(c.Request.Context(), middleware.Subject(c), c.Param("id"))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBenefitRequest(r))
}

// RespondToExigencia godoc
// @Summary   Answer the pending exigência
// @Tags      requests
// @Accept    mpfd
// @Produce   json
// @Param     id           path      string  true   "Request id"
// @Param     text         formData  string  false  "Answer text"
// @Param     documents[]  formData  file    false  "Supplemental documents"
// @Success   200  {object}  response.BenefitRequestResponse
// @Failure   400  {object}  pkg.HTTPError
// @Failure   409  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /requests/{id}/exigencia/response [post]
func (h *BenefitRequestHandler) RespondToExigencia(c *gin.Context) {
	subject := middleware.Subject(c)
	if subject == "" {
		writeError(c, errMissingSubject)
		return
	}

	form, appErr := h.readForm(c)
	if appErr != nil {
		writeError(c, appErr)
		return
	}
	uploads, err := request.ReadUploads(request.DocumentFiles(form))
	if err != nil {
		writeError(c, errInvalidMultipart)
		return
	}

	updated, err := h.usecase.RespondToExigencia(c.Request.Context(), subject, c.Param("id"), c.PostForm(request.FieldText), uploads)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBenefitRequest(updated))
}

// GetDocument godoc
// @Summary      Open an attached document
// @Description  Inline documents are streamed back; stored objects redirect to their URL.
// @Tags         requests
// @Param        id      path   string  true   "Request id"
// @Param        index   path   int     true   "Document position"
// @Param        source  query  string  false  "request (default) or exigencia"
// @Success      200
// @Success      302
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id}/documents/{index} [get]
func (h *BenefitRequestHandler) GetDocument(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, errInvalidPayload.WithField("index"))
		return
	}

	caller := usecase.Caller{CPF: middleware.Subject(c), Caseworker: middleware.IsCaseworker(c)}
	if caller.Caseworker {
		caller.CPF = ""
	}

	ref, err := h.usecase.GetDocument(c.Request.Context(), caller, c.Param("id"), c.Query("source"), index)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}

	if !ref.Embedded() {
		c.Redirect(http.StatusFound, ref.Location)
		return
	}
	contentType, payload, err := documents.DecodeDataURL(ref.Location)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.Param("id")).Int("index", index).Msg("[request][handler] stored data url unreadable")
		writeError(c, mapRequestError(err))
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": ref.Name}))
	c.Data(http.StatusOK, contentType, payload)
}

func (h *BenefitRequestHandler) readForm(c *gin.Context) (*multipart.Form, *pkg.AppError) {
	if h.maxBody > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errPayloadTooLarge
		}
		return nil, errInvalidMultipart
	}
	return form, nil
}
