package handlers

import (
	"net/http"

	response "beneficios_inss/internal/adapter/http/dto/response"
	"beneficios_inss/internal/domain/catalog"
	"beneficios_inss/pkg"

	"github.com/gin-gonic/gin"
)

var errBenefitNotFound = pkg.NewDomainErrorSimple("BENEFIT_NOT_FOUND", "Benefit not found", http.StatusNotFound)

// CatalogHandler exposes the static benefit catalog. No authentication.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListBenefits godoc
// @Summary  Benefit catalog
// @Tags     benefits
// @Produce  json
// @Success  200  {array}  response.BenefitResponse
// @Router   /benefits [get]
func (h *CatalogHandler) ListBenefits(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBenefits(catalog.All()))
}

// GetBenefit godoc
// @Summary  One catalog entry
// @Tags     benefits
// @Produce  json
// @Param    id   path      string  true  "Benefit id"
// @Success  200  {object}  response.BenefitResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /benefits/{id} [get]
func (h *CatalogHandler) GetBenefit(c *gin.Context) {
	b, ok := catalog.Lookup(c.Param("id"))
	if !ok {
		writeError(c, errBenefitNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromBenefit(b))
}
