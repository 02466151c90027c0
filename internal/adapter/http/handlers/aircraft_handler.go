package handlers

import (
	"net/http"

	"aerocode/internal/adapter/http/dto/request"
	"aerocode/internal/adapter/http/dto/response"
	"aerocode/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AircraftHandler serves the aircraft aggregate and its report.
type AircraftHandler struct {
	usecase usecase.IProductionUseCase
}

func NewAircraftHandler(uc usecase.IProductionUseCase) *AircraftHandler {
	return &AircraftHandler{usecase: uc}
}

// ListAircraft godoc
// @Summary   List aircraft
// @Tags      aeronaves
// @Produce   json
// @Security  Bearer
// @Success   200  {array}   response.AircraftResponse
// @Router    /aeronaves [get]
func (h *AircraftHandler) ListAircraft(c *gin.Context) {
	list, err := h.usecase.ListAircraft(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAircraftList(list))
}

// GetAircraft godoc
// @Summary   Get aircraft by codigo
// @Tags      aeronaves
// @Produce   json
// @Security  Bearer
// @Param     codigo  path      string  true  "Aircraft code"
// @Success   200     {object}  response.AircraftResponse
// @Failure   404     {object}  pkg.HTTPError
// @Router    /aeronaves/{codigo} [get]
func (h *AircraftHandler) GetAircraft(c *gin.Context) {
	a, err := h.usecase.GetAircraft(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAircraft(a))
}

// CreateAircraft godoc
// @Summary   Register aircraft
// @Tags      aeronaves
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     aircraft  body      request.AircraftRequest  true  "Aircraft"
// @Success   201       {object}  response.AircraftResponse
// @Failure   400       {object}  pkg.HTTPError
// @Failure   403       {object}  pkg.HTTPError
// @Failure   409       {object}  pkg.HTTPError
// @Router    /aeronaves [post]
func (h *AircraftHandler) CreateAircraft(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.AircraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	a, err := h.usecase.RegisterAircraft(c.Request.Context(), actor, payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAircraft(a))
}

func (h *AircraftHandler) UpdateAircraft(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var payload request.AircraftUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	a, err := h.usecase.UpdateAircraft(c.Request.Context(), actor, c.Param("codigo"), payload.ToChanges())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAircraft(a))
}

func (h *AircraftHandler) DeleteAircraft(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteAircraft(c.Request.Context(), actor, c.Param("codigo")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success("Aeronave excluída"))
}

// GenerateReport godoc
// @Summary   Generate the aircraft report
// @Tags      aeronaves
// @Produce   json
// @Security  Bearer
// @Param     codigo  path      string  true  "Aircraft code"
// @Success   200     {object}  response.ReportResponse
// @Failure   404     {object}  pkg.HTTPError
// @Failure   502     {object}  pkg.HTTPError
// @Router    /aeronaves/{codigo}/relatorio [post]
func (h *AircraftHandler) GenerateReport(c *gin.Context) {
	code := c.Param("codigo")
	locator, err := h.usecase.GenerateReport(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ReportResponse{Success: true, Codigo: code, Locator: locator})
}
