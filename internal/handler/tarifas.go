package handler

import (
	"errors"
	"net/http"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/apierror"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TarifasHandler struct{ svc service.TarifaService }

func NewTarifasHandler(svc service.TarifaService) *TarifasHandler {
	return &TarifasHandler{svc: svc}
}

// Definir godoc
// @Summary Definir tarifa vigente
// @Description Desativa a tarifa anterior do mesmo tipo e ativa a nova, atomicamente. Leituras ja registradas mantem a tarifa congelada.
// @Tags tarifas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.DefinirTarifaRequest true "Nova tarifa"
// @Success 201 {object} dto.TarifaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/tarifas [post]
func (h *TarifasHandler) Definir(c *gin.Context) {
	var req dto.DefinirTarifaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.DefinirTarifa(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObterAtiva godoc
// @Summary Consultar tarifa vigente
// @Tags tarifas
// @Produce json
// @Security BearerAuth
// @Param condominio_id query string true "UUID do condominio"
// @Param tipo query string true "agua | energia | gas"
// @Success 200 {object} dto.TarifaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/tarifas/ativa [get]
func (h *TarifasHandler) ObterAtiva(c *gin.Context) {
	condominioID, tipo, ok := tarifaQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterTarifaAtiva(c.Request.Context(), condominioID, tipo)
	if err != nil {
		if errors.Is(err, service.ErrTarifaNaoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar tarifa"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historico godoc
// @Summary Historico de tarifas
// @Tags tarifas
// @Produce json
// @Security BearerAuth
// @Param condominio_id query string true "UUID do condominio"
// @Param tipo query string true "agua | energia | gas"
// @Success 200 {array} dto.TarifaResponse
// @Router /v1/tarifas/historico [get]
func (h *TarifasHandler) Historico(c *gin.Context) {
	condominioID, tipo, ok := tarifaQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarHistorico(c.Request.Context(), condominioID, tipo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar historico"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func tarifaQuery(c *gin.Context) (uuid.UUID, string, bool) {
	condominioID, err := uuid.Parse(c.Query("condominio_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("condominio_id invalido"))
		return uuid.Nil, "", false
	}
	tipo := c.Query("tipo")
	switch tipo {
	case "agua", "energia", "gas":
	default:
		c.JSON(http.StatusBadRequest, apierror.New("tipo deve ser agua, energia ou gas"))
		return uuid.Nil, "", false
	}
	return condominioID, tipo, true
}
