package handler

import (
	"errors"
	"net/http"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/apierror"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type LeiturasHandler struct{ svc service.LeituraService }

func NewLeiturasHandler(svc service.LeituraService) *LeiturasHandler {
	return &LeiturasHandler{svc: svc}
}

// leituraStatus maps the typed conflict/not-found errors onto HTTP codes.
func leituraStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrLeituraDuplicada), errors.Is(err, service.ErrLeituraFaturada):
		return http.StatusConflict
	case errors.Is(err, service.ErrTarifaNaoEncontrada):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// ── Agua ─────────────────────────────────────────────────────────────────────

// RegistrarAgua godoc
// @Summary Registrar leitura de agua
// @Description Consumo e valor sao calculados no servidor com a tarifa vigente, que fica congelada na leitura.
// @Tags leituras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegistrarLeituraRequest true "Leitura do periodo"
// @Success 201 {object} dto.LeituraResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/leituras/agua [post]
func (h *LeiturasHandler) RegistrarAgua(c *gin.Context) {
	var req dto.RegistrarLeituraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarAgua(c.Request.Context(), req)
	if err != nil {
		c.JSON(leituraStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AtualizarAgua godoc
// @Summary Corrigir leitura de agua ainda nao faturada
// @Tags leituras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID da leitura"
// @Param body body dto.AtualizarLeituraRequest true "Valores corrigidos"
// @Success 200 {object} dto.LeituraResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/leituras/agua/{id} [put]
func (h *LeiturasHandler) AtualizarAgua(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarLeituraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarAgua(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(leituraStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExcluirAgua godoc
// @Summary Excluir leitura de agua ainda nao faturada
// @Tags leituras
// @Security BearerAuth
// @Param id path string true "UUID da leitura"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/leituras/agua/{id} [delete]
func (h *LeiturasHandler) ExcluirAgua(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ExcluirAgua(c.Request.Context(), id); err != nil {
		c.JSON(leituraStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Energia ──────────────────────────────────────────────────────────────────

// RegistrarEnergia godoc
// @Summary Registrar leitura de energia
// @Description Uma unidade pode ter varios medidores (garagens); cada um gera sua propria leitura no periodo.
// @Tags leituras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegistrarLeituraRequest true "Leitura do periodo"
// @Success 201 {object} dto.LeituraResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/leituras/energia [post]
func (h *LeiturasHandler) RegistrarEnergia(c *gin.Context) {
	var req dto.RegistrarLeituraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarEnergia(c.Request.Context(), req)
	if err != nil {
		c.JSON(leituraStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AtualizarEnergia godoc
// @Summary Corrigir leitura de energia ainda nao faturada
// @Tags leituras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID da leitura"
// @Param body body dto.AtualizarLeituraRequest true "Valores corrigidos"
// @Success 200 {object} dto.LeituraResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/leituras/energia/{id} [put]
func (h *LeiturasHandler) AtualizarEnergia(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarLeituraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarEnergia(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(leituraStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExcluirEnergia godoc
// @Summary Excluir leitura de energia ainda nao faturada
// @Tags leituras
// @Security BearerAuth
// @Param id path string true "UUID da leitura"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/leituras/energia/{id} [delete]
func (h *LeiturasHandler) ExcluirEnergia(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ExcluirEnergia(c.Request.Context(), id); err != nil {
		c.JSON(leituraStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Gas ──────────────────────────────────────────────────────────────────────

// RegistrarGas godoc
// @Summary Registrar leitura de gas
// @Description Somente a quantidade consumida; a precificacao acontece no fechamento mensal com a tarifa entao vigente.
// @Tags leituras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RegistrarLeituraGasRequest true "Leitura do periodo"
// @Success 201 {object} dto.LeituraGasResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/leituras/gas [post]
func (h *LeiturasHandler) RegistrarGas(c *gin.Context) {
	var req dto.RegistrarLeituraGasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarGas(c.Request.Context(), req)
	if err != nil {
		c.JSON(leituraStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ExcluirGas godoc
// @Summary Excluir leitura de gas ainda nao faturada
// @Tags leituras
// @Security BearerAuth
// @Param id path string true "UUID da leitura"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/leituras/gas/{id} [delete]
func (h *LeiturasHandler) ExcluirGas(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ExcluirGas(c.Request.Context(), id); err != nil {
		c.JSON(leituraStatus(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
