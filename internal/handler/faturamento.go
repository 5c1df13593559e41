package handler

import (
	"fmt"
	"net/http"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type FaturamentoHandler struct {
	svc            service.FaturamentoService
	agendamentoSvc service.AgendamentoService
}

func NewFaturamentoHandler(svc service.FaturamentoService, agendamentoSvc service.AgendamentoService) *FaturamentoHandler {
	return &FaturamentoHandler{svc: svc, agendamentoSvc: agendamentoSvc}
}

// Processar godoc
// @Summary Disparar o fechamento mensal manualmente
// @Description Consolida leituras e rateios pendentes em um boleto mensal por unidade. Falhas por unidade nao abortam o lote; consulte results.errors.
// @Tags faturamento
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ProcessarFaturamentoRequest false "Periodo e escopo (opcionais)"
// @Success 200 {object} dto.ProcessarFaturamentoResponse
// @Failure 500 {object} dto.ProcessarFaturamentoResponse
// @Router /v1/faturamento/processar [post]
func (h *FaturamentoHandler) Processar(c *gin.Context) {
	var req dto.ProcessarFaturamentoRequest
	if c.Request.ContentLength > 0 {
		if !bindAndValidate(c, &req) {
			return
		}
	}

	resultado, err := h.svc.ProcessarCobrancas(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ProcessarFaturamentoResponse{
		Success: true,
		Message: fmt.Sprintf("Faturamento %02d/%d processado", resultado.Mes, resultado.Ano),
		Results: resultado,
	})
}

// Agendamento godoc
// @Summary Consultar ou alterar o agendamento do fechamento mensal
// @Description Endpoint de acao unica: action="get" retorna o agendamento vigente; action="update" persiste e reinstala o cron. Valores fora da faixa sao ajustados (dia 1-28, hora 0-23, minuto 0-59).
// @Tags faturamento
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AgendamentoRequest true "Acao"
// @Success 200 {object} dto.AgendamentoResponse
// @Failure 400 {object} dto.AgendamentoResponse
// @Router /v1/faturamento/agendamento [post]
func (h *FaturamentoHandler) Agendamento(c *gin.Context) {
	var req dto.AgendamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	switch req.Action {
	case "get":
		schedule, err := h.agendamentoSvc.Obter(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.AgendamentoResponse{Success: true, Schedule: *schedule})

	case "update":
		schedule, err := h.agendamentoSvc.Atualizar(c.Request.Context(), req.Dia, req.Hora, req.Minuto)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.AgendamentoResponse{
			Success:  true,
			Message:  "Agendamento atualizado",
			Schedule: *schedule,
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action"})
	}
}
