package handler

import (
	"net/http"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/apierror"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CobrancasHandler struct{ svc service.CobrancaService }

func NewCobrancasHandler(svc service.CobrancaService) *CobrancasHandler {
	return &CobrancasHandler{svc: svc}
}

// Listar godoc
// @Summary Listar cobrancas de uma unidade
// @Tags cobrancas
// @Produce json
// @Security BearerAuth
// @Param unidade_id query string true "UUID da unidade"
// @Param status query string false "pendente | paga | cancelada | all"
// @Success 200 {array} dto.CobrancaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/cobrancas [get]
func (h *CobrancasHandler) Listar(c *gin.Context) {
	unidadeID, err := uuid.Parse(c.Query("unidade_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("unidade_id invalido"))
		return
	}
	status := c.DefaultQuery("status", "all")

	resp, err := h.svc.ListarPorUnidade(c.Request.Context(), unidadeID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar cobrancas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary Detalhar uma cobranca
// @Tags cobrancas
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID da cobranca"
// @Success 200 {object} dto.CobrancaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/cobrancas/{id} [get]
func (h *CobrancasHandler) Obter(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BaixarPDF godoc
// @Summary Baixar o boleto em PDF
// @Tags cobrancas
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "UUID da cobranca"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/cobrancas/{id}/pdf [get]
func (h *CobrancasHandler) BaixarPDF(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.ObterPDFPath(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	if path == "" {
		c.JSON(http.StatusNotFound, apierror.New("Boleto ainda nao gerado"))
		return
	}
	c.FileAttachment(path, "boleto_"+id.String()+".pdf")
}
