package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/apierror"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DespesasHandler struct{ svc service.RateioService }

func NewDespesasHandler(svc service.RateioService) *DespesasHandler {
	return &DespesasHandler{svc: svc}
}

// Criar godoc
// @Summary Registrar despesa compartilhada
// @Tags despesas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarDespesaRequest true "Dados da despesa"
// @Success 201 {object} dto.DespesaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/despesas [post]
func (h *DespesasHandler) Criar(c *gin.Context) {
	var req dto.CriarDespesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarDespesa(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Listar despesas de um condominio
// @Tags despesas
// @Produce json
// @Security BearerAuth
// @Param condominio_id query string true "UUID do condominio"
// @Param mes query int false "Mes de referencia"
// @Param ano query int false "Ano de referencia"
// @Success 200 {array} dto.DespesaResponse
// @Router /v1/despesas [get]
func (h *DespesasHandler) Listar(c *gin.Context) {
	condominioID, err := uuid.Parse(c.Query("condominio_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("condominio_id invalido"))
		return
	}
	mes, _ := strconv.Atoi(c.Query("mes"))
	ano, _ := strconv.Atoi(c.Query("ano"))

	resp, err := h.svc.ListarDespesas(c.Request.Context(), condominioID, mes, ano)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar despesas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CalcularRateio godoc
// @Summary Ratear despesa entre as unidades ativas
// @Description Divisao igualitaria em centavos; a ultima unidade absorve a diferenca de arredondamento.
// @Tags despesas
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID da despesa"
// @Success 200 {object} dto.CalcularRateioResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/despesas/{id}/rateio [post]
func (h *DespesasHandler) CalcularRateio(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.CalcularRateio(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDespesaJaRateada):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		case errors.Is(err, service.ErrSemUnidades):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GerarCobrancas godoc
// @Summary Gerar cobrancas avulsas dos rateios pendentes
// @Description Caminho avulso: uma cobranca tipo "rateio" por rateio pendente, fora do fechamento mensal.
// @Tags despesas
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID da despesa"
// @Success 200 {object} dto.GerarCobrancasResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/despesas/{id}/cobrancas [post]
func (h *DespesasHandler) GerarCobrancas(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GerarCobrancasDeRateio(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSemRateiosPendentes) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
