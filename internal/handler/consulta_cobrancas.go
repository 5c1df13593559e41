package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/apierror"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const consultaCacheTTL = 5 * time.Minute

// ConsultaCobrancasHandler serves the public open-charges endpoint.
// No authentication required — read only, short-lived Redis cache in front.
type ConsultaCobrancasHandler struct {
	cobrancaRepo repository.CobrancaRepository
	unidadeRepo  repository.UnidadeRepository
	rdb          *redis.Client
}

func NewConsultaCobrancasHandler(
	cobrancaRepo repository.CobrancaRepository,
	unidadeRepo repository.UnidadeRepository,
	rdb *redis.Client,
) *ConsultaCobrancasHandler {
	return &ConsultaCobrancasHandler{cobrancaRepo: cobrancaRepo, unidadeRepo: unidadeRepo, rdb: rdb}
}

// GetCobrancasAbertas godoc
// @Summary Consulta publica de cobrancas pendentes de uma unidade (sem autenticacao)
// @Tags consulta
// @Produce json
// @Param unidade_id path string true "UUID da unidade"
// @Success 200 {object} dto.ConsultaCobrancasResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/consulta/{unidade_id} [get]
func (h *ConsultaCobrancasHandler) GetCobrancasAbertas(c *gin.Context) {
	unidadeID, err := uuid.Parse(c.Param("unidade_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("unidade_id invalido"))
		return
	}
	ctx := c.Request.Context()
	cacheKey := "consulta:cobrancas:" + unidadeID.String()

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ConsultaCobrancasResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	unidade, err := h.unidadeRepo.FindByID(ctx, unidadeID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Unidade nao encontrada"))
		return
	}

	cobrancas, err := h.cobrancaRepo.ListByUnidade(ctx, unidadeID, model.CobrancaPendente)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar cobrancas"))
		return
	}

	resp := dto.ConsultaCobrancasResponse{
		Unidade:   unidade.Identificacao(),
		Cobrancas: make([]dto.CobrancaResponse, len(cobrancas)),
	}
	for i := range cobrancas {
		resp.Cobrancas[i] = *service.CobrancaToResponse(&cobrancas[i])
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, consultaCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
