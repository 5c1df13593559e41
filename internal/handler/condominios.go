package handler

import (
	"net/http"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/apierror"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type CondominiosHandler struct{ svc service.CondominioService }

func NewCondominiosHandler(svc service.CondominioService) *CondominiosHandler {
	return &CondominiosHandler{svc: svc}
}

// Criar godoc
// @Summary Cadastrar condominio
// @Tags condominios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarCondominioRequest true "Dados do condominio"
// @Success 201 {object} dto.CondominioResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/condominios [post]
func (h *CondominiosHandler) Criar(c *gin.Context) {
	var req dto.CriarCondominioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Listar condominios ativos
// @Tags condominios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CondominioResponse
// @Router /v1/condominios [get]
func (h *CondominiosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar condominios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CriarUnidade godoc
// @Summary Cadastrar unidade em um condominio
// @Tags condominios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID do condominio"
// @Param body body dto.CriarUnidadeRequest true "Dados da unidade"
// @Success 201 {object} dto.UnidadeResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/condominios/{id}/unidades [post]
func (h *CondominiosHandler) CriarUnidade(c *gin.Context) {
	condominioID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CriarUnidadeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarUnidade(c.Request.Context(), condominioID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarUnidades godoc
// @Summary Listar unidades ativas de um condominio
// @Tags condominios
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID do condominio"
// @Success 200 {array} dto.UnidadeResponse
// @Router /v1/condominios/{id}/unidades [get]
func (h *CondominiosHandler) ListarUnidades(c *gin.Context) {
	condominioID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarUnidades(c.Request.Context(), condominioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar unidades"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
