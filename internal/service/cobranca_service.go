package service

import (
	"context"
	"errors"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"

	"github.com/google/uuid"
)

type CobrancaService interface {
	ListarPorUnidade(ctx context.Context, unidadeID uuid.UUID, status string) ([]dto.CobrancaResponse, error)
	Obter(ctx context.Context, id uuid.UUID) (*dto.CobrancaResponse, error)
	// ObterPDFPath returns the stored boleto path, empty while the async
	// generation is still pending.
	ObterPDFPath(ctx context.Context, id uuid.UUID) (string, error)
}

type cobrancaService struct {
	repo repository.CobrancaRepository
}

func NewCobrancaService(repo repository.CobrancaRepository) CobrancaService {
	return &cobrancaService{repo: repo}
}

func (s *cobrancaService) ListarPorUnidade(ctx context.Context, unidadeID uuid.UUID, status string) ([]dto.CobrancaResponse, error) {
	cobrancas, err := s.repo.ListByUnidade(ctx, unidadeID, status)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CobrancaResponse, len(cobrancas))
	for i := range cobrancas {
		resp[i] = *CobrancaToResponse(&cobrancas[i])
	}
	return resp, nil
}

func (s *cobrancaService) Obter(ctx context.Context, id uuid.UUID) (*dto.CobrancaResponse, error) {
	cobranca, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cobranca nao encontrada")
	}
	return CobrancaToResponse(cobranca), nil
}

func (s *cobrancaService) ObterPDFPath(ctx context.Context, id uuid.UUID) (string, error) {
	cobranca, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", errors.New("cobranca nao encontrada")
	}
	if cobranca.PDFPath == nil {
		return "", nil
	}
	return *cobranca.PDFPath, nil
}

// CobrancaToResponse is shared with the public consulta handler.
func CobrancaToResponse(c *model.Cobranca) *dto.CobrancaResponse {
	resp := &dto.CobrancaResponse{
		ID:            c.ID.String(),
		UnidadeID:     c.UnidadeID.String(),
		CondominioID:  c.CondominioID.String(),
		Tipo:          c.Tipo,
		MesReferencia: c.MesReferencia,
		AnoReferencia: c.AnoReferencia,
		Valor:         c.Valor,
		Vencimento:    c.Vencimento.Format("2006-01-02"),
		Status:        c.Status,
		Detalhamento:  c.Detalhamento,
		CreatedAt:     c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if c.PDFPath != nil && *c.PDFPath != "" {
		url := "/v1/cobrancas/" + c.ID.String() + "/pdf"
		resp.PDFUrl = &url
	}
	return resp
}
