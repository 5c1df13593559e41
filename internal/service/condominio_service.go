package service

import (
	"context"
	"errors"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"

	"github.com/google/uuid"
)

type CondominioService interface {
	Criar(ctx context.Context, req dto.CriarCondominioRequest) (*dto.CondominioResponse, error)
	Listar(ctx context.Context) ([]dto.CondominioResponse, error)
	CriarUnidade(ctx context.Context, condominioID uuid.UUID, req dto.CriarUnidadeRequest) (*dto.UnidadeResponse, error)
	ListarUnidades(ctx context.Context, condominioID uuid.UUID) ([]dto.UnidadeResponse, error)
}

type condominioService struct {
	repo        repository.CondominioRepository
	unidadeRepo repository.UnidadeRepository
}

func NewCondominioService(repo repository.CondominioRepository, unidadeRepo repository.UnidadeRepository) CondominioService {
	return &condominioService{repo: repo, unidadeRepo: unidadeRepo}
}

func (s *condominioService) Criar(ctx context.Context, req dto.CriarCondominioRequest) (*dto.CondominioResponse, error) {
	cond := model.Condominio{
		Nome:         req.Nome,
		Endereco:     req.Endereco,
		Cidade:       req.Cidade,
		EmailSindico: req.EmailSindico,
		Ativo:        true,
	}
	if err := s.repo.Create(ctx, &cond); err != nil {
		return nil, err
	}
	return condominioToResponse(&cond), nil
}

func (s *condominioService) Listar(ctx context.Context) ([]dto.CondominioResponse, error) {
	condominios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CondominioResponse, len(condominios))
	for i := range condominios {
		resp[i] = *condominioToResponse(&condominios[i])
	}
	return resp, nil
}

func (s *condominioService) CriarUnidade(ctx context.Context, condominioID uuid.UUID, req dto.CriarUnidadeRequest) (*dto.UnidadeResponse, error) {
	if _, err := s.repo.FindByID(ctx, condominioID); err != nil {
		return nil, errors.New("condominio nao encontrado")
	}

	unidade := model.Unidade{
		CondominioID:     condominioID,
		Numero:           req.Numero,
		Bloco:            req.Bloco,
		Proprietario:     req.Proprietario,
		EmailResponsavel: req.EmailResponsavel,
		Ativo:            true,
	}
	if err := s.unidadeRepo.Create(ctx, &unidade); err != nil {
		return nil, err
	}
	return unidadeToResponse(&unidade), nil
}

func (s *condominioService) ListarUnidades(ctx context.Context, condominioID uuid.UUID) ([]dto.UnidadeResponse, error) {
	unidades, err := s.unidadeRepo.ListByCondominio(ctx, condominioID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UnidadeResponse, len(unidades))
	for i := range unidades {
		resp[i] = *unidadeToResponse(&unidades[i])
	}
	return resp, nil
}

func condominioToResponse(c *model.Condominio) *dto.CondominioResponse {
	return &dto.CondominioResponse{
		ID:           c.ID.String(),
		Nome:         c.Nome,
		Endereco:     c.Endereco,
		Cidade:       c.Cidade,
		EmailSindico: c.EmailSindico,
		Ativo:        c.Ativo,
	}
}

func unidadeToResponse(u *model.Unidade) *dto.UnidadeResponse {
	return &dto.UnidadeResponse{
		ID:               u.ID.String(),
		CondominioID:     u.CondominioID.String(),
		Numero:           u.Numero,
		Bloco:            u.Bloco,
		Proprietario:     u.Proprietario,
		EmailResponsavel: u.EmailResponsavel,
		Ativo:            u.Ativo,
	}
}
