package service

import (
	"context"
	"errors"
	"time"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TarifaService interface {
	DefinirTarifa(ctx context.Context, req dto.DefinirTarifaRequest) (*dto.TarifaResponse, error)
	ObterTarifaAtiva(ctx context.Context, condominioID uuid.UUID, tipo string) (*dto.TarifaResponse, error)
	ListarHistorico(ctx context.Context, condominioID uuid.UUID, tipo string) ([]dto.TarifaResponse, error)
}

type tarifaService struct {
	repo repository.TarifaRepository
}

func NewTarifaService(repo repository.TarifaRepository) TarifaService {
	return &tarifaService{repo: repo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// DefinirTarifa supersedes the active tarifa of (condominio, tipo).
// Deactivation of the previous rates and insertion of the new one run in a
// single transaction: a failure on either side rolls back fully, so the
// "at most one active tarifa" invariant never observes zero or two actives.
func (s *tarifaService) DefinirTarifa(ctx context.Context, req dto.DefinirTarifaRequest) (*dto.TarifaResponse, error) {
	condominioID, err := uuid.Parse(req.CondominioID)
	if err != nil {
		return nil, errors.New("condominio_id invalido")
	}

	tarifa := model.Tarifa{
		CondominioID:   condominioID,
		Tipo:           req.Tipo,
		ValorUnitario:  req.ValorUnitario,
		UnidadeMedida:  req.UnidadeMedida,
		VigenciaInicio: time.Now(),
		Ativa:          true,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DesativarTodasTx(ctx, tx, condominioID, req.Tipo); err != nil {
			return err
		}
		return s.repo.CreateTx(ctx, tx, &tarifa)
	})
	if txErr != nil {
		return nil, txErr
	}

	return tarifaToResponse(&tarifa), nil
}

func (s *tarifaService) ObterTarifaAtiva(ctx context.Context, condominioID uuid.UUID, tipo string) (*dto.TarifaResponse, error) {
	tarifa, err := s.repo.FindAtiva(ctx, condominioID, tipo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTarifaNaoEncontrada
		}
		return nil, err
	}
	return tarifaToResponse(tarifa), nil
}

func (s *tarifaService) ListarHistorico(ctx context.Context, condominioID uuid.UUID, tipo string) ([]dto.TarifaResponse, error) {
	tarifas, err := s.repo.ListHistorico(ctx, condominioID, tipo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TarifaResponse, len(tarifas))
	for i := range tarifas {
		resp[i] = *tarifaToResponse(&tarifas[i])
	}
	return resp, nil
}

func tarifaToResponse(t *model.Tarifa) *dto.TarifaResponse {
	return &dto.TarifaResponse{
		ID:             t.ID.String(),
		CondominioID:   t.CondominioID.String(),
		Tipo:           t.Tipo,
		ValorUnitario:  t.ValorUnitario,
		UnidadeMedida:  t.UnidadeMedida,
		VigenciaInicio: t.VigenciaInicio.Format(time.RFC3339),
		Ativa:          t.Ativa,
	}
}
