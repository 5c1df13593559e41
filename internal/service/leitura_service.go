package service

import (
	"context"
	"errors"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeituraService interface {
	RegistrarAgua(ctx context.Context, req dto.RegistrarLeituraRequest) (*dto.LeituraResponse, error)
	AtualizarAgua(ctx context.Context, id uuid.UUID, req dto.AtualizarLeituraRequest) (*dto.LeituraResponse, error)
	ExcluirAgua(ctx context.Context, id uuid.UUID) error

	RegistrarEnergia(ctx context.Context, req dto.RegistrarLeituraRequest) (*dto.LeituraResponse, error)
	AtualizarEnergia(ctx context.Context, id uuid.UUID, req dto.AtualizarLeituraRequest) (*dto.LeituraResponse, error)
	ExcluirEnergia(ctx context.Context, id uuid.UUID) error

	RegistrarGas(ctx context.Context, req dto.RegistrarLeituraGasRequest) (*dto.LeituraGasResponse, error)
	ExcluirGas(ctx context.Context, id uuid.UUID) error
}

type leituraService struct {
	repo        repository.LeituraRepository
	unidadeRepo repository.UnidadeRepository
	tarifaRepo  repository.TarifaRepository
}

func NewLeituraService(
	repo repository.LeituraRepository,
	unidadeRepo repository.UnidadeRepository,
	tarifaRepo repository.TarifaRepository,
) LeituraService {
	return &leituraService{repo: repo, unidadeRepo: unidadeRepo, tarifaRepo: tarifaRepo}
}

// ── Agua ─────────────────────────────────────────────────────────────────────

// RegistrarAgua creates a water reading. Consumo and ValorCalculado are
// derived here from the active tarifa; the tarifa in force at entry time is
// frozen on the row so later tarifa changes don't rewrite history.
func (s *leituraService) RegistrarAgua(ctx context.Context, req dto.RegistrarLeituraRequest) (*dto.LeituraResponse, error) {
	unidade, tarifa, err := s.resolverUnidadeTarifa(ctx, req.UnidadeID, model.TipoAgua)
	if err != nil {
		return nil, err
	}

	consumo := req.LeituraAtual.Sub(req.LeituraAnterior)
	leitura := model.LeituraAgua{
		UnidadeID:       unidade.ID,
		CondominioID:    unidade.CondominioID,
		MesReferencia:   req.MesReferencia,
		AnoReferencia:   req.AnoReferencia,
		LeituraAnterior: req.LeituraAnterior,
		LeituraAtual:    req.LeituraAtual,
		TarifaM3:        tarifa.ValorUnitario,
		ConsumoM3:       consumo,
		ValorCalculado:  consumo.Mul(tarifa.ValorUnitario),
	}

	if err := s.repo.CreateAgua(ctx, &leitura); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLeituraDuplicada
		}
		return nil, err
	}
	return aguaToResponse(&leitura), nil
}

// AtualizarAgua recomputes consumption for a reading that has NOT yet been
// folded into a charge. Readings with a cobranca back-reference are locked:
// the issued charge's detalhamento snapshot must stay authoritative.
func (s *leituraService) AtualizarAgua(ctx context.Context, id uuid.UUID, req dto.AtualizarLeituraRequest) (*dto.LeituraResponse, error) {
	leitura, err := s.repo.FindAguaByID(ctx, id)
	if err != nil {
		return nil, errors.New("leitura nao encontrada")
	}
	if leitura.CobrancaID != nil {
		return nil, ErrLeituraFaturada
	}

	leitura.LeituraAnterior = req.LeituraAnterior
	leitura.LeituraAtual = req.LeituraAtual
	leitura.ConsumoM3 = req.LeituraAtual.Sub(req.LeituraAnterior)
	leitura.ValorCalculado = leitura.ConsumoM3.Mul(leitura.TarifaM3)

	if err := s.repo.UpdateAgua(ctx, leitura); err != nil {
		return nil, err
	}
	return aguaToResponse(leitura), nil
}

func (s *leituraService) ExcluirAgua(ctx context.Context, id uuid.UUID) error {
	leitura, err := s.repo.FindAguaByID(ctx, id)
	if err != nil {
		return errors.New("leitura nao encontrada")
	}
	if leitura.CobrancaID != nil {
		return ErrLeituraFaturada
	}
	return s.repo.DeleteAgua(ctx, id)
}

// ── Energia ──────────────────────────────────────────────────────────────────

func (s *leituraService) RegistrarEnergia(ctx context.Context, req dto.RegistrarLeituraRequest) (*dto.LeituraResponse, error) {
	unidade, tarifa, err := s.resolverUnidadeTarifa(ctx, req.UnidadeID, model.TipoEnergia)
	if err != nil {
		return nil, err
	}

	consumo := req.LeituraAtual.Sub(req.LeituraAnterior)
	leitura := model.LeituraEnergia{
		UnidadeID:       unidade.ID,
		CondominioID:    unidade.CondominioID,
		MesReferencia:   req.MesReferencia,
		AnoReferencia:   req.AnoReferencia,
		Garagem:         req.Garagem,
		MedidorSerial:   req.MedidorSerial,
		LeituraAnterior: req.LeituraAnterior,
		LeituraAtual:    req.LeituraAtual,
		TarifaKWh:       tarifa.ValorUnitario,
		ConsumoKWh:      consumo,
		ValorCalculado:  consumo.Mul(tarifa.ValorUnitario),
	}

	if err := s.repo.CreateEnergia(ctx, &leitura); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLeituraDuplicada
		}
		return nil, err
	}
	return energiaToResponse(&leitura), nil
}

func (s *leituraService) AtualizarEnergia(ctx context.Context, id uuid.UUID, req dto.AtualizarLeituraRequest) (*dto.LeituraResponse, error) {
	leitura, err := s.repo.FindEnergiaByID(ctx, id)
	if err != nil {
		return nil, errors.New("leitura nao encontrada")
	}
	if leitura.CobrancaID != nil {
		return nil, ErrLeituraFaturada
	}

	leitura.LeituraAnterior = req.LeituraAnterior
	leitura.LeituraAtual = req.LeituraAtual
	leitura.ConsumoKWh = req.LeituraAtual.Sub(req.LeituraAnterior)
	leitura.ValorCalculado = leitura.ConsumoKWh.Mul(leitura.TarifaKWh)

	if err := s.repo.UpdateEnergia(ctx, leitura); err != nil {
		return nil, err
	}
	return energiaToResponse(leitura), nil
}

func (s *leituraService) ExcluirEnergia(ctx context.Context, id uuid.UUID) error {
	leitura, err := s.repo.FindEnergiaByID(ctx, id)
	if err != nil {
		return errors.New("leitura nao encontrada")
	}
	if leitura.CobrancaID != nil {
		return ErrLeituraFaturada
	}
	return s.repo.DeleteEnergia(ctx, id)
}

// ── Gas ──────────────────────────────────────────────────────────────────────

// RegistrarGas stores only the consumed quantity. Pricing happens at
// aggregation time with the then-active gas tarifa.
func (s *leituraService) RegistrarGas(ctx context.Context, req dto.RegistrarLeituraGasRequest) (*dto.LeituraGasResponse, error) {
	unidadeID, err := uuid.Parse(req.UnidadeID)
	if err != nil {
		return nil, errors.New("unidade_id invalido")
	}
	unidade, err := s.unidadeRepo.FindByID(ctx, unidadeID)
	if err != nil {
		return nil, errors.New("unidade nao encontrada")
	}

	leitura := model.LeituraGas{
		UnidadeID:     unidade.ID,
		CondominioID:  unidade.CondominioID,
		MesReferencia: req.MesReferencia,
		AnoReferencia: req.AnoReferencia,
		ValorLeitura:  req.ValorLeitura,
	}

	if err := s.repo.CreateGas(ctx, &leitura); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLeituraDuplicada
		}
		return nil, err
	}
	return gasToResponse(&leitura), nil
}

func (s *leituraService) ExcluirGas(ctx context.Context, id uuid.UUID) error {
	leitura, err := s.repo.FindGasByID(ctx, id)
	if err != nil {
		return errors.New("leitura nao encontrada")
	}
	if leitura.CobrancaID != nil {
		return ErrLeituraFaturada
	}
	return s.repo.DeleteGas(ctx, id)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (s *leituraService) resolverUnidadeTarifa(ctx context.Context, unidadeIDStr, tipo string) (*model.Unidade, *model.Tarifa, error) {
	unidadeID, err := uuid.Parse(unidadeIDStr)
	if err != nil {
		return nil, nil, errors.New("unidade_id invalido")
	}
	unidade, err := s.unidadeRepo.FindByID(ctx, unidadeID)
	if err != nil {
		return nil, nil, errors.New("unidade nao encontrada")
	}
	tarifa, err := s.tarifaRepo.FindAtiva(ctx, unidade.CondominioID, tipo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTarifaNaoEncontrada
		}
		return nil, nil, err
	}
	return unidade, tarifa, nil
}

func aguaToResponse(l *model.LeituraAgua) *dto.LeituraResponse {
	resp := &dto.LeituraResponse{
		ID:              l.ID.String(),
		UnidadeID:       l.UnidadeID.String(),
		MesReferencia:   l.MesReferencia,
		AnoReferencia:   l.AnoReferencia,
		LeituraAnterior: l.LeituraAnterior,
		LeituraAtual:    l.LeituraAtual,
		Tarifa:          l.TarifaM3,
		Consumo:         l.ConsumoM3,
		ValorCalculado:  l.ValorCalculado,
	}
	if l.CobrancaID != nil {
		s := l.CobrancaID.String()
		resp.CobrancaID = &s
	}
	return resp
}

func energiaToResponse(l *model.LeituraEnergia) *dto.LeituraResponse {
	resp := &dto.LeituraResponse{
		ID:              l.ID.String(),
		UnidadeID:       l.UnidadeID.String(),
		MesReferencia:   l.MesReferencia,
		AnoReferencia:   l.AnoReferencia,
		LeituraAnterior: l.LeituraAnterior,
		LeituraAtual:    l.LeituraAtual,
		Tarifa:          l.TarifaKWh,
		Consumo:         l.ConsumoKWh,
		ValorCalculado:  l.ValorCalculado,
		Garagem:         l.Garagem,
	}
	if l.CobrancaID != nil {
		s := l.CobrancaID.String()
		resp.CobrancaID = &s
	}
	return resp
}

func gasToResponse(l *model.LeituraGas) *dto.LeituraGasResponse {
	resp := &dto.LeituraGasResponse{
		ID:            l.ID.String(),
		UnidadeID:     l.UnidadeID.String(),
		MesReferencia: l.MesReferencia,
		AnoReferencia: l.AnoReferencia,
		ValorLeitura:  l.ValorLeitura,
	}
	if l.CobrancaID != nil {
		s := l.CobrancaID.String()
		resp.CobrancaID = &s
	}
	return resp
}
