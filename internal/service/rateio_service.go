package service

import (
	"context"
	"errors"
	"time"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RateioService interface {
	CriarDespesa(ctx context.Context, req dto.CriarDespesaRequest) (*dto.DespesaResponse, error)
	ListarDespesas(ctx context.Context, condominioID uuid.UUID, mes, ano int) ([]dto.DespesaResponse, error)
	// CalcularRateio splits a despesa evenly across every active unit of its
	// condominium and marks it rateada, all in one transaction.
	CalcularRateio(ctx context.Context, despesaID uuid.UUID) (*dto.CalcularRateioResponse, error)
	// GerarCobrancasDeRateio creates one tipo="rateio" charge PER pending
	// apportionment — the ad-hoc billing path, distinct from the monthly
	// aggregator's single consolidated charge per unit.
	GerarCobrancasDeRateio(ctx context.Context, despesaID uuid.UUID) (*dto.GerarCobrancasResponse, error)
}

type rateioService struct {
	repo         repository.DespesaRepository
	unidadeRepo  repository.UnidadeRepository
	cobrancaRepo repository.CobrancaRepository
}

func NewRateioService(
	repo repository.DespesaRepository,
	unidadeRepo repository.UnidadeRepository,
	cobrancaRepo repository.CobrancaRepository,
) RateioService {
	return &rateioService{repo: repo, unidadeRepo: unidadeRepo, cobrancaRepo: cobrancaRepo}
}

func (s *rateioService) CriarDespesa(ctx context.Context, req dto.CriarDespesaRequest) (*dto.DespesaResponse, error) {
	condominioID, err := uuid.Parse(req.CondominioID)
	if err != nil {
		return nil, errors.New("condominio_id invalido")
	}
	if req.ValorTotal.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("valor_total deve ser positivo")
	}

	despesa := model.Despesa{
		CondominioID:  condominioID,
		MesReferencia: req.MesReferencia,
		AnoReferencia: req.AnoReferencia,
		Categoria:     req.Categoria,
		Descricao:     req.Descricao,
		ValorTotal:    req.ValorTotal,
	}
	if err := s.repo.Create(ctx, &despesa); err != nil {
		return nil, err
	}
	return despesaToResponse(&despesa), nil
}

func (s *rateioService) ListarDespesas(ctx context.Context, condominioID uuid.UUID, mes, ano int) ([]dto.DespesaResponse, error) {
	despesas, err := s.repo.ListByCondominio(ctx, condominioID, mes, ano)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DespesaResponse, len(despesas))
	for i := range despesas {
		resp[i] = *despesaToResponse(&despesas[i])
	}
	return resp, nil
}

// CalcularRateio implements the even split. The per-unit share is the total
// divided by the unit count rounded to centavos; the LAST unit absorbs the
// rounding remainder so the shares always sum to the expense total exactly.
func (s *rateioService) CalcularRateio(ctx context.Context, despesaID uuid.UUID) (*dto.CalcularRateioResponse, error) {
	despesa, err := s.repo.FindByID(ctx, despesaID)
	if err != nil {
		return nil, errors.New("despesa nao encontrada")
	}
	if despesa.Rateada {
		return nil, ErrDespesaJaRateada
	}

	unidades, err := s.unidadeRepo.ListByCondominio(ctx, despesa.CondominioID)
	if err != nil {
		return nil, err
	}
	if len(unidades) == 0 {
		return nil, ErrSemUnidades
	}

	n := int64(len(unidades))
	cota := despesa.ValorTotal.DivRound(decimal.NewFromInt(n), 2)
	ultimaCota := despesa.ValorTotal.Sub(cota.Mul(decimal.NewFromInt(n - 1)))

	rateios := make([]model.Rateio, len(unidades))
	for i, unidade := range unidades {
		valor := cota
		if i == len(unidades)-1 {
			valor = ultimaCota
		}
		rateios[i] = model.Rateio{
			DespesaID:    despesa.ID,
			UnidadeID:    unidade.ID,
			ValorRateado: valor,
			Status:       model.RateioPendente,
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateRateiosTx(ctx, tx, rateios); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDespesaJaRateada
			}
			return err
		}
		return s.repo.MarcarRateadaTx(ctx, tx, despesa.ID)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := &dto.CalcularRateioResponse{
		DespesaID:    despesa.ID.String(),
		TotalRateado: despesa.ValorTotal,
		ValorPorCota: cota,
		NumeroCotas:  len(unidades),
		Rateios:      make([]dto.RateioResponse, len(rateios)),
	}
	for i := range rateios {
		resp.Rateios[i] = *rateioToResponse(&rateios[i])
	}
	return resp, nil
}

func (s *rateioService) GerarCobrancasDeRateio(ctx context.Context, despesaID uuid.UUID) (*dto.GerarCobrancasResponse, error) {
	despesa, err := s.repo.FindByID(ctx, despesaID)
	if err != nil {
		return nil, errors.New("despesa nao encontrada")
	}

	rateios, err := s.repo.ListRateiosPendentesByDespesa(ctx, despesaID)
	if err != nil {
		return nil, err
	}
	if len(rateios) == 0 {
		return nil, ErrSemRateiosPendentes
	}

	venc := proximoVencimento(time.Now())
	criadas := 0

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i := range rateios {
			rateio := &rateios[i]
			cobranca := model.Cobranca{
				UnidadeID:     rateio.UnidadeID,
				CondominioID:  despesa.CondominioID,
				Tipo:          model.CobrancaRateio,
				MesReferencia: despesa.MesReferencia,
				AnoReferencia: despesa.AnoReferencia,
				Valor:         rateio.ValorRateado,
				Vencimento:    venc,
				Status:        model.CobrancaPendente,
				Detalhamento: model.Detalhamento{
					Despesas: []model.DetalhamentoDespesa{{
						Descricao: despesa.Descricao,
						Categoria: despesa.Categoria,
						Valor:     rateio.ValorRateado,
					}},
				},
			}
			if err := s.cobrancaRepo.CreateTx(ctx, tx, &cobranca); err != nil {
				return err
			}
			if err := s.repo.MarcarRateioCobradoTx(ctx, tx, rateio.ID, cobranca.ID); err != nil {
				return err
			}
			criadas++
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.GerarCobrancasResponse{
		DespesaID:        despesa.ID.String(),
		CobrancasCriadas: criadas,
	}, nil
}

// proximoVencimento returns the 10th of the month following t, rolling the
// year at December.
func proximoVencimento(t time.Time) time.Time {
	mes, ano := int(t.Month())+1, t.Year()
	if mes > 12 {
		mes = 1
		ano++
	}
	return time.Date(ano, time.Month(mes), 10, 0, 0, 0, 0, time.UTC)
}

func despesaToResponse(d *model.Despesa) *dto.DespesaResponse {
	return &dto.DespesaResponse{
		ID:            d.ID.String(),
		CondominioID:  d.CondominioID.String(),
		MesReferencia: d.MesReferencia,
		AnoReferencia: d.AnoReferencia,
		Categoria:     d.Categoria,
		Descricao:     d.Descricao,
		ValorTotal:    d.ValorTotal,
		Rateada:       d.Rateada,
	}
}

func rateioToResponse(r *model.Rateio) *dto.RateioResponse {
	resp := &dto.RateioResponse{
		ID:           r.ID.String(),
		DespesaID:    r.DespesaID.String(),
		UnidadeID:    r.UnidadeID.String(),
		ValorRateado: r.ValorRateado,
		Status:       r.Status,
	}
	if r.CobrancaID != nil {
		s := r.CobrancaID.String()
		resp.CobrancaID = &s
	}
	return resp
}
