package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FaturamentoService interface {
	// ProcessarCobrancas runs the monthly consolidation batch for the given
	// period (default: previous calendar month) and scope (default: every
	// active condominium). The returned resultado carries per-unit errors;
	// only a failure to list the condominiums themselves returns a non-nil
	// error here.
	ProcessarCobrancas(ctx context.Context, req dto.ProcessarFaturamentoRequest) (*dto.FaturamentoResultado, error)
}

type faturamentoService struct {
	condominioRepo repository.CondominioRepository
	unidadeRepo    repository.UnidadeRepository
	leituraRepo    repository.LeituraRepository
	tarifaRepo     repository.TarifaRepository
	despesaRepo    repository.DespesaRepository
	cobrancaRepo   repository.CobrancaRepository
	dispatcher     *worker.Dispatcher
}

func NewFaturamentoService(
	condominioRepo repository.CondominioRepository,
	unidadeRepo repository.UnidadeRepository,
	leituraRepo repository.LeituraRepository,
	tarifaRepo repository.TarifaRepository,
	despesaRepo repository.DespesaRepository,
	cobrancaRepo repository.CobrancaRepository,
	dispatcher *worker.Dispatcher,
) FaturamentoService {
	return &faturamentoService{
		condominioRepo: condominioRepo,
		unidadeRepo:    unidadeRepo,
		leituraRepo:    leituraRepo,
		tarifaRepo:     tarifaRepo,
		despesaRepo:    despesaRepo,
		cobrancaRepo:   cobrancaRepo,
		dispatcher:     dispatcher,
	}
}

// ── ProcessarCobrancas ────────────────────────────────────────────────────────
// One consolidated tipo="boleto_mensal" charge per (unidade, periodo):
//   1. Resolve period — default previous month, January rolls back to
//      December of the prior year.
//   2. Per condominium: take the period advisory lock (concurrent runs for
//      the same scope are skipped, not queued), load the active gas tarifa.
//   3. Per unit: skip when a boleto_mensal already exists for the period
//      (re-runs are safe); gather water + all electricity meters + gas +
//      pending rateios; skip when the total is zero; otherwise create the
//      charge and back-link every source row in one transaction.
//   4. A unit's failure is recorded and the batch moves on. A condominium
//      listing failure skips that condominium. Only the top-level
//      condominium query aborts the run.

func (s *faturamentoService) ProcessarCobrancas(ctx context.Context, req dto.ProcessarFaturamentoRequest) (*dto.FaturamentoResultado, error) {
	mes, ano := req.Mes, req.Ano
	if mes == 0 || ano == 0 {
		mes, ano = periodoAnterior(time.Now())
	}

	condominios, err := s.escoposCondominios(ctx, req.CondominioID)
	if err != nil {
		return nil, err
	}

	resultado := &dto.FaturamentoResultado{Mes: mes, Ano: ano, Errors: []string{}}

	for i := range condominios {
		cond := &condominios[i]
		s.processarCondominio(ctx, cond, mes, ano, resultado)
	}

	log.Info().
		Int("mes", mes).
		Int("ano", ano).
		Int("processadas", resultado.Processadas).
		Int("cobrancas_criadas", resultado.CobrancasCriadas).
		Int("erros", len(resultado.Errors)).
		Msg("faturamento: processamento concluido")

	// Summary email to each sindico — best effort, fire & forget
	if s.dispatcher != nil {
		for i := range condominios {
			if condominios[i].EmailSindico != nil && *condominios[i].EmailSindico != "" {
				_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
					ToEmail: *condominios[i].EmailSindico,
					Subject: fmt.Sprintf("Faturamento %02d/%d — %s", mes, ano, condominios[i].Nome),
					Body: fmt.Sprintf(
						"Processamento do periodo %02d/%d concluido.\nUnidades processadas: %d\nCobrancas criadas: %d\nErros: %d",
						mes, ano, resultado.Processadas, resultado.CobrancasCriadas, len(resultado.Errors)),
				})
			}
		}
	}

	return resultado, nil
}

func (s *faturamentoService) escoposCondominios(ctx context.Context, condominioID string) ([]model.Condominio, error) {
	if condominioID != "" {
		id, err := uuid.Parse(condominioID)
		if err != nil {
			return nil, errors.New("condominio_id invalido")
		}
		cond, err := s.condominioRepo.FindByID(ctx, id)
		if err != nil {
			return nil, errors.New("condominio nao encontrado")
		}
		return []model.Condominio{*cond}, nil
	}
	return s.condominioRepo.List(ctx)
}

func (s *faturamentoService) processarCondominio(ctx context.Context, cond *model.Condominio, mes, ano int, resultado *dto.FaturamentoResultado) {
	lockKey := chaveLockPeriodo(cond.ID, mes, ano)
	locked, err := s.cobrancaRepo.TryAdvisoryLock(ctx, lockKey)
	if err == nil && !locked {
		resultado.Errors = append(resultado.Errors,
			fmt.Sprintf("condominio %s: processamento do periodo ja em andamento", cond.Nome))
		return
	}
	if err == nil {
		defer func() {
			if unlockErr := s.cobrancaRepo.AdvisoryUnlock(ctx, lockKey); unlockErr != nil {
				log.Warn().Err(unlockErr).Str("condominio", cond.Nome).Msg("faturamento: falha ao liberar lock")
			}
		}()
	}

	// Gas is priced at aggregation time; water/electricity carry their tarifa
	// on the reading row.
	var tarifaGas *model.Tarifa
	if t, err := s.tarifaRepo.FindAtiva(ctx, cond.ID, model.TipoGas); err == nil {
		tarifaGas = t
	}

	unidades, err := s.unidadeRepo.ListByCondominio(ctx, cond.ID)
	if err != nil {
		log.Error().Err(err).Str("condominio", cond.Nome).Msg("faturamento: falha ao listar unidades")
		resultado.Errors = append(resultado.Errors,
			fmt.Sprintf("condominio %s: falha ao listar unidades: %v", cond.Nome, err))
		return
	}

	for i := range unidades {
		unidade := &unidades[i]
		criada, err := s.processarUnidade(ctx, cond, unidade, tarifaGas, mes, ano)
		if err != nil {
			resultado.Errors = append(resultado.Errors,
				fmt.Sprintf("unidade %s (%s): %v", unidade.Identificacao(), cond.Nome, err))
			continue
		}
		resultado.Processadas++
		if criada {
			resultado.CobrancasCriadas++
		}
	}
}

// processarUnidade returns (true, nil) when a charge was created, (false, nil)
// when the unit was skipped (already billed or nothing to bill).
func (s *faturamentoService) processarUnidade(ctx context.Context, cond *model.Condominio, unidade *model.Unidade, tarifaGas *model.Tarifa, mes, ano int) (bool, error) {
	existe, err := s.cobrancaRepo.ExisteBoletoMensal(ctx, unidade.ID, mes, ano)
	if err != nil {
		return false, fmt.Errorf("verificacao de cobranca existente: %w", err)
	}
	if existe {
		log.Debug().
			Str("unidade", unidade.Identificacao()).
			Int("mes", mes).Int("ano", ano).
			Msg("faturamento: boleto mensal ja existe, pulando")
		return false, nil
	}

	total := decimal.Zero
	detalhamento := model.Detalhamento{}

	// Agua
	agua, err := s.leituraRepo.FindAguaByPeriodo(ctx, unidade.ID, mes, ano)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("leitura de agua: %w", err)
	}
	if err != nil {
		agua = nil
	}
	if agua != nil && agua.ValorCalculado.IsPositive() {
		detalhamento.Agua = &model.DetalhamentoAgua{
			ConsumoM3:       agua.ConsumoM3,
			TarifaM3:        agua.TarifaM3,
			Valor:           agua.ValorCalculado,
			LeituraAnterior: agua.LeituraAnterior,
			LeituraAtual:    agua.LeituraAtual,
			MesReferencia:   agua.MesReferencia,
			AnoReferencia:   agua.AnoReferencia,
		}
		total = total.Add(agua.ValorCalculado)
	} else {
		agua = nil
	}

	// Energia — a unit may have several metered garages; sum them into one
	// section with the garage identifiers joined.
	energias, err := s.leituraRepo.ListEnergiaByPeriodo(ctx, unidade.ID, mes, ano)
	if err != nil {
		return false, fmt.Errorf("leituras de energia: %w", err)
	}
	var energiasCobradas []model.LeituraEnergia
	somaEnergia := decimal.Zero
	somaConsumo := decimal.Zero
	var garagens []string
	var tarifaKWh decimal.Decimal
	var medidorSerial *string
	for i := range energias {
		e := &energias[i]
		if !e.ValorCalculado.IsPositive() {
			continue
		}
		somaEnergia = somaEnergia.Add(e.ValorCalculado)
		somaConsumo = somaConsumo.Add(e.ConsumoKWh)
		if e.Garagem != "" {
			garagens = append(garagens, e.Garagem)
		}
		tarifaKWh = e.TarifaKWh
		if e.MedidorSerial != nil {
			medidorSerial = e.MedidorSerial
		}
		energiasCobradas = append(energiasCobradas, *e)
	}
	if len(energiasCobradas) > 0 {
		detalhamento.Energia = &model.DetalhamentoEnergia{
			ConsumoKWh:    somaConsumo,
			TarifaKWh:     tarifaKWh,
			Valor:         somaEnergia,
			Garagens:      strings.Join(garagens, ", "),
			MedidorSerial: medidorSerial,
			MesReferencia: mes,
			AnoReferencia: ano,
		}
		total = total.Add(somaEnergia)
	}

	// Gas — priced now with the condominium's active tarifa; no tarifa means
	// the reading is left out of this run.
	gas, err := s.leituraRepo.FindGasByPeriodo(ctx, unidade.ID, mes, ano)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("leitura de gas: %w", err)
	}
	if err != nil {
		gas = nil
	}
	if gas != nil && tarifaGas != nil {
		valorGas := gas.ValorLeitura.Mul(tarifaGas.ValorUnitario)
		if valorGas.IsPositive() {
			detalhamento.Gas = &model.DetalhamentoGas{
				Consumo:       gas.ValorLeitura,
				Tarifa:        tarifaGas.ValorUnitario,
				Valor:         valorGas,
				UnidadeMedida: tarifaGas.UnidadeMedida,
			}
			total = total.Add(valorGas)
		} else {
			gas = nil
		}
	} else {
		gas = nil
	}

	// Rateios pendentes do periodo
	rateios, err := s.despesaRepo.ListRateiosPendentesByUnidadePeriodo(ctx, unidade.ID, mes, ano)
	if err != nil {
		return false, fmt.Errorf("rateios pendentes: %w", err)
	}
	for i := range rateios {
		r := &rateios[i]
		item := model.DetalhamentoDespesa{Valor: r.ValorRateado}
		if r.Despesa != nil {
			item.Descricao = r.Despesa.Descricao
			item.Categoria = r.Despesa.Categoria
		}
		detalhamento.Despesas = append(detalhamento.Despesas, item)
		total = total.Add(r.ValorRateado)
	}

	if total.IsZero() || detalhamento.Vazio() {
		return false, nil
	}

	cobranca := model.Cobranca{
		UnidadeID:     unidade.ID,
		CondominioID:  cond.ID,
		Tipo:          model.CobrancaBoletoMensal,
		MesReferencia: mes,
		AnoReferencia: ano,
		Valor:         total,
		Vencimento:    vencimentoDoPeriodo(mes, ano),
		Status:        model.CobrancaPendente,
		Detalhamento:  detalhamento,
	}

	txErr := runTx(ctx, s.cobrancaRepo.DB(), func(tx *gorm.DB) error {
		if err := s.cobrancaRepo.CreateTx(ctx, tx, &cobranca); err != nil {
			return fmt.Errorf("criacao da cobranca: %w", err)
		}
		if agua != nil {
			if err := s.leituraRepo.VincularCobrancaAguaTx(ctx, tx, agua.ID, cobranca.ID); err != nil {
				return fmt.Errorf("vinculo da leitura de agua: %w", err)
			}
		}
		for i := range energiasCobradas {
			if err := s.leituraRepo.VincularCobrancaEnergiaTx(ctx, tx, energiasCobradas[i].ID, cobranca.ID); err != nil {
				return fmt.Errorf("vinculo da leitura de energia: %w", err)
			}
		}
		if gas != nil {
			if err := s.leituraRepo.VincularCobrancaGasTx(ctx, tx, gas.ID, cobranca.ID); err != nil {
				return fmt.Errorf("vinculo da leitura de gas: %w", err)
			}
		}
		for i := range rateios {
			if err := s.despesaRepo.MarcarRateioCobradoTx(ctx, tx, rateios[i].ID, cobranca.ID); err != nil {
				return fmt.Errorf("baixa do rateio: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return false, txErr
	}

	// Async boleto PDF — best effort, fire & forget
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueBoleto(ctx, worker.BoletoJobPayload{CobrancaID: cobranca.ID.String()})
	}

	return true, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// periodoAnterior returns the month before t: January rolls back to December
// of the prior year.
func periodoAnterior(t time.Time) (mes, ano int) {
	mes, ano = int(t.Month())-1, t.Year()
	if mes < 1 {
		mes = 12
		ano--
	}
	return mes, ano
}

// vencimentoDoPeriodo is the 10th of the month FOLLOWING the billed period,
// with December rolling into January of the next year.
func vencimentoDoPeriodo(mes, ano int) time.Time {
	mes++
	if mes > 12 {
		mes = 1
		ano++
	}
	return time.Date(ano, time.Month(mes), 10, 0, 0, 0, 0, time.UTC)
}

// chaveLockPeriodo derives the pg advisory lock key for one
// (condominio, mes, ano) scope.
func chaveLockPeriodo(condominioID uuid.UUID, mes, ano int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "faturamento:%s:%d:%d", condominioID, mes, ano)
	return int64(h.Sum64())
}
