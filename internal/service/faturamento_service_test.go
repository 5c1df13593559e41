package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type faturamentoFixture struct {
	svc            service.FaturamentoService
	condominioRepo *stubCondominioRepo
	unidadeRepo    *stubUnidadeRepo
	leituraRepo    *stubLeituraRepo
	tarifaRepo     *stubTarifaRepo
	despesaRepo    *stubDespesaRepo
	cobrancaRepo   *stubCobrancaRepo

	cond     model.Condominio
	unidades []model.Unidade
}

func newFaturamentoFixture(t *testing.T, numUnidades int) *faturamentoFixture {
	t.Helper()
	f := &faturamentoFixture{
		condominioRepo: &stubCondominioRepo{},
		unidadeRepo:    &stubUnidadeRepo{listErr: map[uuid.UUID]error{}},
		leituraRepo:    newStubLeituraRepo(),
		tarifaRepo:     &stubTarifaRepo{},
		despesaRepo:    newStubDespesaRepo(),
		cobrancaRepo:   newStubCobrancaRepo(),
	}
	f.cond = model.Condominio{ID: uuid.New(), Nome: "Residencial Galli", Ativo: true}
	f.condominioRepo.condominios = []model.Condominio{f.cond}

	for i := 0; i < numUnidades; i++ {
		u := model.Unidade{
			ID:           uuid.New(),
			CondominioID: f.cond.ID,
			Numero:       string(rune('1'+i)) + "01",
			Ativo:        true,
		}
		f.unidades = append(f.unidades, u)
		f.unidadeRepo.unidades = append(f.unidadeRepo.unidades, u)
	}

	f.svc = service.NewFaturamentoService(
		f.condominioRepo, f.unidadeRepo, f.leituraRepo,
		f.tarifaRepo, f.despesaRepo, f.cobrancaRepo, nil,
	)
	return f
}

func (f *faturamentoFixture) seedAgua(unidadeID uuid.UUID, mes, ano int, valor string) {
	consumo := dec("10")
	id := uuid.New()
	f.leituraRepo.aguas[id] = &model.LeituraAgua{
		ID:              id,
		UnidadeID:       unidadeID,
		CondominioID:    f.cond.ID,
		MesReferencia:   mes,
		AnoReferencia:   ano,
		LeituraAnterior: dec("100"),
		LeituraAtual:    dec("110"),
		TarifaM3:        dec(valor).Div(consumo),
		ConsumoM3:       consumo,
		ValorCalculado:  dec(valor),
	}
}

func (f *faturamentoFixture) seedEnergia(unidadeID uuid.UUID, mes, ano int, garagem, consumo, valor string) {
	id := uuid.New()
	f.leituraRepo.energias[id] = &model.LeituraEnergia{
		ID:             id,
		UnidadeID:      unidadeID,
		CondominioID:   f.cond.ID,
		MesReferencia:  mes,
		AnoReferencia:  ano,
		Garagem:        garagem,
		ConsumoKWh:     dec(consumo),
		TarifaKWh:      dec("0.90"),
		ValorCalculado: dec(valor),
	}
}

func (f *faturamentoFixture) seedRateioPendente(t *testing.T, unidadeID uuid.UUID, mes, ano int, valor string) {
	t.Helper()
	despesa := model.Despesa{
		CondominioID:  f.cond.ID,
		MesReferencia: mes,
		AnoReferencia: ano,
		Categoria:     "manutencao",
		Descricao:     "Manutencao do elevador",
		ValorTotal:    dec(valor),
		Rateada:       true,
	}
	require.NoError(t, f.despesaRepo.Create(context.Background(), &despesa))
	require.NoError(t, f.despesaRepo.CreateRateiosTx(context.Background(), nil, []model.Rateio{{
		DespesaID:    despesa.ID,
		UnidadeID:    unidadeID,
		ValorRateado: dec(valor),
		Status:       model.RateioPendente,
	}}))
}

func TestProcessarCobrancasConsolidaUmBoletoPorUnidade(t *testing.T) {
	f := newFaturamentoFixture(t, 1)
	unidade := f.unidades[0]
	f.seedAgua(unidade.ID, 7, 2026, "50.00")
	f.seedRateioPendente(t, unidade.ID, 7, 2026, "30.00")

	resultado, err := f.svc.ProcessarCobrancas(context.Background(), dto.ProcessarFaturamentoRequest{Mes: 7, Ano: 2026})
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.Processadas)
	assert.Equal(t, 1, resultado.CobrancasCriadas)
	assert.Empty(t, resultado.Errors)

	cobrancas := f.cobrancaRepo.all()
	require.Len(t, cobrancas, 1)
	cobranca := cobrancas[0]

	assert.Equal(t, model.CobrancaBoletoMensal, cobranca.Tipo)
	assert.Equal(t, model.CobrancaPendente, cobranca.Status)
	assert.True(t, cobranca.Valor.Equal(dec("80.00")), "agua 50 + rateio 30, got %s", cobranca.Valor)

	require.NotNil(t, cobranca.Detalhamento.Agua)
	assert.True(t, cobranca.Detalhamento.Agua.Valor.Equal(dec("50.00")))
	require.Len(t, cobranca.Detalhamento.Despesas, 1)
	assert.Equal(t, "Manutencao do elevador", cobranca.Detalhamento.Despesas[0].Descricao)

	// Source rows are back-linked so re-runs and edits see them as billed.
	for _, agua := range f.leituraRepo.aguas {
		require.NotNil(t, agua.CobrancaID)
		assert.Equal(t, cobranca.ID, *agua.CobrancaID)
	}
	for _, rateio := range f.despesaRepo.rateios {
		assert.Equal(t, model.RateioCobrado, rateio.Status)
		require.NotNil(t, rateio.CobrancaID)
		assert.Equal(t, cobranca.ID, *rateio.CobrancaID)
	}
}

func TestProcessarCobrancasPulaUnidadeSemMovimento(t *testing.T) {
	f := newFaturamentoFixture(t, 1)

	resultado, err := f.svc.ProcessarCobrancas(context.Background(), dto.ProcessarFaturamentoRequest{Mes: 7, Ano: 2026})
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.Processadas)
	assert.Equal(t, 0, resultado.CobrancasCriadas)
	assert.Empty(t, f.cobrancaRepo.all())
}

func TestProcessarCobrancasReexecucaoNaoDuplicaBoleto(t *testing.T) {
	f := newFaturamentoFixture(t, 1)
	f.seedAgua(f.unidades[0].ID, 7, 2026, "50.00")
	ctx := context.Background()
	req := dto.ProcessarFaturamentoRequest{Mes: 7, Ano: 2026}

	primeiro, err := f.svc.ProcessarCobrancas(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, primeiro.CobrancasCriadas)

	segundo, err := f.svc.ProcessarCobrancas(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, segundo.CobrancasCriadas)
	assert.Empty(t, segundo.Errors)
	assert.Len(t, f.cobrancaRepo.all(), 1)
}

func TestProcessarCobrancasFalhaDeUmaUnidadeNaoAbortaLote(t *testing.T) {
	f := newFaturamentoFixture(t, 2)
	boa, ruim := f.unidades[0], f.unidades[1]
	f.seedAgua(boa.ID, 7, 2026, "50.00")
	f.seedAgua(ruim.ID, 7, 2026, "40.00")
	f.leituraRepo.energiaListErr[ruim.ID] = errBoom

	resultado, err := f.svc.ProcessarCobrancas(context.Background(), dto.ProcessarFaturamentoRequest{Mes: 7, Ano: 2026})
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.Processadas)
	assert.Equal(t, 1, resultado.CobrancasCriadas)
	require.Len(t, resultado.Errors, 1)
	assert.Contains(t, resultado.Errors[0], ruim.Identificacao())
	assert.Contains(t, resultado.Errors[0], f.cond.Nome)

	cobrancas := f.cobrancaRepo.all()
	require.Len(t, cobrancas, 1)
	assert.Equal(t, boa.ID, cobrancas[0].UnidadeID)
}

func TestProcessarCobrancasVencimentoViraOAno(t *testing.T) {
	f := newFaturamentoFixture(t, 1)
	f.seedAgua(f.unidades[0].ID, 12, 2025, "50.00")

	_, err := f.svc.ProcessarCobrancas(context.Background(), dto.ProcessarFaturamentoRequest{Mes: 12, Ano: 2025})
	require.NoError(t, err)

	cobrancas := f.cobrancaRepo.all()
	require.Len(t, cobrancas, 1)
	esperado := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, cobrancas[0].Vencimento.Equal(esperado),
		"dezembro vence em 10 de janeiro do ano seguinte, got %s", cobrancas[0].Vencimento)
}

func TestProcessarCobrancasSomaGaragensDeEnergia(t *testing.T) {
	f := newFaturamentoFixture(t, 1)
	unidade := f.unidades[0]
	f.seedEnergia(unidade.ID, 7, 2026, "G1", "100", "90.00")
	f.seedEnergia(unidade.ID, 7, 2026, "G2", "50", "45.00")

	resultado, err := f.svc.ProcessarCobrancas(context.Background(), dto.ProcessarFaturamentoRequest{Mes: 7, Ano: 2026})
	require.NoError(t, err)
	assert.Equal(t, 1, resultado.CobrancasCriadas)

	cobrancas := f.cobrancaRepo.all()
	require.Len(t, cobrancas, 1)
	energia := cobrancas[0].Detalhamento.Energia
	require.NotNil(t, energia)

	assert.True(t, energia.Valor.Equal(dec("135.00")))
	assert.True(t, energia.ConsumoKWh.Equal(dec("150")))
	garagens := strings.Split(energia.Garagens, ", ")
	assert.ElementsMatch(t, []string{"G1", "G2"}, garagens)
	assert.True(t, cobrancas[0].Valor.Equal(dec("135.00")))

	for _, e := range f.leituraRepo.energias {
		require.NotNil(t, e.CobrancaID)
	}
}

func TestProcessarCobrancasGasPrecificadoNaAgregacao(t *testing.T) {
	f := newFaturamentoFixture(t, 1)
	unidade := f.unidades[0]
	gasID := uuid.New()
	f.leituraRepo.gases[gasID] = &model.LeituraGas{
		ID:            gasID,
		UnidadeID:     unidade.ID,
		CondominioID:  f.cond.ID,
		MesReferencia: 7,
		AnoReferencia: 2026,
		ValorLeitura:  dec("12.40"),
	}

	// Without an active gas tarifa the reading stays out of the run.
	resultado, err := f.svc.ProcessarCobrancas(context.Background(), dto.ProcessarFaturamentoRequest{Mes: 7, Ano: 2026})
	require.NoError(t, err)
	assert.Equal(t, 0, resultado.CobrancasCriadas)

	f.tarifaRepo.tarifas = []model.Tarifa{{
		ID: uuid.New(), CondominioID: f.cond.ID, Tipo: model.TipoGas,
		ValorUnitario: dec("8.50"), UnidadeMedida: "kg", Ativa: true,
	}}

	resultado, err = f.svc.ProcessarCobrancas(context.Background(), dto.ProcessarFaturamentoRequest{Mes: 7, Ano: 2026})
	require.NoError(t, err)
	assert.Equal(t, 1, resultado.CobrancasCriadas)

	cobrancas := f.cobrancaRepo.all()
	require.Len(t, cobrancas, 1)
	gas := cobrancas[0].Detalhamento.Gas
	require.NotNil(t, gas)
	assert.True(t, gas.Valor.Equal(dec("105.40")), "12.40 kg x 8.50, got %s", gas.Valor)
	assert.Equal(t, "kg", gas.UnidadeMedida)
}

func TestProcessarCobrancasLockNegadoPulaCondominio(t *testing.T) {
	f := newFaturamentoFixture(t, 1)
	f.seedAgua(f.unidades[0].ID, 7, 2026, "50.00")
	f.cobrancaRepo.lockDenied = true

	resultado, err := f.svc.ProcessarCobrancas(context.Background(), dto.ProcessarFaturamentoRequest{Mes: 7, Ano: 2026})
	require.NoError(t, err)

	assert.Equal(t, 0, resultado.Processadas)
	assert.Equal(t, 0, resultado.CobrancasCriadas)
	require.Len(t, resultado.Errors, 1)
	assert.Contains(t, resultado.Errors[0], "ja em andamento")
	assert.Empty(t, f.cobrancaRepo.all())
}

func TestProcessarCobrancasEscopoCondominioInvalido(t *testing.T) {
	f := newFaturamentoFixture(t, 1)
	ctx := context.Background()

	_, err := f.svc.ProcessarCobrancas(ctx, dto.ProcessarFaturamentoRequest{
		Mes: 7, Ano: 2026, CondominioID: "nao-e-uuid",
	})
	assert.EqualError(t, err, "condominio_id invalido")

	_, err = f.svc.ProcessarCobrancas(ctx, dto.ProcessarFaturamentoRequest{
		Mes: 7, Ano: 2026, CondominioID: uuid.NewString(),
	})
	assert.EqualError(t, err, "condominio nao encontrado")
}
