package service_test

import (
	"context"
	"testing"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leituraFixture struct {
	svc         service.LeituraService
	leituraRepo *stubLeituraRepo
	unidade     model.Unidade
}

// newLeituraFixture wires one condominium with a single active unit, plus an
// active water (5.00/m3) and electricity (0.90/kWh) tarifa.
func newLeituraFixture(t *testing.T) *leituraFixture {
	t.Helper()
	condominioID := uuid.New()
	unidade := model.Unidade{ID: uuid.New(), CondominioID: condominioID, Numero: "101", Ativo: true}

	unidadeRepo := &stubUnidadeRepo{unidades: []model.Unidade{unidade}}
	tarifaRepo := &stubTarifaRepo{tarifas: []model.Tarifa{
		{ID: uuid.New(), CondominioID: condominioID, Tipo: model.TipoAgua, ValorUnitario: dec("5.00"), UnidadeMedida: "m3", Ativa: true},
		{ID: uuid.New(), CondominioID: condominioID, Tipo: model.TipoEnergia, ValorUnitario: dec("0.90"), UnidadeMedida: "kwh", Ativa: true},
	}}
	leituraRepo := newStubLeituraRepo()

	return &leituraFixture{
		svc:         service.NewLeituraService(leituraRepo, unidadeRepo, tarifaRepo),
		leituraRepo: leituraRepo,
		unidade:     unidade,
	}
}

func TestRegistrarAguaCalculaConsumoEValor(t *testing.T) {
	f := newLeituraFixture(t)

	resp, err := f.svc.RegistrarAgua(context.Background(), dto.RegistrarLeituraRequest{
		UnidadeID:       f.unidade.ID.String(),
		MesReferencia:   7,
		AnoReferencia:   2026,
		LeituraAnterior: dec("150.5"),
		LeituraAtual:    dec("162.3"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Consumo.Equal(dec("11.8")), "consumo = atual - anterior, got %s", resp.Consumo)
	assert.True(t, resp.ValorCalculado.Equal(dec("59.00")), "valor = consumo x tarifa, got %s", resp.ValorCalculado)
	assert.True(t, resp.Tarifa.Equal(dec("5.00")), "tarifa vigente congelada na leitura")
}

func TestRegistrarAguaDuplicadaNoPeriodo(t *testing.T) {
	f := newLeituraFixture(t)
	req := dto.RegistrarLeituraRequest{
		UnidadeID:       f.unidade.ID.String(),
		MesReferencia:   7,
		AnoReferencia:   2026,
		LeituraAnterior: dec("100"),
		LeituraAtual:    dec("110"),
	}

	_, err := f.svc.RegistrarAgua(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.RegistrarAgua(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrLeituraDuplicada)
}

func TestRegistrarAguaSemTarifaAtiva(t *testing.T) {
	condominioID := uuid.New()
	unidade := model.Unidade{ID: uuid.New(), CondominioID: condominioID, Numero: "101", Ativo: true}
	svc := service.NewLeituraService(
		newStubLeituraRepo(),
		&stubUnidadeRepo{unidades: []model.Unidade{unidade}},
		&stubTarifaRepo{},
	)

	_, err := svc.RegistrarAgua(context.Background(), dto.RegistrarLeituraRequest{
		UnidadeID:     unidade.ID.String(),
		MesReferencia: 7, AnoReferencia: 2026,
		LeituraAnterior: dec("100"), LeituraAtual: dec("110"),
	})
	assert.ErrorIs(t, err, service.ErrTarifaNaoEncontrada)
}

func TestAtualizarAguaRecalcula(t *testing.T) {
	f := newLeituraFixture(t)
	ctx := context.Background()

	criada, err := f.svc.RegistrarAgua(ctx, dto.RegistrarLeituraRequest{
		UnidadeID:     f.unidade.ID.String(),
		MesReferencia: 7, AnoReferencia: 2026,
		LeituraAnterior: dec("100"), LeituraAtual: dec("110"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(criada.ID)

	atualizada, err := f.svc.AtualizarAgua(ctx, id, dto.AtualizarLeituraRequest{
		LeituraAnterior: dec("100"),
		LeituraAtual:    dec("112.5"),
	})
	require.NoError(t, err)
	assert.True(t, atualizada.Consumo.Equal(dec("12.5")))
	assert.True(t, atualizada.ValorCalculado.Equal(dec("62.50")))
}

func TestLeituraFaturadaBloqueiaEdicaoEExclusao(t *testing.T) {
	f := newLeituraFixture(t)
	ctx := context.Background()

	criada, err := f.svc.RegistrarAgua(ctx, dto.RegistrarLeituraRequest{
		UnidadeID:     f.unidade.ID.String(),
		MesReferencia: 7, AnoReferencia: 2026,
		LeituraAnterior: dec("100"), LeituraAtual: dec("110"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(criada.ID)

	// Folded into a charge: the reading is now locked.
	require.NoError(t, f.leituraRepo.VincularCobrancaAguaTx(ctx, nil, id, uuid.New()))

	_, err = f.svc.AtualizarAgua(ctx, id, dto.AtualizarLeituraRequest{
		LeituraAnterior: dec("100"), LeituraAtual: dec("120"),
	})
	assert.ErrorIs(t, err, service.ErrLeituraFaturada)

	err = f.svc.ExcluirAgua(ctx, id)
	assert.ErrorIs(t, err, service.ErrLeituraFaturada)
}

func TestRegistrarEnergiaPorGaragem(t *testing.T) {
	f := newLeituraFixture(t)
	ctx := context.Background()

	g1, err := f.svc.RegistrarEnergia(ctx, dto.RegistrarLeituraRequest{
		UnidadeID:     f.unidade.ID.String(),
		MesReferencia: 7, AnoReferencia: 2026,
		Garagem:         "G1",
		LeituraAnterior: dec("2000"), LeituraAtual: dec("2100"),
	})
	require.NoError(t, err)
	assert.True(t, g1.ValorCalculado.Equal(dec("90.00")))

	// A second garage of the same unit is a distinct meter, not a duplicate.
	_, err = f.svc.RegistrarEnergia(ctx, dto.RegistrarLeituraRequest{
		UnidadeID:     f.unidade.ID.String(),
		MesReferencia: 7, AnoReferencia: 2026,
		Garagem:         "G2",
		LeituraAnterior: dec("500"), LeituraAtual: dec("550"),
	})
	require.NoError(t, err)

	// Same garage twice in the period is.
	_, err = f.svc.RegistrarEnergia(ctx, dto.RegistrarLeituraRequest{
		UnidadeID:     f.unidade.ID.String(),
		MesReferencia: 7, AnoReferencia: 2026,
		Garagem:         "G1",
		LeituraAnterior: dec("2100"), LeituraAtual: dec("2200"),
	})
	assert.ErrorIs(t, err, service.ErrLeituraDuplicada)
}

func TestRegistrarGasArmazenaSemPrecificar(t *testing.T) {
	f := newLeituraFixture(t)

	resp, err := f.svc.RegistrarGas(context.Background(), dto.RegistrarLeituraGasRequest{
		UnidadeID:     f.unidade.ID.String(),
		MesReferencia: 7, AnoReferencia: 2026,
		ValorLeitura: dec("12.40"),
	})
	require.NoError(t, err)
	assert.True(t, resp.ValorLeitura.Equal(dec("12.40")))

	// Gas needs no active tarifa at entry time: pricing happens on aggregation.
	_, err = f.svc.RegistrarGas(context.Background(), dto.RegistrarLeituraGasRequest{
		UnidadeID:     f.unidade.ID.String(),
		MesReferencia: 7, AnoReferencia: 2026,
		ValorLeitura: dec("9.00"),
	})
	assert.ErrorIs(t, err, service.ErrLeituraDuplicada)
}
