package service_test

// Shared in-memory repository stubs for the service tests. Each stub keeps
// clones of whatever it stores so tests observe persisted state, not the
// caller's live pointers.

import (
	"context"
	"errors"
	"time"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── CondominioRepository ─────────────────────────────────────────────────────

type stubCondominioRepo struct {
	condominios []model.Condominio
	listErr     error
}

func (r *stubCondominioRepo) Create(_ context.Context, c *model.Condominio) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.condominios = append(r.condominios, *c)
	return nil
}

func (r *stubCondominioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Condominio, error) {
	for i := range r.condominios {
		if r.condominios[i].ID == id {
			c := r.condominios[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCondominioRepo) List(_ context.Context) ([]model.Condominio, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []model.Condominio
	for _, c := range r.condominios {
		if c.Ativo {
			out = append(out, c)
		}
	}
	return out, nil
}

var _ repository.CondominioRepository = (*stubCondominioRepo)(nil)

// ── UnidadeRepository ────────────────────────────────────────────────────────

type stubUnidadeRepo struct {
	unidades []model.Unidade
	listErr  map[uuid.UUID]error // per condominio
}

func (r *stubUnidadeRepo) Create(_ context.Context, u *model.Unidade) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.unidades = append(r.unidades, *u)
	return nil
}

func (r *stubUnidadeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Unidade, error) {
	for i := range r.unidades {
		if r.unidades[i].ID == id {
			u := r.unidades[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUnidadeRepo) ListByCondominio(_ context.Context, condominioID uuid.UUID) ([]model.Unidade, error) {
	if err := r.listErr[condominioID]; err != nil {
		return nil, err
	}
	var out []model.Unidade
	for _, u := range r.unidades {
		if u.CondominioID == condominioID && u.Ativo {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *stubUnidadeRepo) CountByCondominio(ctx context.Context, condominioID uuid.UUID) (int64, error) {
	unidades, err := r.ListByCondominio(ctx, condominioID)
	return int64(len(unidades)), err
}

var _ repository.UnidadeRepository = (*stubUnidadeRepo)(nil)

// ── TarifaRepository ─────────────────────────────────────────────────────────

type stubTarifaRepo struct {
	tarifas []model.Tarifa
}

func (r *stubTarifaRepo) DB() *gorm.DB { return nil }

func (r *stubTarifaRepo) FindAtiva(_ context.Context, condominioID uuid.UUID, tipo string) (*model.Tarifa, error) {
	for i := range r.tarifas {
		t := r.tarifas[i]
		if t.CondominioID == condominioID && t.Tipo == tipo && t.Ativa {
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTarifaRepo) DesativarTodasTx(_ context.Context, _ *gorm.DB, condominioID uuid.UUID, tipo string) error {
	for i := range r.tarifas {
		if r.tarifas[i].CondominioID == condominioID && r.tarifas[i].Tipo == tipo {
			r.tarifas[i].Ativa = false
		}
	}
	return nil
}

func (r *stubTarifaRepo) CreateTx(_ context.Context, _ *gorm.DB, t *model.Tarifa) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tarifas = append(r.tarifas, *t)
	return nil
}

func (r *stubTarifaRepo) ListHistorico(_ context.Context, condominioID uuid.UUID, tipo string) ([]model.Tarifa, error) {
	var out []model.Tarifa
	for _, t := range r.tarifas {
		if t.CondominioID == condominioID && t.Tipo == tipo {
			out = append(out, t)
		}
	}
	return out, nil
}

var _ repository.TarifaRepository = (*stubTarifaRepo)(nil)

// ── LeituraRepository ────────────────────────────────────────────────────────

type stubLeituraRepo struct {
	aguas    map[uuid.UUID]*model.LeituraAgua
	energias map[uuid.UUID]*model.LeituraEnergia
	gases    map[uuid.UUID]*model.LeituraGas

	// energiaListErr simulates a per-unit query failure in the aggregator.
	energiaListErr map[uuid.UUID]error
}

func newStubLeituraRepo() *stubLeituraRepo {
	return &stubLeituraRepo{
		aguas:          make(map[uuid.UUID]*model.LeituraAgua),
		energias:       make(map[uuid.UUID]*model.LeituraEnergia),
		gases:          make(map[uuid.UUID]*model.LeituraGas),
		energiaListErr: make(map[uuid.UUID]error),
	}
}

func (r *stubLeituraRepo) CreateAgua(_ context.Context, l *model.LeituraAgua) error {
	for _, existing := range r.aguas {
		if existing.UnidadeID == l.UnidadeID &&
			existing.MesReferencia == l.MesReferencia && existing.AnoReferencia == l.AnoReferencia {
			return gorm.ErrDuplicatedKey
		}
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	clone := *l
	r.aguas[l.ID] = &clone
	return nil
}

func (r *stubLeituraRepo) FindAguaByID(_ context.Context, id uuid.UUID) (*model.LeituraAgua, error) {
	l, ok := r.aguas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLeituraRepo) FindAguaByPeriodo(_ context.Context, unidadeID uuid.UUID, mes, ano int) (*model.LeituraAgua, error) {
	for _, l := range r.aguas {
		if l.UnidadeID == unidadeID && l.MesReferencia == mes && l.AnoReferencia == ano {
			clone := *l
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLeituraRepo) ListAguaByCondominioPeriodo(_ context.Context, condominioID uuid.UUID, mes, ano int) ([]model.LeituraAgua, error) {
	var out []model.LeituraAgua
	for _, l := range r.aguas {
		if l.CondominioID == condominioID && l.MesReferencia == mes && l.AnoReferencia == ano {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLeituraRepo) UpdateAgua(_ context.Context, l *model.LeituraAgua) error {
	clone := *l
	r.aguas[l.ID] = &clone
	return nil
}

func (r *stubLeituraRepo) DeleteAgua(_ context.Context, id uuid.UUID) error {
	delete(r.aguas, id)
	return nil
}

func (r *stubLeituraRepo) VincularCobrancaAguaTx(_ context.Context, _ *gorm.DB, id, cobrancaID uuid.UUID) error {
	l, ok := r.aguas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c := cobrancaID
	l.CobrancaID = &c
	return nil
}

func (r *stubLeituraRepo) CreateEnergia(_ context.Context, l *model.LeituraEnergia) error {
	for _, existing := range r.energias {
		if existing.UnidadeID == l.UnidadeID && existing.Garagem == l.Garagem &&
			existing.MesReferencia == l.MesReferencia && existing.AnoReferencia == l.AnoReferencia {
			return gorm.ErrDuplicatedKey
		}
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	clone := *l
	r.energias[l.ID] = &clone
	return nil
}

func (r *stubLeituraRepo) FindEnergiaByID(_ context.Context, id uuid.UUID) (*model.LeituraEnergia, error) {
	l, ok := r.energias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLeituraRepo) ListEnergiaByPeriodo(_ context.Context, unidadeID uuid.UUID, mes, ano int) ([]model.LeituraEnergia, error) {
	if err := r.energiaListErr[unidadeID]; err != nil {
		return nil, err
	}
	var out []model.LeituraEnergia
	for _, l := range r.energias {
		if l.UnidadeID == unidadeID && l.MesReferencia == mes && l.AnoReferencia == ano {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLeituraRepo) UpdateEnergia(_ context.Context, l *model.LeituraEnergia) error {
	clone := *l
	r.energias[l.ID] = &clone
	return nil
}

func (r *stubLeituraRepo) DeleteEnergia(_ context.Context, id uuid.UUID) error {
	delete(r.energias, id)
	return nil
}

func (r *stubLeituraRepo) VincularCobrancaEnergiaTx(_ context.Context, _ *gorm.DB, id, cobrancaID uuid.UUID) error {
	l, ok := r.energias[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c := cobrancaID
	l.CobrancaID = &c
	return nil
}

func (r *stubLeituraRepo) CreateGas(_ context.Context, l *model.LeituraGas) error {
	for _, existing := range r.gases {
		if existing.UnidadeID == l.UnidadeID &&
			existing.MesReferencia == l.MesReferencia && existing.AnoReferencia == l.AnoReferencia {
			return gorm.ErrDuplicatedKey
		}
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	clone := *l
	r.gases[l.ID] = &clone
	return nil
}

func (r *stubLeituraRepo) FindGasByID(_ context.Context, id uuid.UUID) (*model.LeituraGas, error) {
	l, ok := r.gases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLeituraRepo) FindGasByPeriodo(_ context.Context, unidadeID uuid.UUID, mes, ano int) (*model.LeituraGas, error) {
	for _, l := range r.gases {
		if l.UnidadeID == unidadeID && l.MesReferencia == mes && l.AnoReferencia == ano {
			clone := *l
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubLeituraRepo) DeleteGas(_ context.Context, id uuid.UUID) error {
	delete(r.gases, id)
	return nil
}

func (r *stubLeituraRepo) VincularCobrancaGasTx(_ context.Context, _ *gorm.DB, id, cobrancaID uuid.UUID) error {
	l, ok := r.gases[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c := cobrancaID
	l.CobrancaID = &c
	return nil
}

var _ repository.LeituraRepository = (*stubLeituraRepo)(nil)

// ── DespesaRepository ────────────────────────────────────────────────────────

type stubDespesaRepo struct {
	despesas map[uuid.UUID]*model.Despesa
	rateios  map[uuid.UUID]*model.Rateio
}

func newStubDespesaRepo() *stubDespesaRepo {
	return &stubDespesaRepo{
		despesas: make(map[uuid.UUID]*model.Despesa),
		rateios:  make(map[uuid.UUID]*model.Rateio),
	}
}

func (r *stubDespesaRepo) DB() *gorm.DB { return nil }

func (r *stubDespesaRepo) Create(_ context.Context, d *model.Despesa) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = time.Now()
	clone := *d
	r.despesas[d.ID] = &clone
	return nil
}

func (r *stubDespesaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Despesa, error) {
	d, ok := r.despesas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDespesaRepo) ListByCondominio(_ context.Context, condominioID uuid.UUID, mes, ano int) ([]model.Despesa, error) {
	var out []model.Despesa
	for _, d := range r.despesas {
		if d.CondominioID != condominioID {
			continue
		}
		if mes > 0 && ano > 0 && (d.MesReferencia != mes || d.AnoReferencia != ano) {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDespesaRepo) MarcarRateadaTx(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	d, ok := r.despesas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Rateada = true
	return nil
}

func (r *stubDespesaRepo) CreateRateiosTx(_ context.Context, _ *gorm.DB, rateios []model.Rateio) error {
	for i := range rateios {
		for _, existing := range r.rateios {
			if existing.DespesaID == rateios[i].DespesaID && existing.UnidadeID == rateios[i].UnidadeID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	for i := range rateios {
		if rateios[i].ID == uuid.Nil {
			rateios[i].ID = uuid.New()
		}
		clone := rateios[i]
		r.rateios[clone.ID] = &clone
	}
	return nil
}

func (r *stubDespesaRepo) ListRateiosPendentesByDespesa(_ context.Context, despesaID uuid.UUID) ([]model.Rateio, error) {
	var out []model.Rateio
	for _, rt := range r.rateios {
		if rt.DespesaID == despesaID && rt.Status == model.RateioPendente {
			clone := *rt
			if d, ok := r.despesas[rt.DespesaID]; ok {
				dClone := *d
				clone.Despesa = &dClone
			}
			out = append(out, clone)
		}
	}
	return out, nil
}

func (r *stubDespesaRepo) ListRateiosPendentesByUnidadePeriodo(_ context.Context, unidadeID uuid.UUID, mes, ano int) ([]model.Rateio, error) {
	var out []model.Rateio
	for _, rt := range r.rateios {
		if rt.UnidadeID != unidadeID || rt.Status != model.RateioPendente {
			continue
		}
		d, ok := r.despesas[rt.DespesaID]
		if !ok || d.MesReferencia != mes || d.AnoReferencia != ano {
			continue
		}
		clone := *rt
		dClone := *d
		clone.Despesa = &dClone
		out = append(out, clone)
	}
	return out, nil
}

func (r *stubDespesaRepo) MarcarRateioCobradoTx(_ context.Context, _ *gorm.DB, rateioID, cobrancaID uuid.UUID) error {
	rt, ok := r.rateios[rateioID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c := cobrancaID
	rt.Status = model.RateioCobrado
	rt.CobrancaID = &c
	return nil
}

var _ repository.DespesaRepository = (*stubDespesaRepo)(nil)

// ── CobrancaRepository ───────────────────────────────────────────────────────

type stubCobrancaRepo struct {
	cobrancas  map[uuid.UUID]*model.Cobranca
	lockDenied bool
	createErr  error
}

func newStubCobrancaRepo() *stubCobrancaRepo {
	return &stubCobrancaRepo{cobrancas: make(map[uuid.UUID]*model.Cobranca)}
}

func (r *stubCobrancaRepo) DB() *gorm.DB { return nil }

func (r *stubCobrancaRepo) Create(ctx context.Context, c *model.Cobranca) error {
	return r.CreateTx(ctx, nil, c)
}

func (r *stubCobrancaRepo) CreateTx(_ context.Context, _ *gorm.DB, c *model.Cobranca) error {
	if r.createErr != nil {
		return r.createErr
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	clone := *c
	r.cobrancas[c.ID] = &clone
	return nil
}

func (r *stubCobrancaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cobranca, error) {
	c, ok := r.cobrancas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCobrancaRepo) ExisteBoletoMensal(_ context.Context, unidadeID uuid.UUID, mes, ano int) (bool, error) {
	for _, c := range r.cobrancas {
		if c.UnidadeID == unidadeID && c.Tipo == model.CobrancaBoletoMensal &&
			c.MesReferencia == mes && c.AnoReferencia == ano &&
			c.Status != model.CobrancaCancelada {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCobrancaRepo) ListByUnidade(_ context.Context, unidadeID uuid.UUID, status string) ([]model.Cobranca, error) {
	var out []model.Cobranca
	for _, c := range r.cobrancas {
		if c.UnidadeID != unidadeID {
			continue
		}
		if status != "" && status != "all" && c.Status != status {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCobrancaRepo) UpdatePDFPath(_ context.Context, id uuid.UUID, path string) error {
	c, ok := r.cobrancas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p := path
	c.PDFPath = &p
	return nil
}

func (r *stubCobrancaRepo) TryAdvisoryLock(_ context.Context, _ int64) (bool, error) {
	return !r.lockDenied, nil
}

func (r *stubCobrancaRepo) AdvisoryUnlock(_ context.Context, _ int64) error { return nil }

// all returns the stored charges (test helper).
func (r *stubCobrancaRepo) all() []model.Cobranca {
	var out []model.Cobranca
	for _, c := range r.cobrancas {
		out = append(out, *c)
	}
	return out
}

var _ repository.CobrancaRepository = (*stubCobrancaRepo)(nil)

// ── AgendamentoRepository ────────────────────────────────────────────────────

type stubAgendamentoRepo struct {
	stored *model.Agendamento
	getErr error
}

func (r *stubAgendamentoRepo) Get(_ context.Context) (*model.Agendamento, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.stored == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubAgendamentoRepo) Upsert(_ context.Context, a *model.Agendamento) error {
	if r.stored != nil {
		a.ID = r.stored.ID
	} else if a.ID == 0 {
		a.ID = 1
	}
	clone := *a
	r.stored = &clone
	return nil
}

var _ repository.AgendamentoRepository = (*stubAgendamentoRepo)(nil)

var errBoom = errors.New("boom")
