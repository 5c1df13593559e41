package repository

import (
	"context"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeituraRepository persists the three reading stores. The per-unit period
// finders are the query keys the monthly aggregator depends on.
type LeituraRepository interface {
	// Agua
	CreateAgua(ctx context.Context, l *model.LeituraAgua) error
	FindAguaByID(ctx context.Context, id uuid.UUID) (*model.LeituraAgua, error)
	FindAguaByPeriodo(ctx context.Context, unidadeID uuid.UUID, mes, ano int) (*model.LeituraAgua, error)
	ListAguaByCondominioPeriodo(ctx context.Context, condominioID uuid.UUID, mes, ano int) ([]model.LeituraAgua, error)
	UpdateAgua(ctx context.Context, l *model.LeituraAgua) error
	DeleteAgua(ctx context.Context, id uuid.UUID) error
	VincularCobrancaAguaTx(ctx context.Context, tx *gorm.DB, id, cobrancaID uuid.UUID) error

	// Energia
	CreateEnergia(ctx context.Context, l *model.LeituraEnergia) error
	FindEnergiaByID(ctx context.Context, id uuid.UUID) (*model.LeituraEnergia, error)
	ListEnergiaByPeriodo(ctx context.Context, unidadeID uuid.UUID, mes, ano int) ([]model.LeituraEnergia, error)
	UpdateEnergia(ctx context.Context, l *model.LeituraEnergia) error
	DeleteEnergia(ctx context.Context, id uuid.UUID) error
	VincularCobrancaEnergiaTx(ctx context.Context, tx *gorm.DB, id, cobrancaID uuid.UUID) error

	// Gas
	CreateGas(ctx context.Context, l *model.LeituraGas) error
	FindGasByID(ctx context.Context, id uuid.UUID) (*model.LeituraGas, error)
	FindGasByPeriodo(ctx context.Context, unidadeID uuid.UUID, mes, ano int) (*model.LeituraGas, error)
	DeleteGas(ctx context.Context, id uuid.UUID) error
	VincularCobrancaGasTx(ctx context.Context, tx *gorm.DB, id, cobrancaID uuid.UUID) error
}

type leituraRepo struct{ db *gorm.DB }

func NewLeituraRepository(db *gorm.DB) LeituraRepository { return &leituraRepo{db: db} }

// ── Agua ─────────────────────────────────────────────────────────────────────

func (r *leituraRepo) CreateAgua(ctx context.Context, l *model.LeituraAgua) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *leituraRepo) FindAguaByID(ctx context.Context, id uuid.UUID) (*model.LeituraAgua, error) {
	var l model.LeituraAgua
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *leituraRepo) FindAguaByPeriodo(ctx context.Context, unidadeID uuid.UUID, mes, ano int) (*model.LeituraAgua, error) {
	var l model.LeituraAgua
	err := r.db.WithContext(ctx).
		Where("unidade_id = ? AND mes_referencia = ? AND ano_referencia = ?", unidadeID, mes, ano).
		First(&l).Error
	return &l, err
}

func (r *leituraRepo) ListAguaByCondominioPeriodo(ctx context.Context, condominioID uuid.UUID, mes, ano int) ([]model.LeituraAgua, error) {
	var leituras []model.LeituraAgua
	err := r.db.WithContext(ctx).Preload("Unidade").
		Where("condominio_id = ? AND mes_referencia = ? AND ano_referencia = ?", condominioID, mes, ano).
		Find(&leituras).Error
	return leituras, err
}

func (r *leituraRepo) UpdateAgua(ctx context.Context, l *model.LeituraAgua) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *leituraRepo) DeleteAgua(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LeituraAgua{}, id).Error
}

func (r *leituraRepo) VincularCobrancaAguaTx(ctx context.Context, tx *gorm.DB, id, cobrancaID uuid.UUID) error {
	return tx.WithContext(ctx).Model(&model.LeituraAgua{}).
		Where("id = ?", id).
		Update("cobranca_id", cobrancaID).Error
}

// ── Energia ──────────────────────────────────────────────────────────────────

func (r *leituraRepo) CreateEnergia(ctx context.Context, l *model.LeituraEnergia) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *leituraRepo) FindEnergiaByID(ctx context.Context, id uuid.UUID) (*model.LeituraEnergia, error) {
	var l model.LeituraEnergia
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *leituraRepo) ListEnergiaByPeriodo(ctx context.Context, unidadeID uuid.UUID, mes, ano int) ([]model.LeituraEnergia, error) {
	var leituras []model.LeituraEnergia
	err := r.db.WithContext(ctx).
		Where("unidade_id = ? AND mes_referencia = ? AND ano_referencia = ?", unidadeID, mes, ano).
		Order("garagem").
		Find(&leituras).Error
	return leituras, err
}

func (r *leituraRepo) UpdateEnergia(ctx context.Context, l *model.LeituraEnergia) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *leituraRepo) DeleteEnergia(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LeituraEnergia{}, id).Error
}

func (r *leituraRepo) VincularCobrancaEnergiaTx(ctx context.Context, tx *gorm.DB, id, cobrancaID uuid.UUID) error {
	return tx.WithContext(ctx).Model(&model.LeituraEnergia{}).
		Where("id = ?", id).
		Update("cobranca_id", cobrancaID).Error
}

// ── Gas ──────────────────────────────────────────────────────────────────────

func (r *leituraRepo) CreateGas(ctx context.Context, l *model.LeituraGas) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *leituraRepo) FindGasByID(ctx context.Context, id uuid.UUID) (*model.LeituraGas, error) {
	var l model.LeituraGas
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *leituraRepo) FindGasByPeriodo(ctx context.Context, unidadeID uuid.UUID, mes, ano int) (*model.LeituraGas, error) {
	var l model.LeituraGas
	err := r.db.WithContext(ctx).
		Where("unidade_id = ? AND mes_referencia = ? AND ano_referencia = ?", unidadeID, mes, ano).
		First(&l).Error
	return &l, err
}

func (r *leituraRepo) DeleteGas(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LeituraGas{}, id).Error
}

func (r *leituraRepo) VincularCobrancaGasTx(ctx context.Context, tx *gorm.DB, id, cobrancaID uuid.UUID) error {
	return tx.WithContext(ctx).Model(&model.LeituraGas{}).
		Where("id = ?", id).
		Update("cobranca_id", cobrancaID).Error
}
