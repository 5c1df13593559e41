package repository

import (
	"context"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DespesaRepository interface {
	Create(ctx context.Context, d *model.Despesa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Despesa, error)
	ListByCondominio(ctx context.Context, condominioID uuid.UUID, mes, ano int) ([]model.Despesa, error)
	MarcarRateadaTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error

	CreateRateiosTx(ctx context.Context, tx *gorm.DB, rateios []model.Rateio) error
	ListRateiosPendentesByDespesa(ctx context.Context, despesaID uuid.UUID) ([]model.Rateio, error)
	// ListRateiosPendentesByUnidadePeriodo returns pending apportionments whose
	// parent despesa matches (mes, ano) — the aggregator's query key.
	ListRateiosPendentesByUnidadePeriodo(ctx context.Context, unidadeID uuid.UUID, mes, ano int) ([]model.Rateio, error)
	MarcarRateioCobradoTx(ctx context.Context, tx *gorm.DB, rateioID, cobrancaID uuid.UUID) error

	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type despesaRepo struct{ db *gorm.DB }

func NewDespesaRepository(db *gorm.DB) DespesaRepository { return &despesaRepo{db: db} }

func (r *despesaRepo) DB() *gorm.DB { return r.db }

func (r *despesaRepo) Create(ctx context.Context, d *model.Despesa) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *despesaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Despesa, error) {
	var d model.Despesa
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *despesaRepo) ListByCondominio(ctx context.Context, condominioID uuid.UUID, mes, ano int) ([]model.Despesa, error) {
	var despesas []model.Despesa
	q := r.db.WithContext(ctx).Where("condominio_id = ?", condominioID)
	if mes > 0 && ano > 0 {
		q = q.Where("mes_referencia = ? AND ano_referencia = ?", mes, ano)
	}
	err := q.Order("created_at DESC").Find(&despesas).Error
	return despesas, err
}

func (r *despesaRepo) MarcarRateadaTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return tx.WithContext(ctx).Model(&model.Despesa{}).
		Where("id = ?", id).
		Update("rateada", true).Error
}

func (r *despesaRepo) CreateRateiosTx(ctx context.Context, tx *gorm.DB, rateios []model.Rateio) error {
	return tx.WithContext(ctx).Create(&rateios).Error
}

func (r *despesaRepo) ListRateiosPendentesByDespesa(ctx context.Context, despesaID uuid.UUID) ([]model.Rateio, error) {
	var rateios []model.Rateio
	err := r.db.WithContext(ctx).Preload("Despesa").Preload("Unidade").
		Where("despesa_id = ? AND status = ?", despesaID, model.RateioPendente).
		Find(&rateios).Error
	return rateios, err
}

func (r *despesaRepo) ListRateiosPendentesByUnidadePeriodo(ctx context.Context, unidadeID uuid.UUID, mes, ano int) ([]model.Rateio, error) {
	var rateios []model.Rateio
	err := r.db.WithContext(ctx).Preload("Despesa").
		Joins("JOIN despesas ON despesas.id = rateios.despesa_id").
		Where("rateios.unidade_id = ? AND rateios.status = ?", unidadeID, model.RateioPendente).
		Where("despesas.mes_referencia = ? AND despesas.ano_referencia = ?", mes, ano).
		Find(&rateios).Error
	return rateios, err
}

func (r *despesaRepo) MarcarRateioCobradoTx(ctx context.Context, tx *gorm.DB, rateioID, cobrancaID uuid.UUID) error {
	return tx.WithContext(ctx).Model(&model.Rateio{}).
		Where("id = ?", rateioID).
		Updates(map[string]interface{}{
			"status":      model.RateioCobrado,
			"cobranca_id": cobrancaID,
		}).Error
}
