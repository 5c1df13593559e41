package repository

import (
	"context"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CobrancaRepository interface {
	Create(ctx context.Context, c *model.Cobranca) error
	CreateTx(ctx context.Context, tx *gorm.DB, c *model.Cobranca) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cobranca, error)
	// ExisteBoletoMensal is the aggregator's idempotency guard: true when a
	// consolidated charge already exists for (unidade, mes, ano).
	ExisteBoletoMensal(ctx context.Context, unidadeID uuid.UUID, mes, ano int) (bool, error)
	ListByUnidade(ctx context.Context, unidadeID uuid.UUID, status string) ([]model.Cobranca, error)
	UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error

	// TryAdvisoryLock serializes aggregator runs per (condominio, periodo).
	// Session-scoped: the caller must AdvisoryUnlock with the same key.
	TryAdvisoryLock(ctx context.Context, key int64) (bool, error)
	AdvisoryUnlock(ctx context.Context, key int64) error

	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type cobrancaRepo struct{ db *gorm.DB }

func NewCobrancaRepository(db *gorm.DB) CobrancaRepository { return &cobrancaRepo{db: db} }

func (r *cobrancaRepo) DB() *gorm.DB { return r.db }

func (r *cobrancaRepo) Create(ctx context.Context, c *model.Cobranca) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cobrancaRepo) CreateTx(ctx context.Context, tx *gorm.DB, c *model.Cobranca) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *cobrancaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cobranca, error) {
	var c model.Cobranca
	err := r.db.WithContext(ctx).Preload("Unidade").First(&c, id).Error
	return &c, err
}

func (r *cobrancaRepo) ExisteBoletoMensal(ctx context.Context, unidadeID uuid.UUID, mes, ano int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cobranca{}).
		Where("unidade_id = ? AND tipo = ? AND mes_referencia = ? AND ano_referencia = ?",
			unidadeID, model.CobrancaBoletoMensal, mes, ano).
		Where("status <> ?", model.CobrancaCancelada).
		Count(&count).Error
	return count > 0, err
}

func (r *cobrancaRepo) ListByUnidade(ctx context.Context, unidadeID uuid.UUID, status string) ([]model.Cobranca, error) {
	var cobrancas []model.Cobranca
	q := r.db.WithContext(ctx).Where("unidade_id = ?", unidadeID)
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("vencimento DESC").Find(&cobrancas).Error
	return cobrancas, err
}

func (r *cobrancaRepo) UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.Cobranca{}).
		Where("id = ?", id).
		Update("pdf_path", path).Error
}

func (r *cobrancaRepo) TryAdvisoryLock(ctx context.Context, key int64) (bool, error) {
	var locked bool
	err := r.db.WithContext(ctx).Raw("SELECT pg_try_advisory_lock(?)", key).Scan(&locked).Error
	return locked, err
}

func (r *cobrancaRepo) AdvisoryUnlock(ctx context.Context, key int64) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_unlock(?)", key).Error
}
