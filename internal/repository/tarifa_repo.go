package repository

import (
	"context"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TarifaRepository interface {
	// FindAtiva returns the single active tarifa for (condominio, tipo),
	// or gorm.ErrRecordNotFound.
	FindAtiva(ctx context.Context, condominioID uuid.UUID, tipo string) (*model.Tarifa, error)
	// DesativarTodasTx flips every active tarifa of (condominio, tipo) to
	// inactive. Must run inside the same transaction as CreateTx.
	DesativarTodasTx(ctx context.Context, tx *gorm.DB, condominioID uuid.UUID, tipo string) error
	CreateTx(ctx context.Context, tx *gorm.DB, t *model.Tarifa) error
	ListHistorico(ctx context.Context, condominioID uuid.UUID, tipo string) ([]model.Tarifa, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type tarifaRepo struct{ db *gorm.DB }

func NewTarifaRepository(db *gorm.DB) TarifaRepository { return &tarifaRepo{db: db} }

func (r *tarifaRepo) DB() *gorm.DB { return r.db }

func (r *tarifaRepo) FindAtiva(ctx context.Context, condominioID uuid.UUID, tipo string) (*model.Tarifa, error) {
	var t model.Tarifa
	err := r.db.WithContext(ctx).
		Where("condominio_id = ? AND tipo = ? AND ativa = true", condominioID, tipo).
		First(&t).Error
	return &t, err
}

func (r *tarifaRepo) DesativarTodasTx(ctx context.Context, tx *gorm.DB, condominioID uuid.UUID, tipo string) error {
	return tx.WithContext(ctx).Model(&model.Tarifa{}).
		Where("condominio_id = ? AND tipo = ? AND ativa = true", condominioID, tipo).
		Update("ativa", false).Error
}

func (r *tarifaRepo) CreateTx(ctx context.Context, tx *gorm.DB, t *model.Tarifa) error {
	return tx.WithContext(ctx).Create(t).Error
}

func (r *tarifaRepo) ListHistorico(ctx context.Context, condominioID uuid.UUID, tipo string) ([]model.Tarifa, error) {
	var tarifas []model.Tarifa
	err := r.db.WithContext(ctx).
		Where("condominio_id = ? AND tipo = ?", condominioID, tipo).
		Order("created_at DESC").
		Find(&tarifas).Error
	return tarifas, err
}
