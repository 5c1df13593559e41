package repository

import (
	"context"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnidadeRepository interface {
	Create(ctx context.Context, u *model.Unidade) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Unidade, error)
	ListByCondominio(ctx context.Context, condominioID uuid.UUID) ([]model.Unidade, error)
	CountByCondominio(ctx context.Context, condominioID uuid.UUID) (int64, error)
}

type unidadeRepo struct{ db *gorm.DB }

func NewUnidadeRepository(db *gorm.DB) UnidadeRepository { return &unidadeRepo{db: db} }

func (r *unidadeRepo) Create(ctx context.Context, u *model.Unidade) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *unidadeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Unidade, error) {
	var u model.Unidade
	err := r.db.WithContext(ctx).Preload("Condominio").First(&u, id).Error
	return &u, err
}

func (r *unidadeRepo) ListByCondominio(ctx context.Context, condominioID uuid.UUID) ([]model.Unidade, error) {
	var unidades []model.Unidade
	err := r.db.WithContext(ctx).
		Where("condominio_id = ? AND ativo = true", condominioID).
		Order("bloco NULLS FIRST, numero").
		Find(&unidades).Error
	return unidades, err
}

func (r *unidadeRepo) CountByCondominio(ctx context.Context, condominioID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Unidade{}).
		Where("condominio_id = ? AND ativo = true", condominioID).
		Count(&count).Error
	return count, err
}
