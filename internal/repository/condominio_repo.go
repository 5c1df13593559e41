package repository

import (
	"context"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CondominioRepository interface {
	Create(ctx context.Context, c *model.Condominio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Condominio, error)
	List(ctx context.Context) ([]model.Condominio, error)
}

type condominioRepo struct{ db *gorm.DB }

func NewCondominioRepository(db *gorm.DB) CondominioRepository { return &condominioRepo{db: db} }

func (r *condominioRepo) Create(ctx context.Context, c *model.Condominio) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *condominioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Condominio, error) {
	var c model.Condominio
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *condominioRepo) List(ctx context.Context) ([]model.Condominio, error) {
	var condominios []model.Condominio
	err := r.db.WithContext(ctx).Where("ativo = true").Order("nome").Find(&condominios).Error
	return condominios, err
}
