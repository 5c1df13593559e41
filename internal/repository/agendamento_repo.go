package repository

import (
	"context"
	"errors"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"gorm.io/gorm"
)

type AgendamentoRepository interface {
	// Get returns the singleton schedule row, or gorm.ErrRecordNotFound when
	// the schedule was never configured.
	Get(ctx context.Context) (*model.Agendamento, error)
	Upsert(ctx context.Context, a *model.Agendamento) error
}

type agendamentoRepo struct{ db *gorm.DB }

func NewAgendamentoRepository(db *gorm.DB) AgendamentoRepository { return &agendamentoRepo{db: db} }

func (r *agendamentoRepo) Get(ctx context.Context) (*model.Agendamento, error) {
	var a model.Agendamento
	err := r.db.WithContext(ctx).First(&a).Error
	return &a, err
}

func (r *agendamentoRepo) Upsert(ctx context.Context, a *model.Agendamento) error {
	var existing model.Agendamento
	err := r.db.WithContext(ctx).First(&existing).Error
	switch {
	case err == nil:
		a.ID = existing.ID
		return r.db.WithContext(ctx).Save(a).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(a).Error
	default:
		return err
	}
}
