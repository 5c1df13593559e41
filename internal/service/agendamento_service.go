package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/worker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AgendamentoService interface {
	Obter(ctx context.Context) (*dto.AgendamentoSchedule, error)
	// Atualizar persists the new schedule and reinstalls the cron entry.
	// Out-of-range fields are clamped, not rejected.
	Atualizar(ctx context.Context, dia, hora, minuto int) (*dto.AgendamentoSchedule, error)
}

type agendamentoService struct {
	repo      repository.AgendamentoRepository
	scheduler *worker.Scheduler
}

func NewAgendamentoService(repo repository.AgendamentoRepository, scheduler *worker.Scheduler) AgendamentoService {
	return &agendamentoService{repo: repo, scheduler: scheduler}
}

// Obter returns the stored schedule, falling back to the default (day 1 at
// 02:00) when none was ever saved.
func (s *agendamentoService) Obter(ctx context.Context) (*dto.AgendamentoSchedule, error) {
	ag, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		d := model.AgendamentoPadrao()
		return &dto.AgendamentoSchedule{Dia: d.Dia, Hora: d.Hora, Minuto: d.Minuto}, nil
	}
	if err != nil {
		return nil, err
	}
	return &dto.AgendamentoSchedule{Dia: ag.Dia, Hora: ag.Hora, Minuto: ag.Minuto}, nil
}

func (s *agendamentoService) Atualizar(ctx context.Context, dia, hora, minuto int) (*dto.AgendamentoSchedule, error) {
	// Day caps at 28 so the run never silently skips short months.
	dia = clamp(dia, 1, 28)
	hora = clamp(hora, 0, 23)
	minuto = clamp(minuto, 0, 59)

	ag := model.Agendamento{Dia: dia, Hora: hora, Minuto: minuto}
	if err := s.repo.Upsert(ctx, &ag); err != nil {
		return nil, err
	}

	if s.scheduler != nil {
		spec := CronSpec(dia, hora, minuto)
		if err := s.scheduler.Install(spec); err != nil {
			return nil, err
		}
		log.Info().Str("spec", spec).Msg("agendamento: cron reinstalado")
	}

	return &dto.AgendamentoSchedule{Dia: dia, Hora: hora, Minuto: minuto}, nil
}

// CronSpec renders the monthly schedule as a standard 5-field cron expression.
func CronSpec(dia, hora, minuto int) string {
	return fmt.Sprintf("%d %d %d * *", minuto, hora, dia)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
