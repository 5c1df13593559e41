package service_test

import (
	"context"
	"testing"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObterAgendamentoPadraoQuandoNuncaSalvo(t *testing.T) {
	svc := service.NewAgendamentoService(&stubAgendamentoRepo{}, nil)

	schedule, err := svc.Obter(context.Background())
	require.NoError(t, err)

	// Dia 1 as 02:00
	assert.Equal(t, 1, schedule.Dia)
	assert.Equal(t, 2, schedule.Hora)
	assert.Equal(t, 0, schedule.Minuto)
}

func TestAtualizarAgendamentoPersisteEReinstalaCron(t *testing.T) {
	repo := &stubAgendamentoRepo{}
	scheduler := worker.NewScheduler(func() {})
	svc := service.NewAgendamentoService(repo, scheduler)
	ctx := context.Background()

	schedule, err := svc.Atualizar(ctx, 5, 3, 30)
	require.NoError(t, err)
	assert.Equal(t, 5, schedule.Dia)
	assert.Equal(t, 3, schedule.Hora)
	assert.Equal(t, 30, schedule.Minuto)

	lido, err := svc.Obter(ctx)
	require.NoError(t, err)
	assert.Equal(t, schedule, lido)
}

// Out-of-range values are clamped, never rejected: day caps at 28 so the run
// fires in February too.
func TestAtualizarAgendamentoClampaForaDoIntervalo(t *testing.T) {
	svc := service.NewAgendamentoService(&stubAgendamentoRepo{}, worker.NewScheduler(func() {}))

	schedule, err := svc.Atualizar(context.Background(), 31, 25, 90)
	require.NoError(t, err)
	assert.Equal(t, 28, schedule.Dia)
	assert.Equal(t, 23, schedule.Hora)
	assert.Equal(t, 59, schedule.Minuto)

	schedule, err = svc.Atualizar(context.Background(), 0, -1, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, schedule.Dia)
	assert.Equal(t, 0, schedule.Hora)
	assert.Equal(t, 0, schedule.Minuto)
}

func TestCronSpecOrdemDosCampos(t *testing.T) {
	// minuto, hora, dia do mes
	assert.Equal(t, "0 2 1 * *", service.CronSpec(1, 2, 0))
	assert.Equal(t, "30 3 5 * *", service.CronSpec(5, 3, 30))

	// The rendered spec must be a valid cron expression.
	scheduler := worker.NewScheduler(func() {})
	assert.NoError(t, scheduler.Install(service.CronSpec(28, 23, 59)))
}
