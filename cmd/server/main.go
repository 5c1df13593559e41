package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/config"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/dto"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/infra"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/router"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The scheduler fires the monthly run; its target service is wired below
	// once the composition root has built it.
	var deps *router.Deps
	scheduler := worker.NewScheduler(func() {
		if deps == nil {
			return
		}
		runCtx, runCancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer runCancel()
		resultado, err := deps.Faturamento.ProcessarCobrancas(runCtx, dto.ProcessarFaturamentoRequest{})
		if err != nil {
			log.Error().Err(err).Msg("scheduled faturamento failed")
			return
		}
		log.Info().
			Int("processadas", resultado.Processadas).
			Int("cobrancas_criadas", resultado.CobrancasCriadas).
			Int("erros", len(resultado.Errors)).
			Msg("scheduled faturamento finished")
	})

	r, routerDeps := router.New(cfg, db, rdb, scheduler)
	deps = routerDeps

	// Arm the cron with the stored (or default) schedule and start ticking.
	schedule, err := deps.Agendamento.Obter(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load billing schedule")
	}
	if err := scheduler.Install(service.CronSpec(schedule.Dia, schedule.Hora, schedule.Minuto)); err != nil {
		log.Fatal().Err(err).Msg("failed to install billing schedule")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Goroutine worker pool for async tasks (boleto PDF, email).
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, deps.Workers)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("sistema-galli backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
