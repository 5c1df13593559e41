package router

import (
	"time"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/config"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/handler"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/infra"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/middleware"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/repository"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/service"
	"github.com/Galli-condominios/sistema-galli-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps exposes the pieces main needs beyond the engine: the billing service
// (cron target), the schedule service (cron bootstrap) and the worker handlers.
type Deps struct {
	Faturamento service.FaturamentoService
	Agendamento service.AgendamentoService
	Workers     worker.Handlers
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, scheduler *worker.Scheduler) (*gin.Engine, *Deps) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	condominioRepo := repository.NewCondominioRepository(db)
	unidadeRepo := repository.NewUnidadeRepository(db)
	tarifaRepo := repository.NewTarifaRepository(db)
	leituraRepo := repository.NewLeituraRepository(db)
	despesaRepo := repository.NewDespesaRepository(db)
	cobrancaRepo := repository.NewCobrancaRepository(db)
	agendamentoRepo := repository.NewAgendamentoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	condominioSvc := service.NewCondominioService(condominioRepo, unidadeRepo)
	tarifaSvc := service.NewTarifaService(tarifaRepo)
	leituraSvc := service.NewLeituraService(leituraRepo, unidadeRepo, tarifaRepo)
	rateioSvc := service.NewRateioService(despesaRepo, unidadeRepo, cobrancaRepo)
	cobrancaSvc := service.NewCobrancaService(cobrancaRepo)
	faturamentoSvc := service.NewFaturamentoService(
		condominioRepo, unidadeRepo, leituraRepo, tarifaRepo, despesaRepo, cobrancaRepo, dispatcher)
	agendamentoSvc := service.NewAgendamentoService(agendamentoRepo, scheduler)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	condominiosH := handler.NewCondominiosHandler(condominioSvc)
	tarifasH := handler.NewTarifasHandler(tarifaSvc)
	leiturasH := handler.NewLeiturasHandler(leituraSvc)
	despesasH := handler.NewDespesasHandler(rateioSvc)
	cobrancasH := handler.NewCobrancasHandler(cobrancaSvc)
	faturamentoH := handler.NewFaturamentoHandler(faturamentoSvc, agendamentoSvc)
	consultaH := handler.NewConsultaCobrancasHandler(cobrancaRepo, unidadeRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Open-charges lookup — no auth required
	r.GET("/v1/consulta/:unidade_id", consultaH.GetCobrancasAbertas)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	todos := []string{model.PapelAdministrador, model.PapelSindico, model.PapelOperador}
	gestao := []string{model.PapelAdministrador, model.PapelSindico}

	v1 := r.Group("/v1", jwtMW)
	{
		// Condominios e unidades — cadastro restrito ao administrador
		v1.GET("/condominios", middleware.RequirePapel(todos...), condominiosH.Listar)
		v1.GET("/condominios/:id/unidades", middleware.RequirePapel(todos...), condominiosH.ListarUnidades)
		condominios := v1.Group("/condominios", middleware.RequirePapel(model.PapelAdministrador))
		{
			condominios.POST("", condominiosH.Criar)
			condominios.POST("/:id/unidades", condominiosH.CriarUnidade)
		}

		// Tarifas — leitura para todos, definicao para gestao
		v1.GET("/tarifas/ativa", middleware.RequirePapel(todos...), tarifasH.ObterAtiva)
		v1.GET("/tarifas/historico", middleware.RequirePapel(todos...), tarifasH.Historico)
		v1.POST("/tarifas", middleware.RequirePapel(gestao...), tarifasH.Definir)

		// Leituras — operacao cotidiana, aberta a todos os papeis
		leituras := v1.Group("/leituras", middleware.RequirePapel(todos...))
		{
			leituras.POST("/agua", leiturasH.RegistrarAgua)
			leituras.PUT("/agua/:id", leiturasH.AtualizarAgua)
			leituras.DELETE("/agua/:id", leiturasH.ExcluirAgua)
			leituras.POST("/energia", leiturasH.RegistrarEnergia)
			leituras.PUT("/energia/:id", leiturasH.AtualizarEnergia)
			leituras.DELETE("/energia/:id", leiturasH.ExcluirEnergia)
			leituras.POST("/gas", leiturasH.RegistrarGas)
			leituras.DELETE("/gas/:id", leiturasH.ExcluirGas)
		}

		// Despesas e rateios
		v1.GET("/despesas", middleware.RequirePapel(todos...), despesasH.Listar)
		despesas := v1.Group("/despesas", middleware.RequirePapel(gestao...))
		{
			despesas.POST("", despesasH.Criar)
			despesas.POST("/:id/rateio", despesasH.CalcularRateio)
			despesas.POST("/:id/cobrancas", despesasH.GerarCobrancas)
		}

		// Cobrancas
		v1.GET("/cobrancas", middleware.RequirePapel(todos...), cobrancasH.Listar)
		v1.GET("/cobrancas/:id", middleware.RequirePapel(todos...), cobrancasH.Obter)
		v1.GET("/cobrancas/:id/pdf", middleware.RequirePapel(todos...), cobrancasH.BaixarPDF)

		// Faturamento mensal — disparo manual e agendamento, somente gestao
		faturamento := v1.Group("/faturamento", middleware.RequirePapel(gestao...))
		{
			faturamento.POST("/processar", faturamentoH.Processar)
			faturamento.POST("/agendamento", faturamentoH.Agendamento)
		}

		// Usuarios — administrador only
		v1.POST("/usuarios", middleware.RequirePapel(model.PapelAdministrador), usuariosH.Criar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	deps := &Deps{
		Faturamento: faturamentoSvc,
		Agendamento: agendamentoSvc,
		Workers: worker.Handlers{
			Boleto: worker.NewBoletoWorker(cobrancaRepo, unidadeRepo, dispatcher, cfg.PDFStoragePath),
			Email:  worker.NewEmailWorker(mailer),
		},
	}
	return r, deps
}
