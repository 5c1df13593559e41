package infra

import (
	"fmt"

	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial indexes).
//
// TranslateError is on so unique violations surface as gorm.ErrDuplicatedKey
// and the services can map them to the typed conflict errors.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates all tables and applies the schema patches.
// Also used by integration tests against a throwaway database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Condominio{},
		&model.Unidade{},
		&model.Usuario{},
		&model.Tarifa{},
		&model.LeituraAgua{},
		&model.LeituraEnergia{},
		&model.LeituraGas{},
		&model.Despesa{},
		&model.Rateio{},
		&model.Cobranca{},
		&model.Agendamento{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that GORM AutoMigrate cannot express.
// Each statement uses IF NOT EXISTS semantics so re-running is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// One active tarifa per (condominio, tipo). Activation swaps rows inside
		// a transaction; the partial index makes the window race-proof.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_tarifa_ativa_unica') THEN
		    CREATE UNIQUE INDEX idx_tarifa_ativa_unica
		        ON tarifas (condominio_id, tipo)
		        WHERE ativa;
		  END IF;
		END $$`,
		// One non-cancelled boleto_mensal per (unidade, periodo). The aggregator
		// checks before inserting; this is the backstop against concurrent runs.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_cobranca_boleto_periodo') THEN
		    CREATE UNIQUE INDEX idx_cobranca_boleto_periodo
		        ON cobrancas (unidade_id, mes_referencia, ano_referencia)
		        WHERE tipo = 'boleto_mensal' AND status <> 'cancelada';
		  END IF;
		END $$`,
		// Open-charges listing by unit (public consulta + back office).
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_cobranca_unidade_status') THEN
		    CREATE INDEX idx_cobranca_unidade_status
		        ON cobrancas (unidade_id, status);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
