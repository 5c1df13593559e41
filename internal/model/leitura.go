package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeituraAgua is one water meter reading per (unidade, mes, ano).
// Consumo and ValorCalculado are derived server-side at entry time;
// CobrancaID is nil until the reading is folded into a monthly charge and is
// then set exactly once.
type LeituraAgua struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UnidadeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leitura_agua_periodo"`
	CondominioID  uuid.UUID `gorm:"type:uuid;index;not null"`
	MesReferencia int       `gorm:"not null;uniqueIndex:idx_leitura_agua_periodo"`
	AnoReferencia int       `gorm:"not null;uniqueIndex:idx_leitura_agua_periodo"`

	LeituraAnterior decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	LeituraAtual    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TarifaM3        decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	ConsumoM3       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	ValorCalculado  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CobrancaID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Unidade *Unidade `gorm:"foreignKey:UnidadeID"`
}

// LeituraEnergia is one electricity meter reading. A unit may own several
// metered garages, so the key extends to (unidade, mes, ano, garagem).
type LeituraEnergia struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UnidadeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leitura_energia_periodo"`
	CondominioID  uuid.UUID `gorm:"type:uuid;index;not null"`
	MesReferencia int       `gorm:"not null;uniqueIndex:idx_leitura_energia_periodo"`
	AnoReferencia int       `gorm:"not null;uniqueIndex:idx_leitura_energia_periodo"`
	// Garagem identifies the metered garage ("G1", "G2", …); empty string for
	// the unit's main meter so the unique index still applies.
	Garagem       string  `gorm:"not null;default:'';uniqueIndex:idx_leitura_energia_periodo"`
	MedidorSerial *string

	LeituraAnterior decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	LeituraAtual    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TarifaKWh       decimal.Decimal `gorm:"type:decimal(12,4);not null;column:tarifa_kwh"`
	ConsumoKWh      decimal.Decimal `gorm:"type:decimal(12,3);not null;column:consumo_kwh"`
	ValorCalculado  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CobrancaID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Unidade *Unidade `gorm:"foreignKey:UnidadeID"`
}

// LeituraGas is one gas consumption record. Gas is unrated at entry time:
// the value is priced with the condominium's active gas tarifa only when the
// monthly aggregator runs.
type LeituraGas struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UnidadeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leitura_gas_periodo"`
	CondominioID  uuid.UUID `gorm:"type:uuid;index;not null"`
	MesReferencia int       `gorm:"not null;uniqueIndex:idx_leitura_gas_periodo"`
	AnoReferencia int       `gorm:"not null;uniqueIndex:idx_leitura_gas_periodo"`

	// ValorLeitura is the consumed quantity in the tarifa's unit of measure.
	ValorLeitura decimal.Decimal `gorm:"type:decimal(12,3);not null"`

	CobrancaID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Unidade *Unidade `gorm:"foreignKey:UnidadeID"`
}
