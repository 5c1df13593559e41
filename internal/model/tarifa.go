package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Utility types accepted by the rate registry.
const (
	TipoAgua    = "agua"
	TipoEnergia = "energia"
	TipoGas     = "gas"
)

// Tarifa is the price per consumption unit of one utility in one condominium.
// At most one active tarifa exists per (condominio, tipo); setting a new one
// deactivates every prior active row in the same transaction. Rows are
// superseded, never deleted.
type Tarifa struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CondominioID uuid.UUID `gorm:"type:uuid;index;not null"`
	// Tipo: "agua" | "energia" | "gas"
	Tipo          string          `gorm:"type:varchar(20);not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	// UnidadeMedida: "m3", "kWh", "unidade", …
	UnidadeMedida  string    `gorm:"type:varchar(20);not null"`
	VigenciaInicio time.Time `gorm:"not null"`
	Ativa          bool      `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
