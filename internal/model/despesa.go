package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Despesa is a condominium-wide shared expense for one reference period.
// Rateada flips to true exactly once, when the apportionment rows are
// generated; the engine never un-apportions.
type Despesa struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CondominioID  uuid.UUID `gorm:"type:uuid;index;not null"`
	MesReferencia int       `gorm:"not null;index:idx_despesa_periodo"`
	AnoReferencia int       `gorm:"not null;index:idx_despesa_periodo"`
	// Categoria: "limpeza" | "manutencao" | "seguranca" | "jardinagem" | "outros"
	Categoria  string          `gorm:"type:varchar(30);not null"`
	Descricao  string          `gorm:"not null"`
	ValorTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Rateada    bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Rateio apportionment statuses.
const (
	RateioPendente = "pendente"
	RateioCobrado  = "cobrado"
)

// Rateio is one unit's share of a Despesa. Rows are created in bulk, one per
// unit, with an even split of the expense total. Status moves
// pendente → cobrado when the share is folded into a charge.
type Rateio struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DespesaID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_rateio_despesa_unidade"`
	UnidadeID    uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_rateio_despesa_unidade"`
	ValorRateado decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pendente';index"`
	CobrancaID   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Despesa *Despesa `gorm:"foreignKey:DespesaID"`
	Unidade *Unidade `gorm:"foreignKey:UnidadeID"`
}
