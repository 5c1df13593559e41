package model

import (
	"time"

	"github.com/google/uuid"
)

// Condominio is the tenant root: every unit, tariff, reading, expense and
// charge belongs to exactly one condominium.
type Condominio struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome     string    `gorm:"not null"`
	Endereco *string
	Cidade   *string
	// EmailSindico receives the monthly billing run summary.
	EmailSindico *string
	Ativo        bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Unidades []Unidade `gorm:"foreignKey:CondominioID"`
}

// Unidade is the billing target. Identity is (numero, bloco) within a
// condominium and never changes; the remaining metadata is mutable.
type Unidade struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CondominioID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_unidade_identidade"`
	Numero       string    `gorm:"not null;uniqueIndex:idx_unidade_identidade"`
	Bloco        *string   `gorm:"uniqueIndex:idx_unidade_identidade"`
	Proprietario *string
	// EmailResponsavel receives the boleto PDF when set.
	EmailResponsavel *string
	Ativo            bool `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Condominio *Condominio `gorm:"foreignKey:CondominioID"`
}

// Identificacao returns the human label used in logs and error messages,
// e.g. "102/B" or just "102" when the unit has no block.
func (u *Unidade) Identificacao() string {
	if u.Bloco != nil && *u.Bloco != "" {
		return u.Numero + "/" + *u.Bloco
	}
	return u.Numero
}
