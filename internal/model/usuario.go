package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PapelAdministrador = "administrador"
	PapelSindico       = "sindico"
	PapelOperador      = "operador"
)

// Usuario is a back-office operator.
// Papel: "administrador" | "sindico" | "operador"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nome         string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Papel        string `gorm:"type:varchar(20);not null"`
	// CondominioID restricts sindico/operador accounts to one condominium;
	// nil for administrador accounts.
	CondominioID *uuid.UUID `gorm:"type:uuid;index"`
	Ativo        bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
