package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Charge types and statuses.
const (
	CobrancaBoletoMensal = "boleto_mensal"
	CobrancaRateio       = "rateio"

	CobrancaPendente  = "pendente"
	CobrancaPaga      = "paga"
	CobrancaCancelada = "cancelada"
)

// Cobranca is a financial charge against one unit. The monthly aggregator
// creates one tipo="boleto_mensal" row per (unidade, mes, ano) bundling every
// utility and apportionment amount of the period; the ad-hoc expense path
// creates one tipo="rateio" row per apportionment.
type Cobranca struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UnidadeID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CondominioID uuid.UUID `gorm:"type:uuid;index;not null"`
	// Tipo: "boleto_mensal" | "rateio"
	Tipo          string          `gorm:"type:varchar(20);not null"`
	MesReferencia int             `gorm:"not null"`
	AnoReferencia int             `gorm:"not null"`
	Valor         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Vencimento    time.Time       `gorm:"not null"`
	// Status: "pendente" | "paga" | "cancelada"
	Status string `gorm:"type:varchar(20);not null;default:'pendente'"`
	// Detalhamento is a verbatim snapshot of every contributing source,
	// preserved even if the source rows are later modified.
	Detalhamento Detalhamento `gorm:"type:jsonb"`
	// PDFPath is relative to PDF_STORAGE_PATH; nil until the boleto worker runs.
	PDFPath   *string `gorm:"column:pdf_path"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Unidade *Unidade `gorm:"foreignKey:UnidadeID"`
}

// Detalhamento is the structured breakdown stored on a consolidated charge.
// Each section is present only when that source contributed to the total.
type Detalhamento struct {
	Agua     *DetalhamentoAgua     `json:"agua,omitempty"`
	Energia  *DetalhamentoEnergia  `json:"energia,omitempty"`
	Gas      *DetalhamentoGas      `json:"gas,omitempty"`
	Despesas []DetalhamentoDespesa `json:"despesas,omitempty"`
}

type DetalhamentoAgua struct {
	ConsumoM3       decimal.Decimal `json:"consumo_m3"`
	TarifaM3        decimal.Decimal `json:"tarifa_m3"`
	Valor           decimal.Decimal `json:"valor"`
	LeituraAnterior decimal.Decimal `json:"leitura_anterior"`
	LeituraAtual    decimal.Decimal `json:"leitura_atual"`
	MesReferencia   int             `json:"mes_referencia"`
	AnoReferencia   int             `json:"ano_referencia"`
}

type DetalhamentoEnergia struct {
	ConsumoKWh    decimal.Decimal `json:"consumo_kwh"`
	TarifaKWh     decimal.Decimal `json:"tarifa_kwh"`
	Valor         decimal.Decimal `json:"valor"`
	Garagens      string          `json:"garagens,omitempty"`
	MedidorSerial *string         `json:"medidor_serial,omitempty"`
	MesReferencia int             `json:"mes_referencia"`
	AnoReferencia int             `json:"ano_referencia"`
}

type DetalhamentoGas struct {
	Consumo       decimal.Decimal `json:"consumo"`
	Tarifa        decimal.Decimal `json:"tarifa"`
	Valor         decimal.Decimal `json:"valor"`
	UnidadeMedida string          `json:"unidade_medida"`
}

type DetalhamentoDespesa struct {
	Descricao string          `json:"descricao"`
	Categoria string          `json:"categoria"`
	Valor     decimal.Decimal `json:"valor"`
}

// Vazio reports whether no source contributed to the breakdown.
func (d Detalhamento) Vazio() bool {
	return d.Agua == nil && d.Energia == nil && d.Gas == nil && len(d.Despesas) == 0
}

// Value serializes the breakdown into the jsonb column.
func (d Detalhamento) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan deserializes the jsonb column.
func (d *Detalhamento) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Detalhamento{}
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("detalhamento: unsupported scan type")
	}
}
