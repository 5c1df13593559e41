package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarLeituraRequest covers water and electricity entry. Consumption and
// amount are always computed server-side; a client-submitted total is never
// trusted.
type RegistrarLeituraRequest struct {
	UnidadeID       string          `json:"unidade_id"       validate:"required,uuid"`
	MesReferencia   int             `json:"mes_referencia"   validate:"required,min=1,max=12"`
	AnoReferencia   int             `json:"ano_referencia"   validate:"required,min=2000,max=2200"`
	LeituraAnterior decimal.Decimal `json:"leitura_anterior" validate:"min=0"`
	LeituraAtual    decimal.Decimal `json:"leitura_atual"    validate:"required"`
	// Garagem only applies to electricity (a unit may have several metered garages).
	Garagem       string  `json:"garagem"`
	MedidorSerial *string `json:"medidor_serial"`
}

type AtualizarLeituraRequest struct {
	LeituraAnterior decimal.Decimal `json:"leitura_anterior" validate:"min=0"`
	LeituraAtual    decimal.Decimal `json:"leitura_atual"    validate:"required"`
}

// RegistrarLeituraGasRequest: gas is unrated at entry time, only the consumed
// quantity is recorded.
type RegistrarLeituraGasRequest struct {
	UnidadeID     string          `json:"unidade_id"     validate:"required,uuid"`
	MesReferencia int             `json:"mes_referencia" validate:"required,min=1,max=12"`
	AnoReferencia int             `json:"ano_referencia" validate:"required,min=2000,max=2200"`
	ValorLeitura  decimal.Decimal `json:"valor_leitura"  validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LeituraResponse struct {
	ID              string          `json:"id"`
	UnidadeID       string          `json:"unidade_id"`
	MesReferencia   int             `json:"mes_referencia"`
	AnoReferencia   int             `json:"ano_referencia"`
	LeituraAnterior decimal.Decimal `json:"leitura_anterior"`
	LeituraAtual    decimal.Decimal `json:"leitura_atual"`
	Tarifa          decimal.Decimal `json:"tarifa"`
	Consumo         decimal.Decimal `json:"consumo"`
	ValorCalculado  decimal.Decimal `json:"valor_calculado"`
	Garagem         string          `json:"garagem,omitempty"`
	CobrancaID      *string         `json:"cobranca_id,omitempty"`
}

type LeituraGasResponse struct {
	ID            string          `json:"id"`
	UnidadeID     string          `json:"unidade_id"`
	MesReferencia int             `json:"mes_referencia"`
	AnoReferencia int             `json:"ano_referencia"`
	ValorLeitura  decimal.Decimal `json:"valor_leitura"`
	CobrancaID    *string         `json:"cobranca_id,omitempty"`
}
