package dto

import "github.com/shopspring/decimal"

type DefinirTarifaRequest struct {
	CondominioID  string          `json:"condominio_id"  validate:"required,uuid"`
	Tipo          string          `json:"tipo"           validate:"required,oneof=agua energia gas"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"required"`
	UnidadeMedida string          `json:"unidade_medida" validate:"required"`
}

type TarifaResponse struct {
	ID             string          `json:"id"`
	CondominioID   string          `json:"condominio_id"`
	Tipo           string          `json:"tipo"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	UnidadeMedida  string          `json:"unidade_medida"`
	VigenciaInicio string          `json:"vigencia_inicio"`
	Ativa          bool            `json:"ativa"`
}
