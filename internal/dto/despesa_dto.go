package dto

import "github.com/shopspring/decimal"

type CriarDespesaRequest struct {
	CondominioID  string          `json:"condominio_id"  validate:"required,uuid"`
	MesReferencia int             `json:"mes_referencia" validate:"required,min=1,max=12"`
	AnoReferencia int             `json:"ano_referencia" validate:"required,min=2000,max=2200"`
	Categoria     string          `json:"categoria"      validate:"required,oneof=limpeza manutencao seguranca jardinagem outros"`
	Descricao     string          `json:"descricao"      validate:"required,min=3"`
	ValorTotal    decimal.Decimal `json:"valor_total"    validate:"required"`
}

type DespesaResponse struct {
	ID            string          `json:"id"`
	CondominioID  string          `json:"condominio_id"`
	MesReferencia int             `json:"mes_referencia"`
	AnoReferencia int             `json:"ano_referencia"`
	Categoria     string          `json:"categoria"`
	Descricao     string          `json:"descricao"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	Rateada       bool            `json:"rateada"`
}

type RateioResponse struct {
	ID           string          `json:"id"`
	DespesaID    string          `json:"despesa_id"`
	UnidadeID    string          `json:"unidade_id"`
	ValorRateado decimal.Decimal `json:"valor_rateado"`
	Status       string          `json:"status"`
	CobrancaID   *string         `json:"cobranca_id,omitempty"`
}

// CalcularRateioResponse summarizes a bulk apportionment.
type CalcularRateioResponse struct {
	DespesaID    string           `json:"despesa_id"`
	TotalRateado decimal.Decimal  `json:"total_rateado"`
	ValorPorCota decimal.Decimal  `json:"valor_por_cota"`
	NumeroCotas  int              `json:"numero_cotas"`
	Rateios      []RateioResponse `json:"rateios"`
}

// GerarCobrancasResponse summarizes the ad-hoc per-apportionment billing path.
type GerarCobrancasResponse struct {
	DespesaID        string `json:"despesa_id"`
	CobrancasCriadas int    `json:"cobrancas_criadas"`
}
