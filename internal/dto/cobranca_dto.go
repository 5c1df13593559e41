package dto

import (
	"github.com/Galli-condominios/sistema-galli-sub000/internal/model"

	"github.com/shopspring/decimal"
)

type CobrancaFilter struct {
	UnidadeID string `form:"unidade_id" validate:"required,uuid"`
	Status    string `form:"status,default=all"` // pendente | paga | cancelada | all
}

type CobrancaResponse struct {
	ID            string             `json:"id"`
	UnidadeID     string             `json:"unidade_id"`
	CondominioID  string             `json:"condominio_id"`
	Tipo          string             `json:"tipo"`
	MesReferencia int                `json:"mes_referencia"`
	AnoReferencia int                `json:"ano_referencia"`
	Valor         decimal.Decimal    `json:"valor"`
	Vencimento    string             `json:"vencimento"`
	Status        string             `json:"status"`
	Detalhamento  model.Detalhamento `json:"detalhamento"`
	PDFUrl        *string            `json:"pdf_url,omitempty"`
	CreatedAt     string             `json:"created_at"`
}

// ConsultaCobrancasResponse is the public (unauthenticated) open-charges view.
type ConsultaCobrancasResponse struct {
	Unidade   string             `json:"unidade"`
	Cobrancas []CobrancaResponse `json:"cobrancas"`
}
