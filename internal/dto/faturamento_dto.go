package dto

// ProcessarFaturamentoRequest triggers the monthly aggregator. All fields are
// optional: the period defaults to the previous calendar month and an empty
// condominio_id processes every active condominium.
type ProcessarFaturamentoRequest struct {
	Mes          int    `json:"mes"           validate:"omitempty,min=1,max=12"`
	Ano          int    `json:"ano"           validate:"omitempty,min=2000,max=2200"`
	CondominioID string `json:"condominio_id" validate:"omitempty,uuid"`
}

// FaturamentoResultado is the batch outcome. Success of the run does NOT mean
// every unit billed cleanly: callers must inspect Errors.
type FaturamentoResultado struct {
	Mes              int      `json:"mes"`
	Ano              int      `json:"ano"`
	Processadas      int      `json:"processed"`
	CobrancasCriadas int      `json:"charges_created"`
	Errors           []string `json:"errors"`
}

type ProcessarFaturamentoResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Results *FaturamentoResultado `json:"results"`
}
