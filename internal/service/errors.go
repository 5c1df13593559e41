package service

import "errors"

// Typed domain errors. Handlers map these onto 404/409 responses; everything
// else surfaces as a generic 400/500.
var (
	// Conflict
	ErrLeituraDuplicada = errors.New("ja existe uma leitura para esta unidade neste periodo")
	ErrLeituraFaturada  = errors.New("a leitura ja foi vinculada a uma cobranca e nao pode ser alterada")
	ErrDespesaJaRateada = errors.New("a despesa ja foi rateada")

	// NotFound
	ErrTarifaNaoEncontrada = errors.New("nenhuma tarifa ativa para este condominio e tipo de consumo")
	ErrSemUnidades         = errors.New("o condominio nao possui unidades cadastradas")
	ErrSemRateiosPendentes = errors.New("nenhum rateio pendente para esta despesa")
)
