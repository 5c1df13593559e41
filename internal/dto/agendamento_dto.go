package dto

// AgendamentoRequest is the action-style body of POST /v1/faturamento/agendamento.
// action="get" ignores the remaining fields; action="update" requires them.
type AgendamentoRequest struct {
	Action string `json:"action" validate:"required"`
	Dia    int    `json:"dia"`
	Hora   int    `json:"hora"`
	Minuto int    `json:"minuto"`
}

type AgendamentoSchedule struct {
	Dia    int `json:"dia"`
	Hora   int `json:"hora"`
	Minuto int `json:"minuto"`
}

type AgendamentoResponse struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message,omitempty"`
	Schedule AgendamentoSchedule `json:"schedule"`
}
