package dto

type CriarCondominioRequest struct {
	Nome         string  `json:"nome"          validate:"required,min=3"`
	Endereco     *string `json:"endereco"`
	Cidade       *string `json:"cidade"`
	EmailSindico *string `json:"email_sindico" validate:"omitempty,email"`
}

type CondominioResponse struct {
	ID           string  `json:"id"`
	Nome         string  `json:"nome"`
	Endereco     *string `json:"endereco,omitempty"`
	Cidade       *string `json:"cidade,omitempty"`
	EmailSindico *string `json:"email_sindico,omitempty"`
	Ativo        bool    `json:"ativo"`
}

type CriarUnidadeRequest struct {
	Numero           string  `json:"numero"            validate:"required"`
	Bloco            *string `json:"bloco"`
	Proprietario     *string `json:"proprietario"`
	EmailResponsavel *string `json:"email_responsavel" validate:"omitempty,email"`
}

type UnidadeResponse struct {
	ID               string  `json:"id"`
	CondominioID     string  `json:"condominio_id"`
	Numero           string  `json:"numero"`
	Bloco            *string `json:"bloco,omitempty"`
	Proprietario     *string `json:"proprietario,omitempty"`
	EmailResponsavel *string `json:"email_responsavel,omitempty"`
	Ativo            bool    `json:"ativo"`
}
