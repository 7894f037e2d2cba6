package dto

// AtualizacaoRepresentanteRequest updates the legal representative contact
// block on the student's personal data row.
type AtualizacaoRepresentanteRequest struct {
	NomeRepresentante     string `json:"nome_representante" validate:"required"`
	EmailRepresentante    string `json:"email_representante" validate:"required,email"`
	TelefoneRepresentante string `json:"telefone_representante" validate:"required"`
}

// AtualizacaoDadosAlunoRequest updates the student row together with the
// personal data row. Both updates must hit an existing row.
type AtualizacaoDadosAlunoRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Telefone string `json:"telefone" validate:"required"`
	Endereco string `json:"endereco" validate:"required"`
	CPF      string `json:"cpf"`
	RG       string `json:"rg"`
}
