package dto

// AddDadosEmpresaRequest registers the company hosting the student. The
// company itself is deduplicated by CNPJ; the link row is always inserted.
type AddDadosEmpresaRequest struct {
	CNPJ               string `json:"cnpj" validate:"required"`
	RazaoSocial        string `json:"razao_social" validate:"required"`
	NomeFantasia       string `json:"nome_fantasia"`
	Telefone           string `json:"telefone"`
	Email              string `json:"email"`
	Endereco           string `json:"endereco"`
	Cargo              string `json:"cargo"`
	Supervisor         string `json:"supervisor"`
	TelefoneSupervisor string `json:"telefone_supervisor"`
}
