package models

// Empresa is a row of public.empresa, deduplicated by CNPJ.
type Empresa struct {
	ID           int64   `db:"id" json:"id"`
	CNPJ         string  `db:"cnpj" json:"cnpj"`
	RazaoSocial  string  `db:"razao_social" json:"razao_social"`
	NomeFantasia *string `db:"nome_fantasia" json:"nome_fantasia,omitempty"`
	Telefone     *string `db:"telefone" json:"telefone,omitempty"`
	Email        *string `db:"email" json:"email,omitempty"`
	Endereco     *string `db:"endereco" json:"endereco,omitempty"`
}

// EmpresaAluno links a student to the company hosting them.
type EmpresaAluno struct {
	ID                 int64   `db:"id" json:"id"`
	IDAluno            int64   `db:"id_aluno" json:"id_aluno"`
	IDEmpresa          int64   `db:"id_empresa" json:"id_empresa"`
	Cargo              *string `db:"cargo" json:"cargo,omitempty"`
	Supervisor         *string `db:"supervisor" json:"supervisor,omitempty"`
	TelefoneSupervisor *string `db:"telefone_supervisor" json:"telefone_supervisor,omitempty"`
}

// EmpresaAlunoDetalhe is the dados_empresa read: the link row joined with the
// company it references.
type EmpresaAlunoDetalhe struct {
	EmpresaAluno
	CNPJ         string  `db:"cnpj" json:"cnpj"`
	RazaoSocial  string  `db:"razao_social" json:"razao_social"`
	NomeFantasia *string `db:"nome_fantasia" json:"nome_fantasia,omitempty"`
}
