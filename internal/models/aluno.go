package models

// Student modality tags. Mutually exclusive by handler discipline; the
// database does not enforce it.
const (
	ModalidadeNenhuma             = "nenhuma"
	ModalidadeEstagio             = "estagio"
	ModalidadeIniciacaoCientifica = "iniciacao_cientifica"
	ModalidadeEstagioProfissional = "estagio_profissional"
)

// Aluno is a row of public.aluno. Senha and token never leave the server.
type Aluno struct {
	ID            int64   `db:"id" json:"id"`
	Nome          string  `db:"nome" json:"nome"`
	Email         string  `db:"email" json:"email"`
	Senha         string  `db:"senha" json:"-"`
	RA            string  `db:"ra" json:"ra"`
	Curso         string  `db:"curso" json:"curso"`
	Semestre      *string `db:"semestre" json:"semestre,omitempty"`
	Modalidade    string  `db:"modalidade" json:"modalidade"`
	StatusEstagio *string `db:"status_estagio" json:"status_estagio,omitempty"`
	Token         *string `db:"token" json:"-"`
}

// DadosPessoal is a row of public.dadospessoalaluno, including the legal
// representative contact block updated by atualizacao_representante.
type DadosPessoal struct {
	ID                    int64   `db:"id" json:"id"`
	IDAluno               int64   `db:"id_aluno" json:"id_aluno"`
	CPF                   *string `db:"cpf" json:"cpf,omitempty"`
	RG                    *string `db:"rg" json:"rg,omitempty"`
	DataNascimento        *string `db:"data_nascimento" json:"data_nascimento,omitempty"`
	Telefone              *string `db:"telefone" json:"telefone,omitempty"`
	Endereco              *string `db:"endereco" json:"endereco,omitempty"`
	NomeRepresentante     *string `db:"nome_representante" json:"nome_representante,omitempty"`
	EmailRepresentante    *string `db:"email_representante" json:"email_representante,omitempty"`
	TelefoneRepresentante *string `db:"telefone_representante" json:"telefone_representante,omitempty"`
}

// DadosFatec is a row of public.dadosfatec, the institutional record of a
// student's enrollment.
type DadosFatec struct {
	ID      int64   `db:"id" json:"id"`
	IDAluno int64   `db:"id_aluno" json:"id_aluno"`
	Curso   string  `db:"curso" json:"curso"`
	Periodo *string `db:"periodo" json:"periodo,omitempty"`
	Ciclo   *string `db:"ciclo" json:"ciclo,omitempty"`
	RA      string  `db:"ra" json:"ra"`
}

// DadosFatecAluno joins the institutional record with the student's name for
// the dados_fatec_aluno read.
type DadosFatecAluno struct {
	DadosFatec
	NomeAluno  string `db:"nome_aluno" json:"nome_aluno"`
	EmailAluno string `db:"email_aluno" json:"email_aluno"`
}
