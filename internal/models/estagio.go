package models

// Default values written when an internship request is opened.
const (
	EstagioStatusPendente     = "Pendente"
	EstagioSolicitado         = "Solicitado"
	StatusTermoPendente       = "Pendente"
	FlagNao                   = "Não"
	FlagSim                   = "Sim"
)

// Estagio is a row of public.estagio: the student's internship status record.
// The four entrega flags start as Não and flip independently.
type Estagio struct {
	ID                 int64   `db:"id" json:"id"`
	IDAluno            int64   `db:"id_aluno" json:"id_aluno"`
	Status             string  `db:"status" json:"status"`
	Solicitacao        string  `db:"solicitacao" json:"solicitacao"`
	StatusTermo        string  `db:"status_termo" json:"status_termo"`
	TermoAssinado      string  `db:"termo_assinado" json:"termo_assinado"`
	PlanoEntregue      string  `db:"plano_entregue" json:"plano_entregue"`
	RelatorioEntregue  string  `db:"relatorio_entregue" json:"relatorio_entregue"`
	AvaliacaoEntregue  string  `db:"avaliacao_entregue" json:"avaliacao_entregue"`
	DataInicio         *string `db:"data_inicio" json:"data_inicio,omitempty"`
	DataTermino        *string `db:"data_termino" json:"data_termino,omitempty"`
	CargaHoraria       *string `db:"carga_horaria" json:"carga_horaria,omitempty"`
	SupervisorEmpresa  *string `db:"supervisor_empresa" json:"supervisor_empresa,omitempty"`
}

// EstagioSolicitacao is a row of public.estagiosolicitacao: the request
// submitted by the student before the internship is approved.
type EstagioSolicitacao struct {
	ID              int64   `db:"id" json:"id"`
	IDAluno         int64   `db:"id_aluno" json:"id_aluno"`
	DataSolicitacao string  `db:"data_solicitacao" json:"data_solicitacao"`
	NomeEmpresa     string  `db:"nome_empresa" json:"nome_empresa"`
	CNPJ            string  `db:"cnpj" json:"cnpj"`
	Cargo           *string `db:"cargo" json:"cargo,omitempty"`
	DataInicio      *string `db:"data_inicio" json:"data_inicio,omitempty"`
	CargaHoraria    *string `db:"carga_horaria" json:"carga_horaria,omitempty"`
}

// EstagioInfo is the dados_estagio_info read: status record joined with the
// originating request.
type EstagioInfo struct {
	Estagio
	NomeEmpresa     *string `db:"nome_empresa" json:"nome_empresa,omitempty"`
	CNPJ            *string `db:"cnpj" json:"cnpj,omitempty"`
	DataSolicitacao *string `db:"data_solicitacao" json:"data_solicitacao,omitempty"`
}

// EstagioRoster is one line of the professor-facing roster export.
type EstagioRoster struct {
	NomeAluno   string  `db:"nome_aluno" json:"nome_aluno"`
	RA          string  `db:"ra" json:"ra"`
	Curso       string  `db:"curso" json:"curso"`
	Modalidade  string  `db:"modalidade" json:"modalidade"`
	Status      *string `db:"status" json:"status,omitempty"`
	NomeEmpresa *string `db:"nome_empresa" json:"nome_empresa,omitempty"`
}
