package models

// IniciacaoCientifica is a row of public.iniciacaocientifica: the detail
// record behind the scientific-initiation modality.
type IniciacaoCientifica struct {
	ID          int64   `db:"id" json:"id"`
	IDAluno     int64   `db:"id_aluno" json:"id_aluno"`
	Orientador  string  `db:"orientador" json:"orientador"`
	Tema        string  `db:"tema" json:"tema"`
	DataInicio  string  `db:"data_inicio" json:"data_inicio"`
	DataTermino *string `db:"data_termino" json:"data_termino,omitempty"`
}

// EstagioProfissional is a row of public.estagioprofissional: the detail
// record behind the professional-internship modality.
type EstagioProfissional struct {
	ID           int64   `db:"id" json:"id"`
	IDAluno      int64   `db:"id_aluno" json:"id_aluno"`
	Empresa      string  `db:"empresa" json:"empresa"`
	Cargo        string  `db:"cargo" json:"cargo"`
	DataInicio   string  `db:"data_inicio" json:"data_inicio"`
	CargaHoraria *string `db:"carga_horaria" json:"carga_horaria,omitempty"`
}

// RelatorioIC is a row of public.relatorios_ic: the scientific-initiation
// document bundle. Each slot is a stored path plus a Sim/Não existence flag.
type RelatorioIC struct {
	ID                      int64   `db:"id" json:"id"`
	IDAluno                 int64   `db:"id_aluno" json:"id_aluno"`
	Relatorio               *string `db:"relatorio" json:"relatorio,omitempty"`
	RelatorioExiste         string  `db:"relatorio_existe" json:"relatorio_existe"`
	CartaApresentacao       *string `db:"carta_apresentacao" json:"carta_apresentacao,omitempty"`
	CartaApresentacaoExiste string  `db:"carta_apresentacao_existe" json:"carta_apresentacao_existe"`
	CartaAvaliacao          *string `db:"carta_avaliacao" json:"carta_avaliacao,omitempty"`
	CartaAvaliacaoExiste    string  `db:"carta_avaliacao_existe" json:"carta_avaliacao_existe"`
}

// RelatorioEP is a row of public.relatoriosep: the professional-internship
// document bundle, one slot per required document.
type RelatorioEP struct {
	ID                           int64   `db:"id" json:"id"`
	IDAluno                      int64   `db:"id_aluno" json:"id_aluno"`
	Relatorio                    *string `db:"relatorio" json:"relatorio,omitempty"`
	RelatorioExiste              string  `db:"relatorio_existe" json:"relatorio_existe"`
	ComprovanteVinculo           *string `db:"comprovante_vinculo" json:"comprovante_vinculo,omitempty"`
	ComprovanteVinculoExiste     string  `db:"comprovante_vinculo_existe" json:"comprovante_vinculo_existe"`
	CartaApresentacao            *string `db:"carta_apresentacao" json:"carta_apresentacao,omitempty"`
	CartaApresentacaoExiste      string  `db:"carta_apresentacao_existe" json:"carta_apresentacao_existe"`
	RequerimentoEquivalencia     *string `db:"requerimento_equivalencia" json:"requerimento_equivalencia,omitempty"`
	RequerimentoEquivalenciaExiste string `db:"requerimento_equivalencia_existe" json:"requerimento_equivalencia_existe"`
}
