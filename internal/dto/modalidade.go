package dto

import "github.com/davg505/portal-estagio-api/internal/models"

// SolicitacaoICRequest selects the scientific-initiation modality.
type SolicitacaoICRequest struct {
	Orientador  string `json:"orientador" validate:"required"`
	Tema        string `json:"tema" validate:"required"`
	DataInicio  string `json:"data_inicio" validate:"required"`
	DataTermino string `json:"data_termino"`
}

// SolicitacaoEPRequest selects the professional-internship modality.
type SolicitacaoEPRequest struct {
	Empresa      string `json:"empresa" validate:"required"`
	Cargo        string `json:"cargo" validate:"required"`
	DataInicio   string `json:"data_inicio" validate:"required"`
	CargaHoraria string `json:"carga_horaria"`
}

// SolicitacaoICResponse returns the three rows written by the selection.
type SolicitacaoICResponse struct {
	Aluno      models.Aluno               `json:"aluno"`
	Detalhe    models.IniciacaoCientifica `json:"iniciacao_cientifica"`
	Relatorios models.RelatorioIC         `json:"relatorios"`
}

// SolicitacaoEPResponse returns the three rows written by the selection.
type SolicitacaoEPResponse struct {
	Aluno      models.Aluno               `json:"aluno"`
	Detalhe    models.EstagioProfissional `json:"estagio_profissional"`
	Relatorios models.RelatorioEP         `json:"relatorios"`
}

// UploadResponse reports a stored document slot back to the client.
type UploadResponse struct {
	Success bool   `json:"success"`
	Arquivo string `json:"arquivo"`
	Campo   string `json:"campo"`
}
