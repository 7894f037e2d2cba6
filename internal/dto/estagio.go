package dto

import "github.com/davg505/portal-estagio-api/internal/models"

// SolicitacaoEstagioRequest opens an internship request.
type SolicitacaoEstagioRequest struct {
	NomeEmpresa  string `json:"nome_empresa" validate:"required"`
	CNPJ         string `json:"cnpj" validate:"required"`
	Cargo        string `json:"cargo"`
	DataInicio   string `json:"data_inicio"`
	CargaHoraria string `json:"carga_horaria"`
}

// SolicitacaoEstagioResponse carries the three rows produced by the request:
// the solicitation, the defaulted status record and the updated student.
type SolicitacaoEstagioResponse struct {
	Solicitacao models.EstagioSolicitacao `json:"solicitacao"`
	Estagio     models.Estagio            `json:"estagio"`
	Aluno       models.Aluno              `json:"aluno"`
}

// AddDadosEstagioRequest records the signed internship's working details on
// the existing status record.
type AddDadosEstagioRequest struct {
	DataInicio        string `json:"data_inicio" validate:"required"`
	DataTermino       string `json:"data_termino"`
	CargaHoraria      string `json:"carga_horaria" validate:"required"`
	SupervisorEmpresa string `json:"supervisor_empresa"`
}
