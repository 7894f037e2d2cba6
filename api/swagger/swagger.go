package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Portal Estágio API",
        "description": "Backend do portal de estágios da Fatec",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login e validação de token"},
        {"name": "Listagens", "description": "Listagens das tabelas do portal"},
        {"name": "Aluno", "description": "Dados do aluno autenticado"},
        {"name": "Empresa", "description": "Empresa vinculada ao aluno"},
        {"name": "Estágio", "description": "Solicitação e dados de estágio"},
        {"name": "Modalidades", "description": "Iniciação científica e estágio profissional"},
        {"name": "Documentos", "description": "Upload de relatórios e cartas"},
        {"name": "Exportações", "description": "Relações para professores"}
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {"200": {"description": "Ready"}}
            }
        },
        "/api/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Autentica aluno ou professor",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/validar-token": {
            "get": {
                "tags": ["Auth"],
                "summary": "Valida o token e devolve a identidade",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/IdentityResponse"}},
                    "401": {"description": "Sem credencial", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "403": {"description": "Token inválido ou expirado", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/alunos": {
            "get": {
                "tags": ["Listagens"],
                "summary": "Lista os alunos",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dadosfatec": {
            "get": {
                "tags": ["Listagens"],
                "summary": "Lista os dados acadêmicos",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dadospessoalaluno": {
            "get": {
                "tags": ["Listagens"],
                "summary": "Lista os dados pessoais",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/empresa": {
            "get": {
                "tags": ["Listagens"],
                "summary": "Lista as empresas",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/empresaaluno": {
            "get": {
                "tags": ["Listagens"],
                "summary": "Lista os vínculos aluno-empresa",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/estagio": {
            "get": {
                "tags": ["Listagens"],
                "summary": "Lista os estágios",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/aluno": {
            "get": {
                "tags": ["Aluno"],
                "summary": "Dados do aluno autenticado",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dados_fatec_aluno": {
            "get": {
                "tags": ["Aluno"],
                "summary": "Dados acadêmicos do aluno autenticado",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/atualizacao_representante": {
            "put": {
                "tags": ["Aluno"],
                "summary": "Atualiza a flag de representante",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AtualizacaoRepresentanteRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/atualizacao_dados_aluno": {
            "put": {
                "tags": ["Aluno"],
                "summary": "Atualiza os dados cadastrais e pessoais",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dados_empresa": {
            "get": {
                "tags": ["Empresa"],
                "summary": "Empresa vinculada ao aluno autenticado",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/add_dados_empresa": {
            "post": {
                "tags": ["Empresa"],
                "summary": "Registra a empresa e o vínculo do aluno",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Criado"}}
            }
        },
        "/api/dados_estagio": {
            "get": {
                "tags": ["Estágio"],
                "summary": "Registro de status do estágio",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dados_estagio_info": {
            "get": {
                "tags": ["Estágio"],
                "summary": "Registro de estágio com dados da solicitação",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/estagio_solicitacao": {
            "get": {
                "tags": ["Estágio"],
                "summary": "Solicitação de estágio do aluno",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/solicitacao_estagio": {
            "post": {
                "tags": ["Estágio"],
                "summary": "Abre a solicitação de estágio",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Criado"},
                    "409": {"description": "Modalidade já ativa", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/add_dados_estagio": {
            "post": {
                "tags": ["Estágio"],
                "summary": "Registra os dados do estágio firmado",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/ic": {
            "get": {
                "tags": ["Modalidades"],
                "summary": "Iniciação científica do aluno",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/ep": {
            "get": {
                "tags": ["Modalidades"],
                "summary": "Estágio profissional do aluno",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/solicitacao_ic": {
            "post": {
                "tags": ["Modalidades"],
                "summary": "Inscreve o aluno na iniciação científica",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Criado"},
                    "409": {"description": "Modalidade já ativa", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/solicitacao_ep": {
            "post": {
                "tags": ["Modalidades"],
                "summary": "Inscreve o aluno no estágio profissional",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Criado"},
                    "409": {"description": "Modalidade já ativa", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/cancelar_ic_aluno": {
            "put": {
                "tags": ["Modalidades"],
                "summary": "Cancela a iniciação científica",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/cancelar_ep_aluno": {
            "put": {
                "tags": ["Modalidades"],
                "summary": "Cancela o estágio profissional",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/relatoriosep": {
            "get": {
                "tags": ["Documentos"],
                "summary": "Documentos do estágio profissional",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/relatorioIC": {
            "post": {
                "tags": ["Documentos"],
                "summary": "Envia o relatório de iniciação científica",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "arquivo", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UploadResponse"}}}
            }
        },
        "/api/relatorioCartaApresIC": {
            "post": {
                "tags": ["Documentos"],
                "summary": "Envia a carta de apresentação da IC",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "arquivo", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UploadResponse"}}}
            }
        },
        "/api/relatorioCartaAvalIC": {
            "post": {
                "tags": ["Documentos"],
                "summary": "Envia a carta de avaliação da IC",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "arquivo", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UploadResponse"}}}
            }
        },
        "/api/relatorioEP": {
            "post": {
                "tags": ["Documentos"],
                "summary": "Envia o relatório do estágio profissional",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "arquivo", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UploadResponse"}}}
            }
        },
        "/api/comprovanteVinculEP": {
            "post": {
                "tags": ["Documentos"],
                "summary": "Envia o comprovante de vínculo",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "arquivo", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UploadResponse"}}}
            }
        },
        "/api/relatorioCartaApresEp": {
            "post": {
                "tags": ["Documentos"],
                "summary": "Envia a carta de apresentação do EP",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "arquivo", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UploadResponse"}}}
            }
        },
        "/api/requerimentoEquivEp": {
            "post": {
                "tags": ["Documentos"],
                "summary": "Envia o requerimento de equivalência",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "arquivo", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UploadResponse"}}}
            }
        },
        "/api/exportar/estagios.csv": {
            "get": {
                "tags": ["Exportações"],
                "summary": "Relação de estágios em CSV",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Restrito a professores", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/exportar/estagios.pdf": {
            "get": {
                "tags": ["Exportações"],
                "summary": "Relação de estágios em PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Restrito a professores", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "senha"],
            "properties": {
                "email": {"type": "string"},
                "senha": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "tipo": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "IdentityResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "tipo": {"type": "string"}
            }
        },
        "AtualizacaoRepresentanteRequest": {
            "type": "object",
            "properties": {
                "representante": {"type": "string"}
            }
        },
        "UploadResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "arquivo": {"type": "string"},
                "campo": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "kind": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
