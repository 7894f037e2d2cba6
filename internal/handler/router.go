package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/davg505/portal-estagio-api/internal/middleware"
	"github.com/davg505/portal-estagio-api/internal/service"
	"github.com/davg505/portal-estagio-api/pkg/config"
	"github.com/davg505/portal-estagio-api/pkg/logger"
	corsmiddleware "github.com/davg505/portal-estagio-api/pkg/middleware/cors"
	reqidmiddleware "github.com/davg505/portal-estagio-api/pkg/middleware/requestid"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *service.MetricsService

	Auth       *AuthHandler
	Listings   *ListingHandler
	Aluno      *AlunoHandler
	Empresa    *EmpresaHandler
	Estagio    *EstagioHandler
	Modalidade *ModalidadeHandler
	Upload     *UploadHandler
	Export     *ExportHandler

	TokenValidator middleware.TokenValidator
}

// NewRouter assembles the gin engine with the full route table. The paths
// match the legacy portal exactly so the deployed frontend keeps working.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(d.Logger))
	r.Use(corsmiddleware.New(d.Config.CORS.AllowedOrigins))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if d.Metrics != nil && d.Config.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	if d.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authGate := middleware.Auth(d.TokenValidator)

	api := r.Group("/api")

	api.POST("/login", d.Auth.Login)

	// The table listings were public in the legacy portal; the gate is a
	// deployment switch.
	listings := api.Group("")
	if d.Config.Listings.RequireAuth {
		listings.Use(authGate)
	}
	listings.GET("/alunos", d.Listings.Alunos)
	listings.GET("/dadosfatec", d.Listings.DadosFatec)
	listings.GET("/dadospessoalaluno", d.Listings.DadosPessoais)
	listings.GET("/empresa", d.Listings.Empresas)
	listings.GET("/empresaaluno", d.Listings.EmpresaAlunos)
	listings.GET("/estagio", d.Listings.Estagios)

	protected := api.Group("")
	protected.Use(authGate)

	protected.GET("/validar-token", d.Auth.ValidarToken)

	protected.GET("/aluno", d.Aluno.Get)
	protected.GET("/dados_fatec_aluno", d.Aluno.DadosFatec)
	protected.PUT("/atualizacao_representante", d.Aluno.AtualizacaoRepresentante)
	protected.PUT("/atualizacao_dados_aluno", d.Aluno.AtualizacaoDados)

	protected.GET("/dados_empresa", d.Empresa.DadosEmpresa)
	protected.POST("/add_dados_empresa", d.Empresa.AddDadosEmpresa)

	protected.GET("/dados_estagio", d.Estagio.DadosEstagio)
	protected.GET("/dados_estagio_info", d.Estagio.DadosEstagioInfo)
	protected.GET("/estagio_solicitacao", d.Estagio.Solicitacao)
	protected.POST("/solicitacao_estagio", d.Estagio.SolicitarEstagio)
	protected.POST("/add_dados_estagio", d.Estagio.AddDadosEstagio)

	protected.GET("/ic", d.Modalidade.IC)
	protected.GET("/ep", d.Modalidade.EP)
	protected.POST("/solicitacao_ic", d.Modalidade.SolicitarIC)
	protected.POST("/solicitacao_ep", d.Modalidade.SolicitarEP)
	protected.PUT("/cancelar_ic_aluno", d.Modalidade.CancelarIC)
	protected.PUT("/cancelar_ep_aluno", d.Modalidade.CancelarEP)

	protected.GET("/relatoriosep", d.Upload.RelatoriosEP)
	protected.POST("/relatorioIC", d.Upload.RelatorioIC)
	protected.POST("/relatorioCartaApresIC", d.Upload.CartaApresentacaoIC)
	protected.POST("/relatorioCartaAvalIC", d.Upload.CartaAvaliacaoIC)
	protected.POST("/relatorioEP", d.Upload.RelatorioEP)
	protected.POST("/comprovanteVinculEP", d.Upload.ComprovanteVinculoEP)
	protected.POST("/relatorioCartaApresEp", d.Upload.CartaApresentacaoEP)
	protected.POST("/requerimentoEquivEp", d.Upload.RequerimentoEquivalenciaEP)

	if d.Config.Exports.Enabled && d.Export != nil {
		exports := protected.Group("/exportar")
		exports.Use(middleware.RequireProfessor())
		exports.GET("/estagios.csv", d.Export.EstagiosCSV)
		exports.GET("/estagios.pdf", d.Export.EstagiosPDF)
	}

	return r
}
