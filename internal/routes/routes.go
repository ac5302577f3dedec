package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/handlers"
	"github.com/BruksfildServices01/studio-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/studio-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/studio-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
	ucApproval "github.com/BruksfildServices01/studio-scheduler/internal/usecase/approval"
	ucBlock "github.com/BruksfildServices01/studio-scheduler/internal/usecase/block"
	ucFinance "github.com/BruksfildServices01/studio-scheduler/internal/usecase/finance"
)

// Deps são as dependências montadas no main.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
	Store  storage.Store
	Cache  cache.StudioConfigCache
	Audit  *audit.Dispatcher
	Clock  *timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	log := logger.OrNop(d.Log)
	db := d.DB
	cfg := d.Config

	clock := d.Clock
	if clock == nil {
		clock = timezone.NewClock(cfg.Timezone)
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	blockRepo := infraRepo.NewBlockGormRepository(db)
	financeRepo := infraRepo.NewFinanceGormRepository(db)

	// ======================================================
	// USE CASES — BLOCKS
	// ======================================================
	checkBlockUC := ucBlock.NewCheckBlock(blockRepo, log)
	createBlockUC := ucBlock.NewCreateBlock(blockRepo, d.Audit, log)
	updateBlockUC := ucBlock.NewUpdateBlock(blockRepo, d.Audit, log)
	deleteBlockUC := ucBlock.NewDeleteBlock(blockRepo, d.Audit, log)
	listBlocksUC := ucBlock.NewListBlocks(blockRepo, clock)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		checkBlockUC,
		d.Audit,
		clock,
		log,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		checkBlockUC,
		d.Audit,
		log,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, d.Audit)
	setApprovalUC := ucAppointment.NewSetApproval(appointmentRepo, d.Audit)
	setPaidUC := ucAppointment.NewSetPaid(appointmentRepo, d.Audit, log)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, clock)

	// ======================================================
	// USE CASES — APPROVALS / FINANCE
	// ======================================================
	listPendingUC := ucApproval.NewListPending(appointmentRepo)
	approveUC := ucApproval.NewApproveRequest(appointmentRepo, d.Audit, log)
	rejectUC := ucApproval.NewRejectRequest(appointmentRepo, d.Audit, log)

	summarizePeriodUC := ucFinance.NewSummarizePeriod(financeRepo, log)
	monthTotalsUC := ucFinance.NewTotalsForMonth(financeRepo, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, log)
	meHandler := handlers.NewMeHandler(db, log)
	studioConfigHandler := handlers.NewStudioConfigHandler(db, d.Cache, log)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		setApprovalUC,
		setPaidUC,
		listAppointmentsUC,
		log,
	)

	approvalHandler := handlers.NewApprovalHandler(listPendingUC, approveUC, rejectUC, log)

	blockHandler := handlers.NewBlockHandler(
		createBlockUC,
		updateBlockUC,
		deleteBlockUC,
		checkBlockUC,
		listBlocksUC,
		log,
	)

	financeHandler := handlers.NewFinanceHandler(summarizePeriodUC, monthTotalsUC, log)
	employeeHandler := handlers.NewEmployeeHandler(db, d.Audit, log)
	clientHandler := handlers.NewClientHandler(db, d.Store, d.Audit, log)
	ocrHandler := handlers.NewOCRHandler()
	auditLogsHandler := handlers.NewAuditLogsHandler(db, timezone.Location(cfg.Timezone), log)

	// ======================================================
	// PÚBLICAS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", middleware.LoginRateLimit(cfg.LoginRatePerMin), authHandler.Login)
	r.GET("/auth/studio/config", studioConfigHandler.Get)

	// ======================================================
	// PROTEGIDAS
	// ======================================================
	// decisões de gestor: aprovação, bloqueio pelo gestor, equipe,
	// financeiro e auditoria
	managerOnly := middleware.RequireRole(models.UserRoleSuperadmin, models.UserRoleAdmin)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/auth/me", meHandler.GetMe)
		secured.PUT("/auth/studio/config", studioConfigHandler.Update)

		// ------------------------------
		// AGENDA
		// ------------------------------
		agenda := secured.Group("/agenda")
		{
			agenda.GET("/dashboard/proximos", appointmentHandler.Upcoming)
			agenda.GET("/agenda-periodo/:ini/:fim", appointmentHandler.ListByPeriod)
			agenda.GET("/funcionario-periodo/:fid/:ini/:fim", appointmentHandler.ListByEmployeeAndPeriod)
			agenda.GET("/funcionario/:fid/:data", appointmentHandler.ListByEmployeeAndDay)
			agenda.GET("/:data", appointmentHandler.ListByDay)

			agenda.POST("/", appointmentHandler.Create)
			agenda.PUT("/:id", appointmentHandler.Update)
			agenda.DELETE("/:id", appointmentHandler.Delete)

			agenda.PUT("/:id/aprovacao", appointmentHandler.SetApproval)
			agenda.PUT("/:id/pagamento", appointmentHandler.SetPaid)
			agenda.PUT("/:id/pagamento-com-historico", appointmentHandler.SetPaid)
		}

		// ------------------------------
		// FUNCIONÁRIOS
		// ------------------------------
		employees := secured.Group("/funcionarios")
		{
			employees.GET("/", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)

			employees.POST("/", managerOnly, employeeHandler.Create)
			employees.PUT("/", managerOnly, employeeHandler.Update)
			employees.DELETE("/:id", managerOnly, employeeHandler.Delete)
		}

		// ------------------------------
		// CLIENTES
		// ------------------------------
		clients := secured.Group("/clientes")
		{
			clients.GET("/", clientHandler.List)
			clients.POST("/", clientHandler.Create)
			clients.GET("/:id", clientHandler.Get)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
			clients.POST("/:id/upload-ficha", clientHandler.UploadForm)
			clients.GET("/:id/historico", clientHandler.ListHistory)
			clients.POST("/:id/historico", clientHandler.AddHistory)
		}

		// ------------------------------
		// SOLICITAÇÕES
		// ------------------------------
		requests := secured.Group("/solicitacoes", managerOnly)
		{
			requests.GET("/", approvalHandler.ListPending)
			requests.POST("/:id/aprovar", approvalHandler.Approve)
			requests.POST("/:id/rejeitar", approvalHandler.Reject)
		}

		// ------------------------------
		// FINANCEIRO
		// ------------------------------
		finance := secured.Group("/financeiro", managerOnly)
		{
			finance.POST("/resumo-periodo", financeHandler.PeriodSummary)
			finance.POST("/totais-mes", financeHandler.MonthTotals)
		}

		// ------------------------------
		// BLOQUEIOS
		// ------------------------------
		blocks := secured.Group("/bloqueios")
		{
			blocks.POST("/", blockHandler.Create)
			blocks.POST("/gestor/bloquear", managerOnly, blockHandler.ManagerBlock)
			blocks.DELETE("/gestor/:id", managerOnly, blockHandler.ManagerUnblock)

			blocks.GET("/funcionario/:fid", blockHandler.ListForEmployee)
			blocks.GET("/ativos", blockHandler.ListActive)
			blocks.GET("/historico/:fid", blockHandler.History)
			blocks.GET("/verificar", blockHandler.Check)

			blocks.GET("/:id", blockHandler.Get)
			blocks.PUT("/:id", blockHandler.Update)
			blocks.DELETE("/:id", blockHandler.Delete)
		}

		secured.POST("/ocr/ficha", ocrHandler.ExtractForm)

		secured.GET("/auditoria/", managerOnly, auditLogsHandler.List)
	}
}
