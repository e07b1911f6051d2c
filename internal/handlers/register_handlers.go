package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/middleware"
	"github.com/kmateev/biz_admin_app/internal/platform/config"
	"github.com/kmateev/biz_admin_app/internal/repositories/database/pgsql"
)

// RegisterRoutes wires every repository, service and handler onto the engine.
// The database pool is injected so tests can substitute their own.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) error {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories share the one pool.
	userRepo := pgsql.NewUserRepository(dbPool)
	accountRepo := pgsql.NewAccountRepository(dbPool)
	journalRepo := pgsql.NewJournalRepository(dbPool)
	supplierRepo := pgsql.NewSupplierRepository(dbPool)
	receivableRepo := pgsql.NewReceivableRepository(dbPool)
	payableRepo := pgsql.NewPayableRepository(dbPool)
	equityRepo := pgsql.NewEquityRepository(dbPool)
	depreciationRepo := pgsql.NewDepreciationRepository(dbPool)
	cashRepo := pgsql.NewCashRepository(dbPool)
	serviceTypeRepo := pgsql.NewServiceTypeRepository(dbPool)
	requestRepo := pgsql.NewRequestRepository(dbPool)
	staffRepo := pgsql.NewStaffRepository(dbPool)
	categoryRepo := pgsql.NewCategoryRepository(dbPool)
	productRepo := pgsql.NewProductRepository(dbPool)
	managerRepo := pgsql.NewManagerRepository(dbPool)
	repRepo := pgsql.NewSalesRepRepository(dbPool)
	clientRepo := pgsql.NewClientRepository(dbPool)
	noticeRepo := pgsql.NewNoticeRepository(dbPool)
	taskRepo := pgsql.NewTaskRepository(dbPool)
	reportRepo := pgsql.NewReportRepository(dbPool)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration)
	userService := services.NewUserService(userRepo)
	accountService := services.NewAccountService(accountRepo)
	journalService := services.NewJournalService(journalRepo, accountRepo)
	supplierService := services.NewSupplierService(supplierRepo, accountRepo)
	receivableService := services.NewReceivableService(receivableRepo, accountRepo, clientRepo)
	payableService := services.NewPayableService(payableRepo, accountRepo, supplierRepo)
	capitalService := services.NewCapitalService(equityRepo, depreciationRepo, accountRepo)
	cashService := services.NewCashService(cashRepo)
	serviceTypeService := services.NewServiceTypeService(serviceTypeRepo)
	requestService := services.NewRequestService(requestRepo, serviceTypeRepo, userRepo)
	staffService := services.NewStaffService(staffRepo)
	catalogService := services.NewCatalogService(categoryRepo, productRepo)
	salesService := services.NewSalesService(managerRepo, repRepo, clientRepo)
	noticeboardService := services.NewNoticeboardService(noticeRepo, taskRepo, repRepo)
	reportService := services.NewReportService(reportRepo, repRepo, clientRepo)

	// Public authentication routes, rate limited per client IP.
	loginRate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		return err
	}
	loginLimiter := limiter.New(memorystore.NewStore(), loginRate)
	auth := r.Group("/api/auth", middleware.RateLimit(loginLimiter))
	registerAuthRoutes(auth, authService)

	// Everything under /api/v1 requires a valid bearer token.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	registerUserRoutes(v1, userService)
	registerOperationsRoutes(v1, serviceTypeService, requestService, staffService)

	financial := v1.Group("/financial")
	registerAccountRoutes(financial, accountService)
	registerJournalRoutes(financial, journalService)
	registerSupplierRoutes(financial, supplierService)
	registerInvoiceRoutes(financial, receivableService, payableService)
	registerCapitalRoutes(financial, capitalService)
	registerCashRoutes(financial, cashService)

	catalog := v1.Group("/catalog")
	registerCatalogRoutes(catalog, catalogService)

	sales := v1.Group("/sales")
	registerSalesRoutes(sales, salesService)
	registerNoticeboardRoutes(sales, noticeboardService)
	registerReportRoutes(sales, reportService)

	setupSwaggerRoutes(r, cfg)

	logger.Info("Routes registered")
	return nil
}

// registerCustomValidators attaches domain validators to gin's binding engine.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("channeltype", func(fl validator.FieldLevel) bool {
		candidate := domain.ChannelType(fl.Field().String())
		for _, known := range domain.KnownChannelTypes {
			if candidate == known {
				return true
			}
		}
		return false
	})
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
