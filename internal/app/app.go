package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/controller"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/service"
	"portfolio_backend/pkg/configwatcher"
	"portfolio_backend/pkg/database"
	"portfolio_backend/pkg/logger"
	"portfolio_backend/pkg/monitoring"
	"portfolio_backend/pkg/security"
	"portfolio_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	portfolio *repository.PortfolioRepository
	skill     *repository.SkillRepository
	style     *repository.StyleRepository
	resource  *repository.ResourceRepository
}

type services struct {
	auth           *service.AuthService
	storage        *service.StorageService
	portfolio      *service.PortfolioService
	stats          *service.StatsService
	timeline       *service.TimelineService
	skill          *service.SkillService
	style          *service.StyleService
	recommendation *service.RecommendationService
	media          *service.MediaService
	catalog        *service.CatalogService
}

type controllers struct {
	auth           *controller.AuthController
	portfolio      *controller.PortfolioController
	item           *controller.ItemController
	skill          *controller.SkillController
	style          *controller.StyleController
	recommendation *controller.RecommendationController
	catalog        *controller.CatalogController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		portfolio: repository.NewPortfolioRepository(db),
		skill:     repository.NewSkillRepository(db),
		style:     repository.NewStyleRepository(db),
		resource:  repository.NewResourceRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.stats = service.NewStatsService(repos.portfolio, repos.skill, cfg.Stats.TopSkillLimit)
	s.portfolio = service.NewPortfolioService(repos.portfolio, repos.skill, repos.user, s.stats, db)
	s.timeline = service.NewTimelineService(repos.portfolio, repos.skill)
	s.skill = service.NewSkillService(repos.skill, s.portfolio)
	s.style = service.NewStyleService(repos.style, rdb)
	s.recommendation = service.NewRecommendationService(repos.resource, s.style, cfg.Recommender)
	s.media = service.NewMediaService(repos.portfolio, s.portfolio, s.storage)
	s.catalog = service.NewCatalogService(repos.resource, repos.style)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth, s.storage),
		portfolio:      controller.NewPortfolioController(s.portfolio, s.stats, s.timeline),
		item:           controller.NewItemController(s.portfolio, s.media),
		skill:          controller.NewSkillController(s.skill),
		style:          controller.NewStyleController(s.style),
		recommendation: controller.NewRecommendationController(s.recommendation),
		catalog:        controller.NewCatalogController(s.catalog),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("portfolio-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	// 推荐与统计的计算参数支持热更新，改配置文件即可生效，无需重启。
	// 回调在 watcher 协程里执行，只能通过服务的带锁 setter 下发参数。
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.recommendation.SetConfig(newCfg.Recommender)
		services.stats.SetTopSkillLimit(newCfg.Stats.TopSkillLimit)
		logger.Log.Info("Runtime config reloaded",
			zap.Float64("hoursPerWeek", newCfg.Recommender.HoursPerWeek),
			zap.Int("topSkillLimit", newCfg.Stats.TopSkillLimit))
	})
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(reloaded interface{}) {
		newCfg, ok := reloaded.(*config.Config)
		if !ok {
			return
		}
		for _, callback := range app.configCallbacks {
			callback(newCfg)
		}
	})

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
