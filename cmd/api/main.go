package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-resto-admin/internal/bootstrap"
	"go-resto-admin/internal/config"
	"go-resto-admin/internal/handler"
	"go-resto-admin/internal/menusync"
	"go-resto-admin/internal/middleware"
	"go-resto-admin/internal/model"
	"go-resto-admin/internal/repository"
	"go-resto-admin/internal/service"
	"go-resto-admin/internal/ws"
	"go-resto-admin/pkg/cache"
	"go-resto-admin/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		var cerr *config.ConfigError
		if errors.As(err, &cerr) {
			fmt.Fprintln(os.Stderr, "invalid configuration:", cerr)
		} else {
			fmt.Fprintln(os.Stderr, "load configuration:", err)
		}
		os.Exit(1)
	}

	log, err := bootstrap.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 2. Setup Database
	db, err := bootstrap.OpenDB(cfg, log)
	if err != nil {
		log.Fatal("Database setup failed", zap.Error(err))
	}

	// 3. Seed default privileges, roles, and admin user
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	seedPrivilegesRolesAndAdmin(cfg.Auth, userRepo, privilegeRepo, roleRepo, log)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 5. Menu sync
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheet, err := bootstrap.NewSheetSource(ctx, cfg.Sync)
	if err != nil {
		log.Fatal("Spreadsheet client setup failed", zap.Error(err))
	}
	syncer := bootstrap.NewSyncer(db, sheet, wsHub, log)
	scheduler := menusync.NewScheduler(syncer, cfg.Sync.CronSchedule, log)

	if err := scheduler.StartCronSync(cfg.Sync.CronEnabled); err != nil {
		log.Fatal("Cron sync failed to start", zap.Error(err))
	}
	scheduler.StartRealTimeSync(ctx, cfg.Sync.RealTimeEnabled, cfg.Sync.RealTimeInterval)

	// 6. Dependency Injection (Wiring Layers)
	tokens := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	menuRepo := repository.NewMenuItemRepo(db)
	runRepo := repository.NewSyncRunRepo(db)
	aboutRepo := repository.NewAboutRepo(db)

	var exporter service.SheetWriter
	if sheet != nil {
		exporter = sheet
	}

	menuService := service.NewMenuService(menuRepo, wsHub)
	contentService := service.NewContentService(aboutRepo, cache.New[*model.AboutUs](cfg.About.CacheTTL), log)
	syncService := service.NewSyncService(scheduler, runRepo, menuRepo, exporter, log)
	dashService := service.NewDashboardService(menuRepo, runRepo)
	authService := service.NewAuthService(userRepo, tokens)

	menuHandler := handler.NewMenuHandler(menuService)
	contentHandler := handler.NewContentHandler(contentService)
	syncHandler := handler.NewSyncHandler(syncService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo)
	roleHandler := handler.NewRoleHandler(roleRepo, privilegeRepo)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Get("/menu", menuHandler.GetPublicMenu)
	api.Get("/about", contentHandler.GetAbout)

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	admin := api.Group("/admin", middleware.RequireAuth(tokens, userRepo))

	admin.Get("/menu", middleware.RequirePrivilege(model.PrivMenuView), menuHandler.GetMenu)
	admin.Post("/menu", middleware.RequirePrivilege(model.PrivMenuCreate), menuHandler.CreateMenuItem)
	admin.Put("/menu/:id", middleware.RequirePrivilege(model.PrivMenuUpdate), menuHandler.UpdateMenuItem)
	admin.Delete("/menu/:id", middleware.RequirePrivilege(model.PrivMenuDelete), menuHandler.DeleteMenuItem)

	admin.Put("/about", middleware.RequirePrivilege(model.PrivContentUpdate), contentHandler.UpdateAbout)

	admin.Post("/sync/trigger", middleware.RequirePrivilege(model.PrivSyncTrigger), syncHandler.TriggerSync)
	admin.Post("/sync/export", middleware.RequirePrivilege(model.PrivSyncTrigger), syncHandler.ExportMenu)
	admin.Get("/sync/status", middleware.RequirePrivilege(model.PrivSyncView), syncHandler.GetStatus)
	admin.Get("/sync/runs", middleware.RequirePrivilege(model.PrivSyncView), syncHandler.GetRuns)

	admin.Get("/dashboard/stats", middleware.RequirePrivilege(model.PrivDashboardView), dashHandler.GetDashboardStats)
	admin.Get("/dashboard/sync-activity", middleware.RequireAnyPrivilege(model.PrivDashboardView, model.PrivSyncView), dashHandler.GetSyncActivity)

	admin.Get("/users", middleware.RequirePrivilege(model.PrivUserView), userHandler.GetUsers)
	admin.Get("/users/:id", middleware.RequirePrivilege(model.PrivUserView), userHandler.GetUser)
	admin.Get("/roles", middleware.RequirePrivilege(model.PrivUserView), roleHandler.GetRoles)
	admin.Get("/privileges", middleware.RequirePrivilege(model.PrivUserView), roleHandler.GetPrivileges)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.Panic("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	cancel()
	scheduler.Shutdown()
	wsHub.Close()

	log.Info("Server exited")
}

// seedPrivilegesRolesAndAdmin creates default privileges, roles, and admin user if they don't exist
func seedPrivilegesRolesAndAdmin(
	authCfg config.AuthConfig,
	userRepo repository.UserRepository,
	privilegeRepo repository.PrivilegeRepository,
	roleRepo repository.RoleRepository,
	log *zap.Logger,
) {
	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Warn("Failed to seed privileges", zap.Error(err))
	}
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Warn("Failed to seed roles", zap.Error(err))
	}

	allPrivileges, err := privilegeRepo.FindAll()
	if err != nil {
		log.Warn("Failed to load privileges", zap.Error(err))
		return
	}

	for _, code := range []string{model.RoleMasterAdmin, model.RoleAdmin} {
		role, err := roleRepo.FindByCode(code)
		if err != nil || len(role.Privileges) > 0 {
			continue
		}
		if err := roleRepo.ReplacePrivileges(role, model.PrivilegesForRole(code, allPrivileges)); err != nil {
			log.Warn("Failed to assign role privileges", zap.String("role", code), zap.Error(err))
			continue
		}
		log.Info("Role privileges assigned", zap.String("role", code))
	}

	if _, err := userRepo.FindByEmail(authCfg.AdminEmail); err == nil {
		return
	}

	masterRole, err := roleRepo.FindByCode(model.RoleMasterAdmin)
	if err != nil {
		log.Warn("Master admin role missing, admin user not created", zap.Error(err))
		return
	}

	admin := &model.User{
		Email:    authCfg.AdminEmail,
		FullName: "Master Administrator",
		RoleID:   &masterRole.ID,
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(authCfg.AdminPassword); err != nil {
		log.Warn("Failed to hash admin password", zap.Error(err))
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Warn("Failed to create admin user", zap.Error(err))
		return
	}
	log.Info("Admin user created", zap.String("email", admin.Email), zap.String("role", model.RoleMasterAdmin))
}
