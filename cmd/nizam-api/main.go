package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/muntadher/nizam-api/internal/config"
	"github.com/muntadher/nizam-api/internal/database"
	"github.com/muntadher/nizam-api/internal/handlers"
	authmw "github.com/muntadher/nizam-api/internal/middleware"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/internal/store"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx := context.Background()

	var st *store.Store
	if cfg.UsePostgres() {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		st = store.NewPostgres(db)
		logger.Info().Msg("using postgres backend")
	} else {
		st = store.NewMemory()
		logger.Info().Msg("using in-memory backend")
	}

	sessionService := services.NewSessionService(cfg.JWTSecret, cfg.SessionExpiry)
	authService := services.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, sessionService)
	conflictChecker := services.NewConflictChecker(st.StudyItems, st.Notifications, logger)
	workspaceService := services.NewWorkspaceService(st.Workspaces)
	taskService := services.NewTaskService(st.Tasks, conflictChecker)
	calendarService := services.NewCalendarService(st.Events)
	notificationService := services.NewNotificationService(st.Notifications)
	financeService := services.NewFinanceService(st)
	commandCenterService := services.NewCommandCenterService(workspaceService, taskService, notificationService, calendarService)
	expenseService := services.NewExpenseService(st.Expenses)
	roadmapService := services.NewRoadmapService(st.Roadmap)
	backlogService := services.NewBacklogService(st.Backlog)
	techDocService := services.NewTechDocService(st.TechDocs)
	orgRoleService := services.NewOrgRoleService(st.OrgRoles)
	teamService := services.NewTeamService(st.TeamMembers)
	departmentBudgetService := services.NewDepartmentBudgetService(st.DepartmentBudgets)
	supplierService := services.NewSupplierService(st.Suppliers)
	inventoryService := services.NewInventoryService(st.Inventory)
	campaignService := services.NewCampaignService(st.Campaigns)
	contentPlanService := services.NewContentPlanService(st.ContentPlan)
	studyService := services.NewStudyService(st.StudyTerms, st.StudyItems, st.Courses)
	fitnessService := services.NewFitnessService(st.Fitness)

	authHandler := handlers.NewAuthHandler(authService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)
	taskHandler := handlers.NewTaskHandler(taskService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	commandCenterHandler := handlers.NewCommandCenterHandler(commandCenterService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)
	backlogHandler := handlers.NewBacklogHandler(backlogService)
	techDocHandler := handlers.NewTechDocHandler(techDocService)
	orgRoleHandler := handlers.NewOrgRoleHandler(orgRoleService)
	teamHandler := handlers.NewTeamHandler(teamService)
	departmentBudgetHandler := handlers.NewDepartmentBudgetHandler(departmentBudgetService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	contentPlanHandler := handlers.NewContentPlanHandler(contentPlanService)
	studyHandler := handlers.NewStudyHandler(studyService)
	fitnessHandler := handlers.NewFitnessHandler(fitnessService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())
	app.Use(authmw.RequestLogger(logger))

	api := app.Group("/api")

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(authmw.Auth(sessionService))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	protected.Get("/workspaces", workspaceHandler.List)
	protected.Get("/workspaces/:wid", workspaceHandler.Get)

	protected.Get("/workspaces/:wid/tasks", taskHandler.List)
	protected.Post("/workspaces/:wid/tasks", taskHandler.Create)
	protected.Get("/workspaces/:wid/tasks/:id", taskHandler.Get)
	protected.Put("/workspaces/:wid/tasks/:id", taskHandler.Update)
	protected.Delete("/workspaces/:wid/tasks/:id", taskHandler.Delete)

	protected.Get("/workspaces/:wid/expenses", expenseHandler.List)
	protected.Post("/workspaces/:wid/expenses", expenseHandler.Create)
	protected.Put("/workspaces/:wid/expenses/:id", expenseHandler.Update)
	protected.Delete("/workspaces/:wid/expenses/:id", expenseHandler.Delete)

	protected.Get("/workspaces/:wid/roadmap", roadmapHandler.List)
	protected.Post("/workspaces/:wid/roadmap", roadmapHandler.Create)
	protected.Put("/workspaces/:wid/roadmap/:id", roadmapHandler.Update)
	protected.Delete("/workspaces/:wid/roadmap/:id", roadmapHandler.Delete)

	protected.Get("/workspaces/:wid/backlog", backlogHandler.List)
	protected.Post("/workspaces/:wid/backlog", backlogHandler.Create)
	protected.Put("/workspaces/:wid/backlog/:id", backlogHandler.Update)
	protected.Delete("/workspaces/:wid/backlog/:id", backlogHandler.Delete)

	protected.Get("/workspaces/:wid/docs", techDocHandler.List)
	protected.Post("/workspaces/:wid/docs", techDocHandler.Create)
	protected.Get("/workspaces/:wid/docs/:id", techDocHandler.Get)
	protected.Put("/workspaces/:wid/docs/:id", techDocHandler.Update)
	protected.Delete("/workspaces/:wid/docs/:id", techDocHandler.Delete)

	protected.Get("/workspaces/:wid/org/roles", orgRoleHandler.List)
	protected.Post("/workspaces/:wid/org/roles", orgRoleHandler.Create)
	protected.Put("/workspaces/:wid/org/roles/:id", orgRoleHandler.Update)
	protected.Delete("/workspaces/:wid/org/roles/:id", orgRoleHandler.Delete)

	protected.Get("/workspaces/:wid/team", teamHandler.List)
	protected.Post("/workspaces/:wid/team", teamHandler.Create)
	protected.Put("/workspaces/:wid/team/:id", teamHandler.Update)
	protected.Delete("/workspaces/:wid/team/:id", teamHandler.Delete)

	protected.Get("/workspaces/:wid/budgets", departmentBudgetHandler.List)
	protected.Post("/workspaces/:wid/budgets", departmentBudgetHandler.Create)
	protected.Put("/workspaces/:wid/budgets/:id", departmentBudgetHandler.Update)
	protected.Delete("/workspaces/:wid/budgets/:id", departmentBudgetHandler.Delete)

	protected.Get("/workspaces/:wid/suppliers", supplierHandler.List)
	protected.Post("/workspaces/:wid/suppliers", supplierHandler.Create)
	protected.Put("/workspaces/:wid/suppliers/:id", supplierHandler.Update)
	protected.Delete("/workspaces/:wid/suppliers/:id", supplierHandler.Delete)

	protected.Get("/workspaces/:wid/inventory", inventoryHandler.List)
	protected.Post("/workspaces/:wid/inventory", inventoryHandler.Create)
	protected.Put("/workspaces/:wid/inventory/:id", inventoryHandler.Update)
	protected.Delete("/workspaces/:wid/inventory/:id", inventoryHandler.Delete)

	protected.Get("/workspaces/:wid/campaigns", campaignHandler.List)
	protected.Post("/workspaces/:wid/campaigns", campaignHandler.Create)
	protected.Put("/workspaces/:wid/campaigns/:id", campaignHandler.Update)
	protected.Delete("/workspaces/:wid/campaigns/:id", campaignHandler.Delete)

	protected.Get("/workspaces/:wid/content-plan", contentPlanHandler.List)
	protected.Post("/workspaces/:wid/content-plan", contentPlanHandler.Create)
	protected.Post("/workspaces/:wid/content-plan/reset", contentPlanHandler.Reset)
	protected.Put("/workspaces/:wid/content-plan/:id", contentPlanHandler.Update)
	protected.Delete("/workspaces/:wid/content-plan/:id", contentPlanHandler.Delete)

	protected.Get("/workspaces/:wid/study/terms", studyHandler.ListTerms)
	protected.Post("/workspaces/:wid/study/terms", studyHandler.CreateTerm)
	protected.Delete("/workspaces/:wid/study/terms/:id", studyHandler.DeleteTerm)
	protected.Get("/workspaces/:wid/study/items", studyHandler.ListItems)
	protected.Post("/workspaces/:wid/study/items", studyHandler.CreateItem)
	protected.Put("/workspaces/:wid/study/items/:id", studyHandler.UpdateItem)
	protected.Delete("/workspaces/:wid/study/items/:id", studyHandler.DeleteItem)

	protected.Get("/workspaces/:wid/courses", studyHandler.ListCourses)
	protected.Post("/workspaces/:wid/courses", studyHandler.CreateCourse)
	protected.Put("/workspaces/:wid/courses/:id", studyHandler.UpdateCourse)
	protected.Delete("/workspaces/:wid/courses/:id", studyHandler.DeleteCourse)

	protected.Get("/workspaces/:wid/fitness", fitnessHandler.List)
	protected.Post("/workspaces/:wid/fitness", fitnessHandler.Create)
	protected.Delete("/workspaces/:wid/fitness/:id", fitnessHandler.Delete)

	protected.Get("/workspaces/:wid/finance", financeHandler.Bundle)
	protected.Post("/workspaces/:wid/finance/transactions", financeHandler.CreateTransaction)
	protected.Delete("/workspaces/:wid/finance/transactions/:id", financeHandler.DeleteTransaction)
	protected.Put("/workspaces/:wid/finance/budget", financeHandler.SetBudget)
	protected.Post("/workspaces/:wid/finance/goals", financeHandler.CreateGoal)
	protected.Put("/workspaces/:wid/finance/goals/:id", financeHandler.UpdateGoal)
	protected.Delete("/workspaces/:wid/finance/goals/:id", financeHandler.DeleteGoal)
	protected.Post("/workspaces/:wid/finance/debts", financeHandler.CreateDebt)
	protected.Put("/workspaces/:wid/finance/debts/:id", financeHandler.UpdateDebt)
	protected.Delete("/workspaces/:wid/finance/debts/:id", financeHandler.DeleteDebt)
	protected.Post("/workspaces/:wid/finance/subscriptions", financeHandler.CreateSubscription)
	protected.Put("/workspaces/:wid/finance/subscriptions/:id", financeHandler.UpdateSubscription)
	protected.Delete("/workspaces/:wid/finance/subscriptions/:id", financeHandler.DeleteSubscription)

	protected.Get("/command-center", commandCenterHandler.Overview)

	protected.Get("/calendar", calendarHandler.List)
	protected.Post("/calendar", calendarHandler.Create)
	protected.Put("/calendar/:id", calendarHandler.Update)
	protected.Delete("/calendar/:id", calendarHandler.Delete)

	protected.Get("/notifications", notificationHandler.List)
	protected.Post("/notifications", notificationHandler.Create)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
