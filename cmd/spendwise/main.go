package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/spendwise/spendwise/db"
	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/finance/application"
	"github.com/spendwise/spendwise/internal/finance/infrastructure"
	"github.com/spendwise/spendwise/internal/finance/interfaces"
	"github.com/spendwise/spendwise/internal/user"
)

// softDeleteRetention is how long soft-deleted rows are kept before the
// nightly purge removes them for good.
const softDeleteRetention = 30 * 24 * time.Hour

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	authMiddleware     func(http.Handler) http.Handler
	authHandler        *auth.Handler
	userHandler        *user.Handler
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	accountTypeHandler *interfaces.AccountTypeHandler
	budgetHandler      *interfaces.BudgetHandler
	noteHandler        *interfaces.NoteHandler
}

func NewServer(
	authMiddleware func(http.Handler) http.Handler,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	transactionHandler *interfaces.TransactionHandler,
	categoryHandler *interfaces.CategoryHandler,
	accountTypeHandler *interfaces.AccountTypeHandler,
	budgetHandler *interfaces.BudgetHandler,
	noteHandler *interfaces.NoteHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authMiddleware:     authMiddleware,
		authHandler:        authHandler,
		userHandler:        userHandler,
		transactionHandler: transactionHandler,
		categoryHandler:    categoryHandler,
		accountTypeHandler: accountTypeHandler,
		budgetHandler:      budgetHandler,
		noteHandler:        noteHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()

	// TRANSACTIONS API
	protectedRoutes.Handle("GET /api/protected/transactions",
		s.authMiddleware(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	protectedRoutes.Handle("POST /api/protected/transactions",
		s.authMiddleware(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("PATCH /api/protected/transactions/{id}",
		s.authMiddleware(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	protectedRoutes.Handle("DELETE /api/protected/transactions/{id}",
		s.authMiddleware(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions/bookmarked",
		s.authMiddleware(http.HandlerFunc(s.transactionHandler.GetBookmarkedTransactions)))
	protectedRoutes.Handle("PATCH /api/protected/transactions/{id}/bookmark",
		s.authMiddleware(http.HandlerFunc(s.transactionHandler.ToggleBookmark)))
	protectedRoutes.Handle("GET /api/protected/transactions/report",
		s.authMiddleware(http.HandlerFunc(s.transactionHandler.GetMonthlyReport)))

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/protected/categories",
		s.authMiddleware(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/protected/categories",
		s.authMiddleware(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("PATCH /api/protected/categories/{id}",
		s.authMiddleware(http.HandlerFunc(s.categoryHandler.RenameCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{id}",
		s.authMiddleware(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// ACCOUNT TYPES API
	protectedRoutes.Handle("GET /api/protected/account-types",
		s.authMiddleware(http.HandlerFunc(s.accountTypeHandler.GetAccountTypes)))
	protectedRoutes.Handle("POST /api/protected/account-types",
		s.authMiddleware(http.HandlerFunc(s.accountTypeHandler.CreateAccountType)))
	protectedRoutes.Handle("PATCH /api/protected/account-types/{id}",
		s.authMiddleware(http.HandlerFunc(s.accountTypeHandler.RenameAccountType)))
	protectedRoutes.Handle("DELETE /api/protected/account-types/{id}",
		s.authMiddleware(http.HandlerFunc(s.accountTypeHandler.DeleteAccountType)))

	// BUDGETS API
	protectedRoutes.Handle("GET /api/protected/budgets",
		s.authMiddleware(http.HandlerFunc(s.budgetHandler.GetBudgets)))
	protectedRoutes.Handle("POST /api/protected/budgets",
		s.authMiddleware(http.HandlerFunc(s.budgetHandler.CreateBudget)))
	protectedRoutes.Handle("PATCH /api/protected/budgets/{id}",
		s.authMiddleware(http.HandlerFunc(s.budgetHandler.UpdateBudget)))
	protectedRoutes.Handle("DELETE /api/protected/budgets/{id}",
		s.authMiddleware(http.HandlerFunc(s.budgetHandler.DeleteBudget)))
	protectedRoutes.Handle("GET /api/protected/budgets/report",
		s.authMiddleware(http.HandlerFunc(s.budgetHandler.GetMonthlyReport)))

	// NOTES API
	protectedRoutes.Handle("GET /api/protected/notes",
		s.authMiddleware(http.HandlerFunc(s.noteHandler.GetNotes)))
	protectedRoutes.Handle("POST /api/protected/notes",
		s.authMiddleware(http.HandlerFunc(s.noteHandler.CreateNote)))
	protectedRoutes.Handle("PATCH /api/protected/notes/{id}",
		s.authMiddleware(http.HandlerFunc(s.noteHandler.UpdateNote)))
	protectedRoutes.Handle("DELETE /api/protected/notes/{id}",
		s.authMiddleware(http.HandlerFunc(s.noteHandler.DeleteNote)))
	protectedRoutes.Handle("PATCH /api/protected/notes/{id}/like",
		s.authMiddleware(http.HandlerFunc(s.noteHandler.ToggleLiked)))
	protectedRoutes.Handle("PATCH /api/protected/notes/{id}/pin",
		s.authMiddleware(http.HandlerFunc(s.noteHandler.TogglePinned)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	jwtManager, err := auth.NewJWTManager()
	if err != nil {
		log.Fatalf("Could not initialize JWT manager: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewUserHandler(userService, respondJSON, respondError)

	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewAuthHandler(authService, respondJSON, respondError)
	authMiddleware := auth.JWTAccessTokenMiddleware(jwtManager, userService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	accountTypeRepo := infrastructure.NewAccountTypeRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)
	noteRepo := infrastructure.NewNoteRepository(dbService.DB)
	maintenanceRepo := infrastructure.NewMaintenanceRepository(dbService.DB)

	defaultsService := application.NewDefaultsService(userService, categoryRepo, accountTypeRepo)
	categoryService := application.NewCategoryService(categoryRepo, defaultsService)
	accountTypeService := application.NewAccountTypeService(accountTypeRepo, defaultsService)
	transactionService := application.NewTransactionService(transactionRepo, categoryService)
	budgetService := application.NewBudgetService(budgetRepo, transactionRepo)
	noteService := application.NewNoteService(noteRepo)

	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	accountTypeHandler := interfaces.NewAccountTypeHandler(accountTypeService, respondJSON, respondError)
	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)
	noteHandler := interfaces.NewNoteHandler(noteService, respondJSON, respondError)

	server := NewServer(
		authMiddleware,
		authHandler,
		userHandler,
		transactionHandler,
		categoryHandler,
		accountTypeHandler,
		budgetHandler,
		noteHandler,
	)
	server.RegisterRoutes()

	if err := StartPurgeScheduler(maintenanceRepo); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	handler := loggingMiddleware(http.HandlerFunc(server.router.ServeHTTP))
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func StartPurgeScheduler(repo *infrastructure.MaintenanceRepository) error {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		purged, err := repo.PurgeSoftDeleted(time.Now().UTC().Add(-softDeleteRetention))
		if err != nil {
			log.Printf("Error purging soft-deleted records: %v", err)
		} else {
			log.Printf("Purged %d soft-deleted records.", purged)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}
