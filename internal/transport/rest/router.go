package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-management/api"
	"github.com/frahmantamala/hr-management/internal/transport/middleware"
	"github.com/frahmantamala/hr-management/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

type welcome struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

const Version = "1.0.0"

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, component string, h *Handlers, allowedOrigins []string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db, component)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		h.Auth.WriteJSON(w, http.StatusOK, welcome{
			Message: "FastHR API'ye hoş geldiniz! 🚀",
			Version: Version,
			Docs:    "/swagger/index.html",
		})
	})

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.Spec)
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", h.Auth.Login)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)
			pr.Use(middleware.UserContext)

			pr.Get("/auth/me", h.User.GetCurrentUser)

			pr.With(h.RBAC.RequireAdmin()).Get("/users", h.User.ListUsers)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Get("/", h.Department.GetDepartments)
				dr.Get("/{id}", h.Department.GetDepartment)
				dr.With(h.RBAC.RequireAdmin()).Post("/", h.Department.CreateDepartment)
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", h.Employee.ListEmployees)
				er.Get("/on-leave", h.Employee.ListOnLeave)
				er.Get("/{id}", h.Employee.GetEmployee)
				er.With(h.RBAC.RequireAdmin()).Post("/", h.Employee.CreateEmployee)
				er.With(h.RBAC.RequireApprover()).Put("/{id}", h.Employee.UpdateEmployee)
			})

			pr.Route("/leaves", func(lr chi.Router) {
				lr.Get("/", h.Leave.ListLeaves)
				lr.Post("/", h.Leave.CreateLeave)
				lr.Get("/balance/{employee_id}", h.Employee.GetLeaveBalance)
				lr.Get("/{id}", h.Leave.GetLeave)
				lr.Delete("/{id}", h.Leave.DeleteLeave)

				// Manager routes with role protection
				lr.Group(func(mr chi.Router) {
					mr.Use(h.RBAC.RequireApprover())
					mr.Put("/{id}/approve", h.Leave.ApproveLeave)
					mr.Put("/{id}/reject", h.Leave.RejectLeave)
				})
			})

			pr.Route("/expenses", func(xr chi.Router) {
				xr.Get("/", h.Expense.ListExpenses)
				xr.Post("/", h.Expense.CreateExpense)
				xr.Get("/summary/stats", h.Expense.GetSummary)
				xr.Get("/{id}", h.Expense.GetExpense)
				xr.Delete("/{id}", h.Expense.DeleteExpense)

				xr.Group(func(mr chi.Router) {
					mr.Use(h.RBAC.RequireApprover())
					mr.Get("/export", h.Expense.ExportExpenses)
					mr.Put("/{id}/approve", h.Expense.ApproveExpense)
					mr.Put("/{id}/reject", h.Expense.RejectExpense)
				})
			})

			pr.Get("/dashboard/stats", h.Dashboard.GetStats)
		})
	})
}
