package rest

import (
	"log/slog"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	authPostgres "github.com/frahmantamala/hr-management/internal/auth/postgres"
	"github.com/frahmantamala/hr-management/internal/core/events"
	"github.com/frahmantamala/hr-management/internal/dashboard"
	dashboardPostgres "github.com/frahmantamala/hr-management/internal/dashboard/postgres"
	"github.com/frahmantamala/hr-management/internal/department"
	departmentPostgres "github.com/frahmantamala/hr-management/internal/department/postgres"
	"github.com/frahmantamala/hr-management/internal/employee"
	employeePostgres "github.com/frahmantamala/hr-management/internal/employee/postgres"
	"github.com/frahmantamala/hr-management/internal/expense"
	expensePostgres "github.com/frahmantamala/hr-management/internal/expense/postgres"
	"github.com/frahmantamala/hr-management/internal/leave"
	leavePostgres "github.com/frahmantamala/hr-management/internal/leave/postgres"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/frahmantamala/hr-management/internal/user"
	userPostgres "github.com/frahmantamala/hr-management/internal/user/postgres"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth       *auth.Handler
	RBAC       *auth.RBACAuthorization
	User       *user.Handler
	Department *department.Handler
	Employee   *employee.Handler
	Leave      *leave.Handler
	Expense    *expense.Handler
	Dashboard  *dashboard.Handler
}

// NewHandlers wires repositories, services and handlers. Leave approvals
// reach the employee balances through bus, so the employee event handler is
// registered here as well.
func NewHandlers(db *gorm.DB, reportDB *sqlx.DB, bus *events.EventBus, security internal.SecurityConfig, logger *slog.Logger) *Handlers {
	base := transport.NewBaseHandler(logger)

	userRepo := userPostgres.NewUserRepository(db)
	departmentRepo := departmentPostgres.NewDepartmentRepository(db)

	tokenGen := auth.NewJWTTokenGenerator(security.JWTSecret, security.AccessTokenDuration)
	authService := auth.NewService(authPostgres.NewCredentialRepository(db), tokenGen, security.BCryptCost, logger)
	userService := user.NewService(userRepo, logger)
	departmentService := department.NewService(departmentRepo, logger)
	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(db), userRepo, departmentRepo, logger)
	leaveService := leave.NewService(leavePostgres.NewLeaveRepository(db), employeeService, bus, logger)
	expenseService := expense.NewService(expensePostgres.NewExpenseRepository(db), employeeService, bus, logger)
	dashboardService := dashboard.NewService(dashboardPostgres.NewDashboardRepository(reportDB), logger)

	employee.NewEventHandler(employeeService, logger).RegisterEventHandlers(bus)

	return &Handlers{
		Auth:       auth.NewHandler(base, authService),
		RBAC:       authService.RBACAuthorization(),
		User:       user.NewHandler(base, userService),
		Department: department.NewHandler(base, departmentService),
		Employee:   employee.NewHandler(base, employeeService),
		Leave:      leave.NewHandler(base, leaveService),
		Expense:    expense.NewHandler(base, expenseService),
		Dashboard:  dashboard.NewHandler(base, dashboardService),
	}
}
