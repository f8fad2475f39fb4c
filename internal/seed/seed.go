// Package seed loads the demo organisation used in development and demos.
package seed

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	expenseDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/expense"
	leaveDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/leave"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/employee"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Result counts the rows inserted by one run. Rows that already existed are
// not counted.
type Result struct {
	Departments int
	Users       int
	Employees   int
	Leaves      int
	Expenses    int
}

type Seeder struct {
	db         *gorm.DB
	bcryptCost int
	logger     *slog.Logger
}

func NewSeeder(db *gorm.DB, bcryptCost int, logger *slog.Logger) *Seeder {
	return &Seeder{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// clearOrder deletes children before parents.
var clearOrder = []string{"expenses", "leaves", "employees", "users", "departments"}

// Clear removes every row the seeder manages.
func (s *Seeder) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range clearOrder {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return errors.Wrapf(err, "clear %s", table)
			}
		}
		s.logger.Info("seed data cleared", "tables", clearOrder)
		return nil
	})
}

// Run inserts the demo data. Running it twice leaves the database unchanged.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	var res Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deptIDs, err := s.seedDepartments(tx, &res)
		if err != nil {
			return errors.Wrap(err, "seed departments")
		}
		userIDs, err := s.seedUsers(tx, &res)
		if err != nil {
			return errors.Wrap(err, "seed users")
		}
		empIDs, err := s.seedEmployees(tx, userIDs, deptIDs, &res)
		if err != nil {
			return errors.Wrap(err, "seed employees")
		}
		if err := s.seedLeaves(tx, empIDs, &res); err != nil {
			return errors.Wrap(err, "seed leaves")
		}
		if err := s.seedExpenses(tx, empIDs, &res); err != nil {
			return errors.Wrap(err, "seed expenses")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("seed completed",
		"departments", res.Departments,
		"users", res.Users,
		"employees", res.Employees,
		"leaves", res.Leaves,
		"expenses", res.Expenses)
	return &res, nil
}

func (s *Seeder) seedDepartments(tx *gorm.DB, res *Result) (map[string]int64, error) {
	ids := make(map[string]int64, len(departments))
	for _, d := range departments {
		var row departmentDatamodel.Department
		err := tx.Where("name = ?", d.Name).First(&row).Error
		if err == nil {
			ids[d.Name] = row.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(err, "lookup department %s", d.Name)
		}

		desc := d.Description
		row = departmentDatamodel.Department{Name: d.Name, Description: &desc}
		if err := tx.Create(&row).Error; err != nil {
			return nil, errors.Wrapf(err, "insert department %s", d.Name)
		}
		ids[d.Name] = row.ID
		res.Departments++
	}
	return ids, nil
}

func (s *Seeder) seedUsers(tx *gorm.DB, res *Result) (map[string]int64, error) {
	ids := make(map[string]int64, len(users))
	for _, u := range users {
		var row userDatamodel.User
		err := tx.Where("email = ?", u.Email).First(&row).Error
		if err == nil {
			ids[u.Email] = row.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(err, "lookup user %s", u.Email)
		}

		hash, err := auth.HashPassword(u.Password, s.bcryptCost)
		if err != nil {
			return nil, errors.Wrapf(err, "hash password for %s", u.Email)
		}
		row = userDatamodel.User{
			Email:        u.Email,
			Username:     u.Username,
			FullName:     u.FullName,
			PasswordHash: hash,
			Role:         u.Role,
			IsActive:     true,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, errors.Wrapf(err, "insert user %s", u.Email)
		}
		ids[u.Email] = row.ID
		res.Users++
	}
	return ids, nil
}

func (s *Seeder) seedEmployees(tx *gorm.DB, userIDs, deptIDs map[string]int64, res *Result) (map[string]int64, error) {
	ids := make(map[string]int64, len(employees))
	for _, e := range employees {
		var row employeeDatamodel.Employee
		err := tx.Where("email = ?", e.Email).First(&row).Error
		if err == nil {
			ids[e.Email] = row.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(err, "lookup employee %s", e.Email)
		}

		userID, ok := userIDs[e.Email]
		if !ok {
			return nil, errors.Errorf("no user for employee %s", e.Email)
		}
		var deptID *int64
		if id, ok := deptIDs[e.Department]; ok {
			deptID = &id
		}
		phone, avatar := e.Phone, e.Avatar
		row = employeeDatamodel.Employee{
			UserID:           userID,
			DepartmentID:     deptID,
			FullName:         fullNameOf(e.Email),
			Title:            e.Title,
			Email:            e.Email,
			Phone:            &phone,
			AvatarURL:        &avatar,
			StartDate:        e.StartDate,
			IsOnLeave:        e.IsOnLeave,
			AnnualLeaveTotal: employee.DefaultAnnualLeave,
			AnnualLeaveUsed:  e.AnnualUsed,
			SickLeaveTotal:   employee.DefaultSickLeave,
			SickLeaveUsed:    e.SickUsed,
		}
		if err := tx.Create(&row).Error; err != nil {
			return nil, errors.Wrapf(err, "insert employee %s", e.Email)
		}
		ids[e.Email] = row.ID
		res.Employees++
	}
	return ids, nil
}

func (s *Seeder) seedLeaves(tx *gorm.DB, empIDs map[string]int64, res *Result) error {
	for _, l := range leaves {
		empID, ok := empIDs[l.Email]
		if !ok {
			return errors.Errorf("no employee for leave of %s", l.Email)
		}

		var count int64
		if err := tx.Model(&leaveDatamodel.Leave{}).
			Where("employee_id = ? AND start_date = ?", empID, l.StartDate).
			Count(&count).Error; err != nil {
			return errors.Wrapf(err, "lookup leave of %s", l.Email)
		}
		if count > 0 {
			continue
		}

		days, appErr := validation.InclusiveDays(l.StartDate, l.EndDate)
		if appErr != nil {
			return errors.Wrapf(appErr, "leave dates of %s", l.Email)
		}
		row := leaveDatamodel.Leave{
			EmployeeID: empID,
			LeaveType:  l.LeaveType,
			StartDate:  l.StartDate,
			EndDate:    l.EndDate,
			Days:       days,
			Reason:     l.Reason,
			Status:     l.Status,
		}
		if err := tx.Create(&row).Error; err != nil {
			return errors.Wrapf(err, "insert leave of %s", l.Email)
		}
		res.Leaves++
	}
	return nil
}

func (s *Seeder) seedExpenses(tx *gorm.DB, empIDs map[string]int64, res *Result) error {
	for _, x := range expenses {
		empID, ok := empIDs[x.Email]
		if !ok {
			return errors.Errorf("no employee for expense of %s", x.Email)
		}

		var count int64
		if err := tx.Model(&expenseDatamodel.Expense{}).
			Where("employee_id = ? AND date = ? AND amount = ?", empID, x.Date, x.Amount).
			Count(&count).Error; err != nil {
			return errors.Wrapf(err, "lookup expense of %s", x.Email)
		}
		if count > 0 {
			continue
		}

		row := expenseDatamodel.Expense{
			EmployeeID:  empID,
			ExpenseType: x.ExpenseType,
			Amount:      x.Amount,
			Date:        x.Date,
			Description: x.Description,
			Status:      x.Status,
		}
		if err := tx.Create(&row).Error; err != nil {
			return errors.Wrapf(err, "insert expense of %s", x.Email)
		}
		res.Expenses++
	}
	return nil
}

func fullNameOf(email string) string {
	for _, u := range users {
		if u.Email == email {
			return u.FullName
		}
	}
	return email
}
