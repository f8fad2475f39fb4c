// Package testutil provides an isolated in-memory database for tests.
package testutil

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/frahmantamala/hr-management/internal/core/datamodel"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a fresh in-memory sqlite database with the full schema. Each
// call gets its own database name so parallel specs never share state.
func NewDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(datamodel.Models()...); err != nil {
		return nil, err
	}
	return db, nil
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Logger discards output; specs assert on behaviour, not log lines.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateUser inserts an active user with a low-cost bcrypt hash of password.
func CreateUser(db *gorm.DB, email, fullName, role, password string) (*userDatamodel.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	u := &userDatamodel.User{
		Email:        email,
		Username:     email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	return u, db.Create(u).Error
}

// CreateEmployee inserts an employee record linked to userID with the
// default leave allowances.
func CreateEmployee(db *gorm.DB, userID int64, departmentID *int64, fullName, email string) (*employeeDatamodel.Employee, error) {
	e := &employeeDatamodel.Employee{
		UserID:           userID,
		DepartmentID:     departmentID,
		FullName:         fullName,
		Title:            "Engineer",
		Email:            email,
		StartDate:        "2023-01-15",
		AnnualLeaveTotal: 14,
		SickLeaveTotal:   10,
	}
	return e, db.Create(e).Error
}
