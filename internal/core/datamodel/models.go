// Package datamodel lists the persisted tables.
package datamodel

import (
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	expenseDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/expense"
	leaveDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/leave"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

// Models returns every table model in dependency order, for AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&userDatamodel.User{},
		&departmentDatamodel.Department{},
		&employeeDatamodel.Employee{},
		&leaveDatamodel.Leave{},
		&expenseDatamodel.Expense{},
	}
}
