package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	leaveDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/leave"
)

const (
	DefaultAnnualLeave = 14
	DefaultSickLeave   = 10
)

type Employee struct {
	ID               int64
	UserID           int64
	DepartmentID     *int64
	DepartmentName   string
	FullName         string
	Title            string
	Email            string
	Phone            *string
	AvatarURL        *string
	StartDate        string
	IsOnLeave        bool
	Address          *string
	BirthDate        *string
	EmergencyContact *string
	Salary           *float64
	AnnualLeaveTotal int
	AnnualLeaveUsed  int
	SickLeaveTotal   int
	SickLeaveUsed    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Card is the directory projection. It carries no personal data.
type Card struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Title      string `json:"title"`
	AvatarURL  string `json:"avatar_url"`
	IsOnLeave  bool   `json:"is_on_leave"`
	Department string `json:"department"`
}

// Detail extends Card with contact, personal and salary fields.
type Detail struct {
	Card
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	StartDate        string   `json:"start_date"`
	Address          *string  `json:"address"`
	BirthDate        *string  `json:"birth_date"`
	EmergencyContact *string  `json:"emergency_contact"`
	Salary           *float64 `json:"salary"`
}

type LeaveBalance struct {
	Annual     int `json:"annual"`
	AnnualUsed int `json:"annual_used"`
	Sick       int `json:"sick"`
	SickUsed   int `json:"sick_used"`
}

func (e *Employee) ToCard() *Card {
	return &Card{
		ID:         e.ID,
		FullName:   e.FullName,
		Title:      e.Title,
		AvatarURL:  e.avatar(),
		IsOnLeave:  e.IsOnLeave,
		Department: e.DepartmentName,
	}
}

func (e *Employee) ToDetail() *Detail {
	d := &Detail{
		Card:             *e.ToCard(),
		Email:            e.Email,
		StartDate:        e.StartDate,
		Address:          e.Address,
		BirthDate:        e.BirthDate,
		EmergencyContact: e.EmergencyContact,
		Salary:           e.Salary,
	}
	if e.Phone != nil {
		d.Phone = *e.Phone
	}
	return d
}

func (e *Employee) Balance() *LeaveBalance {
	return &LeaveBalance{
		Annual:     e.AnnualLeaveTotal,
		AnnualUsed: e.AnnualLeaveUsed,
		Sick:       e.SickLeaveTotal,
		SickUsed:   e.SickLeaveUsed,
	}
}

// avatar falls back to the initials of the first and last name.
func (e *Employee) avatar() string {
	if e.AvatarURL != nil && *e.AvatarURL != "" {
		return *e.AvatarURL
	}
	return Initials(e.FullName)
}

func Initials(fullName string) string {
	var first, last rune
	inWord := false
	for _, r := range fullName {
		if r == ' ' {
			inWord = false
			continue
		}
		if !inWord {
			if first == 0 {
				first = r
			} else {
				last = r
			}
			inWord = true
		}
	}
	out := []rune{}
	if first != 0 {
		out = append(out, first)
	}
	if last != 0 {
		out = append(out, last)
	}
	return string(out)
}

// LeaveCounter maps a leave type to the used-days column it consumes.
// Types without an allowance return an empty string.
func LeaveCounter(leaveType string) string {
	switch leaveType {
	case leaveDatamodel.TypeAnnual:
		return "annual_leave_used"
	case leaveDatamodel.TypeSick:
		return "sick_leave_used"
	default:
		return ""
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:               e.ID,
		UserID:           e.UserID,
		DepartmentID:     e.DepartmentID,
		FullName:         e.FullName,
		Title:            e.Title,
		Email:            e.Email,
		Phone:            e.Phone,
		AvatarURL:        e.AvatarURL,
		StartDate:        e.StartDate,
		IsOnLeave:        e.IsOnLeave,
		Address:          e.Address,
		BirthDate:        e.BirthDate,
		EmergencyContact: e.EmergencyContact,
		Salary:           e.Salary,
		AnnualLeaveTotal: e.AnnualLeaveTotal,
		AnnualLeaveUsed:  e.AnnualLeaveUsed,
		SickLeaveTotal:   e.SickLeaveTotal,
		SickLeaveUsed:    e.SickLeaveUsed,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	out := &Employee{
		ID:               e.ID,
		UserID:           e.UserID,
		DepartmentID:     e.DepartmentID,
		FullName:         e.FullName,
		Title:            e.Title,
		Email:            e.Email,
		Phone:            e.Phone,
		AvatarURL:        e.AvatarURL,
		StartDate:        e.StartDate,
		IsOnLeave:        e.IsOnLeave,
		Address:          e.Address,
		BirthDate:        e.BirthDate,
		EmergencyContact: e.EmergencyContact,
		Salary:           e.Salary,
		AnnualLeaveTotal: e.AnnualLeaveTotal,
		AnnualLeaveUsed:  e.AnnualLeaveUsed,
		SickLeaveTotal:   e.SickLeaveTotal,
		SickLeaveUsed:    e.SickLeaveUsed,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.Department != nil {
		out.DepartmentName = e.Department.Name
	}
	return out
}
