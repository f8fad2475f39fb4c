package seed

import (
	expenseDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/expense"
	leaveDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/leave"
)

type departmentSeed struct {
	Name        string
	Description string
}

type userSeed struct {
	Email    string
	Username string
	FullName string
	Password string
	Role     string
}

// employeeSeed is linked to its user through Email.
type employeeSeed struct {
	Email      string
	Title      string
	Phone      string
	Avatar     string
	Department string
	StartDate  string
	IsOnLeave  bool
	AnnualUsed int
	SickUsed   int
}

type leaveSeed struct {
	Email     string
	LeaveType string
	StartDate string
	EndDate   string
	Reason    string
	Status    string
}

type expenseSeed struct {
	Email       string
	ExpenseType string
	Amount      float64
	Date        string
	Description string
	Status      string
}

const (
	AdminEmail      = "admin@fasthr.com"
	AdminPassword   = "admin123"
	DefaultPassword = "user123"
)

var departments = []departmentSeed{
	{"Yazılım", "Yazılım geliştirme ekibi"},
	{"Tasarım", "UI/UX tasarım ekibi"},
	{"Ürün", "Ürün yönetimi"},
	{"İnsan Kaynakları", "İK departmanı"},
	{"Pazarlama", "Pazarlama ve satış"},
	{"Satış", "Satış ekibi"},
}

var users = []userSeed{
	{AdminEmail, "admin", "Admin User", AdminPassword, "admin"},
	{"ahmet.yilmaz@fasthr.com", "ahmet.yilmaz", "Ahmet Yılmaz", DefaultPassword, "employee"},
	{"ayse.demir@fasthr.com", "ayse.demir", "Ayşe Demir", DefaultPassword, "employee"},
	{"mehmet.kaya@fasthr.com", "mehmet.kaya", "Mehmet Kaya", DefaultPassword, "employee"},
	{"zeynep.arslan@fasthr.com", "zeynep.arslan", "Zeynep Arslan", DefaultPassword, "manager"},
	{"can.ozkan@fasthr.com", "can.ozkan", "Can Özkan", DefaultPassword, "employee"},
	{"elif.sahin@fasthr.com", "elif.sahin", "Elif Şahin", DefaultPassword, "employee"},
	{"burak.yildiz@fasthr.com", "burak.yildiz", "Burak Yıldız", DefaultPassword, "employee"},
	{"selin.aydin@fasthr.com", "selin.aydin", "Selin Aydın", DefaultPassword, "employee"},
}

var employees = []employeeSeed{
	{"ahmet.yilmaz@fasthr.com", "Frontend Developer", "+90 532 123 4567", "AY", "Yazılım", "2023-01-15", false, 8, 0},
	{"ayse.demir@fasthr.com", "UX Designer", "+90 533 234 5678", "AD", "Tasarım", "2022-11-20", false, 5, 2},
	{"mehmet.kaya@fasthr.com", "Backend Developer", "+90 534 345 6789", "MK", "Yazılım", "2023-03-10", true, 5, 0},
	{"zeynep.arslan@fasthr.com", "Product Manager", "+90 535 456 7890", "ZA", "Ürün", "2022-08-05", false, 5, 0},
	{"can.ozkan@fasthr.com", "DevOps Engineer", "+90 536 567 8901", "CÖ", "Yazılım", "2023-05-12", false, 5, 0},
	{"elif.sahin@fasthr.com", "HR Specialist", "+90 537 678 9012", "EŞ", "İnsan Kaynakları", "2022-06-18", false, 5, 0},
	{"burak.yildiz@fasthr.com", "Marketing Manager", "+90 538 789 0123", "BY", "Pazarlama", "2023-02-28", false, 5, 0},
	{"selin.aydin@fasthr.com", "Sales Representative", "+90 539 890 1234", "SA", "Satış", "2022-09-14", true, 5, 0},
}

var leaves = []leaveSeed{
	{"ahmet.yilmaz@fasthr.com", leaveDatamodel.TypeAnnual, "2025-12-20", "2025-12-27", "Yılbaşı tatili", leaveDatamodel.StatusPending},
	{"ayse.demir@fasthr.com", leaveDatamodel.TypeSick, "2025-11-15", "2025-11-17", "Grip", leaveDatamodel.StatusApproved},
	{"mehmet.kaya@fasthr.com", leaveDatamodel.TypeExcuse, "2025-11-10", "2025-11-10", "Özel işler", leaveDatamodel.StatusRejected},
	{"zeynep.arslan@fasthr.com", leaveDatamodel.TypeAnnual, "2025-11-25", "2025-11-29", "Aile ziyareti", leaveDatamodel.StatusApproved},
}

var expenses = []expenseSeed{
	{"ahmet.yilmaz@fasthr.com", "Yol", 450.00, "2025-11-20", "İstanbul - Ankara müşteri ziyareti", expenseDatamodel.StatusPending},
	{"ayse.demir@fasthr.com", "Yemek", 280.50, "2025-11-18", "Müşteri yemeği", expenseDatamodel.StatusApproved},
	{"mehmet.kaya@fasthr.com", "Konaklama", 1250.00, "2025-11-15", "Ankara otel 2 gece", expenseDatamodel.StatusApproved},
	{"zeynep.arslan@fasthr.com", "Diğer", 150.00, "2025-11-10", "Ofis malzemeleri", expenseDatamodel.StatusRejected},
	{"can.ozkan@fasthr.com", "Yol", 85.00, "2025-11-22", "Taksi", expenseDatamodel.StatusPending},
}
