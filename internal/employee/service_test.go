package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/hr-management/internal"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	"github.com/frahmantamala/hr-management/internal/core/events"
	departmentPostgres "github.com/frahmantamala/hr-management/internal/department/postgres"
	"github.com/frahmantamala/hr-management/internal/employee"
	employeePostgres "github.com/frahmantamala/hr-management/internal/employee/postgres"
	"github.com/frahmantamala/hr-management/internal/testutil"
	"github.com/frahmantamala/hr-management/internal/transport"
	userPostgres "github.com/frahmantamala/hr-management/internal/user/postgres"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Employee Service Integration", func() {
	var (
		db       *gorm.DB
		ctx      context.Context
		service  *employee.Service
		handler  *employee.Handler
		deptID   int64
		ahmetID  int64
		freeUser int64
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = testutil.NewDB()
		Expect(err).NotTo(HaveOccurred())

		service = employee.NewService(
			employeePostgres.NewEmployeeRepository(db),
			userPostgres.NewUserRepository(db),
			departmentPostgres.NewDepartmentRepository(db),
			testutil.Logger(),
		)
		handler = employee.NewHandler(transport.NewBaseHandler(testutil.Logger()), service)

		dept := &departmentDatamodel.Department{Name: "Yazılım"}
		Expect(db.Create(dept).Error).To(Succeed())
		deptID = dept.ID

		u, err := testutil.CreateUser(db, "ahmet.yilmaz@fasthr.com", "Ahmet Yılmaz", "employee", "user123")
		Expect(err).NotTo(HaveOccurred())
		e, err := testutil.CreateEmployee(db, u.ID, &deptID, "Ahmet Yılmaz", u.Email)
		Expect(err).NotTo(HaveOccurred())
		ahmetID = e.ID

		u2, err := testutil.CreateUser(db, "elif.sahin@fasthr.com", "Elif Şahin", "employee", "user123")
		Expect(err).NotTo(HaveOccurred())
		e2, err := testutil.CreateEmployee(db, u2.ID, nil, "Elif Şahin", u2.Email)
		Expect(err).NotTo(HaveOccurred())
		Expect(db.Model(e2).Update("is_on_leave", true).Error).To(Succeed())

		u3, err := testutil.CreateUser(db, "yeni@fasthr.com", "Yeni Çalışan", "employee", "user123")
		Expect(err).NotTo(HaveOccurred())
		freeUser = u3.ID
	})

	AfterEach(func() {
		testutil.Close(db)
	})

	withParam := func(req *http.Request, name, value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(name, value)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	Describe("listing", func() {
		It("returns cards with department names", func() {
			cards, err := service.ListEmployees(ctx, 100, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(HaveLen(2))
			Expect(cards[0].FullName).To(Equal("Ahmet Yılmaz"))
			Expect(cards[0].Department).To(Equal("Yazılım"))
			Expect(cards[1].Department).To(BeEmpty())
		})

		It("honours limit and offset", func() {
			cards, err := service.ListEmployees(ctx, 1, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(HaveLen(1))
			Expect(cards[0].FullName).To(Equal("Elif Şahin"))
		})

		It("lists only employees on leave", func() {
			cards, err := service.ListOnLeave(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(HaveLen(1))
			Expect(cards[0].IsOnLeave).To(BeTrue())
		})

		It("serves cards without salary over HTTP", func() {
			rec := httptest.NewRecorder()
			handler.ListEmployees(rec, httptest.NewRequest(http.MethodGet, "/api/employees", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).NotTo(ContainSubstring("salary"))
			var cards []employee.Card
			Expect(json.Unmarshal(rec.Body.Bytes(), &cards)).To(Succeed())
			Expect(cards).To(HaveLen(2))
		})
	})

	Describe("detail", func() {
		It("returns the detail projection", func() {
			rec := httptest.NewRecorder()
			handler.GetEmployee(rec, withParam(httptest.NewRequest(http.MethodGet, "/api/employees/1", nil), "id", "1"))

			Expect(rec.Code).To(Equal(http.StatusOK))
			var detail employee.Detail
			Expect(json.Unmarshal(rec.Body.Bytes(), &detail)).To(Succeed())
			Expect(detail.Email).To(Equal("ahmet.yilmaz@fasthr.com"))
			Expect(detail.StartDate).To(Equal("2023-01-15"))
			Expect(rec.Body.String()).To(ContainSubstring(`"salary"`))
		})

		It("returns 404 for an unknown employee", func() {
			rec := httptest.NewRecorder()
			handler.GetEmployee(rec, withParam(httptest.NewRequest(http.MethodGet, "/api/employees/99", nil), "id", "99"))
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("CreateEmployee", func() {
		It("links a new record to an existing user", func() {
			detail, err := service.CreateEmployee(ctx, employee.CreateEmployeeDTO{
				UserID:       freeUser,
				DepartmentID: &deptID,
				FullName:     "Yeni Çalışan",
				Title:        "QA Engineer",
				Email:        "Yeni@FastHR.com",
				StartDate:    "2025-02-01",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Email).To(Equal("yeni@fasthr.com"))
			Expect(detail.Department).To(Equal("Yazılım"))

			balance, err := service.GetLeaveBalance(ctx, detail.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.Annual).To(Equal(employee.DefaultAnnualLeave))
			Expect(balance.Sick).To(Equal(employee.DefaultSickLeave))
		})

		It("rejects a second record for the same user", func() {
			existing, err := service.GetEmployee(ctx, ahmetID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateEmployee(ctx, employee.CreateEmployeeDTO{
				UserID:    existing.UserID,
				FullName:  "Ahmet Yılmaz",
				Title:     "Developer",
				Email:     "other@fasthr.com",
				StartDate: "2023-01-15",
			})
			Expect(err).To(MatchError(internal.ErrEmployeeExists))
		})

		It("rejects an unknown user", func() {
			_, err := service.CreateEmployee(ctx, employee.CreateEmployeeDTO{
				UserID:    999,
				FullName:  "Kimse",
				Title:     "Developer",
				Email:     "kimse@fasthr.com",
				StartDate: "2023-01-15",
			})
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})

		It("rejects an unknown department", func() {
			missing := int64(404)
			_, err := service.CreateEmployee(ctx, employee.CreateEmployeeDTO{
				UserID:       freeUser,
				DepartmentID: &missing,
				FullName:     "Yeni Çalışan",
				Title:        "Developer",
				Email:        "yeni@fasthr.com",
				StartDate:    "2023-01-15",
			})
			Expect(err).To(MatchError(internal.ErrDepartmentNotFound))
		})

		It("validates dates and email", func() {
			_, err := service.CreateEmployee(ctx, employee.CreateEmployeeDTO{
				UserID:    freeUser,
				FullName:  "Yeni Çalışan",
				Title:     "Developer",
				Email:     "not-an-email",
				StartDate: "15/01/2023",
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(appErr.GetDetailedMessage()).To(ContainSubstring("email must be a valid email address"))
			Expect(appErr.GetDetailedMessage()).To(ContainSubstring("start_date must be a valid date"))
		})
	})

	Describe("UpdateEmployee", func() {
		It("changes only the supplied fields", func() {
			title := "Senior Frontend Developer"
			onLeave := true
			detail, err := service.UpdateEmployee(ctx, ahmetID, employee.UpdateEmployeeDTO{Title: &title, IsOnLeave: &onLeave})
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Title).To(Equal(title))
			Expect(detail.IsOnLeave).To(BeTrue())
			Expect(detail.FullName).To(Equal("Ahmet Yılmaz"))
			Expect(detail.Department).To(Equal("Yazılım"))
		})

		It("updates over HTTP", func() {
			req := httptest.NewRequest(http.MethodPut, "/api/employees/1", bytes.NewBufferString(`{"annual_leave_total":20}`))
			rec := httptest.NewRecorder()
			handler.UpdateEmployee(rec, withParam(req, "id", "1"))
			Expect(rec.Code).To(Equal(http.StatusOK))

			balance, err := service.GetLeaveBalance(ctx, ahmetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.Annual).To(Equal(20))
		})

		It("rejects negative allowances", func() {
			negative := -1
			_, err := service.UpdateEmployee(ctx, ahmetID, employee.UpdateEmployeeDTO{SickLeaveTotal: &negative})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("returns not found for an unknown employee", func() {
			title := "x"
			_, err := service.UpdateEmployee(ctx, 999, employee.UpdateEmployeeDTO{Title: &title})
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("leave balance", func() {
		It("serves the balance over HTTP", func() {
			rec := httptest.NewRecorder()
			handler.GetLeaveBalance(rec, withParam(httptest.NewRequest(http.MethodGet, "/api/leaves/balance/1", nil), "employee_id", "1"))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"annual":14,"annual_used":0,"sick":10,"sick_used":0}`))
		})

		It("returns 404 for an unknown employee", func() {
			rec := httptest.NewRecorder()
			handler.GetLeaveBalance(rec, withParam(httptest.NewRequest(http.MethodGet, "/api/leaves/balance/77", nil), "employee_id", "77"))
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("charges approved leaves through the event bus", func() {
			bus := events.NewEventBus(testutil.Logger())
			employee.NewEventHandler(service, testutil.Logger()).RegisterEventHandlers(bus)
			Expect(bus.HandlerCount(events.EventTypeLeaveApproved)).To(Equal(1))

			Expect(bus.PublishSync(ctx, events.NewLeaveApprovedEvent(1, ahmetID, "Yıllık İzin", 5, 1))).To(Succeed())
			Expect(bus.PublishSync(ctx, events.NewLeaveApprovedEvent(2, ahmetID, "Hastalık İzni", 2, 1))).To(Succeed())
			Expect(bus.PublishSync(ctx, events.NewLeaveApprovedEvent(3, ahmetID, "Mazeret İzni", 1, 1))).To(Succeed())

			balance, err := service.GetLeaveBalance(ctx, ahmetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(&employee.LeaveBalance{Annual: 14, AnnualUsed: 5, Sick: 10, SickUsed: 2}))
		})

		It("fails the publish when the employee is gone", func() {
			bus := events.NewEventBus(testutil.Logger())
			employee.NewEventHandler(service, testutil.Logger()).RegisterEventHandlers(bus)

			err := bus.PublishSync(ctx, events.NewLeaveApprovedEvent(1, 999, "Yıllık İzin", 5, 1))
			Expect(err).To(HaveOccurred())
		})
	})
})
