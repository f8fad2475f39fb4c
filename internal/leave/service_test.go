package leave_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/events"
	departmentPostgres "github.com/frahmantamala/hr-management/internal/department/postgres"
	"github.com/frahmantamala/hr-management/internal/employee"
	employeePostgres "github.com/frahmantamala/hr-management/internal/employee/postgres"
	"github.com/frahmantamala/hr-management/internal/leave"
	leavePostgres "github.com/frahmantamala/hr-management/internal/leave/postgres"
	"github.com/frahmantamala/hr-management/internal/testutil"
	"github.com/frahmantamala/hr-management/internal/transport"
	userPostgres "github.com/frahmantamala/hr-management/internal/user/postgres"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestLeave(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Leave Suite")
}

func validationCode(err error) string {
	appErr, ok := internal.IsAppError(err)
	Expect(ok).To(BeTrue(), "expected an AppError, got %v", err)
	Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
	details, ok := appErr.Details.(internal.ValidationErrors)
	if !ok || len(details.Errors) == 0 {
		return string(appErr.Code)
	}
	return details.Errors[0].Code
}

var _ = Describe("Leave Service Integration", func() {
	var (
		db          *gorm.DB
		ctx         context.Context
		service     *leave.Service
		employees   *employee.Service
		handler     *leave.Handler
		employeeUsr *internal.User
		manager     *internal.User
		employeeID  int64
		otherID     int64
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = testutil.NewDB()
		Expect(err).NotTo(HaveOccurred())

		logger := testutil.Logger()
		employees = employee.NewService(
			employeePostgres.NewEmployeeRepository(db),
			userPostgres.NewUserRepository(db),
			departmentPostgres.NewDepartmentRepository(db),
			logger,
		)
		bus := events.NewEventBus(logger)
		employee.NewEventHandler(employees, logger).RegisterEventHandlers(bus)

		service = leave.NewService(leavePostgres.NewLeaveRepository(db), employees, bus, logger)
		handler = leave.NewHandler(transport.NewBaseHandler(logger), service)

		u, err := testutil.CreateUser(db, "ahmet.yilmaz@fasthr.com", "Ahmet Yılmaz", "employee", "user123")
		Expect(err).NotTo(HaveOccurred())
		e, err := testutil.CreateEmployee(db, u.ID, nil, "Ahmet Yılmaz", u.Email)
		Expect(err).NotTo(HaveOccurred())
		employeeUsr = &internal.User{ID: u.ID, Email: u.Email, Role: "employee"}
		employeeID = e.ID

		m, err := testutil.CreateUser(db, "zeynep.arslan@fasthr.com", "Zeynep Arslan", "manager", "user123")
		Expect(err).NotTo(HaveOccurred())
		me, err := testutil.CreateEmployee(db, m.ID, nil, "Zeynep Arslan", m.Email)
		Expect(err).NotTo(HaveOccurred())
		manager = &internal.User{ID: m.ID, Email: m.Email, Role: "manager"}
		otherID = me.ID
	})

	AfterEach(func() {
		testutil.Close(db)
	})

	create := func(caller *internal.User, dto leave.CreateLeaveDTO) *leave.Leave {
		l, err := service.CreateLeave(ctx, caller, dto)
		Expect(err).NotTo(HaveOccurred())
		return l
	}

	annual := leave.CreateLeaveDTO{LeaveType: "Yıllık İzin", StartDate: "2025-12-20", EndDate: "2025-12-27", Reason: "Tatil"}

	withParam := func(req *http.Request, user *internal.User, id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		reqCtx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
		return req.WithContext(internal.ContextWithUser(reqCtx, user))
	}

	Describe("CreateLeave", func() {
		It("counts both ends of the range and starts pending", func() {
			l := create(employeeUsr, annual)
			Expect(l.Days).To(Equal(8))
			Expect(l.Status).To(Equal("Bekliyor"))
			Expect(l.EmployeeID).To(Equal(employeeID))
			Expect(l.EmployeeName).To(Equal("Ahmet Yılmaz"))
		})

		It("counts a single day leave as one day", func() {
			dto := annual
			dto.EndDate = dto.StartDate
			Expect(create(employeeUsr, dto).Days).To(Equal(1))
		})

		It("crosses month and leap day boundaries", func() {
			dto := annual
			dto.StartDate, dto.EndDate = "2024-02-27", "2024-03-01"
			Expect(create(employeeUsr, dto).Days).To(Equal(4))
		})

		It("files on behalf of another employee when employee_id is given", func() {
			dto := annual
			dto.EmployeeID = &otherID
			l := create(employeeUsr, dto)
			Expect(l.EmployeeID).To(Equal(otherID))
			Expect(l.EmployeeName).To(Equal("Zeynep Arslan"))
		})

		It("rejects an end date before the start date", func() {
			dto := annual
			dto.StartDate, dto.EndDate = "2025-12-27", "2025-12-20"
			_, err := service.CreateLeave(ctx, employeeUsr, dto)
			Expect(validationCode(err)).To(Equal("INVALID_DATE_RANGE"))
		})

		It("rejects a malformed date", func() {
			dto := annual
			dto.StartDate = "20-12-2025"
			_, err := service.CreateLeave(ctx, employeeUsr, dto)
			Expect(validationCode(err)).To(Equal("INVALID_DATE"))
		})

		It("rejects an unknown leave type", func() {
			dto := annual
			dto.LeaveType = "Doğum Günü"
			_, err := service.CreateLeave(ctx, employeeUsr, dto)
			Expect(validationCode(err)).To(Equal("VALIDATION_FAILED"))
		})

		It("requires an employee when the caller has none", func() {
			_, err := service.CreateLeave(ctx, &internal.User{ID: 999, Role: "admin"}, annual)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(appErr.GetDetailedMessage()).To(ContainSubstring("employee_id"))
		})

		It("returns not found for an unknown employee_id", func() {
			dto := annual
			missing := int64(404)
			dto.EmployeeID = &missing
			_, err := service.CreateLeave(ctx, employeeUsr, dto)
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("ListLeaves", func() {
		BeforeEach(func() {
			first := create(employeeUsr, annual)
			sick := annual
			sick.LeaveType = "Hastalık İzni"
			create(employeeUsr, sick)
			_, err := service.ApproveLeave(ctx, first.ID, manager.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns every leave with the employee name", func() {
			leaves, err := service.ListLeaves(ctx, "", 100, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(leaves).To(HaveLen(2))
			for _, l := range leaves {
				Expect(l.EmployeeName).To(Equal("Ahmet Yılmaz"))
			}
		})

		It("filters by exact status", func() {
			leaves, err := service.ListLeaves(ctx, "Onaylandı", 100, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(leaves).To(HaveLen(1))
			Expect(leaves[0].Status).To(Equal("Onaylandı"))

			leaves, err = service.ListLeaves(ctx, "onaylandı", 100, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(leaves).To(BeEmpty())
		})

		It("serves the list over HTTP", func() {
			rec := httptest.NewRecorder()
			handler.ListLeaves(rec, httptest.NewRequest(http.MethodGet, "/api/leaves?status=Bekliyor", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			var leaves []leave.Leave
			Expect(json.Unmarshal(rec.Body.Bytes(), &leaves)).To(Succeed())
			Expect(leaves).To(HaveLen(1))
			Expect(leaves[0].LeaveType).To(Equal("Hastalık İzni"))
		})
	})

	Describe("ApproveLeave", func() {
		It("sets the approver fields and charges the annual allowance", func() {
			l := create(employeeUsr, annual)

			approved, err := service.ApproveLeave(ctx, l.ID, manager.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(approved.Status).To(Equal("Onaylandı"))
			Expect(*approved.ApprovedBy).To(Equal(manager.ID))
			Expect(approved.ApprovedAt).NotTo(BeNil())

			stored, err := service.GetLeave(ctx, l.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal("Onaylandı"))
			Expect(*stored.ApprovedBy).To(Equal(manager.ID))

			balance, err := employees.GetLeaveBalance(ctx, employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.AnnualUsed).To(Equal(8))
			Expect(balance.SickUsed).To(Equal(0))
		})

		It("refuses to decide a leave twice", func() {
			l := create(employeeUsr, annual)
			_, err := service.ApproveLeave(ctx, l.ID, manager.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ApproveLeave(ctx, l.ID, manager.ID)
			Expect(err).To(MatchError(internal.ErrInvalidStatus))
			_, err = service.RejectLeave(ctx, l.ID, manager.ID, nil)
			Expect(err).To(MatchError(internal.ErrInvalidStatus))

			balance, err := employees.GetLeaveBalance(ctx, employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.AnnualUsed).To(Equal(8))
		})

		It("returns not found for an unknown leave", func() {
			_, err := service.ApproveLeave(ctx, 999, manager.ID)
			Expect(err).To(MatchError(internal.ErrLeaveNotFound))
		})

		It("answers with the decision payload over HTTP", func() {
			l := create(employeeUsr, annual)
			rec := httptest.NewRecorder()
			handler.ApproveLeave(rec, withParam(httptest.NewRequest(http.MethodPut, "/api/leaves/1/approve", nil), manager, "1"))

			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp leave.DecisionResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.LeaveID).To(Equal(l.ID))
			Expect(resp.Status).To(Equal("Onaylandı"))
		})
	})

	Describe("RejectLeave", func() {
		It("stores the reason and does not touch the balance", func() {
			l := create(employeeUsr, annual)
			reason := "  Yoğun dönem  "

			rejected, err := service.RejectLeave(ctx, l.ID, manager.ID, &reason)
			Expect(err).NotTo(HaveOccurred())
			Expect(rejected.Status).To(Equal("Reddedildi"))
			Expect(*rejected.RejectionReason).To(Equal("Yoğun dönem"))

			balance, err := employees.GetLeaveBalance(ctx, employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance.AnnualUsed).To(Equal(0))
		})

		It("accepts a request without a body", func() {
			create(employeeUsr, annual)
			rec := httptest.NewRecorder()
			handler.RejectLeave(rec, withParam(httptest.NewRequest(http.MethodPut, "/api/leaves/1/reject", nil), manager, "1"))

			Expect(rec.Code).To(Equal(http.StatusOK))
			stored, err := service.GetLeave(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal("Reddedildi"))
			Expect(stored.RejectionReason).To(BeNil())
		})

		It("accepts a reason in the body", func() {
			create(employeeUsr, annual)
			rec := httptest.NewRecorder()
			body := bytes.NewBufferString(`{"reason":"Proje teslimi"}`)
			handler.RejectLeave(rec, withParam(httptest.NewRequest(http.MethodPut, "/api/leaves/1/reject", body), manager, "1"))

			Expect(rec.Code).To(Equal(http.StatusOK))
			stored, err := service.GetLeave(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(*stored.RejectionReason).To(Equal("Proje teslimi"))
		})
	})

	Describe("DeleteLeave", func() {
		It("removes the leave", func() {
			l := create(employeeUsr, annual)
			Expect(service.DeleteLeave(ctx, l.ID)).To(Succeed())

			_, err := service.GetLeave(ctx, l.ID)
			Expect(err).To(MatchError(internal.ErrLeaveNotFound))
		})

		It("returns 404 for an unknown leave", func() {
			rec := httptest.NewRecorder()
			handler.DeleteLeave(rec, withParam(httptest.NewRequest(http.MethodDelete, "/api/leaves/5", nil), manager, "5"))
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("CreateLeave over HTTP", func() {
		It("uses the caller's employee record", func() {
			body := bytes.NewBufferString(`{"leave_type":"Yıllık İzin","start_date":"2025-12-20","end_date":"2025-12-27","reason":"Tatil"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/leaves", body)
			req = req.WithContext(internal.ContextWithUser(req.Context(), employeeUsr))
			rec := httptest.NewRecorder()
			handler.CreateLeave(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var l leave.Leave
			Expect(json.Unmarshal(rec.Body.Bytes(), &l)).To(Succeed())
			Expect(l.Days).To(Equal(8))
			Expect(l.Status).To(Equal("Bekliyor"))
		})

		It("returns 401 without a caller", func() {
			rec := httptest.NewRecorder()
			handler.CreateLeave(rec, httptest.NewRequest(http.MethodPost, "/api/leaves", bytes.NewBufferString(`{}`)))
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
