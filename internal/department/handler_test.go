package department_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/hr-management/internal/department"
	departmentPostgres "github.com/frahmantamala/hr-management/internal/department/postgres"
	"github.com/frahmantamala/hr-management/internal/testutil"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Department Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *department.Handler
		deptID  int64
	)

	BeforeEach(func() {
		var err error
		db, err = testutil.NewDB()
		Expect(err).NotTo(HaveOccurred())

		repo := departmentPostgres.NewDepartmentRepository(db)
		service := department.NewService(repo, testutil.Logger())
		handler = department.NewHandler(transport.NewBaseHandler(testutil.Logger()), service)

		d, err := service.CreateDepartment(context.Background(), department.CreateDepartmentDTO{Name: "Yazılım"})
		Expect(err).NotTo(HaveOccurred())
		deptID = d.ID
		_, err = service.CreateDepartment(context.Background(), department.CreateDepartmentDTO{Name: "Tasarım"})
		Expect(err).NotTo(HaveOccurred())

		u1, err := testutil.CreateUser(db, "ahmet.yilmaz@fasthr.com", "Ahmet Yılmaz", "employee", "user123")
		Expect(err).NotTo(HaveOccurred())
		_, err = testutil.CreateEmployee(db, u1.ID, &deptID, "Ahmet Yılmaz", u1.Email)
		Expect(err).NotTo(HaveOccurred())
		u2, err := testutil.CreateUser(db, "mehmet.kaya@fasthr.com", "Mehmet Kaya", "employee", "user123")
		Expect(err).NotTo(HaveOccurred())
		_, err = testutil.CreateEmployee(db, u2.ID, &deptID, "Mehmet Kaya", u2.Email)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		testutil.Close(db)
	})

	withID := func(req *http.Request, id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	It("lists departments ordered by name with employee counts", func() {
		rec := httptest.NewRecorder()
		handler.GetDepartments(rec, httptest.NewRequest(http.MethodGet, "/api/departments", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		var resp department.DepartmentsResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Departments).To(HaveLen(2))
		Expect(resp.Departments[0].Name).To(Equal("Tasarım"))
		Expect(resp.Departments[0].EmployeeCount).To(Equal(0))
		Expect(resp.Departments[1].Name).To(Equal("Yazılım"))
		Expect(resp.Departments[1].EmployeeCount).To(Equal(2))
	})

	It("returns a single department", func() {
		rec := httptest.NewRecorder()
		handler.GetDepartment(rec, withID(httptest.NewRequest(http.MethodGet, "/api/departments/1", nil), "1"))

		Expect(rec.Code).To(Equal(http.StatusOK))
		var d department.Department
		Expect(json.Unmarshal(rec.Body.Bytes(), &d)).To(Succeed())
		Expect(d.ID).To(Equal(deptID))
		Expect(d.EmployeeCount).To(Equal(2))
	})

	It("returns 404 for an unknown department", func() {
		rec := httptest.NewRecorder()
		handler.GetDepartment(rec, withID(httptest.NewRequest(http.MethodGet, "/api/departments/99", nil), "99"))
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 400 for a malformed id", func() {
		rec := httptest.NewRecorder()
		handler.GetDepartment(rec, withID(httptest.NewRequest(http.MethodGet, "/api/departments/abc", nil), "abc"))
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("creates a department", func() {
		body := bytes.NewBufferString(`{"name":"Satış","description":"Kurumsal satış"}`)
		rec := httptest.NewRecorder()
		handler.CreateDepartment(rec, httptest.NewRequest(http.MethodPost, "/api/departments", body))

		Expect(rec.Code).To(Equal(http.StatusCreated))
		var d department.Department
		Expect(json.Unmarshal(rec.Body.Bytes(), &d)).To(Succeed())
		Expect(d.Name).To(Equal("Satış"))
		Expect(*d.Description).To(Equal("Kurumsal satış"))
	})

	It("returns 409 for a duplicate department", func() {
		rec := httptest.NewRecorder()
		handler.CreateDepartment(rec, httptest.NewRequest(http.MethodPost, "/api/departments", bytes.NewBufferString(`{"name":"Yazılım"}`)))
		Expect(rec.Code).To(Equal(http.StatusConflict))
	})
})
