package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/testutil"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/frahmantamala/hr-management/internal/user"
	userPostgres "github.com/frahmantamala/hr-management/internal/user/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestUser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Suite")
}

var _ = Describe("User Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *user.Handler
		adminID int64
	)

	BeforeEach(func() {
		var err error
		db, err = testutil.NewDB()
		Expect(err).NotTo(HaveOccurred())

		service := user.NewService(userPostgres.NewUserRepository(db), testutil.Logger())
		handler = user.NewHandler(transport.NewBaseHandler(testutil.Logger()), service)

		admin, err := testutil.CreateUser(db, "admin@fasthr.com", "Sistem Yöneticisi", "admin", "admin123")
		Expect(err).NotTo(HaveOccurred())
		adminID = admin.ID
		_, err = testutil.CreateUser(db, "ahmet.yilmaz@fasthr.com", "Ahmet Yılmaz", "employee", "user123")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		testutil.Close(db)
	})

	withCaller := func(req *http.Request, id int64) *http.Request {
		return req.WithContext(internal.ContextWithUser(context.Background(), &internal.User{ID: id, Role: "admin"}))
	}

	It("returns the caller profile on GET /api/auth/me", func() {
		req := withCaller(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), adminID)
		rec := httptest.NewRecorder()

		handler.GetCurrentUser(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		var me user.MeResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &me)).To(Succeed())
		Expect(me).To(Equal(user.MeResponse{Email: "admin@fasthr.com", Name: "Sistem Yöneticisi", Role: "admin"}))
	})

	It("returns 401 without a caller", func() {
		rec := httptest.NewRecorder()
		handler.GetCurrentUser(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	})

	It("returns 404 when the caller's account is gone", func() {
		rec := httptest.NewRecorder()
		handler.GetCurrentUser(rec, withCaller(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), 999))
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("lists users without password hashes", func() {
		rec := httptest.NewRecorder()
		handler.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/api/users?limit=1", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).NotTo(ContainSubstring("$2a$"))

		var resp user.UsersResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Limit).To(Equal(1))
		Expect(resp.Users).To(HaveLen(1))
		Expect(resp.Users[0].Email).To(Equal("admin@fasthr.com"))
	})
})
