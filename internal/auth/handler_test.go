package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

type errorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler  *Handler
		service  *Service
		tokenGen *JWTTokenGenerator
		rbac     *RBACAuthorization
	)

	ginkgo.BeforeEach(func() {
		tokenGen = NewJWTTokenGenerator(testSecret, 24*time.Hour)
		service = NewService(newMockCredentialStore(), tokenGen, bcrypt.MinCost, discardLogger())
		handler = NewHandler(transport.NewBaseHandler(discardLogger()), service)
		rbac = service.RBACAuthorization()
	})

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	tokenFor := func(email string) string {
		rec := login(`{"email":"` + email + `","password":"correct_password"}`)
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		var tok AccessToken
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &tok)).To(gomega.Succeed())
		return tok.AccessToken
	}

	ginkgo.Describe("Login", func() {
		ginkgo.It("returns the token payload", func() {
			rec := login(`{"email":"admin@fasthr.com","password":"correct_password"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			var tok AccessToken
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &tok)).To(gomega.Succeed())
			gomega.Expect(tok.TokenType).To(gomega.Equal("bearer"))
			gomega.Expect(tok.AccessToken).NotTo(gomega.BeEmpty())
		})

		ginkgo.It("returns 401 with a bearer challenge for a wrong password", func() {
			rec := login(`{"email":"admin@fasthr.com","password":"nope"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Header().Get("WWW-Authenticate")).To(gomega.Equal("Bearer"))
			var env errorEnvelope
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(gomega.Succeed())
			gomega.Expect(env.Error.Code).To(gomega.Equal("INVALID_CREDENTIALS"))
		})

		ginkgo.It("returns 400 for a malformed body", func() {
			rec := login(`{"email":`)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("returns 400 when fields are missing", func() {
			rec := login(`{"email":"admin@fasthr.com"}`)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var (
			seen *internal.User
			next http.Handler
		)

		ginkgo.BeforeEach(func() {
			seen = nil
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = internal.UserFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})
		})

		call := func(authHeader string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if authHeader != "" {
				req.Header.Set("Authorization", authHeader)
			}
			rec := httptest.NewRecorder()
			handler.AuthMiddleware(next).ServeHTTP(rec, req)
			return rec
		}

		ginkgo.It("stores the caller in the context", func() {
			rec := call("Bearer " + tokenFor("manager@fasthr.com"))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNoContent))
			gomega.Expect(seen).NotTo(gomega.BeNil())
			gomega.Expect(seen.Email).To(gomega.Equal("manager@fasthr.com"))
			gomega.Expect(seen.Role).To(gomega.Equal("manager"))
		})

		ginkgo.It("rejects a missing token", func() {
			rec := call("")
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(seen).To(gomega.BeNil())
		})

		ginkgo.It("rejects a non bearer scheme", func() {
			rec := call("Basic YWRtaW46YWRtaW4=")
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("rejects an expired token", func() {
			expired := NewJWTTokenGenerator(testSecret, -time.Second)
			token, err := expired.Generate(&Credentials{UserID: 2, Email: "admin@fasthr.com", Role: RoleAdmin})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			rec := call("Bearer " + token)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			var env errorEnvelope
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(gomega.Succeed())
			gomega.Expect(env.Error.Code).To(gomega.Equal("TOKEN_EXPIRED"))
		})

		ginkgo.It("rejects a token whose user was removed", func() {
			token, err := tokenGen.Generate(&Credentials{UserID: 99, Email: "ghost@fasthr.com", Role: RoleAdmin})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			rec := call("Bearer " + token)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("RBACAuthorization", func() {
		guarded := func(user *internal.User) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPut, "/api/leaves/1/approve", nil)
			if user != nil {
				req = req.WithContext(internal.ContextWithUser(req.Context(), user))
			}
			rec := httptest.NewRecorder()
			rbac.RequireApprover()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rec, req)
			return rec
		}

		ginkgo.It("lets managers and admins through", func() {
			gomega.Expect(guarded(&internal.User{ID: 3, Role: "manager"}).Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(guarded(&internal.User{ID: 2, Role: "admin"}).Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("forbids employees", func() {
			rec := guarded(&internal.User{ID: 1, Role: "employee"})
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))

			var env errorEnvelope
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(gomega.Succeed())
			gomega.Expect(env.Error.Code).To(gomega.Equal("INSUFFICIENT_ROLE"))
		})

		ginkgo.It("treats a missing user as unauthenticated", func() {
			gomega.Expect(guarded(nil).Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("restricts admin-only routes", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/departments", nil)
			req = req.WithContext(internal.ContextWithUser(req.Context(), &internal.User{ID: 3, Role: "manager"}))
			rec := httptest.NewRecorder()
			rbac.RequireAdmin()(http.NotFoundHandler()).ServeHTTP(rec, req)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})
})
