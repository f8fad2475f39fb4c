package auth

import (
	"time"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/golang-jwt/jwt/v5"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("JWTTokenGenerator", func() {
	var (
		gen   *JWTTokenGenerator
		creds *Credentials
	)

	ginkgo.BeforeEach(func() {
		gen = NewJWTTokenGenerator(testSecret, 24*time.Hour)
		creds = &Credentials{UserID: 7, Email: "ahmet.yilmaz@fasthr.com", Role: RoleEmployee}
	})

	ginkgo.It("round-trips the subject and role", func() {
		token, err := gen.Generate(creds)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		claims, err := gen.Validate(token)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(claims.Subject).To(gomega.Equal("ahmet.yilmaz@fasthr.com"))
		gomega.Expect(claims.Role).To(gomega.Equal(RoleEmployee))
	})

	ginkgo.It("rejects an expired token with the expired error", func() {
		expired := NewJWTTokenGenerator(testSecret, -time.Minute)
		token, err := expired.Generate(creds)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = gen.Validate(token)
		gomega.Expect(err).To(gomega.MatchError(internal.ErrTokenExpired))
	})

	ginkgo.It("honours the clock when deciding expiry", func() {
		token, err := gen.Generate(creds)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		gen.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
		_, err = gen.Validate(token)
		gomega.Expect(err).To(gomega.MatchError(internal.ErrTokenExpired))
	})

	ginkgo.It("rejects a token signed with another secret", func() {
		other := NewJWTTokenGenerator("another-secret-key-that-is-long-enough", time.Hour)
		token, err := other.Generate(creds)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = gen.Validate(token)
		gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
	})

	ginkgo.It("rejects a token without a subject", func() {
		claims := &Claims{
			Role: RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = gen.Validate(token)
		gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
	})

	ginkgo.It("rejects a token without an expiry", func() {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "admin@fasthr.com"}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = gen.Validate(token)
		gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
	})

	ginkgo.It("rejects the none algorithm", func() {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin@fasthr.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		_, err = gen.Validate(token)
		gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
	})

	ginkgo.It("rejects garbage", func() {
		_, err := gen.Validate("not.a.token")
		gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
	})
})

var _ = ginkgo.Describe("HasRole", func() {
	ginkgo.DescribeTable("approver capability",
		func(role Role, expected bool) {
			gomega.Expect(CanApprove(role)).To(gomega.Equal(expected))
			gomega.Expect(HasRole(role, ApproverRoles...)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("admin", RoleAdmin, true),
		ginkgo.Entry("manager", RoleManager, true),
		ginkgo.Entry("employee", RoleEmployee, false),
		ginkgo.Entry("unknown", Role("intern"), false),
	)

	ginkgo.It("denies everyone when no roles are allowed", func() {
		gomega.Expect(HasRole(RoleAdmin)).To(gomega.BeFalse())
	})

	ginkgo.It("validates role names", func() {
		gomega.Expect(RoleManager.Valid()).To(gomega.BeTrue())
		gomega.Expect(Role("root").Valid()).To(gomega.BeFalse())
	})
})
