package jwt_test

import (
	tokenIssuer "rewarder/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service         *tokenIssuer.JWTService
		signed          string
		originalTimeNow func() time.Time
	)

	BeforeEach(func() {
		originalTimeNow = tokenIssuer.TimeNow
		service = tokenIssuer.NewJWTService([]byte("secret"))

		var err error
		signed, err = service.Sign(service.Generate(tokenIssuer.TokenInfo{
			Subject:    "7",
			Expiration: time.Hour,
		}))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = originalTimeNow
	})

	It("should validate its own tokens and carry only the subject identity", func() {
		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("7"))
		Expect(claims).To(HaveKey("exp"))
		Expect(claims).NotTo(HaveKey("username"))
	})

	It("should reject tokens signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other"))
		_, err := other.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not.a.token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject tokens with a non HMAC signing method", func() {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "7"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(unsigned)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject tokens past their expiry", func() {
		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err := service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})
})
