package echoapi

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
)

var contextClaimsKey = "claims"

// Claims represents the authorization claims transmitted via a JWT.
// The analytics API only cares about the staff flag: staff sessions see
// submissions that have not been approved yet.
type Claims struct {
	jwt.StandardClaims
	IsStaff bool     `json:"is_staff,omitempty"`
	Roles   []string `json:"roles,omitempty"`
}

// NewStaffClaims builds staff claims for the given subject.
func NewStaffClaims(subject string) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   subject,
			ExpiresAt: now.Add(core.Conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		IsStaff: true,
	}
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(core.Conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// optionalJWT parses the Bearer token when one is supplied and stores its
// claims in the context; anonymous requests (and bad tokens) pass through
// untouched since no analytics endpoint requires authentication.
func optionalJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(auth, "Bearer ") {
				token, err := jwt.ParseWithClaims(
					strings.TrimPrefix(auth, "Bearer "),
					new(Claims),
					func(t *jwt.Token) (interface{}, error) {
						if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
							return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
						}
						return []byte(core.Conf.SecretKey), nil
					},
				)
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(*Claims); ok {
						ctx.Set(contextClaimsKey, claims)
					}
				}
			}
			return next(ctx)
		}
	}
}

func contextIsStaff(ctx echo.Context) bool {
	claims, ok := ctx.Get(contextClaimsKey).(*Claims)
	return ok && claims.IsStaff
}
