package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Config struct {
	JWTKey string `yaml:"jwtKey" envconfig:"AUTH_JWT_KEY"`
}

// TenantAccess is the per-tenant entry of the claims access map.
type TenantAccess struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Claims is the token payload issued by the identity provider: the subject
// and email plus an access map keyed by tenant id.
type Claims struct {
	jwt.RegisteredClaims
	Email  string                  `json:"email"`
	Access map[string]TenantAccess `json:"access"`
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is the authenticated caller within a resolved tenant scope.
type User struct {
	ID     string
	Email  string
	Access TenantAccess
}

func (u User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.Access.Role == r {
			return true
		}
	}
	return false
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

func FromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(ctxKey{}).(User)
	if !ok {
		return User{}, errors.New("no auth context")
	}
	return user, nil
}

// ParseToken validates the signed token and returns its claims.
func ParseToken(tokenStr string, key []byte) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
