package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"vtpartner/internal/models"
)

// Context keys set by RequireAuth.
const (
	CtxAdminID   = "admin_id"
	CtxAdminName = "admin_name"
)

// AdminClaims is the token payload issued at login.
type AdminClaims struct {
	AdminID   uint   `json:"admin_id"`
	AdminName string `json:"admin_name"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 admin tokens with a fixed shared secret.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration) *JWT {
	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (j *JWT) GenerateToken(admin models.Admin) (string, error) {
	now := j.now()
	claims := AdminClaims{
		AdminID:   admin.AdminID,
		AdminName: admin.AdminName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

func (j *JWT) ValidateToken(tokenStr string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RequireAuth rejects requests without a token (403) or with an invalid one (401).
func (j *JWT) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token is missing"})
			return
		}

		claims, err := j.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(CtxAdminID, claims.AdminID)
		c.Set(CtxAdminName, claims.AdminName)
		c.Next()
	}
}

// bearerToken accepts "Bearer <token>" and, like older dashboard clients send, a bare token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if parts := strings.Fields(header); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	if strings.ContainsRune(header, ' ') {
		return ""
	}
	return header
}
