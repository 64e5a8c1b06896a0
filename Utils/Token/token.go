package Token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token has expired")
	ErrMalformedClaims  = errors.New("token claims are malformed")
)

type settings struct {
	secret   []byte
	method   jwt.SigningMethod
	lifespan time.Duration
}

// cfg is written once by Setup before the router starts and read-only after.
var cfg settings

// Setup installs the signing secret, algorithm and token lifespan. Must be
// called before any token is issued or verified.
func Setup(secret, algorithm string, lifespanMinutes int) error {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return fmt.Errorf("signing algorithm %q is not HMAC", algorithm)
	}
	cfg = settings{
		secret:   []byte(secret),
		method:   method,
		lifespan: time.Duration(lifespanMinutes) * time.Minute,
	}
	return nil
}

// Claims carries the verified identity of the token's subject.
type Claims struct {
	Username string
	UserID   uint
	Role     string
}

// Generate issues a signed token for the account. The numeric id travels as
// a string claim, the way the original clients expect it.
func Generate(username string, userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"id":   strconv.FormatUint(uint64(userID), 10),
		"role": role,
		"exp":  time.Now().Add(cfg.lifespan).Unix(),
		"jti":  uuid.NewString(),
	}
	return jwt.NewWithClaims(cfg.method, claims).SignedString(cfg.secret)
}

// Verify checks the signature and expiry against the wall clock at call
// time, then extracts the subject claims. Missing or non-numeric claims are
// reported as malformed.
func Verify(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != cfg.method.Alg() {
			return nil, ErrInvalidSignature
		}
		return cfg.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrInvalidSignature):
			return Claims{}, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		default:
			return Claims{}, ErrMalformedClaims
		}
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrMalformedClaims
	}

	username, _ := mapClaims["sub"].(string)
	role, _ := mapClaims["role"].(string)
	rawID, _ := mapClaims["id"].(string)
	if username == "" || role == "" || rawID == "" {
		return Claims{}, ErrMalformedClaims
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return Claims{}, ErrMalformedClaims
	}

	return Claims{Username: username, UserID: uint(id), Role: role}, nil
}

// ExtractToken pulls the bearer token out of the Authorization header.
func ExtractToken(c *gin.Context) string {
	bearerToken := c.Request.Header.Get("Authorization")
	parts := strings.SplitN(bearerToken, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// ExtractClaims verifies the request's bearer token and returns its claims.
func ExtractClaims(c *gin.Context) (Claims, error) {
	return Verify(ExtractToken(c))
}
