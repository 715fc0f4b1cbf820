package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims issued by the identity service. OwnerID is the
// store the user works for; a token without it acts on the user's own store.
type Claims struct {
	OwnerID string `json:"owner_id,omitempty"`
	jwt.RegisteredClaims
}

var errNoBearer = errors.New("authorization header format must be Bearer {token}")

// AuthMiddleware validates the bearer token and stores the user and owner
// in the request context. When issuer is non-empty the iss claim must match.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	parser := jwt.NewParser(parserOptions(issuer)...)
	key := func(*jwt.Token) (any, error) { return []byte(jwtSecret), nil }

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		raw, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			logger.Warn("Rejected authorization header", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": headerErrorMessage(err)})
			return
		}

		claims := &Claims{}
		if _, err := parser.ParseWithClaims(raw, claims, key); err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": tokenErrorMessage(err)})
			return
		}
		if claims.Subject == "" {
			logger.Warn("Token has no subject")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		userID, ownerID := claims.Subject, claims.OwnerID
		if ownerID == "" {
			ownerID = userID
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, ownerIDKey, ownerID)
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID), slog.String("owner_id", ownerID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func parserOptions(issuer string) []jwt.ParserOption {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return opts
}

var errNoHeader = errors.New("authorization header required")

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errNoHeader
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" || strings.Contains(token, " ") {
		return "", errNoBearer
	}
	return token, nil
}

func headerErrorMessage(err error) string {
	if errors.Is(err, errNoHeader) {
		return "Authorization header required"
	}
	return "Authorization header format must be Bearer {token}"
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Token not valid yet"
	default:
		return "Invalid token"
	}
}
