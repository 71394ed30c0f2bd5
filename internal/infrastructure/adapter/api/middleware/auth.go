package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credora-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credora-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const requesterKey = "requester"

// UserIDClaim is the token claim holding the account holder id
const UserIDClaim = "userId"

// Auth verifies the HS256 bearer token and stores the requester in the context
func Auth(secret string, logger coreport.Logger) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(c *gin.Context) {
		userID, err := verify(parser, key, c.GetHeader("Authorization"))
		if err != nil {
			logger.Warn("Rejected unauthenticated request", map[string]any{
				"path":       c.Request.URL.Path,
				"client_ip":  c.ClientIP(),
				"request_id": GetRequestID(c),
				"error":      err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errs.CodeUnauthorized, "Unauthorized"))
			return
		}

		c.Set(requesterKey, entity.Requester{
			UserID:    userID,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			RequestID: GetRequestID(c),
		})
		c.Next()
	}
}

func verify(parser *jwt.Parser, key []byte, header string) (uuid.UUID, error) {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return uuid.Nil, errors.New("missing bearer token")
	}

	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}); err != nil {
		return uuid.Nil, err
	}

	value, ok := claims[UserIDClaim].(string)
	if !ok {
		return uuid.Nil, errors.New("token has no userId claim")
	}

	userID, err := uuid.Parse(value)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, errors.New("token userId claim is not a valid id")
	}
	return userID, nil
}

// GetRequester returns the requester stored by Auth
func GetRequester(c *gin.Context) (entity.Requester, bool) {
	value, ok := c.Get(requesterKey)
	if !ok {
		return entity.Requester{}, false
	}
	requester, ok := value.(entity.Requester)
	return requester, ok
}
