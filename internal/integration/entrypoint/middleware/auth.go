package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/dto"
)

const userIDKey = "owner_id"

// AuthMiddleware resolves the bearer credential of every request to its
// owning user.
type AuthMiddleware struct {
	resolver adapter.UserResolver
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(resolver adapter.UserResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate rejects requests without a resolvable owner with 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		credential, err := bearerCredential(c.GetHeader("Authorization"))
		if err == nil {
			var owner uuid.UUID
			owner, err = m.resolver.ResolveUser(c.Request.Context(), credential)
			if err == nil {
				c.Set(userIDKey, owner)
				c.Next()
				return
			}
		}

		response := dto.ErrorResponse{
			Error: "Invalid or expired token",
			Code:  string(domainerror.ErrCodeInvalidToken),
		}
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			response.Error = authErr.Message
			response.Code = string(authErr.Code)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, response)
	}
}

func bearerCredential(header string) (string, error) {
	if header == "" {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"Authorization header is required",
			domainerror.ErrUnauthenticated,
		)
	}
	scheme, credential, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"Invalid authorization header format",
			domainerror.ErrUnauthenticated,
		)
	}
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"Token is required",
			domainerror.ErrUnauthenticated,
		)
	}
	return credential, nil
}

// GetUserIDFromContext returns the owner resolved by Authenticate.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
