package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/roomify-io/roomify-server/internal/infra/authn"
	"github.com/roomify-io/roomify-server/internal/modules/serializer"
)

// UserAuth authenticates requests with a session bearer token, resolves the
// owning user via the verifier and sets the user id in the context. It also
// sets the user_id attribute on the current span for telemetry filtering.
func UserAuth(verifier authn.SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ctx, authSpan := otel.Tracer("middleware").Start(ctx, "user_auth",
			trace.WithAttributes(attribute.String("middleware", "user_auth")))

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr())
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		userID, err := verifier.VerifyToken(ctx, token)
		if err != nil || userID == "" {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr())
			return
		}

		rootSpan := trace.SpanFromContext(c.Request.Context())
		if rootSpan.SpanContext().IsValid() {
			rootSpan.SetAttributes(attribute.String("user_id", userID))
		}

		authSpan.SetAttributes(
			attribute.String("user_id", userID),
			attribute.Bool("authenticated", true),
		)
		authSpan.End()

		c.Set("userID", userID)
		c.Next()
	}
}
