package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	userID string
	err    error
}

func (f *fakeVerifier) VerifyToken(_ context.Context, _ string) (string, error) {
	return f.userID, f.err
}

func TestUserAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		verifier       *fakeVerifier
		expectedStatus int
		expectedUserID string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			verifier:       &fakeVerifier{userID: "user-1"},
			expectedStatus: http.StatusOK,
			expectedUserID: "user-1",
		},
		{
			name:           "missing header",
			authHeader:     "",
			verifier:       &fakeVerifier{userID: "user-1"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			verifier:       &fakeVerifier{userID: "user-1"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rejected token",
			authHeader:     "Bearer expired",
			verifier:       &fakeVerifier{err: errors.New("token expired")},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty user id",
			authHeader:     "Bearer odd",
			verifier:       &fakeVerifier{userID: ""},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(UserAuth(tt.verifier))

			var gotUserID string
			r.GET("/probe", func(c *gin.Context) {
				gotUserID = c.GetString("userID")
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/probe", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, gotUserID)
			} else {
				assert.Contains(t, w.Body.String(), `"error":"Unauthorized"`)
			}
		})
	}
}
