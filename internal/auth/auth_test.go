package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIssueAndValidateToken(t *testing.T) {
	token, err := IssueToken("secret", "user-1", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken("secret", token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := IssueToken("secret", "user-1", time.Hour)
	assert.NoError(t, err)

	_, err = ValidateToken("other-secret", token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := IssueToken("secret", "user-1", -time.Minute)
	assert.NoError(t, err)

	_, err = ValidateToken("secret", token)
	assert.Error(t, err)
}

func TestMiddleware_SetsUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := IssueToken("secret", "user-1", time.Hour)
	assert.NoError(t, err)

	router := gin.New()
	router.Use(Middleware("secret"))
	router.GET("/whoami", func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		assert.True(t, ok)
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestMiddleware_RejectsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware("secret"))
	router.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
