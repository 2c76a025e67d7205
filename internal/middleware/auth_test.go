package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"homeinsight-septic/internal/middleware"
	"homeinsight-septic/pkg/config"
	"homeinsight-septic/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}

func newAuthRouter() *gin.Engine {
	cfg := &config.Config{}
	cfg.Auth.Username = "me"
	cfg.Auth.Password = "supersecretplsnotell"

	r := gin.New()
	r.GET("/protected", middleware.BasicAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doRequest(r *gin.Engine, setAuth func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if setAuth != nil {
		setAuth(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBasicAuthValidCredentials(t *testing.T) {
	w := doRequest(newAuthRouter(), func(req *http.Request) {
		req.SetBasicAuth("me", "supersecretplsnotell")
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBasicAuthRejections(t *testing.T) {
	r := newAuthRouter()

	missing := doRequest(r, nil)
	malformed := doRequest(r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer not-basic")
	})
	wrongUser := doRequest(r, func(req *http.Request) {
		req.SetBasicAuth("intruder", "supersecretplsnotell")
	})
	wrongPassword := doRequest(r, func(req *http.Request) {
		req.SetBasicAuth("me", "guess")
	})

	for _, w := range []*httptest.ResponseRecorder{missing, malformed, wrongUser, wrongPassword} {
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Basic", w.Header().Get("WWW-Authenticate"))
	}

	// A missing header and a wrong credential are indistinguishable.
	assert.Equal(t, missing.Body.String(), wrongUser.Body.String())
	assert.Equal(t, missing.Body.String(), wrongPassword.Body.String())
}
