package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRequest(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCORS_AllowList(t *testing.T) {
	router := gin.New()
	router.Use(CORS(config.HTTPConfig{CORSAllowOrigins: []string{"https://admin.example.com"}}, true))
	router.GET("/test", okHandler)

	rec := corsRequest(router, "https://admin.example.com")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")

	rec = corsRequest(router, "https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCORS_DevelopmentAllowsAll(t *testing.T) {
	router := gin.New()
	router.Use(CORS(config.HTTPConfig{}, false))
	router.GET("/test", okHandler)

	rec := corsRequest(router, "http://localhost:5173")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
