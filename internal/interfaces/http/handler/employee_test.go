package handler

import (
	"net/http"
	"testing"

	hrapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/hr"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence"
	"github.com/Deoshabh/it-erp-system-sub003/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEmployeeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := setupTestDB(t)
	h := NewEmployeeHandler(hrapp.NewEmployeeService(persistence.NewGormEmployeeRepository(db)))

	router := authedRouter(uuid.New())
	g := router.Group("/employees")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return router
}

func employeeBody(email, department string) map[string]any {
	return map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      email,
		"department": department,
		"salary":     "5200",
		"hire_date":  "2023-04-01T00:00:00Z",
	}
}

func TestEmployeeHandler_Lifecycle(t *testing.T) {
	router := setupEmployeeRouter(t)

	w := serve(router, http.MethodPost, "/employees", employeeBody("ada@example.com", "Engineering"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := dataMap(t, w)
	id := created["id"].(string)
	assert.Equal(t, "Ada Lovelace", created["full_name"])
	assert.Equal(t, "active", created["status"])

	w = serve(router, http.MethodGet, "/employees/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ada@example.com", dataMap(t, w)["email"])

	update := employeeBody("ada@example.com", "Research")
	update["status"] = "inactive"
	w = serve(router, http.MethodPut, "/employees/"+id, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := dataMap(t, w)
	assert.Equal(t, "Research", updated["department"])
	assert.Equal(t, "inactive", updated["status"])

	w = serve(router, http.MethodDelete, "/employees/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(router, http.MethodGet, "/employees/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w).Error.Code)
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("duplicate email conflicts", func(t *testing.T) {
		router := setupEmployeeRouter(t)
		require.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/employees", employeeBody("dup@example.com", "Ops")).Code)

		w := serve(router, http.MethodPost, "/employees", employeeBody("DUP@example.com", "Ops"))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeAlreadyExists, decodeResponse(t, w).Error.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		router := setupEmployeeRouter(t)
		body := employeeBody("not-an-email", "Ops")
		w := serve(router, http.MethodPost, "/employees", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, decodeResponse(t, w).Success)
	})

	t.Run("negative salary rejected", func(t *testing.T) {
		router := setupEmployeeRouter(t)
		body := employeeBody("neg@example.com", "Ops")
		body["salary"] = "-1"
		w := serve(router, http.MethodPost, "/employees", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	router := setupEmployeeRouter(t)
	for i, dept := range []string{"Engineering", "Engineering", "Sales"} {
		email := []string{"a@example.com", "b@example.com", "c@example.com"}[i]
		require.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/employees", employeeBody(email, dept)).Code)
	}

	w := serve(router, http.MethodGet, "/employees?department=Engineering&page=1&page_size=1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.Len(t, resp.Data.([]any), 1)

	w = serve(router, http.MethodGet, "/employees?status=retired", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeHandler_InvalidID(t *testing.T) {
	router := setupEmployeeRouter(t)

	w := serve(router, http.MethodGet, "/employees/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeResponse(t, w).Error.Message, "Invalid employee ID format")
}
