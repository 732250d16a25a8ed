package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financas-api/models"
)

func newIncomeRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	router := gin.New()
	handler := &IncomeHandler{DB: db}
	router.GET("/api/incomes", handler.GetIncomes)
	router.POST("/api/incomes", handler.CreateIncome)
	router.PUT("/api/incomes/:id", handler.UpdateIncome)
	router.DELETE("/api/incomes/:id", handler.DeleteIncome)
	return router, mock
}

func TestCreateIncome(t *testing.T) {
	t.Run("rejects an unknown month label", func(t *testing.T) {
		router, _ := newIncomeRouter(t)

		resp := postJSON(t, router, "/api/incomes", map[string]interface{}{
			"month": "January",
			"data":  map[string]string{"CLT": "1000"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("defaults the name and round-trips the column data", func(t *testing.T) {
		router, mock := newIncomeRouter(t)
		mock.ExpectQuery(`INSERT INTO incomes`).
			WithArgs("Jan", "Principal", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("i-1"))

		resp := postJSON(t, router, "/api/incomes", map[string]interface{}{
			"month": "Jan",
			"data":  map[string]string{"CLT": "1000.50", "App": "200"},
		})
		require.Equal(t, http.StatusCreated, resp.Code)

		var income models.Income
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &income))
		assert.Equal(t, "i-1", income.ID)
		assert.Equal(t, "Principal", income.Name)
		assert.Equal(t, "1000.50", income.Data["CLT"])
		assert.Equal(t, "200", income.Data["App"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateIncome(t *testing.T) {
	t.Run("missing income is a 404", func(t *testing.T) {
		router, mock := newIncomeRouter(t)
		mock.ExpectQuery(`SELECT id, month, name, data FROM incomes WHERE id`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "month", "name", "data"}))

		req := httptest.NewRequest(http.MethodPut, "/api/incomes/missing",
			bytes.NewReader([]byte(`{"name":"Extra"}`)))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("patches only the provided fields", func(t *testing.T) {
		router, mock := newIncomeRouter(t)
		mock.ExpectQuery(`SELECT id, month, name, data FROM incomes WHERE id`).
			WithArgs("i-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "month", "name", "data"}).
				AddRow("i-1", "Jan", "Principal", []byte(`{"CLT":"1000"}`)))
		mock.ExpectExec(`UPDATE incomes SET`).
			WithArgs("Jan", "Extra", sqlmock.AnyArg(), "i-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		req := httptest.NewRequest(http.MethodPut, "/api/incomes/i-1",
			bytes.NewReader([]byte(`{"name":"Extra"}`)))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var income models.Income
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &income))
		assert.Equal(t, "Extra", income.Name)
		assert.Equal(t, "Jan", income.Month)
		assert.Equal(t, "1000", income.Data["CLT"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteIncome(t *testing.T) {
	t.Run("deletes and returns no content", func(t *testing.T) {
		router, mock := newIncomeRouter(t)
		mock.ExpectExec(`DELETE FROM incomes`).
			WithArgs("i-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		req := httptest.NewRequest(http.MethodDelete, "/api/incomes/i-1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNoContent, resp.Code)
		assert.Empty(t, resp.Body.Bytes())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing income is a 404", func(t *testing.T) {
		router, mock := newIncomeRouter(t)
		mock.ExpectExec(`DELETE FROM incomes`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		req := httptest.NewRequest(http.MethodDelete, "/api/incomes/missing", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
