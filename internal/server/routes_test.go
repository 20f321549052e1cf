package server

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"padelhub/internal/auth"
	"padelhub/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routesTestSecret = "routes-test-secret"

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{JWTSecret: routesTestSecret}
	return New(sqlx.NewDb(db, "sqlmock"), cfg), mock
}

func bearerFor(t *testing.T, role string) string {
	token, err := auth.GenerateAccessToken(1, "carlos", role, routesTestSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestDeleteFacility_AdminForbidden(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("DELETE", "/api/facilities/1", nil)
	req.Header.Set("Authorization", bearerFor(t, auth.RoleAdmin))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteFacility_SuperAdmin(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE terrain_id IN")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM terrains WHERE facility_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM equipment_transactions WHERE equipment_id IN")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM equipment WHERE facility_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM facilities WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/api/facilities/1", nil)
	req.Header.Set("Authorization", bearerFor(t, auth.RoleSuperAdmin))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
