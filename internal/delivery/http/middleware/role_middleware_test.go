package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medical-history-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func callThroughRole(middleware func(http.Handler) http.Handler, req *http.Request) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	middleware(next).ServeHTTP(recorder, req)
	return recorder, reached
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	recorder, reached := callThroughRole(RequireAdmin, requestWithRole(entity.RoleIDAdmin))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAdmin_ForbidsDoctor(t *testing.T) {
	recorder, reached := callThroughRole(RequireAdmin, requestWithRole(entity.RoleIDDoctor))

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireAdminOrDoctor(t *testing.T) {
	for _, roleID := range []int{entity.RoleIDAdmin, entity.RoleIDDoctor} {
		recorder, reached := callThroughRole(RequireAdminOrDoctor, requestWithRole(roleID))
		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder, reached := callThroughRole(RequireAdminOrDoctor, requestWithRole(entity.RoleIDPatient))
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRole_MissingRoleIsUnauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	recorder, reached := callThroughRole(RequireAdmin, req)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestContextGetters(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDKey, uint(7))
	ctx = context.WithValue(ctx, UsernameKey, "alex")
	ctx = context.WithValue(ctx, RoleIDKey, entity.RoleIDDoctor)
	ctx = context.WithValue(ctx, TokenIDKey, "token-123")

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), userID)

	username, ok := GetUsernameFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alex", username)

	roleID, ok := GetRoleIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, entity.RoleIDDoctor, roleID)

	tokenID, ok := GetTokenIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "token-123", tokenID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
