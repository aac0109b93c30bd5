package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_backend/internal/models"
	"campus_backend/test/helpers"
)

func loginPrAdmin(t *testing.T, ts *helpers.TestServer, email, password string) string {
	res, body := ts.SendRequest(t, "POST", "/api/login/pr-admin", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "pr admin login failed: %s", body)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAuth_StudentApprovalFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreatePrAdmin(t, ts.DB, "pr@campus.edu", "admin-pass")
	adminToken := loginPrAdmin(t, ts, "pr@campus.edu", "admin-pass")

	// Student signs up and lands in PENDING.
	res, _ := ts.SendRequest(t, "POST", "/api/register/student", "", map[string]string{
		"email": "jane@campus.edu", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Pending accounts cannot log in.
	res, _ = ts.SendRequest(t, "POST", "/api/login/student", "", map[string]string{
		"email": "jane@campus.edu", "password": "secret1",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Admin approves.
	var student models.Student
	require.NoError(t, ts.DB.Where("email = ?", "jane@campus.edu").First(&student).Error)

	res, _ = ts.SendRequest(t, "POST", fmt.Sprintf("/api/admin/students/%d/approve", student.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Now login works.
	res, body := ts.SendRequest(t, "POST", "/api/login/student", "", map[string]string{
		"email": "jane@campus.edu", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "student", resp["role"])
	assert.NotEmpty(t, resp["token"])
}

func TestAuth_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, "POST", "/api/register/student", "", map[string]string{
		"email": "jane@campus.edu", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "POST", "/api/register/student", "", map[string]string{
		"email": "jane@campus.edu", "password": "other12",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestAdmin_RoutesRequireToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, "GET", "/api/admin/pending-students", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/admin/pending-students", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
