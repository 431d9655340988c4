package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrnexus_backend/internal/config"
	"hrnexus_backend/internal/logger"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
	"hrnexus_backend/internal/repositories"
	"hrnexus_backend/internal/services"
	"hrnexus_backend/internal/session"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("development")

	cfg := &config.Config{
		Server: config.ServerConfig{Env: "test"},
		Email:  config.EmailConfig{Simulate: true, FromEmail: "no-reply@technexus.com"},
		LLM:    config.LLMConfig{Provider: "none"},
		Admin:  config.AdminConfig{AccessCode: "ADMIN_2024"},
		Worker: config.WorkerConfig{PollInterval: time.Second},
	}

	store := recordstore.NewMemoryStore()
	users := repositories.NewUserRepository(store)
	candidates := repositories.NewCandidateRepository(store)
	cvs := repositories.NewCVRepository(store)
	activity := repositories.NewActivityRepository(store)
	sessions := session.NewManager(store, users)

	svcs := services.NewServiceContainer(cfg, users, candidates, cvs, activity, sessions)
	return SetupRouter(cfg, svcs, sessions)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	}
	return w, parsed
}

func TestAPI_CandidateJourney(t *testing.T) {
	router := newTestRouter(t)

	// Register and pick up the generated id.
	w, body := doJSON(t, router, "POST", "/api/v1/auth/candidate/register", map[string]string{
		"name":     "Alice Johnson",
		"email":    "alice@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := body["user"].(map[string]interface{})
	candidateID := user["id"].(string)
	require.NotEmpty(t, candidateID)

	// Registration signs in, so the profile is reachable at once.
	w, body = doJSON(t, router, "GET", "/api/v1/candidate/profile", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "PENDING", body["status"])

	// Upload a resume.
	w, _ = doJSON(t, router, "POST", "/api/v1/candidate/cv", map[string]string{
		"fileName": "resume.pdf",
		"content":  "data:application/pdf;base64,JVBERi0xLjQ=",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// A Word document is refused.
	w, body = doJSON(t, router, "POST", "/api/v1/candidate/cv", map[string]string{
		"fileName": "resume.docx",
		"content":  "data:application/msword;base64,AAAA",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_FILE_TYPE", errObj["code"])

	// Candidates cannot reach the HR dashboard.
	w, _ = doJSON(t, router, "GET", "/api/v1/admin/candidates", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Switch to the demo admin and triage.
	w, _ = doJSON(t, router, "POST", "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, "POST", "/api/v1/auth/admin/demo", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, body = doJSON(t, router, "GET", "/api/v1/admin/candidates?search=alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	// Drafting never fails even with no model configured.
	w, body = doJSON(t, router, "POST", "/api/v1/admin/candidates/"+candidateID+"/invite/draft", map[string]string{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Error generating email. Please try manual composition.", body["body"])

	// Sending the invitation auto-verifies the pending candidate.
	w, body = doJSON(t, router, "POST", "/api/v1/admin/candidates/"+candidateID+"/invite/send", map[string]string{
		"body": "Dear Alice, please join us for an interview on [Date].",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "VERIFIED", body["status"])

	// Rejecting afterwards sticks.
	w, body = doJSON(t, router, "PATCH", "/api/v1/admin/candidates/"+candidateID+"/status", map[string]string{
		"status": "REJECTED",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "REJECTED", body["status"])
}

func TestAPI_SessionRequired(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, "GET", "/api/v1/candidate/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, "GET", "/api/v1/admin/candidates", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_AdminRegistrationAccessCode(t *testing.T) {
	router := newTestRouter(t)

	w, body := doJSON(t, router, "POST", "/api/v1/auth/admin/register", map[string]string{
		"name":       "Eve",
		"email":      "eve@example.com",
		"password":   "secret1",
		"accessCode": "LETMEIN",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_ACCESS_CODE", errObj["code"])

	w, body = doJSON(t, router, "POST", "/api/v1/auth/admin/register", map[string]string{
		"name":       "Hana",
		"email":      "hana@example.com",
		"password":   "secret1",
		"accessCode": "admin_2024",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := body["user"].(map[string]interface{})
	assert.Equal(t, string(models.RoleHRAdmin), user["role"])
}

func TestAPI_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	w, body := doJSON(t, router, "POST", "/api/v1/auth/candidate/register", map[string]string{
		"name":     "A",
		"email":    "not-an-email",
		"password": "x",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestAPI_Health(t *testing.T) {
	router := newTestRouter(t)

	w, body := doJSON(t, router, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}
