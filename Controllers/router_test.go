package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"MediTrack/Models"
	"MediTrack/Routes"
	"MediTrack/Utils/Token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer builds a router over a fresh in-memory store with the test
// signing configuration installed.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Models.Migrate(db))
	Models.DB = db

	require.NoError(t, Token.Setup("test-secret", "HS256", 30))

	router := gin.New()
	Routes.ConfigRoutes(router)
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, router *gin.Engine, username, email, role string) {
	t.Helper()
	recorder := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"username":   username,
		"email":      email,
		"first_name": "Test",
		"last_name":  "User",
		"password":   "password123",
		"role":       role,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
}

func loginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	tokenString, _ := body["access_token"].(string)
	require.NotEmpty(t, tokenString)
	require.Equal(t, "bearer", body["token_type"])
	return tokenString
}

func patientPayload(email string) gin.H {
	return gin.H{
		"first_name":      "Jane",
		"last_name":       "Doe",
		"date_of_birth":   "1990-05-14",
		"gender":          "female",
		"address":         "1 Main St",
		"phone_number":    "5550100",
		"email":           email,
		"medical_history": "none",
	}
}

func createPatient(t *testing.T, router *gin.Engine, token, email string) uint {
	t.Helper()
	recorder := doJSON(router, http.MethodPost, "/patients/", token, patientPayload(email))
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	body := decodeBody(t, recorder)
	id, ok := body["ID"].(float64)
	require.True(t, ok, fmt.Sprintf("unexpected body: %v", body))
	return uint(id)
}
