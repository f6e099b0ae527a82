package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"math"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenyoga/backend/config"
	"zenyoga/backend/routes"
	"zenyoga/backend/store"
)

var (
	app *fiber.App
	cfg *config.Config
	st  *store.Store
)

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	os.Exit(code)
}

func setup() {
	dir, err := os.MkdirTemp("", "zenyoga-test-*")
	if err != nil {
		panic(err)
	}

	cfg = &config.Config{
		AdminEmail:     "admin@zenyoga.com",
		JWTSecret:      "testsecret",
		ServerPort:     "8080",
		FallbackDBPath: filepath.Join(dir, "test.db"),
	}

	fallback, err := store.OpenFallback(cfg.FallbackDBPath)
	if err != nil {
		panic(err)
	}
	st = store.New(nil, fallback, cfg.AdminEmail, log.New(io.Discard, "", 0))

	app = fiber.New()
	routes.SetupRoutes(app, st, cfg)
}

func doJSON(t *testing.T, method, path, token string, body interface{}) (map[string]interface{}, int) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return result, resp.StatusCode
}

func login(t *testing.T, email string) string {
	t.Helper()
	result, status := doJSON(t, "POST", "/api/auth/login", "", map[string]string{"email": email})
	require.Equal(t, fiber.StatusOK, status)
	token, _ := result["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginAdmin(t *testing.T) {
	result, status := doJSON(t, "POST", "/api/auth/login", "", map[string]string{"email": "admin@zenyoga.com"})

	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, result["token"])
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "admin@zenyoga.com", user["email"])
	assert.Equal(t, true, user["isAdmin"])
	assert.Equal(t, "Admin", user["name"])
}

func TestLoginSeededStudent(t *testing.T) {
	result, status := doJSON(t, "POST", "/api/auth/login", "", map[string]string{"email": "  Student@ZenYoga.com "})

	assert.Equal(t, fiber.StatusOK, status)
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "student@zenyoga.com", user["email"])
	assert.Equal(t, false, user["isAdmin"])
}

func TestLoginUnknownEmail(t *testing.T) {
	_, status := doJSON(t, "POST", "/api/auth/login", "", map[string]string{"email": "stranger@example.com"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginInvalidEmail(t *testing.T) {
	_, status := doJSON(t, "POST", "/api/auth/login", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestGetClassesRequiresAuth(t *testing.T) {
	_, status := doJSON(t, "GET", "/api/classes", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCreateClassExtractsVideoID(t *testing.T) {
	token := login(t, "admin@zenyoga.com")

	classData := map[string]interface{}{
		"title":     "Deep Stretch",
		"youtubeId": "https://youtu.be/dQw4w9WgXcQ?t=5",
		"category":  "Yin Yoga",
		"level":     "Intermediate",
	}
	result, status := doJSON(t, "POST", "/api/admin/classes", token, classData)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Class created", result["message"])

	classes := result["classes"].([]interface{})
	created := classes[0].(map[string]interface{})
	assert.Equal(t, "Deep Stretch", created["title"])
	assert.Equal(t, "dQw4w9WgXcQ", created["youtubeId"])
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", created["thumbnailUrl"])
	assert.NotEmpty(t, created["id"])
}

func TestCreateClassValidation(t *testing.T) {
	token := login(t, "admin@zenyoga.com")

	_, status := doJSON(t, "POST", "/api/admin/classes", token, map[string]interface{}{
		"youtubeId": "dQw4w9WgXcQ",
		"category":  "No Such Category",
		"level":     "Beginner",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCreateClassRequiresAdmin(t *testing.T) {
	token := login(t, "student@zenyoga.com")

	_, status := doJSON(t, "POST", "/api/admin/classes", token, map[string]interface{}{
		"title":     "Nope",
		"youtubeId": "dQw4w9WgXcQ",
		"category":  "Hatha Yoga",
		"level":     "Beginner",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestFilterClassesByCategoryParam(t *testing.T) {
	token := login(t, "admin@zenyoga.com")

	result, status := doJSON(t, "GET", "/api/classes?category=Pranayama", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	for _, raw := range result["classes"].([]interface{}) {
		class := raw.(map[string]interface{})
		assert.Equal(t, "Pranayama", class["category"])
	}

	_, status = doJSON(t, "GET", "/api/classes?category=Bogus", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAuthorizeAndRevokeStudent(t *testing.T) {
	token := login(t, "admin@zenyoga.com")

	result, status := doJSON(t, "POST", "/api/admin/students", token, map[string]string{"email": "New.Person@Example.com"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, result["emails"], "new.person@example.com")

	result, status = doJSON(t, "DELETE", "/api/admin/students/new.person@example.com", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.NotContains(t, result["emails"], "new.person@example.com")
}

func TestRevokeAdminForbidden(t *testing.T) {
	token := login(t, "admin@zenyoga.com")

	_, status := doJSON(t, "DELETE", "/api/admin/students/admin@zenyoga.com", token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestStudentsEndpointRequiresAdmin(t *testing.T) {
	token := login(t, "student@zenyoga.com")

	_, status := doJSON(t, "GET", "/api/admin/students", token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestProgressFlow(t *testing.T) {
	token := login(t, "student@zenyoga.com")

	result, status := doJSON(t, "GET", "/api/classes", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	classes := result["classes"].([]interface{})
	require.NotEmpty(t, classes)
	classID := classes[0].(map[string]interface{})["id"].(string)

	result, status = doJSON(t, "PUT", "/api/progress/"+classID, token, map[string]bool{"completed": true})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, result["completedClasses"], classID)

	result, status = doJSON(t, "GET", "/api/progress", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	completed := result["completedClasses"].([]interface{})
	total := result["totalClasses"].(float64)
	expected := int(math.Round(100 * float64(len(completed)) / total))
	assert.Equal(t, expected, int(result["percentage"].(float64)))

	// Completed filter returns a subset containing the marked class.
	result, status = doJSON(t, "GET", "/api/classes?filter=completed", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	found := false
	for _, raw := range result["classes"].([]interface{}) {
		if raw.(map[string]interface{})["id"] == classID {
			found = true
		}
	}
	assert.True(t, found)

	result, status = doJSON(t, "PUT", "/api/progress/"+classID, token, map[string]bool{"completed": false})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotContains(t, result["completedClasses"], classID)
}

func TestExportBackup(t *testing.T) {
	token := login(t, "admin@zenyoga.com")

	req := httptest.NewRequest("GET", "/api/admin/export", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "backup_zenyoga_")

	var backup map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&backup))
	assert.NotEmpty(t, backup["classes"])
	assert.NotEmpty(t, backup["allowedEmails"])
	assert.NotEmpty(t, backup["exportDate"])
}
