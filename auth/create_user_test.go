package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usmanrimi/abb-gallery-ease-sub001/baas"
	"github.com/usmanrimi/abb-gallery-ease-sub001/config"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Profile{}))
	return db
}

func newProviderStub(t *testing.T, status int, body map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
}

func callCreateUser(db *gorm.DB, client *baas.Client, method string, payload map[string]any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, "/super-admin/users", bytes.NewBuffer(body))
	CreateUserHandler(w, r, db, client)
	return w
}

func clientFor(url string) *baas.Client {
	return baas.NewClient(&config.Config{BaasURL: url, ServiceRoleKey: "service-key"})
}

func validPayload() map[string]any {
	return map[string]any{
		"email":     "ops@example.com",
		"password":  "secret1",
		"full_name": "Ops Person",
		"role":      "admin_ops",
	}
}

func TestCreateUserRejectsNonPost(t *testing.T) {
	db := newTestDB(t)
	w := callCreateUser(db, clientFor("http://unused"), http.MethodGet, validPayload())
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCreateUserHappyPathUpsertsProfileWithRole(t *testing.T) {
	ts := newProviderStub(t, http.StatusOK, map[string]any{"id": "new-id", "email": "ops@example.com"})
	defer ts.Close()

	db := newTestDB(t)
	w := callCreateUser(db, clientFor(ts.URL), http.MethodPost, validPayload())

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", "new-id").Error)
	assert.Equal(t, models.RoleAdminOps, profile.Role)
	assert.Equal(t, "ops@example.com", profile.Email)
}

func TestCreateUserUpsertOverwritesExistingProfile(t *testing.T) {
	ts := newProviderStub(t, http.StatusOK, map[string]any{"id": "existing-id", "email": "ops@example.com"})
	defer ts.Close()

	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Profile{ID: "existing-id", Email: "ops@example.com", Role: models.RoleCustomer}).Error)

	payload := validPayload()
	payload["role"] = "super_admin"
	w := callCreateUser(db, clientFor(ts.URL), http.MethodPost, payload)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", "existing-id").Error)
	assert.Equal(t, models.RoleSuperAdmin, profile.Role)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	payload := validPayload()
	payload["role"] = "owner"
	w := callCreateUser(db, clientFor("http://unused"), http.MethodPost, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserRejectsBadName(t *testing.T) {
	db := newTestDB(t)
	payload := validPayload()
	payload["full_name"] = "Ops_Person_99"
	w := callCreateUser(db, clientFor("http://unused"), http.MethodPost, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserRelaysProviderConflict(t *testing.T) {
	ts := newProviderStub(t, http.StatusUnprocessableEntity, map[string]any{
		"msg": "User already registered", "error_code": "user_already_exists",
	})
	defer ts.Close()

	db := newTestDB(t)
	w := callCreateUser(db, clientFor(ts.URL), http.MethodPost, validPayload())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "User already registered")

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	assert.Zero(t, count, "no profile row when the identity was never created")
}

func TestCreateUserPartialFailureSurfacesIdentityID(t *testing.T) {
	ts := newProviderStub(t, http.StatusOK, map[string]any{"id": "orphan-id", "email": "ops@example.com"})
	defer ts.Close()

	// Drop the profiles table so step 2 fails after step 1 succeeded.
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Profile{}))

	w := callCreateUser(db, clientFor(ts.URL), http.MethodPost, validPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "orphan-id", body["user_id"], "partial success must surface the new identity id")
}
