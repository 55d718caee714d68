package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/usmanrimi/abb-gallery-ease-sub001/baas"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"github.com/usmanrimi/abb-gallery-ease-sub001/validation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// CreateUserHandler is the privileged back-office endpoint: it creates the
// auth identity with the service-role key, then upserts the profile row with
// the requested role. The two steps are against different systems, so a
// step-2 failure is reported as a partial success carrying the new identity
// id for manual reconciliation — the identity is never rolled back.
func CreateUserHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB, client *baas.Client) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Method not allowed"})
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid request payload"})
		return
	}

	if err := validation.Email(req.Email); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
		return
	}
	if err := validation.FullName(req.FullName); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
		return
	}
	if req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "password is required"})
		return
	}
	if !models.ValidRole(req.Role) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "role must be one of customer, admin_ops, super_admin"})
		return
	}

	// Step 1: create the auth identity.
	user, err := client.AdminCreateUser(req.Email, req.Password, req.FullName)
	if err != nil {
		var provErr *baas.Error
		if errors.As(err, &provErr) {
			log.Printf("❌ Admin user creation rejected (%d): %s", provErr.Status, provErr.Message)
			writeJSON(w, provErr.Status, map[string]any{"success": false, "error": provErr.Message, "code": provErr.Code})
			return
		}
		log.Printf("❌ Admin user creation failed: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{"success": false, "error": "Auth provider unavailable"})
		return
	}

	// Step 2: upsert the profile row with the requested role.
	profile := models.Profile{
		ID:       user.ID,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     models.Role(req.Role),
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&profile).Error
	if err != nil {
		log.Printf("⚠️ Identity %s created but profile upsert failed: %v", user.ID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "User created but profile setup failed; assign the role manually",
			"user_id": user.ID,
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "user": user, "role": req.Role})
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
