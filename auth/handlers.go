package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/baas"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"github.com/usmanrimi/abb-gallery-ease-sub001/session"
	"github.com/usmanrimi/abb-gallery-ease-sub001/validation"
	"gorm.io/gorm"
)

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/sign-up
func SignUp(db *gorm.DB, client *baas.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.FullName(req.FullName); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := validation.Email(req.Email); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		settings, _ := models.LoadSiteSettings(db)
		if !settings.SignupEnabled {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Signups are currently disabled"})
			return
		}

		user, err := client.SignUp(req.Email, req.Password, req.FullName)
		if err != nil {
			relayProviderError(c, err, "Sign up failed")
			return
		}

		// The hosted deployment creates this row via a trigger; doing it here
		// as well keeps local deployments consistent. The session store still
		// retries resolution, so a lagging row is tolerated either way.
		profile := models.Profile{
			ID:       user.ID,
			Email:    user.Email,
			FullName: req.FullName,
			Role:     models.RoleCustomer,
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Printf("⚠️ Profile row creation lagged for %s: %v", user.ID, err)
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
	}
}

// POST /auth/sign-in
func SignIn(store *session.Store, client *baas.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		token, err := client.SignInWithPassword(req.Email, req.Password)
		if err != nil {
			relayProviderError(c, err, "Sign in failed")
			return
		}

		identity := session.Identity{
			ID:       token.User.ID,
			Email:    token.User.Email,
			FullName: token.User.FullName(),
		}
		sess := store.SignIn(identity, token.AccessToken)

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"token":      issueJWT(identity.ID, identity.Email, sess.Role, identity.FullName),
			"user":       gin.H{"id": identity.ID, "email": identity.Email, "full_name": identity.FullName},
			"role":       sess.Role,
			"role_error": sess.RoleError,
		})
	}
}

// POST /auth/sign-out
func SignOut(store *session.Store, client *baas.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		providerToken := store.SignOut(userID)
		if providerToken != "" {
			if err := client.SignOut(providerToken); err != nil {
				log.Printf("⚠️ Provider sign-out failed for %s: %v", userID, err)
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signed out"})
	}
}

// POST /auth/refresh-role
func RefreshRole(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		store.RefreshRole(userID)

		sess, ok := store.Get(userID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "No active session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"role":       sess.Role,
			"role_error": sess.RoleError,
		})
	}
}

// GET /auth/session — current session state for the bearer identity.
func GetSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		sess, ok := store.Get(userID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "No active session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"user":       gin.H{"id": sess.Identity.ID, "email": sess.Identity.Email, "full_name": sess.Identity.FullName},
			"role":       sess.Role,
			"loading":    sess.Loading,
			"role_error": sess.RoleError,
		})
	}
}

// relayProviderError passes the provider's status and message through
// unchanged; anything else is a plain upstream failure.
func relayProviderError(c *gin.Context, err error, fallback string) {
	var provErr *baas.Error
	if errors.As(err, &provErr) {
		log.Printf("❌ Auth provider error (%d): %s", provErr.Status, provErr.Message)
		c.JSON(provErr.Status, gin.H{"success": false, "error": provErr.Message, "code": provErr.Code})
		return
	}
	log.Printf("❌ %s: %v", fallback, err)
	c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": fallback})
}
