package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"github.com/usmanrimi/abb-gallery-ease-sub001/session"
)

const SignInPath = "/auth/sign-in"

// LandingPath maps a role to its landing page. Total and deterministic:
// every input, including an unresolved role, lands exactly one place.
func LandingPath(role models.Role) string {
	switch role {
	case models.RoleSuperAdmin:
		return "/super-admin/dashboard"
	case models.RoleAdminOps:
		return "/admin/dashboard"
	default:
		return "/dashboard"
	}
}

// RequireRole guards a route group:
//   - no identity → redirect to sign-in, preserving the requested location;
//   - session still resolving → neutral placeholder, no redirect;
//   - role mismatch (or role never resolved) → redirect to the role's own
//     landing page;
//   - match, or no role required → pass through.
func RequireRole(store *session.Store, required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			redirectToSignIn(c)
			return
		}

		sess, ok := store.Get(userID)
		if !ok {
			redirectToSignIn(c)
			return
		}

		if sess.Loading {
			c.JSON(http.StatusOK, gin.H{"status": "loading"})
			c.Abort()
			return
		}

		if required == "" || sess.Role == required {
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, LandingPath(sess.Role))
		c.Abort()
	}
}

func redirectToSignIn(c *gin.Context) {
	target := SignInPath + "?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}
