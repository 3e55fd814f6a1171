package auth

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencourt/tourney-admin/internal/console"
)

const CookieName = "session_token"

func ttlFromEnv() time.Duration {
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 30 * 24 * time.Hour
}

// cookieSecure determines the Secure flag for cookies. Defaults true in non-local.
func cookieSecure() bool {
	if v := strings.ToLower(os.Getenv("COOKIE_SECURE")); v != "" {
		return v == "1" || v == "true" || v == "yes"
	}
	return true
}

func RegisterRoutes(r *gin.Engine, cns *console.Console, repo *Repository) {
	api := r.Group("/api/auth")

	api.POST("/login", func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing email or password"})
			return
		}

		sess, res := cns.Login(c.Request.Context(), req.Email, req.Password)
		if !res.OK {
			c.JSON(http.StatusUnauthorized, gin.H{"error": res.Status})
			return
		}
		s, err := repo.Create(sess.Email, sess.Name, sess.MustChangePassword, ttlFromEnv())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session failed"})
			return
		}
		maxAge := int(time.Until(s.ExpiresAt).Seconds())
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CookieName, s.Token, maxAge, "/", "", cookieSecure(), true)
		c.JSON(http.StatusOK, gin.H{
			"ok":                 true,
			"name":               s.Name,
			"mustChangePassword": s.MustChangePassword,
		})
	})

	api.POST("/logout", func(c *gin.Context) {
		tok, err := c.Cookie(CookieName)
		if err == nil && tok != "" {
			_ = repo.Delete(tok)
		}
		// Cookie clears whether or not the backend hears about it.
		cns.Logout(c.Request.Context())
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CookieName, "", -1, "/", "", cookieSecure(), true)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api.GET("/me", func(c *gin.Context) {
		s, ok := CurrentSession(c, repo)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"email":              s.Email,
			"name":               s.Name,
			"mustChangePassword": s.MustChangePassword,
		})
	})

	api.POST("/change_password", func(c *gin.Context) {
		s, ok := CurrentSession(c, repo)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		var req struct {
			OldPassword string `json:"oldPassword"`
			NewPassword string `json:"newPassword"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		res := cns.ChangePassword(c.Request.Context(), s.Email, req.OldPassword, req.NewPassword)
		if !res.OK {
			c.JSON(http.StatusBadRequest, res)
			return
		}
		_ = repo.ClearMustChange(s.Token)
		c.JSON(http.StatusOK, res)
	})
}

// CurrentSession resolves the session cookie for convenience.
func CurrentSession(c *gin.Context, repo *Repository) (Session, bool) {
	tok, err := c.Cookie(CookieName)
	if err != nil || tok == "" {
		return Session{}, false
	}
	s, err := repo.Get(tok)
	if err != nil {
		return Session{}, false
	}
	return s, true
}

// AuthRequired guards mutation routes behind a valid session.
func AuthRequired(repo *Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c, repo); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
