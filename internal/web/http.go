// Package web is the HTTP surface of the console. Reads serve the current
// snapshot; mutations go through the console and come back as a Result the
// UI shows verbatim.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencourt/tourney-admin/internal/console"
	"github.com/opencourt/tourney-admin/internal/types"
)

// respond maps a console Result onto a status code. Validation and backend
// rejections are 422 so the UI can tell them from transport-level errors;
// a permission failure that needs re-authorization is 409.
func respond(c *gin.Context, res console.Result) {
	switch {
	case res.OK:
		c.JSON(http.StatusOK, res)
	case res.Reauthorize:
		c.JSON(http.StatusConflict, res)
	default:
		c.JSON(http.StatusUnprocessableEntity, res)
	}
}

func RegisterRoutes(r *gin.Engine, cns *console.Console, protect gin.HandlerFunc) {
	api := r.Group("/api")

	api.GET("/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, cns.Snapshot())
	})

	api.POST("/reload", attachProtect(protect, func(c *gin.Context) {
		c.JSON(http.StatusOK, cns.Reload(c.Request.Context()))
	}))

	api.POST("/matches", attachProtect(protect, func(c *gin.Context) {
		var m types.Match
		if err := c.BindJSON(&m); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		respond(c, cns.SaveMatch(c.Request.Context(), m))
	}))

	api.DELETE("/matches/:id", attachProtect(protect, func(c *gin.Context) {
		respond(c, cns.DeleteMatch(c.Request.Context(), c.Param("id")))
	}))

	api.POST("/teams", attachProtect(protect, func(c *gin.Context) {
		var t types.Team
		if err := c.BindJSON(&t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		respond(c, cns.SaveTeam(c.Request.Context(), t))
	}))

	api.DELETE("/teams/:id", attachProtect(protect, func(c *gin.Context) {
		respond(c, cns.DeleteTeam(c.Request.Context(), c.Param("id")))
	}))

	// Roster import from CSV or XLSX (protected)
	api.POST("/teams/:id/players/import", attachProtect(protect, func(c *gin.Context) {
		if err := c.Request.ParseMultipartForm(12 << 20); err != nil { // 12MB
			c.JSON(http.StatusBadRequest, gin.H{"error": "multipart too large"})
			return
		}
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
			return
		}
		players, err := parseRoster(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		report, res := cns.ImportPlayers(c.Request.Context(), c.Param("id"), players)
		if !res.OK && report.Imported == 0 && len(report.Errors) == 0 {
			respond(c, res)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"imported": report.Imported,
			"failed":   report.Failed,
			"errors":   report.Errors,
			"status":   res.Status,
		})
	}))

	api.POST("/tournaments", attachProtect(protect, func(c *gin.Context) {
		var t types.Tournament
		if err := c.BindJSON(&t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		respond(c, cns.CreateTournament(c.Request.Context(), t.Name, t.Sport, t.CategoryID, t.CategoryName))
	}))

	api.DELETE("/tournaments/:id", attachProtect(protect, func(c *gin.Context) {
		respond(c, cns.DeleteTournament(c.Request.Context(), c.Param("id")))
	}))

	api.POST("/pools", attachProtect(protect, func(c *gin.Context) {
		var p types.Pool
		if err := c.BindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		respond(c, cns.CreatePool(c.Request.Context(), p.TournamentID, p.Name))
	}))

	api.DELETE("/pools/:id", attachProtect(protect, func(c *gin.Context) {
		respond(c, cns.DeletePool(c.Request.Context(), c.Param("id")))
	}))

	api.POST("/players", attachProtect(protect, func(c *gin.Context) {
		var p types.Player
		if err := c.BindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		respond(c, cns.SavePlayer(c.Request.Context(), p))
	}))

	api.DELETE("/players/:id", attachProtect(protect, func(c *gin.Context) {
		respond(c, cns.DeletePlayer(c.Request.Context(), c.Param("id")))
	}))

	api.POST("/standings/recalculate", attachProtect(protect, func(c *gin.Context) {
		respond(c, cns.Recalculate(c.Request.Context()))
	}))

	api.POST("/blogs", attachProtect(protect, func(c *gin.Context) {
		var b types.BlogPost
		if err := c.BindJSON(&b); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		respond(c, cns.SaveBlog(c.Request.Context(), b))
	}))

	api.DELETE("/blogs/:id", attachProtect(protect, func(c *gin.Context) {
		respond(c, cns.DeleteBlog(c.Request.Context(), c.Param("id")))
	}))

	api.GET("/blogs/:id/comments", func(c *gin.Context) {
		comments := cns.Comments(c.Request.Context(), c.Param("id"))
		if comments == nil {
			comments = []types.Comment{}
		}
		c.JSON(http.StatusOK, comments)
	})

	api.POST("/blogs/:id/comments", func(c *gin.Context) {
		var req struct {
			Name    string `json:"name"`
			Comment string `json:"comment"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		respond(c, cns.AddComment(c.Request.Context(), c.Param("id"), req.Name, req.Comment))
	})

	api.PUT("/rules", attachProtect(protect, func(c *gin.Context) {
		var r types.Rules
		if err := c.BindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		respond(c, cns.SaveRules(c.Request.Context(), r))
	}))

	api.POST("/admins", attachProtect(protect, func(c *gin.Context) {
		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		respond(c, cns.CreateAdmin(c.Request.Context(), req.Name, req.Email, req.Password))
	}))

	api.DELETE("/admins/:email", attachProtect(protect, func(c *gin.Context) {
		respond(c, cns.DeleteAdmin(c.Request.Context(), c.Param("email")))
	}))

	registerExports(api, cns)
}

// attachProtect conditionally wraps handlers with the given protect middleware for mutating routes.
// Read routes stay public.
func attachProtect(protect gin.HandlerFunc, h gin.HandlerFunc) gin.HandlerFunc {
	if protect == nil {
		return h
	}
	return func(c *gin.Context) {
		protect(c)
		if c.IsAborted() {
			return
		}
		h(c)
	}
}
