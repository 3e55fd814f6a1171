package main

import (
	"embed"
	"log"
	"net/http"
	"os"
	"strings"

	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/opencourt/tourney-admin/internal/auth"
	"github.com/opencourt/tourney-admin/internal/console"
	dbpkg "github.com/opencourt/tourney-admin/internal/db"
	"github.com/opencourt/tourney-admin/internal/sheets"
	"github.com/opencourt/tourney-admin/internal/store"
	"github.com/opencourt/tourney-admin/internal/web"
)

//go:embed web/*
var webFS embed.FS

func main() {
	_ = godotenv.Load()

	endpoint := os.Getenv("SHEETS_API_URL")
	if endpoint == "" {
		log.Fatal("SHEETS_API_URL is required")
	}

	d, err := dbpkg.Open(env("DB_PATH", "tourney.db"))
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := dbpkg.Migrate(d); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	sessions := auth.NewRepository(d)
	cns := console.New(sheets.New(endpoint), store.New(d))

	// Expired sessions accumulate otherwise; sweep them on the hour.
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@hourly", func() {
		if n, err := sessions.SweepExpired(); err != nil {
			log.Printf("session sweep: %v", err)
		} else if n > 0 {
			log.Printf("session sweep: removed %d expired sessions", n)
		}
	}); err != nil {
		log.Fatalf("cron: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	r := gin.Default()
	// Configure explicit trusted proxies to avoid gin's trust-all warning.
	// Default trusts only loopback; override via TRUSTED_PROXIES env (comma-separated CIDRs/IPs)
	tp := strings.Split(env("TRUSTED_PROXIES", "127.0.0.1,::1"), ",")
	for i := range tp {
		tp[i] = strings.TrimSpace(tp[i])
	}
	if err := r.SetTrustedProxies(tp); err != nil {
		log.Fatalf("trusted proxies: %v", err)
	}

	corsCfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsCfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsCfg.AllowOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	auth.RegisterRoutes(r, cns, sessions)
	web.RegisterRoutes(r, cns, auth.AuthRequired(sessions))

	r.GET("/", func(c *gin.Context) {
		f, err := webFS.ReadFile("web/index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "missing index")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", f)
	})

	addr := env("ADDR", ":8080")
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
