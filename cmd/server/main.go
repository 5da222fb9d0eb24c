package main

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront/internal/config"
	mydb "storefront/internal/db"
	"storefront/internal/handlers"
	"storefront/internal/models"
	"storefront/internal/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()

	gdb := mydb.MustOpen(cfg.DSN, log)
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	sqlDB, _ := gdb.DB()
	defer sqlDB.Close()

	st := store.New(gdb)
	seedAdmin(st, cfg, log)

	r := gin.Default()

	// static files: uploaded images come from the content root
	r.Static("/images", filepath.Join(cfg.ContentRoot, "images"))
	r.Static("/static", "./static")

	secureStore := cookie.NewStore([]byte(cfg.SessionSecret))
	secureStore.Options(sessions.Options{HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("sf_session", secureStore))

	r.SetFuncMap(template.FuncMap{
		"price": func(cents int) string { return fmt.Sprintf("%.2f", float64(cents)/100.0) },
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
	})
	r.LoadHTMLGlob("internal/views/**/*.tmpl")

	r.GET("/health", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	h := handlers.New(st, cfg, log)
	h.Routes(r)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// seedAdmin makes sure an admin account exists so the back office is reachable
// on a fresh database.
func seedAdmin(st store.Store, cfg config.Config, log zerolog.Logger) {
	if _, err := st.UserByIdent(cfg.AdminEmail); err == nil {
		return
	}
	hash, err := models.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash admin password")
	}
	u := models.User{
		Email:        cfg.AdminEmail,
		Username:     "admin",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := st.CreateUser(&u); err != nil {
		log.Fatal().Err(err).Msg("seed admin user")
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("seeded admin user")
}
