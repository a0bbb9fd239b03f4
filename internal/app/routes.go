package app

import (
	"net/http"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/auth"
	"github.com/folio-space/core/internal/modules/contact"
	"github.com/folio-space/core/internal/modules/content/blog"
	"github.com/folio-space/core/internal/modules/content/comment"
	"github.com/folio-space/core/internal/modules/content/project"
	"github.com/folio-space/core/internal/modules/content/resume"
	"github.com/folio-space/core/internal/modules/stats"
	"github.com/folio-space/core/internal/modules/storage"
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Local uploads are served straight from disk under the same path the
	// object keys use.
	if a.cfg.Storage.Strategy == config.StrategyLocal {
		r.Static("/uploads", a.cfg.Storage.Local.Dir)
	}

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(db))

	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	mailer := mail.New(mail.Config{
		Enable:    a.cfg.Mail.Enable,
		Host:      a.cfg.Mail.Host,
		Port:      a.cfg.Mail.Port,
		User:      a.cfg.Mail.User,
		Pass:      a.cfg.Mail.Pass,
		From:      a.cfg.Mail.From,
		To:        a.cfg.Mail.To,
		UseResend: a.cfg.Mail.UseResend,
		ResendKey: a.cfg.Mail.ResendKey,
	})

	// Auth
	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	// Media gateway
	storage.NewHandler(a.store, a.logger).RegisterRoutes(api, authMW)

	// Content
	blogSvc := blog.NewService(db, a.store, a.logger)
	blog.NewHandler(blogSvc, a.rc, a.logger).RegisterRoutes(api, authMW)
	project.NewHandler(project.NewService(db, a.store, a.logger)).RegisterRoutes(api, authMW)
	comment.NewHandler(comment.NewService(db)).RegisterRoutes(api, authMW)
	resume.NewHandler(resume.NewService(db, a.store, a.logger)).RegisterRoutes(api, authMW)

	// Contact
	contact.NewHandler(contact.NewService(db, mailer, a.cfg.SiteName, a.logger)).RegisterRoutes(api, authMW)

	// Dashboard
	stats.NewHandler(stats.NewService(db)).RegisterRoutes(api, authMW)
}
