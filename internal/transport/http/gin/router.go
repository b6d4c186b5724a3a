package httpgin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/smartpark/internal/service"
	"github.com/kirinyoku/smartpark/internal/service/permits"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Options struct {
	// AuthPageEnabled mounts /auth. Without it the page answers 404.
	AuthPageEnabled bool
}

// site carries what every page handler needs besides the services.
type site struct {
	nav    []navLink
	logger *slog.Logger
}

func (s *site) layout(c *gin.Context, title string) Layout {
	return Layout{
		Title:     title,
		Path:      c.Request.URL.Path,
		Nav:       s.nav,
		RequestID: c.GetString(requestIDKey),
	}
}

func NewRouter(
	svcs *service.Services,
	opts Options,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	s := &site{
		nav: []navLink{
			{Path: "/", Label: "Home"},
			{Path: "/parking-status", Label: "Parking Status"},
			{Path: "/purchase-permit", Label: "Purchase Permit"},
			{Path: "/admin", Label: "Admin"},
			{Path: "/contact", Label: "Contact"},
		},
		logger: logger,
	}
	if opts.AuthPageEnabled {
		s.nav = append(s.nav, navLink{Path: "/auth", Label: "Account"})
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})

	// Pages
	r.GET("/", handleHome(svcs, s))
	r.GET("/parking-status", handleParkingStatus(svcs, s))
	r.POST("/parking-status/refresh", handleParkingRefresh(svcs, s))
	r.GET("/purchase-permit", handlePurchasePage(svcs, s))
	r.POST("/purchase-permit", handlePurchaseSubmit(svcs, s))
	r.GET("/admin", handleAdmin(svcs, s))
	r.GET("/contact", handleContactPage(svcs, s))
	r.POST("/contact", handleContactSubmit(svcs, s))

	if opts.AuthPageEnabled {
		auth := r.Group("/auth")
		{
			auth.GET("", handleAuthPage(svcs, s))
			auth.POST("/login", handleLogin(svcs, s))
			auth.POST("/register", handleRegister(svcs, s))
			auth.POST("/logout", handleLogout(svcs, s))
		}
	}

	// Read-only JSON API
	api := r.Group("/api", CORS())
	{
		api.GET("/garages", handleListGarages(svcs))
		api.GET("/parking/overview", handleParkingOverview(svcs))
		api.GET("/permits", handleListPermits(svcs))
		api.GET("/permits/:id/summary", handlePermitSummary(svcs))
	}

	r.NoRoute(handleNotFound(s))

	return r, nil
}

// --- Helpers ---

// errorStatus maps service errors to an HTTP status and a public message.
func errorStatus(err error) (int, string) {
	switch {
	// permits service
	case errors.Is(err, permits.ErrPermitNotFound):
		return http.StatusNotFound, "permit type not found"
	// simulated delays
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request cancelled"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	status, msg := errorStatus(err)
	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: msg})
}

// respondPageErr is respondErr for HTML routes.
func respondPageErr(c *gin.Context, s *site, err error) {
	status, msg := errorStatus(err)
	_ = c.Error(err)

	if status == http.StatusNotFound {
		page(c, status, "notfound", NotFoundPage{Layout: s.layout(c, "Page not found")})
		return
	}

	page(c, status, "error", ErrorPage{
		Layout:  s.layout(c, "Something went wrong"),
		Status:  status,
		Message: fmt.Sprintf("%d: %s", status, msg),
	})
}
