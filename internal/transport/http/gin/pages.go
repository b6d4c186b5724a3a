package httpgin

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/kirinyoku/smartpark/internal/service"
	"github.com/kirinyoku/smartpark/internal/service/account"
	"github.com/kirinyoku/smartpark/internal/service/parking"
)

func handleHome(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		garages, err := svcs.Parking.Availability(c.Request.Context())
		if err != nil {
			respondPageErr(c, s, err)
			return
		}

		page(c, http.StatusOK, "home", HomePage{
			Layout:  s.layout(c, "Smart Parking Made Simple"),
			Garages: garages,
			Page:    svcs.Home.Page(),
		})
	}
}

func handleParkingStatus(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderStatus(c, svcs, s, svcs.Parking.Now())
	}
}

// handleParkingRefresh waits out the simulated poll and re-renders the
// dashboard with a new "last updated" time.
func handleParkingRefresh(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		updated, err := svcs.Parking.Refresh(ctx)
		switch {
		case errors.Is(err, parking.ErrStaleCache):
			requestLogger(c, s.logger).WarnContext(ctx, "parking refresh kept stale cache", "error", err)
		case err != nil:
			respondPageErr(c, s, err)
			return
		}

		requestLogger(c, s.logger).DebugContext(ctx, "parking status refreshed", "at", updated)

		renderStatus(c, svcs, s, updated)
	}
}

func renderStatus(c *gin.Context, svcs *service.Services, s *site, updated time.Time) {
	ctx := c.Request.Context()

	garages, err := svcs.Parking.Availability(ctx)
	if err != nil {
		respondPageErr(c, s, err)
		return
	}

	ov, err := svcs.Parking.Overview(ctx)
	if err != nil {
		respondPageErr(c, s, err)
		return
	}

	page(c, http.StatusOK, "status", StatusPage{
		Layout:      s.layout(c, "Real-Time Parking Status"),
		Overview:    ov,
		Legend:      svcs.Parking.Legend(),
		Garages:     garages,
		LastUpdated: updated,
	})
}

func handlePurchasePage(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderPurchase(c, svcs, s, http.StatusOK, strings.TrimSpace(c.Query("permit")), domain.PurchaseForm{}, domain.FormEmpty, nil)
	}
}

// handlePurchaseSubmit serves both buttons of the purchase form. A permit
// card posts action=select and only swaps the order summary; the purchase
// button posts action=purchase and runs the simulated checkout.
func handlePurchaseSubmit(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PurchaseRequest
		if err := c.ShouldBind(&req); err != nil {
			respondPageErr(c, s, err)
			return
		}

		permitID := strings.TrimSpace(req.Permit)
		if permitID == "" {
			permitID = strings.TrimSpace(req.Selected)
		}

		if req.Action != "purchase" {
			state := domain.FormEditing
			if req.PurchaseForm.IsEmpty() {
				state = domain.FormEmpty
			}
			renderPurchase(c, svcs, s, http.StatusOK, permitID, req.PurchaseForm, state, nil)
			return
		}

		ctx := c.Request.Context()

		res, err := svcs.Permits.Purchase(ctx, permitID, req.PurchaseForm)
		if err != nil {
			respondPageErr(c, s, err)
			return
		}

		requestLogger(c, s.logger).DebugContext(ctx, "permit purchase handled",
			"permit", permitID,
			"state", res.State,
			"toasts", len(res.Toasts),
		)

		renderPurchase(c, svcs, s, formStatus(res.State), permitID, res.Form, res.State, res.Toasts)
	}
}

func renderPurchase(
	c *gin.Context,
	svcs *service.Services,
	s *site,
	status int,
	permitID string,
	form domain.PurchaseForm,
	state domain.FormState,
	toasts []domain.Toast,
) {
	ctx := c.Request.Context()

	catalog, err := svcs.Permits.Catalog(ctx)
	if err != nil {
		respondPageErr(c, s, err)
		return
	}

	p := PurchasePage{
		Catalog:  catalog,
		Selected: permitID,
		Form:     form,
		State:    state,
	}

	if permitID != "" {
		sum, err := svcs.Permits.Summary(ctx, permitID)
		if err != nil {
			respondPageErr(c, s, err)
			return
		}
		p.Summary = &sum
	}

	p.Layout = s.layout(c, "Purchase Parking Permit")
	p.Toasts = toasts

	page(c, status, "purchase", p)
}

func handleAdmin(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q AdminQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondPageErr(c, s, err)
			return
		}

		d, err := svcs.Admin.Dashboard(c.Request.Context(), q.Search)
		if err != nil {
			respondPageErr(c, s, err)
			return
		}

		page(c, http.StatusOK, "admin", AdminPage{
			Layout:    s.layout(c, "Admin Dashboard"),
			Dashboard: d,
		})
	}
}

func handleContactPage(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		page(c, http.StatusOK, "contact", ContactPage{
			Layout: s.layout(c, "Contact & Support"),
			Page:   svcs.Contact.Page(),
			State:  domain.FormEmpty,
		})
	}
}

func handleContactSubmit(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form domain.ContactForm
		if err := c.ShouldBind(&form); err != nil {
			respondPageErr(c, s, err)
			return
		}

		ctx := c.Request.Context()
		res := svcs.Contact.Submit(ctx, form)

		requestLogger(c, s.logger).DebugContext(ctx, "contact form handled",
			"state", res.State,
			"category", form.Category,
		)

		l := s.layout(c, "Contact & Support")
		l.Toasts = res.Toasts

		page(c, formStatus(res.State), "contact", ContactPage{
			Layout: l,
			Page:   svcs.Contact.Page(),
			Form:   res.Form,
			State:  res.State,
		})
	}
}

func handleAuthPage(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q AuthQuery
		_ = c.ShouldBindQuery(&q)

		renderAuth(c, s, svcs.Account.Anonymous(q.Tab))
	}
}

func handleLogin(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form domain.LoginForm
		if err := c.ShouldBind(&form); err != nil {
			respondPageErr(c, s, err)
			return
		}

		v := svcs.Account.Login(c.Request.Context(), form)
		requestLogger(c, s.logger).DebugContext(c.Request.Context(), "login handled",
			"logged_in", v.LoggedIn,
			"role", v.Role,
		)

		renderAuth(c, s, v)
	}
}

func handleRegister(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form domain.RegisterForm
		if err := c.ShouldBind(&form); err != nil {
			respondPageErr(c, s, err)
			return
		}

		v := svcs.Account.Register(c.Request.Context(), form)
		requestLogger(c, s.logger).DebugContext(c.Request.Context(), "registration handled",
			"logged_in", v.LoggedIn,
		)

		renderAuth(c, s, v)
	}
}

func handleLogout(svcs *service.Services, s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderAuth(c, s, svcs.Account.Logout(c.Request.Context()))
	}
}

func renderAuth(c *gin.Context, s *site, v account.View) {
	title := "Welcome to SmartPark"
	switch {
	case v.IsAdmin():
		title = "Admin Dashboard"
	case v.LoggedIn:
		title = "My Account"
	}

	l := s.layout(c, title)
	l.Toasts = v.Toasts

	page(c, formStatus(v.State), "auth", AuthPage{Layout: l, Session: v})
}

func handleNotFound(s *site) gin.HandlerFunc {
	return func(c *gin.Context) {
		page(c, http.StatusNotFound, "notfound", NotFoundPage{Layout: s.layout(c, "Page not found")})
	}
}
