package sundowner

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/okavangolabs/sundowner/subscribers"
	"github.com/okavangolabs/sundowner/views"
)

func (a *App) checkOpsKey(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(a.Config.OpsKey)) == 1
}

// requireOpsKey guards the JSON API. A browser session, an X-Ops-Key
// header, or a ?key= query parameter all pass; failed key attempts are
// rate limited per IP like the login form.
func (a *App) requireOpsKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if IsOps(c) {
			return next(c)
		}
		key := c.Request().Header.Get("X-Ops-Key")
		if key == "" {
			key = c.QueryParam("key")
		}
		if key == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Ops key required"})
		}
		if !a.keyLimiter.Check(c.RealIP()) {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many attempts. Try again later."})
		}
		if !a.checkOpsKey(key) {
			a.keyLimiter.Record(c.RealIP())
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid ops key"})
		}
		return next(c)
	}
}

func (a *App) opsShell(title string) views.Shell {
	return a.shell(views.PageMeta{Title: title, Noindex: true}, "")
}

func (a *App) handleOps(c echo.Context) error {
	if !IsOps(c) {
		return Render(c, views.OpsLogin(a.opsShell("Ops"), false, CsrfToken(c)))
	}
	return a.renderDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleOpsLogin(c echo.Context) error {
	if !a.keyLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many attempts. Try again later.")
	}
	if a.checkOpsKey(c.FormValue("key")) {
		if err := setOpsSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/ops/")
	}
	a.keyLimiter.Record(c.RealIP())
	return Render(c, views.OpsLogin(a.opsShell("Ops"), true, CsrfToken(c)))
}

func handleOpsLogout(c echo.Context) error {
	if err := clearOpsSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/ops/")
}

func (a *App) handleOpsStatus(c echo.Context) error {
	if !IsOps(c) {
		return c.Redirect(http.StatusSeeOther, "/ops/")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/ops/?msg=Bad+subscriber+id")
	}
	status := c.FormValue("status")
	if !subscribers.ValidStatus(status) {
		return c.Redirect(http.StatusSeeOther, "/ops/?msg=Unknown+status")
	}
	if _, err := a.Subs.UpdateStatus(id, status); err != nil {
		if err == subscribers.ErrNotFound {
			return c.Redirect(http.StatusSeeOther, "/ops/?msg=Subscriber+not+found")
		}
		return err
	}
	a.Counts.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/ops/?msg=updated")
}

func (a *App) handleOpsDelete(c echo.Context) error {
	if !IsOps(c) {
		return c.Redirect(http.StatusSeeOther, "/ops/")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/ops/?msg=Bad+subscriber+id")
	}
	if err := a.Subs.Delete(id); err != nil {
		if err == subscribers.ErrNotFound {
			return c.Redirect(http.StatusSeeOther, "/ops/?msg=Subscriber+not+found")
		}
		return err
	}
	a.Counts.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/ops/?msg=deleted")
}

func (a *App) renderDashboard(c echo.Context, msg string) error {
	status := c.QueryParam("status")
	if !subscribers.ValidStatus(status) {
		status = ""
	}
	query := c.QueryParam("q")
	subs, err := a.Subs.List(subscribers.Filter{Status: status, Query: query})
	if err != nil {
		return err
	}
	counts, err := a.Subs.CountByStatus()
	if err != nil {
		return err
	}
	return Render(c, views.OpsDashboard(a.opsShell("Subscribers"), views.OpsDashboardData{
		Subs:    subs,
		Counts:  counts,
		Status:  status,
		Query:   query,
		Message: msg,
		CSRF:    CsrfToken(c),
	}))
}
