package httpgin

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/smartpark/internal/domain"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

func loadTemplates() (*template.Template, error) {
	const op = "httpgin.loadTemplates"

	t, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// money renders an amount with cents, e.g. $17.50.
		"money": func(d decimal.Decimal) string {
			return "$" + d.StringFixed(2)
		},
		// price renders a catalog price the way the cards show it, e.g. $15.
		"price": func(d decimal.Decimal) string {
			return "$" + d.String()
		},
		"percent": func(f float64) string {
			return fmt.Sprintf("%.2f%%", f)
		},
		"clock": func(t time.Time) string {
			return t.Format("3:04:05 PM")
		},
		"upper": strings.ToUpper,
		"selected": func(a, b string) bool {
			return a != "" && a == b
		},
		"statusLabel": func(s domain.LevelStatus) string {
			return s.Label()
		},
	}
}

// page renders a named template with the layout already filled in.
func page(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}

// formStatus is 422 for a rejected form and 200 otherwise.
func formStatus(state domain.FormState) int {
	if state == domain.FormInvalid {
		return http.StatusUnprocessableEntity
	}

	return http.StatusOK
}
