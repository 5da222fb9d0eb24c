package handlers

import (
	"bytes"
	"html/template"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/internal/config"
	"storefront/internal/models"
	"storefront/internal/store"
)

// testTemplates stubs every template name the handlers render; layout and
// markup are not under test here.
func testTemplates() *template.Template {
	names := []string{
		"list.tmpl", "detail.tmpl", "cart.tmpl", "orders.tmpl", "order.tmpl",
		"login.tmpl", "register.tmpl",
		"admin_products.tmpl", "admin_product_form.tmpl",
		"admin_categories.tmpl", "admin_category_form.tmpl",
		"admin_companies.tmpl", "admin_company_form.tmpl",
		"admin_users.tmpl", "admin_orders.tmpl", "admin_order.tmpl",
	}
	var b strings.Builder
	for _, n := range names {
		b.WriteString(`{{define "` + n + `"}}` + n + ` {{with .Error}}error: {{.}}{{end}}{{end}}`)
	}
	return template.Must(template.New("test").Parse(b.String()))
}

// newTestHandler builds a handler over an in-memory database and a gin engine
// with sessions and stub templates.
func newTestHandler(t *testing.T, contentRoot string) (*Handler, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
	))

	cfg := config.Config{ContentRoot: contentRoot, SessionSecret: "test", Port: "0"}
	h := New(store.New(gdb), cfg, zerolog.Nop())

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test"))))
	r.SetHTMLTemplate(testTemplates())
	return h, r
}

func seedCategory(t *testing.T, h *Handler) *models.Category {
	t.Helper()
	cat := &models.Category{Name: "General"}
	require.NoError(t, h.Store.SaveCategory(cat))
	return cat
}

type testFile struct {
	name string
	data []byte
}

// multipartRequest builds a product form submission with the given files.
func multipartRequest(t *testing.T, path string, fields map[string]string, files []testFile) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := w.CreateFormFile("images", f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func formRequest(path string, fields url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// do runs one request through the engine, carrying the session cookie between
// calls.
func do(r *gin.Engine, req *http.Request, sessionCookie *string) *httptest.ResponseRecorder {
	if *sessionCookie != "" {
		req.Header.Set("Cookie", *sessionCookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if sc := w.Result().Header.Get("Set-Cookie"); sc != "" {
		*sessionCookie = strings.Split(sc, ";")[0]
	}
	return w
}
