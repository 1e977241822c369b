package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"technews/internal/db"
	"technews/internal/middleware"
	"technews/internal/router"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
)

// newMockDB swaps the package-global gorm handle for one backed by sqlmock
// and restores it when the test finishes.
func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	gdb, err := db.Open(postgres.New(postgres.Config{Conn: sqlDB}))
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening gorm", err)
	}

	old := db.DB
	db.DB = gdb
	t.Cleanup(func() {
		db.DB = old
		sqlDB.Close()
	})
	return mock
}

// newTestRouter builds the app router plus a test-only login route that
// seeds the session the way signup/login do.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("technews_session", store))
	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)

	r.GET("/testlogin", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("user_id", uint(1))
		session.Set("username", "alice")
		session.Set("logged_in", true)
		session.Save()
		c.Status(http.StatusOK)
	})
	return r
}

// doRequest runs one request through the router, attaching any cookies.
func doRequest(r *gin.Engine, method, path string, body []byte, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginSession obtains session cookies from the test login route.
func loginSession(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := doRequest(r, http.MethodGet, "/testlogin", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("test login failed with status %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("test login set no session cookie")
	}
	return cookies
}
