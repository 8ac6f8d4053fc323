package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howardchatman/chatmaninc/database"
	"github.com/howardchatman/chatmaninc/middleware"
)

const (
	testAdminUser = "admin"
	testAdminPass = "test-password"
)

// setupRouter gives each test a fresh sqlite database and a router wired
// the same way as main.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath, testAdminUser, testAdminPass))
	t.Cleanup(func() { database.DB.Close() })

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))

	r.POST("/login", Login)
	r.GET("/logout", Logout)
	r.POST("/api/leads", SubmitLead)
	r.POST("/api/voice/webhook", VoiceWebhook)

	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/dashboard", Dashboard)
		authorized.POST("/calculate", Calculate)
		authorized.POST("/quotes/save", SaveQuote)
		authorized.GET("/quotes", ListQuotes)
		authorized.GET("/quotes/:id", LoadQuote)
		authorized.GET("/leads", ListLeads)
		authorized.POST("/leads", CreateLead)
		authorized.PATCH("/leads/:id", UpdateLead)
		authorized.GET("/invoices", ListInvoices)
		authorized.POST("/invoices", CreateInvoice)
		authorized.PATCH("/invoices/:id", UpdateInvoice)
		authorized.GET("/bookings", ListBookings)
		authorized.POST("/bookings", CreateBooking)

		admin := authorized.Group("/settings")
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("", ShowSettings)
			admin.POST("", UpdateSettings)
		}
	}
	return r
}

// login returns the session cookies for the seeded admin.
func login(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": testAdminUser, "password": testAdminPass})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())
	return rec.Result().Cookies()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r := setupRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/login", map[string]string{"username": testAdminUser, "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r := setupRouter(t)
	for _, path := range []string{"/dashboard", "/quotes", "/leads", "/invoices", "/bookings"} {
		rec := doJSON(t, r, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "expected 401 for %s", path)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	r := setupRouter(t)
	cookies := login(t, r)

	rec := doJSON(t, r, http.MethodGet, "/settings", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	update := map[string]any{
		"companyName":        "Chatman Inc",
		"contactEmail":       "hello@chatmaninc.com",
		"timezone":           "America/Chicago",
		"bookingDurationMin": 45,
	}
	rec = doJSON(t, r, http.MethodPost, "/settings", update, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/settings", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Settings struct {
			ContactEmail       string `json:"contactEmail"`
			BookingDurationMin int    `json:"bookingDurationMin"`
		} `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hello@chatmaninc.com", resp.Settings.ContactEmail)
	assert.Equal(t, 45, resp.Settings.BookingDurationMin)
}

func TestDashboardStats(t *testing.T) {
	r := setupRouter(t)
	cookies := login(t, r)

	for _, lead := range []map[string]any{
		{"name": "A", "email": "a@example.com", "status": "hot"},
		{"name": "B", "email": "b@example.com", "status": "warm"},
		{"name": "C", "email": "c@example.com", "status": "warm"},
	} {
		rec := doJSON(t, r, http.MethodPost, "/leads", lead, cookies)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := doJSON(t, r, http.MethodPost, "/invoices", map[string]any{"total": 1500.0, "status": "paid"}, cookies)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/dashboard", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		Leads struct {
			Total int `json:"total"`
			Hot   int `json:"hot"`
			Warm  int `json:"warm"`
		} `json:"leads"`
		Revenue float64 `json:"revenue"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.Leads.Total)
	assert.Equal(t, 1, stats.Leads.Hot)
	assert.Equal(t, 2, stats.Leads.Warm)
	assert.Equal(t, 1500.0, stats.Revenue)
}

func TestInvoiceNumbering(t *testing.T) {
	r := setupRouter(t)
	cookies := login(t, r)

	rec := doJSON(t, r, http.MethodPost, "/invoices", map[string]any{"total": 100.0}, cookies)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Invoice struct {
			Number string `json:"number"`
			Status string `json:"status"`
		} `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Regexp(t, `^INV-\d{4}-0001$`, resp.Invoice.Number)
	assert.Equal(t, "pending", resp.Invoice.Status)
}

func TestBookingDefaultsDuration(t *testing.T) {
	r := setupRouter(t)
	cookies := login(t, r)

	rec := doJSON(t, r, http.MethodPost, "/bookings", map[string]any{
		"email":     "client@example.com",
		"name":      "Discovery Call",
		"startTime": "2026-09-15T15:00:00Z",
	}, cookies)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Booking struct {
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
		} `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-15T15:30:00Z", resp.Booking.EndTime)
}
