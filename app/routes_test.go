package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IanAndy202/Hotel-App/app/handler"
	"github.com/IanAndy202/Hotel-App/app/metrics"
	"github.com/IanAndy202/Hotel-App/app/middleware"
	"github.com/IanAndy202/Hotel-App/app/repositories"
	"github.com/IanAndy202/Hotel-App/app/session"
	"github.com/IanAndy202/Hotel-App/app/usecases"
	"github.com/IanAndy202/Hotel-App/app/utils"
	"github.com/IanAndy202/Hotel-App/app/views"
	"github.com/IanAndy202/Hotel-App/config"
	"github.com/IanAndy202/Hotel-App/server"
)

const cookieName = "hotel_session"

var seedDocs = map[string]string{
	repositories.UsersDocument: `{"users":[
		{"userId":"1","username":"alice","password":"pw","role":"Receptionist"},
		{"userId":"2","username":"bob","password":"pw","role":"Housekeeping"},
		{"userId":"3","username":"carol","password":"pw","role":"Manager"}]}`,
	repositories.RoomsDocument: `{"rooms":[
		{"roomId":"101","status":"vacant"},
		{"roomId":"102","status":"occupied","assignedGuest":{"name":"Zed"}},
		{"roomId":"103","status":"ready"}]}`,
	repositories.GuestsDocument:        `{"guests":[]}`,
	repositories.CleaningTasksDocument: `{"cleaningTasks":[]}`,
}

type testApp struct {
	e   *echo.Echo
	dir string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dir := t.TempDir()
	for name, body := range seedDocs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(body), 0o644))
	}

	cfg := config.Default()
	cfg.Server.HotelName = "Test Inn"
	store := repositories.NewJSONFileStore(dir)
	roomRepo := repositories.NewRoomRepository(store)
	taskRepo := repositories.NewCleaningTaskRepository(store)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	ids := &utils.SequenceGenerator{}
	sessions := session.NewMemoryStore(time.Hour)
	cookies := session.NewCookieCodec(cookieName, cfg.Session.Secret, time.Hour)

	roomUsecase := usecases.NewRoomUsecase(roomRepo)
	guestUsecase := usecases.NewGuestUsecase(repositories.NewGuestRepository(store), roomRepo, ids, m)
	cleaningUsecase := usecases.NewCleaningUsecase(taskRepo, ids, nil, nil, m)

	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	srv := server.NewEchoServer(cfg, renderer)

	RegisterRoutes(
		srv.GetEcho(),
		handler.NewPageHandler(cfg.Server.HotelName),
		handler.NewAuthHandler(usecases.NewUserUsecase(repositories.NewUserRepository(store), m), sessions, cookies),
		handler.NewDashboardHandler(roomUsecase, usecases.NewDashboardUsecase(roomRepo, taskRepo)),
		handler.NewRoomHandler(roomUsecase, guestUsecase),
		handler.NewCleaningHandler(cleaningUsecase, roomUsecase),
		middleware.SessionMiddleware(sessions, cookies),
		metrics.Handler(registry),
	)
	return &testApp{e: srv.GetEcho(), dir: dir}
}

func (a *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) post(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login(t *testing.T, username string) *http.Cookie {
	t.Helper()
	rec := a.post("/login", url.Values{"username": {username}, "password": {"pw"}}, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	return sessionCookie(t, rec)
}

func (a *testApp) document(t *testing.T, name string) map[string][]map[string]any {
	t.Helper()
	body, err := os.ReadFile(filepath.Join(a.dir, name+".json"))
	require.NoError(t, err)
	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(body, &doc))
	return doc
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", cookieName)
	return nil
}

func TestLanding(t *testing.T) {
	a := newTestApp(t)
	rec := a.get("/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to Test Inn")
	assert.Contains(t, rec.Body.String(), `href="/login"`)

	rec = a.get("/login", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="password"`)
}

func TestLoginRedirectsByRole(t *testing.T) {
	tests := []struct {
		username string
		location string
	}{
		{"alice", "/dashboard"},
		{"bob", "/cleaning-requests"},
		{"carol", "/"},
	}
	a := newTestApp(t)
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			rec := a.post("/login", url.Values{"username": {tt.username}, "password": {"pw"}}, nil)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get(echo.HeaderLocation))
			c := sessionCookie(t, rec)
			assert.True(t, c.HttpOnly)
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	a := newTestApp(t)
	for _, form := range []url.Values{
		{"username": {"alice"}, "password": {"nope"}},
		{"username": {"nobody"}, "password": {"pw"}},
		{},
	} {
		rec := a.post("/login", form, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	}
}

func TestDashboardAccess(t *testing.T) {
	a := newTestApp(t)

	rec := a.get("/dashboard", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	rec = a.get("/dashboard", a.login(t, "bob"))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	rec = a.get("/dashboard", a.login(t, "alice"))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Reception Dashboard")
	assert.Contains(t, body, "101")
	assert.Contains(t, body, "Zed")
	assert.Contains(t, body, "1 of 3 rooms occupied (33.3%)")
}

func TestCheckIn(t *testing.T) {
	a := newTestApp(t)
	alice := a.login(t, "alice")

	rec := a.get("/checkin", alice)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="101"`)
	assert.Contains(t, body, `value="103"`)
	assert.NotContains(t, body, `value="102"`)

	rec = a.post("/checkin", url.Values{"guestName": {"Ann"}, "contact": {"555"}, "room": {"101"}}, alice)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))

	guests := a.document(t, repositories.GuestsDocument)["guests"]
	require.Len(t, guests, 1)
	assert.Equal(t, "Ann", guests[0]["name"])
	assert.Equal(t, "555", guests[0]["contact"])
	assert.Equal(t, "101", guests[0]["roomId"])

	rooms := a.document(t, repositories.RoomsDocument)["rooms"]
	assert.Equal(t, "occupied", rooms[0]["status"])
	assert.Equal(t, map[string]any{"name": "Ann"}, rooms[0]["assignedGuest"])

	rec = a.get("/checkin", alice)
	assert.NotContains(t, rec.Body.String(), `value="101"`)
}

func TestCheckInRejectsIncompleteForm(t *testing.T) {
	a := newTestApp(t)
	alice := a.login(t, "alice")

	rec := a.post("/checkin", url.Values{"room": {"101"}}, alice)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.post("/checkin", url.Values{"guestName": {"Ann"}}, alice)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, a.document(t, repositories.GuestsDocument)["guests"])

	// housekeeping cannot check guests in
	rec = a.post("/checkin", url.Values{"guestName": {"Ann"}, "room": {"101"}}, a.login(t, "bob"))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestCleaningRequestFlow(t *testing.T) {
	a := newTestApp(t)
	bob := a.login(t, "bob")

	rec := a.get("/cleaning-requests", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	rec = a.get("/cleaning-requests", bob)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No cleaning requests.")

	rec = a.post("/cleaning-requests", url.Values{"room": {"102"}}, bob)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/cleaning-requests", rec.Header().Get(echo.HeaderLocation))
	taskID := rec.Header().Get(handler.HeaderTaskID)
	require.NotEmpty(t, taskID)

	tasks := a.document(t, repositories.CleaningTasksDocument)["cleaningTasks"]
	require.Len(t, tasks, 1)
	assert.Equal(t, taskID, tasks[0]["taskId"])
	assert.Equal(t, "102", tasks[0]["roomId"])
	assert.Equal(t, "pending", tasks[0]["status"])
	_, err := time.Parse("Jan 02, 2006, 03:04 PM", tasks[0]["requestedAt"].(string))
	assert.NoError(t, err)

	rec = a.get("/cleaning-requests", a.login(t, "alice"))
	assert.Contains(t, rec.Body.String(), "/cleaning-requests/"+taskID+"/complete")

	rec = a.post("/cleaning-requests/"+taskID+"/complete", nil, bob)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/cleaning-requests", rec.Header().Get(echo.HeaderLocation))

	tasks = a.document(t, repositories.CleaningTasksDocument)["cleaningTasks"]
	assert.Equal(t, "completed", tasks[0]["status"])

	// unknown ids are ignored
	rec = a.post("/cleaning-requests/nope/complete", nil, bob)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Len(t, a.document(t, repositories.CleaningTasksDocument)["cleaningTasks"], 1)

	rec = a.post("/cleaning-requests", url.Values{}, bob)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCleaningRequestStoreFailure(t *testing.T) {
	a := newTestApp(t)
	bob := a.login(t, "bob")
	require.NoError(t, os.Remove(filepath.Join(a.dir, repositories.CleaningTasksDocument+".json")))

	rec := a.post("/cleaning-requests", url.Values{"room": {"101"}}, bob)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error creating cleaning request", rec.Body.String())

	rec = a.post("/cleaning-requests/1/complete", nil, bob)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error updating cleaning task", rec.Body.String())
}

func TestLogout(t *testing.T) {
	a := newTestApp(t)
	alice := a.login(t, "alice")

	rec := a.get("/logout", alice)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.True(t, sessionCookie(t, rec).MaxAge < 0)

	// the old cookie no longer maps to a session
	rec = a.get("/dashboard", alice)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	rec = a.get("/logout", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestApp(t)
	a.login(t, "alice")
	a.post("/login", url.Values{"username": {"alice"}, "password": {"bad"}}, nil)

	rec := a.get("/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hotel_login_attempts_total{result="success"} 1`)
	assert.Contains(t, rec.Body.String(), `hotel_login_attempts_total{result="failure"} 1`)
}

func TestCheckInAndCompletionKeepUnknownFields(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(a.dir, "rooms.json"), []byte(`{"rooms":[
		{"roomId":"101","status":"vacant","floor":1,"price":120},
		{"roomId":"103","status":"ready","floor":1,"amenities":["tv"]}]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(a.dir, "cleaningTasks.json"), []byte(`{"cleaningTasks":[
		{"taskId":"old","roomId":"103","requestedAt":"Oct 18, 2026, 08:00 AM","status":"pending","note":"extra towels"}]}`), 0o644))
	alice := a.login(t, "alice")

	rec := a.get("/dashboard", alice)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.post("/checkin", url.Values{"guestName": {"Ann"}, "room": {"101"}}, alice)
	require.Equal(t, http.StatusFound, rec.Code)

	rec = a.post("/cleaning-requests/old/complete", nil, alice)
	require.Equal(t, http.StatusFound, rec.Code)

	rooms := a.document(t, repositories.RoomsDocument)["rooms"]
	assert.Equal(t, "occupied", rooms[0]["status"])
	assert.Equal(t, 120.0, rooms[0]["price"])
	assert.Equal(t, 1.0, rooms[0]["floor"])
	assert.Equal(t, []any{"tv"}, rooms[1]["amenities"])

	tasks := a.document(t, repositories.CleaningTasksDocument)["cleaningTasks"]
	assert.Equal(t, "completed", tasks[0]["status"])
	assert.Equal(t, "extra towels", tasks[0]["note"])
}

func TestUnknownPathIsNotFound(t *testing.T) {
	a := newTestApp(t)

	for _, cookie := range []*http.Cookie{nil, a.login(t, "bob"), a.login(t, "alice")} {
		rec := a.get("/favicon.ico", cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	}
}
