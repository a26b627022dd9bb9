package handlers

import (
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sagarneeli.dev/internal/config"
	"sagarneeli.dev/internal/content"
	"sagarneeli.dev/internal/models"
	"sagarneeli.dev/internal/profileapi"
	"sagarneeli.dev/internal/render"
	"sagarneeli.dev/web"
)

type fakeSource struct {
	content *models.SiteContent
	err     error
}

func (f fakeSource) Content() (*models.SiteContent, error) {
	return f.content, f.err
}

func testContent() *models.SiteContent {
	return &models.SiteContent{
		Site: models.Site{Title: "Sagar Neeli", Tagline: "Engineer"},
		Hero: models.Hero{
			Name:     "Sagar Neeli",
			Headline: "Senior Software Engineer",
			Summary:  "Builds *reliable* systems",
		},
		Experience: []models.Experience{
			{Company: "Acme", Role: "Staff Engineer", Start: "2023-01-01"},
		},
		Projects: []models.Project{
			{ID: "search", Title: "Search", Description: "Fast search", Featured: true},
			{ID: "etl", Title: "ETL", Description: "Pipelines"},
		},
		Skills: map[string][]string{"Languages": {"Go"}},
		Links:  map[string]string{"email": "mailto:me@example.com", "github": "https://github.com/example"},
	}
}

func newTestRouter(t *testing.T, src content.Source) http.Handler {
	t.Helper()

	t.Setenv("APP_ENV", "production")
	t.Setenv("SITE_LOCALE", "en")
	t.Setenv("LOG_LEVEL", "info")
	cfg, err := config.Load()
	require.NoError(t, err)

	tmpl, err := render.NewTemplates(web.Templates)
	require.NoError(t, err)
	static, err := fs.Sub(web.Static, "static")
	require.NoError(t, err)

	return SetupRoutes(cfg, Deps{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Content:   src,
		Clock:     func() time.Time { return time.Date(2025, time.October, 15, 9, 0, 0, 0, time.UTC) },
		Templates: tmpl,
		Static:    static,
	})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(t, fakeSource{content: testContent()}), "/api/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, rec))
}

func TestProjects(t *testing.T) {
	r := newTestRouter(t, fakeSource{content: testContent()})

	rec := get(t, r, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Project](t, rec), 2)

	rec = get(t, r, "/api/projects?featured=true")
	require.Equal(t, http.StatusOK, rec.Code)
	featured := decode[[]models.Project](t, rec)
	require.Len(t, featured, 1)
	assert.Equal(t, "search", featured[0].ID)

	rec = get(t, r, "/api/projects/etl")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ETL", decode[models.Project](t, rec).Title)

	rec = get(t, r, "/api/projects/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", decode[map[string]string](t, rec)["error"])
}

func TestExperience(t *testing.T) {
	rec := get(t, newTestRouter(t, fakeSource{content: testContent()}), "/api/experience")
	require.Equal(t, http.StatusOK, rec.Code)

	views := decode[[]map[string]any](t, rec)
	require.Len(t, views, 1)
	assert.Equal(t, "January 2023 – Present", views[0]["date_range"])
	assert.Equal(t, "2 years 9 months", views[0]["duration"])
	assert.Equal(t, true, views[0]["current"])
}

func TestDuration(t *testing.T) {
	r := newTestRouter(t, fakeSource{content: testContent()})

	tests := []struct {
		name   string
		query  string
		status int
		text   string
	}{
		{"closed range", "start=2021-03-01&end=2023-01-01", http.StatusOK, "1 year 10 months"},
		{"open range uses clock", "start=2024-10-01", http.StatusOK, "1 year"},
		{"month precision", "start=2020-01&end=2020-04", http.StatusOK, "3 months"},
		{"inverted", "start=2023-01-01&end=2021-01-01", http.StatusOK, "0 months"},
		{"missing start", "", http.StatusBadRequest, ""},
		{"bad start", "start=yesterday", http.StatusBadRequest, ""},
		{"bad end", "start=2020-01-01&end=2020-13-45", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, r, "/api/duration?"+tt.query)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			body := decode[map[string]any](t, rec)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.text, body["text"])
				return
			}
			assert.Contains(t, body["error"], "invalid")
		})
	}
}

func TestDuration_Fields(t *testing.T) {
	rec := get(t, newTestRouter(t, fakeSource{content: testContent()}), "/api/duration?start=2020-01-15")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[DurationResponse](t, rec)
	assert.Equal(t, "2020-01-15", body.Start)
	assert.Equal(t, "2025-10-15", body.End)
	assert.Equal(t, 5, body.Years)
	assert.Equal(t, 9, body.Months)
	assert.Equal(t, "5 years 9 months", body.Text)
}

func TestPageJSON(t *testing.T) {
	rec := get(t, newTestRouter(t, fakeSource{content: testContent()}), "/api/page")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Profile struct {
			Name    string `json:"name"`
			Summary string `json:"summary"`
		} `json:"profile"`
		Sources map[string]string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "Sagar Neeli", page.Profile.Name)
	assert.Contains(t, page.Profile.Summary, "<em>reliable</em>")
	assert.Equal(t, "static", page.Sources["profile"])
}

func TestContentJSON(t *testing.T) {
	rec := get(t, newTestRouter(t, fakeSource{content: testContent()}), "/api/content")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sagar Neeli", decode[models.SiteContent](t, rec).Hero.Name)
}

func TestContentFailure(t *testing.T) {
	loadErr := &content.LoadError{Path: "/secret/content.json", Err: fs.ErrNotExist}
	r := newTestRouter(t, fakeSource{err: loadErr})

	for _, target := range []string{"/api/page", "/api/content", "/api/experience", "/api/projects", "/api/v1/portfolio/profile"} {
		rec := get(t, r, target)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, target)
		assert.NotContains(t, rec.Body.String(), "/secret", target)
	}

	rec := get(t, r, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "could not be loaded")
	assert.NotContains(t, rec.Body.String(), "Sagar Neeli")
}

func TestIndex(t *testing.T) {
	rec := get(t, newTestRouter(t, fakeSource{content: testContent()}), "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Sagar Neeli</title>")
	assert.Contains(t, body, "Senior Software Engineer")
	assert.Contains(t, body, "January 2023 – Present (2 years 9 months)")
	assert.Contains(t, body, "2025")
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestStatic(t *testing.T) {
	rec := get(t, newTestRouter(t, fakeSource{content: testContent()}), "/static/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "font-family"))
}

func TestUnknownAPIRoute(t *testing.T) {
	rec := get(t, newTestRouter(t, fakeSource{content: testContent()}), "/api/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decode[map[string]string](t, rec)["error"])
}

// The portfolio endpoints must be consumable by the profile API client.
func TestPortfolioServesProfileClient(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, fakeSource{content: testContent()}))
	t.Cleanup(srv.Close)

	client := profileapi.New(srv.URL)
	ctx := context.Background()

	profile := client.Profile(ctx)
	require.True(t, profile.OK(), "%v", profile.Err)
	assert.Equal(t, "Senior Software Engineer", profile.Value.Title)
	assert.Equal(t, "me@example.com", profile.Value.Contact.Email)

	exp := client.Experience(ctx)
	require.True(t, exp.OK(), "%v", exp.Err)
	require.Len(t, exp.Value, 1)
	assert.Equal(t, "January 2023 – Present", exp.Value[0].Duration)

	projects := client.Projects(ctx)
	require.True(t, projects.OK(), "%v", projects.Err)
	require.Len(t, projects.Value, 1)
	assert.Equal(t, "Search", projects.Value[0].Title)

	skills := client.Skills(ctx)
	require.True(t, skills.OK(), "%v", skills.Err)
	assert.Equal(t, []string{"Go"}, skills.Value["languages"])
}
