package content

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSON = `{
  "site": {"title": "Sagar Neeli — Engineer", "tagline": "Backend, data and ML systems"},
  "hero": {"name": "Sagar Neeli", "headline": "Senior Software Engineer"},
  "experience": [
    {"company": "Wayfair", "role": "Senior Software Engineer", "start": "2016-02-01", "end": "2021-02-01",
     "highlights": ["Real-time ad serving"], "tech": ["Go", "Kafka"]}
  ],
  "projects": [{"id": "atlas", "title": "Atlas", "description": "Search *fast*", "tech": ["Go"], "featured": true}],
  "skills": {"backend": ["Go", "Python"]},
  "links": {"github": "https://github.com/example"},
  "unknown_section": {"ignored": true}
}`

const validYAML = `
site:
  title: YAML Site
  tagline: From yaml
hero:
  name: Sagar Neeli
  headline: Engineer
experience:
  - company: HubSpot
    role: Senior Software Engineer
    start: "2023-01-01"
    end: "2025-02-01"
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "content.json", validJSON)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Sagar Neeli — Engineer", c.Site.Title)
	assert.Equal(t, "Senior Software Engineer", c.Hero.Headline)
	require.Len(t, c.Experience, 1)
	assert.Equal(t, "2016-02-01", c.Experience[0].Start)
	assert.Equal(t, []string{"Go", "Python"}, c.Skills["backend"])
	assert.True(t, c.Projects[0].Featured)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "content.yaml", validYAML)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "YAML Site", c.Site.Title)
	require.Len(t, c.Experience, 1)
	assert.Equal(t, "HubSpot", c.Experience[0].Company)
}

func TestLoad_Failures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.json")},
		{"malformed json", writeFile(t, dir, "bad.json", `{"site": {"title": `)},
		{"empty", writeFile(t, dir, "empty.json", "  \n")},
		{"malformed yaml", writeFile(t, dir, "bad.yml", "site: [unclosed")},
		{"unsupported", writeFile(t, dir, "content.toml", `title = "x"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(tt.path)
			assert.Nil(t, c)

			var lerr *LoadError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, tt.path, lerr.Path)
			assert.Error(t, lerr.Unwrap())
		})
	}

	_, err := Load(filepath.Join(dir, "nope.json"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = Load(filepath.Join(dir, "content.toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	app := filepath.Join(root, "frontend")
	require.NoError(t, os.MkdirAll(app, 0o755))

	// Only the parent directory has the document.
	want := writeFile(t, root, "content/content.json", validJSON)

	got, tried, err := Resolve(app, "content/content.json")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, tried, 2)

	// A document at root/path wins over the parent one.
	local := writeFile(t, app, "content/content.json", validJSON)
	got, _, err = Resolve(app, "content/content.json")
	require.NoError(t, err)
	assert.Equal(t, local, got)

	// Absolute paths are not rewritten.
	got, tried, err = Resolve("/elsewhere", want)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{want}, tried)

	_, _, err = Resolve(app, "missing.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// Directories do not count as documents.
	_, _, err = Resolve(root, "frontend")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestProvider_Content(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "content/content.json", validJSON)

	p := NewProvider(root, "content/content.json")
	c, err := p.Content()
	require.NoError(t, err)
	assert.Equal(t, "Sagar Neeli — Engineer", c.Site.Title)
}

func TestProvider_MissingFile(t *testing.T) {
	p := NewProvider(t.TempDir(), "content/content.json", WithCache(true))

	c, err := p.Content()
	assert.Nil(t, c)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "content/content.json", lerr.Path)
	assert.Len(t, lerr.Tried, 2)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "tried")
}

func TestProvider_NoCacheRereads(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "content.json", validJSON)

	p := NewProvider(root, "content.json", WithCache(false))
	_, err := p.Content()
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	_, err = p.Content()
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestProvider_CacheKeepsFirstSuccess(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "content.json", validJSON)

	p := NewProvider(root, "content.json", WithCache(true))
	first, err := p.Content()
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	second, err := p.Content()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestProvider_CacheDoesNotKeepFailures(t *testing.T) {
	root := t.TempDir()
	p := NewProvider(root, "content.json", WithCache(true))

	_, err := p.Content()
	require.Error(t, err)

	writeFile(t, root, "content.json", validJSON)
	c, err := p.Content()
	require.NoError(t, err)
	assert.Equal(t, "Sagar Neeli", c.Hero.Name)
}

func TestProvider_ConcurrentCallers(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "content.json", validJSON)

	for _, cache := range []bool{true, false} {
		p := NewProvider(root, "content.json", WithCache(cache))

		var wg sync.WaitGroup
		errs := make(chan error, 16)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := p.Content(); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			t.Errorf("cache=%v: %v", cache, err)
		}
	}
}
