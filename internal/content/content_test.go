package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "PPM Consultants", s.Company.Name)
	require.Len(t, s.Hero, 4)
	assert.Equal(t, "/images/hero-bg.jpg", s.Hero[0].Media)
	assert.Equal(t, "Professional Partners for Project Delivery", s.Hero[0].Title)
	assert.Len(t, s.FeaturedServices, 4)
	assert.Len(t, s.Services, 4)
	assert.Len(t, s.Team, 4)
	assert.Len(t, s.Testimonials.Home, 4)
	assert.Len(t, s.Testimonials.Clients, 6)
	assert.Len(t, s.Clients, 8)
	assert.Equal(t, "12+", s.About.Stats[0].Value)
	assert.Contains(t, s.StoryHTML, "<strong>2008</strong>")
	assert.Equal(t, 3, strings.Count(s.StoryHTML, "<p>"))
}

func TestHeroSlidesIsCopy(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	slides := s.HeroSlides()
	slides[0].Title = "changed"
	assert.NotEqual(t, "changed", s.Hero[0].Title)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"no hero":       "company: {name: X}\n",
		"no media":      "company: {name: X}\nhero:\n  - title: T\n",
		"unknown field": "company: {name: X}\nhero:\n  - media: a.jpg\nbogus: 1\n",
		"duplicate id":  "company: {name: X}\nhero:\n  - media: a.jpg\nservices:\n  - id: a\n  - id: a\n",
		"not yaml":      "company: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseMinimal(t *testing.T) {
	s, err := Parse([]byte("company: {name: X}\nhero:\n  - media: a.jpg\n"))
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", s.Hero[0].Media)
	assert.Empty(t, s.Hero[0].Title)
}

const minimal = "company: {name: %s}\nhero:\n  - media: a.jpg\n"

func writeContent(t *testing.T, path, name string) {
	t.Helper()
	doc := strings.Replace(minimal, "%s", name, 1)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

func TestStoreReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeContent(t, path, "First")

	st, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "First", st.Site().Company.Name)

	require.NoError(t, os.WriteFile(path, []byte("company: ["), 0o644))
	assert.Error(t, st.Reload())
	assert.Equal(t, "First", st.Site().Company.Name)

	writeContent(t, path, "Second")
	require.NoError(t, st.Reload())
	assert.Equal(t, "Second", st.Site().Company.Name)
}

func TestNewStoreMissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWatchBuiltinReturns(t *testing.T) {
	st, err := NewStore("")
	require.NoError(t, err)
	assert.NoError(t, st.Watch(context.Background(), zaptest.NewLogger(t)))
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeContent(t, path, "First")

	st, err := NewStore(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- st.Watch(ctx, zaptest.NewLogger(t)) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// The watcher registers asynchronously; keep rewriting until it sees a change.
	require.Eventually(t, func() bool {
		writeContent(t, path, "Second")
		return st.Site().Company.Name == "Second"
	}, 5*time.Second, 4*reloadDebounce)

	require.NoError(t, os.WriteFile(path, []byte("company: ["), 0o644))
	time.Sleep(2 * reloadDebounce)
	assert.Equal(t, "Second", st.Site().Company.Name)
}
