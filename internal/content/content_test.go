package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSite(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Front-end Web Developer", site.Role)
	assert.Equal(t, DefaultSections, site.Sections)
	require.Len(t, site.Projects, 3)
	assert.Equal(t, "Portfolio Website", site.Projects[0].Title)
	assert.True(t, site.Projects[0].Featured)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", site.VideoURL)
	assert.True(t, site.HasSection(Projects))
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown field", "owner = \"a\"\nbogus = 1\n"},
		{"missing owner", "role = \"x\"\n"},
		{"untitled project", "owner = \"a\"\n[[projects]]\ncategory = \"c\"\n"},
		{"relative video", "owner = \"a\"\nvideo_url = \"watch?v=1\"\n"},
		{"nav to unknown section", "owner = \"a\"\n[[nav]]\nname = \"Blog\"\nsection = \"blog\"\n"},
		{"duplicate section", "owner = \"a\"\nsections = [\"home\", \"home\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeInvalidFieldSentinel(t *testing.T) {
	_, err := Decode([]byte("owner = \" \"\n"))
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.Len(t, site.Projects, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestSortFeaturedFirstStable(t *testing.T) {
	in := []Project{
		{Title: "a"},
		{Title: "b", Featured: true},
		{Title: "c"},
		{Title: "d", Featured: true},
		{Title: "e"},
	}
	out := SortFeaturedFirst(in)

	var titles []string
	for _, p := range out {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, titles)
	assert.Equal(t, "a", in[0].Title, "input must not be reordered")
}

func TestVisibleAndHasMore(t *testing.T) {
	five := make([]Project, 5)
	assert.Len(t, Visible(five, false), 3)
	assert.Len(t, Visible(five, true), 5)
	assert.True(t, HasMore(five))
	assert.False(t, HasMore(five[:3]))
}

func TestShowcaseShortLists(t *testing.T) {
	for n := 0; n <= 4; n++ {
		got := Showcase(make([]Project, n))
		want := n
		if want > ShowcaseSize {
			want = ShowcaseSize
		}
		assert.Len(t, got, want)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.toml")
	require.NoError(t, os.WriteFile(path, []byte("owner = \"first\"\n"), 0o644))

	got := make(chan *Site, 4)
	w, err := NewWatcher(path, func(s *Site) { got <- s })
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("owner = \"second\"\n"), 0o644))

	select {
	case s := <-got:
		assert.Equal(t, "second", s.Owner)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.toml")
	require.NoError(t, os.WriteFile(path, []byte("owner = \"first\"\n"), 0o644))

	got := make(chan *Site, 8)
	w, err := NewWatcher(path, func(s *Site) { got <- s })
	require.NoError(t, err)
	defer w.Close()
	w.Quiet = 300 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for _, owner := range []string{"a", "b", "c", "last"} {
		require.NoError(t, os.WriteFile(path, []byte("owner = \""+owner+"\"\n"), 0o644))
	}

	select {
	case s := <-got:
		assert.Equal(t, "last", s.Owner)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
	select {
	case s := <-got:
		t.Fatalf("unexpected second reload of %q", s.Owner)
	case <-time.After(3 * w.Quiet):
	}
}
