package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls map[string]int
}

func (c *countingLoader) route(path, name string) Route[string] {
	return Route[string]{
		Path: path,
		Name: name,
		Load: func() string {
			c.calls[name]++
			return "view:" + name
		},
	}
}

func newTestRouter(t *testing.T) (*Router[string], *countingLoader) {
	t.Helper()
	c := &countingLoader{calls: make(map[string]int)}
	r, err := New(
		c.route("/", "home"),
		c.route("/create-room", "create-room"),
		c.route("/join-room", "join-room"),
		c.route("/about", "about"),
		c.route("/primevue-test", "primevue-test"),
	)
	require.NoError(t, err)
	return r, c
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r, loader := newTestRouter(t)

	tests := []struct {
		path     string
		expected string
	}{
		{"/create-room", "create-room"},
		{"/join-room", "join-room"},
		{"/", "home"},
		{"/about", "about"},
		{"/primevue-test", "primevue-test"},
		{"", "home"},
		{"/about/", "about"},
		{"about", "about"},
		{"/join-room?roomId=42", "join-room"},
		{"/create-room#top", "create-room"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			rt, err := r.Resolve(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rt.Name)
		})
	}

	assert.Empty(t, loader.calls, "resolving must not load views")
}

func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	for _, p := range []string{"/missing", "/about/team", "/create-room/x"} {
		_, err := r.Resolve(p)
		assert.ErrorIs(t, err, ErrNoRoute, p)
	}
}

func TestNavigate_LoadsLazily(t *testing.T) {
	t.Parallel()

	r, loader := newTestRouter(t)
	assert.Equal(t, "", r.Current())

	v, err := r.Navigate("/create-room")
	require.NoError(t, err)
	assert.Equal(t, "view:create-room", v)
	assert.Equal(t, 1, loader.calls["create-room"])
	assert.Zero(t, loader.calls["home"])
	assert.Equal(t, "/create-room", r.Current())
	assert.Equal(t, "create-room", r.CurrentName())

	_, err = r.Navigate("/nope")
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.Equal(t, "/create-room", r.Current(), "failed navigation keeps history")
}

func TestBack(t *testing.T) {
	t.Parallel()

	r, loader := newTestRouter(t)

	_, ok := r.Back()
	assert.False(t, ok)

	_, err := r.Navigate("/")
	require.NoError(t, err)
	_, err = r.Navigate("/join-room")
	require.NoError(t, err)
	_, err = r.Navigate("/about")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Depth())

	v, ok := r.Back()
	require.True(t, ok)
	assert.Equal(t, "view:join-room", v)
	assert.Equal(t, 2, loader.calls["join-room"], "back reloads the view")

	v, ok = r.Back()
	require.True(t, ok)
	assert.Equal(t, "view:home", v)

	_, ok = r.Back()
	assert.False(t, ok)
	assert.Equal(t, "/", r.Current())
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	load := func() string { return "" }

	tests := []struct {
		name   string
		routes []Route[string]
	}{
		{"relative path", []Route[string]{{Path: "about", Name: "about", Load: load}}},
		{"empty name", []Route[string]{{Path: "/about", Load: load}}},
		{"nil loader", []Route[string]{{Path: "/about", Name: "about"}}},
		{"duplicate name", []Route[string]{
			{Path: "/a", Name: "x", Load: load},
			{Path: "/b", Name: "x", Load: load},
		}},
		{"duplicate path", []Route[string]{
			{Path: "/a", Name: "x", Load: load},
			{Path: "/a", Name: "y", Load: load},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.routes...)
			assert.Error(t, err)
		})
	}
}

func TestRoutes_RegistrationOrder(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)
	var names []string
	for _, rt := range r.Routes() {
		names = append(names, rt.Name)
	}
	assert.Equal(t, []string{"home", "create-room", "join-room", "about", "primevue-test"}, names)
}
