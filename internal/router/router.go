// Package router maps URL-style paths to lazily constructed views and keeps
// a navigation history. Path matching is delegated to a chi mux.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ErrNoRoute is returned for paths with no configured route.
var ErrNoRoute = errors.New("no route")

// Route binds a path to a view. Load runs on every navigation to the path,
// never at registration.
type Route[V any] struct {
	Path string
	Name string
	Load func() V
}

// Router resolves paths to routes. It is not safe for concurrent use; the
// UI drives it from a single goroutine.
type Router[V any] struct {
	mux       *chi.Mux
	routes    []Route[V]
	byPattern map[string]int
	history   []string
}

// New builds a router from routes in registration order.
func New[V any](routes ...Route[V]) (*Router[V], error) {
	r := &Router[V]{
		mux:       chi.NewRouter(),
		byPattern: make(map[string]int, len(routes)),
	}
	names := make(map[string]bool, len(routes))
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	for i, rt := range routes {
		switch {
		case !strings.HasPrefix(rt.Path, "/"):
			return nil, fmt.Errorf("route %q: path must start with /", rt.Path)
		case rt.Name == "":
			return nil, fmt.Errorf("route %q: empty name", rt.Path)
		case rt.Load == nil:
			return nil, fmt.Errorf("route %q: nil loader", rt.Path)
		case names[rt.Name]:
			return nil, fmt.Errorf("route %q: duplicate name %q", rt.Path, rt.Name)
		}
		if _, dup := r.byPattern[rt.Path]; dup {
			return nil, fmt.Errorf("route %q: duplicate path", rt.Path)
		}

		r.mux.Get(rt.Path, noop)
		r.byPattern[rt.Path] = i
		names[rt.Name] = true
		r.routes = append(r.routes, rt)
	}
	return r, nil
}

// Resolve returns the route configured for path. Query strings, fragments
// and a trailing slash are ignored.
func (r *Router[V]) Resolve(path string) (Route[V], error) {
	p := normalize(path)
	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, p) {
		return Route[V]{}, fmt.Errorf("%w: %s", ErrNoRoute, path)
	}
	idx, ok := r.byPattern[rctx.RoutePattern()]
	if !ok {
		return Route[V]{}, fmt.Errorf("%w: %s", ErrNoRoute, path)
	}
	return r.routes[idx], nil
}

// Navigate loads the view for path and pushes it onto the history.
func (r *Router[V]) Navigate(path string) (V, error) {
	rt, err := r.Resolve(path)
	if err != nil {
		var zero V
		return zero, err
	}
	r.history = append(r.history, rt.Path)
	return rt.Load(), nil
}

// Back pops the current entry and reloads the previous view. It reports
// false when there is nothing to go back to.
func (r *Router[V]) Back() (V, bool) {
	var zero V
	if len(r.history) < 2 {
		return zero, false
	}
	r.history = r.history[:len(r.history)-1]
	rt, err := r.Resolve(r.history[len(r.history)-1])
	if err != nil {
		return zero, false
	}
	return rt.Load(), true
}

// Current returns the active path, or "" before the first navigation.
func (r *Router[V]) Current() string {
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}

// CurrentName returns the active route name.
func (r *Router[V]) CurrentName() string {
	if cur := r.Current(); cur != "" {
		if rt, err := r.Resolve(cur); err == nil {
			return rt.Name
		}
	}
	return ""
}

// Depth is the number of history entries.
func (r *Router[V]) Depth() int { return len(r.history) }

// Routes returns the routes in registration order.
func (r *Router[V]) Routes() []Route[V] {
	return append([]Route[V](nil), r.routes...)
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
