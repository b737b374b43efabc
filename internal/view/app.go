package view

import (
	"context"
	"fmt"
	"strings"
)

// AppState owns the currently open calculator. It is passed explicitly to
// every lifecycle transition.
type AppState struct {
	Current Kind
	IsOpen  bool

	active Calculator
	deps   Deps
}

// NewAppState starts on the home screen.
func NewAppState(deps Deps) *AppState {
	return &AppState{deps: deps.withDefaults()}
}

// Active returns the open calculator, or nil on the home screen.
func (a *AppState) Active() Calculator { return a.active }

// Hash returns the route of the current screen.
func (a *AppState) Hash() string {
	if !a.IsOpen {
		return "#/"
	}
	return "#/" + a.Current.Slug()
}

// Open unmounts the open calculator, if any, then mounts kind.
func (a *AppState) Open(ctx context.Context, kind Kind) (Calculator, error) {
	a.unmountActive()
	c := NewCalculator(kind, a.deps)
	if err := c.Mount(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", kind.Slug(), err)
	}
	a.active = c
	a.Current = kind
	a.IsOpen = true
	return c, nil
}

// BackHome unmounts the open calculator and returns to the menu.
func (a *AppState) BackHome() {
	a.unmountActive()
	a.Current = KindPlaceholder
	a.IsOpen = false
}

// Route follows a location hash such as "#/juros-compostos". An empty
// route goes home.
func (a *AppState) Route(ctx context.Context, hash string) (Calculator, error) {
	slug := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(hash), "#"), "/")
	if slug == "" {
		a.BackHome()
		return nil, nil
	}
	return a.Open(ctx, ParseKind(slug))
}

func (a *AppState) unmountActive() {
	if a.active != nil {
		a.active.Unmount(a)
		a.active = nil
	}
}
