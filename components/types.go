// Package components defines the Color token, palette handling, the
// Coloring result, options, and sentinel errors.
package components

import (
	"errors"

	"github.com/katalvlaran/graphpad/core"
)

// Sentinel errors for component labeling.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Colorize.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrEmptyPalette is returned when WithPalette receives no colors.
	ErrEmptyPalette = errors.New("components: palette must not be empty")
)

// Color is an opaque token handed to the rendering layer; the default
// palette uses CSS hex notation, but any non-empty strings work.
type Color string

// DefaultPalette holds eight visually distinct tokens. Components
// beyond the eighth reuse colors (discovery order modulo size).
var DefaultPalette = []Color{
	"#e6194b", // red
	"#3cb44b", // green
	"#4363d8", // blue
	"#f58231", // orange
	"#911eb4", // purple
	"#42d4f4", // cyan
	"#f032e6", // magenta
	"#9a6324", // brown
}

// Coloring is one immutable labeling snapshot: replaced wholesale on
// every recomputation, never mutated in place.
type Coloring struct {
	// Colors maps each vertex to its component's token.
	Colors map[core.VertexID]Color

	// Components is the number of connected components found.
	Components int
}

// ColorOf returns the token for id and whether id was labeled.
func (c *Coloring) ColorOf(id core.VertexID) (Color, bool) {
	col, ok := c.Colors[id]

	return col, ok
}

// SameComponent reports whether u and v were labeled with the same
// token. Palette reuse can alias two distant components; callers that
// need exact component identity should compare against Components.
func (c *Coloring) SameComponent(u, v core.VertexID) bool {
	cu, okU := c.Colors[u]
	cv, okV := c.Colors[v]

	return okU && okV && cu == cv
}

// DistinctColors returns the number of distinct tokens in use;
// 0 for an empty labeling.
func (c *Coloring) DistinctColors() int {
	seen := make(map[Color]struct{}, len(c.Colors))
	var col Color
	for _, col = range c.Colors {
		seen[col] = struct{}{}
	}

	return len(seen)
}

// Option configures optional behavior of Colorize.
type Option func(*colorOptions)

type colorOptions struct {
	palette []Color
	err     error // first option violation, surfaced by Colorize
}

func defaultOptions() colorOptions {
	return colorOptions{palette: DefaultPalette}
}

// WithPalette returns an Option replacing the default palette.
// An empty palette makes Colorize fail with ErrEmptyPalette.
func WithPalette(p []Color) Option {
	return func(o *colorOptions) {
		if len(p) == 0 {
			o.err = ErrEmptyPalette

			return
		}
		o.palette = p
	}
}
