package snapmark

import "log/slog"

// Option configures a Session during creation.
//
// Example:
//
//	// Default session: no tool selected, red, 5px
//	s := snapmark.NewSession(pm)
//
//	// Start with a thick blue freehand brush in a 800x450 widget
//	s := snapmark.NewSession(pm,
//	    snapmark.WithTool(snapmark.SelectShape(snapmark.Freehand),
//	        snapmark.SetColor(pixmap.Blue), snapmark.SetThickness(9)),
//	    snapmark.WithViewport(800, 450))
type Option func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	tool              ToolState
	eraserMargin      int
	highlightAlpha    uint8
	toolScopedHistory bool
	logger            *slog.Logger
	viewport          Viewport
}

// DefaultHighlightAlpha is the alpha given to the selected area while a
// crop is being previewed.
const DefaultHighlightAlpha = 150

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		tool:           DefaultToolState(),
		eraserMargin:   DefaultEraserMargin,
		highlightAlpha: DefaultHighlightAlpha,
	}
}

// WithTool applies tool commands to the initial tool state.
func WithTool(cmds ...ToolCommand) Option {
	return func(o *sessionOptions) {
		o.tool.Apply(cmds...)
	}
}

// WithEraserMargin sets how many pixels wider than the tool thickness the
// eraser is.
func WithEraserMargin(margin int) Option {
	return func(o *sessionOptions) {
		o.eraserMargin = max(margin, 0)
	}
}

// WithHighlightAlpha sets the alpha of the selected area during crop
// preview.
func WithHighlightAlpha(alpha uint8) Option {
	return func(o *sessionOptions) {
		o.highlightAlpha = alpha
	}
}

// WithToolScopedHistory makes every shape change forget the erase history,
// so the eraser only undoes edits made with the current tool selection.
// By default history lives until the image is replaced or cropped.
func WithToolScopedHistory() Option {
	return func(o *sessionOptions) {
		o.toolScopedHistory = true
	}
}

// WithLogger sets the session logger. If not given, the package logger
// from [Logger] is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *sessionOptions) {
		o.logger = l
	}
}

// WithViewport sets the initial widget size; see [Session.SetViewport].
func WithViewport(width, height float64) Option {
	return func(o *sessionOptions) {
		o.viewport = Viewport{Width: width, Height: height}
	}
}
