package gui

// Option configures a UI widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = gui.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ctx.MyWidget("id", gui.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := gui.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Core Options ---
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
)

// --- Scrollable Options ---
var (
	OptScrollbar        = NewOptKey("scrollbar", DefaultScrollbar())
	OptHorizontalScroll = NewOptKey("horizontalScroll", false)
	OptUserScroll       = NewOptKey("userScroll", true)
	OptOnScroll         = NewOptKey[func(AbsoluteOffset)]("onScroll", nil)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithScrollbar sets the scrollbar appearance of a Scrollable.
// HiddenScrollbar() removes the scrollbars without disabling scrolling.
func WithScrollbar(a ScrollbarAppearance) Option { return WithOpt(OptScrollbar, a) }

// EnableHorizontal enables horizontal scrolling.
func EnableHorizontal() Option { return WithOpt(OptHorizontalScroll, true) }

// WithUserScroll controls whether wheel, keys and scrollbar drags move the
// region. With false, only ScrollTo commands do.
func WithUserScroll(enabled bool) Option { return WithOpt(OptUserScroll, enabled) }

// OnScroll registers a callback invoked once per frame in which the
// region's offset changed, whatever changed it.
func OnScroll(fn func(AbsoluteOffset)) Option { return WithOpt(OptOnScroll, fn) }
