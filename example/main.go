// Command tabledemo shows a resizable table in a GLFW window.
//
//	go run ./example/ --rows 200 --verbose
//	go run ./example/ --config demo.yaml
//
// The checkboxes above the table toggle column resizing, the footer, the
// minimum width and the dark theme. Drag a header or footer divider to
// resize a column; scroll the body and the header and footer follow.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	gui "github.com/go-theft-auto/tablegui"
	"github.com/go-theft-auto/tablegui/backend/opengl"
	"github.com/go-theft-auto/tablegui/example/demo"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const windowMargin = 20

type rootFlags struct {
	config  string
	rows    int
	dark    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tabledemo",
		Short:         "Resizable table demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return run(cfg, flags.verbose)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "YAML config file")
	cmd.Flags().IntVar(&flags.rows, "rows", 50, "number of generated rows")
	cmd.Flags().BoolVar(&flags.dark, "dark", false, "start with the dark theme")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// loadConfig reads the config file, if any, then applies explicit flags.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (demo.Config, error) {
	cfg := demo.DefaultConfig()
	if flags.config != "" {
		var err error
		if cfg, err = demo.LoadConfigFile(flags.config); err != nil {
			return demo.Config{}, err
		}
	}
	if cmd.Flags().Changed("rows") {
		cfg.Rows = flags.rows
	}
	if cmd.Flags().Changed("dark") {
		cfg.DarkTheme = flags.dark
	}
	if err := cfg.Validate(); err != nil {
		return demo.Config{}, err
	}
	return cfg, nil
}

func run(cfg demo.Config, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gui.SetLogger(logger.With("component", "gui"))
	gui.SetVerbose(verbose)

	var tables gui.TableCatalog
	if cfg.ThemeFile != "" {
		f, err := os.Open(cfg.ThemeFile)
		if err != nil {
			return fmt.Errorf("open theme: %w", err)
		}
		theme, err := gui.LoadTableTheme(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.ThemeFile, err)
		}
		tables = theme
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	defer input.Destroy()

	app := demo.NewApp(cfg, logger)
	styleFor := func() gui.Style {
		s := app.Style()
		if tables != nil {
			s.Tables = tables
		}
		return s
	}
	ui := gui.New(renderer, gui.WithStyle(styleFor()))
	dark := app.DarkTheme

	logger.Info("table demo started", "rows", len(app.Rows), "columns", len(app.Columns))

	last := glfw.GetTime()
	for !window.ShouldClose() {
		in := input.BeginFrame()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		r, g, b, _ := gui.UnpackRGBA(ui.Style().PanelColor)
		gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(in, gui.Vec2{X: float32(w), Y: float32(h)}, dt)
		ctx.SetCursorPos(windowMargin, windowMargin)
		ctx.VStack(gui.Width(float32(w)-2*windowMargin), gui.Height(float32(h)-2*windowMargin))(func() {
			app.View(ctx)
		})
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		input.ApplyCursor(ui.MouseCursor())

		if app.DarkTheme != dark {
			dark = app.DarkTheme
			ui.SetStyle(styleFor())
		}

		window.SwapBuffers()
	}

	return nil
}
