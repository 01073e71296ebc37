package main

import (
	"flag"
	"fmt"
	"log"
	"openglhelper"
	"runtime"

	"github.com/leterax/go-spincube/pkg/config"
	"github.com/leterax/go-spincube/pkg/gldevice"
	"github.com/leterax/go-spincube/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("spincube: ")

	// Parse command line flags
	configPath := flag.String("config", "", "YAML config file (empty for built-in defaults)")
	vsync := flag.String("vsync", "", "Override vsync (on/off)")
	rotation := flag.String("rotation", "", "Override rotation mode (y, ypr)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *vsync, *rotation)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Println("Starting Spinning Cube...")

	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(path, vsync, rotation string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if err := cfg.Override(vsync, rotation); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// run owns every GL resource. Deferred calls release them in reverse order of
// creation: renderer buffers and device first, then the window and GLFW.
func run(cfg config.Config) error {
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Close()

	device, err := gldevice.New(window)
	if err != nil {
		return fmt.Errorf("failed to create graphics device: %w", err)
	}

	// The renderer owns the device from here on, even if it fails to start
	renderer, err := render.NewRenderer(device, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer renderer.Close()

	renderer.Run(window)

	return nil
}
