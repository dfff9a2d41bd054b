package main

import (
	"context"
	"fmt"
	"image/gif"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/routeviz/internal/config"
	"github.com/san-kum/routeviz/internal/export"
	"github.com/san-kum/routeviz/internal/gui"
	"github.com/san-kum/routeviz/internal/route"
	"github.com/san-kum/routeviz/internal/scene"
	"github.com/san-kum/routeviz/internal/surface"
	"github.com/san-kum/routeviz/internal/viz"
)

var (
	// Persistent
	configFile string
	preset     string
	seed       int64
	theme      string
	// Output
	outPath string
	width   int
	height  int
	legend  bool
	// Backdrop
	ticks int
	chart bool
	// Render
	stopIndex int
	warmup    int
	// Animate
	framesPerStop int
	maxFrames     int
	delay         int
	// Hosts
	frameRate int
	logFile   string
	// Link
	qrPNG  string
	qrSize int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "routeviz",
		Short:        "delivery route visualization and playback",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "density preset ("+strings.Join(config.ListPresets(), ", ")+")")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(scene.ThemeNames(), ", ")+")")

	backdropCmd := &cobra.Command{
		Use:   "backdrop",
		Short: "render the particle backdrop",
		Args:  cobra.NoArgs,
		RunE:  runBackdrop,
	}
	addOutputFlags(backdropCmd, "backdrop.png")
	backdropCmd.Flags().IntVar(&ticks, "ticks", 120, "frames to simulate (one gif frame each)")
	backdropCmd.Flags().BoolVar(&chart, "chart", false, "print an edge-count chart")

	renderCmd := &cobra.Command{
		Use:   "render [route-file]",
		Short: "render one frame of a route",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	addOutputFlags(renderCmd, "route.png")
	renderCmd.Flags().IntVar(&stopIndex, "stop", 0, "current stop (0-based)")
	renderCmd.Flags().IntVar(&warmup, "warmup", 60, "backdrop frames before the capture")

	animateCmd := &cobra.Command{
		Use:   "animate [route-file]",
		Short: "record a full play-through as a gif",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnimate,
	}
	addOutputFlags(animateCmd, "route.gif")
	animateCmd.Flags().IntVar(&framesPerStop, "frames-per-stop", 30, "frames between playback ticks")
	animateCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "cap on frames (0 = none)")
	animateCmd.Flags().IntVar(&delay, "delay", export.DefaultDelay, "frame delay in 1/100 s")

	liveCmd := &cobra.Command{
		Use:   "live [route-file]",
		Short: "interactive terminal playback",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate (default from config)")
	liveCmd.Flags().StringVar(&logFile, "log", "", "write logs to this file")

	windowCmd := &cobra.Command{
		Use:   "window [route-file]",
		Short: "interactive window playback",
		Args:  cobra.ExactArgs(1),
		RunE:  runWindow,
	}
	windowCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate (default from config)")

	linkCmd := &cobra.Command{
		Use:   "link [route-file]",
		Short: "print the directions link and its QR code",
		Args:  cobra.ExactArgs(1),
		RunE:  runLink,
	}
	linkCmd.Flags().StringVar(&qrPNG, "png", "", "also write the QR code as a png")
	linkCmd.Flags().IntVar(&qrSize, "size", 256, "QR png size in pixels")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			fmt.Println("themes:")
			for _, t := range scene.ThemeNames() {
				fmt.Printf("  %s\n", t)
			}
		},
	}

	rootCmd.AddCommand(backdropCmd, renderCmd, animateCmd, liveCmd, windowCmd, linkCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addOutputFlags(cmd *cobra.Command, def string) {
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (.png, .svg or .gif; default "+def+")")
	cmd.Flags().IntVar(&width, "width", 0, "output width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "output height (default from config)")
	cmd.Flags().BoolVar(&legend, "legend", true, "draw the marker legend")
}

// loadConfig layers defaults, file, preset, .env and environment, then
// flags.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		if err := config.ApplyPreset(cfg, preset); err != nil {
			return nil, err
		}
	}
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if width > 0 {
		cfg.Viewport.Width = width
	}
	if height > 0 {
		cfg.Viewport.Height = height
	}
	return cfg, cfg.Validate()
}

func newScene(routeFile string) (*scene.Scene, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	sc := scene.New(cfg)
	if routeFile == "" {
		return sc, cfg, nil
	}
	r, err := route.Load(routeFile)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("loaded %d stops for %s", r.Len(), r.Vehicle)
	sc.SetRoute(r)
	return sc, cfg, nil
}

// output resolves --out, which is shared by several commands.
func output(def string) string {
	if outPath != "" {
		return outPath
	}
	return def
}

func outputOptions(cfg *config.Config) export.Options {
	return export.Options{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height, Legend: legend}
}

func runBackdrop(cmd *cobra.Command, args []string) error {
	sc, cfg, err := newScene("")
	if err != nil {
		return err
	}
	opts := export.AnimateOptions{Options: outputOptions(cfg), Delay: delay}
	out := output("backdrop.png")

	var edges []float64
	if strings.ToLower(filepath.Ext(out)) == ".gif" {
		anim := export.Backdrop(sc, ticks, opts)
		if err := writeGIF(out, anim); err != nil {
			return err
		}
	} else {
		rec := surface.NewRecorder(cfg.Viewport.Width, cfg.Viewport.Height)
		for i := 0; i < ticks; i++ {
			sc.Step()
			if chart {
				edges = append(edges, float64(sc.Draw(rec).Edges))
			}
		}
		if err := writeFrame(out, sc, opts.Options); err != nil {
			return err
		}
	}
	fmt.Printf("wrote %s (%d particles, %d frames)\n", out, len(sc.Particles()), sc.Frames())

	if chart && len(edges) > 1 {
		fmt.Println(asciigraph.Plot(edges, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("edges per frame")))
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	sc, cfg, err := newScene(args[0])
	if err != nil {
		return err
	}
	export.Preview(sc, sc.Route(), stopIndex, warmup)
	out := output("route.png")
	if err := writeFrame(out, sc, outputOptions(cfg)); err != nil {
		return err
	}
	fmt.Printf("wrote %s (stop %d of %d)\n", out, sc.Playback().Status().Index+1, sc.Route().Len())
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	sc, cfg, err := newScene(args[0])
	if err != nil {
		return err
	}
	anim, err := export.Animate(sc, export.AnimateOptions{
		Options:       outputOptions(cfg),
		FramesPerStop: framesPerStop,
		Delay:         delay,
		MaxFrames:     maxFrames,
	})
	if err != nil {
		return fmt.Errorf("animate %s: %w", args[0], err)
	}
	out := output("route.gif")
	if err := writeGIF(out, anim); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", out, len(anim.Image))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sc, cfg, err := newScene(args[0])
	if err != nil {
		return err
	}
	fps := frameRate
	if fps <= 0 {
		fps = cfg.FrameRate
	}
	return viz.Run(sc, fps, logFile)
}

func runWindow(cmd *cobra.Command, args []string) error {
	sc, cfg, err := newScene(args[0])
	if err != nil {
		return err
	}
	fps := frameRate
	if fps <= 0 {
		fps = cfg.FrameRate
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	gui.NewApp(ctx, sc, fps).Run()
	return nil
}

func runLink(cmd *cobra.Command, args []string) error {
	r, err := route.Load(args[0])
	if err != nil {
		return err
	}
	if r.Len() == 0 {
		return fmt.Errorf("%s: %w", args[0], route.ErrNoStops)
	}
	url := route.DirectionsURL(r.Stops)
	fmt.Println(url)

	qr, err := route.QRCode(url)
	if err != nil {
		return fmt.Errorf("qr code: %w", err)
	}
	fmt.Print(qr)

	if qrPNG != "" {
		data, err := route.QRCodePNG(url, qrSize)
		if err != nil {
			return fmt.Errorf("qr code: %w", err)
		}
		if err := os.WriteFile(qrPNG, data, 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", qrPNG)
	}
	return nil
}

func writeFrame(path string, sc *scene.Scene, opts export.Options) error {
	write := export.PNG
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		write = export.SVG
	case ".png", "":
	default:
		return fmt.Errorf("unsupported output format: %s", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f, sc, opts); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeGIF(path string, anim *gif.GIF) error {
	if len(anim.Image) == 0 {
		return export.ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
