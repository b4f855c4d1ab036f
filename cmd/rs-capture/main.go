// rs-capture streams depth and color from the first attached device and
// writes the color frames to disk as PNG files, one session directory per
// run.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/teslashibe/go-realsense/internal/log"
	"github.com/teslashibe/go-realsense/pkg/kind"
	"github.com/teslashibe/go-realsense/pkg/realsense"
)

func main() {
	outDir := flag.String("out", "captures", "Directory for captured frames")
	count := flag.Int("count", 30, "Number of composites to capture (0 = until interrupted)")
	width := flag.Int("width", 640, "Requested stream width")
	height := flag.Int("height", 480, "Requested stream height")
	fps := flag.Int("fps", 30, "Requested framerate")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log.Init(*logLevel)

	if err := run(*outDir, *count, *width, *height, *fps); err != nil {
		log.Error("capture failed", "err", err)
		os.Exit(1)
	}
}

func run(outDir string, count, width, height, fps int) error {
	session := uuid.NewString()[:8]
	dir := filepath.Join(outDir, session)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	ctx, err := realsense.NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	cfg, err := realsense.NewConfig()
	if err != nil {
		return err
	}
	defer cfg.Close()
	if err := cfg.EnableStream(kind.StreamDepth, -1, width, height, kind.FormatZ16, fps); err != nil {
		return err
	}
	if err := cfg.EnableStream(kind.StreamColor, -1, width, height, kind.FormatBgr8, fps); err != nil {
		return err
	}

	pipe, err := realsense.NewPipeline(ctx)
	if err != nil {
		return err
	}
	if !pipe.CanResolve(cfg) {
		pipe.Close()
		return fmt.Errorf("no attached device offers %dx%d depth+color at %d fps", width, height, fps)
	}
	active, err := pipe.Start(cfg)
	if err != nil {
		pipe.Close()
		return err
	}
	defer func() { active.Stop().Close() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serial, _ := active.Profile().Device().Serial()
	fmt.Printf("📷 Capturing from %s into %s (Ctrl+C to stop)\n", serial, dir)

	captured := 0
	for count == 0 || captured < count {
		select {
		case <-stop:
			fmt.Println("\n👋 Interrupted")
			return nil
		default:
		}

		comp, err := active.Wait(5 * time.Second)
		if errors.Is(err, realsense.ErrTimeout) {
			log.Warn("no frames within timeout")
			continue
		}
		if err != nil {
			return err
		}
		if err := saveComposite(comp, dir, captured); err != nil {
			comp.Close()
			return err
		}
		comp.Close()
		captured++
	}

	fmt.Printf("✅ Captured %d composites\n", captured)
	return nil
}

func saveComposite(comp *realsense.CompositeFrame, dir string, seq int) error {
	for _, f := range comp.ColorFrames() {
		mat, err := f.Mat()
		if err != nil {
			f.Close()
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("color-%04d.png", seq))
		if ok := gocv.IMWrite(path, mat); !ok {
			mat.Close()
			f.Close()
			return fmt.Errorf("writing %s", path)
		}
		mat.Close()
		f.Close()
	}

	for _, f := range comp.DepthFrames() {
		d, err := f.Distance(f.Width()/2, f.Height()/2)
		if err == nil {
			log.Debug("center distance", "seq", seq, "meters", d)
		}
		f.Close()
	}
	return nil
}
