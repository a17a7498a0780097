//go:build linux

// Command emberdemo opens an X11 window and runs a progress bar through its
// paces: theme defaults, optional image-tiled fill, and timer-driven
// auto-increment.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/go-ember/ember/cmd/emberdemo/internal/config"
	"github.com/go-ember/ember/pkg/display/x11"
	"github.com/go-ember/ember/pkg/graphics"
	"github.com/go-ember/ember/pkg/theme"
	"github.com/go-ember/ember/pkg/widgets"
	"github.com/go-ember/ember/pkg/wm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "emberdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root, err := config.FindProjectRoot()
	if err != nil {
		root = "."
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	theme.SetFont(graphics.DefaultFont())
	if cfg.Theme != "" {
		if err := theme.Load(cfg.Theme); err != nil {
			return err
		}
	}

	drv, err := x11.Open(cfg.Width, cfg.Height, cfg.AppName)
	if err != nil {
		return err
	}
	defer drv.Close()

	d, err := wm.NewDisplay(drv)
	if err != nil {
		return err
	}

	pb, err := widgets.NewProgressBar(d, nil, wm.Init{
		X:      20,
		Y:      (cfg.Height - 24) / 2,
		Width:  cfg.Width - 40,
		Height: 24,
		Text:   "loading",
		Show:   true,
	})
	if err != nil {
		return err
	}

	if cfg.FillImage != "" {
		img, err := graphics.OpenImage(cfg.FillImage)
		if err != nil {
			return err
		}
		pb.SetCustomDraw(widgets.DrawImage, img)
	}

	pb.Start(cfg.Delay)
	defer pb.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame := time.NewTicker(16 * time.Millisecond)
	defer frame.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-frame.C:
			if err := d.Tick(); err != nil {
				return err
			}
			if _, max := pb.Range(); pb.Position() >= max {
				pb.Stop()
				pb.SetText("done")
				d.RequestRedraw(pb)
				if err := d.Tick(); err != nil {
					return err
				}
				// Leave the finished bar on screen briefly.
				time.Sleep(time.Second)
				return nil
			}
		}
	}
}
