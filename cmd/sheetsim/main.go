// Headless program that resolves the configured snap points for a window
// and replays a sequence of snap commands, printing every notification.
package main

import (
	"context"
	"flag"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/sheet/internal/config"
	"github.com/llehouerou/sheet/internal/motion"
	"github.com/llehouerou/sheet/internal/scroll"
	"github.com/llehouerou/sheet/internal/sheet"
)

func main() {
	window := flag.Float64("window", 40, "window height in rows")
	content := flag.Float64("content", 30, "content height in rows")
	steps := flag.String("snap", "2,0,-1", "comma separated snap indices to replay")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	opts, err := cfg.Sheet.Options(nil)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	opts.WindowHeight = *window

	targets, err := parseSteps(*steps)
	if err != nil {
		log.Fatalf("Invalid -snap list: %v", err)
	}

	s, err := sheet.New(opts, scroll.NewCoordinator(nil))
	if err != nil {
		log.Fatalf("Failed to create sheet: %v", err)
	}
	s.SetContentHeight(*content)
	sub := s.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Run(ctx) })
	g.Go(func() error {
		defer cancel()
		return replay(s, sub, targets, opts.Duration)
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("Replay failed: %v", err)
	}
}

func parseSteps(s string) ([]int, error) {
	var out []int
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// replay issues each snap command and logs notifications until the sheet
// has rested for longer than one animation.
func replay(s *sheet.Sheet, sub *motion.Subscription, targets []int, duration time.Duration) error {
	time.Sleep(10 * time.Millisecond)
	g := s.Geometry()
	log.Printf("Geometry: positions=%v sheet_height=%.1f pending=%v", g.Positions, g.SheetHeight, g.Pending)

	quiet := duration + 200*time.Millisecond
	for _, index := range targets {
		log.Printf("SnapTo(%d)", index)
		if err := s.SnapTo(index); err != nil {
			log.Printf("  rejected: %v", err)
			continue
		}

		frames := 0
		timer := time.NewTimer(quiet)
	wait:
		for {
			select {
			case e := <-sub.Animated:
				log.Printf("  onAnimate from=%d to=%d", e.From, e.To)
			case e := <-sub.Changed:
				log.Printf("  onChange index=%d", e.Index)
			case <-sub.Frames:
				frames++
			case <-timer.C:
				break wait
			}
		}
		snap := s.Snapshot()
		log.Printf("  rest: position=%.1f index=%.2f phase=%s frames=%d", snap.Position, snap.Index, snap.Phase, frames)
	}
	return nil
}
