package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/headracer/pkg/debug"
	"github.com/golangdaddy/headracer/pkg/detection"
	"github.com/golangdaddy/headracer/pkg/detection/cascade"
	"github.com/golangdaddy/headracer/pkg/game"
	"github.com/golangdaddy/headracer/pkg/motion"
	"github.com/golangdaddy/headracer/pkg/session"
	"github.com/golangdaddy/headracer/pkg/world"
)

type options struct {
	camera  int
	cascade string
	seed    int64
	tps     int
	debug   bool
}

func main() {
	defaults := cascade.DefaultConfig()
	opts := options{}
	flag.IntVar(&opts.camera, "camera", defaults.DeviceID, "webcam device index")
	flag.StringVar(&opts.cascade, "cascade", defaults.CascadePath, "path to the Haar cascade XML for frontal faces")
	flag.Int64Var(&opts.seed, "seed", 0, "course seed (0 picks one from the clock)")
	flag.IntVar(&opts.tps, "tps", 60, "game ticks per second")
	flag.BoolVar(&opts.debug, "debug", false, "verbose per-frame logging")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "headracer: %v\n", err)
		fmt.Fprintln(os.Stderr, "Check that a webcam is connected and OpenCV is installed.")
		os.Exit(1)
	}
}

func run(opts options) (err error) {
	debug.Enabled = opts.debug

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var detector detection.Detector
	cfg := cascade.DefaultConfig()
	cfg.DeviceID = opts.camera
	cfg.CascadePath = opts.cascade
	if cd, openErr := cascade.Open(cfg); openErr != nil {
		log.Printf("Warning: head tracking unavailable, playing without it: %v", openErr)
		detector = detection.Null{}
	} else {
		detector = cd
	}

	defer func() {
		if closeErr := detector.Close(); closeErr != nil {
			log.Printf("Failed to release camera: %v", closeErr)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game crashed: %v", r)
		}
	}()

	wcfg := world.DefaultConfig()
	w := world.New(wcfg, rand.New(rand.NewSource(seed)))
	s := session.New(detector, motion.NewExtractor(motion.DefaultConfig()), w)
	g := game.NewGame(s, wcfg.Layout, seed)

	log.Printf("Starting Head-Controlled Racing (seed %d)", seed)
	ebiten.SetWindowSize(int(wcfg.Layout.ScreenWidth), int(wcfg.Layout.ScreenHeight))
	ebiten.SetWindowTitle("Head-Controlled Car Racing")
	ebiten.SetTPS(opts.tps)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
