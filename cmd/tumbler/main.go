package main

import (
	"flag"
	"log"

	"tumbler/internal/graphics"
	"tumbler/internal/logger"
	"tumbler/internal/prefs"
	"tumbler/internal/render"
	"tumbler/internal/sim"
)

func main() {
	configPath := flag.String("config", "config/sim.yaml", "YAML simulation config (missing file uses defaults)")
	seed := flag.Int64("seed", 0, "RNG seed override (0 keeps the config value)")
	flag.Parse()

	cfg, err := sim.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	runLog := logger.New()
	runLog.Logf("start: %d bodies, %d-gon, sub-steps %d, seed %d",
		cfg.BodyCount, cfg.Sides, cfg.SubSteps, cfg.Seed)

	p, _ := prefs.Load()
	r := render.New(s, p)

	graphics.Run(
		int32(cfg.WindowWidth), int32(cfg.WindowHeight),
		cfg.WindowTitle, int32(cfg.TargetFPS), p.VSync,
		s.Step, r.Draw,
	)

	runLog.Logf("stop: %d frames", s.Frame())
}
