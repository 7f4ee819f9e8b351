package main

import (
	"github.com/pkg/profile"
	"github.com/scenekit/scenekit/internal/config"
)

type stopper interface{ Stop() }

type noopStopper struct{}

func (noopStopper) Stop() {}

// startProfile starts the profiler selected by [profile] mode. The returned
// value must be stopped before exit to flush the profile.
func startProfile(cfg config.ProfileConfig) stopper {
	var mode func(*profile.Profile)
	switch cfg.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "allocs":
		mode = profile.MemProfileAllocs
	default:
		return noopStopper{}
	}
	return profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
}
