package sim

// ControlSettings are the knobs a spectator can turn.
type ControlSettings struct {
	OptimizePath bool
	Paused       bool
	Speed        int
}

// Controls returns the current knob positions.
func (s *Simulation) Controls() ControlSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ControlSettings{OptimizePath: s.optimize, Paused: s.paused, Speed: s.speed}
}

// ApplyControlSettings sets every knob at once and returns the effective
// settings after clamping.
func (s *Simulation) ApplyControlSettings(settings ControlSettings) ControlSettings {
	s.SetOptimizationMode(settings.OptimizePath)
	s.SetPaused(settings.Paused)
	s.SetSpeed(settings.Speed)

	applied := s.Controls()
	s.logger.Info("controls applied",
		"optimize_path", applied.OptimizePath,
		"paused", applied.Paused,
		"speed", applied.Speed,
	)
	return applied
}
