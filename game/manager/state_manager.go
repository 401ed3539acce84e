package manager

import (
	"snake-classic/game/types"
)

// PhaseManager owns the Playing/Paused/GameOver machine. GameOver only
// leaves through Reset.
type PhaseManager struct {
	phase types.Phase
}

func NewPhaseManager() *PhaseManager {
	return &PhaseManager{phase: types.Paused}
}

func (pm *PhaseManager) Phase() types.Phase {
	return pm.phase
}

func (pm *PhaseManager) IsPlaying() bool {
	return pm.phase == types.Playing
}

// TogglePause flips Playing and Paused and reports whether the phase changed.
func (pm *PhaseManager) TogglePause() bool {
	switch pm.phase {
	case types.Playing:
		pm.phase = types.Paused
	case types.Paused:
		pm.phase = types.Playing
	default:
		return false
	}
	return true
}

// End moves a running game to GameOver.
func (pm *PhaseManager) End() bool {
	if pm.phase != types.Playing {
		return false
	}
	pm.phase = types.GameOver
	return true
}

func (pm *PhaseManager) Reset() {
	pm.phase = types.Paused
}
