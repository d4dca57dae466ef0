package platform

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio-engine/internal/haptics"
)

// GamepadRumbler drives haptic pulses through the first connected gamepad's
// vibration motors. Kiosk touchscreens with no pad report unsupported and
// the controller degrades to a no-op.
type GamepadRumbler struct {
	pad int32
}

func NewGamepadRumbler() *GamepadRumbler {
	return &GamepadRumbler{pad: 0}
}

func (g *GamepadRumbler) Supported() bool {
	return rl.IsGamepadAvailable(g.pad)
}

// Vibrate plays the pattern as a single motor burst covering the pattern's
// total pulse time. Fire and forget; raylib gives no failure signal, so the
// only error path is a vanished pad.
func (g *GamepadRumbler) Vibrate(p haptics.Pattern) error {
	if !rl.IsGamepadAvailable(g.pad) {
		return errPadGone
	}
	total := 0
	for i, ms := range p {
		if i%2 == 0 { // even entries are pulses, odd are pauses
			total += ms
		}
	}
	rl.SetGamepadVibration(g.pad, 0.6, 0.6, float32(total)/1000)
	return nil
}

var errPadGone = gamepadError("gamepad disconnected")

type gamepadError string

func (e gamepadError) Error() string { return string(e) }
