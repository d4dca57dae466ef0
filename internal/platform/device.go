package platform

import (
	"os"

	"portfolio-engine/internal/input"
)

// DetectDeviceClass decides whether this deployment is pointer-driven or a
// touch kiosk. Desktops default to pointer; touchscreen deployments declare
// themselves via PORTFOLIO_DEVICE=touch since capability cannot be probed
// reliably before the first touch arrives.
func DetectDeviceClass() input.DeviceClass {
	switch os.Getenv("PORTFOLIO_DEVICE") {
	case "touch":
		return input.DeviceTouch
	case "pointer":
		return input.DevicePointer
	}
	return input.DevicePointer
}

// MobileClass reports whether the device class should be treated as
// mobile for haptic gating.
func MobileClass(c input.DeviceClass) bool {
	return c == input.DeviceTouch
}
