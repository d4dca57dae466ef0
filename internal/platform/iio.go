package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"portfolio-engine/internal/input"
)

// IIOOrientation reads device tilt from a Linux industrial I/O
// accelerometer (tablets and convertible kiosks expose one under
// /sys/bus/iio). Readings are normalized so full gravity on an axis maps
// to ±1.
type IIOOrientation struct {
	dir   string
	scale float64
}

const iioRoot = "/sys/bus/iio/devices"

// Standard gravity, used to normalize accelerometer readings to tilt.
const gravity = 9.80665

// NewIIOOrientation scans for an accelerometer. A nil return with no error
// means none is present.
func NewIIOOrientation() (*IIOOrientation, error) {
	matches, err := filepath.Glob(filepath.Join(iioRoot, "iio:device*"))
	if err != nil {
		return nil, err
	}
	for _, dir := range matches {
		if _, err := os.Stat(filepath.Join(dir, "in_accel_x_raw")); err == nil {
			o := &IIOOrientation{dir: dir, scale: 1}
			if s, err := readSysFloat(filepath.Join(dir, "in_accel_scale")); err == nil && s > 0 {
				o.scale = s
			}
			return o, nil
		}
	}
	return nil, nil
}

func (o *IIOOrientation) Available() bool {
	return o != nil && o.dir != ""
}

// RequestAccess probes readability once. Sandboxed or permission-restricted
// sysfs shows up here as a denial.
func (o *IIOOrientation) RequestAccess() (bool, error) {
	if !o.Available() {
		return false, nil
	}
	if _, err := readSysFloat(filepath.Join(o.dir, "in_accel_x_raw")); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Read returns normalized tilt. The accelerometer's x/y axes swap into
// screen-space tilt: leaning the device left/right drives X, toward/away
// drives Y.
func (o *IIOOrientation) Read() (input.Vec3, error) {
	x, err := readSysFloat(filepath.Join(o.dir, "in_accel_x_raw"))
	if err != nil {
		return input.Vec3{}, err
	}
	y, err := readSysFloat(filepath.Join(o.dir, "in_accel_y_raw"))
	if err != nil {
		return input.Vec3{}, err
	}
	z, err := readSysFloat(filepath.Join(o.dir, "in_accel_z_raw"))
	if err != nil {
		return input.Vec3{}, err
	}
	return input.Vec3{
		X: x * o.scale / gravity,
		Y: y * o.scale / gravity,
		Z: z * o.scale / gravity,
	}, nil
}

func readSysFloat(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
}
