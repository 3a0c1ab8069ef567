package folio

// TouchMode overrides touch-device detection.
type TouchMode uint8

const (
	TouchAuto TouchMode = iota // detect from the platform
	TouchOn                    // treat the device as touch-capable
	TouchOff                   // treat the device as mouse-driven
)

// ParseTouchMode parses "auto", "on" or "off". Anything else is TouchAuto.
func ParseTouchMode(s string) TouchMode {
	switch s {
	case "on", "true", "1":
		return TouchOn
	case "off", "false", "0":
		return TouchOff
	}
	return TouchAuto
}

// IsTouch resolves the mode against the platform.
func (m TouchMode) IsTouch() bool {
	switch m {
	case TouchOn:
		return true
	case TouchOff:
		return false
	}
	return IsTouchDevice()
}

// IsTouchDevice reports whether the host exposes a touch screen. It is
// evaluated when called, so callers that gate features at mount keep
// their decision for their lifetime.
func IsTouchDevice() bool {
	return touchDevice()
}
