package gamepad

// Globals carries the HID field metadata a normalizer needs, matching
// the (logical_min, logical_max, usage_page, report_size, report_count,
// report_id) tuple the descriptor walker (usb/hid) produces per spec.md
// §4.2/§4.3.
type Globals struct {
	LogicalMin  int32
	LogicalMax  int32
	UsagePage   uint16
	ReportSize  uint8
	ReportCount uint8
	ReportID    uint8
}

// NormalizeAxis maps a raw signed field to the virtual gamepad's ±512
// range, centering on the field's logical midpoint. Some Amazon Fire
// pads report LogicalMax as -1 (sign-extended 0xFF); when that happens
// the true max is derived from ReportSize instead.
func NormalizeAxis(g Globals, raw int32) int32 {
	max := g.LogicalMax
	min := g.LogicalMin
	if max == -1 {
		max = (int32(1) << g.ReportSize) - 1
	}
	rng := max - min + 1
	if rng <= 0 {
		return 0
	}
	return (raw-rng/2-min) * NormalizedRange / rng
}

// NormalizePedal maps a raw unsigned field (brake/accelerator) to 0..1023.
func NormalizePedal(g Globals, raw int32) int32 {
	max := g.LogicalMax
	min := g.LogicalMin
	if max == -1 {
		max = (int32(1) << g.ReportSize) - 1
	}
	rng := max - min + 1
	if rng <= 0 {
		return 0
	}
	return raw * NormalizedRange / rng
}

// HatNull is the value NormalizeHat returns for a hat switch reporting
// no direction (center).
const HatNull = 0xFF

// NormalizeHat maps a raw hat-switch field to 0..7 clockwise from Up, or
// HatNull if raw falls outside [min, max].
func NormalizeHat(g Globals, raw int32) uint8 {
	if raw < g.LogicalMin || raw > g.LogicalMax {
		return HatNull
	}
	return uint8(raw - g.LogicalMin)
}

// hatToDPad is the canonical 8-direction-clockwise-from-Up table, grounded
// on original_source/src/main/uni_gamepad.h's hat handling.
var hatToDPad = [8]uint8{
	DPadUp,
	DPadUp | DPadRight,
	DPadRight,
	DPadRight | DPadDown,
	DPadDown,
	DPadDown | DPadLeft,
	DPadLeft,
	DPadLeft | DPadUp,
}

// HatToDPad converts a normalized hat value (0..7, or 8/0xFF/anything
// else for center) into the DPad bitmask.
func HatToDPad(hat uint8) uint8 {
	if hat < 8 {
		return hatToDPad[hat]
	}
	return 0
}

// Generic Desktop usage codes for the four directional hat-switch-less
// dpad buttons some devices report as individual usages instead of a hat.
const (
	UsageDPadUp    uint16 = 0x90
	UsageDPadDown  uint16 = 0x91
	UsageDPadRight uint16 = 0x92
	UsageDPadLeft  uint16 = 0x93
)

// DPadFromUsage sets or clears one dpad bit in dpadState for devices that
// report dpad directions as four independent button usages (0x90-0x93)
// rather than a single hat switch.
func DPadFromUsage(usage uint16, value int32, dpadState uint8) uint8 {
	var bit uint8
	switch usage {
	case UsageDPadUp:
		bit = DPadUp
	case UsageDPadDown:
		bit = DPadDown
	case UsageDPadRight:
		bit = DPadRight
	case UsageDPadLeft:
		bit = DPadLeft
	default:
		return dpadState
	}
	if value != 0 {
		return dpadState | bit
	}
	return dpadState &^ bit
}
