package hid

import "encoding/binary"

// Globals is the HID Global-item state in effect when a field is yielded:
// logical range, usage page, report size/count, and the most recently
// seen report ID. It matches the tuple spec.md §4.2 requires the walker
// preserve across fields.
type Globals struct {
	LogicalMin  int32
	LogicalMax  int32
	UsagePage   uint16
	ReportSize  uint8
	ReportCount uint8
	ReportID    uint8
}

// Field is one decoded value from an Input/Output/Feature Main item: the
// usage assigned to this bit position (from the current Local usage
// list/range), its raw field value, and the Globals in effect.
type Field struct {
	UsagePage uint16
	Usage     uint16
	Value     int32
	Globals   Globals
	// MainTag distinguishes Input/Output/Feature for callers that care
	// (parse_usage only needs Input fields; other hooks may not).
	MainTag uint8
}

// MainTag values exposed on Field, mirroring the unexported encoder tags.
const (
	MainTagInput   uint8 = tagInput
	MainTagOutput  uint8 = tagOutput
	MainTagFeature uint8 = tagFeature
)

type walkerState struct {
	globals   Globals
	usagePage uint16

	usageStack []uint16
	usageMin   uint16
	usageMax   uint16
	hasRange   bool

	report  []byte // nil for a structural-only Walk
	bitPos  int    // next unread bit, counting from the start of report
}

// Walk decodes a raw HID report descriptor structurally, invoking yield
// once per field slot of every Input/Output/Feature Main item, with
// Value always zero. Use this to enumerate a device's field layout
// before any report has arrived (e.g. to decide whether a usable
// descriptor exists at all). To decode an actual inbound report, use
// WalkReport.
func Walk(desc []byte, yield func(Field)) {
	walk(desc, nil, yield)
}

// WalkReport decodes desc same as Walk, but additionally extracts each
// Input field's raw value from the corresponding bit position of report
// (an inbound interrupt report, report-ID byte included if the
// descriptor declares one), per spec.md §4.2. Fields are read
// little-endian, bit 0 of each byte first, as HID mandates.
// A malformed descriptor (truncated item headers, item sizes that
// overrun the buffer) stops iteration silently; fields lying past the
// end of a report shorter than the descriptor demands are yielded with
// Value 0. Such a device remains usable only if a parse_raw hook is
// registered instead.
func WalkReport(desc []byte, report []byte, yield func(Field)) {
	walk(desc, report, yield)
}

func walk(desc []byte, report []byte, yield func(Field)) {
	var st walkerState
	st.report = report
	// Global items nest via Push/Pop; a small stack of saved Globals
	// covers descriptors that use it (most gamepad descriptors do not,
	// but some vendor-extension blocks in the pack's DS4 descriptor do
	// save/restore Unit/UnitExponent around a single field).
	var globalStack []Globals

	i := 0
	for i < len(desc) {
		prefix := desc[i]
		i++

		tag := prefix >> 4
		itemType := ItemType((prefix >> 2) & 0x3)
		sizeCode := prefix & 0x3
		size := [4]int{0, 1, 2, 4}[sizeCode]
		if i+size > len(desc) {
			return
		}
		raw := desc[i : i+size]
		i += size

		uval, sval := decodeImmediate(raw)

		switch itemType {
		case ItemTypeGlobal:
			switch tag {
			case tagUsagePage:
				st.usagePage = uint16(uval)
				st.globals.UsagePage = st.usagePage
			case tagLogicalMinimum:
				st.globals.LogicalMin = sval
			case tagLogicalMaximum:
				st.globals.LogicalMax = sval
			case tagReportSize:
				st.globals.ReportSize = uint8(uval)
			case tagReportCount:
				st.globals.ReportCount = uint8(uval)
			case tagReportID:
				st.globals.ReportID = uint8(uval)
			case tagPush:
				globalStack = append(globalStack, st.globals)
			case tagPop:
				if n := len(globalStack); n > 0 {
					st.globals = globalStack[n-1]
					globalStack = globalStack[:n-1]
					st.usagePage = st.globals.UsagePage
				}
			}

		case ItemTypeLocal:
			switch tag {
			case tagUsage:
				st.usageStack = append(st.usageStack, uint16(uval))
			case tagUsageMinimum:
				st.usageMin = uint16(uval)
				st.hasRange = true
			case tagUsageMaximum:
				st.usageMax = uint16(uval)
				st.hasRange = true
			}

		case ItemTypeMain:
			switch tag {
			case tagInput, tagOutput, tagFeature:
				emitFields(&st, tag, yield)
				st.usageStack = nil
				st.hasRange = false
			case tagCollection, tagEndCollection:
				// Local state resets at the end of every item per the
				// HID spec; collections don't carry field data of their
				// own, so there is nothing to yield.
				st.usageStack = nil
				st.hasRange = false
			}
		}
	}
}

// emitFields yields one Field per report-count slot of the just-closed
// Main item, assigning usages from the Local usage list (if one was
// declared) or from the usage-minimum/maximum range, cycling/clamping to
// the last usage once the list is exhausted -- the standard HID
// "usage array shorter than report count" behavior. When st.report is
// set, each field's raw value is also extracted from the report's bit
// stream; Output/Feature items still advance bitPos (they occupy report
// space too) even though only Input fields are normally consumed by
// parse_usage.
func emitFields(st *walkerState, tag uint8, yield func(Field)) {
	count := int(st.globals.ReportCount)
	if count == 0 {
		count = 1
	}
	bits := int(st.globals.ReportSize)

	// A Main item with a report ID consumes that leading byte once,
	// before its field data, but only the first time it's seen in a
	// given report: real bit-packed reports place the ID at byte 0, not
	// once per item. We approximate by skipping it whenever bitPos is
	// still at the very start of the buffer and a nonzero ID is set.
	if st.report != nil && st.bitPos == 0 && st.globals.ReportID != 0 {
		st.bitPos = 8
	}

	for n := 0; n < count; n++ {
		usage := usageForIndex(st, n)
		value := int32(0)
		if st.report != nil {
			value = extractBits(st.report, st.bitPos, bits, st.globals.LogicalMin < 0)
			st.bitPos += bits
		}
		yield(Field{
			UsagePage: st.usagePage,
			Usage:     usage,
			Value:     value,
			Globals:   st.globals,
			MainTag:   tag,
		})
	}
}

// extractBits reads a little-endian, bit-packed field of width bits
// starting at bitOffset (counting from the start of report), sign
// extending when signed is true. Out-of-range reads return 0 rather than
// panicking, so a truncated report yields 0 for its missing fields.
func extractBits(report []byte, bitOffset, bits int, signed bool) int32 {
	if bits <= 0 || bits > 32 {
		return 0
	}
	var v uint32
	for b := 0; b < bits; b++ {
		pos := bitOffset + b
		byteIdx := pos / 8
		if byteIdx >= len(report) {
			return 0
		}
		bit := (report[byteIdx] >> (uint(pos) % 8)) & 1
		v |= uint32(bit) << uint(b)
	}
	if signed && bits < 32 && v&(1<<uint(bits-1)) != 0 {
		v |= ^uint32(0) << uint(bits)
	}
	return int32(v)
}

func usageForIndex(st *walkerState, n int) uint16 {
	if len(st.usageStack) > 0 {
		if n < len(st.usageStack) {
			return st.usageStack[n]
		}
		return st.usageStack[len(st.usageStack)-1]
	}
	if st.hasRange {
		u := int(st.usageMin) + n
		if u > int(st.usageMax) {
			u = int(st.usageMax)
		}
		return uint16(u)
	}
	return 0
}

func decodeImmediate(raw []byte) (unsigned uint32, signed int32) {
	switch len(raw) {
	case 0:
		return 0, 0
	case 1:
		return uint32(raw[0]), int32(int8(raw[0]))
	case 2:
		v := binary.LittleEndian.Uint16(raw)
		return uint32(v), int32(int16(v))
	default:
		v := binary.LittleEndian.Uint32(raw)
		return v, int32(v)
	}
}
