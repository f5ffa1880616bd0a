// Package hid builds and walks USB HID report descriptors.
//
// The builder half (Report, Item, and the concrete item types below) lets
// device code describe a report layout declaratively, the way VIIPER's own
// device packages already did before this repository existed — those
// files reference this package's types directly. The walker half (Walk,
// in walk.go) is new: it decodes a raw descriptor byte stream back into a
// stream of (usage page, usage, value, globals) tuples, per a standard
// HID 1.11 report-descriptor parser.
package hid

import (
	"encoding/binary"
	"fmt"
)

// ItemType is the two-bit "type" field of a short HID item header.
type ItemType uint8

const (
	ItemTypeMain ItemType = iota
	ItemTypeGlobal
	ItemTypeLocal
	itemTypeReserved
)

// Main item tags.
const (
	tagInput         uint8 = 0x8
	tagOutput        uint8 = 0x9
	tagCollection    uint8 = 0xA
	tagFeature       uint8 = 0xB
	tagEndCollection uint8 = 0xC
)

// Global item tags.
const (
	tagUsagePage       uint8 = 0x0
	tagLogicalMinimum  uint8 = 0x1
	tagLogicalMaximum  uint8 = 0x2
	tagPhysicalMinimum uint8 = 0x3
	tagPhysicalMaximum uint8 = 0x4
	tagUnitExponent    uint8 = 0x5
	tagUnit            uint8 = 0x6
	tagReportSize      uint8 = 0x7
	tagReportID        uint8 = 0x8
	tagReportCount     uint8 = 0x9
	tagPush            uint8 = 0xA
	tagPop             uint8 = 0xB
)

// Local item tags.
const (
	tagUsage        uint8 = 0x0
	tagUsageMinimum uint8 = 0x1
	tagUsageMaximum uint8 = 0x2
)

// Usage pages in common use by the per-vendor parsers.
const (
	UsagePageGenericDesktop uint16 = 0x01
	UsagePageKeyboard       uint16 = 0x07
	UsagePageLEDs           uint16 = 0x08
	UsagePageButton         uint16 = 0x09
	UsagePageConsumer       uint16 = 0x0C
)

// Generic Desktop usages.
const (
	UsagePointer  uint16 = 0x01
	UsageGamePad  uint16 = 0x05
	UsageKeyboard uint16 = 0x06
	UsageMouse    uint16 = 0x02
	UsageX        uint16 = 0x30
	UsageY        uint16 = 0x31
	UsageZ        uint16 = 0x32
	UsageRz       uint16 = 0x35
	UsageWheel    uint16 = 0x38
	UsageHatSwitch uint16 = 0x39
)

// Consumer-page usages.
const UsageACPan uint16 = 0x0238

// Collection kinds (Main item Collection data byte).
const (
	CollectionPhysical   uint8 = 0x00
	CollectionApplication uint8 = 0x01
	CollectionLogical    uint8 = 0x02
)

// Main-item data-byte flags (Input/Output/Feature).
const (
	MainConst     uint32 = 1 << 0
	MainVar       uint32 = 1 << 1
	MainRel       uint32 = 1 << 2
	MainWrap      uint32 = 1 << 3
	MainNonLinear uint32 = 1 << 4
	MainNoPref    uint32 = 1 << 5
	MainNullState uint32 = 1 << 6
	MainVolatile  uint32 = 1 << 7
	MainBufBytes  uint32 = 1 << 8
	// MainData is the absence of MainConst; kept as a named zero value so
	// call sites can write `hid.MainData | hid.MainVar | hid.MainAbs`
	// symmetrically with the bits that are actually set.
	MainData uint32 = 0
	MainArray uint32 = 0
	MainAbs   uint32 = 0
)

// Data is a pre-encoded immediate value for AnyItem, used for the handful
// of global/local items (Push/Pop, PhysicalMinimum/Maximum, Unit) that
// have no dedicated typed item below.
type Data []byte

// Item is one entry in a HID report descriptor item tree.
type Item interface {
	encode(enc *encoder)
}

// encoder accumulates bytes; writeItem sizes each immediate from its
// value and item tag (signed vs unsigned), and full semantic state
// tracking happens in the walker (walk.go), not here.
type encoder struct {
	buf []byte
}

func fitSize(v int64) (size int, unsigned bool) {
	if v >= 0 {
		switch {
		case v <= 0xFF:
			return 1, true
		case v <= 0xFFFF:
			return 2, true
		default:
			return 4, true
		}
	}
	switch {
	case v >= -0x80:
		return 1, false
	case v >= -0x8000:
		return 2, false
	default:
		return 4, false
	}
}

func sizeCode(n int) uint8 {
	switch n {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 2
	case 4:
		return 3
	default:
		return 3
	}
}

func (e *encoder) writeItem(itemType ItemType, tag uint8, v int64) {
	size, unsigned := fitSize(v)
	// Logical Minimum/Maximum are signed: a non-negative value whose top
	// bit would be set at this width takes the next width up.
	if itemType == ItemTypeGlobal && (tag == tagLogicalMinimum || tag == tagLogicalMaximum) &&
		v >= 0 && size < 4 && v >= int64(1)<<(8*size-1) {
		size *= 2
	}
	prefix := (tag << 4) | (uint8(itemType) << 2) | sizeCode(size)
	e.buf = append(e.buf, prefix)
	switch size {
	case 1:
		if unsigned {
			e.buf = append(e.buf, uint8(v))
		} else {
			e.buf = append(e.buf, byte(int8(v)))
		}
	case 2:
		b := make([]byte, 2)
		if unsigned {
			binary.LittleEndian.PutUint16(b, uint16(v))
		} else {
			binary.LittleEndian.PutUint16(b, uint16(int16(v)))
		}
		e.buf = append(e.buf, b...)
	case 4:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(v))
		e.buf = append(e.buf, b...)
	}
}

func (e *encoder) writeRaw(itemType ItemType, tag uint8, data []byte) {
	prefix := (tag << 4) | (uint8(itemType) << 2) | sizeCode(len(data))
	e.buf = append(e.buf, prefix)
	e.buf = append(e.buf, data...)
}

// UsagePage sets the current Global usage page.
type UsagePage struct{ Page uint16 }

func (i UsagePage) encode(e *encoder) { e.writeItem(ItemTypeGlobal, tagUsagePage, int64(i.Page)) }

// Usage is a Local usage within the current usage page.
type Usage struct{ Usage uint16 }

func (i Usage) encode(e *encoder) { e.writeItem(ItemTypeLocal, tagUsage, int64(i.Usage)) }

// UsageMinimum opens a Local usage range.
type UsageMinimum struct{ Min uint16 }

func (i UsageMinimum) encode(e *encoder) { e.writeItem(ItemTypeLocal, tagUsageMinimum, int64(i.Min)) }

// UsageMaximum closes a Local usage range.
type UsageMaximum struct{ Max uint16 }

func (i UsageMaximum) encode(e *encoder) { e.writeItem(ItemTypeLocal, tagUsageMaximum, int64(i.Max)) }

// LogicalMinimum sets the Global logical-minimum value.
type LogicalMinimum struct{ Min int32 }

func (i LogicalMinimum) encode(e *encoder) {
	e.writeItem(ItemTypeGlobal, tagLogicalMinimum, int64(i.Min))
}

// LogicalMaximum sets the Global logical-maximum value.
type LogicalMaximum struct{ Max int32 }

func (i LogicalMaximum) encode(e *encoder) {
	e.writeItem(ItemTypeGlobal, tagLogicalMaximum, int64(i.Max))
}

// ReportSize sets the Global bit width of each field.
type ReportSize struct{ Bits uint8 }

func (i ReportSize) encode(e *encoder) { e.writeItem(ItemTypeGlobal, tagReportSize, int64(i.Bits)) }

// ReportCount sets the Global field count for the next Main item.
type ReportCount struct{ Count uint8 }

func (i ReportCount) encode(e *encoder) {
	e.writeItem(ItemTypeGlobal, tagReportCount, int64(i.Count))
}

// ReportID tags subsequent Main items with a report ID byte.
type ReportID struct{ ID uint8 }

func (i ReportID) encode(e *encoder) { e.writeItem(ItemTypeGlobal, tagReportID, int64(i.ID)) }

// Input emits a Main Input item with the given flag bits.
type Input struct{ Flags uint32 }

func (i Input) encode(e *encoder) { e.writeItem(ItemTypeMain, tagInput, int64(i.Flags)) }

// Output emits a Main Output item with the given flag bits.
type Output struct{ Flags uint32 }

func (i Output) encode(e *encoder) { e.writeItem(ItemTypeMain, tagOutput, int64(i.Flags)) }

// Feature emits a Main Feature item with the given flag bits.
type Feature struct{ Flags uint32 }

func (i Feature) encode(e *encoder) { e.writeItem(ItemTypeMain, tagFeature, int64(i.Flags)) }

// Collection opens a Main Collection item of the given kind, encodes its
// nested Items, then emits the matching EndCollection.
type Collection struct {
	Kind  uint8
	Items []Item
}

func (i Collection) encode(e *encoder) {
	e.writeItem(ItemTypeMain, tagCollection, int64(i.Kind))
	for _, item := range i.Items {
		item.encode(e)
	}
	e.writeRaw(ItemTypeMain, tagEndCollection, nil)
}

// AnyItem encodes an arbitrary item by raw type/tag/data, for the global
// and local items without a dedicated typed wrapper above (PhysicalMin/Max,
// UnitExponent, Unit, Push, Pop, StringIndex, ...).
type AnyItem struct {
	Type ItemType
	Tag  uint8
	Data Data
}

func (i AnyItem) encode(e *encoder) { e.writeRaw(i.Type, i.Tag, []byte(i.Data)) }

// Report is a full HID report descriptor item tree.
type Report struct {
	Items []Item
}

// Bytes encodes the descriptor's items in order.
func (r Report) Bytes() ([]byte, error) {
	if len(r.Items) == 0 {
		return nil, fmt.Errorf("hid: empty report descriptor")
	}
	e := &encoder{}
	for _, item := range r.Items {
		item.encode(e)
	}
	return e.buf, nil
}
