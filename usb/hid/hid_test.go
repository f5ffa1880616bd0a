package hid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alia5/bluepad32go/usb/hid"
)

func gamepadReport() hid.Report {
	return hid.Report{
		Items: []hid.Item{
			hid.UsagePage{Page: hid.UsagePageGenericDesktop},
			hid.Usage{Usage: hid.UsageGamePad},
			hid.Collection{Kind: hid.CollectionApplication, Items: []hid.Item{
				hid.UsagePage{Page: hid.UsagePageGenericDesktop},
				hid.Usage{Usage: hid.UsageX},
				hid.Usage{Usage: hid.UsageY},
				hid.LogicalMinimum{Min: 0},
				hid.LogicalMaximum{Max: 255},
				hid.ReportSize{Bits: 8},
				hid.ReportCount{Count: 2},
				hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},

				hid.UsagePage{Page: hid.UsagePageButton},
				hid.UsageMinimum{Min: 0x01},
				hid.UsageMaximum{Max: 0x04},
				hid.LogicalMinimum{Min: 0},
				hid.LogicalMaximum{Max: 1},
				hid.ReportSize{Bits: 1},
				hid.ReportCount{Count: 4},
				hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},
				// pad to a full byte
				hid.ReportCount{Count: 4},
				hid.Input{Flags: hid.MainConst | hid.MainVar | hid.MainAbs},
			}},
		},
	}
}

func TestReportBytesNonEmpty(t *testing.T) {
	b, err := gamepadReport().Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, b)
	// Collection(Application) opens with tag 0xA >> Main, ends with 0xC0.
	assert.Equal(t, byte(0xC0), b[len(b)-1])
}

func TestEmptyReportErrors(t *testing.T) {
	_, err := hid.Report{}.Bytes()
	assert.Error(t, err)
}

func TestWalkYieldsDeclaredFields(t *testing.T) {
	desc, err := gamepadReport().Bytes()
	require.NoError(t, err)

	var usages []uint16
	hid.Walk(desc, func(f hid.Field) {
		usages = append(usages, f.Usage)
	})
	// 2 axis fields + 4 button fields + 4 padding bits = 10 field slots.
	assert.Len(t, usages, 10)
	assert.Equal(t, hid.UsageX, usages[0])
	assert.Equal(t, hid.UsageY, usages[1])
	assert.Equal(t, uint16(0x01), usages[2])
	assert.Equal(t, uint16(0x04), usages[5])
}

func TestWalkReportExtractsValues(t *testing.T) {
	desc, err := gamepadReport().Bytes()
	require.NoError(t, err)

	// byte0 = X, byte1 = Y, byte2 low nibble = buttons 1-4 (bit0=button1).
	report := []byte{0x80, 0x40, 0b0000_0101}

	var values []int32
	var usagePages []uint16
	hid.WalkReport(desc, report, func(f hid.Field) {
		values = append(values, f.Value)
		usagePages = append(usagePages, f.UsagePage)
	})

	require.Len(t, values, 10)
	assert.EqualValues(t, 0x80, values[0])
	assert.EqualValues(t, 0x40, values[1])
	assert.EqualValues(t, 1, values[2]) // button 1 pressed
	assert.EqualValues(t, 0, values[3]) // button 2 not pressed
	assert.EqualValues(t, 1, values[4]) // button 3 pressed
	assert.EqualValues(t, 0, values[5]) // button 4 not pressed
	assert.Equal(t, hid.UsagePageGenericDesktop, usagePages[0])
	assert.Equal(t, hid.UsagePageButton, usagePages[2])
}

func TestWalkStopsOnTruncatedDescriptor(t *testing.T) {
	// A Main item header claiming 4 bytes of data but supplying none.
	desc := []byte{0b0000_0011} // tag=0, type=Main(0), size=3(=>4 bytes)
	var called bool
	hid.Walk(desc, func(f hid.Field) { called = true })
	assert.False(t, called)
}

func TestAnyItemAndUsagePageConstants(t *testing.T) {
	r := hid.Report{Items: []hid.Item{
		hid.UsagePage{Page: hid.UsagePageConsumer},
		hid.Usage{Usage: hid.UsageACPan},
		hid.AnyItem{Type: hid.ItemTypeGlobal, Tag: 0x08, Data: hid.Data{0x01}},
		hid.LogicalMinimum{Min: 0},
		hid.LogicalMaximum{Max: 1},
		hid.ReportSize{Bits: 1},
		hid.ReportCount{Count: 1},
		hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},
	}}
	b, err := r.Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
