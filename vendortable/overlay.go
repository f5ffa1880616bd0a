package vendortable

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"github.com/alia5/bluepad32go/gamepad"
)

// overlayRow is the YAML shape of one operator-supplied vendor-table
// override row: VID/PID as either a JSON/YAML number or a "0x..." hex
// string, the same dual representation apitypes/structs.go accepts for
// USB ids.
type overlayRow struct {
	VID       any    `yaml:"vid"`
	PID       any    `yaml:"pid"`
	Type      string `yaml:"type"`
	Supported bool   `yaml:"supported"`
	Name      string `yaml:"name"`
}

// LoadOverlay reads additional vendor-table rows from a YAML file, for
// operators who need to add a VID/PID mapping without recompiling.
// Overlay rows are prepended to the built-in table's scan order, so an
// operator override always wins the first-match-wins search.
func LoadOverlay(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vendortable: reading overlay: %w", err)
	}
	var rows []overlayRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("vendortable: parsing overlay: %w", err)
	}
	out := make([]Entry, 0, len(rows))
	for i, r := range rows {
		vid, err := ParseNumberOrHex[uint16](r.VID)
		if err != nil {
			return nil, fmt.Errorf("vendortable: overlay row %d vid: %w", i, err)
		}
		pid, err := ParseNumberOrHex[uint16](r.PID)
		if err != nil {
			return nil, fmt.Errorf("vendortable: overlay row %d pid: %w", i, err)
		}
		t, err := controllerTypeByName(r.Type)
		if err != nil {
			return nil, fmt.Errorf("vendortable: overlay row %d: %w", i, err)
		}
		out = append(out, Entry{VID: vid, PID: pid, Type: t, Supported: r.Supported, Name: r.Name})
	}
	return out, nil
}

func controllerTypeByName(name string) (gamepad.ControllerType, error) {
	for t := gamepad.ControllerTypeUnknown; t <= gamepad.ControllerTypeGeneric; t++ {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return gamepad.ControllerTypeUnknown, fmt.Errorf("unknown controller type %q", name)
}

// ParseNumberOrHex accepts a YAML/JSON number or a "0x..." hex string and
// converts it to N, the same dual representation apitypes/structs.go
// uses for USB vendor/product ids.
func ParseNumberOrHex[N constraints.Integer](v any) (N, error) {
	var zero N
	switch val := v.(type) {
	case int:
		return N(val), nil
	case int64:
		return N(val), nil
	case uint64:
		return N(val), nil
	case float64:
		return N(val), nil
	case string:
		s := strings.TrimSpace(val)
		base := 10
		if strings.HasPrefix(strings.ToLower(s), "0x") {
			s = s[2:]
			base = 16
		}
		n, err := strconv.ParseUint(s, base, 64)
		if err != nil {
			return zero, fmt.Errorf("parsing %q: %w", val, err)
		}
		return N(n), nil
	default:
		return zero, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}
