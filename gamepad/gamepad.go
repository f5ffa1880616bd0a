package gamepad

// NormalizedRange is the resolution (R) every axis/pedal is normalized to:
// signed axes span ±(R/2), unsigned pedals span 0..R.
const NormalizedRange = 1024

// VirtualGamepad is the normalized input snapshot every per-vendor parser
// in parser/ reduces its device-specific reports into. Field layout and
// bit values are grounded on original_source/src/main/uni_gamepad.h so a
// consumer reasoning about "what changed" (UpdatedStates) sees the same
// semantics a real Bluepad32 platform adapter would.
type VirtualGamepad struct {
	DPad uint8

	AxisX  int32
	AxisY  int32
	AxisRX int32
	AxisRY int32

	Brake       uint32
	Accelerator uint32

	Buttons     uint16
	MiscButtons uint8

	Battery uint8

	// UpdatedStates flags which fields changed on the most recent parse.
	// It is cleared by InitReport before every report; "full-report"
	// parsers (PS3, PS4, PS5, Switch Pro, Wii) then set every flag via
	// MarkFullReport, while the others set only the fields they decode.
	UpdatedStates uint32
}

// InitReport clears UpdatedStates ahead of decoding the next inbound
// report. Every parser family's InitReport hook calls it.
func (g *VirtualGamepad) InitReport() {
	g.UpdatedStates = 0
}

// SetDPad updates DPad and flags it changed.
func (g *VirtualGamepad) SetDPad(dpad uint8) {
	g.DPad = dpad
	g.UpdatedStates |= UpdatedStateDPad
}

// SetAxisX updates AxisX and flags it changed.
func (g *VirtualGamepad) SetAxisX(v int32) {
	g.AxisX = v
	g.UpdatedStates |= UpdatedStateAxisX
}

// SetAxisY updates AxisY and flags it changed.
func (g *VirtualGamepad) SetAxisY(v int32) {
	g.AxisY = v
	g.UpdatedStates |= UpdatedStateAxisY
}

// SetAxisRX updates AxisRX and flags it changed.
func (g *VirtualGamepad) SetAxisRX(v int32) {
	g.AxisRX = v
	g.UpdatedStates |= UpdatedStateAxisRX
}

// SetAxisRY updates AxisRY and flags it changed.
func (g *VirtualGamepad) SetAxisRY(v int32) {
	g.AxisRY = v
	g.UpdatedStates |= UpdatedStateAxisRY
}

// SetBrake updates Brake and flags it changed.
func (g *VirtualGamepad) SetBrake(v uint32) {
	g.Brake = v
	g.UpdatedStates |= UpdatedStateBrake
}

// SetAccelerator updates Accelerator and flags it changed.
func (g *VirtualGamepad) SetAccelerator(v uint32) {
	g.Accelerator = v
	g.UpdatedStates |= UpdatedStateAccelerator
}

// SetButton sets or clears a single button bit and flags the matching
// UpdatedState bit, mirroring how the original per-field parse_usage
// hooks mutate one button at a time.
func (g *VirtualGamepad) SetButton(bit uint16, pressed bool) {
	if pressed {
		g.Buttons |= bit
	} else {
		g.Buttons &^= bit
	}
	switch bit {
	case ButtonA:
		g.UpdatedStates |= UpdatedStateButtonA
	case ButtonB:
		g.UpdatedStates |= UpdatedStateButtonB
	case ButtonX:
		g.UpdatedStates |= UpdatedStateButtonX
	case ButtonY:
		g.UpdatedStates |= UpdatedStateButtonY
	case ButtonShoulderL:
		g.UpdatedStates |= UpdatedStateButtonShoulderL
	case ButtonShoulderR:
		g.UpdatedStates |= UpdatedStateButtonShoulderR
	case ButtonTriggerL:
		g.UpdatedStates |= UpdatedStateButtonTriggerL
	case ButtonTriggerR:
		g.UpdatedStates |= UpdatedStateButtonTriggerR
	case ButtonThumbL:
		g.UpdatedStates |= UpdatedStateButtonThumbL
	case ButtonThumbR:
		g.UpdatedStates |= UpdatedStateButtonThumbR
	}
}

// SetMiscButton sets or clears a misc-button bit (System/Back/Home/Menu).
func (g *VirtualGamepad) SetMiscButton(bit uint8, pressed bool) {
	if pressed {
		g.MiscButtons |= bit
	} else {
		g.MiscButtons &^= bit
	}
	switch bit {
	case MiscButtonBack:
		g.UpdatedStates |= UpdatedStateMiscButtonBack
	case MiscButtonHome:
		g.UpdatedStates |= UpdatedStateMiscButtonHome
	case MiscButtonMenu:
		g.UpdatedStates |= UpdatedStateMiscButtonMenu
	case MiscButtonSystem:
		g.UpdatedStates |= UpdatedStateMiscButtonSystem
	}
}

// SetBattery updates Battery and flags it changed.
func (g *VirtualGamepad) SetBattery(v uint8) {
	g.Battery = v
	g.UpdatedStates |= UpdatedStateBattery
}

// MarkFullReport flags every field as updated in one shot, for parsers
// (PS3, PS4, PS5, Switch Pro, Wii) whose reports always carry the
// complete state; they call it on every report they decode.
func (g *VirtualGamepad) MarkFullReport() {
	g.UpdatedStates = UpdatedStateDPad | UpdatedStateAxisX | UpdatedStateAxisY |
		UpdatedStateAxisRX | UpdatedStateAxisRY | UpdatedStateBrake |
		UpdatedStateAccelerator | UpdatedStateButtonA | UpdatedStateButtonB |
		UpdatedStateButtonX | UpdatedStateButtonY | UpdatedStateButtonShoulderL |
		UpdatedStateButtonShoulderR | UpdatedStateButtonTriggerL |
		UpdatedStateButtonTriggerR | UpdatedStateButtonThumbL | UpdatedStateButtonThumbR |
		UpdatedStateMiscButtonBack | UpdatedStateMiscButtonHome |
		UpdatedStateMiscButtonMenu | UpdatedStateMiscButtonSystem | UpdatedStateBattery
}
