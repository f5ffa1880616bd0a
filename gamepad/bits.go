package gamepad

// DPad bits, grounded on original_source/src/main/uni_gamepad.h.
const (
	DPadUp uint8 = 1 << iota
	DPadDown
	DPadRight
	DPadLeft
)

// Button bits, grounded on original_source/src/main/uni_gamepad.h
// (BUTTON_A .. BUTTON_THUMB_R).
const (
	ButtonA uint16 = 1 << iota
	ButtonB
	ButtonX
	ButtonY
	ButtonShoulderL
	ButtonShoulderR
	ButtonTriggerL
	ButtonTriggerR
	ButtonThumbL
	ButtonThumbR
)

// MiscButton bits (system-level buttons outside the main button cluster).
const (
	MiscButtonSystem uint8 = 1 << iota
	MiscButtonBack
	MiscButtonHome
	MiscButtonMenu
)

// UpdatedState bits flag which VirtualGamepad fields changed on the most
// recent parse, letting reducers and the platform adapter do incremental
// work instead of re-reading every field every report.
const (
	UpdatedStateDPad uint32 = 1 << iota
	UpdatedStateAxisX
	UpdatedStateAxisY
	UpdatedStateAxisRX
	UpdatedStateAxisRY
	UpdatedStateBrake
	UpdatedStateAccelerator
	_
	_
	_
	UpdatedStateButtonA
	UpdatedStateButtonB
	UpdatedStateButtonX
	UpdatedStateButtonY
	UpdatedStateButtonShoulderL
	UpdatedStateButtonShoulderR
	UpdatedStateButtonTriggerL
	UpdatedStateButtonTriggerR
	UpdatedStateButtonThumbL
	UpdatedStateButtonThumbR
	_
	_
	_
	_
	UpdatedStateMiscButtonBack
	UpdatedStateMiscButtonHome
	UpdatedStateMiscButtonMenu
	UpdatedStateMiscButtonSystem
	UpdatedStateBattery
)
