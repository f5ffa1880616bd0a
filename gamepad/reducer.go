package gamepad

// axisThreshold is the deadzone used when reducing a normalized axis down
// to a single retro-computer-port direction bit: 1024/8, per spec.md §4.4.
const axisThreshold = NormalizedRange / 8

// Joystick models a single 9-pin Atari-style digital joystick port: four
// direction bits, a fire button, an auto-fire toggle, and two potentiometer
// channels (paddle/mouse-style analog inputs some platform adapters wire
// brake/accelerator into).
type Joystick struct {
	Up, Down, Left, Right bool
	Fire                  bool
	AutoFire              bool
	PotX, PotY            uint8
}

func axisDirections(x, y int32) (up, down, left, right bool) {
	return y < -axisThreshold, y > axisThreshold, x < -axisThreshold, x > axisThreshold
}

// ToSingleJoystick reduces gp onto a single joystick port.
func ToSingleJoystick(gp *VirtualGamepad) Joystick {
	var j Joystick
	up, down, left, right := axisDirections(gp.AxisX, gp.AxisY)
	j.Up = up || gp.DPad&DPadUp != 0
	j.Down = down || gp.DPad&DPadDown != 0
	j.Left = left || gp.DPad&DPadLeft != 0
	j.Right = right || gp.DPad&DPadRight != 0
	j.Fire = gp.Buttons&ButtonA != 0 || gp.Buttons&ButtonThumbL != 0
	j.AutoFire = gp.Buttons&ButtonShoulderR != 0
	j.PotX = uint8(gp.Brake >> 2)
	j.PotY = uint8(gp.Accelerator >> 2)
	return j
}

// ToComboJoyJoy reduces gp onto two independent joystick ports (e.g. a
// split two-player adapter driven by a single gamepad).
func ToComboJoyJoy(gp *VirtualGamepad) (joy1, joy2 Joystick) {
	joy1 = ToSingleJoystick(gp)
	joy1.AutoFire = gp.Buttons&ButtonShoulderL != 0

	up, down, left, right := axisDirections(gp.AxisRX, gp.AxisRY)
	joy2.Up, joy2.Down, joy2.Left, joy2.Right = up, down, left, right
	joy2.Fire = gp.Buttons&ButtonB != 0 || gp.Buttons&ButtonThumbR != 0
	joy2.AutoFire = gp.Buttons&ButtonShoulderR != 0
	return joy1, joy2
}

// Mouse models the three-button analog mouse some platform adapters
// synthesize out of the right stick plus face buttons.
type Mouse struct {
	Up, Down, Left, Right     bool
	ButtonLeft, ButtonMiddle  bool
	ButtonRight               bool
}

// ToComboJoyMouse reduces gp onto one joystick port plus a mouse, the
// mouse driven by the right stick and B/X/Y as left/middle/right click.
func ToComboJoyMouse(gp *VirtualGamepad) (joy Joystick, mouse Mouse) {
	joy = ToSingleJoystick(gp)

	up, down, left, right := axisDirections(gp.AxisRX, gp.AxisRY)
	mouse.Up, mouse.Down, mouse.Left, mouse.Right = up, down, left, right
	mouse.ButtonLeft = gp.Buttons&ButtonB != 0
	mouse.ButtonMiddle = gp.Buttons&ButtonX != 0
	mouse.ButtonRight = gp.Buttons&ButtonY != 0
	return joy, mouse
}
