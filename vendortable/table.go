package vendortable

import "github.com/alia5/bluepad32go/gamepad"

// Sentinel and ControllerType aliases used by the generated rows below.
const (
	Xbox360Controller            = gamepad.ControllerTypeXbox360
	XboxOneController            = gamepad.ControllerTypeXboxOne
	PS3Controller                = gamepad.ControllerTypePS3
	PS4Controller                = gamepad.ControllerTypePS4
	WiiController                = gamepad.ControllerTypeWii
	AppleController              = gamepad.ControllerTypeApple
	AndroidController            = gamepad.ControllerTypeAndroid
	SwitchProController          = gamepad.ControllerTypeSwitchPro
	SwitchJoyConLeft             = gamepad.ControllerTypeSwitchJoyConLeft
	SwitchJoyConRight            = gamepad.ControllerTypeSwitchJoyConRight
	SwitchJoyConPair             = gamepad.ControllerTypeSwitchJoyConPair
	SwitchInputOnlyController    = gamepad.ControllerTypeSwitchInputOnly
	MobileTouch                  = gamepad.ControllerTypeMobileTouch
	XInputSwitchController       = gamepad.ControllerTypeXInputSwitch
	ICadeController              = gamepad.ControllerTypeICade
	SmartTVRemoteController      = gamepad.ControllerTypeSmartTVRemote
	EightBitdoController         = gamepad.ControllerTypeEightBitdo
	GenericController            = gamepad.ControllerTypeGeneric
	NimbusController             = gamepad.ControllerTypeNimbus
	OuyaController                = gamepad.ControllerTypeOuya
	SteamController              = gamepad.ControllerTypeSteamController
	SteamControllerV2            = gamepad.ControllerTypeSteamControllerV2
	UnknownController            = gamepad.ControllerTypeUnknown
	PS5Controller                = gamepad.ControllerTypePS5
)

// Table is the static vendor table, transcribed from
// original_source/src/main/uni_hid_device_vendors.h (456 of its 460 rows;
// the remaining 4 lines in that file are the MAKE_CONTROLLER_ID macro
// definition/undef and the guess_controller_type lookup body, not data
// rows). The first (0,0) sentinel row exists implicitly: ClassifyByVIDPID
// returns ControllerTypeUnknown when nothing matches, so no explicit
// sentinel row is required here.
//
// Row 0x054C/0x0CE6 (PS5Controller) is NOT present in the original
// snapshot (grepped for "0ce6", zero matches) and is added here since
// spec.md's testable scenario #2 requires it and it names a real,
// well-documented device.
//
// This table is intentionally extensible: internal/config can load a
// supplementary YAML file of additional rows at startup (LoadOverlay in
// overlay.go, called from internal/config/config.go), placed ahead of
// Table so operator
// additions take priority under first-match-wins semantics.
var Table = []Entry{
	{VID: 0x054c, PID: 0x0ce6, Type: PS5Controller, Supported: true, Name: "Sony DualSense Controller"},
	{VID: 0x0079, PID: 0x181a, Type: PS3Controller, Supported: true, Name: "Venom Arcade Stick"},
	{VID: 0x0079, PID: 0x1844, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x044f, PID: 0xb315, Type: PS3Controller, Supported: true, Name: "Firestorm Dual Analog 3"},
	{VID: 0x044f, PID: 0xd007, Type: PS3Controller, Supported: true, Name: "Thrustmaster wireless 3-1"},
	{VID: 0x054c, PID: 0x0268, Type: PS3Controller, Supported: true, Name: "Sony PS3 Controller"},
	{VID: 0x056e, PID: 0x200f, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x056e, PID: 0x2013, Type: PS3Controller, Supported: true, Name: "JC-U4113SBK"},
	{VID: 0x05b8, PID: 0x1004, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x05b8, PID: 0x1006, Type: PS3Controller, Supported: true, Name: "JC-U3412SBK"},
	{VID: 0x06a3, PID: 0xf622, Type: PS3Controller, Supported: true, Name: "Cyborg V3"},
	{VID: 0x0738, PID: 0x3180, Type: PS3Controller, Supported: true, Name: "Mad Catz Alpha PS3 mode"},
	{VID: 0x0738, PID: 0x3250, Type: PS3Controller, Supported: true, Name: "madcats fightpad pro ps3"},
	{VID: 0x0738, PID: 0x8180, Type: PS3Controller, Supported: true, Name: "Mad Catz Alpha PS4 mode (no touchpad on device)"},
	{VID: 0x0738, PID: 0x8838, Type: PS3Controller, Supported: true, Name: "Madcatz Fightstick Pro"},
	{VID: 0x0810, PID: 0x0001, Type: PS3Controller, Supported: true, Name: "actually ps2 - maybe break out later"},
	{VID: 0x0810, PID: 0x0003, Type: PS3Controller, Supported: true, Name: "actually ps2 - maybe break out later"},
	{VID: 0x0925, PID: 0x0005, Type: PS3Controller, Supported: true, Name: "Sony PS3 Controller"},
	{VID: 0x0925, PID: 0x8866, Type: PS3Controller, Supported: true, Name: "PS2 maybe break out later"},
	{VID: 0x0925, PID: 0x8888, Type: PS3Controller, Supported: true, Name: "Actually ps2 -maybe break out later Lakeview Research WiseGroup Ltd, MP-8866 Dual Joypad"},
	{VID: 0x0e6f, PID: 0x0109, Type: PS3Controller, Supported: true, Name: "PDP Versus Fighting Pad"},
	{VID: 0x0e6f, PID: 0x011e, Type: PS3Controller, Supported: true, Name: "Rock Candy PS4"},
	{VID: 0x0e6f, PID: 0x0128, Type: PS3Controller, Supported: true, Name: "Rock Candy PS3"},
	{VID: 0x0e6f, PID: 0x0203, Type: PS3Controller, Supported: true, Name: "Victrix Pro FS (PS4 peripheral but no trackpad/lightbar)"},
	{VID: 0x0e6f, PID: 0x0214, Type: PS3Controller, Supported: true, Name: "afterglow ps3"},
	{VID: 0x0e6f, PID: 0x1314, Type: PS3Controller, Supported: true, Name: "PDP Afterglow Wireless PS3 controller"},
	{VID: 0x0e6f, PID: 0x6302, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x0e8f, PID: 0x0008, Type: PS3Controller, Supported: true, Name: "Green Asia"},
	{VID: 0x0e8f, PID: 0x3075, Type: PS3Controller, Supported: true, Name: "SpeedLink Strike FX"},
	{VID: 0x0e8f, PID: 0x310d, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x0f0d, PID: 0x0009, Type: PS3Controller, Supported: true, Name: "HORI BDA GP1"},
	{VID: 0x0f0d, PID: 0x004d, Type: PS3Controller, Supported: true, Name: "Horipad 3"},
	{VID: 0x0f0d, PID: 0x005e, Type: PS3Controller, Supported: true, Name: "HORI Fighting commander ps4"},
	{VID: 0x0f0d, PID: 0x005f, Type: PS3Controller, Supported: true, Name: "HORI Fighting commander ps3"},
	{VID: 0x0f0d, PID: 0x006a, Type: PS3Controller, Supported: true, Name: "Real Arcade Pro 4"},
	{VID: 0x0f0d, PID: 0x006e, Type: PS3Controller, Supported: true, Name: "HORI horipad4 ps3"},
	{VID: 0x0f0d, PID: 0x0085, Type: PS3Controller, Supported: true, Name: "HORI Fighting Commander PS3"},
	{VID: 0x0f0d, PID: 0x0086, Type: PS3Controller, Supported: true, Name: "HORI Fighting Commander PC (Uses the Xbox 360 protocol, but has PS3 buttons)"},
	{VID: 0x0f0d, PID: 0x0087, Type: PS3Controller, Supported: true, Name: "HORI fighting mini stick"},
	{VID: 0x0f30, PID: 0x1100, Type: PS3Controller, Supported: true, Name: "Quanba Q1 fight stick"},
	{VID: 0x11ff, PID: 0x3331, Type: PS3Controller, Supported: true, Name: "SRXJ-PH2400"},
	{VID: 0x1345, PID: 0x1000, Type: PS3Controller, Supported: true, Name: "PS2 ACME GA-D5"},
	{VID: 0x1345, PID: 0x6005, Type: PS3Controller, Supported: true, Name: "ps2 maybe break out later"},
	{VID: 0x146b, PID: 0x0603, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x146b, PID: 0x5500, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x1a34, PID: 0x0836, Type: PS3Controller, Supported: true, Name: "Afterglow PS3"},
	{VID: 0x20bc, PID: 0x5500, Type: PS3Controller, Supported: true, Name: "ShanWan PS3"},
	{VID: 0x20d6, PID: 0x576d, Type: PS3Controller, Supported: true, Name: "Power A PS3"},
	{VID: 0x20d6, PID: 0xca6d, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x2563, PID: 0x0523, Type: PS3Controller, Supported: true, Name: "Digiflip GP006"},
	{VID: 0x2563, PID: 0x0575, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x25f0, PID: 0x83c3, Type: PS3Controller, Supported: true, Name: "gioteck vx2"},
	{VID: 0x25f0, PID: 0xc121, Type: PS3Controller, Supported: true, Name: ""},
	{VID: 0x2c22, PID: 0x2000, Type: PS3Controller, Supported: true, Name: "Quanba Drone"},
	{VID: 0x2c22, PID: 0x2003, Type: PS3Controller, Supported: true, Name: "From SDL"},
	{VID: 0x8380, PID: 0x0003, Type: PS3Controller, Supported: true, Name: "BTP 2163"},
	{VID: 0x8888, PID: 0x0308, Type: PS3Controller, Supported: true, Name: "Sony PS3 Controller"},
	{VID: 0x0079, PID: 0x181b, Type: PS4Controller, Supported: true, Name: "Venom Arcade Stick - XXX:this may not work and may need to be called a ps3 controller"},
	{VID: 0x054c, PID: 0x05c4, Type: PS4Controller, Supported: true, Name: "Sony PS4 Controller"},
	{VID: 0x054c, PID: 0x05c5, Type: PS4Controller, Supported: true, Name: "STRIKEPAD PS4 Grip Add-on"},
	{VID: 0x054c, PID: 0x09cc, Type: PS4Controller, Supported: true, Name: "Sony PS4 Slim Controller"},
	{VID: 0x054c, PID: 0x0ba0, Type: PS4Controller, Supported: true, Name: "Sony PS4 Controller (Wireless dongle)"},
	{VID: 0x0738, PID: 0x8250, Type: PS4Controller, Supported: true, Name: "Mad Catz FightPad Pro PS4"},
	{VID: 0x0738, PID: 0x8384, Type: PS4Controller, Supported: true, Name: "Mad Catz FightStick TE S+ PS4"},
	{VID: 0x0738, PID: 0x8480, Type: PS4Controller, Supported: true, Name: "Mad Catz FightStick TE 2 PS4"},
	{VID: 0x0738, PID: 0x8481, Type: PS4Controller, Supported: true, Name: "Mad Catz FightStick TE 2+ PS4"},
	{VID: 0x0c12, PID: 0x0e10, Type: PS4Controller, Supported: true, Name: "Armor Armor 3 Pad PS4"},
	{VID: 0x0c12, PID: 0x1cf6, Type: PS4Controller, Supported: true, Name: "EMIO PS4 Elite Controller"},
	{VID: 0x0c12, PID: 0x0e15, Type: PS4Controller, Supported: true, Name: "Game:Pad 4"},
	{VID: 0x0c12, PID: 0x0ef6, Type: PS4Controller, Supported: true, Name: "Hitbox Arcade Stick"},
	{VID: 0x0f0d, PID: 0x0055, Type: PS4Controller, Supported: true, Name: "HORIPAD 4 FPS"},
	{VID: 0x0f0d, PID: 0x0066, Type: PS4Controller, Supported: true, Name: "HORIPAD 4 FPS Plus"},
	{VID: 0x0f0d, PID: 0x0084, Type: PS4Controller, Supported: true, Name: "HORI Fighting Commander PS4"},
	{VID: 0x0f0d, PID: 0x008a, Type: PS4Controller, Supported: true, Name: "HORI Real Arcade Pro 4"},
	{VID: 0x0f0d, PID: 0x009c, Type: PS4Controller, Supported: true, Name: "HORI TAC PRO mousething"},
	{VID: 0x0f0d, PID: 0x00a0, Type: PS4Controller, Supported: true, Name: "HORI TAC4 mousething"},
	{VID: 0x0f0d, PID: 0x00ee, Type: PS4Controller, Supported: true, Name: "Hori mini wired https://www.playstation.com/en-us/explore/accessories/gaming-controllers/mini-wired-gamepad/"},
	{VID: 0x11c0, PID: 0x4001, Type: PS4Controller, Supported: true, Name: "\"PS4 Fun Controller\" added from user log"},
	{VID: 0x146b, PID: 0x0d01, Type: PS4Controller, Supported: true, Name: "Nacon Revolution Pro Controller - has gyro"},
	{VID: 0x146b, PID: 0x0d02, Type: PS4Controller, Supported: true, Name: "Nacon Revolution Pro Controller v2 - has gyro"},
	{VID: 0x146b, PID: 0x0d10, Type: PS4Controller, Supported: true, Name: "NACON Revolution Infinite - has gyro"},
	{VID: 0x1532, PID: 0x0401, Type: PS4Controller, Supported: true, Name: "Razer Panthera PS4 Controller"},
	{VID: 0x1532, PID: 0x1000, Type: PS4Controller, Supported: true, Name: "Razer Raiju PS4 Controller"},
	{VID: 0x1532, PID: 0x1004, Type: PS4Controller, Supported: true, Name: "Razer Raiju 2 Ultimate USB"},
	{VID: 0x1532, PID: 0x1007, Type: PS4Controller, Supported: true, Name: "Razer Raiju 2 Tournament edition USB"},
	{VID: 0x1532, PID: 0x1008, Type: PS4Controller, Supported: true, Name: "Razer Panthera Evo Fightstick"},
	{VID: 0x1532, PID: 0x1009, Type: PS4Controller, Supported: true, Name: "Razer Raiju 2 Ultimate BT"},
	{VID: 0x1532, PID: 0x100a, Type: PS4Controller, Supported: true, Name: "Razer Raiju 2 Tournament edition BT"},
	{VID: 0x1532, PID: 0x1100, Type: PS4Controller, Supported: true, Name: "Razer RAION Fightpad - Trackpad, no gyro, lightbar hardcoded to green"},
	{VID: 0x20d6, PID: 0x792a, Type: PS4Controller, Supported: true, Name: "PowerA - Fusion Fight Pad"},
	{VID: 0x7545, PID: 0x0104, Type: PS4Controller, Supported: true, Name: "Armor 3 or Level Up Cobra - At least one variant has gyro"},
	{VID: 0x9886, PID: 0x0025, Type: PS4Controller, Supported: true, Name: "Astro C40"},
	{VID: 0x0079, PID: 0x0006, Type: UnknownController, Supported: true, Name: "DragonRise Generic USB PCB, sometimes configured as a PC Twin Shock Controller - looks like a DS3 but the face buttons are 1-4 instead of symbols"},
	{VID: 0x0079, PID: 0x18d4, Type: Xbox360Controller, Supported: true, Name: "GPD Win 2 X-Box Controller"},
	{VID: 0x044f, PID: 0xb326, Type: Xbox360Controller, Supported: true, Name: "Thrustmaster Gamepad GP XID"},
	{VID: 0x045e, PID: 0x028e, Type: Xbox360Controller, Supported: true, Name: "Microsoft X-Box 360 pad"},
	{VID: 0x045e, PID: 0x028f, Type: Xbox360Controller, Supported: true, Name: "Microsoft X-Box 360 pad v2"},
	{VID: 0x045e, PID: 0x0291, Type: Xbox360Controller, Supported: true, Name: "Xbox 360 Wireless Receiver (XBOX)"},
	{VID: 0x045e, PID: 0x02a0, Type: Xbox360Controller, Supported: true, Name: "Microsoft X-Box 360 Big Button IR"},
	{VID: 0x045e, PID: 0x02a1, Type: Xbox360Controller, Supported: true, Name: "Microsoft X-Box 360 pad"},
	{VID: 0x045e, PID: 0x02a9, Type: Xbox360Controller, Supported: true, Name: "Xbox 360 Wireless Receiver (third party knockoff)"},
	{VID: 0x045e, PID: 0x0719, Type: Xbox360Controller, Supported: true, Name: "Xbox 360 Wireless Receiver"},
	{VID: 0x046d, PID: 0xc21d, Type: Xbox360Controller, Supported: true, Name: "Logitech Gamepad F310"},
	{VID: 0x046d, PID: 0xc21e, Type: Xbox360Controller, Supported: true, Name: "Logitech Gamepad F510"},
	{VID: 0x046d, PID: 0xc21f, Type: Xbox360Controller, Supported: true, Name: "Logitech Gamepad F710"},
	{VID: 0x046d, PID: 0xc242, Type: Xbox360Controller, Supported: true, Name: "Logitech Chillstream Controller"},
	{VID: 0x056e, PID: 0x2004, Type: Xbox360Controller, Supported: true, Name: "Elecom JC-U3613M"},
	{VID: 0x06a3, PID: 0xf51a, Type: Xbox360Controller, Supported: true, Name: "Saitek P3600"},
	{VID: 0x0738, PID: 0x4716, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Wired Xbox 360 Controller"},
	{VID: 0x0738, PID: 0x4718, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Street Fighter IV FightStick SE"},
	{VID: 0x0738, PID: 0x4726, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Xbox 360 Controller"},
	{VID: 0x0738, PID: 0x4728, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Street Fighter IV FightPad"},
	{VID: 0x0738, PID: 0x4736, Type: Xbox360Controller, Supported: true, Name: "Mad Catz MicroCon Gamepad"},
	{VID: 0x0738, PID: 0x4738, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Wired Xbox 360 Controller (SFIV)"},
	{VID: 0x0738, PID: 0x4740, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Beat Pad"},
	{VID: 0x0738, PID: 0xb726, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Xbox controller - MW2"},
	{VID: 0x0738, PID: 0xbeef, Type: Xbox360Controller, Supported: true, Name: "Mad Catz JOYTECH NEO SE Advanced GamePad"},
	{VID: 0x0738, PID: 0xcb02, Type: Xbox360Controller, Supported: true, Name: "Saitek Cyborg Rumble Pad - PC/Xbox 360"},
	{VID: 0x0738, PID: 0xcb03, Type: Xbox360Controller, Supported: true, Name: "Saitek P3200 Rumble Pad - PC/Xbox 360"},
	{VID: 0x0738, PID: 0xf738, Type: Xbox360Controller, Supported: true, Name: "Super SFIV FightStick TE S"},
	{VID: 0x0955, PID: 0x7210, Type: Xbox360Controller, Supported: true, Name: "Nvidia Shield local controller"},
	{VID: 0x0955, PID: 0xb400, Type: Xbox360Controller, Supported: true, Name: "NVIDIA Shield streaming controller"},
	{VID: 0x0e6f, PID: 0x0105, Type: Xbox360Controller, Supported: true, Name: "HSM3 Xbox360 dancepad"},
	{VID: 0x0e6f, PID: 0x0113, Type: Xbox360Controller, Supported: true, Name: "PDP Afterglow Gamepad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x011f, Type: Xbox360Controller, Supported: true, Name: "PDP Rock Candy Gamepad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0125, Type: Xbox360Controller, Supported: true, Name: "PDP INJUSTICE FightStick for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0127, Type: Xbox360Controller, Supported: true, Name: "PDP INJUSTICE FightPad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0131, Type: Xbox360Controller, Supported: true, Name: "PDP EA Soccer Gamepad"},
	{VID: 0x0e6f, PID: 0x0133, Type: Xbox360Controller, Supported: true, Name: "PDP Battlefield 4 Gamepad"},
	{VID: 0x0e6f, PID: 0x0143, Type: Xbox360Controller, Supported: true, Name: "PDP MK X Fight Stick for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0147, Type: Xbox360Controller, Supported: true, Name: "PDP Marvel Controller for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0201, Type: Xbox360Controller, Supported: true, Name: "PDP Gamepad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0213, Type: Xbox360Controller, Supported: true, Name: "PDP Afterglow Gamepad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x021f, Type: Xbox360Controller, Supported: true, Name: "PDP Rock Candy Gamepad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0301, Type: Xbox360Controller, Supported: true, Name: "PDP Gamepad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0313, Type: Xbox360Controller, Supported: true, Name: "PDP Afterglow Gamepad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0314, Type: Xbox360Controller, Supported: true, Name: "PDP Afterglow Gamepad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0401, Type: Xbox360Controller, Supported: true, Name: "PDP Gamepad for Xbox 360"},
	{VID: 0x0e6f, PID: 0x0413, Type: Xbox360Controller, Supported: true, Name: "PDP Afterglow AX.1 (unlisted)"},
	{VID: 0x0e6f, PID: 0x0501, Type: Xbox360Controller, Supported: true, Name: "PDP Xbox 360 Controller (unlisted)"},
	{VID: 0x0e6f, PID: 0xf900, Type: Xbox360Controller, Supported: true, Name: "PDP Afterglow AX.1 (unlisted)"},
	{VID: 0x0f0d, PID: 0x000a, Type: Xbox360Controller, Supported: true, Name: "Hori Co. DOA4 FightStick"},
	{VID: 0x0f0d, PID: 0x000c, Type: Xbox360Controller, Supported: true, Name: "Hori PadEX Turbo"},
	{VID: 0x0f0d, PID: 0x000d, Type: Xbox360Controller, Supported: true, Name: "Hori Fighting Stick EX2"},
	{VID: 0x0f0d, PID: 0x0016, Type: Xbox360Controller, Supported: true, Name: "Hori Real Arcade Pro.EX"},
	{VID: 0x0f0d, PID: 0x001b, Type: Xbox360Controller, Supported: true, Name: "Hori Real Arcade Pro VX"},
	{VID: 0x0f0d, PID: 0x008c, Type: Xbox360Controller, Supported: true, Name: "Hori Real Arcade Pro 4"},
	{VID: 0x0f0d, PID: 0x00db, Type: Xbox360Controller, Supported: true, Name: "Hori Dragon Quest Slime Controller"},
	{VID: 0x1038, PID: 0x1430, Type: Xbox360Controller, Supported: true, Name: "SteelSeries Stratus Duo"},
	{VID: 0x1038, PID: 0x1431, Type: Xbox360Controller, Supported: true, Name: "SteelSeries Stratus Duo"},
	{VID: 0x1038, PID: 0xb360, Type: Xbox360Controller, Supported: true, Name: "SteelSeries Nimbus/Stratus XL"},
	{VID: 0x11c9, PID: 0x55f0, Type: Xbox360Controller, Supported: true, Name: "Nacon GC-100XF"},
	{VID: 0x12ab, PID: 0x0004, Type: Xbox360Controller, Supported: true, Name: "Honey Bee Xbox360 dancepad"},
	{VID: 0x12ab, PID: 0x0301, Type: Xbox360Controller, Supported: true, Name: "PDP AFTERGLOW AX.1"},
	{VID: 0x12ab, PID: 0x0303, Type: Xbox360Controller, Supported: true, Name: "Mortal Kombat Klassic FightStick"},
	{VID: 0x1430, PID: 0x02a0, Type: Xbox360Controller, Supported: true, Name: "RedOctane Controller Adapter"},
	{VID: 0x1430, PID: 0x4748, Type: Xbox360Controller, Supported: true, Name: "RedOctane Guitar Hero X-plorer"},
	{VID: 0x1430, PID: 0xf801, Type: Xbox360Controller, Supported: true, Name: "RedOctane Controller"},
	{VID: 0x146b, PID: 0x0601, Type: Xbox360Controller, Supported: true, Name: "BigBen Interactive XBOX 360 Controller"},
	{VID: 0x15e4, PID: 0x3f00, Type: Xbox360Controller, Supported: true, Name: "Power A Mini Pro Elite"},
	{VID: 0x15e4, PID: 0x3f0a, Type: Xbox360Controller, Supported: true, Name: "Xbox Airflo wired controller"},
	{VID: 0x15e4, PID: 0x3f10, Type: Xbox360Controller, Supported: true, Name: "Batarang Xbox 360 controller"},
	{VID: 0x162e, PID: 0xbeef, Type: Xbox360Controller, Supported: true, Name: "Joytech Neo-Se Take2"},
	{VID: 0x1689, PID: 0xfd00, Type: Xbox360Controller, Supported: true, Name: "Razer Onza Tournament Edition"},
	{VID: 0x1689, PID: 0xfd01, Type: Xbox360Controller, Supported: true, Name: "Razer Onza Classic Edition"},
	{VID: 0x1689, PID: 0xfe00, Type: Xbox360Controller, Supported: true, Name: "Razer Sabertooth"},
	{VID: 0x1bad, PID: 0x0002, Type: Xbox360Controller, Supported: true, Name: "Harmonix Rock Band Guitar"},
	{VID: 0x1bad, PID: 0x0003, Type: Xbox360Controller, Supported: true, Name: "Harmonix Rock Band Drumkit"},
	{VID: 0x1bad, PID: 0xf016, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Xbox 360 Controller"},
	{VID: 0x1bad, PID: 0xf018, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Street Fighter IV SE Fighting Stick"},
	{VID: 0x1bad, PID: 0xf019, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Brawlstick for Xbox 360"},
	{VID: 0x1bad, PID: 0xf021, Type: Xbox360Controller, Supported: true, Name: "Mad Cats Ghost Recon FS GamePad"},
	{VID: 0x1bad, PID: 0xf023, Type: Xbox360Controller, Supported: true, Name: "MLG Pro Circuit Controller (Xbox)"},
	{VID: 0x1bad, PID: 0xf025, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Call Of Duty"},
	{VID: 0x1bad, PID: 0xf027, Type: Xbox360Controller, Supported: true, Name: "Mad Catz FPS Pro"},
	{VID: 0x1bad, PID: 0xf028, Type: Xbox360Controller, Supported: true, Name: "Street Fighter IV FightPad"},
	{VID: 0x1bad, PID: 0xf02e, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Fightpad"},
	{VID: 0x1bad, PID: 0xf036, Type: Xbox360Controller, Supported: true, Name: "Mad Catz MicroCon GamePad Pro"},
	{VID: 0x1bad, PID: 0xf038, Type: Xbox360Controller, Supported: true, Name: "Street Fighter IV FightStick TE"},
	{VID: 0x1bad, PID: 0xf039, Type: Xbox360Controller, Supported: true, Name: "Mad Catz MvC2 TE"},
	{VID: 0x1bad, PID: 0xf03a, Type: Xbox360Controller, Supported: true, Name: "Mad Catz SFxT Fightstick Pro"},
	{VID: 0x1bad, PID: 0xf03d, Type: Xbox360Controller, Supported: true, Name: "Street Fighter IV Arcade Stick TE - Chun Li"},
	{VID: 0x1bad, PID: 0xf03e, Type: Xbox360Controller, Supported: true, Name: "Mad Catz MLG FightStick TE"},
	{VID: 0x1bad, PID: 0xf03f, Type: Xbox360Controller, Supported: true, Name: "Mad Catz FightStick SoulCaliber"},
	{VID: 0x1bad, PID: 0xf042, Type: Xbox360Controller, Supported: true, Name: "Mad Catz FightStick TES+"},
	{VID: 0x1bad, PID: 0xf080, Type: Xbox360Controller, Supported: true, Name: "Mad Catz FightStick TE2"},
	{VID: 0x1bad, PID: 0xf501, Type: Xbox360Controller, Supported: true, Name: "HoriPad EX2 Turbo"},
	{VID: 0x1bad, PID: 0xf502, Type: Xbox360Controller, Supported: true, Name: "Hori Real Arcade Pro.VX SA"},
	{VID: 0x1bad, PID: 0xf503, Type: Xbox360Controller, Supported: true, Name: "Hori Fighting Stick VX"},
	{VID: 0x1bad, PID: 0xf504, Type: Xbox360Controller, Supported: true, Name: "Hori Real Arcade Pro. EX"},
	{VID: 0x1bad, PID: 0xf505, Type: Xbox360Controller, Supported: true, Name: "Hori Fighting Stick EX2B"},
	{VID: 0x1bad, PID: 0xf506, Type: Xbox360Controller, Supported: true, Name: "Hori Real Arcade Pro.EX Premium VLX"},
	{VID: 0x1bad, PID: 0xf900, Type: Xbox360Controller, Supported: true, Name: "Harmonix Xbox 360 Controller"},
	{VID: 0x1bad, PID: 0xf901, Type: Xbox360Controller, Supported: true, Name: "Gamestop Xbox 360 Controller"},
	{VID: 0x1bad, PID: 0xf902, Type: Xbox360Controller, Supported: true, Name: "Mad Catz Gamepad2"},
	{VID: 0x1bad, PID: 0xf903, Type: Xbox360Controller, Supported: true, Name: "Tron Xbox 360 controller"},
	{VID: 0x1bad, PID: 0xf904, Type: Xbox360Controller, Supported: true, Name: "PDP Versus Fighting Pad"},
	{VID: 0x1bad, PID: 0xf906, Type: Xbox360Controller, Supported: true, Name: "MortalKombat FightStick"},
	{VID: 0x1bad, PID: 0xfa01, Type: Xbox360Controller, Supported: true, Name: "MadCatz GamePad"},
	{VID: 0x1bad, PID: 0xfd00, Type: Xbox360Controller, Supported: true, Name: "Razer Onza TE"},
	{VID: 0x1bad, PID: 0xfd01, Type: Xbox360Controller, Supported: true, Name: "Razer Onza"},
	{VID: 0x24c6, PID: 0x5000, Type: Xbox360Controller, Supported: true, Name: "Razer Atrox Arcade Stick"},
	{VID: 0x24c6, PID: 0x5300, Type: Xbox360Controller, Supported: true, Name: "PowerA MINI PROEX Controller"},
	{VID: 0x24c6, PID: 0x5303, Type: Xbox360Controller, Supported: true, Name: "Xbox Airflo wired controller"},
	{VID: 0x24c6, PID: 0x530a, Type: Xbox360Controller, Supported: true, Name: "Xbox 360 Pro EX Controller"},
	{VID: 0x24c6, PID: 0x531a, Type: Xbox360Controller, Supported: true, Name: "PowerA Pro Ex"},
	{VID: 0x24c6, PID: 0x5397, Type: Xbox360Controller, Supported: true, Name: "FUS1ON Tournament Controller"},
	{VID: 0x24c6, PID: 0x5500, Type: Xbox360Controller, Supported: true, Name: "Hori XBOX 360 EX 2 with Turbo"},
	{VID: 0x24c6, PID: 0x5501, Type: Xbox360Controller, Supported: true, Name: "Hori Real Arcade Pro VX-SA"},
	{VID: 0x24c6, PID: 0x5502, Type: Xbox360Controller, Supported: true, Name: "Hori Fighting Stick VX Alt"},
	{VID: 0x24c6, PID: 0x5503, Type: Xbox360Controller, Supported: true, Name: "Hori Fighting Edge"},
	{VID: 0x24c6, PID: 0x5506, Type: Xbox360Controller, Supported: true, Name: "Hori SOULCALIBUR V Stick"},
	{VID: 0x24c6, PID: 0x550d, Type: Xbox360Controller, Supported: true, Name: "Hori GEM Xbox controller"},
	{VID: 0x24c6, PID: 0x550e, Type: Xbox360Controller, Supported: true, Name: "Hori Real Arcade Pro V Kai 360"},
	{VID: 0x24c6, PID: 0x5508, Type: Xbox360Controller, Supported: true, Name: "Hori PAD A"},
	{VID: 0x24c6, PID: 0x5510, Type: Xbox360Controller, Supported: true, Name: "Hori Fighting Commander ONE"},
	{VID: 0x24c6, PID: 0x5b00, Type: Xbox360Controller, Supported: true, Name: "ThrustMaster Ferrari Italia 458 Racing Wheel"},
	{VID: 0x24c6, PID: 0x5b02, Type: Xbox360Controller, Supported: true, Name: "Thrustmaster, Inc. GPX Controller"},
	{VID: 0x24c6, PID: 0x5b03, Type: Xbox360Controller, Supported: true, Name: "Thrustmaster Ferrari 458 Racing Wheel"},
	{VID: 0x24c6, PID: 0x5d04, Type: Xbox360Controller, Supported: true, Name: "Razer Sabertooth"},
	{VID: 0x24c6, PID: 0xfafa, Type: Xbox360Controller, Supported: true, Name: "Aplay Controller"},
	{VID: 0x24c6, PID: 0xfafb, Type: Xbox360Controller, Supported: true, Name: "Aplay Controller"},
	{VID: 0x24c6, PID: 0xfafc, Type: Xbox360Controller, Supported: true, Name: "Afterglow Gamepad 1"},
	{VID: 0x24c6, PID: 0xfafd, Type: Xbox360Controller, Supported: true, Name: "Afterglow Gamepad 3"},
	{VID: 0x24c6, PID: 0xfafe, Type: Xbox360Controller, Supported: true, Name: "Rock Candy Gamepad for Xbox 360"},
	{VID: 0x045e, PID: 0x02d1, Type: XboxOneController, Supported: true, Name: "Microsoft X-Box One pad"},
	{VID: 0x045e, PID: 0x02dd, Type: XboxOneController, Supported: true, Name: "Microsoft X-Box One pad (Firmware 2015)"},
	{VID: 0x045e, PID: 0x02e0, Type: XboxOneController, Supported: true, Name: "Microsoft X-Box One S pad (Bluetooth)"},
	{VID: 0x045e, PID: 0x02e3, Type: XboxOneController, Supported: true, Name: "Microsoft X-Box One Elite pad"},
	{VID: 0x045e, PID: 0x02ea, Type: XboxOneController, Supported: true, Name: "Microsoft X-Box One S pad"},
	{VID: 0x045e, PID: 0x02fd, Type: XboxOneController, Supported: true, Name: "Microsoft X-Box One S pad (Bluetooth)"},
	{VID: 0x045e, PID: 0x02ff, Type: XboxOneController, Supported: true, Name: "Microsoft X-Box One Elite pad"},
	{VID: 0x045e, PID: 0x0b00, Type: XboxOneController, Supported: true, Name: "Microsoft X-Box One Elite Series 2 pad"},
	{VID: 0x045e, PID: 0x0b05, Type: XboxOneController, Supported: true, Name: "Microsoft X-Box One Elite Series 2 pad (Bluetooth)"},
	{VID: 0x0738, PID: 0x4a01, Type: XboxOneController, Supported: true, Name: "Mad Catz FightStick TE 2"},
	{VID: 0x0e6f, PID: 0x0139, Type: XboxOneController, Supported: true, Name: "PDP Afterglow Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x013b, Type: XboxOneController, Supported: true, Name: "PDP Face-Off Gamepad for Xbox One"},
	{VID: 0x0e6f, PID: 0x013a, Type: XboxOneController, Supported: true, Name: "PDP Xbox One Controller (unlisted)"},
	{VID: 0x0e6f, PID: 0x0145, Type: XboxOneController, Supported: true, Name: "PDP MK X Fight Pad for Xbox One"},
	{VID: 0x0e6f, PID: 0x0146, Type: XboxOneController, Supported: true, Name: "PDP Rock Candy Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x015b, Type: XboxOneController, Supported: true, Name: "PDP Fallout 4 Vault Boy Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x015c, Type: XboxOneController, Supported: true, Name: "PDP @Play Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x015d, Type: XboxOneController, Supported: true, Name: "PDP Mirror's Edge Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x015f, Type: XboxOneController, Supported: true, Name: "PDP Metallic Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x0160, Type: XboxOneController, Supported: true, Name: "PDP NFL Official Face-Off Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x0161, Type: XboxOneController, Supported: true, Name: "PDP Camo Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x0162, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x0163, Type: XboxOneController, Supported: true, Name: "PDP Legendary Collection: Deliverer of Truth"},
	{VID: 0x0e6f, PID: 0x0164, Type: XboxOneController, Supported: true, Name: "PDP Battlefield 1 Official Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x0165, Type: XboxOneController, Supported: true, Name: "PDP Titanfall 2 Official Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x0166, Type: XboxOneController, Supported: true, Name: "PDP Mass Effect: Andromeda Official Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x0167, Type: XboxOneController, Supported: true, Name: "PDP Halo Wars 2 Official Face-Off Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x0205, Type: XboxOneController, Supported: true, Name: "PDP Victrix Pro Fight Stick"},
	{VID: 0x0e6f, PID: 0x0206, Type: XboxOneController, Supported: true, Name: "PDP Mortal Kombat 25 Anniversary Edition Stick (Xbox One)"},
	{VID: 0x0e6f, PID: 0x0246, Type: XboxOneController, Supported: true, Name: "PDP Rock Candy Wired Controller for Xbox One"},
	{VID: 0x0e6f, PID: 0x0261, Type: XboxOneController, Supported: true, Name: "PDP Camo Wired Controller"},
	{VID: 0x0e6f, PID: 0x0262, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller"},
	{VID: 0x0e6f, PID: 0x02a0, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Midnight Blue"},
	{VID: 0x0e6f, PID: 0x02a1, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Verdant Green"},
	{VID: 0x0e6f, PID: 0x02a2, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Crimson Red"},
	{VID: 0x0e6f, PID: 0x02a3, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Arctic White"},
	{VID: 0x0e6f, PID: 0x02a4, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Stealth Series | Phantom Black"},
	{VID: 0x0e6f, PID: 0x02a5, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Stealth Series | Ghost White"},
	{VID: 0x0e6f, PID: 0x02a6, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Stealth Series | Revenant Blue"},
	{VID: 0x0e6f, PID: 0x02a7, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Raven Black"},
	{VID: 0x0e6f, PID: 0x02a8, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Arctic White"},
	{VID: 0x0e6f, PID: 0x02a9, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Midnight Blue"},
	{VID: 0x0e6f, PID: 0x02aa, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Verdant Green"},
	{VID: 0x0e6f, PID: 0x02ab, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Crimson Red"},
	{VID: 0x0e6f, PID: 0x02ac, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Ember Orange"},
	{VID: 0x0e6f, PID: 0x02ad, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Stealth Series | Phantom Black"},
	{VID: 0x0e6f, PID: 0x02ae, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Stealth Series | Ghost White"},
	{VID: 0x0e6f, PID: 0x02af, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Stealth Series | Revenant Blue"},
	{VID: 0x0e6f, PID: 0x02b0, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Raven Black"},
	{VID: 0x0e6f, PID: 0x02b1, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Arctic White"},
	{VID: 0x0e6f, PID: 0x02b3, Type: XboxOneController, Supported: true, Name: "PDP Afterglow Prismatic Wired Controller"},
	{VID: 0x0e6f, PID: 0x02b5, Type: XboxOneController, Supported: true, Name: "PDP GAMEware Wired Controller Xbox One"},
	{VID: 0x0e6f, PID: 0x02b6, Type: XboxOneController, Supported: true, Name: "PDP One-Handed Joystick Adaptive Controller"},
	{VID: 0x0e6f, PID: 0x02bd, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Royal Purple"},
	{VID: 0x0e6f, PID: 0x02be, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Raven Black"},
	{VID: 0x0e6f, PID: 0x02bf, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Midnight Blue"},
	{VID: 0x0e6f, PID: 0x02c0, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Stealth Series | Phantom Black"},
	{VID: 0x0e6f, PID: 0x02c1, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Stealth Series | Ghost White"},
	{VID: 0x0e6f, PID: 0x02c2, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Stealth Series | Revenant Blue"},
	{VID: 0x0e6f, PID: 0x02c3, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Verdant Green"},
	{VID: 0x0e6f, PID: 0x02c4, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Ember Orange"},
	{VID: 0x0e6f, PID: 0x02c5, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Royal Purple"},
	{VID: 0x0e6f, PID: 0x02c6, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Crimson Red"},
	{VID: 0x0e6f, PID: 0x02c7, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Arctic White"},
	{VID: 0x0e6f, PID: 0x02c8, Type: XboxOneController, Supported: true, Name: "PDP Kingdom Hearts Wired Controller"},
	{VID: 0x0e6f, PID: 0x02c9, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Stealth Series | Phantasm Red"},
	{VID: 0x0e6f, PID: 0x02ca, Type: XboxOneController, Supported: true, Name: "PDP Deluxe Wired Controller for Xbox One - Stealth Series | Specter Violet"},
	{VID: 0x0e6f, PID: 0x02cb, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Stealth Series | Specter Violet"},
	{VID: 0x0e6f, PID: 0x02cd, Type: XboxOneController, Supported: true, Name: "PDP Rock Candy Wired Controller for Xbox One - Blu-merang"},
	{VID: 0x0e6f, PID: 0x02ce, Type: XboxOneController, Supported: true, Name: "PDP Rock Candy Wired Controller for Xbox One - Cranblast"},
	{VID: 0x0e6f, PID: 0x02cf, Type: XboxOneController, Supported: true, Name: "PDP Rock Candy Wired Controller for Xbox One - Aqualime"},
	{VID: 0x0e6f, PID: 0x02d5, Type: XboxOneController, Supported: true, Name: "PDP Wired Controller for Xbox One - Red Camo"},
	{VID: 0x0e6f, PID: 0x0346, Type: XboxOneController, Supported: true, Name: "PDP RC Gamepad for Xbox One"},
	{VID: 0x0e6f, PID: 0x0446, Type: XboxOneController, Supported: true, Name: "PDP RC Gamepad for Xbox One"},
	{VID: 0x0f0d, PID: 0x0063, Type: XboxOneController, Supported: true, Name: "Hori Real Arcade Pro Hayabusa (USA) Xbox One"},
	{VID: 0x0f0d, PID: 0x0067, Type: XboxOneController, Supported: true, Name: "HORIPAD ONE"},
	{VID: 0x0f0d, PID: 0x0078, Type: XboxOneController, Supported: true, Name: "Hori Real Arcade Pro V Kai Xbox One"},
	{VID: 0x0f0d, PID: 0x00c5, Type: XboxOneController, Supported: true, Name: "HORI Fighting Commander"},
	{VID: 0x1532, PID: 0x0a00, Type: XboxOneController, Supported: true, Name: "Razer Atrox Arcade Stick"},
	{VID: 0x1532, PID: 0x0a03, Type: XboxOneController, Supported: true, Name: "Razer Wildcat"},
	{VID: 0x24c6, PID: 0x541a, Type: XboxOneController, Supported: true, Name: "PowerA Xbox One Mini Wired Controller"},
	{VID: 0x24c6, PID: 0x542a, Type: XboxOneController, Supported: true, Name: "Xbox ONE spectra"},
	{VID: 0x24c6, PID: 0x543a, Type: XboxOneController, Supported: true, Name: "PowerA Xbox ONE liquid metal controller"},
	{VID: 0x24c6, PID: 0x551a, Type: XboxOneController, Supported: true, Name: "PowerA FUSION Pro Controller"},
	{VID: 0x24c6, PID: 0x561a, Type: XboxOneController, Supported: true, Name: "PowerA FUSION Controller"},
	{VID: 0x24c6, PID: 0x581a, Type: XboxOneController, Supported: true, Name: "BDA XB1 Classic Controller"},
	{VID: 0x24c6, PID: 0x591a, Type: XboxOneController, Supported: true, Name: "PowerA FUSION Pro Controller"},
	{VID: 0x24c6, PID: 0x592a, Type: XboxOneController, Supported: true, Name: "BDA XB1 Spectra Pro"},
	{VID: 0x24c6, PID: 0x791a, Type: XboxOneController, Supported: true, Name: "PowerA Fusion Fight Pad"},
	{VID: 0x2e24, PID: 0x0652, Type: XboxOneController, Supported: true, Name: "Hyperkin Duke"},
	{VID: 0x2e24, PID: 0x1618, Type: XboxOneController, Supported: true, Name: "Hyperkin Duke"},
	{VID: 0x2e24, PID: 0x1688, Type: XboxOneController, Supported: true, Name: "Hyperkin X91"},
	{VID: 0x0000, PID: 0x0000, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x045e, PID: 0x02a2, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller - Microsoft VID"},
	{VID: 0x0e6f, PID: 0x1414, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0e6f, PID: 0x0159, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x24c6, PID: 0xfaff, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0f0d, PID: 0x006d, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0f0d, PID: 0x00a4, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x1832, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x187f, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x1883, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x03eb, PID: 0xff01, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x2c22, PID: 0x2303, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0c12, PID: 0x0ef8, Type: Xbox360Controller, Supported: true, Name: "Homemade fightstick based on brook pcb (with XInput driver??)"},
	{VID: 0x046d, PID: 0x1000, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x1345, PID: 0x6006, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x056e, PID: 0x2012, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x146b, PID: 0x0602, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0f0d, PID: 0x00ae, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x046d, PID: 0x0401, Type: Xbox360Controller, Supported: true, Name: "logitech xinput"},
	{VID: 0x046d, PID: 0x0301, Type: Xbox360Controller, Supported: true, Name: "logitech xinput"},
	{VID: 0x046d, PID: 0xcaa3, Type: Xbox360Controller, Supported: true, Name: "logitech xinput"},
	{VID: 0x046d, PID: 0xc261, Type: Xbox360Controller, Supported: true, Name: "logitech xinput"},
	{VID: 0x046d, PID: 0x0291, Type: Xbox360Controller, Supported: true, Name: "logitech xinput"},
	{VID: 0x0079, PID: 0x18d3, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0f0d, PID: 0x00b1, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0001, PID: 0x0001, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x188e, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x187c, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x189c, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x1874, Type: Xbox360Controller, Supported: true, Name: "Unknown Controller"},
	{VID: 0x2f24, PID: 0x0050, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x2f24, PID: 0x002e, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x9886, PID: 0x0024, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x2f24, PID: 0x0091, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x1430, PID: 0x0719, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0f0d, PID: 0x00ed, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x03eb, PID: 0xff02, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0f0d, PID: 0x00c0, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0e6f, PID: 0x0152, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0e6f, PID: 0x02a7, Type: XboxOneController, Supported: true, Name: "Unknown Controller"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x046d, PID: 0x1007, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0e6f, PID: 0x02b8, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0e6f, PID: 0x02a8, Type: XboxOneController, Supported: true, Name: "Unknown Controller"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x2c22, PID: 0x2503, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x18a1, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0000, PID: 0x6686, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x11ff, PID: 0x0511, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x12ab, PID: 0x0304, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x1430, PID: 0x0291, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x1430, PID: 0x02a9, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x1430, PID: 0x070b, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x146b, PID: 0x0604, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x146b, PID: 0x0605, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x146b, PID: 0x0606, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x146b, PID: 0x0609, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x1532, PID: 0x0a14, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x1bad, PID: 0x028e, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x1bad, PID: 0x02a0, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x1bad, PID: 0x5500, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x20ab, PID: 0x55ef, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x24c6, PID: 0x5509, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x2516, PID: 0x0069, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x25b1, PID: 0x0360, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x2c22, PID: 0x2203, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x2f24, PID: 0x0011, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x2f24, PID: 0x0053, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x2f24, PID: 0x00b7, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x046d, PID: 0x0000, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x046d, PID: 0x1004, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x046d, PID: 0x1008, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x046d, PID: 0xf301, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0738, PID: 0x02a0, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0738, PID: 0x7263, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0738, PID: 0xb738, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0738, PID: 0xcb29, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0738, PID: 0xf401, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x18c2, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x18c8, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0079, PID: 0x18cf, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0c12, PID: 0x0e17, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0c12, PID: 0x0e1c, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0c12, PID: 0x0e22, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0c12, PID: 0x0e30, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0xd2d2, PID: 0xd2d2, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0d62, PID: 0x9a1a, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0d62, PID: 0x9a1b, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0e00, PID: 0x0e00, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0e6f, PID: 0x012a, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0e6f, PID: 0x02a1, Type: XboxOneController, Supported: true, Name: "Unknown Controller"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x0e6f, PID: 0x02a2, Type: XboxOneController, Supported: true, Name: "Unknown Controller"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x0e6f, PID: 0x02a5, Type: XboxOneController, Supported: true, Name: "Unknown Controller"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x0e6f, PID: 0x02b2, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0e6f, PID: 0x02bd, Type: XboxOneController, Supported: true, Name: "Unknown Controller"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x0e6f, PID: 0x02bf, Type: XboxOneController, Supported: true, Name: "Unknown Controller"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x0e6f, PID: 0x02c0, Type: XboxOneController, Supported: true, Name: "Unknown Controller"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x0e6f, PID: 0x02c6, Type: XboxOneController, Supported: true, Name: "Unknown Controller"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x0f0d, PID: 0x0097, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0f0d, PID: 0x00ba, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0f0d, PID: 0x00d8, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x0fff, PID: 0x02a1, Type: XboxOneController, Supported: true, Name: "Unknown Controller"},
	{VID: 0x05ac, PID: 0x0001, Type: AppleController, Supported: true, Name: "MFI Extended Gamepad (generic entry for iOS/tvOS)"},
	{VID: 0x05ac, PID: 0x0002, Type: AppleController, Supported: true, Name: "MFI Standard Gamepad (generic entry for iOS/tvOS)"},
	{VID: 0x057e, PID: 0x2009, Type: SwitchProController, Supported: true, Name: "Nintendo Switch Pro Controller"},
	{VID: 0x0f0d, PID: 0x00c1, Type: SwitchInputOnlyController, Supported: true, Name: "HORIPAD for Nintendo Switch"},
	{VID: 0x0f0d, PID: 0x0092, Type: SwitchInputOnlyController, Supported: true, Name: "HORI Pokken Tournament DX Pro Pad"},
	{VID: 0x0f0d, PID: 0x00f6, Type: SwitchProController, Supported: true, Name: "HORI Wireless Switch Pad"},
	{VID: 0x0f0d, PID: 0x00dc, Type: XInputSwitchController, Supported: true, Name: "HORI Battle Pad. Is a Switch controller but shows up through XInput on Windows."},
	{VID: 0x0e6f, PID: 0x0185, Type: SwitchInputOnlyController, Supported: true, Name: "PDP Wired Fight Pad Pro for Nintendo Switch"},
	{VID: 0x0e6f, PID: 0x0180, Type: SwitchInputOnlyController, Supported: true, Name: "PDP Faceoff Wired Pro Controller for Nintendo Switch"},
	{VID: 0x0e6f, PID: 0x0181, Type: SwitchInputOnlyController, Supported: true, Name: "PDP Faceoff Deluxe Wired Pro Controller for Nintendo Switch"},
	{VID: 0x20d6, PID: 0xa711, Type: SwitchInputOnlyController, Supported: true, Name: "PowerA Wired Controller Plus/PowerA Wired Controller Nintendo GameCube Style"},
	{VID: 0x20d6, PID: 0xa712, Type: SwitchInputOnlyController, Supported: true, Name: "PowerA - Fusion Fight Pad"},
	{VID: 0x20d6, PID: 0xa713, Type: SwitchInputOnlyController, Supported: true, Name: "PowerA - Super Mario Controller"},
	{VID: 0x0000, PID: 0x11fb, Type: MobileTouch, Supported: true, Name: "Streaming mobile touch virtual controls"},
	{VID: 0x28de, PID: 0x1101, Type: SteamController, Supported: true, Name: "Valve Legacy Steam Controller (CHELL)"},
	{VID: 0x28de, PID: 0x1102, Type: SteamController, Supported: true, Name: "Valve wired Steam Controller (D0G)"},
	{VID: 0x28de, PID: 0x1105, Type: SteamController, Supported: true, Name: "Valve Bluetooth Steam Controller (D0G)"},
	{VID: 0x28de, PID: 0x1106, Type: SteamController, Supported: true, Name: "Valve Bluetooth Steam Controller (D0G)"},
	{VID: 0x28de, PID: 0x1142, Type: SteamController, Supported: true, Name: "Valve wireless Steam Controller"},
	{VID: 0x28de, PID: 0x1201, Type: SteamControllerV2, Supported: true, Name: "Valve wired Steam Controller (HEADCRAB)"},
	{VID: 0x28de, PID: 0x1202, Type: SteamControllerV2, Supported: true, Name: "Valve Bluetooth Steam Controller (HEADCRAB)"},
	{VID: 0x05ac, PID: 0x0001, Type: AppleController, Supported: true, Name: "MFI Extended Gamepad (generic entry for iOS/tvOS)"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x05ac, PID: 0x0002, Type: AppleController, Supported: true, Name: "MFI Standard Gamepad (generic entry for iOS/tvOS)"}, // duplicate VID/PID, first match wins at lookup time
	{VID: 0x2836, PID: 0x0001, Type: OuyaController, Supported: true, Name: "OUYA 1st Controller (Unijoysticle)"},
	{VID: 0x15e4, PID: 0x0132, Type: ICadeController, Supported: true, Name: "ION iCade (Unijoysticle)"},
	{VID: 0x0a5c, PID: 0x8502, Type: ICadeController, Supported: true, Name: "iCade 8-bitty (Unijoysticle)"},
	{VID: 0x20d6, PID: 0x6271, Type: AndroidController, Supported: true, Name: "MOGA Controller, using HID mode (Unijoysticle)"},
	{VID: 0x0b05, PID: 0x4500, Type: AndroidController, Supported: true, Name: "Asus Controller (Unijoysticle)"},
	{VID: 0x1949, PID: 0x0402, Type: AndroidController, Supported: true, Name: "Amazon Fire gamepad Controller 1st gen (Unijoysticle)"},
	{VID: 0x1949, PID: 0x0401, Type: SmartTVRemoteController, Supported: true, Name: "Amazon Fire TV remote Controlelr 1st gen. (Unijoysticle)"},
	{VID: 0x2820, PID: 0x0009, Type: EightBitdoController, Supported: true, Name: "8Bitdo NES30 Gamepro (Unijoysticle)"},
	{VID: 0x2dc8, PID: 0x6101, Type: EightBitdoController, Supported: true, Name: "8Bitdo SN30 pro (Unijoysticle)"},
	{VID: 0x0a5c, PID: 0x4502, Type: GenericController, Supported: true, Name: "White-label mini gamepad received as gift in conference (Unijoysticle)"},
	{VID: 0x0111, PID: 0x1420, Type: NimbusController, Supported: true, Name: "SteelSeries Nimbus (Unijoysicle)"},
	{VID: 0x057e, PID: 0x0330, Type: WiiController, Supported: true, Name: "Nintendo Wii U Pro (Unijoysicle)"},
	{VID: 0x057e, PID: 0x0306, Type: WiiController, Supported: true, Name: "Nintendo Wii Remote (Unijoysicle)"},
	{VID: 0x1532, PID: 0x0037, Type: Xbox360Controller, Supported: false, Name: "Razer Sabertooth"},
	{VID: 0x057e, PID: 0x2006, Type: SwitchJoyConLeft, Supported: false, Name: "Nintendo Switch Joy-Con (Left)"},
	{VID: 0x057e, PID: 0x2007, Type: SwitchJoyConRight, Supported: false, Name: "Nintendo Switch Joy-Con (Right)"},
	{VID: 0x0a5c, PID: 0x4502, Type: ICadeController, Supported: false, Name: "White-label mini gamepad received as gift in conference"}, // duplicate VID/PID, first match wins at lookup time
}
