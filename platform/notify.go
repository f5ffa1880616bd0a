package platform

import "github.com/alia5/bluepad32go/gamepad"

// NotifyInit calls hooks.OnInit if hooks implements OnInitHandler.
func NotifyInit(hooks any) {
	if h, ok := hooks.(OnInitHandler); ok {
		h.OnInit()
	}
}

// NotifyInitComplete calls hooks.OnInitComplete if implemented.
func NotifyInitComplete(hooks any) {
	if h, ok := hooks.(OnInitCompleteHandler); ok {
		h.OnInitComplete()
	}
}

// NotifyDeviceConnected calls hooks.OnDeviceConnected if implemented.
func NotifyDeviceConnected(hooks any, dev DeviceInfo) {
	if h, ok := hooks.(OnDeviceConnectedHandler); ok {
		h.OnDeviceConnected(dev)
	}
}

// NotifyDeviceDisconnected calls hooks.OnDeviceDisconnected if implemented.
func NotifyDeviceDisconnected(hooks any, dev DeviceInfo) {
	if h, ok := hooks.(OnDeviceDisconnectedHandler); ok {
		h.OnDeviceDisconnected(dev)
	}
}

// NotifyDeviceReady calls hooks.OnDeviceReady if implemented.
func NotifyDeviceReady(hooks any, dev DeviceInfo) {
	if h, ok := hooks.(OnDeviceReadyHandler); ok {
		h.OnDeviceReady(dev)
	}
}

// NotifyGamepadData calls hooks.OnGamepadData if implemented.
func NotifyGamepadData(hooks any, dev DeviceInfo, gp gamepad.VirtualGamepad) {
	if h, ok := hooks.(OnGamepadDataHandler); ok {
		h.OnGamepadData(dev, gp)
	}
}

// NotifyOOBEvent calls hooks.OnOOBEvent if implemented.
func NotifyOOBEvent(hooks any, dev DeviceInfo, event OOBEvent) {
	if h, ok := hooks.(OnOOBEventHandler); ok {
		h.OnOOBEvent(dev, event)
	}
}
