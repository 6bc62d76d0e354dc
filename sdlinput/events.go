// This file is part of padprobe.
//
// padprobe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padprobe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padprobe.  If not, see <https://www.gnu.org/licenses/>.

package sdlinput

import (
	"github.com/jetsetilly/padprobe/assert"
	"github.com/jetsetilly/padprobe/logger"
	"github.com/jetsetilly/padprobe/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// the period in milliseconds that Wait() will block for
const waitPeriod = 500

// EventSource implements the monitor.Source interface.
type EventSource struct {
	// the goroutine that created the EventSource. SDL events must be handled
	// on the thread that initialised SDL
	goroutine uint64
}

// NewEventSource is the preferred method of initialisation for the
// EventSource type. It must be called from the same goroutine as
// NewSubsystem().
func NewEventSource() *EventSource {
	return &EventSource{
		goroutine: assert.GoroutineID(),
	}
}

// Wait implements the monitor.Source interface. Returns nil if no event
// arrives within the wait period.
func (src *EventSource) Wait() userinput.Event {
	assert.SameGoroutine(src.goroutine, "sdlinput: Wait()")

	ev := sdl.WaitEventTimeout(waitPeriod)
	if ev == nil {
		return nil
	}

	if e := translate(ev); e != nil {
		return e
	}

	return src.Poll()
}

// Poll implements the monitor.Source interface. SDL events that have no
// userinput equivalent are skipped.
func (src *EventSource) Poll() userinput.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e := translate(ev); e != nil {
			return e
		}
	}
	return nil
}

// translate returns nil for events that are not forwarded.
func translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// for added events the Which field is the device index
			return userinput.EventDeviceAdded{Index: int(ev.Which)}
		case sdl.CONTROLLERDEVICEREMOVED:
			return userinput.EventDeviceRemoved{ID: userinput.ID(ev.Which)}
		case sdl.CONTROLLERDEVICEREMAPPED:
			logger.Logf(logger.Allow, "sdlinput", "mapping updated for gamepad %d", ev.Which)
		}

	case *sdl.ControllerAxisEvent:
		axis, ok := axes[ev.Axis]
		if !ok {
			logger.Logf(logger.Allow, "sdlinput", "unsupported axis (%d) on gamepad %d", ev.Axis, ev.Which)
			return nil
		}
		return userinput.EventAxis{
			ID:    userinput.ID(ev.Which),
			Axis:  axis,
			Value: ev.Value,
		}

	case *sdl.ControllerButtonEvent:
		button, ok := buttons[ev.Button]
		if !ok {
			logger.Logf(logger.Allow, "sdlinput", "unsupported button (%d) on gamepad %d", ev.Button, ev.Which)
			return nil
		}
		return userinput.EventButton{
			ID:     userinput.ID(ev.Which),
			Button: button,
			Down:   ev.Type == sdl.CONTROLLERBUTTONDOWN,
		}
	}

	return nil
}

var axes = map[uint8]userinput.Axis{
	uint8(sdl.CONTROLLER_AXIS_LEFTX):        userinput.AxisLeftX,
	uint8(sdl.CONTROLLER_AXIS_LEFTY):        userinput.AxisLeftY,
	uint8(sdl.CONTROLLER_AXIS_RIGHTX):       userinput.AxisRightX,
	uint8(sdl.CONTROLLER_AXIS_RIGHTY):       userinput.AxisRightY,
	uint8(sdl.CONTROLLER_AXIS_TRIGGERLEFT):  userinput.AxisTriggerLeft,
	uint8(sdl.CONTROLLER_AXIS_TRIGGERRIGHT): userinput.AxisTriggerRight,
}

var buttons = map[uint8]userinput.Button{
	uint8(sdl.CONTROLLER_BUTTON_A):             userinput.ButtonA,
	uint8(sdl.CONTROLLER_BUTTON_B):             userinput.ButtonB,
	uint8(sdl.CONTROLLER_BUTTON_X):             userinput.ButtonX,
	uint8(sdl.CONTROLLER_BUTTON_Y):             userinput.ButtonY,
	uint8(sdl.CONTROLLER_BUTTON_BACK):          userinput.ButtonBack,
	uint8(sdl.CONTROLLER_BUTTON_GUIDE):         userinput.ButtonGuide,
	uint8(sdl.CONTROLLER_BUTTON_START):         userinput.ButtonStart,
	uint8(sdl.CONTROLLER_BUTTON_LEFTSTICK):     userinput.ButtonLeftStick,
	uint8(sdl.CONTROLLER_BUTTON_RIGHTSTICK):    userinput.ButtonRightStick,
	uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):  userinput.ButtonLeftShoulder,
	uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER): userinput.ButtonRightShoulder,
	uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):       userinput.ButtonDPadUp,
	uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):     userinput.ButtonDPadDown,
	uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):     userinput.ButtonDPadLeft,
	uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):    userinput.ButtonDPadRight,
}
