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
	"testing"

	"github.com/jetsetilly/padprobe/test"
	"github.com/jetsetilly/padprobe/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateDevice(t *testing.T) {
	ev := translate(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEADDED, Which: 2})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventDeviceAdded{Index: 2}))

	ev = translate(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEREMOVED, Which: 9})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventDeviceRemoved{ID: 9}))

	ev = translate(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEREMAPPED, Which: 9})
	test.ExpectEquality(t, ev, nil)
}

func TestTranslateQuit(t *testing.T) {
	ev := translate(&sdl.QuitEvent{Type: sdl.QUIT})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventQuit{}))
}

func TestTranslateAxis(t *testing.T) {
	ev := translate(&sdl.ControllerAxisEvent{
		Type:  sdl.CONTROLLERAXISMOTION,
		Which: 7,
		Axis:  uint8(sdl.CONTROLLER_AXIS_TRIGGERRIGHT),
		Value: -32768,
	})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventAxis{
		ID:    7,
		Axis:  userinput.AxisTriggerRight,
		Value: -32768,
	}))

	// axis values outside of the table are dropped
	ev = translate(&sdl.ControllerAxisEvent{Type: sdl.CONTROLLERAXISMOTION, Which: 7, Axis: 200})
	test.ExpectEquality(t, ev, nil)
}

func TestTranslateButton(t *testing.T) {
	ev := translate(&sdl.ControllerButtonEvent{
		Type:   sdl.CONTROLLERBUTTONDOWN,
		Which:  1,
		Button: uint8(sdl.CONTROLLER_BUTTON_GUIDE),
		State:  sdl.PRESSED,
	})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventButton{
		ID:     1,
		Button: userinput.ButtonGuide,
		Down:   true,
	}))

	ev = translate(&sdl.ControllerButtonEvent{
		Type:   sdl.CONTROLLERBUTTONUP,
		Which:  1,
		Button: uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT),
		State:  sdl.RELEASED,
	})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventButton{
		ID:     1,
		Button: userinput.ButtonDPadLeft,
		Down:   false,
	}))

	ev = translate(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Which: 1, Button: 200})
	test.ExpectEquality(t, ev, nil)
}

func TestTranslateIgnored(t *testing.T) {
	ev := translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN})
	test.ExpectEquality(t, ev, nil)
}

func TestTables(t *testing.T) {
	// every axis and button has exactly one SDL equivalent
	test.ExpectEquality(t, len(axes), len(userinput.Axes))
	test.ExpectEquality(t, len(buttons), len(userinput.Buttons))

	seenAxes := make(map[userinput.Axis]bool)
	for _, a := range axes {
		seenAxes[a] = true
	}
	for _, a := range userinput.Axes {
		test.ExpectSuccess(t, seenAxes[a], a)
	}

	seenButtons := make(map[userinput.Button]bool)
	for _, b := range buttons {
		seenButtons[b] = true
	}
	for _, b := range userinput.Buttons {
		test.ExpectSuccess(t, seenButtons[b], b)
	}
}
