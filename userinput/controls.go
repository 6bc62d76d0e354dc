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

package userinput

import "fmt"

// Axis identifies the axis of a standard game controller.
type Axis int

// List of valid Axis values.
const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)

// Axes lists every Axis value in order.
var Axes = []Axis{
	AxisLeftX, AxisLeftY,
	AxisRightX, AxisRightY,
	AxisTriggerLeft, AxisTriggerRight,
}

func (a Axis) String() string {
	switch a {
	case AxisLeftX:
		return "LeftX"
	case AxisLeftY:
		return "LeftY"
	case AxisRightX:
		return "RightX"
	case AxisRightY:
		return "RightY"
	case AxisTriggerLeft:
		return "TriggerLeft"
	case AxisTriggerRight:
		return "TriggerRight"
	}

	// values outside of the list are never created by the input library
	// translation but a Stringer must return something
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Button identifies the button of a standard game controller.
type Button int

// List of valid Button values.
const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

// Buttons lists every Button value in order.
var Buttons = []Button{
	ButtonA, ButtonB, ButtonX, ButtonY,
	ButtonBack, ButtonGuide, ButtonStart,
	ButtonLeftStick, ButtonRightStick,
	ButtonLeftShoulder, ButtonRightShoulder,
	ButtonDPadUp, ButtonDPadDown, ButtonDPadLeft, ButtonDPadRight,
}

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	case ButtonBack:
		return "Back"
	case ButtonGuide:
		return "Guide"
	case ButtonStart:
		return "Start"
	case ButtonLeftStick:
		return "LeftStick"
	case ButtonRightStick:
		return "RightStick"
	case ButtonLeftShoulder:
		return "LeftShoulder"
	case ButtonRightShoulder:
		return "RightShoulder"
	case ButtonDPadUp:
		return "DPadUp"
	case ButtonDPadDown:
		return "DPadDown"
	case ButtonDPadLeft:
		return "DPadLeft"
	case ButtonDPadRight:
		return "DPadRight"
	}

	return fmt.Sprintf("Button(%d)", int(b))
}
