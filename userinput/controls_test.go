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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/padprobe/test"
	"github.com/jetsetilly/padprobe/userinput"
)

func TestAxisNames(t *testing.T) {
	expected := []string{"LeftX", "LeftY", "RightX", "RightY", "TriggerLeft", "TriggerRight"}

	test.DemandEquality(t, len(userinput.Axes), len(expected))
	for i, a := range userinput.Axes {
		test.ExpectEquality(t, a.String(), expected[i])
	}
}

func TestButtonNames(t *testing.T) {
	expected := []string{
		"A", "B", "X", "Y", "Back", "Guide", "Start",
		"LeftStick", "RightStick", "LeftShoulder", "RightShoulder",
		"DPadUp", "DPadDown", "DPadLeft", "DPadRight",
	}

	test.DemandEquality(t, len(userinput.Buttons), len(expected))
	for i, b := range userinput.Buttons {
		test.ExpectEquality(t, b.String(), expected[i])
	}
}

// every enumerant has exactly one non-empty name and no two enumerants share a
// name
func TestNamesInjective(t *testing.T) {
	axes := make(map[string]userinput.Axis)
	for _, a := range userinput.Axes {
		n := a.String()
		test.ExpectInequality(t, n, "")
		_, dup := axes[n]
		test.ExpectFailure(t, dup, n)
		axes[n] = a
	}
	test.ExpectEquality(t, len(axes), len(userinput.Axes))

	buttons := make(map[string]userinput.Button)
	for _, b := range userinput.Buttons {
		n := b.String()
		test.ExpectInequality(t, n, "")
		_, dup := buttons[n]
		test.ExpectFailure(t, dup, n)
		buttons[n] = b
	}
	test.ExpectEquality(t, len(buttons), len(userinput.Buttons))
}

func TestOutOfRange(t *testing.T) {
	test.ExpectEquality(t, userinput.Axis(99).String(), "Axis(99)")
	test.ExpectEquality(t, userinput.Button(-1).String(), "Button(-1)")
}
