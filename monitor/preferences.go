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

package monitor

import (
	"fmt"

	"github.com/jetsetilly/padprobe/curated"
	"github.com/jetsetilly/padprobe/prefs"
)

// MaxDeadzone is the largest magnitude an axis value can have.
const MaxDeadzone = 32768

// InvalidDeadzone is the pattern for errors caused by a deadzone value
// outside of the range 0 to MaxDeadzone.
const InvalidDeadzone = "monitor: deadzone value out of range (%d)"

// Preferences for the Monitor type.
type Preferences struct {
	// print the mapping string of a controller when it is added
	ShowMapping prefs.Bool

	// axis events with a magnitude less than or equal to the deadzone value
	// are not printed. a value of zero means that every axis event is printed
	Deadzone prefs.Int
}

// names of the preferences when they are set from the command line
const (
	prefShowMapping = "showmapping"
	prefDeadzone    = "deadzone"
)

// NewPreferences returns preferences set to their default values. Every
// Monitor has its own Preferences but an instance can be prepared before the
// Monitor is created and assigned to the Prefs field.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.Deadzone.SetHookPre(func(v prefs.Value) error {
		d := v.(int)
		if d < 0 || d > MaxDeadzone {
			return curated.Errorf(InvalidDeadzone, d)
		}
		return nil
	})
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.ShowMapping.Reset()
	_ = p.Deadzone.Reset()
}

// FromCommandLine sets preferences from the current group of the prefs
// command line stack.
func (p *Preferences) FromCommandLine() error {
	if _, err := prefs.Override(prefShowMapping, &p.ShowMapping); err != nil {
		return err
	}
	if _, err := prefs.Override(prefDeadzone, &p.Deadzone); err != nil {
		return err
	}
	return nil
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s::%s; %s::%s", prefShowMapping, p.ShowMapping.String(), prefDeadzone, p.Deadzone.String())
}
