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
	"io"
	"sort"

	"github.com/jetsetilly/padprobe/logger"
	"github.com/jetsetilly/padprobe/userinput"
)

// Monitor prints controller events and keeps track of opened controllers.
type Monitor struct {
	Prefs *Preferences

	sub Subsystem

	// regular output and error output
	out    io.Writer
	errOut io.Writer

	// opened controllers keyed by instance ID. a key exists only between the
	// handling of an added and a removed event for that ID
	registry map[userinput.ID]Controller
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(sub Subsystem, out io.Writer, errOut io.Writer) *Monitor {
	return &Monitor{
		Prefs:    NewPreferences(),
		sub:      sub,
		out:      out,
		errOut:   errOut,
		registry: make(map[userinput.ID]Controller),
	}
}

// Registered returns true if a controller with the ID is in the registry.
func (mon *Monitor) Registered(id userinput.ID) bool {
	_, ok := mon.registry[id]
	return ok
}

// IDs returns the IDs of all registered controllers in ascending order.
func (mon *Monitor) IDs() []userinput.ID {
	ids := make([]userinput.ID, 0, len(mon.registry))
	for id := range mon.registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// End closes all registered controllers and empties the registry.
func (mon *Monitor) End() {
	for id, pad := range mon.registry {
		pad.Close()
		delete(mon.registry, id)
		logger.Logf(logger.Allow, "monitor", "closed gamepad %d", id)
	}
}

// LoadMappings asks the subsystem to load the mappings file. A failure is
// reported but is not returned as an error because the monitor can work
// without additional mappings.
func (mon *Monitor) LoadMappings(path string) error {
	n, err := mon.sub.LoadMappings(path)
	if err != nil {
		logger.Log(logger.Allow, "monitor", err)
		_, err = fmt.Fprintln(mon.errOut, "Could not load mappings file")
		return err
	}
	logger.Logf(logger.Allow, "monitor", "loaded %d mappings from %s", n, path)
	return nil
}

// DeviceAdded implements the userinput.HandleInput interface.
func (mon *Monitor) DeviceAdded(index int) error {
	pad, err := mon.sub.Open(index)
	if err != nil {
		logger.Log(logger.Allow, "monitor", err)
		_, err = fmt.Fprintf(mon.errOut, "Could not open device %d\n", index)
		return err
	}

	id := pad.ID()

	// the registry owns one handle per ID
	if prev, ok := mon.registry[id]; ok {
		prev.Close()
		logger.Logf(logger.Allow, "monitor", "gamepad %d replaced by device %d", id, index)
	}
	mon.registry[id] = pad

	_, err = fmt.Fprintf(mon.out, "Added gamepad %d\n", id)
	if err != nil {
		return err
	}

	if mon.Prefs.ShowMapping.Get().(bool) {
		_, err = fmt.Fprintf(mon.out, "mapping: %s\n", pad.Mapping())
	}

	return err
}

// DeviceRemoved implements the userinput.HandleInput interface.
func (mon *Monitor) DeviceRemoved(id userinput.ID) error {
	if pad, ok := mon.registry[id]; ok {
		pad.Close()
		delete(mon.registry, id)
	} else {
		logger.Logf(logger.Allow, "monitor", "gamepad %d removed but was never added", id)
	}

	_, err := fmt.Fprintf(mon.out, "Removed gamepad %d\n", id)
	return err
}

// AxisMotion implements the userinput.HandleInput interface.
func (mon *Monitor) AxisMotion(id userinput.ID, axis userinput.Axis, value int16) error {
	if dz := mon.Prefs.Deadzone.Get().(int); dz > 0 {
		// int conversion so that the magnitude of -32768 does not overflow
		v := int(value)
		if v < 0 {
			v = -v
		}
		if v <= dz {
			return nil
		}
	}

	_, err := fmt.Fprintf(mon.out, "id %d: axis %s = %d\n", id, axis, value)
	return err
}

// ButtonDown implements the userinput.HandleInput interface.
func (mon *Monitor) ButtonDown(id userinput.ID, button userinput.Button) error {
	_, err := fmt.Fprintf(mon.out, "id %d: button %s = down\n", id, button)
	return err
}

// ButtonUp implements the userinput.HandleInput interface.
func (mon *Monitor) ButtonUp(id userinput.ID, button userinput.Button) error {
	_, err := fmt.Fprintf(mon.out, "id %d: button %s = up\n", id, button)
	return err
}

// Run is the polling loop. It returns when a quit event is received or when
// output fails.
func (mon *Monitor) Run(src Source) error {
	for {
		for ev := src.Wait(); ev != nil; ev = src.Poll() {
			quit, err := userinput.HandleUserInput(ev, mon)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// List prints a line for each device. Devices that are recognised as game
// controllers are marked as such and, if the ShowMapping preference is set,
// the mapping is printed on the following line.
func (mon *Monitor) List(devices []Device) error {
	if len(devices) == 0 {
		_, err := fmt.Fprintln(mon.out, "No joysticks found")
		return err
	}

	for _, d := range devices {
		s := fmt.Sprintf("%d: %s", d.Index, d.Name)
		if d.IsController {
			s = fmt.Sprintf("%s (game controller)", s)
		}

		if _, err := fmt.Fprintln(mon.out, s); err != nil {
			return err
		}

		if d.IsController && mon.Prefs.ShowMapping.Get().(bool) {
			if _, err := fmt.Fprintf(mon.out, "mapping: %s\n", d.Mapping); err != nil {
				return err
			}
		}
	}

	return nil
}
