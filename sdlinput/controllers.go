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
	"github.com/jetsetilly/padprobe/curated"
	"github.com/jetsetilly/padprobe/logger"
	"github.com/jetsetilly/padprobe/monitor"
	"github.com/jetsetilly/padprobe/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

type controller struct {
	pad *sdl.GameController
	id  userinput.ID
}

func (c *controller) ID() userinput.ID {
	return c.id
}

func (c *controller) Mapping() string {
	return c.pad.Mapping()
}

func (c *controller) Close() {
	c.pad.Close()
}

// Open implements the monitor.Subsystem interface.
func (sub *Subsystem) Open(index int) (monitor.Controller, error) {
	pad := sdl.GameControllerOpen(index)
	if pad == nil {
		return nil, curated.Errorf(DeviceOpenFailed, index, sdl.GetError())
	}

	c := &controller{
		pad: pad,
		id:  userinput.ID(pad.Joystick().InstanceID()),
	}

	logger.Logf(logger.Allow, "sdl", "gamepad: %s (index %d, id %d)", pad.Name(), index, c.id)

	return c, nil
}

// LoadMappings implements the monitor.Subsystem interface.
func (sub *Subsystem) LoadMappings(path string) (int, error) {
	n := sdl.GameControllerAddMappingsFromFile(path)
	if n < 0 {
		return 0, curated.Errorf(MappingLoadFailed, path, sdl.GetError())
	}
	return n, nil
}

// Devices returns a description of every joystick currently known to SDL.
func (sub *Subsystem) Devices() []monitor.Device {
	var devices []monitor.Device

	for i := 0; i < sdl.NumJoysticks(); i++ {
		d := monitor.Device{
			Index:        i,
			IsController: sdl.IsGameController(i),
		}

		if d.IsController {
			d.Name = sdl.GameControllerNameForIndex(i)

			// the mapping is only available from an open controller
			if pad := sdl.GameControllerOpen(i); pad != nil {
				d.Mapping = pad.Mapping()
				pad.Close()
			} else {
				logger.Log(logger.Allow, "sdl", curated.Errorf(DeviceOpenFailed, i, sdl.GetError()))
			}
		} else {
			d.Name = sdl.JoystickNameForIndex(i)
		}

		devices = append(devices, d)
	}

	if len(devices) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks/gamepads found")
	}

	return devices
}
