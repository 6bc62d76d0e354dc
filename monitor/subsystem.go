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

import "github.com/jetsetilly/padprobe/userinput"

// Controller is an opened game controller. It is owned by the Monitor from the
// moment it is opened until it is removed, at which point it is closed.
type Controller interface {
	ID() userinput.ID

	// the mapping string used by the controller subsystem to translate the
	// underlying joystick into the standard controller layout
	Mapping() string

	Close()
}

// Subsystem is the controller subsystem of the input library.
type Subsystem interface {
	// Open the device at the index. The index is the one given by a
	// userinput.EventDeviceAdded event.
	Open(index int) (Controller, error)

	// LoadMappings adds the controller mappings in the file to the
	// subsystem. Returns the number of mappings that were added.
	LoadMappings(path string) (int, error)
}

// Source supplies events from the input library.
type Source interface {
	// Wait blocks until an event is available. It may return nil if no event
	// has arrived within an implementation defined period.
	Wait() userinput.Event

	// Poll returns the next queued event or nil if there are none. It never
	// blocks.
	Poll() userinput.Event
}

// Device describes an attached joystick device, whether or not it has been
// opened.
type Device struct {
	Index int
	Name  string

	// whether the subsystem recognises the device as a game controller
	IsController bool

	// the mapping for the device. empty if IsController is false
	Mapping string
}
