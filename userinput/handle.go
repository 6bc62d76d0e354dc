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

// HandleInput is implemented by types that react to controller input. The
// functions are called by HandleUserInput() in the order in which the events
// are received.
type HandleInput interface {
	// DeviceAdded is called with the device index of a newly available
	// controller. It is the responsibility of the implementation to open the
	// device
	DeviceAdded(index int) error

	// DeviceRemoved is called with the ID of a disconnected controller. The
	// ID may not be one that the implementation knows about
	DeviceRemoved(id ID) error

	AxisMotion(id ID, axis Axis, value int16) error
	ButtonDown(id ID, button Button) error
	ButtonUp(id ID, button Button) error
}

// HandleUserInput deciphers the Event and forwards it to the HandleInput
// implementation. Returns true if the event is a quit event, in addition to
// any error returned by the handler.
//
// Events of an unknown type are ignored.
func HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	var err error

	switch ev := ev.(type) {
	case EventQuit:
		return true, nil
	case EventDeviceAdded:
		err = handle.DeviceAdded(ev.Index)
	case EventDeviceRemoved:
		err = handle.DeviceRemoved(ev.ID)
	case EventAxis:
		err = handle.AxisMotion(ev.ID, ev.Axis, ev.Value)
	case EventButton:
		if ev.Down {
			err = handle.ButtonDown(ev.ID, ev.Button)
		} else {
			err = handle.ButtonUp(ev.ID, ev.Button)
		}
	default:
	}

	return false, err
}
