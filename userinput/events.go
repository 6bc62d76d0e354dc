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

// ID is the instance ID given to a controller by the input library when it is
// opened. The ID is stable for as long as the controller remains connected.
type ID uint32

// Event represents all the different type of events that can occur.
type Event interface{}

// EventQuit is sent when the input library has been asked to quit (a window
// close or an interrupt signal, for example).
type EventQuit struct{}

// EventDeviceAdded is sent when a controller becomes available. The Index is
// the device index and not an ID. The ID is only known once the device has
// been opened.
type EventDeviceAdded struct {
	Index int
}

// EventDeviceRemoved is sent when an opened controller is disconnected.
type EventDeviceRemoved struct {
	ID ID
}

// EventAxis is sent when an axis of a controller has moved.
type EventAxis struct {
	ID    ID
	Axis  Axis
	Value int16
}

// EventButton is sent when a controller button has been pressed or released.
type EventButton struct {
	ID     ID
	Button Button
	Down   bool
}
