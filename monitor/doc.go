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

// Package monitor keeps track of opened game controllers and prints a line of
// text for every event it receives.
//
// The Monitor type implements the userinput.HandleInput interface. Controllers
// are opened by the Subsystem when a device is added and are kept in a
// registry, keyed by the instance ID reported by the opened controller, until
// the device is removed.
//
// Output is written to two io.Writer instances. The first receives a line for
// every add, remove, axis and button event. The second receives a line for
// every recoverable error: a device that could not be opened or a mappings
// file that could not be loaded. Neither of these errors stops the monitor.
//
// The Run() function is the polling loop. Each iteration waits for events and
// then handles every queued event before waiting again. A quit event ends the
// loop immediately, even if there are further events in the queue.
package monitor
