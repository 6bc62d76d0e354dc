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

// Package sdlinput connects the monitor package to the SDL game controller
// subsystem. The Subsystem type opens controllers and loads mapping files, and
// the EventSource type translates SDL events into userinput events.
//
// SDL must only be used from the main thread. NewSubsystem() locks the calling
// goroutine to its thread, and the EventSource must be used from the same
// goroutine.
package sdlinput
