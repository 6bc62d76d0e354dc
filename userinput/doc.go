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

// Package userinput describes the input that padprobe receives from the
// controller subsystem. It can be thought of as a translation layer between
// the input library (SDL) and the rest of the program. As such, this package
// hides the details of the input library from the code that reacts to the
// input.
//
// The Event types are created by the input library implementation and are
// passed to HandleUserInput(), which forwards each event to the appropriate
// function of a HandleInput implementation.
//
// The Axis and Button types enumerate the controls of a standard game
// controller. Every enumerant has a fixed display name, returned by the
// String() function.
package userinput
