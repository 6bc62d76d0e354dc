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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() and are identified by the pattern
// string used to create them:
//
//	const DeviceOpenFailed = "could not open device %d: %v"
//
//	err := curated.Errorf(DeviceOpenFailed, 0, sdl.GetError())
//
//	if curated.Is(err, DeviceOpenFailed) {
//		fmt.Println("true")
//	}
//
// Is() only checks the outermost error. Has() checks the whole chain, where
// the chain is made up of curated errors passed as values to Errorf():
//
//	f := curated.Errorf("fatal: %v", err)
//
//	curated.Is(f, DeviceOpenFailed)  // false
//	curated.Has(f, DeviceOpenFailed) // true
//
// IsAny() returns true for any error created by Errorf(). Errors that are not
// curated can be thought of as unexpected errors.
//
// The Error() function removes adjacent duplicate parts from the message,
// where parts are separated by the sub-string ": ". This means that wrapping
// an error in a pattern with the same prefix does not result in messages such
// as "sdl: sdl: no such device".
//
// Patterns should be declared as named constants next to the code that
// produces them.
package curated
