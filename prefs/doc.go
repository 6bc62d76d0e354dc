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

// Package prefs holds the typed preference values used to configure padprobe.
//
// Each type (Bool and Int) stores its value atomically and can have a hook
// function called before and after a new value is set. A pre hook that
// returns an error prevents the value from being updated, making it a
// convenient place to validate values.
//
// Preferences can be set from the command line with a string of key/value
// pairs. The string is parsed by PushCommandLineStack(). For example:
//
//	prefs.PushCommandLineStack("deadzone::8000; showmapping::true")
//
// Values are consumed from the top of the stack by Override() or
// GetCommandLinePref(). Whatever remains unused can be retrieved with
// PopCommandLineStack(), which is useful for warning the user about
// preference names that were not recognised.
package prefs
