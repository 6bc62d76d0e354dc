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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "LIST")
//	p, err := md.Parse()
//
// The first sub-mode is the default and is selected when the first argument
// is not a recognised sub-mode. Sub-mode comparisons are case insensitive.
//
// Once the mode has been decided, NewMode() prepares the Modes instance for
// the flags of that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "MONITOR":
//		md.NewMode()
//		mappings := md.AddString("mappings", "", "load mappings from file")
//		md.AddAlias("m", "mappings")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//	}
//
// Flag functions return a pointer to a variable of the specified type, in the
// same way as the flag package. AddAlias() gives an existing flag a second,
// usually shorter, name. Both names set the same variable.
//
// Non-flag arguments that remain after parsing are available with the
// RemainingArgs() and GetArg() functions.
package modalflag
