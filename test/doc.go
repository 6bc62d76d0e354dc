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

// Package test contains helper functions that remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and stop the test
// immediately. Use the Demand*() variety when a failure would make the rest of
// the test meaningless, for example when a setup function returns an error.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. It is
// worth describing how nil is treated because it is not obvious: a nil value
// is a success. This is because of how errors usually work, nil meaning no
// error.
//
// The Writer type implements io.Writer and should be used to capture output.
// Writer.Compare() can then be used to test for equality.
package test
