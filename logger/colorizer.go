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

package logger

import (
	"io"
	"os"
)

const (
	dimPen    = "\033[2m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. Entries are
// written with a dim pen so that they can be told apart from the regular
// output of the program, which shares the terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	if _, err := c.out.Write([]byte(dimPen)); err != nil {
		return 0, err
	}

	n, err := c.out.Write(p)
	if err != nil {
		return n, err
	}

	_, err = c.out.Write([]byte(normalPen))
	return n, err
}

// EchoWriter returns a writer suitable for use with SetEcho(). If the file is
// a terminal then output is colorized.
func EchoWriter(f *os.File) io.Writer {
	if isTerminal(f) {
		return NewColorizer(f)
	}
	return f
}
