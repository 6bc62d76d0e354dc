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

// Package assert contains run time checks for conditions that can only be the
// result of a programming error.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the current goroutine. The result is
// different between goroutines and consistent for a given goroutine. It should
// only ever be used for assertions.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SameGoroutine panics if the current goroutine is not the one identified by
// id. The context string is included in the panic message.
func SameGoroutine(id uint64, context string) {
	if cur := GoroutineID(); cur != id {
		panic(fmt.Sprintf("%s: called from goroutine %d but must be called from goroutine %d", context, cur, id))
	}
}
