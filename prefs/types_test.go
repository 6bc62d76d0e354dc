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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/padprobe/prefs"
	"github.com/jetsetilly/padprobe/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	// any string other than "true" is false
	test.ExpectSuccess(t, v.Set("yes"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("True"))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectFailure(t, v.Set(1))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestIntHooks(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Get().(int), 0)

	var post int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set("100"))
	test.ExpectEquality(t, v.Get().(int), 100)
	test.ExpectEquality(t, post, 100)

	// pre hook rejects the value and the stored value is unchanged
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 100)
	test.ExpectEquality(t, post, 100)

	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectFailure(t, v.Set(1.5))
	test.ExpectEquality(t, v.String(), "100")
}
