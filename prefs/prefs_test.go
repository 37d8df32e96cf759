// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/freya2600/prefs"
	"github.com/jetsetilly/freya2600/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(" True"))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.String(), "foo")

	v.SetOptions("ERROR", "NOP")
	test.ExpectSuccess(t, v.Set("nop"))
	test.ExpectEquality(t, v.String(), "NOP")
	test.ExpectFailure(t, v.Set("bar"))
	test.ExpectEquality(t, v.String(), "NOP")
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "ERROR")
	test.ExpectEquality(t, len(v.Options()), 2)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")
	test.ExpectSuccess(t, v.Set("10"))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set(int64(20)))
	test.ExpectEquality(t, v.Get().(int), 20)
	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectEquality(t, v.Get().(int), 20)
}

func TestHook(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHook(func(value prefs.Value) error {
		seen = value.(int)
		if seen < 0 {
			return errors.New("negative")
		}
		return nil
	})
	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, seen, 5)
	test.ExpectFailure(t, v.Set(-1))
}

func TestCommandLineStack(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// the remaining entries are sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid entries are ignored
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// groups are stacked
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestApply(t *testing.T) {
	var v prefs.String
	v.SetOptions("AUTO", "F8")

	ok, err := prefs.Apply("cartridge.mapping", &v)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	prefs.PushCommandLineStack("cartridge.mapping::f8; other::1")
	ok, err = prefs.Apply("cartridge.mapping", &v)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.String(), "F8")

	// the value is used only once
	_, ok = prefs.GetCommandLinePref("cartridge.mapping")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::1")

	prefs.PushCommandLineStack("cartridge.mapping::XX")
	_, err = prefs.Apply("cartridge.mapping", &v)
	test.ExpectFailure(t, err)
	prefs.PopCommandLineStack()
}
