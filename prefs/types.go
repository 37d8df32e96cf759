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

package prefs

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// Pref is implemented by all the types in the prefs package.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Value // bool
	hook  func(value Value) error
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	p.value.Store(nv)
	if p.hook != nil {
		return p.hook(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHook sets the callback function to be called just after the prefs value
// is updated. The callback is called even if the value hasn't changed.
func (p *Bool) SetHook(f func(value Value) error) {
	p.hook = f
}

// String implements a string type in the prefs system.
type String struct {
	value atomic.Value // string
	hook  func(value Value) error

	// if options is not empty then the value must be one of the options.
	// comparison is case insensitive and the value is stored as it appears
	// in the options list
	options []string
}

func (p *String) String() string {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// SetOptions restricts the values the String can be set to.
func (p *String) SetOptions(options ...string) {
	p.options = options
}

// Options returns the list of permitted values. An empty list means any
// value is permitted.
func (p *String) Options() []string {
	return slices.Clone(p.options)
}

// Set new value to String type. If options have been specified then the new
// value must match one of them.
func (p *String) Set(v Value) error {
	nv := strings.TrimSpace(fmt.Sprintf("%v", v))

	if len(p.options) > 0 {
		i := slices.IndexFunc(p.options, func(o string) bool {
			return strings.EqualFold(o, nv)
		})
		if i < 0 {
			return fmt.Errorf("prefs: %q is not one of %s", nv, strings.Join(p.options, ", "))
		}
		nv = p.options[i]
	}

	p.value.Store(nv)
	if p.hook != nil {
		return p.hook(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the first option, or the empty string if
// there are no options.
func (p *String) Reset() error {
	if len(p.options) > 0 {
		return p.Set(p.options[0])
	}
	return p.Set("")
}

// SetHook sets the callback function to be called just after the prefs value
// is updated. The callback is called even if the value hasn't changed.
func (p *String) SetHook(f func(value Value) error) {
	p.hook = f
}

// Int implements an integer type in the prefs system.
type Int struct {
	value atomic.Value // int
	hook  func(value Value) error
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	p.value.Store(nv)
	if p.hook != nil {
		return p.hook(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// SetHook sets the callback function to be called just after the prefs value
// is updated. The callback is called even if the value hasn't changed.
func (p *Int) SetHook(f func(value Value) error) {
	p.hook = f
}
