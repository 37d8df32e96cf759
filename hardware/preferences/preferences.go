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

// Package preferences contains the preferences that change the behaviour of
// the emulated hardware. Values are set to their defaults on creation and
// then overridden by anything in the command line stack of the prefs
// package.
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/hardware/television/specification"
	"github.com/jetsetilly/freya2600/prefs"
)

// Policy options for the IllegalOpcodes preference.
const (
	IllegalError = "ERROR"
	IllegalNOP   = "NOP"
)

// Keys used in the command line stack.
const (
	KeyIllegalOpcodes = "hardware.illegalOpcodes"
	KeyMapping        = "cartridge.mapping"
	KeySpec           = "television.spec"
)

// Preferences for the emulated hardware.
type Preferences struct {
	// what to do when the CPU encounters an opcode that is not in the
	// instruction set. ERROR stops the emulation with cpu.ErrIllegalOpcode.
	// NOP logs the opcode once and continues with the next byte
	IllegalOpcodes prefs.String

	// the bank switching scheme used when loading a cartridge. AUTO selects
	// the scheme from the size of the cartridge data
	Mapping prefs.String

	// television specification
	Spec prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.IllegalOpcodes.SetOptions(IllegalError, IllegalNOP)
	p.Mapping.SetOptions(cartridge.SchemeList...)
	p.Spec.SetOptions(append([]string{"AUTO"}, specification.SpecList...)...)

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	for _, a := range []struct {
		key  string
		pref prefs.Pref
	}{
		{key: KeyIllegalOpcodes, pref: &p.IllegalOpcodes},
		{key: KeyMapping, pref: &p.Mapping},
		{key: KeySpec, pref: &p.Spec},
	} {
		if _, err := prefs.Apply(a.key, a.pref); err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.IllegalOpcodes.Set(IllegalError); err != nil {
		return err
	}
	if err := p.Mapping.Set("AUTO"); err != nil {
		return err
	}
	return p.Spec.Set("AUTO")
}

// IllegalAsNOP returns true if illegal opcodes should be treated as a NOP.
func (p *Preferences) IllegalAsNOP() bool {
	return p.IllegalOpcodes.String() == IllegalNOP
}

func (p *Preferences) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s::%s; ", KeyIllegalOpcodes, p.IllegalOpcodes))
	s.WriteString(fmt.Sprintf("%s::%s; ", KeyMapping, p.Mapping))
	s.WriteString(fmt.Sprintf("%s::%s", KeySpec, p.Spec))
	return s.String()
}
