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

package hardware

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/freya2600/cartridgeloader"
	"github.com/jetsetilly/freya2600/hardware/cpu"
	"github.com/jetsetilly/freya2600/hardware/memory"
	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/hardware/preferences"
	"github.com/jetsetilly/freya2600/hardware/riot"
	"github.com/jetsetilly/freya2600/hardware/television/specification"
	"github.com/jetsetilly/freya2600/hardware/tia"
	"github.com/jetsetilly/freya2600/logger"
)

// ErrNoCartridge is returned by the stepping functions if no cartridge has
// been loaded.
var ErrNoCartridge = errors.New("vcs: no cartridge attached")

// VCS struct is the main container for the emulated components of the VCS.
type VCS struct {
	Prefs *preferences.Preferences

	CPU  *cpu.CPU
	Mem  *memory.Memory
	RIOT *riot.RIOT
	TIA  *tia.TIA

	// illegal opcodes are logged once per opcode and address when the
	// preferences say that they should be treated as NOPs
	illegal logger.Once
}

// NewVCS creates a new VCS and everything associated with the hardware. It is
// used for all aspects of emulation: debugging sessions, and regular play.
//
// The preferences argument can be nil, in which case a new instance of
// preferences is created.
func NewVCS(prefs *preferences.Preferences) (*VCS, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, fmt.Errorf("vcs: %w", err)
		}
	}

	spec, err := specification.SearchSpec(prefs.Spec.String())
	if err != nil {
		return nil, fmt.Errorf("vcs: %w", err)
	}

	vcs := &VCS{
		Prefs: prefs,
		Mem:   memory.NewMemory(),
		RIOT:  riot.NewRIOT(),
	}
	vcs.CPU = cpu.NewCPU(vcs.Mem)
	vcs.TIA = tia.NewTIA(spec, vcs.Mem.Cycles)

	vcs.Mem.TIA = vcs.TIA
	vcs.Mem.RIOT = vcs.RIOT

	return vcs, nil
}

func (vcs *VCS) String() string {
	return fmt.Sprintf("%s\n%s\n%s", vcs.CPU, vcs.RIOT, vcs.TIA)
}

// LoadCartridge loads the cartridge specified by the loader and attaches it
// to the VCS. The VCS is reset after a successful load.
//
// If the Mapping field of the loader is "AUTO" then the Mapping preference is
// used to decide the bank switching scheme.
func (vcs *VCS) LoadCartridge(cl cartridgeloader.Loader) error {
	if err := cl.Load(); err != nil {
		return err
	}

	mapping := cl.Mapping
	if mapping == "" || mapping == "AUTO" {
		mapping = vcs.Prefs.Mapping.String()
	}

	cart, err := cartridge.NewCartridge(cl.Data, mapping)
	if err != nil {
		return fmt.Errorf("vcs: %w", err)
	}
	cart.Filename = cl.Filename
	cart.Hash = cl.Hash

	vcs.Mem.Attach(cart)
	logger.Logf(logger.Allow, "vcs", "attached %s (%s)", cl.ShortName(), cart)

	return vcs.Reset()
}

// Reset emulates the reset switch on the console panel:
//
//   - reset RAM and the cartridge to their starting banks
//   - reset the TIA and the RIOT
//   - reset the CPU and load the reset address into the PC
//
// The two cycles consumed by the reset vector are seen by the TIA and RIOT.
func (vcs *VCS) Reset() error {
	if vcs.Mem.Cart == nil {
		return ErrNoCartridge
	}

	vcs.Mem.Reset()
	vcs.RIOT.Reset()
	vcs.TIA.Reset()

	before := vcs.Mem.Cycles()
	vcs.CPU.Reset()
	vcs.replay(before)

	return nil
}

// Snapshot the state of the VCS sub-systems.
func (vcs *VCS) Snapshot() *State {
	return &State{
		CPU:  vcs.CPU.Snapshot(),
		Mem:  vcs.Mem.Snapshot(),
		RIOT: vcs.RIOT.Snapshot(),
		TIA:  vcs.TIA.Snapshot(),
	}
}
