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

package disassembly

import (
	"fmt"
	"io"
)

// Write the disassembly of every bank to the io.Writer. Entries are written
// in address order.
func (dsm *Disassembly) Write(output io.Writer) error {
	for b := range dsm.entries {
		if err := dsm.WriteBank(output, b); err != nil {
			return err
		}
	}
	return nil
}

// WriteBank writes the disassembly of a single bank to the io.Writer.
func (dsm *Disassembly) WriteBank(output io.Writer, bank int) error {
	if bank < 0 || bank >= len(dsm.entries) {
		return fmt.Errorf("disassembly: no bank %d", bank)
	}

	if len(dsm.entries) > 1 {
		if _, err := fmt.Fprintf(output, "--- bank %d ---\n", bank); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}

	for _, e := range dsm.entries[bank] {
		if e == nil {
			continue
		}
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}

	return nil
}
