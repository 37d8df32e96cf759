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

package video

import (
	"fmt"
	"strings"
)

// Collisions are the eight collision latch registers. Each register uses
// bits 7 and 6 only.
type Collisions struct {
	CXM0P  uint8
	CXM1P  uint8
	CXP0FB uint8
	CXP1FB uint8
	CXM0FB uint8
	CXM1FB uint8
	CXBLPF uint8
	CXPPMM uint8
}

// Clear all collision latches.
func (col *Collisions) Clear() {
	*col = Collisions{}
}

// Register returns the value of the collision register. The register number
// is the normalised read address, 0 to 7.
func (col Collisions) Register(n uint16) uint8 {
	switch n {
	case 0:
		return col.CXM0P
	case 1:
		return col.CXM1P
	case 2:
		return col.CXP0FB
	case 3:
		return col.CXP1FB
	case 4:
		return col.CXM0FB
	case 5:
		return col.CXM1FB
	case 6:
		return col.CXBLPF
	case 7:
		return col.CXPPMM
	}
	return 0
}

func (col Collisions) String() string {
	s := strings.Builder{}
	for i := range uint16(8) {
		s.WriteString(fmt.Sprintf("%02b ", col.Register(i)>>6))
	}
	return strings.TrimSpace(s.String())
}

const (
	d7 = 0x80
	d6 = 0x40
)

// the objects drawing at a single pixel
type objects struct {
	p0, p1, m0, m1, bl, pf bool
}

func (col *Collisions) update(o objects) {
	if o.m0 && o.p1 {
		col.CXM0P |= d7
	}
	if o.m0 && o.p0 {
		col.CXM0P |= d6
	}
	if o.m1 && o.p0 {
		col.CXM1P |= d7
	}
	if o.m1 && o.p1 {
		col.CXM1P |= d6
	}
	if o.p0 && o.pf {
		col.CXP0FB |= d7
	}
	if o.p0 && o.bl {
		col.CXP0FB |= d6
	}
	if o.p1 && o.pf {
		col.CXP1FB |= d7
	}
	if o.p1 && o.bl {
		col.CXP1FB |= d6
	}
	if o.m0 && o.pf {
		col.CXM0FB |= d7
	}
	if o.m0 && o.bl {
		col.CXM0FB |= d6
	}
	if o.m1 && o.pf {
		col.CXM1FB |= d7
	}
	if o.m1 && o.bl {
		col.CXM1FB |= d6
	}
	if o.bl && o.pf {
		col.CXBLPF |= d7
	}
	if o.p0 && o.p1 {
		col.CXPPMM |= d7
	}
	if o.m0 && o.m1 {
		col.CXPPMM |= d6
	}
}
