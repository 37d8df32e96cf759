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

package specification_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/freya2600/hardware/television/specification"
	"github.com/jetsetilly/freya2600/test"
)

func TestNTSC(t *testing.T) {
	spec := specification.SpecNTSC
	test.ExpectEquality(t, spec.ScanlinesTotal, 262)
	test.ExpectEquality(t, spec.ScanlineTop, 40)
	test.ExpectEquality(t, spec.ScanlineBottom, 232)
	test.ExpectEquality(t, spec.ScreenWidth(), 160)
	test.ExpectEquality(t, spec.ScreenHeight(), 192)
	test.ExpectEquality(t, specification.HorizClksScanline, specification.HorizClksHBlank+specification.HorizClksVisible)
}

func TestGetColor(t *testing.T) {
	spec := specification.SpecNTSC
	test.ExpectEquality(t, spec.GetColor(0), color.RGBA{R: 0, G: 0, B: 0, A: 255})
	test.ExpectEquality(t, spec.GetColor(0x80), spec.GetColor(0))
	for i := range specification.PaletteNTSC {
		test.ExpectEquality(t, specification.PaletteNTSC[i].A, 255, i)
	}
}

func TestSearchSpec(t *testing.T) {
	spec, err := specification.SearchSpec("auto")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, spec.ID, "NTSC")

	_, err = specification.SearchSpec("SECAM")
	test.ExpectFailure(t, err)
}
