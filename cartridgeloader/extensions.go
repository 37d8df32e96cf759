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

package cartridgeloader

import (
	"path"
	"slices"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised as
// cartridge data by the cartridgeloader package. Extensions other than the
// first three are the IDs of the bank switching scheme to use.
var FileExtensions = [...]string{".BIN", ".ROM", ".A26", ".2K", ".4K", ".F8", ".FA", ".F6", ".F4", ".3F"}

// ArchiveExtensions is the list of file extensions recognised as archives.
// Archives are detected by their contents where possible, so the extension is
// only used when the contents are ambiguous.
var ArchiveExtensions = [...]string{".ZIP", ".GZ", ".TGZ", ".7Z", ".RAR"}

// isCartridgeFile returns true if the filename has one of the extensions in
// the FileExtensions list.
func isCartridgeFile(filename string) bool {
	return slices.Contains(FileExtensions[:], strings.ToUpper(path.Ext(filename)))
}

// mappingFromExtension returns the bank switching scheme implied by the file
// extension. Returns "AUTO" for extensions that do not imply a scheme.
func mappingFromExtension(filename string) string {
	ext := strings.ToUpper(path.Ext(filename))
	switch ext {
	case ".2K", ".4K", ".F8", ".FA", ".F6", ".F4", ".3F":
		return ext[1:]
	}
	return "AUTO"
}
