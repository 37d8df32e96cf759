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

// Package digest contains types that produce a cryptographic hash of the
// output of the emulation. The hash can then be used to compare output from
// subsequent emulation executions - if a new hash differs from a previously
// recorded value then something has changed. We use this as the basis for
// regression tests.
//
// Hashes are chained. The hash of each frame includes the hash of the
// previous frame, so the final hash depends on every frame seen.
package digest

// Digest implementations return a cryptographic hash in response to a Hash()
// request. Generation of the hash is achieved via the type's own interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
