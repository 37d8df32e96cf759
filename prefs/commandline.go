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
	"sort"
	"strings"
)

// each entry in the stack is the set of key/value pairs from one call to
// PushCommandLineStack()
var commandLineStack []map[string]string

// PushCommandLineStack parses a preferences string and adds it to the top of
// the stack. Entries that are not of the form key::value are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		key, value, ok := strings.Cut(p, "::")
		if ok {
			group[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack removes the top of the stack. The entries that were
// not used are returned as a preferences string, sorted by key.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprintf("%s::%s", k, top[k])
	}
	return strings.Join(s, "; ")
}

// SizeCommandLineStack returns the number of entries in the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// GetCommandLinePref returns the value for the key from the top of the stack.
// The entry is removed when it is returned.
func GetCommandLinePref(key string) (string, bool) {
	if len(commandLineStack) == 0 {
		return "", false
	}
	top := commandLineStack[len(commandLineStack)-1]
	v, ok := top[key]
	if ok {
		delete(top, key)
	}
	return v, ok
}

// Apply sets the preference from the top of the command line stack if the key
// is present. Returns false if the key is not present.
func Apply(key string, p Pref) (bool, error) {
	v, ok := GetCommandLinePref(key)
	if !ok {
		return false, nil
	}
	if err := p.Set(v); err != nil {
		return true, fmt.Errorf("prefs: %s: %w", key, err)
	}
	return true, nil
}
