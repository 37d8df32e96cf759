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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/freya2600/prefs"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or help messages will not
// be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// the sub-modes for the next call to Parse(). the first entry is the
	// default
	subModes []string

	// the modes that have been found by calls to Parse(). never reset
	path []string

	additionalHelp string

	// raw preferences string
	rawPrefs *string

	// whether the most recent call to Parse() pushed an entry onto the prefs
	// command line stack
	pushed bool
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs starts parsing of a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
	md.rawPrefs = nil
}

// AdditionalHelp adds text to be displayed after the list of flags when help
// is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. check Mode() if sub-modes were
	// added before the call to Parse()
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the arguments for the current mode. Help messages are printed
// automatically and ParseHelp returned.
func (md *Modes) Parse() (ParseResult, error) {
	md.pushed = false

	usage := &strings.Builder{}
	md.flags.SetOutput(usage)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help(usage.String())
			return ParseHelp, nil
		}
		return ParseError, fmt.Errorf("modalflag: %w", err)
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m

				// skip over the flags already parsed and the mode argument
				md.argsIdx = len(md.args) - md.flags.NArg() + 1
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	md.pushPrefs()

	return ParseContinue, nil
}

// pushPrefs pushes the values of any preference flags onto the prefs command
// line stack. the raw preferences come first so that individual flags take
// priority
func (md *Modes) pushPrefs() {
	var s []string
	if md.rawPrefs != nil && *md.rawPrefs != "" {
		s = append(s, *md.rawPrefs)
	}
	md.flags.Visit(func(f *flag.Flag) {
		if p, ok := f.Value.(*prefValue); ok {
			s = append(s, fmt.Sprintf("%s::%s", p.key, p.value))
		}
	})

	if len(s) == 0 {
		return
	}

	prefs.PushCommandLineStack(strings.Join(s, "; "))
	md.pushed = true
}

// UnusedPrefs pops the entry pushed onto the prefs command line stack by the
// most recent call to Parse(). Any preferences that were not used are
// returned. Returns the empty string if nothing was pushed.
func (md *Modes) UnusedPrefs() string {
	if !md.pushed {
		return ""
	}
	md.pushed = false
	return prefs.PopCommandLineStack()
}

// RemainingArgs after a call to Parse(). ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	args := md.flags.Args()
	if len(md.subModes) > 0 && len(args) > 0 && strings.EqualFold(args[0], md.Mode()) {
		return args[1:]
	}
	return args
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
// Returns the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to list of sub-modes for the next call to Parse(). The first
// sub-mode is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// prefValue is a flag.Value that remembers the preference key it sets
type prefValue struct {
	key   string
	value string
}

func (p *prefValue) String() string {
	if p == nil {
		return ""
	}
	return p.value
}

func (p *prefValue) Set(s string) error {
	p.value = s
	return nil
}

// AddPref adds a string flag that sets the preference with the key. The value
// is not checked until the preference is created.
func (md *Modes) AddPref(name string, key string, usage string) {
	md.flags.Var(&prefValue{key: key}, name, usage)
}

// AddPrefs adds a string flag that takes a preferences string of the form
// "key::value; key::value".
func (md *Modes) AddPrefs(name string) {
	md.rawPrefs = md.flags.String(name, "", "preferences to set. of the form \"key::value; key::value\"")
}

// Visit calls fn for each flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// help prints the usage output of the flag package with the sub-modes and the
// additional help
func (md *Modes) help(usage string) {
	if md.Output == nil {
		return
	}

	lines := strings.Split(strings.TrimRight(usage, "\n"), "\n")
	if len(lines) <= 1 && len(md.subModes) == 0 {
		fmt.Fprint(md.Output, "No help available")
		if p := md.Path(); p != "" {
			fmt.Fprintf(md.Output, " for %s", p)
		}
		fmt.Fprintln(md.Output)
		return
	}

	if p := md.Path(); p != "" {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", p)
	} else {
		fmt.Fprintln(md.Output, "Usage:")
	}
	for _, l := range lines[1:] {
		fmt.Fprintln(md.Output, l)
	}

	if len(md.subModes) > 0 {
		if len(lines) > 1 {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintln(md.Output)
		fmt.Fprintln(md.Output, md.additionalHelp)
	}
}
