// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

// Package modalflag wraps the standard library flag package to support CLI
// tools with sub-modes, eg. "myprog debugger -flag" vs "myprog play -flag",
// each with their own set of flags.
package modalflag

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseResult is returned by Modes.Parse() to indicate what the caller
// should do next.
type ParseResult int

const (
	// ParseContinue indicates that parsing completed normally and the
	// program should continue.
	ParseContinue ParseResult = iota

	// ParseHelp indicates that help text was requested (and written to
	// Modes.Output) and the program should not continue.
	ParseHelp
)

// Modes parses command line arguments that may be divided into sub-modes,
// each of which may define their own boolean/string/int flags.
type Modes struct {
	// Output is where help text is written to.
	Output io.Writer

	fs   *flag.FlagSet
	args []string

	subModes  []string
	mode      string
	path      []string
	hasFlags  bool
	remaining []string
}

// NewArgs resets Modes with a new argument list, ready for flags and
// sub-modes to be added before calling Parse().
func (md *Modes) NewArgs(args []string) {
	md.fs = flag.NewFlagSet("", flag.ContinueOnError)
	md.fs.SetOutput(io.Discard)
	md.args = args
	md.subModes = nil
	md.mode = ""
	md.hasFlags = false
	md.remaining = nil
}

// AddBool defines a boolean flag.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	md.hasFlags = true
	return md.fs.Bool(name, value, usage)
}

// AddInt defines an integer flag.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	md.hasFlags = true
	return md.fs.Int(name, value, usage)
}

// AddString defines a string flag.
func (md *Modes) AddString(name string, value string, usage string) *string {
	md.hasFlags = true
	return md.fs.String(name, value, usage)
}

// AddSubModes declares the sub-modes available at this level. The first
// entry is the default, selected when no mode is named on the command line.
func (md *Modes) AddSubModes(modes ...string) {
	md.subModes = modes
}

// Mode returns the sub-mode selected at this level of parsing, or the empty
// string if no sub-mode was selected (or none were defined).
func (md *Modes) Mode() string {
	return md.mode
}

// Path returns the full path of sub-modes selected so far, separated by
// spaces.
func (md *Modes) Path() string {
	return strings.Join(md.path, " ")
}

// RemainingArgs returns the arguments left over once flags and any selected
// sub-mode have been consumed.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// Parse processes the arguments supplied to NewArgs against the flags and
// sub-modes defined so far.
func (md *Modes) Parse() (ParseResult, error) {
	if len(md.args) > 0 && (md.args[0] == "-help" || md.args[0] == "--help" || md.args[0] == "-h") {
		md.help()
		return ParseHelp, nil
	}

	if err := md.fs.Parse(md.args); err != nil {
		return ParseContinue, fmt.Errorf("modalflag: %w", err)
	}
	md.remaining = md.fs.Args()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		if len(md.remaining) > 0 {
			for _, m := range md.subModes {
				if strings.EqualFold(m, md.remaining[0]) {
					mode = m
					md.remaining = md.remaining[1:]
					break
				}
			}
		}
		md.mode = mode
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) help() {
	var s bytes.Buffer

	if md.hasFlags {
		md.fs.SetOutput(&s)
		md.fs.PrintDefaults()
		md.fs.SetOutput(io.Discard)
	}

	if len(md.subModes) == 0 && s.Len() == 0 {
		fmt.Fprint(md.Output, "No help available\n")
		return
	}

	fmt.Fprint(md.Output, "Usage:\n")
	fmt.Fprint(md.Output, s.String())

	if len(md.subModes) > 0 {
		if s.Len() > 0 {
			fmt.Fprint(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}
}
