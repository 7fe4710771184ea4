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

// Package prefs implements a simple disk-backed preferences system. Values
// are registered against a Disk instance with a string key and are loaded
// from, and saved to, a single flat file.
package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// NoPrefsFile is returned by Disk.Load() when the backing file does not yet
// exist. Callers performing a first-run load should treat this as
// non-fatal.
var NoPrefsFile = errors.New("no prefs file")

// DefaultPrefsFile is the filename used by callers that don't need more than
// one preferences group.
const DefaultPrefsFile = "prefs"

// KeySep separates fields in preference-adjacent values that are not
// themselves part of the Disk file format (eg. window-state strings saved by
// the GUI layer).
const KeySep = "::"

// fileSep separates the key and value of each entry in a Disk file.
const fileSep = " :: "

// WarningBoilerPlate is written as the first line of every saved
// preferences file.
const WarningBoilerPlate = "# this file is automatically generated and will be overwritten"

// Value is the type used to Set() and retrieve the value of a preference.
// Concrete preference types decide for themselves which underlying Go types
// they accept.
type Value interface{}

// pref is satisfied by every concrete preference type in this package.
type pref interface {
	Set(Value) error
	String() string
}

// Disk associates named preference values with a backing file.
type Disk struct {
	path  string
	prefs map[string]pref
	keys  []string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:  path,
		prefs: make(map[string]pref),
	}, nil
}

// Add registers a preference value under key. Subsequent Load() and Save()
// calls will read and write this value.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.prefs[key]; ok {
		return fmt.Errorf("prefs: %s already added to preferences group", key)
	}
	dsk.prefs[key] = p
	dsk.keys = append(dsk.keys, key)
	return nil
}

// String returns every registered key/value pair as they would be written
// to disk.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, fileSep, dsk.prefs[k].String()))
	}
	return s.String()
}

// Load reads the backing file and applies any entries that match a
// registered preference. Entries in the file that have no corresponding
// registered preference are ignored. If the backing file does not exist,
// Load returns NoPrefsFile.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NoPrefsFile
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, ok := splitEntry(line)
		if !ok {
			continue
		}

		if p, ok := dsk.prefs[key]; ok {
			if err := p.Set(val); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Save writes every registered preference to the backing file. Entries
// already present on disk, but not registered with this Disk instance, are
// preserved so that two Disk instances can share a file without clobbering
// each other.
func (dsk *Disk) Save() error {
	merged := make(map[string]string)

	if f, err := os.Open(dsk.path); err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := sc.Text()
			if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if key, val, ok := splitEntry(line); ok {
				merged[key] = val
			}
		}
		f.Close()
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("prefs: %w", err)
	}

	for k, p := range dsk.prefs {
		merged[k] = p.String()
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, fileSep, merged[k]))
	}

	err := os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

func splitEntry(line string) (string, string, bool) {
	i := strings.Index(line, fileSep)
	if i < 0 {
		return "", "", false
	}
	return line[:i], line[i+len(fileSep):], true
}
