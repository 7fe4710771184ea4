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

package addressspace

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// regionSummary is the plain-value snapshot of one composed region, used
// only for the -memviz debug dump so the graph doesn't walk into a
// region's live peripheral state.
type regionSummary struct {
	Name     string
	Base     uint32
	Length   uint32
	Priority int
}

// WriteGraph renders the composed region table (base, length, priority) as
// a graphviz .dot graph, so overlap-priority resolution in §4.1 can be
// inspected visually. Regions are listed in insertion order, which is also
// tie-break order.
func (as *AddressSpace) WriteGraph(w io.Writer) {
	summary := make([]regionSummary, len(as.entries))
	for i, e := range as.entries {
		summary[i] = regionSummary{
			Name:     e.name,
			Base:     e.base,
			Length:   e.length,
			Priority: e.priority,
		}
	}
	memviz.Map(w, summary)
}
