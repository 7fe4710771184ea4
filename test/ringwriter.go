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

package test

import "fmt"

// RingWriter is an io.Writer that keeps only the most recently written N
// bytes. Unlike CappedWriter, writing beyond the limit discards the oldest
// content rather than the newest.
type RingWriter struct {
	limit int
	buf   []byte
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(limit int) (*RingWriter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("test: ring writer limit must be greater than zero")
	}
	return &RingWriter{limit: limit, buf: make([]byte, 0, limit)}, nil
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	n := len(p)

	if len(p) >= r.limit {
		r.buf = append(r.buf[:0], p[len(p)-r.limit:]...)
		return n, nil
	}

	combined := append(r.buf, p...)
	if len(combined) > r.limit {
		combined = combined[len(combined)-r.limit:]
	}
	r.buf = combined

	return n, nil
}

// String returns the most recently written content, up to the RingWriter's
// limit.
func (r *RingWriter) String() string {
	return string(r.buf)
}

// Reset empties the RingWriter.
func (r *RingWriter) Reset() {
	r.buf = r.buf[:0]
}
