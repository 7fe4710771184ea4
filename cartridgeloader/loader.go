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

package cartridgeloader

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/blinkenlabs/nrf51emu/logger"
)

// Loader abstracts all the ways a firmware image can be loaded into the
// emulation, ahead of being copied into flash by the runtime's
// device-loader mechanism (§6).
type Loader struct {
	io.ReadSeeker

	// the name to use for the firmware image represented by Loader
	Name string

	// filename of the image being loaded. In the case of embedded data,
	// this field contains the name supplied to NewLoaderFromData.
	Filename string

	// Format is either "BIN" (a flat binary blob, copied to flash verbatim)
	// or "HEX" (Intel HEX, decoded by the NVMC image-loader). Detected from
	// the file extension unless overridden.
	Format string

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data.
	//
	// the value of HashSHA1 will be checked on a call to Loader.Open(). if
	// the string is empty then that check passes.
	HashSHA1 string

	// HashMD5 is an alternative to HashSHA1.
	HashMD5 string

	// image data. empty until Open() is called unless the loader was
	// created by NewLoaderFromData.
	//
	// the pointer-to-a-slice construct allows the image to be loaded by a
	// Loader instance that has been passed by value.
	Data *[]byte

	data *bytes.Buffer

	// whether the Loader was created with NewLoaderFromData
	embedded bool
}

// NoFilename is returned when a Loader is created with an empty filename.
var NoFilename = errors.New("no filename")

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading a firmware image from a filename.
//
// The format argument will be used to set the Format field, unless it is
// the empty string or "AUTO", in which case the file extension decides:
// ".hex" selects Intel HEX, anything else (including ".bin") selects a flat
// binary image.
//
// Filenames can contain whitespace, including leading and trailing
// whitespace, but cannot consist only of whitespace.
func NewLoaderFromFilename(filename string, format string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", NoFilename)
	}

	filename, err := filepath.Abs(filename)
	if err != nil {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", err)
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format == "" {
		format = "AUTO"
	}

	ld := Loader{
		Filename: filename,
		Format:   format,
	}

	data := make([]byte, 0)
	ld.Data = &data

	if ld.Format == "AUTO" {
		if strings.EqualFold(filepath.Ext(filename), ".hex") {
			ld.Format = "HEX"
		} else {
			ld.Format = "BIN"
		}
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// NewLoaderFromData is the preferred method of initialisation for the
// Loader type when loading a firmware image from a byte slice. A good way
// of loading embedded data (via go:embed) into the emulator.
func NewLoaderFromData(name string, data []byte, format string) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: embedded data is empty")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no name for embedded data")
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format == "" || format == "AUTO" {
		format = "BIN"
	}

	ld := Loader{
		Filename: name,
		Format:   format,
		Data:     &data,
		data:     bytes.NewBuffer(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
		HashMD5:  fmt.Sprintf("%x", md5.Sum(data)),
	}

	ld.Name = decideOnName(ld)

	return ld, nil
}

// Close is a no-op for the file-less Loader but satisfies io.Closer so
// Loader can be used with defer in the same way as an *os.File.
func (ld Loader) Close() error {
	return nil
}

// Read implements io.Reader over the loaded image data. Open must be
// called first.
func (ld Loader) Read(p []byte) (int, error) {
	if ld.data == nil {
		return 0, fmt.Errorf("cartridgeloader: image not opened")
	}
	return ld.data.Read(p)
}

// Seek implements io.Seeker. Not meaningful until the image has been
// copied into a []byte; always reports position zero.
func (ld Loader) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}

// Open loads the image data. Loader filenames with a recognised scheme
// will use that scheme to load the data; currently supported schemes are
// HTTP(S) and local files.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	if ld.Data != nil && len(*ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	var raw []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
		defer resp.Body.Close()

		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}

	default:
		f, err := os.Open(ld.Filename)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
		defer f.Close()

		raw, err = io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
	}

	*ld.Data = raw
	ld.data = bytes.NewBuffer(raw)

	hash := fmt.Sprintf("%x", sha1.Sum(raw))
	if ld.HashSHA1 != "" && ld.HashSHA1 != hash {
		return fmt.Errorf("loader: unexpected SHA1 hash value")
	}
	ld.HashSHA1 = hash

	hash = fmt.Sprintf("%x", md5.Sum(raw))
	if ld.HashMD5 != "" && ld.HashMD5 != hash {
		return fmt.Errorf("loader: unexpected MD5 hash value")
	}
	ld.HashMD5 = hash

	logger.Logf("loader", "firmware loaded (%s, %d bytes)", ld.Filename, len(raw))

	return nil
}
