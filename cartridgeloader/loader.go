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
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by Load().
var (
	ErrNoROMFile         = errors.New("cartridgeloader: no cartridge file found in archive")
	ErrUnsupportedFormat = errors.New("cartridgeloader: unsupported file format")
	ErrFileTooLarge      = errors.New("cartridgeloader: file exceeds maximum size")
	ErrHashMismatch      = errors.New("cartridgeloader: unexpected hash value")
)

// the largest file that will be read. the cartridge package imposes its own,
// much smaller, limit
const maxFileSize = 1024 * 1024

// Loader is used to specify the cartridge to use when attaching to the VCS.
// It also permits the caller to specify the mapping of the cartridge (if
// necessary. fingerprinting by size is usually sufficient).
type Loader struct {
	// filename of cartridge to load. can be a URL with an http or https
	// scheme
	Filename string

	// "AUTO" indicates automatic fingerprinting. if the field is "AUTO" after
	// NewLoader() then Load() will try again with the extension of the file
	// found in an archive
	Mapping string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// the name of the file the data was taken from. for archives this is the
	// name of the file inside the archive
	Name string

	// copy of the loaded data. subsequent calls to Load() do nothing if the
	// field is not empty
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument will be used to set the Mapping field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
//
// File extensions should be the same as the ID of the intended scheme, as
// defined in the cartridge package. Extensions ".BIN", ".ROM" and ".A26"
// will set the Mapping field to "AUTO".
func NewLoader(filename string, mapping string) Loader {
	cl := Loader{
		Filename: filename,
		Mapping:  "AUTO",
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != "AUTO" && mapping != "" {
		cl.Mapping = mapping
	} else {
		cl.Mapping = mappingFromExtension(filename)
	}

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	return strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with an http or https scheme are
// fetched over the network. Everything else is treated as a local file.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte
	var name string
	var err error

	switch scheme {
	case "http", "https":
		data, name, err = fetch(cl.Filename)
	case "file":
		data, name, err = readFile(strings.TrimPrefix(cl.Filename, "file://"))
	default:
		// windows drive letters look like a URL scheme
		if len(scheme) == 1 {
			data, name, err = readFile(cl.Filename)
		} else {
			err = fmt.Errorf("%w: unsupported URL scheme (%s)", ErrUnsupportedFormat, scheme)
		}
	}
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && !strings.EqualFold(cl.Hash, hash) {
		return fmt.Errorf("%w: %s", ErrHashMismatch, hash)
	}

	cl.Hash = hash
	cl.Data = data
	cl.Name = name

	if cl.Mapping == "AUTO" || cl.Mapping == "" {
		cl.Mapping = mappingFromExtension(name)
	}

	return nil
}

func fetch(filename string) ([]byte, string, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, "", fmt.Errorf("cartridgeloader: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("cartridgeloader: %s: %s", filename, resp.Status)
	}

	data, err := limitedRead(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, path.Base(resp.Request.URL.Path), nil
}

// the type of file as detected by detectFormat()
type format int

const (
	formatUnknown format = iota
	formatRaw
	formatZIP
	format7z
	formatGzip
	formatRAR
)

var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip     = []byte{0x1f, 0x8b}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21}
)

// detectFormat from the first bytes of the file. the filename extension is
// used if the header does not match any archive format.
func detectFormat(header []byte, filename string) format {
	switch {
	case bytes.HasPrefix(header, magicZIP), bytes.HasPrefix(header, magicZIPEmpty):
		return formatZIP
	case bytes.HasPrefix(header, magicRAR):
		return formatRAR
	case bytes.HasPrefix(header, magic7z):
		return format7z
	case bytes.HasPrefix(header, magicGzip):
		return formatGzip
	}

	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".ZIP":
		return formatZIP
	case ".7Z":
		return format7z
	case ".GZ", ".TGZ":
		return formatGzip
	case ".RAR":
		return formatRAR
	}

	if isCartridgeFile(filename) {
		return formatRaw
	}

	return formatUnknown
}

func readFile(filename string) ([]byte, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", fmt.Errorf("cartridgeloader: %w", err)
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("cartridgeloader: %w", err)
	}
	header = header[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("cartridgeloader: %w", err)
	}

	switch detectFormat(header, filename) {
	case formatRaw:
		data, err := limitedRead(f)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(filename), nil
	case formatZIP:
		return extractFromZIP(filename)
	case formatGzip:
		return extractFromGzip(f, filename)
	case format7z:
		return extractFrom7z(filename)
	case formatRAR:
		return extractFromRAR(filename)
	}

	return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
}

// limitedRead reads from r up to maxFileSize bytes.
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("cartridgeloader: %w", err)
	}
	if len(data) > maxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
