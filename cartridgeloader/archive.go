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
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

// the zip and sevenzip packages share the same shape of file list
type archiveFile interface {
	Open() (io.ReadCloser, error)
}

func extractFirst(name string, f archiveFile) ([]byte, string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, "", fmt.Errorf("cartridgeloader: %s: %w", name, err)
	}
	defer rc.Close()

	data, err := limitedRead(rc)
	if err != nil {
		return nil, "", err
	}
	return data, filepath.Base(name), nil
}

func extractFromZIP(filename string) ([]byte, string, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, "", fmt.Errorf("cartridgeloader: zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isCartridgeFile(f.Name) {
			continue
		}
		return extractFirst(f.Name, f)
	}

	return nil, "", ErrNoROMFile
}

func extractFrom7z(filename string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, "", fmt.Errorf("cartridgeloader: 7z: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isCartridgeFile(f.Name) {
			continue
		}
		return extractFirst(f.Name, f)
	}

	return nil, "", ErrNoROMFile
}

func extractFromRAR(filename string) ([]byte, string, error) {
	r, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, "", fmt.Errorf("cartridgeloader: rar: %w", err)
	}
	defer r.Close()

	for {
		hdr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("cartridgeloader: rar: %w", err)
		}
		if hdr.IsDir || !isCartridgeFile(hdr.Name) {
			continue
		}

		data, err := limitedRead(r)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(hdr.Name), nil
	}

	return nil, "", ErrNoROMFile
}

// a plain gzip file is assumed to contain cartridge data. a tar.gz file is
// searched in the same way as other archives
func extractFromGzip(r io.Reader, filename string) ([]byte, string, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("cartridgeloader: gzip: %w", err)
	}
	defer gr.Close()

	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		tr := tar.NewReader(gr)
		for {
			hdr, err := tr.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, "", fmt.Errorf("cartridgeloader: tar: %w", err)
			}
			if hdr.Typeflag != tar.TypeReg || !isCartridgeFile(hdr.Name) {
				continue
			}
			data, err := limitedRead(tr)
			if err != nil {
				return nil, "", err
			}
			return data, filepath.Base(hdr.Name), nil
		}
		return nil, "", ErrNoROMFile
	}

	data, err := limitedRead(gr)
	if err != nil {
		return nil, "", err
	}

	name := filepath.Base(filename)
	return data, name[:len(name)-len(filepath.Ext(name))], nil
}
