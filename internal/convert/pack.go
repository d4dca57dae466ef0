package convert

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Asset pack container: a length-prefixed magic/version string, a uint32
// entry count, then (name, offset, size) entries followed by the raw data
// region. Offsets are relative to the end of the header.
const packMagic = "FPAK0001"

type packEntry struct {
	Name   string
	Offset uint32
	Size   uint32
}

func readPackString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > 4096 {
		return "", fmt.Errorf("pack string too long: %d", size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// ExtractPack unpacks an asset pack into outputDir. Entry names are
// sanitized against path traversal.
func ExtractPack(packPath, outputDir string) error {
	f, err := os.Open(packPath)
	if err != nil {
		return err
	}
	defer f.Close()

	magic, err := readPackString(f)
	if err != nil {
		return err
	}
	if magic != packMagic {
		return fmt.Errorf("not an asset pack (magic %q)", magic)
	}

	var fileCount uint32
	if err := binary.Read(f, binary.LittleEndian, &fileCount); err != nil {
		return err
	}

	entries := make([]packEntry, fileCount)
	for i := uint32(0); i < fileCount; i++ {
		name, err := readPackString(f)
		if err != nil {
			return err
		}
		var offset, size uint32
		if err := binary.Read(f, binary.LittleEndian, &offset); err != nil {
			return err
		}
		if err := binary.Read(f, binary.LittleEndian, &size); err != nil {
			return err
		}
		entries[i] = packEntry{Name: name, Offset: offset, Size: size}
	}

	dataStart, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		clean := filepath.Clean(entry.Name)
		if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
			return fmt.Errorf("unsafe entry name: %s", entry.Name)
		}
		outPath := filepath.Join(outputDir, clean)
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return err
		}

		if _, err := f.Seek(dataStart+int64(entry.Offset), io.SeekStart); err != nil {
			return err
		}
		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		if _, err := io.CopyN(out, f, int64(entry.Size)); err != nil {
			out.Close()
			return err
		}
		out.Close()
	}

	return nil
}

// WritePack builds an asset pack from named blobs. Used by the packing tool
// and by tests.
func WritePack(packPath string, files map[string][]byte) error {
	f, err := os.Create(packPath)
	if err != nil {
		return err
	}
	defer f.Close()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	// Stable entry order keeps packs reproducible.
	sort.Strings(names)

	writeString := func(s string) error {
		if err := binary.Write(f, binary.LittleEndian, uint32(len(s))); err != nil {
			return err
		}
		_, err := f.Write([]byte(s))
		return err
	}

	if err := writeString(packMagic); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(len(names))); err != nil {
		return err
	}

	offset := uint32(0)
	for _, name := range names {
		if err := writeString(name); err != nil {
			return err
		}
		size := uint32(len(files[name]))
		if err := binary.Write(f, binary.LittleEndian, offset); err != nil {
			return err
		}
		if err := binary.Write(f, binary.LittleEndian, size); err != nil {
			return err
		}
		offset += size
	}

	for _, name := range names {
		if _, err := f.Write(files[name]); err != nil {
			return err
		}
	}
	return nil
}
