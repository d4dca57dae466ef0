package convert

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"
)

// Texture container: 8-byte magic, then little-endian uint32 fields
// (format, width, height, flags, decompressedSize, dataSize) followed by
// the pixel payload. DXT payloads may additionally be LZ4 block compressed.
const texMagic = "FTEX0001"

const (
	texFormatRGBA uint32 = 0
	texFormatDXT1 uint32 = 1
	texFormatDXT5 uint32 = 2

	texFlagLZ4 uint32 = 1
)

type texHeader struct {
	Format           uint32
	Width            uint32
	Height           uint32
	Flags            uint32
	DecompressedSize uint32
	DataSize         uint32
}

// DecodeTexture parses a texture container into an RGBA image.
func DecodeTexture(r io.Reader) (*image.RGBA, error) {
	magic := make([]byte, 8)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, err
	}
	if string(magic) != texMagic {
		return nil, fmt.Errorf("invalid texture magic: %q", magic)
	}

	var h texHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", h.Width, h.Height)
	}

	data := make([]byte, h.DataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}

	if h.Flags&texFlagLZ4 != 0 {
		decoded := make([]byte, h.DecompressedSize)
		if _, err := lz4.UncompressBlock(data, decoded); err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		data = decoded
	}

	var pix []byte
	var err error
	switch h.Format {
	case texFormatRGBA:
		if uint32(len(data)) != h.Width*h.Height*4 {
			return nil, fmt.Errorf("rgba payload size %d for %dx%d", len(data), h.Width, h.Height)
		}
		pix = data
	case texFormatDXT1:
		pix, err = dxt.DecodeDXT1(data, uint(h.Width), uint(h.Height))
		if err != nil {
			return nil, err
		}
	case texFormatDXT5:
		pix, err = dxt.DecodeDXT5(data, uint(h.Width), uint(h.Height))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported texture format %d", h.Format)
	}

	return &image.RGBA{
		Pix:    pix,
		Stride: int(h.Width) * 4,
		Rect:   image.Rect(0, 0, int(h.Width), int(h.Height)),
	}, nil
}

// DecodeTextureFile reads and decodes a texture container from disk.
func DecodeTextureFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeTexture(f)
}

// EncodeTexture writes an RGBA payload into the container format,
// LZ4-compressing when that actually shrinks it. Used by the packing tool
// and by tests.
func EncodeTexture(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	raw := img.Pix

	compressed := make([]byte, lz4.CompressBlockBound(len(raw)))
	var c lz4.Compressor
	n, err := c.CompressBlock(raw, compressed)
	if err != nil {
		return err
	}

	h := texHeader{
		Format: texFormatRGBA,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}
	payload := raw
	if n > 0 && n < len(raw) {
		h.Flags = texFlagLZ4
		h.DecompressedSize = uint32(len(raw))
		payload = compressed[:n]
	}
	h.DataSize = uint32(len(payload))

	var buf bytes.Buffer
	buf.WriteString(texMagic)
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		return err
	}
	buf.Write(payload)
	_, err = w.Write(buf.Bytes())
	return err
}
