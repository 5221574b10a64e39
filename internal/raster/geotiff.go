package raster

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/windshadowstudio/engine/internal/sim"
)

// TIFF field types used below.
const (
	tiffShort  = 3
	tiffLong   = 4
	tiffDouble = 12
)

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value uint32
}

// WriteGeoTIFF writes the grid as a single-band float32 GeoTIFF:
// little-endian, uncompressed, one strip, georeferenced through
// ModelPixelScale/ModelTiepoint and a GeoKey directory carrying the
// projected CRS code. Rows are written north-first.
func WriteGeoTIFF(path string, g *sim.Grid, epsgCode int) error {
	if epsgCode <= 0 || epsgCode > 65535 {
		return fmt.Errorf("EPSG code %d out of GeoTIFF key range", epsgCode)
	}

	scale := []float64{g.Cell, g.Cell, 0}
	// Raster (0,0) pins to the top-left world corner.
	maxY := g.MinY + float64(g.Rows)*g.Cell
	tiepoint := []float64{0, 0, 0, g.MinX, maxY, 0}
	geoKeys := []uint16{
		1, 1, 0, 3, // directory header: version 1.1, 3 keys
		1024, 0, 1, 1, // GTModelType: projected
		1025, 0, 1, 1, // GTRasterType: pixel is area
		3072, 0, 1, uint16(epsgCode), // ProjectedCSType
	}

	const entryCount = 14
	ifdOffset := uint32(8)
	scaleOffset := ifdOffset + 2 + entryCount*12 + 4
	tieOffset := scaleOffset + uint32(8*len(scale))
	geoOffset := tieOffset + uint32(8*len(tiepoint))
	pixelOffset := geoOffset + uint32(2*len(geoKeys))
	stripBytes := uint32(g.Rows * g.Cols * 4)

	entries := []ifdEntry{
		{256, tiffLong, 1, uint32(g.Cols)},        // ImageWidth
		{257, tiffLong, 1, uint32(g.Rows)},        // ImageLength
		{258, tiffShort, 1, 32},                   // BitsPerSample
		{259, tiffShort, 1, 1},                    // Compression: none
		{262, tiffShort, 1, 1},                    // Photometric: BlackIsZero
		{273, tiffLong, 1, pixelOffset},           // StripOffsets
		{277, tiffShort, 1, 1},                    // SamplesPerPixel
		{278, tiffLong, 1, uint32(g.Rows)},        // RowsPerStrip
		{279, tiffLong, 1, stripBytes},            // StripByteCounts
		{284, tiffShort, 1, 1},                    // PlanarConfiguration
		{339, tiffShort, 1, 3},                    // SampleFormat: IEEE float
		{33550, tiffDouble, 3, scaleOffset},       // ModelPixelScale
		{33922, tiffDouble, 6, tieOffset},         // ModelTiepoint
		{34735, tiffShort, uint32(len(geoKeys)), geoOffset}, // GeoKeyDirectory
	}

	buf := &bytes.Buffer{}
	le := binary.LittleEndian

	// Header: byte order, magic, offset of the first (only) IFD.
	buf.WriteString("II")
	binary.Write(buf, le, uint16(42))
	binary.Write(buf, le, ifdOffset)

	binary.Write(buf, le, uint16(entryCount))
	for _, e := range entries {
		binary.Write(buf, le, e.tag)
		binary.Write(buf, le, e.typ)
		binary.Write(buf, le, e.count)
		binary.Write(buf, le, e.value)
	}
	binary.Write(buf, le, uint32(0)) // no next IFD

	binary.Write(buf, le, scale)
	binary.Write(buf, le, tiepoint)
	binary.Write(buf, le, geoKeys)

	if got := uint32(buf.Len()); got != pixelOffset {
		return fmt.Errorf("internal GeoTIFF layout error: pixel data at %d, expected %d", got, pixelOffset)
	}

	row := make([]float32, g.Cols)
	for r := g.Rows - 1; r >= 0; r-- {
		copy(row, g.Values[r*g.Cols:(r+1)*g.Cols])
		binary.Write(buf, le, row)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing GeoTIFF: %w", err)
	}
	return nil
}
