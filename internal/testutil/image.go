package testutil

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
)

// HeaderOnlyPNG returns a 1-bit grayscale PNG that declares w x h pixels
// but carries no pixel data. Decoders can read its config and nothing else.
func HeaderOnlyPNG(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 1 // bit depth; color type, compression, filter and interlace stay 0
	writeChunk(&buf, "IHDR", ihdr)
	writeChunk(&buf, "IEND", nil)
	return buf.Bytes()
}

// HeaderOnlyPNGDataURL is HeaderOnlyPNG wrapped as a base64 data URL.
func HeaderOnlyPNGDataURL(w, h uint32) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(HeaderOnlyPNG(w, h))
}

func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	buf.Write(n[:])

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	buf.WriteString(typ)
	buf.Write(data)
	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	buf.Write(n[:])
}
