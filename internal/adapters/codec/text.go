package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"unicode/utf8"

	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// pngSignatureLen is the size of the fixed PNG file signature.
	pngSignatureLen = 8
	// ihdrChunkLen is the size of the IHDR chunk including length, type and CRC.
	ihdrChunkLen = 25
	// maxKeywordLen is the longest keyword allowed in a text chunk.
	maxKeywordLen = 79
	// maxTextLen bounds a single inflated text value.
	maxTextLen = 1 << 20
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

var (
	errNotPNG          = zerr.New("not a PNG stream")
	errTruncatedChunk  = zerr.New("truncated PNG chunk")
	errInvalidKeyword  = zerr.New("invalid text chunk keyword")
	errMalformedText   = zerr.New("malformed text chunk")
	errTextTooLong     = zerr.New("text chunk exceeds size limit")
	errUnknownCompress = zerr.New("unknown text chunk compression method")
)

// writePNGWithText encodes img and splices the text chunks in directly after IHDR.
func writePNGWithText(w io.Writer, enc *png.Encoder, img image.Image, fields []domain.TextField) error {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return err
	}
	data := buf.Bytes()
	head := pngSignatureLen + ihdrChunkLen
	if len(data) < head || !bytes.Equal(data[:pngSignatureLen], pngSignature) {
		return errNotPNG
	}

	if _, err := w.Write(data[:head]); err != nil {
		return err
	}
	for _, f := range fields {
		if err := writeTextChunk(w, f); err != nil {
			return err
		}
	}
	_, err := w.Write(data[head:])
	return err
}

// writeTextChunk stores ASCII values as tEXt and everything else as uncompressed iTXt.
func writeTextChunk(w io.Writer, f domain.TextField) error {
	if f.Key == "" || len(f.Key) > maxKeywordLen || !isLatin1Printable(f.Key) {
		return zerr.With(errInvalidKeyword, "key", f.Key)
	}

	var payload bytes.Buffer
	payload.WriteString(f.Key)
	payload.WriteByte(0)
	if isASCII(f.Value) {
		payload.WriteString(f.Value)
		return writeChunk(w, "tEXt", payload.Bytes())
	}
	if !utf8.ValidString(f.Value) {
		return zerr.With(errMalformedText, "key", f.Key)
	}
	// compression flag, compression method, empty language tag, empty translated keyword.
	payload.Write([]byte{0, 0, 0, 0})
	payload.WriteString(f.Value)
	return writeChunk(w, "iTXt", payload.Bytes())
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(data))) //nolint:gosec // Chunk payloads are small.
	copy(header[4:], typ)

	crc := crc32.NewIEEE()
	_, _ = crc.Write(header[4:])
	_, _ = crc.Write(data)
	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	for _, part := range [][]byte{header[:], data, footer[:]} {
		if _, err := w.Write(part); err != nil {
			return err
		}
	}
	return nil
}

// readPNGWithText decodes a PNG and collects the text chunks preceding IEND.
func readPNGWithText(r io.Reader) (image.Image, map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	if len(data) < pngSignatureLen || !bytes.Equal(data[:pngSignatureLen], pngSignature) {
		return nil, nil, errNotPNG
	}

	fields, err := parseTextChunks(data[pngSignatureLen:])
	if err != nil {
		return nil, nil, err
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	return img, fields, nil
}

func parseTextChunks(data []byte) (map[string]string, error) {
	fields := make(map[string]string)
	for len(data) > 0 {
		if len(data) < 12 {
			return nil, errTruncatedChunk
		}
		n := binary.BigEndian.Uint32(data[:4])
		typ := string(data[4:8])
		if uint64(n)+12 > uint64(len(data)) {
			return nil, zerr.With(errTruncatedChunk, "chunk", typ)
		}
		payload := data[8 : 8+n]
		data = data[12+n:]

		var key, value string
		var err error
		switch typ {
		case "tEXt":
			key, value, err = parseTEXt(payload)
		case "zTXt":
			key, value, err = parseZTXt(payload)
		case "iTXt":
			key, value, err = parseITXt(payload)
		case "IEND":
			return fields, nil
		default:
			continue
		}
		if err != nil {
			return nil, zerr.With(err, "chunk", typ)
		}
		fields[key] = value
	}
	return fields, nil
}

func splitKeyword(payload []byte) (string, []byte, error) {
	i := bytes.IndexByte(payload, 0)
	if i < 1 || i > maxKeywordLen {
		return "", nil, errInvalidKeyword
	}
	return string(payload[:i]), payload[i+1:], nil
}

func parseTEXt(payload []byte) (string, string, error) {
	key, rest, err := splitKeyword(payload)
	if err != nil {
		return "", "", err
	}
	return key, latin1ToUTF8(rest), nil
}

func parseZTXt(payload []byte) (string, string, error) {
	key, rest, err := splitKeyword(payload)
	if err != nil {
		return "", "", err
	}
	if len(rest) < 1 {
		return "", "", errMalformedText
	}
	if rest[0] != 0 {
		return "", "", errUnknownCompress
	}
	text, err := inflate(rest[1:])
	if err != nil {
		return "", "", err
	}
	return key, latin1ToUTF8(text), nil
}

func parseITXt(payload []byte) (string, string, error) {
	key, rest, err := splitKeyword(payload)
	if err != nil {
		return "", "", err
	}
	if len(rest) < 2 {
		return "", "", errMalformedText
	}
	compressed, method := rest[0] == 1, rest[1]
	rest = rest[2:]

	// Skip language tag and translated keyword.
	for range 2 {
		i := bytes.IndexByte(rest, 0)
		if i < 0 {
			return "", "", errMalformedText
		}
		rest = rest[i+1:]
	}

	if !compressed {
		return key, string(rest), nil
	}
	if method != 0 {
		return "", "", errUnknownCompress
	}
	text, err := inflate(rest)
	if err != nil {
		return "", "", err
	}
	return key, string(text), nil
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.Wrap(err, errMalformedText.Error())
	}
	defer func() { _ = zr.Close() }()

	out, err := io.ReadAll(io.LimitReader(zr, maxTextLen+1))
	if err != nil {
		return nil, zerr.Wrap(err, errMalformedText.Error())
	}
	if len(out) > maxTextLen {
		return nil, errTextTooLong
	}
	return out, nil
}

func latin1ToUTF8(b []byte) string {
	if isASCII(string(b)) {
		return string(b)
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isLatin1Printable(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 32 || (c > 126 && c < 161) {
			return false
		}
	}
	return true
}
