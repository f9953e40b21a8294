package dragout

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
)

// Format identifies a clipboard format offered by a payload.
type Format uint16

// Medium identifies the storage medium a payload is delivered on.
type Medium uint32

const (
	// FormatFileList is CF_HDROP, the canonical dropped-files format.
	FormatFileList Format = 15

	// MediumGlobal is TYMED_HGLOBAL.
	MediumGlobal Medium = 1
)

// HeaderSize is the size of the DROPFILES header that precedes the path list.
const HeaderSize = 20

var (
	ErrUnsupportedFormat = errors.New("unsupported payload format")
	ErrUnsupportedMedium = errors.New("unsupported payload medium")
	ErrEmptyPayload      = errors.New("payload holds no paths")
	ErrMalformedPayload  = errors.New("malformed file list payload")
)

// PayloadProvider negotiates formats and produces the bytes for a drop target.
type PayloadProvider interface {
	// Formats lists the formats offered, in preference order.
	Formats() []Format
	// QueryFormat reports whether the format/medium pair can be produced.
	QueryFormat(f Format, m Medium) error
	// Data produces a fresh buffer for the format/medium pair.
	Data(f Format, m Medium) ([]byte, error)
}

// FileListPayload offers a fixed snapshot of paths as CF_HDROP.
type FileListPayload struct {
	list  []uint16 // NUL separated wide paths plus the final NUL
	count int
}

// NewFileListPayload snapshots paths. Empty paths are skipped. The payload is
// valid even when no path survives; Data then reports ErrEmptyPayload.
func NewFileListPayload(paths []string) *FileListPayload {
	p := &FileListPayload{}
	for _, path := range paths {
		if path == "" {
			continue
		}
		p.list = append(p.list, utf16.Encode([]rune(path))...)
		p.list = append(p.list, 0)
		p.count++
	}
	if p.count > 0 {
		p.list = append(p.list, 0)
	}
	return p
}

// Count returns the number of paths carried.
func (p *FileListPayload) Count() int {
	return p.count
}

// Formats implements PayloadProvider.
func (p *FileListPayload) Formats() []Format {
	return []Format{FormatFileList}
}

// QueryFormat implements PayloadProvider.
func (p *FileListPayload) QueryFormat(f Format, m Medium) error {
	if f != FormatFileList {
		return ErrUnsupportedFormat
	}
	if m&MediumGlobal == 0 {
		return ErrUnsupportedMedium
	}
	return nil
}

// Data implements PayloadProvider and returns DROPFILES followed by the list.
func (p *FileListPayload) Data(f Format, m Medium) ([]byte, error) {
	if err := p.QueryFormat(f, m); err != nil {
		return nil, err
	}
	if p.count == 0 {
		return nil, ErrEmptyPayload
	}

	buf := make([]byte, HeaderSize+len(p.list)*2)
	binary.LittleEndian.PutUint32(buf[0:], HeaderSize) // pFiles
	// pt.x, pt.y and fNC stay zero
	binary.LittleEndian.PutUint32(buf[16:], 1) // fWide
	for i, c := range p.list {
		binary.LittleEndian.PutUint16(buf[HeaderSize+2*i:], c)
	}
	return buf, nil
}

// DecodeFileList parses a DROPFILES buffer back into paths. Both wide and
// single-byte lists are accepted; parsing stops at the double NUL.
func DecodeFileList(buf []byte) ([]string, error) {
	if len(buf) < HeaderSize {
		return nil, ErrMalformedPayload
	}
	offset := int(binary.LittleEndian.Uint32(buf[0:]))
	wide := binary.LittleEndian.Uint32(buf[16:]) != 0
	if offset < HeaderSize || offset > len(buf) {
		return nil, ErrMalformedPayload
	}

	if !wide {
		return decodeNarrow(buf[offset:])
	}

	body := buf[offset:]
	var (
		paths   []string
		current []uint16
	)
	for i := 0; i+1 < len(body); i += 2 {
		c := binary.LittleEndian.Uint16(body[i:])
		if c != 0 {
			current = append(current, c)
			continue
		}
		if len(current) == 0 {
			return paths, nil
		}
		paths = append(paths, string(utf16.Decode(current)))
		current = current[:0]
	}
	return nil, ErrMalformedPayload
}

func decodeNarrow(body []byte) ([]string, error) {
	var paths []string
	start := 0
	for i, b := range body {
		if b != 0 {
			continue
		}
		if i == start {
			return paths, nil
		}
		paths = append(paths, string(body[start:i]))
		start = i + 1
	}
	return nil, ErrMalformedPayload
}
