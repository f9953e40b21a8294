package dragout

import (
	"encoding/binary"
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func TestFileListPayload_Layout(t *testing.T) {
	p := NewFileListPayload([]string{`C:\a.txt`, `D:\b`})

	buf, err := p.Data(FormatFileList, MediumGlobal)
	require.NoError(t, err)

	require.Equal(t, uint32(HeaderSize), binary.LittleEndian.Uint32(buf[0:]), "pFiles")
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[4:]), "pt.x")
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[8:]), "pt.y")
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[12:]), "fNC")
	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[16:]), "fWide")

	var expected []uint16
	expected = append(expected, utf16.Encode([]rune(`C:\a.txt`))...)
	expected = append(expected, 0)
	expected = append(expected, utf16.Encode([]rune(`D:\b`))...)
	expected = append(expected, 0, 0)

	require.Len(t, buf, HeaderSize+2*len(expected))
	for i, c := range expected {
		require.Equal(t, c, binary.LittleEndian.Uint16(buf[HeaderSize+2*i:]), "char %d", i)
	}
}

func TestFileListPayload_RoundTrip(t *testing.T) {
	given := []string{
		`C:\Users\me\Desktop\report.pdf`,
		"",
		`\\server\share\naïve ファイル.txt`,
		`C:\emoji\😀.png`,
		"",
		`C:\Users\me\Desktop\report.pdf`,
	}

	p := NewFileListPayload(given)
	require.Equal(t, 4, p.Count())

	buf, err := p.Data(FormatFileList, MediumGlobal)
	require.NoError(t, err)

	decoded, err := DecodeFileList(buf)
	require.NoError(t, err)
	require.Equal(t, []string{
		`C:\Users\me\Desktop\report.pdf`,
		`\\server\share\naïve ファイル.txt`,
		`C:\emoji\😀.png`,
		`C:\Users\me\Desktop\report.pdf`,
	}, decoded)
}

func TestFileListPayload_Empty(t *testing.T) {
	for _, given := range [][]string{nil, {}, {"", ""}} {
		p := NewFileListPayload(given)
		require.Equal(t, 0, p.Count())
		require.NoError(t, p.QueryFormat(FormatFileList, MediumGlobal), "empty payload is still offered")

		_, err := p.Data(FormatFileList, MediumGlobal)
		require.ErrorIs(t, err, ErrEmptyPayload)
	}
}

func TestFileListPayload_FormatNegotiation(t *testing.T) {
	p := NewFileListPayload([]string{"/x"})

	require.Equal(t, []Format{FormatFileList}, p.Formats())
	require.NoError(t, p.QueryFormat(FormatFileList, MediumGlobal|4))
	require.ErrorIs(t, p.QueryFormat(Format(1), MediumGlobal), ErrUnsupportedFormat)
	require.ErrorIs(t, p.QueryFormat(FormatFileList, Medium(4)), ErrUnsupportedMedium)

	_, err := p.Data(Format(13), MediumGlobal)
	require.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestDecodeFileList_Narrow(t *testing.T) {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf, HeaderSize)
	buf = append(buf, []byte("C:\\one.txt\x00C:\\two.txt\x00\x00")...)

	paths, err := DecodeFileList(buf)
	require.NoError(t, err)
	require.Equal(t, []string{`C:\one.txt`, `C:\two.txt`}, paths)
}

func TestDecodeFileList_Malformed(t *testing.T) {
	tests := map[string][]byte{
		"short header": make([]byte, 8),
		"bad offset": func() []byte {
			b := make([]byte, HeaderSize)
			binary.LittleEndian.PutUint32(b, 4)
			return b
		}(),
		"missing terminator": func() []byte {
			b := make([]byte, HeaderSize)
			binary.LittleEndian.PutUint32(b, HeaderSize)
			binary.LittleEndian.PutUint32(b[16:], 1)
			return append(b, 'a', 0, 'b', 0)
		}(),
	}

	for name, buf := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeFileList(buf)
			require.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}
