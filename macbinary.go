package macpaint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/sigurn/crc16"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// MacBinary II header fields used here. See
// https://files.stairways.com/other/macbinaryii-standard-info.txt
const (
	mbHeaderSize  = 128
	mbNameLen     = 1
	mbName        = 2
	mbMaxName     = 63
	mbType        = 65
	mbCreator     = 69
	mbZero74      = 74
	mbZero82      = 82
	mbDataLen     = 83
	mbResLen      = 87
	mbCreated     = 91
	mbModified    = 95
	mbVersion     = 122
	mbMinVersion  = 123
	mbCRC         = 124
	mbVersionII   = 129
	mbBlockLength = 128
)

// macEpoch is the zero of Macintosh timestamps.
var macEpoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// MacBinaryInfo is the Finder information carried by a MacBinary header.
type MacBinaryInfo struct {
	Name     string
	Type     string
	Creator  string
	Created  time.Time
	Modified time.Time
}

// UnwrapMacBinary returns the data fork of a MacBinary file. ok is false
// and data is returned unchanged when data does not start with a
// MacBinary header. Bare MacPaint documents never look like one: their
// second byte is zero, which MacBinary forbids as a name length.
func UnwrapMacBinary(data []byte) (payload []byte, info *MacBinaryInfo, ok bool) {
	info, n, ok := unwrapHeader(data)
	if !ok || n > len(data)-mbHeaderSize {
		return data, nil, false
	}
	return data[mbHeaderSize : mbHeaderSize+n], info, true
}

// unwrapHeader validates a MacBinary header at the start of data and
// returns its Finder information and data fork length.
func unwrapHeader(data []byte) (*MacBinaryInfo, int, bool) {
	if len(data) < mbHeaderSize {
		return nil, 0, false
	}
	h := data[:mbHeaderSize]
	nameLen := int(h[mbNameLen])
	if h[0] != 0 || h[mbZero74] != 0 || h[mbZero82] != 0 || nameLen < 1 || nameLen > mbMaxName {
		return nil, 0, false
	}
	crcOK := headerCRC(h) == binary.BigEndian.Uint16(h[mbCRC:])
	if !crcOK && string(h[mbType:mbType+4]) != FileType {
		return nil, 0, false
	}
	name, err := charmap.Macintosh.NewDecoder().Bytes(h[mbName : mbName+nameLen])
	if err != nil {
		return nil, 0, false
	}
	info := &MacBinaryInfo{
		Name:     string(name),
		Type:     string(h[mbType : mbType+4]),
		Creator:  string(h[mbCreator : mbCreator+4]),
		Created:  fromMacTime(binary.BigEndian.Uint32(h[mbCreated:])),
		Modified: fromMacTime(binary.BigEndian.Uint32(h[mbModified:])),
	}
	return info, int(binary.BigEndian.Uint32(h[mbDataLen:])), true
}

// WrapMacBinary prepends a MacBinary II header to payload and pads it to
// a whole number of 128-byte blocks. Empty Type and Creator default to a
// MacPaint document. Runes in the name with no Mac OS Roman equivalent
// are replaced.
func WrapMacBinary(payload []byte, info MacBinaryInfo) ([]byte, error) {
	if info.Type == "" {
		info.Type = FileType
	}
	if info.Creator == "" {
		info.Creator = Creator
	}
	if len(info.Type) != 4 || len(info.Creator) != 4 {
		return nil, fmt.Errorf("%w: type and creator must be 4 bytes", ErrNotMacBinary)
	}
	name, err := encoding.ReplaceUnsupported(charmap.Macintosh.NewEncoder()).Bytes([]byte(info.Name))
	if err != nil {
		return nil, fmt.Errorf("macpaint: encoding file name: %w", err)
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("%w: empty file name", ErrNotMacBinary)
	}
	if len(name) > mbMaxName {
		name = name[:mbMaxName]
	}
	if uint64(len(payload)) > 1<<32-1 {
		return nil, errors.New("macpaint: data fork too large for MacBinary")
	}

	padded := (len(payload) + mbBlockLength - 1) / mbBlockLength * mbBlockLength
	out := make([]byte, mbHeaderSize+padded)
	h := out[:mbHeaderSize]
	h[mbNameLen] = byte(len(name))
	copy(h[mbName:], name)
	copy(h[mbType:], info.Type)
	copy(h[mbCreator:], info.Creator)
	binary.BigEndian.PutUint32(h[mbDataLen:], uint32(len(payload)))
	binary.BigEndian.PutUint32(h[mbResLen:], 0)
	binary.BigEndian.PutUint32(h[mbCreated:], toMacTime(info.Created))
	binary.BigEndian.PutUint32(h[mbModified:], toMacTime(info.Modified))
	h[mbVersion] = mbVersionII
	h[mbMinVersion] = mbVersionII
	binary.BigEndian.PutUint16(h[mbCRC:], headerCRC(h))
	copy(out[mbHeaderSize:], payload)
	return out, nil
}

func toMacTime(t time.Time) uint32 {
	if t.Before(macEpoch) {
		return 0
	}
	s := t.Sub(macEpoch) / time.Second
	if s > 1<<32-1 {
		return 1<<32 - 1
	}
	return uint32(s)
}

func fromMacTime(s uint32) time.Time {
	if s == 0 {
		return time.Time{}
	}
	return macEpoch.Add(time.Duration(s) * time.Second)
}

// crcTable is CRC-16/XMODEM (polynomial 0x1021, zero initial value), the
// checksum MacBinary II stores over the first 124 header bytes.
var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

func headerCRC(h []byte) uint16 {
	return crc16.Checksum(h[:mbCRC], crcTable)
}
