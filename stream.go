package varwire

import "io"

// ReadUint32 reads a VarInt from r one byte at a time.
//
// A clean io.EOF before the first byte is returned as io.EOF so callers can
// detect message boundaries; running out of input mid-value reports
// ErrTruncated. A fifth byte with its continuation bit set reports
// ErrOverlong without reading further.
func ReadUint32(r io.Reader) (value uint32, err error) {
	var position uint
	var n int
	currentByte := make([]byte, 1)
	for {
		if _, err = io.ReadFull(r, currentByte); err != nil {
			if err == io.EOF && n > 0 {
				err = ErrTruncated
			}
			return 0, err
		}
		b := currentByte[0]
		n++
		value |= uint32(b&SEGMENT_BITS) << position
		if b&CONTINUE_BIT == 0 {
			return value, nil
		}
		if n == MaxLen32 {
			return 0, ErrOverlong
		}
		position += 7
	}
}

// ReadUint64 reads a VarLong from r. Failure conditions match ReadUint32
// with a MaxLen64 bound.
func ReadUint64(r io.Reader) (value uint64, err error) {
	var position uint
	var n int
	currentByte := make([]byte, 1)
	for {
		if _, err = io.ReadFull(r, currentByte); err != nil {
			if err == io.EOF && n > 0 {
				err = ErrTruncated
			}
			return 0, err
		}
		b := currentByte[0]
		n++
		value |= uint64(b&SEGMENT_BITS) << position
		if b&CONTINUE_BIT == 0 {
			return value, nil
		}
		if n == MaxLen64 {
			return 0, ErrOverlong
		}
		position += 7
	}
}

// ReadInt32 reads a VarInt from r and reinterprets it as signed.
func ReadInt32(r io.Reader) (int32, error) {
	value, err := ReadUint32(r)
	return int32(value), err
}

// ReadInt64 reads a VarLong from r and reinterprets it as signed.
func ReadInt64(r io.Reader) (int64, error) {
	value, err := ReadUint64(r)
	return int64(value), err
}

// WriteUint32 writes the VarInt encoding of value to w in a single Write.
// It returns the number of bytes written.
func WriteUint32(w io.Writer, value uint32) (int, error) {
	var buf [MaxLen32]byte
	return w.Write(AppendUint32(buf[:0], value))
}

// WriteUint64 writes the VarLong encoding of value to w in a single Write.
// It returns the number of bytes written.
func WriteUint64(w io.Writer, value uint64) (int, error) {
	var buf [MaxLen64]byte
	return w.Write(AppendUint64(buf[:0], value))
}

// WriteInt32 writes the VarInt encoding of value's unsigned bit pattern.
func WriteInt32(w io.Writer, value int32) (int, error) {
	return WriteUint32(w, uint32(value))
}

// WriteInt64 writes the VarLong encoding of value's unsigned bit pattern.
func WriteInt64(w io.Writer, value int64) (int, error) {
	return WriteUint64(w, uint64(value))
}
