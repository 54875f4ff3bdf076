// Package varwire encodes and decodes the variable-length integers used by
// the modern Minecraft protocol: VarInt (32-bit) and VarLong (64-bit).
//
// Each encoded byte carries seven value bits in its low bits and a
// continuation flag in its high bit, least-significant group first. Signed
// values are reinterpreted bit-for-bit as unsigned before encoding; the
// protocol does not use zig-zag, so negative numbers always take the
// maximum length (5 bytes for VarInt, 10 for VarLong).
package varwire

const (
	SEGMENT_BITS = 0x7F
	CONTINUE_BIT = 0x80
)

const (
	// MaxLen32 is the longest valid VarInt encoding.
	MaxLen32 = 5
	// MaxLen64 is the longest valid VarLong encoding.
	MaxLen64 = 10
)

// AppendUint32 appends the VarInt encoding of value to dst and returns the
// extended slice. Output is 1 to MaxLen32 bytes.
func AppendUint32(dst []byte, value uint32) []byte {
	for {
		temp := byte(value & SEGMENT_BITS)
		value >>= 7
		if value != 0 {
			temp |= CONTINUE_BIT
		}
		dst = append(dst, temp)
		if value == 0 {
			return dst
		}
	}
}

// AppendUint64 appends the VarLong encoding of value to dst and returns the
// extended slice. Output is 1 to MaxLen64 bytes.
func AppendUint64(dst []byte, value uint64) []byte {
	for {
		temp := byte(value & SEGMENT_BITS)
		value >>= 7
		if value != 0 {
			temp |= CONTINUE_BIT
		}
		dst = append(dst, temp)
		if value == 0 {
			return dst
		}
	}
}

// AppendInt32 appends the VarInt encoding of value to dst. The signed value
// is reinterpreted as its unsigned bit pattern, so any negative value
// encodes to the full 5 bytes.
func AppendInt32(dst []byte, value int32) []byte {
	return AppendUint32(dst, uint32(value))
}

// AppendInt64 appends the VarLong encoding of value to dst. Negative values
// encode to the full 10 bytes.
func AppendInt64(dst []byte, value int64) []byte {
	return AppendUint64(dst, uint64(value))
}

// Uint32 decodes a VarInt from the start of buf. It returns the value and
// the number of bytes consumed.
//
// It fails with ErrTruncated if buf ends before a byte with a clear
// continuation bit, and with ErrOverlong if no such byte appears within
// MaxLen32 bytes. Value bits past bit 31 in the final group are discarded.
func Uint32(buf []byte) (value uint32, n int, err error) {
	var position uint
	for _, b := range buf {
		n++
		value |= uint32(b&SEGMENT_BITS) << position
		if b&CONTINUE_BIT == 0 {
			return value, n, nil
		}
		if n == MaxLen32 {
			return 0, n, ErrOverlong
		}
		position += 7
	}
	return 0, n, ErrTruncated
}

// Uint64 decodes a VarLong from the start of buf. It returns the value and
// the number of bytes consumed. Failure conditions match Uint32 with a
// MaxLen64 bound.
func Uint64(buf []byte) (value uint64, n int, err error) {
	var position uint
	for _, b := range buf {
		n++
		value |= uint64(b&SEGMENT_BITS) << position
		if b&CONTINUE_BIT == 0 {
			return value, n, nil
		}
		if n == MaxLen64 {
			return 0, n, ErrOverlong
		}
		position += 7
	}
	return 0, n, ErrTruncated
}

// Int32 decodes a VarInt from the start of buf and reinterprets the result
// as two's-complement signed.
func Int32(buf []byte) (int32, int, error) {
	value, n, err := Uint32(buf)
	return int32(value), n, err
}

// Int64 decodes a VarLong from the start of buf and reinterprets the result
// as two's-complement signed.
func Int64(buf []byte) (int64, int, error) {
	value, n, err := Uint64(buf)
	return int64(value), n, err
}

// Len32 returns the encoded length of value without encoding it.
func Len32(value uint32) int {
	count := 1
	for value >>= 7; value != 0; value >>= 7 {
		count++
	}
	return count
}

// Len64 returns the encoded length of value without encoding it.
func Len64(value uint64) int {
	count := 1
	for value >>= 7; value != 0; value >>= 7 {
		count++
	}
	return count
}
