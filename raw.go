package varwire

// Raw holds a VarInt in its encoded form. It is comparable and needs no
// allocation, which makes it convenient as a map key or a pre-encoded
// constant. The zero Raw is empty; build one with MakeRaw or RawFrom.
type Raw struct {
	buf [MaxLen32]byte
	n   uint8
}

// MakeRaw encodes value as a Raw.
func MakeRaw(value uint32) Raw {
	var r Raw
	r.n = uint8(len(AppendUint32(r.buf[:0], value)))
	return r
}

// RawFrom parses the VarInt at the start of buf and returns it in canonical
// form along with the number of input bytes consumed.
//
// The input may be loose: trailing groups that carry no value bits
// (for example 0x80 0x00) are accepted and reduced to the shortest
// encoding, so the returned Raw can be shorter than the consumed count.
// Fails with ErrTruncated or ErrOverlong like Uint32.
func RawFrom(buf []byte) (Raw, int, error) {
	value, n, err := Uint32(buf)
	if err != nil {
		return Raw{}, n, err
	}
	return MakeRaw(value), n, nil
}

// Bytes returns the encoded form.
func (r Raw) Bytes() []byte { return r.buf[:r.n] }

// Len returns the encoded length in bytes.
func (r Raw) Len() int { return int(r.n) }

// AppendTo appends the encoded form to dst.
func (r Raw) AppendTo(dst []byte) []byte { return append(dst, r.buf[:r.n]...) }

// Uint32 returns the decoded value.
func (r Raw) Uint32() uint32 {
	value, _, _ := Uint32(r.buf[:r.n])
	return value
}

// Int32 returns the decoded value reinterpreted as signed.
func (r Raw) Int32() int32 { return int32(r.Uint32()) }

// RawLong holds a VarLong in its encoded form. The zero RawLong is empty;
// build one with MakeRawLong or RawLongFrom.
type RawLong struct {
	buf [MaxLen64]byte
	n   uint8
}

// MakeRawLong encodes value as a RawLong.
func MakeRawLong(value uint64) RawLong {
	var r RawLong
	r.n = uint8(len(AppendUint64(r.buf[:0], value)))
	return r
}

// RawLongFrom parses the VarLong at the start of buf, canonicalizing loose
// encodings the way RawFrom does for VarInts.
func RawLongFrom(buf []byte) (RawLong, int, error) {
	value, n, err := Uint64(buf)
	if err != nil {
		return RawLong{}, n, err
	}
	return MakeRawLong(value), n, nil
}

// Bytes returns the encoded form.
func (r RawLong) Bytes() []byte { return r.buf[:r.n] }

// Len returns the encoded length in bytes.
func (r RawLong) Len() int { return int(r.n) }

// AppendTo appends the encoded form to dst.
func (r RawLong) AppendTo(dst []byte) []byte { return append(dst, r.buf[:r.n]...) }

// Uint64 returns the decoded value.
func (r RawLong) Uint64() uint64 {
	value, _, _ := Uint64(r.buf[:r.n])
	return value
}

// Int64 returns the decoded value reinterpreted as signed.
func (r RawLong) Int64() int64 { return int64(r.Uint64()) }

// Scan splits the VarInt prefix off buf without decoding it. enc is the
// encoded bytes exactly as they appear in buf (loose forms are not
// canonicalized) and rest is everything after them. Fails with ErrTruncated
// or ErrOverlong like Uint32.
func Scan(buf []byte) (enc, rest []byte, err error) {
	return scan(buf, MaxLen32)
}

// ScanLong splits the VarLong prefix off buf without decoding it.
func ScanLong(buf []byte) (enc, rest []byte, err error) {
	return scan(buf, MaxLen64)
}

func scan(buf []byte, maxLen int) (enc, rest []byte, err error) {
	for i, b := range buf {
		if b&CONTINUE_BIT == 0 {
			return buf[:i+1], buf[i+1:], nil
		}
		if i+1 == maxLen {
			return nil, buf, ErrOverlong
		}
	}
	return nil, buf, ErrTruncated
}
