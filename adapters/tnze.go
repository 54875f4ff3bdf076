// Package adapters bridges varwire to github.com/Tnze/go-mc so its packet
// types can carry values decoded with strict length checking. VarInt and
// VarLong satisfy go-mc's pk.Field and report varwire.ErrOverlong /
// varwire.ErrTruncated on malformed input, where go-mc's own field types
// keep reading.
package adapters

import (
	"io"

	pk "github.com/Tnze/go-mc/net/packet"

	"github.com/Versifine/varwire"
)

// VarInt is a go-mc compatible VarInt field backed by varwire.
type VarInt int32

// VarLong is a go-mc compatible VarLong field backed by varwire.
type VarLong int64

var (
	_ pk.Field = (*VarInt)(nil)
	_ pk.Field = (*VarLong)(nil)
)

func (v VarInt) WriteTo(w io.Writer) (int64, error) {
	n, err := varwire.WriteInt32(w, int32(v))
	return int64(n), err
}

func (v *VarInt) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	value, err := varwire.ReadInt32(cr)
	*v = VarInt(value)
	return cr.n, err
}

func (v VarLong) WriteTo(w io.Writer) (int64, error) {
	n, err := varwire.WriteInt64(w, int64(v))
	return int64(n), err
}

func (v *VarLong) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	value, err := varwire.ReadInt64(cr)
	*v = VarLong(value)
	return cr.n, err
}

// countingReader tracks consumed bytes for the pk.FieldDecoder contract.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
