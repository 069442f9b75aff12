package actions

import (
	"bytes"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// Envelope is the canonical byte sequence submitted to the dispatch
// endpoint: versionByte (1) || actionId (3, big-endian) || payload.
// Total length is always 4 + len(payload).
type Envelope []byte

// Version returns the protocol version byte the envelope was encoded under.
func (e Envelope) Version() uint8 { return e[0] }

// ActionID returns the 3-byte discriminator.
func (e Envelope) ActionID() ActionID {
	return ActionID(e[1])<<16 | ActionID(e[2])<<8 | ActionID(e[3])
}

// Payload returns the positional field bytes after the 4-byte header.
func (e Envelope) Payload() []byte { return e[4:] }

// Encode serializes an action into its dispatch envelope under the given
// protocol version. Encoding is deterministic and cannot fail for well-typed
// input; field validation belongs to the calling operation, before this
// point.
func Encode(a Action, version uint8) Envelope {
	var w payloadWriter
	a.encodePayload(&w)
	payload := w.bytes()

	id := a.ID()
	env := make(Envelope, 0, 4+len(payload))
	env = append(env, version, byte(id>>16), byte(id>>8), byte(id))
	env = append(env, payload...)
	return env
}

// payloadWriter builds the positional payload: fixed-width big-endian
// integers, raw 20-byte addresses, u32-length-prefixed strings. Writes to a
// bytes.Buffer never fail, so the writer exposes no errors.
type payloadWriter struct {
	buf bytes.Buffer
}

func (w *payloadWriter) putUint8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *payloadWriter) putUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *payloadWriter) putUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *payloadWriter) putBool(v bool) {
	if v {
		w.buf.WriteByte(1)
		return
	}
	w.buf.WriteByte(0)
}

func (w *payloadWriter) putAddress(a common.Address) {
	w.buf.Write(a.Bytes())
}

func (w *payloadWriter) putString(s string) {
	w.putUint32(uint32(len(s)))
	w.buf.WriteString(s)
}

func (w *payloadWriter) putRaw(b []byte) {
	w.buf.Write(b)
}

func (w *payloadWriter) bytes() []byte {
	return w.buf.Bytes()
}
