package lwm2mtlv

import (
	"encoding/binary"
	"io"

	"github.com/sirupsen/logrus"
)

// _lg is the package-level logger the frame, resource and container codec
// functions write one trace/debug line to after a successful operation;
// EncodeResourceValue, DecodeResourceValue and EncodeObject do not log, and
// failures are returned rather than logged. It defaults to a logger with
// output discarded so the library is silent unless a caller opts in, and can
// be redirected with SetLogger exactly like the teacher's transport layer did
// for its frame logging.
var _lg = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	lg := logrus.New()
	lg.SetOutput(io.Discard)
	return lg
}

// SetLogger redirects the package's internal trace/debug logging to lg.
func SetLogger(lg *logrus.Logger) {
	_lg = lg
}

// serializeBigEndianUint16 writes i as a 2-byte big-endian field.
func serializeBigEndianUint16(i uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, i)
	return b
}

// parseBigEndianUint16 reads a 2-byte big-endian unsigned field.
func parseBigEndianUint16(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

// serializeBigEndianUint24 writes the low 24 bits of i as a 3-byte
// big-endian field (used for the 3-byte TLV length form).
func serializeBigEndianUint24(i uint32) []byte {
	return []byte{byte(i >> 16), byte(i >> 8), byte(i)}
}

// parseBigEndianUint24 reads a 3-byte big-endian unsigned field into a
// uint32.
func parseBigEndianUint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}
