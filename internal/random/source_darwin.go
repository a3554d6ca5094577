package random

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// getentropy refuses requests larger than 256 bytes.
const maxChunk = 256

// source uses the getentropy syscall, it needs no handle.
type source struct{}

func newSource() (*source, error) {
	return new(source), nil
}

func (s *source) Read(b []byte) error {
	for len(b) > 0 {
		n := len(b)
		if n > maxChunk {
			n = maxChunk
		}
		err := unix.Getentropy(b[:n])
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return errors.Wrap(err, "failed to call getentropy")
		}
		b = b[n:]
	}
	return nil
}

func (s *source) Close() error {
	return nil
}
