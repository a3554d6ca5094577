package random

import (
	"encoding/base64"
	"sync"
	"syscall"

	"github.com/pkg/errors"

	"sysrand/internal/convert"
	"sysrand/internal/security"
)

// ErrExhausted is an error that the operating system random source returned
// no data before the requested length was reached.
var ErrExhausted = errors.New("random source is exhausted")

var (
	gSource *Source
)

func init() {
	gSource = NewSource()
}

// Source is used to read data from the operating system random source.
// The underlying platform source is selected and acquired on the first
// read, then reused until Close is called. It is safe for concurrent use,
// but Close must not be called while other reads are in flight.
type Source struct {
	src *source
	m   sync.Mutex
}

// NewSource is used to create a source, it will not acquire any resource
// until the first read.
func NewSource() *Source {
	return new(Source)
}

func (s *Source) get() (*source, error) {
	s.m.Lock()
	defer s.m.Unlock()
	if s.src == nil {
		src, err := newSource()
		if err != nil {
			return nil, err
		}
		s.src = src
	}
	return s.src, nil
}

// Read is used to fill b with data from the operating system random
// source. On success every byte in b has been written exactly once,
// otherwise b is covered and must not be used.
func (s *Source) Read(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	src, err := s.get()
	if err != nil {
		return err
	}
	err = src.Read(b)
	if err != nil {
		security.CoverBytes(b)
		return err
	}
	return nil
}

// Bytes is used to generate random bytes with the given size.
func (s *Source) Bytes(n int) ([]byte, error) {
	if n < 1 {
		return nil, nil
	}
	b := make([]byte, n)
	err := s.Read(b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Uint32 is used to generate a random uint32 with native byte order.
func (s *Source) Uint32() (uint32, error) {
	b := make([]byte, 4)
	err := s.Read(b)
	if err != nil {
		return 0, err
	}
	return convert.NEBytesToUint32(b), nil
}

// Uint64 is used to generate a random uint64 with native byte order.
func (s *Source) Uint64() (uint64, error) {
	b := make([]byte, 8)
	err := s.Read(b)
	if err != nil {
		return 0, err
	}
	return convert.NEBytesToUint64(b), nil
}

// String is used to generate a standard base64 string that encodes
// n random bytes, the result length is 4*ceil(n/3) characters.
func (s *Source) String(n int) (string, error) {
	if n < 1 {
		return "", nil
	}
	b, err := s.Bytes(n)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Close is used to release the resource that the platform source holds,
// it is idempotent. The next read will reacquire the resource.
func (s *Source) Close() error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.src == nil {
		return nil
	}
	err := s.src.Close()
	s.src = nil
	return err
}

// readFull is used to fill b by repeatedly calling the read primitive on
// the remaining sub buffer. Interrupted and would-block results are retried
// on the same sub buffer, a zero count before b is full means the source
// is exhausted.
func readFull(read func([]byte) (int, error), b []byte) error {
	for len(b) > 0 {
		n, err := read(b)
		if err != nil {
			if err == syscall.EINTR || err == syscall.EAGAIN {
				continue
			}
			return errors.WithStack(err)
		}
		if n == 0 {
			return errors.WithStack(ErrExhausted)
		}
		b = b[n:]
	}
	return nil
}

// Read is used to fill b from the process wide source.
func Read(b []byte) error {
	return gSource.Read(b)
}

// Bytes is used to generate random bytes from the process wide source.
func Bytes(n int) ([]byte, error) {
	return gSource.Bytes(n)
}

// Uint32 is used to generate a random uint32 from the process wide source.
func Uint32() (uint32, error) {
	return gSource.Uint32()
}

// Uint64 is used to generate a random uint64 from the process wide source.
func Uint64() (uint64, error) {
	return gSource.Uint64()
}

// String is used to generate a random base64 string from the process
// wide source.
func String(n int) (string, error) {
	return gSource.String(n)
}

// Close is used to close the process wide source.
func Close() error {
	return gSource.Close()
}
