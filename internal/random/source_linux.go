package random

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const devicePath = "/dev/urandom"

// ErrNotCharDevice is an error that the opened random device is not a
// character device, it appears if the device path has been replaced
// with a regular file.
var ErrNotCharDevice = errors.New("random device is not a character device")

// source uses the getrandom syscall, if the kernel does not provide it
// or the syscall is filtered, it falls back to the random device.
type source struct {
	useSyscall bool
	fd         int
}

func newSource() (*source, error) {
	ok, err := probeGetrandom()
	if err != nil {
		return nil, err
	}
	if ok {
		return &source{useSyscall: true, fd: -1}, nil
	}
	fd, err := openDevice()
	if err != nil {
		return nil, err
	}
	return &source{fd: fd}, nil
}

// probeGetrandom is used to check the getrandom syscall is available
// with a one byte non-blocking trial call. EAGAIN means the syscall
// exists but the kernel entropy pool is not initialized yet, the
// blocking call will wait for it.
func probeGetrandom() (bool, error) {
	b := make([]byte, 1)
	for {
		_, err := unix.Getrandom(b, unix.GRND_NONBLOCK)
		switch err {
		case nil, unix.EAGAIN:
			return true, nil
		case unix.EINTR:
		case unix.ENOSYS, unix.EPERM:
			return false, nil
		default:
			return false, errors.Wrap(err, "failed to probe getrandom")
		}
	}
}

// openDevice is used to open the random device, set close-on-exec flag
// and check it is a character device.
func openDevice() (int, error) {
	fd, err := unix.Open(devicePath, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", devicePath)
	}
	var ok bool
	defer func() {
		if !ok {
			_ = unix.Close(fd)
		}
	}()
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get descriptor flags about %s", devicePath)
	}
	_, err = unix.FcntlInt(uintptr(fd), unix.F_SETFD, flags|unix.FD_CLOEXEC)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to set close-on-exec flag about %s", devicePath)
	}
	stat := new(unix.Stat_t)
	err = unix.Fstat(fd, stat)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to stat %s", devicePath)
	}
	if stat.Mode&unix.S_IFMT != unix.S_IFCHR {
		return 0, errors.WithStack(ErrNotCharDevice)
	}
	ok = true
	return fd, nil
}

func (s *source) Read(b []byte) error {
	if s.useSyscall {
		return readFull(func(p []byte) (int, error) {
			return unix.Getrandom(p, 0)
		}, b)
	}
	return readFull(func(p []byte) (int, error) {
		return unix.Read(s.fd, p)
	}, b)
}

func (s *source) Close() error {
	if s.fd == -1 {
		return nil
	}
	err := unix.Close(s.fd)
	s.fd = -1
	if err != nil {
		return errors.Wrapf(err, "failed to close %s", devicePath)
	}
	return nil
}
