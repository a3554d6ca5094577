package random

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

const (
	moduleName = "advapi32.dll"

	// RtlGenRandom is exported under this name.
	procName = "SystemFunction036"
)

// source uses RtlGenRandom in advapi32.dll, the library handle is held
// so that Close can release it.
type source struct {
	module windows.Handle
	proc   uintptr
}

func newSource() (*source, error) {
	module, err := windows.LoadLibraryEx(moduleName, 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", moduleName)
	}
	proc, err := windows.GetProcAddress(module, procName)
	if err != nil {
		_ = windows.FreeLibrary(module)
		return nil, errors.Wrapf(err, "failed to find %s", procName)
	}
	return &source{module: module, proc: proc}, nil
}

// Read fills the whole buffer with one call, RtlGenRandom never
// returns a short result.
func (s *source) Read(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	ret, _, _ := syscall.Syscall(s.proc, 2, uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)), 0) // #nosec
	if ret == 0 {
		return errors.Errorf("failed to call %s", procName)
	}
	return nil
}

func (s *source) Close() error {
	if s.module == 0 {
		return nil
	}
	err := windows.FreeLibrary(s.module)
	s.module = 0
	if err != nil {
		return errors.Wrapf(err, "failed to free %s", moduleName)
	}
	return nil
}
