package csvfeed

import (
	"fmt"
	"os"
	"syscall"
)

// EnsurePipe creates a named FIFO at the given path unless one already
// exists there. A regular file at the path is an error.
func EnsurePipe(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.Mode()&os.ModeNamedPipe == 0 {
			return fmt.Errorf("csvfeed: %s exists and is not a named pipe", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	if err := syscall.Mkfifo(path, 0o644); err != nil {
		return fmt.Errorf("csvfeed: mkfifo %s: %w", path, err)
	}
	return nil
}

// OpenPipeReader opens the named FIFO for reading. The call blocks until a
// writer attaches to the other end.
func OpenPipeReader(path string) (*os.File, error) {
	if err := EnsurePipe(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDONLY, 0)
}

// OpenPipeWriter opens the named FIFO for writing. The call blocks until a
// reader attaches to the other end.
func OpenPipeWriter(path string) (*os.File, error) {
	if err := EnsurePipe(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_WRONLY, 0)
}
