//go:build linux || darwin || freebsd

package memory

import "golang.org/x/sys/unix"

// mmapSource maps anonymous private memory for each region.
type mmapSource struct{}

func defaultSource() Source {
	return mmapSource{}
}

func (mmapSource) Reserve(size int64) ([]byte, error) {
	return unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func (mmapSource) Release(region []byte) error {
	return unix.Munmap(region)
}
