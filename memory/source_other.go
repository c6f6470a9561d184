//go:build !(linux || darwin || freebsd)

package memory

// heapSource stands in for anonymous mappings on platforms without them.
type heapSource struct{}

func defaultSource() Source {
	return heapSource{}
}

func (heapSource) Reserve(size int64) ([]byte, error) {
	return make([]byte, size), nil
}

func (heapSource) Release(region []byte) error {
	return nil
}
