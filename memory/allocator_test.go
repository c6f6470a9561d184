package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// heapRecorder keeps released regions reachable so tests can inspect them.
type heapRecorder struct {
	mu       sync.Mutex
	released [][]byte
}

func (s *heapRecorder) Reserve(size int64) ([]byte, error) {
	return make([]byte, size), nil
}

func (s *heapRecorder) Release(region []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = append(s.released, region)
	return nil
}

type failingSource struct{}

func (failingSource) Reserve(size int64) ([]byte, error) {
	return nil, errors.New("no space left")
}

func (failingSource) Release(region []byte) error {
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}

func assertFilled(t *testing.T, region []byte, value byte) {
	t.Helper()
	for i, b := range region {
		if b != value {
			t.Fatalf("byte %d = %#x, want %#x", i, b, value)
		}
	}
}

func TestAllocateAndFree(t *testing.T) {
	a := NewUnsafeAllocator(Options{DebugFill: boolPtr(true)})

	block, err := a.Allocate(4096)
	require.NoError(t, err)
	assert.True(t, block.OffHeap())
	assert.NotZero(t, block.Address())
	assert.Equal(t, int64(4096), block.Size())
	assert.Equal(t, NoPageNumber, block.PageNumber)
	assertFilled(t, block.Bytes(), DebugFillCleanValue)
	assert.Equal(t, Stats{Blocks: 1, Bytes: 4096}, a.Stats())

	a.Free(block)
	assert.Zero(t, block.Address())
	assert.Nil(t, block.Bytes())
	assert.Equal(t, FreedInAllocatorPageNumber, block.PageNumber)
	assert.Equal(t, Stats{}, a.Stats())
}

func TestDebugFillOnFree(t *testing.T) {
	source := &heapRecorder{}
	a := NewUnsafeAllocator(Options{Source: source, DebugFill: boolPtr(true)})

	block, err := a.Allocate(64)
	require.NoError(t, err)
	assertFilled(t, block.Bytes(), DebugFillCleanValue)

	block.Bytes()[0] = 1
	a.Free(block)
	require.Len(t, source.released, 1)
	assert.Len(t, source.released[0], 64)
	assertFilled(t, source.released[0], DebugFillFreedValue)
}

func TestDebugFillDisabled(t *testing.T) {
	source := &heapRecorder{}
	a := NewUnsafeAllocator(Options{Source: source, DebugFill: boolPtr(false)})
	assert.False(t, a.DebugFill())

	block, err := a.Allocate(16)
	require.NoError(t, err)
	assertFilled(t, block.Bytes(), 0)

	a.Free(block)
	assertFilled(t, source.released[0], 0)
}

func TestDoubleFree(t *testing.T) {
	a := NewUnsafeAllocator(Options{})
	block, err := a.Allocate(128)
	require.NoError(t, err)

	a.Free(block)
	assert.PanicsWithValue(t, "memory: page has already been freed", func() {
		a.Free(block)
	})
}

func TestFreeRejectsOnHeapBlock(t *testing.T) {
	a := NewUnsafeAllocator(Options{})
	block := Wrap(make([]byte, 8))
	assert.False(t, block.OffHeap())
	assert.Panics(t, func() {
		a.Free(block)
	})
}

func TestFreePageManagerOwnership(t *testing.T) {
	a := NewUnsafeAllocator(Options{Source: &heapRecorder{}})

	owned, err := a.Allocate(8)
	require.NoError(t, err)
	owned.PageNumber = 3
	assert.PanicsWithValue(t, "memory: page 3 must be freed through its page manager", func() {
		a.Free(owned)
	})

	owned.PageNumber = FreedInTMMPageNumber
	assert.NotPanics(t, func() {
		a.Free(owned)
	})
	assert.Equal(t, FreedInAllocatorPageNumber, owned.PageNumber)
}

func TestAllocateZero(t *testing.T) {
	a := NewUnsafeAllocator(Options{Source: failingSource{}})
	block, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Zero(t, block.Size())
	a.Free(block)
	assert.Equal(t, FreedInAllocatorPageNumber, block.PageNumber)
}

func TestAllocateNegative(t *testing.T) {
	a := NewUnsafeAllocator(Options{})
	_, err := a.Allocate(-1)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrOutOfMemory))
}

func TestOutOfMemory(t *testing.T) {
	a := NewUnsafeAllocator(Options{Source: failingSource{}})
	_, err := a.Allocate(1 << 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	var oom *OutOfMemoryError
	require.ErrorAs(t, err, &oom)
	assert.Equal(t, int64(1<<20), oom.Size)
	assert.EqualError(t, err, "unable to acquire 1048576 bytes of memory: no space left")
	assert.Equal(t, Stats{}, a.Stats())
}

func TestAllocateBeyondAddressSpace(t *testing.T) {
	defer func(limit int64) { maxRegionSize = limit }(maxRegionSize)
	maxRegionSize = 1 << 10

	source := &heapRecorder{}
	a := NewUnsafeAllocator(Options{Source: source})
	_, err := a.Allocate(1<<10 + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.EqualError(t, err, "unable to acquire 1025 bytes of memory: size exceeds the 1024 byte address space limit")
	assert.Equal(t, Stats{}, a.Stats())

	block, err := a.Allocate(1 << 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<10), block.Size())
	a.Free(block)
}

func TestConcurrentAllocations(t *testing.T) {
	a := NewUnsafeAllocator(Options{Source: &heapRecorder{}, DebugFill: boolPtr(true)})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				block, err := a.Allocate(32)
				if !assert.NoError(t, err) {
					return
				}
				a.Free(block)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, Stats{}, a.Stats())
}

func TestParseDebugFill(t *testing.T) {
	for value, want := range map[string]bool{
		"":      false,
		"true":  true,
		"1":     true,
		"false": false,
		"bogus": false,
	} {
		assert.Equal(t, want, parseDebugFill(value), "%q", value)
	}
}
