package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"github.com/spf13/cast"
)

// DebugFillEnv enables debug fill for allocators that do not set it
// explicitly. It is read once per process.
const DebugFillEnv = "SPARKSQL_MEMORY_DEBUG_FILL"

// ErrOutOfMemory is matched by every *OutOfMemoryError.
var ErrOutOfMemory = errors.New("out of memory")

// OutOfMemoryError is returned by Allocate when the source cannot provide
// the requested bytes.
type OutOfMemoryError struct {
	Size int64
	Err  error
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("unable to acquire %d bytes of memory: %v", e.Size, e.Err)
}

func (e *OutOfMemoryError) Unwrap() error {
	return e.Err
}

func (e *OutOfMemoryError) Is(target error) bool {
	return target == ErrOutOfMemory
}

// Source provides raw memory regions.
type Source interface {
	Reserve(size int64) ([]byte, error)
	Release(region []byte) error
}

var (
	debugFillOnce    sync.Once
	debugFillDefault bool
)

// DebugFillEnabled reports the process-wide debug fill setting taken from
// SPARKSQL_MEMORY_DEBUG_FILL.
func DebugFillEnabled() bool {
	debugFillOnce.Do(func() {
		debugFillDefault = parseDebugFill(os.Getenv(DebugFillEnv))
	})
	return debugFillDefault
}

func parseDebugFill(value string) bool {
	if value == "" {
		return false
	}
	enabled, err := cast.ToBoolE(value)
	if err != nil {
		slog.Warn("Ignoring invalid debug fill setting", "env", DebugFillEnv, "value", value)
		return false
	}
	return enabled
}

// Options configures an UnsafeAllocator.
type Options struct {
	// Source defaults to anonymous memory mappings.
	Source Source
	// DebugFill overrides DebugFillEnabled when set.
	DebugFill *bool
}

// Stats is a snapshot of the blocks an allocator has handed out and not
// yet freed.
type Stats struct {
	Blocks int64
	Bytes  int64
}

// UnsafeAllocator allocates off-heap MemoryBlocks. It is safe for
// concurrent use, but a given block must not be freed by two goroutines.
type UnsafeAllocator struct {
	source    Source
	debugFill bool

	blocks atomic.Int64
	bytes  atomic.Int64
}

func NewUnsafeAllocator(opts Options) *UnsafeAllocator {
	a := &UnsafeAllocator{source: opts.Source, debugFill: DebugFillEnabled()}
	if a.source == nil {
		a.source = defaultSource()
	}
	if opts.DebugFill != nil {
		a.debugFill = *opts.DebugFill
	}
	return a
}

// DebugFill reports whether blocks are filled with sentinels on allocation
// and on free.
func (a *UnsafeAllocator) DebugFill() bool {
	return a.debugFill
}

// maxRegionSize is the largest region a Source can map; sizes are passed
// to it as int.
var maxRegionSize int64 = math.MaxInt

// Allocate reserves size bytes. The contents are undefined unless debug
// fill is enabled, in which case every byte is DebugFillCleanValue.
func (a *UnsafeAllocator) Allocate(size int64) (*MemoryBlock, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid allocation size %d", size)
	}

	if size > maxRegionSize {
		return nil, &OutOfMemoryError{Size: size, Err: fmt.Errorf("size exceeds the %d byte address space limit", maxRegionSize)}
	}

	var region []byte
	if size > 0 {
		var err error
		region, err = a.source.Reserve(size)
		if err != nil {
			return nil, &OutOfMemoryError{Size: size, Err: err}
		}
		if int64(len(region)) < size {
			_ = a.source.Release(region)
			return nil, &OutOfMemoryError{Size: size, Err: fmt.Errorf("source returned %d bytes", len(region))}
		}
		region = region[:size:size]
	}

	block := newOffHeapBlock(region, size)
	if a.debugFill {
		block.Fill(DebugFillCleanValue)
	}
	a.blocks.Add(1)
	a.bytes.Add(size)
	slog.Debug("Allocated memory block", "size", size, "address", fmt.Sprintf("%#x", block.address))
	return block, nil
}

// Free returns an off-heap block to the source and invalidates it. Blocks
// still owned by a page manager, on-heap blocks and blocks that were
// already freed are programming errors and cause a panic.
func (a *UnsafeAllocator) Free(block *MemoryBlock) {
	if !block.OffHeap() {
		panic("memory: on-heap block passed to the off-heap allocator")
	}
	if block.PageNumber == FreedInAllocatorPageNumber {
		panic("memory: page has already been freed")
	}
	if block.PageNumber != NoPageNumber && block.PageNumber != FreedInTMMPageNumber {
		panic(fmt.Sprintf("memory: page %d must be freed through its page manager", block.PageNumber))
	}

	if a.debugFill {
		block.Fill(DebugFillFreedValue)
	}
	if block.region != nil {
		if err := a.source.Release(block.region); err != nil {
			panic(fmt.Sprintf("memory: release %d bytes at %#x: %v", block.size, block.address, err))
		}
	}
	slog.Debug("Freed memory block", "size", block.size, "address", fmt.Sprintf("%#x", block.address))

	a.blocks.Add(-1)
	a.bytes.Add(-block.size)
	block.region = nil
	block.address = 0
	block.PageNumber = FreedInAllocatorPageNumber
}

// Stats returns the blocks currently outstanding.
func (a *UnsafeAllocator) Stats() Stats {
	return Stats{Blocks: a.blocks.Load(), Bytes: a.bytes.Load()}
}
