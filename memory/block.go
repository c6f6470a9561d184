// Package memory hands out raw memory regions that live outside the Go heap.
package memory

import "unsafe"

// Page numbers a MemoryBlock can carry besides a real page index.
const (
	// NoPageNumber marks a block that was never registered with a page manager.
	NoPageNumber = -1
	// FreedInTMMPageNumber marks a block its page manager has released.
	FreedInTMMPageNumber = -2
	// FreedInAllocatorPageNumber marks a block already returned by Free.
	FreedInAllocatorPageNumber = -3
)

// Debug fill sentinels.
const (
	DebugFillCleanValue byte = 0xa5
	DebugFillFreedValue byte = 0x5a
)

// MemoryBlock describes a contiguous memory region. Off-heap blocks have no
// base object; their address points into memory obtained from a Source.
type MemoryBlock struct {
	base    []byte
	region  []byte
	address uintptr
	size    int64

	// PageNumber is the index of the block in a page manager, or one of the
	// *PageNumber sentinels.
	PageNumber int
}

func newOffHeapBlock(region []byte, size int64) *MemoryBlock {
	block := &MemoryBlock{region: region, size: size, PageNumber: NoPageNumber}
	if len(region) > 0 {
		block.address = uintptr(unsafe.Pointer(&region[0]))
	}
	return block
}

// Wrap describes a Go byte slice as an on-heap block.
func Wrap(b []byte) *MemoryBlock {
	block := &MemoryBlock{base: b, region: b, size: int64(len(b)), PageNumber: NoPageNumber}
	if len(b) > 0 {
		block.address = uintptr(unsafe.Pointer(&b[0]))
	}
	return block
}

// OffHeap reports whether the block has no owning Go object.
func (b *MemoryBlock) OffHeap() bool {
	return b.base == nil
}

// Address is the start of the region, or zero once the block is freed.
func (b *MemoryBlock) Address() uintptr {
	return b.address
}

func (b *MemoryBlock) Size() int64 {
	return b.size
}

// Bytes returns the region. It is nil once the block is freed.
func (b *MemoryBlock) Bytes() []byte {
	return b.region
}

// Fill sets every byte of the region to value.
func (b *MemoryBlock) Fill(value byte) {
	for i := range b.region {
		b.region[i] = value
	}
}
