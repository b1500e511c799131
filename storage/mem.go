package storage

import (
	"sync"

	"github.com/ardnew/mscstore/pkg"
)

// eraseFill is the value flash cells hold in the erased state.
const eraseFill = 0xFF

// MemoryVolume implements FlashVolume using an in-memory buffer. Erase
// fills the target range with 0xFF, mirroring flash erase semantics.
type MemoryVolume struct {
	data       []byte
	sectorSize uint32
	mutex      sync.RWMutex
}

// NewMemoryVolume creates an in-memory flash volume with the given size
// and sector size. The volume starts fully erased.
func NewMemoryVolume(size uint64, sectorSize uint32) *MemoryVolume {
	data := make([]byte, size)
	for i := range data {
		data[i] = eraseFill
	}
	return &MemoryVolume{
		data:       data,
		sectorSize: sectorSize,
	}
}

// Size returns the volume size in bytes.
func (m *MemoryVolume) Size() uint64 {
	return uint64(len(m.data))
}

// SectorSize returns the sector size.
func (m *MemoryVolume) SectorSize() uint32 {
	return m.sectorSize
}

// Read reads bytes from the volume.
func (m *MemoryVolume) Read(addr uint32, dest []byte) error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	end := uint64(addr) + uint64(len(dest))
	if end > uint64(len(m.data)) {
		return pkg.ErrOutOfRange
	}

	copy(dest, m.data[addr:end])
	return nil
}

// Write writes bytes to the volume.
func (m *MemoryVolume) Write(addr uint32, src []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	end := uint64(addr) + uint64(len(src))
	if end > uint64(len(m.data)) {
		return pkg.ErrOutOfRange
	}

	copy(m.data[addr:end], src)
	return nil
}

// Erase resets the range to the erased fill value.
func (m *MemoryVolume) Erase(addr, size uint32) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	end := uint64(addr) + uint64(size)
	if end > uint64(len(m.data)) {
		return pkg.ErrOutOfRange
	}

	for i := uint64(addr); i < end; i++ {
		m.data[i] = eraseFill
	}
	return nil
}

// MemoryCard implements Card using an in-memory buffer.
type MemoryCard struct {
	data       []byte
	capacity   uint32
	sectorSize uint32
	readOnly   bool
	mutex      sync.RWMutex
}

// NewMemoryCard creates an in-memory card with capacity sectors of
// sectorSize bytes each.
func NewMemoryCard(capacity, sectorSize uint32) *MemoryCard {
	return &MemoryCard{
		data:       make([]byte, uint64(capacity)*uint64(sectorSize)),
		capacity:   capacity,
		sectorSize: sectorSize,
	}
}

// Capacity returns the number of sectors.
func (c *MemoryCard) Capacity() uint32 {
	return c.capacity
}

// SectorSize returns the sector size.
func (c *MemoryCard) SectorSize() uint32 {
	return c.sectorSize
}

// ReadSectors reads count sectors starting at lba into dest.
func (c *MemoryCard) ReadSectors(dest []byte, lba, count uint32) error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if uint64(lba)+uint64(count) > uint64(c.capacity) {
		return pkg.ErrOutOfRange
	}

	length := uint64(count) * uint64(c.sectorSize)
	if uint64(len(dest)) < length {
		return pkg.ErrBufferTooSmall
	}

	offset := uint64(lba) * uint64(c.sectorSize)
	copy(dest, c.data[offset:offset+length])
	return nil
}

// WriteSectors writes count sectors from src starting at lba.
func (c *MemoryCard) WriteSectors(src []byte, lba, count uint32) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.readOnly {
		return pkg.ErrReadOnly
	}

	if uint64(lba)+uint64(count) > uint64(c.capacity) {
		return pkg.ErrOutOfRange
	}

	length := uint64(count) * uint64(c.sectorSize)
	if uint64(len(src)) < length {
		return pkg.ErrBufferTooSmall
	}

	offset := uint64(lba) * uint64(c.sectorSize)
	copy(c.data[offset:offset+length], src)
	return nil
}

// IsReadOnly returns whether the card is read-only.
func (c *MemoryCard) IsReadOnly() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.readOnly
}

// SetReadOnly sets the read-only flag.
func (c *MemoryCard) SetReadOnly(readOnly bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.readOnly = readOnly
}
