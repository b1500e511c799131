package storage

import "github.com/ardnew/mscstore/pkg"

// FlashVolume is the contract consumed from a wear-leveled flash
// volume. Addresses are byte offsets relative to the volume start.
type FlashVolume interface {
	// Size returns the usable volume size in bytes.
	Size() uint64

	// SectorSize returns the native sector size in bytes.
	SectorSize() uint32

	// Read fills dest from the volume starting at addr.
	Read(addr uint32, dest []byte) error

	// Write stores src to the volume starting at addr. The target range
	// must be in the erased state.
	Write(addr uint32, src []byte) error

	// Erase resets [addr, addr+size) to the erased state.
	Erase(addr, size uint32) error
}

// flashBackend adapts a FlashVolume to the Backend contract.
type flashBackend struct {
	vol FlashVolume
}

// NewFlashBackend wraps a wear-leveled flash volume as a Backend.
func NewFlashBackend(vol FlashVolume) Backend {
	return &flashBackend{vol: vol}
}

// SectorCount derives the sector count from the volume size. A zero
// sector size is reported as zero sectors, never a division by zero.
func (b *flashBackend) SectorCount() uint32 {
	size := b.vol.SectorSize()
	if size == 0 {
		pkg.LogWarn(pkg.ComponentBackend, "flash sector size is zero")
		return 0
	}
	return uint32(b.vol.Size() / uint64(size))
}

func (b *flashBackend) SectorSize() uint32 {
	return b.vol.SectorSize()
}

func (b *flashBackend) ReadSector(addr, lba, offset uint32, dest []byte) error {
	return b.vol.Read(addr, dest)
}

// WriteSector erases the target range before writing. Flash cannot be
// overwritten in place; an erase failure aborts the write and surfaces
// the erase's own error, while a failure after a successful erase
// surfaces the write's error.
func (b *flashBackend) WriteSector(addr, lba, offset uint32, src []byte) error {
	if err := b.vol.Erase(addr, uint32(len(src))); err != nil {
		pkg.LogError(pkg.ComponentBackend, "erase failed",
			"addr", addr,
			"size", len(src),
			"error", err)
		return err
	}
	return b.vol.Write(addr, src)
}
