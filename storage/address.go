package storage

import (
	"math"

	"github.com/ardnew/mscstore/pkg"
)

// FlatAddress converts a logical block address and byte offset into a
// flat byte address, lba*sectorSize + offset, in 32-bit unsigned space.
// It returns [pkg.ErrOverflow] if either the multiplication or the
// addition would wrap.
func FlatAddress(lba, sectorSize, offset uint32) (uint32, error) {
	if sectorSize != 0 && lba > math.MaxUint32/sectorSize {
		return 0, pkg.ErrOverflow
	}
	base := lba * sectorSize
	if offset > math.MaxUint32-base {
		return 0, pkg.ErrOverflow
	}
	return base + offset, nil
}

// WriteAddress computes the flat byte address for a write and enforces
// the write-path alignment contract: both the address and size must be
// multiples of the sector size, because erase operates on sector-aligned
// ranges. Returns [pkg.ErrOverflow] or [pkg.ErrAlignment].
//
// The read path deliberately has no alignment check; sub-sector reads
// are permitted by the backends.
func WriteAddress(lba, sectorSize, offset uint32, size int) (uint32, error) {
	addr, err := FlatAddress(lba, sectorSize, offset)
	if err != nil {
		return 0, err
	}
	if sectorSize == 0 {
		return 0, pkg.ErrAlignment
	}
	if addr%sectorSize != 0 || size%int(sectorSize) != 0 {
		return 0, pkg.ErrAlignment
	}
	return addr, nil
}
