package storage

// Backend binds the four storage operation slots to one concrete
// physical backend. The binding is resolved once when a Handle is
// opened and is immutable for the life of the handle.
//
// The handle pre-computes and validates the flat byte address before
// invoking a slot: flat-addressed backends (wear-leveled flash) consume
// addr, while sector-addressed backends (raw cards) consume lba and
// derive the sector count from the buffer length.
type Backend interface {
	// SectorCount returns the total number of addressable sectors.
	SectorCount() uint32

	// SectorSize returns the native sector size in bytes.
	SectorSize() uint32

	// ReadSector reads len(dest) bytes. addr is lba*SectorSize()+offset,
	// already checked for overflow. Sub-sector lengths are permitted.
	ReadSector(addr, lba, offset uint32, dest []byte) error

	// WriteSector writes len(src) bytes. addr and len(src) are always
	// sector-aligned by the time the slot is invoked.
	WriteSector(addr, lba, offset uint32, src []byte) error
}
