package storage

import "github.com/ardnew/mscstore/pkg"

// Card is the contract consumed from a raw block-addressable card.
// Geometry comes straight from the card's identity fields, and the card
// controller performs any internal erase on write.
type Card interface {
	// Capacity returns the total number of sectors.
	Capacity() uint32

	// SectorSize returns the native sector size in bytes.
	SectorSize() uint32

	// ReadSectors fills dest with count sectors starting at lba.
	ReadSectors(dest []byte, lba, count uint32) error

	// WriteSectors stores count sectors from src starting at lba.
	WriteSectors(src []byte, lba, count uint32) error
}

// cardBackend adapts a Card to the Backend contract. Transfers are
// converted from byte lengths into card-native sector units; there is
// no erase step on the write path.
type cardBackend struct {
	card Card
}

// NewCardBackend wraps a raw card as a Backend.
func NewCardBackend(card Card) Backend {
	return &cardBackend{card: card}
}

func (b *cardBackend) SectorCount() uint32 {
	return b.card.Capacity()
}

func (b *cardBackend) SectorSize() uint32 {
	return b.card.SectorSize()
}

func (b *cardBackend) ReadSector(addr, lba, offset uint32, dest []byte) error {
	size := b.card.SectorSize()
	if size == 0 {
		return pkg.ErrInvalidArgument
	}
	return b.card.ReadSectors(dest, lba, uint32(len(dest))/size)
}

func (b *cardBackend) WriteSector(addr, lba, offset uint32, src []byte) error {
	size := b.card.SectorSize()
	if size == 0 {
		return pkg.ErrInvalidArgument
	}
	return b.card.WriteSectors(src, lba, uint32(len(src))/size)
}
