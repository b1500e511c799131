package msc

import (
	"math"

	"github.com/ardnew/mscstore/pkg"
)

// Inquiry returns the device identity strings, truncated or space-padded
// to 8, 16, and 4 bytes at construction.
func (d *Device) Inquiry(lun uint8) (vendor [VendorIDLen]byte, product [ProductIDLen]byte, revision [ProductRevLen]byte) {
	return d.vendorID, d.productID, d.productRev
}

// TestUnitReady reports whether the unit can accept commands. Media is
// assumed always present at this layer; detection belongs to the
// backend drivers.
func (d *Device) TestUnitReady(lun uint8) bool {
	return true
}

// Capacity returns the block count and block size of the active
// backend. The block size is narrowed to 16 bits by the READ CAPACITY
// wire format; sector sizes that do not fit are logged before
// truncation.
func (d *Device) Capacity(lun uint8) (blockCount uint32, blockSize uint16) {
	count := d.store.SectorCount()
	size := d.store.SectorSize()

	if size > math.MaxUint16 {
		pkg.LogWarn(pkg.ComponentCommand, "sector size truncated to 16 bits",
			"sectorSize", size)
	}

	return count, uint16(size)
}

// Read10 services a READ(10) data phase. It returns the number of bytes
// placed in buf, or 0 on any failure: this path has no structured error
// channel, so errors are logged here and collapsed.
func (d *Device) Read10(lun uint8, lba, offset uint32, buf []byte) int32 {
	n, err := d.store.ReadSector(lba, offset, buf)
	if err != nil {
		pkg.LogError(pkg.ComponentCommand, "READ(10) failed",
			"lun", lun,
			"lba", lba,
			"offset", offset,
			"size", len(buf),
			"error", err)
		d.setSense(SenseMediumError, ASCNoAdditionalInfo, ASCQDefault)
		return 0
	}

	d.setSense(SenseNoSense, ASCNoAdditionalInfo, ASCQDefault)
	return int32(n)
}

// Write10 services a WRITE(10) data phase. It returns the number of
// bytes written from buf, or 0 on any failure.
func (d *Device) Write10(lun uint8, lba, offset uint32, buf []byte) int32 {
	n, err := d.store.WriteSector(lba, offset, buf)
	if err != nil {
		pkg.LogError(pkg.ComponentCommand, "WRITE(10) failed",
			"lun", lun,
			"lba", lba,
			"offset", offset,
			"size", len(buf),
			"error", err)
		d.setSense(SenseMediumError, ASCNoAdditionalInfo, ASCQDefault)
		return 0
	}

	d.setSense(SenseNoSense, ASCNoAdditionalInfo, ASCQDefault)
	return int32(n)
}

// Command handles SCSI commands outside the built-in set. It returns
// the number of bytes processed, or CommandStall to make the front end
// stall the transfer and report failed status. Rejections record an
// ILLEGAL REQUEST sense pair for the following REQUEST SENSE.
func (d *Device) Command(lun uint8, cmd []byte, buf []byte) int32 {
	if len(cmd) == 0 {
		d.setSense(SenseIllegalRequest, ASCInvalidCommand, ASCQDefault)
		return CommandStall
	}

	switch cmd[0] {
	case SCSIPreventAllowRemoval:
		// Acknowledged without acting; media removal is not controlled
		// at this layer.
		d.setSense(SenseNoSense, ASCNoAdditionalInfo, ASCQDefault)
		return 0

	default:
		pkg.LogWarn(pkg.ComponentCommand, "unsupported SCSI command",
			"lun", lun,
			"opcode", cmd[0])
		d.setSense(SenseIllegalRequest, ASCInvalidCommand, ASCQDefault)
		return CommandStall
	}
}

// StartStop services a START STOP UNIT command. The unit is always in
// the active state at this layer, so the command is acknowledged
// without acting.
func (d *Device) StartStop(lun, powerCondition uint8, start, loadEject bool) bool {
	pkg.LogDebug(pkg.ComponentCommand, "START STOP UNIT",
		"lun", lun,
		"powerCondition", powerCondition,
		"start", start,
		"loadEject", loadEject)
	return true
}
