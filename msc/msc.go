package msc

import (
	"sync"

	"github.com/ardnew/mscstore/storage"
)

// Device maps the block-command surface a SCSI/BOT front end invokes
// (INQUIRY, TEST UNIT READY, READ CAPACITY, READ(10), WRITE(10), and a
// passthrough for everything else) onto a [storage.Handle].
type Device struct {
	store *storage.Handle

	// Identity strings, padded at construction
	vendorID   [VendorIDLen]byte
	productID  [ProductIDLen]byte
	productRev [ProductRevLen]byte

	// Sense data (for REQUEST SENSE)
	mutex    sync.RWMutex
	senseKey uint8
	asc      uint8
	ascq     uint8
}

// New creates a command adapter over store. vendor, product, and
// revision are truncated or space-padded to 8, 16, and 4 characters
// respectively.
func New(store *storage.Handle, vendor, product, revision string) *Device {
	d := &Device{store: store}
	copy(d.vendorID[:], padString(vendor, VendorIDLen))
	copy(d.productID[:], padString(product, ProductIDLen))
	copy(d.productRev[:], padString(revision, ProductRevLen))
	d.setSense(SenseNoSense, ASCNoAdditionalInfo, ASCQDefault)
	return d
}

// setSense records sense data for the next REQUEST SENSE command.
func (d *Device) setSense(key, asc, ascq uint8) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.senseKey = key
	d.asc = asc
	d.ascq = ascq
}

// Sense returns the sense data recorded by the most recent command.
func (d *Device) Sense(lun uint8) (key, asc, ascq uint8) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.senseKey, d.asc, d.ascq
}

// Mount forwards the front end's device-mounted notification to the
// handle's registered mount-changed callback.
func (d *Device) Mount() {
	d.store.NotifyMountChanged(true)
}

// Unmount forwards the front end's device-unmounted notification to the
// handle's registered mount-changed callback.
func (d *Device) Unmount() {
	d.store.NotifyMountChanged(false)
}

// padString pads or truncates a string to the specified length.
func padString(s string, length int) []byte {
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		if i < len(s) {
			result[i] = s[i]
		} else {
			result[i] = ' ' // Pad with spaces
		}
	}
	return result
}
