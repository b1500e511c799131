package msc

import (
	"bytes"
	"testing"

	"github.com/ardnew/mscstore/storage"
)

// openCardDevice opens a card-backed handle and wraps it in a Device.
func openCardDevice(t *testing.T, capacity, sectorSize uint32) (*Device, *storage.Handle) {
	t.Helper()
	h, err := storage.OpenCard(storage.CardConfig{
		Card: storage.NewMemoryCard(capacity, sectorSize),
	})
	if err != nil {
		t.Fatalf("OpenCard() error = %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return New(h, "mscstore", "Flash Storage", "0.1"), h
}

// openFlashDevice opens a flash-backed handle and wraps it in a Device.
func openFlashDevice(t *testing.T, size uint64, sectorSize uint32) (*Device, *storage.Handle) {
	t.Helper()
	h, err := storage.OpenFlash(storage.FlashConfig{
		Volume: storage.NewMemoryVolume(size, sectorSize),
	})
	if err != nil {
		t.Fatalf("OpenFlash() error = %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return New(h, "mscstore", "Flash Storage", "0.1"), h
}

func TestInquiryPadding(t *testing.T) {
	d, _ := openCardDevice(t, 16, 512)

	vendor, product, revision := d.Inquiry(0)
	if got := string(vendor[:]); got != "mscstore" {
		t.Errorf("vendor = %q, want %q", got, "mscstore")
	}
	if got := string(product[:]); got != "Flash Storage   " {
		t.Errorf("product = %q, want %q", got, "Flash Storage   ")
	}
	if got := string(revision[:]); got != "0.1 " {
		t.Errorf("revision = %q, want %q", got, "0.1 ")
	}
}

func TestInquiryTruncation(t *testing.T) {
	h, err := storage.OpenCard(storage.CardConfig{
		Card: storage.NewMemoryCard(16, 512),
	})
	if err != nil {
		t.Fatalf("OpenCard() error = %v", err)
	}
	defer h.Close()

	d := New(h, "VendorNameTooLong", "ProductNameThatIsFarTooLong", "1.0.0")
	vendor, product, revision := d.Inquiry(0)

	if got := string(vendor[:]); got != "VendorNa" {
		t.Errorf("vendor = %q, want %q", got, "VendorNa")
	}
	if got := string(product[:]); got != "ProductNameThatI" {
		t.Errorf("product = %q, want %q", got, "ProductNameThatI")
	}
	if got := string(revision[:]); got != "1.0." {
		t.Errorf("revision = %q, want %q", got, "1.0.")
	}
}

func TestTestUnitReady(t *testing.T) {
	d, _ := openCardDevice(t, 16, 512)
	if !d.TestUnitReady(0) {
		t.Error("TestUnitReady() = false, want true")
	}
}

func TestCapacity(t *testing.T) {
	d, _ := openCardDevice(t, 1000, 512)

	blockCount, blockSize := d.Capacity(0)
	if blockCount != 1000 {
		t.Errorf("blockCount = %d, want 1000", blockCount)
	}
	if blockSize != 512 {
		t.Errorf("blockSize = %d, want 512", blockSize)
	}
}

func TestCapacityTruncatesWideSectorSize(t *testing.T) {
	// A 64 KiB sector does not fit the 16-bit capacity field; the wire
	// contract truncates it (and the adapter logs the loss).
	d, _ := openFlashDevice(t, 1<<20, 1<<16)

	blockCount, blockSize := d.Capacity(0)
	if blockCount != 16 {
		t.Errorf("blockCount = %d, want 16", blockCount)
	}
	if blockSize != 0 {
		t.Errorf("blockSize = %d, want 0 (truncated)", blockSize)
	}
}

func TestRead10Write10RoundTrip(t *testing.T) {
	d, _ := openFlashDevice(t, 1<<20, 512)

	src := bytes.Repeat([]byte{0xA5}, 512)
	if n := d.Write10(0, 2, 0, src); n != 512 {
		t.Fatalf("Write10() = %d, want 512", n)
	}

	dest := make([]byte, 512)
	if n := d.Read10(0, 2, 0, dest); n != 512 {
		t.Fatalf("Read10() = %d, want 512", n)
	}
	if !bytes.Equal(dest, src) {
		t.Fatal("Read10 data does not match Write10 data")
	}
}

func TestWrite10MisalignedReturnsZero(t *testing.T) {
	d, _ := openFlashDevice(t, 1<<20, 512)

	if n := d.Write10(0, 2, 0, make([]byte, 300)); n != 0 {
		t.Fatalf("Write10() = %d, want 0", n)
	}

	key, asc, ascq := d.Sense(0)
	if key != SenseMediumError || asc != ASCNoAdditionalInfo || ascq != ASCQDefault {
		t.Errorf("sense = (%#x, %#x, %#x), want medium error", key, asc, ascq)
	}
}

func TestRead10BackendFailureReturnsZero(t *testing.T) {
	d, _ := openFlashDevice(t, 1024, 512)

	// Past the end of the volume.
	if n := d.Read10(0, 100, 0, make([]byte, 512)); n != 0 {
		t.Fatalf("Read10() = %d, want 0", n)
	}
}

func TestCommandPreventAllowRemoval(t *testing.T) {
	d, _ := openCardDevice(t, 16, 512)

	cmd := make([]byte, 16)
	cmd[0] = SCSIPreventAllowRemoval
	if n := d.Command(0, cmd, nil); n != 0 {
		t.Fatalf("Command() = %d, want 0", n)
	}

	key, asc, ascq := d.Sense(0)
	if key != SenseNoSense || asc != ASCNoAdditionalInfo || ascq != ASCQDefault {
		t.Errorf("sense = (%#x, %#x, %#x), want no sense", key, asc, ascq)
	}
}

func TestCommandUnsupportedOpcodeStalls(t *testing.T) {
	d, _ := openCardDevice(t, 16, 512)

	cmd := make([]byte, 16)
	cmd[0] = 0x35 // SYNCHRONIZE CACHE, not in the allow list
	if n := d.Command(0, cmd, nil); n != CommandStall {
		t.Fatalf("Command() = %d, want %d", n, CommandStall)
	}

	key, asc, ascq := d.Sense(0)
	if key != SenseIllegalRequest {
		t.Errorf("sense key = %#x, want %#x", key, SenseIllegalRequest)
	}
	if asc != ASCInvalidCommand || ascq != ASCQDefault {
		t.Errorf("sense pair = (%#x, %#x), want (%#x, %#x)",
			asc, ascq, ASCInvalidCommand, ASCQDefault)
	}
}

func TestCommandEmpty(t *testing.T) {
	d, _ := openCardDevice(t, 16, 512)

	if n := d.Command(0, nil, nil); n != CommandStall {
		t.Fatalf("Command() = %d, want %d", n, CommandStall)
	}
}

func TestStartStop(t *testing.T) {
	d, _ := openCardDevice(t, 16, 512)
	if !d.StartStop(0, 0, true, false) {
		t.Error("StartStop() = false, want true")
	}
	if !d.StartStop(0, 0, false, true) {
		t.Error("StartStop(eject) = false, want true")
	}
}

func TestMountNotificationsForwarded(t *testing.T) {
	d, h := openCardDevice(t, 16, 512)

	var events []storage.Event
	if err := h.RegisterCallback(storage.EventMountChanged, func(e storage.Event) {
		events = append(events, e)
	}); err != nil {
		t.Fatalf("RegisterCallback() error = %v", err)
	}

	d.Mount()
	d.Unmount()

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if !events[0].Mounted || events[1].Mounted {
		t.Errorf("events = %v, want mounted then unmounted", events)
	}
}

func TestCardDeviceRoundTrip(t *testing.T) {
	d, _ := openCardDevice(t, 1000, 512)

	src := bytes.Repeat([]byte{0x3C}, 1024)
	if n := d.Write10(0, 10, 0, src); n != 1024 {
		t.Fatalf("Write10() = %d, want 1024", n)
	}

	dest := make([]byte, 1024)
	if n := d.Read10(0, 10, 0, dest); n != 1024 {
		t.Fatalf("Read10() = %d, want 1024", n)
	}
	if !bytes.Equal(dest, src) {
		t.Fatal("card round trip failed")
	}
}
