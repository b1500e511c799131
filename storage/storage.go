package storage

import (
	"sync"

	"github.com/ardnew/mscstore/pkg"
)

// DefaultMaxOpenFiles is substituted when a config supplies a
// non-positive MaxOpenFiles.
const DefaultMaxOpenFiles = 2

// FlashConfig configures a flash-backed storage handle.
type FlashConfig struct {
	// Volume is the wear-leveled flash volume to expose.
	Volume FlashVolume

	// MaxOpenFiles limits concurrently open files for consumers that
	// mount a filesystem on this handle. Values <= 0 select
	// DefaultMaxOpenFiles.
	MaxOpenFiles int

	// OnMountChanged, if non-nil, is installed in the mount-changed
	// callback slot. A nil value leaves the slot explicitly cleared.
	OnMountChanged Callback

	// OnPreMountChanged, if non-nil, is installed in the
	// pre-mount-changed callback slot.
	OnPreMountChanged Callback
}

// CardConfig configures a card-backed storage handle.
type CardConfig struct {
	// Card is the raw block-addressable card to expose.
	Card Card

	// MaxOpenFiles limits concurrently open files; values <= 0 select
	// DefaultMaxOpenFiles.
	MaxOpenFiles int

	// OnMountChanged, if non-nil, is installed in the mount-changed
	// callback slot.
	OnMountChanged Callback

	// OnPreMountChanged, if non-nil, is installed in the
	// pre-mount-changed callback slot.
	OnPreMountChanged Callback
}

// Handle is the process-wide storage handle. It owns the active backend
// binding, the open-file limit, and the mount notification slots.
//
// Exactly one Handle may be live at a time; opening a second fails with
// [pkg.ErrAlreadyInitialized]. Using a Handle after Close is a contract
// violation and panics.
type Handle struct {
	backend Backend

	maxOpenFiles int

	mutex      sync.RWMutex
	onMount    Callback
	onPreMount Callback
	closed     bool
}

var (
	// activeMutex guards the single-handle invariant.
	activeMutex sync.Mutex
	active      *Handle
)

// OpenFlash opens a storage handle bound to a wear-leveled flash
// volume.
func OpenFlash(config FlashConfig) (*Handle, error) {
	if config.Volume == nil {
		return nil, pkg.ErrInvalidArgument
	}
	return open(NewFlashBackend(config.Volume), config.MaxOpenFiles,
		config.OnMountChanged, config.OnPreMountChanged)
}

// OpenCard opens a storage handle bound to a raw card.
func OpenCard(config CardConfig) (*Handle, error) {
	if config.Card == nil {
		return nil, pkg.ErrInvalidArgument
	}
	return open(NewCardBackend(config.Card), config.MaxOpenFiles,
		config.OnMountChanged, config.OnPreMountChanged)
}

func open(backend Backend, maxOpenFiles int, onMount, onPreMount Callback) (*Handle, error) {
	activeMutex.Lock()
	defer activeMutex.Unlock()

	if active != nil {
		return nil, pkg.ErrAlreadyInitialized
	}

	if maxOpenFiles <= 0 {
		maxOpenFiles = DefaultMaxOpenFiles
	}

	h := &Handle{
		backend:      backend,
		maxOpenFiles: maxOpenFiles,
		onMount:      onMount,
		onPreMount:   onPreMount,
	}
	active = h

	pkg.LogInfo(pkg.ComponentStorage, "handle opened",
		"sectorSize", backend.SectorSize(),
		"sectorCount", backend.SectorCount(),
		"maxOpenFiles", maxOpenFiles)

	return h, nil
}

// Close releases the handle and the process-wide handle slot, clearing
// both callback slots. All operations after Close panic, including a
// second Close.
func (h *Handle) Close() {
	h.ensureOpen()

	activeMutex.Lock()
	defer activeMutex.Unlock()

	h.mutex.Lock()
	h.closed = true
	h.onMount = nil
	h.onPreMount = nil
	h.mutex.Unlock()

	if active == h {
		active = nil
	}

	pkg.LogInfo(pkg.ComponentStorage, "handle closed")
}

// ensureOpen panics if the handle has been closed. Lifecycle contract
// violations are programmer errors, not recoverable conditions.
func (h *Handle) ensureOpen() {
	h.mutex.RLock()
	closed := h.closed
	h.mutex.RUnlock()
	if closed {
		panic("storage: use of closed handle")
	}
}

// SectorCount returns the total number of addressable sectors reported
// by the active backend.
func (h *Handle) SectorCount() uint32 {
	h.ensureOpen()
	return h.backend.SectorCount()
}

// SectorSize returns the native sector size of the active backend.
func (h *Handle) SectorSize() uint32 {
	h.ensureOpen()
	return h.backend.SectorSize()
}

// MaxOpenFiles returns the configured open-file limit.
func (h *Handle) MaxOpenFiles() int {
	h.ensureOpen()
	return h.maxOpenFiles
}

// ReadSector reads len(dest) bytes starting at the flat address
// lba*sectorSize+offset. Sub-sector reads are permitted. It returns the
// number of bytes read; translation failures return before any backend
// call.
func (h *Handle) ReadSector(lba, offset uint32, dest []byte) (int, error) {
	h.ensureOpen()

	sectorSize := h.backend.SectorSize()
	addr, err := FlatAddress(lba, sectorSize, offset)
	if err != nil {
		pkg.LogError(pkg.ComponentStorage, "read address overflow",
			"lba", lba,
			"offset", offset,
			"size", len(dest),
			"sectorSize", sectorSize)
		return 0, err
	}

	if err := h.backend.ReadSector(addr, lba, offset, dest); err != nil {
		return 0, err
	}
	return len(dest), nil
}

// WriteSector writes len(src) bytes starting at the flat address
// lba*sectorSize+offset. Both the address and len(src) must be
// multiples of the sector size; misaligned writes fail before any
// backend call. It returns the number of bytes written.
func (h *Handle) WriteSector(lba, offset uint32, src []byte) (int, error) {
	h.ensureOpen()

	sectorSize := h.backend.SectorSize()
	addr, err := WriteAddress(lba, sectorSize, offset, len(src))
	if err != nil {
		pkg.LogError(pkg.ComponentStorage, "invalid write address",
			"lba", lba,
			"offset", offset,
			"size", len(src),
			"sectorSize", sectorSize,
			"error", err)
		return 0, err
	}

	if err := h.backend.WriteSector(addr, lba, offset, src); err != nil {
		return 0, err
	}
	return len(src), nil
}
