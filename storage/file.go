package storage

import (
	"os"
	"sync"

	"github.com/ardnew/mscstore/pkg"
)

// FileVolume implements FlashVolume backed by a disk image file. Erase
// overwrites the target range with the erased fill value.
type FileVolume struct {
	file       *os.File
	sectorSize uint32
	size       uint64
	mutex      sync.RWMutex
}

// NewFileVolume opens the file at path as a flash volume image. The
// file's current size determines the volume size.
func NewFileVolume(path string, sectorSize uint32) (*FileVolume, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	return &FileVolume{
		file:       file,
		sectorSize: sectorSize,
		size:       uint64(stat.Size()),
	}, nil
}

// Size returns the volume size in bytes.
func (f *FileVolume) Size() uint64 {
	return f.size
}

// SectorSize returns the sector size.
func (f *FileVolume) SectorSize() uint32 {
	return f.sectorSize
}

// Read reads bytes from the image file.
func (f *FileVolume) Read(addr uint32, dest []byte) error {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	if uint64(addr)+uint64(len(dest)) > f.size {
		return pkg.ErrOutOfRange
	}

	_, err := f.file.ReadAt(dest, int64(addr))
	return err
}

// Write writes bytes to the image file.
func (f *FileVolume) Write(addr uint32, src []byte) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if uint64(addr)+uint64(len(src)) > f.size {
		return pkg.ErrOutOfRange
	}

	_, err := f.file.WriteAt(src, int64(addr))
	return err
}

// Erase overwrites the range with the erased fill value.
func (f *FileVolume) Erase(addr, size uint32) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if uint64(addr)+uint64(size) > f.size {
		return pkg.ErrOutOfRange
	}

	const chunkSize = 64 * 1024
	chunk := make([]byte, min(int(size), chunkSize))
	for i := range chunk {
		chunk[i] = eraseFill
	}

	for remaining := int(size); remaining > 0; {
		n := min(remaining, len(chunk))
		if _, err := f.file.WriteAt(chunk[:n], int64(addr)+int64(int(size)-remaining)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// Sync flushes pending writes to disk.
func (f *FileVolume) Sync() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.file.Sync()
}

// Close closes the underlying file.
func (f *FileVolume) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file != nil {
		err := f.file.Close()
		f.file = nil
		return err
	}
	return nil
}
