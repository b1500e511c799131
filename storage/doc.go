// Package storage implements a backend-agnostic logical-block
// translation layer.
//
// A [Handle] routes every logical access (lba, byte offset, byte count)
// to exactly one physical backend, chosen when the handle is opened and
// fixed for its lifetime:
//
//   - [OpenFlash] binds a wear-leveled flash volume. Flash cannot be
//     overwritten in place, so the write path erases the target range
//     before writing.
//   - [OpenCard] binds a raw block-addressable card. Reads and writes
//     operate in card-native sector units with no erase step.
//
// # Address translation
//
// [FlatAddress] and [WriteAddress] convert (lba, sector size, offset)
// into a flat byte address with overflow detection. Writes additionally
// require the address and transfer size to be sector-aligned, because
// erase operates on whole sectors; reads may be sub-sector.
//
// # Lifecycle
//
// At most one Handle is live per process. A second Open fails with
// [pkg.ErrAlreadyInitialized]; any use of a closed handle panics.
//
// # Mount notifications
//
// The layer does not mount filesystems itself. It exposes two callback
// slots, [EventMountChanged] and [EventPreMountChanged], that the
// command front end drives so the rest of the system can react to mount
// state transitions.
package storage
