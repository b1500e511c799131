// Package msc adapts a storage.Handle to the block-command surface a
// USB Mass Storage Class front end invokes.
//
// The front end owns the wire protocol (CBW/CSW framing, endpoint
// management, descriptor parsing) and calls into a [Device] for the
// semantic portion of each command:
//
//   - [Device.Inquiry] - fixed identity strings (8/16/4 bytes)
//   - [Device.TestUnitReady] - readiness, always true at this layer
//   - [Device.Capacity] - block count and 16-bit block size
//   - [Device.Read10] / [Device.Write10] - data transfer, byte count or 0
//   - [Device.Command] - passthrough for commands outside the built-in
//     set; unrecognized opcodes stall with an ILLEGAL REQUEST sense pair
//   - [Device.Mount] / [Device.Unmount] - mount state forwarding
//
// Read10 and Write10 collapse every failure to a zero byte count
// because the front end has no structured error channel on the data
// path; the error detail is logged and recorded as sense data instead.
package msc
