package msc

// SCSI operation codes handled or recognized by the command adapter.
const (
	SCSITestUnitReady       = 0x00 // Test if unit is ready
	SCSIRequestSense        = 0x03 // Request sense data
	SCSIInquiry             = 0x12 // Get device information
	SCSIModeSense6          = 0x1A // Get mode parameters (6-byte)
	SCSIStartStopUnit       = 0x1B // Start/stop unit
	SCSIPreventAllowRemoval = 0x1E // Prevent/allow medium removal
	SCSIReadCapacity10      = 0x25 // Read capacity (10-byte)
	SCSIRead10              = 0x28 // Read blocks (10-byte)
	SCSIWrite10             = 0x2A // Write blocks (10-byte)
)

// SCSI sense keys.
const (
	SenseNoSense        = 0x00 // No error
	SenseNotReady       = 0x02 // Device not ready
	SenseMediumError    = 0x03 // Medium error
	SenseHardwareError  = 0x04 // Hardware error
	SenseIllegalRequest = 0x05 // Illegal request
	SenseUnitAttention  = 0x06 // Unit attention
	SenseDataProtect    = 0x07 // Data protect
)

// Additional Sense Codes (ASC).
const (
	ASCNoAdditionalInfo = 0x00 // No additional sense information
	ASCInvalidCommand   = 0x20 // Invalid command operation code
	ASCLBAOutOfRange    = 0x21 // Logical block address out of range
	ASCWriteProtected   = 0x27 // Write protected
	ASCMediumNotPresent = 0x3A // Medium not present
)

// ASCQDefault is the additional sense code qualifier reported with
// every ASC above.
const ASCQDefault = 0x00

// INQUIRY identity field lengths.
const (
	VendorIDLen   = 8  // Vendor identification (ASCII)
	ProductIDLen  = 16 // Product identification (ASCII)
	ProductRevLen = 4  // Product revision (ASCII)
)

// CommandStall is returned by Command to signal the front end to stall
// the transfer and report failed status.
const CommandStall = -1
