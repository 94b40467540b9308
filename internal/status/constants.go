// internal/status/constants.go
package status

// Drive status block layout constants.
// These values define the register protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of registers per monitored drive.
const SlotsPerDevice = 16

// ---- SLOT INDICES ----

// SlotHealthCode holds the drive's self-test health state.
const SlotHealthCode = 0

// SlotStatusValue holds the raw self-test status value reported by the
// drive (0 = no test running).
const SlotStatusValue = 1

// SlotRemainingPercent holds the remaining percentage of a running test,
// zero when no test is running or progress is unknown.
const SlotRemainingPercent = 2

// SlotShortMinutes, SlotExtendedMinutes and SlotConveyanceMinutes hold the
// expected duration per test kind in minutes; zero when unsupported.
const SlotShortMinutes = 3
const SlotExtendedMinutes = 4
const SlotConveyanceMinutes = 5

// ---- RESERVED RANGE ----

// Slots 6-7 are reserved for future use.
const SlotReservedStart = 6
const SlotReservedEnd = 7

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 8

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for
// the device name.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents a boot or never-polled state.
const HealthUnknown uint16 = 0

// HealthIdle means no test is running and no verdict is recorded.
const HealthIdle uint16 = 1

// HealthRunning means a self-test is in progress.
const HealthRunning uint16 = 2

// HealthPassed means the last test concluded with a pass verdict.
const HealthPassed uint16 = 3

// HealthFailed means the last test concluded with a fail verdict.
const HealthFailed uint16 = 4
