// internal/status/encode.go
package status

// Encode converts a Snapshot into a full drive status block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot, deviceName string) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotHealthCode] = s.Health
	regs[SlotStatusValue] = s.StatusValue
	regs[SlotRemainingPercent] = s.RemainingPercent
	regs[SlotShortMinutes] = s.ShortMinutes
	regs[SlotExtendedMinutes] = s.ExtendedMinutes
	regs[SlotConveyanceMinutes] = s.ConveyanceMinutes

	name := encodeDeviceNameRegs(deviceName)
	for i := 0; i < SlotDeviceNameSlots; i++ {
		regs[SlotDeviceNameStart+i] = name[i]
	}

	return regs
}

// encodeDeviceNameRegs packs up to 16 ASCII characters into 8 registers.
// Each register stores two ASCII bytes in big-endian order; non-printable
// bytes become '?'.
func encodeDeviceNameRegs(name string) []uint16 {
	out := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
