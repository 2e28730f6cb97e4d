package vehicle

import "fmt"

// TransmissionMode is the automatic gearbox selector position
type TransmissionMode uint8

const (
	Park TransmissionMode = iota
	Drive
	Reverse
)

// Every mode-dependent property is resolved by an exhaustive switch in this
// file. Adding a mode means adding a case to each of them; the trailing panic
// marks the value as outside the closed set.

// String returns the HUD label for the mode
func (m TransmissionMode) String() string {
	switch m {
	case Park:
		return "Park"
	case Drive:
		return "Drive"
	case Reverse:
		return "Reverse"
	}
	return fmt.Sprintf("TransmissionMode(%d)", uint8(m))
}

// Direction returns the sign applied to the accelerator force.
// Park has no drive direction.
func (m TransmissionMode) Direction() float64 {
	switch m {
	case Park:
		return 0
	case Drive:
		return 1
	case Reverse:
		return -1
	}
	panic(fmt.Sprintf("vehicle: unknown transmission mode %d", uint8(m)))
}

// IdleSpeed returns the creep speed the car settles to with both pedals released
func (m TransmissionMode) IdleSpeed(p Params) float64 {
	switch m {
	case Park:
		return 0
	case Drive:
		return p.IdleSpeedForward
	case Reverse:
		return p.IdleSpeedReverse
	}
	panic(fmt.Sprintf("vehicle: unknown transmission mode %d", uint8(m)))
}

// HoldsVehicle reports whether the mode locks the car in place
func (m TransmissionMode) HoldsVehicle() bool {
	switch m {
	case Park:
		return true
	case Drive, Reverse:
		return false
	}
	panic(fmt.Sprintf("vehicle: unknown transmission mode %d", uint8(m)))
}
