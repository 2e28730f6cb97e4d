package vehicle

import "fmt"

// Telemetry is a read-only copy of the state for rendering and the HUD
type Telemetry struct {
	X, Y    float64
	Heading float64
	Speed   float64

	AcceleratorPercent float64
	BrakePercent       float64

	SteeringAngle    float64
	MaxSteeringAngle float64

	Mode string
}

// Telemetry exports the current state
func (s *State) Telemetry() Telemetry {
	return Telemetry{
		X:                  s.Position.X(),
		Y:                  s.Position.Y(),
		Heading:            s.Heading,
		Speed:              s.Speed,
		AcceleratorPercent: s.Accelerator * 100,
		BrakePercent:       s.Brake * 100,
		SteeringAngle:      s.SteeringAngle,
		MaxSteeringAngle:   s.params.MaxSteeringAngle,
		Mode:               s.Mode.String(),
	}
}

// AngleLabel formats the steering readout
func (t Telemetry) AngleLabel() string {
	return fmt.Sprintf("Angle : %.4f/%.4f", t.SteeringAngle, t.MaxSteeringAngle)
}

// SpeedLabel formats the speed readout
func (t Telemetry) SpeedLabel() string {
	return fmt.Sprintf("Speed : %.2f", t.Speed)
}

// ModeLabel formats the gearbox readout
func (t Telemetry) ModeLabel() string {
	return "Mode : " + t.Mode
}
