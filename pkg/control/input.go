package control

// Input is one tick's snapshot of the driver's controls.
// Pedal and steering fields report keys held down right now; the
// Select fields report a key that went down during this tick only.
type Input struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool

	SelectPark    bool
	SelectDrive   bool
	SelectReverse bool
}
