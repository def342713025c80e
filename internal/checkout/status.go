package checkout

type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusSubmitting Status = "SUBMITTING"
)

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}
