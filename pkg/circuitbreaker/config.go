package circuitbreaker

import "time"

type Config struct {
	// Name shows up in state change callbacks.
	Name string

	// Enabled false makes New return nil, and Execute then calls through.
	Enabled bool

	// MaxRequests bounds probe calls while half-open. Zero means one.
	MaxRequests uint

	// Interval clears the closed-state counts periodically. Zero never clears.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing. Zero means 60s.
	Timeout time.Duration

	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold uint

	// IsFailure decides which errors count against the threshold. Nil counts
	// every non-nil error.
	IsFailure func(err error) bool

	// OnStateChange is called with the old and new state names.
	OnStateChange func(name, from, to string)
}
