package ports

import "context"

type (
	DatabaseHealthChecker interface {
		Ping(ctx context.Context) error
	}

	// CircuitStateReporter exposes the breaker guarding a dependency. State is
	// one of "closed", "half-open" or "open".
	CircuitStateReporter interface {
		CircuitState() string
	}

	DependencyStatus struct {
		Healthy bool   `json:"healthy"`
		Circuit string `json:"circuit,omitempty"`
		Latency string `json:"latency,omitempty"`
		Message string `json:"message,omitempty"`
	}
)
