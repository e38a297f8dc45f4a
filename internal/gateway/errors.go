package gateway

import "fmt"

// ProviderError is returned when an upstream provider fails: non-2xx status,
// timeout, or a response the client could not parse. Status is 0 when the
// call never produced an HTTP response.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s API error %d: %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}
