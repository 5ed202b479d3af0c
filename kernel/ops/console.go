package ops

import (
	"fmt"

	"github.com/tigerater/chronoctl/kernel/api"
	"github.com/tigerater/chronoctl/kernel/notify"
	"github.com/tigerater/chronoctl/kernel/state"
)

// Console is the write side of the client: it bridges user intent to backend
// calls, dispatches the resulting state transitions and publishes
// notifications.
//
// Error propagation follows one rule set everywhere:
//   - bulk fetches are absorbed: collection status flips to Error, a
//     notification is published, nothing propagates to the caller
//   - creates and updates are notified AND returned, so a calling form can
//     keep the user's unsaved input
//   - deletes are notified only; there is no local input to preserve
//
// Overlapping bulk fetches are not coordinated: the last terminal dispatch
// wins on status.
type Console struct {
	State  *state.AppState
	Client *api.Client
	Notify *notify.Center
}

func NewConsole(appState *state.AppState, client *api.Client, center *notify.Center) *Console {
	return &Console{State: appState, Client: client, Notify: center}
}

// failureMessage prefers the backend's own message field when the failure is
// an application-level one.
func failureMessage(prefix string, err error) string {
	if apiErr, ok := err.(*api.Error); ok {
		return fmt.Sprintf("%s: %s", prefix, apiErr.Message)
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}

// emptyIfNil keeps a bulk-fetch result distinguishable from the status-only
// SetAll form: a nil entity slice would only change the status.
func emptyIfNil[E state.Entity](entities []E) []E {
	if entities == nil {
		return []E{}
	}
	return entities
}
