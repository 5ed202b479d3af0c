package store

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/tigerater/chronoctl/kernel/state"
)

// Capture serializes the fully-fetched collections of the state tree. Only
// collections in the Done state are persisted; a Loading or Error collection
// has nothing trustworthy to cache.
func Capture(appState *state.AppState) *Snapshot {
	snapshot := NewSnapshot()
	captureCollection(snapshot, "label", appState.Labels)
	captureCollection(snapshot, "bucket", appState.Buckets)
	captureCollection(snapshot, "check", appState.Checks)
	captureCollection(snapshot, "dashboard", appState.Dashboards)
	captureCollection(snapshot, "variable", appState.Variables)
	captureCollection(snapshot, "authorization", appState.Authorizations)
	captureCollection(snapshot, "member", appState.Members)
	captureCollection(snapshot, "template", appState.Templates)
	captureCollection(snapshot, "scraper", appState.Scrapers)
	return snapshot
}

// Restore primes the state tree from a snapshot, marking restored
// collections Done so the console can render cached data while refreshing.
func Restore(snapshot *Snapshot, appState *state.AppState) {
	restoreCollection(snapshot, "label", appState.Labels)
	restoreCollection(snapshot, "bucket", appState.Buckets)
	restoreCollection(snapshot, "check", appState.Checks)
	restoreCollection(snapshot, "dashboard", appState.Dashboards)
	restoreCollection(snapshot, "variable", appState.Variables)
	restoreCollection(snapshot, "authorization", appState.Authorizations)
	restoreCollection(snapshot, "member", appState.Members)
	restoreCollection(snapshot, "template", appState.Templates)
	restoreCollection(snapshot, "scraper", appState.Scrapers)
}

func captureCollection[E state.Entity](snapshot *Snapshot, kind string, cs *state.CollectionStore[E]) {
	col := cs.State()
	if col.Status != state.Done {
		return
	}
	data, err := json.Marshal(state.GetAll(col))
	if err != nil {
		logrus.WithError(err).Warnf("unable to capture %s collection", kind)
		return
	}
	snapshot.Resources[kind] = data
}

func restoreCollection[E state.Entity](snapshot *Snapshot, kind string, cs *state.CollectionStore[E]) {
	raw, ok := snapshot.Resources[kind]
	if !ok {
		return
	}
	var entities []E
	if err := json.Unmarshal(raw, &entities); err != nil {
		logrus.WithError(err).Warnf("unable to restore %s collection", kind)
		return
	}
	if entities == nil {
		entities = []E{}
	}
	cs.Dispatch(state.SetAll[E]{Status: state.Done, Entities: entities})
}
