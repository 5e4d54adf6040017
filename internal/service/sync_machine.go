package service

import (
	"github.com/MKhiriev/go-leave-tracker/models"
)

// SyncState is an immutable snapshot of the paginated synchronizer.
type SyncState struct {
	// Items is the accumulated list in server order. The core never
	// re-sorts or deduplicates it.
	Items []models.LeaveRequest
	// NextPage is the 1-indexed page the next fetch will request. It only
	// moves forward, except for Refresh which resets it to 1.
	NextPage int
	// HasMore is false once a fetch has returned an empty page.
	HasMore bool
	// Loading is true while a LoadNext fetch is in flight.
	Loading bool
	// Refreshing is true while a Refresh fetch is in flight.
	Refreshing bool
	// LastError holds the most recent fetch failure, cleared by the next
	// successful fetch.
	LastError error
	// Generation distinguishes pre- and post-refresh epochs. Responses
	// tagged with a stale generation are dropped instead of applied.
	Generation uint64
}

// newSyncState is the initial synchronizer state: empty list, first page
// pending, collection assumed non-empty until the server says otherwise.
func newSyncState() SyncState {
	return SyncState{NextPage: 1, HasMore: true}
}

// syncEvent is an input to the synchronizer transition function.
type syncEvent interface{ isSyncEvent() }

type (
	// evLoadNext is the user reaching the end of the loaded list.
	evLoadNext struct{}
	// evRefresh is the user pulling to refresh, or a successful submit.
	evRefresh struct{}
	// evPageLoaded is a fetch resolving with the page's records.
	evPageLoaded struct {
		gen     uint64
		records []models.LeaveRequest
	}
	// evPageFailed is a fetch resolving with a transport or server error.
	evPageFailed struct {
		gen uint64
		err error
	}
)

func (evLoadNext) isSyncEvent()   {}
func (evRefresh) isSyncEvent()    {}
func (evPageLoaded) isSyncEvent() {}
func (evPageFailed) isSyncEvent() {}

// syncEffect is the side effect a transition requests from the driver.
type syncEffect struct {
	// fetch is true when a page request must be issued.
	fetch bool
	// page is the page number to request.
	page int
	// refresh distinguishes which in-flight flag the fetch runs under.
	refresh bool
	// gen tags the fetch with the generation it was issued against; the
	// completion event must carry it back.
	gen uint64
}

var noEffect = syncEffect{}

// transition is the synchronizer's pure state machine: given the current
// state and an event it returns the next state and the effect to perform.
// All coalescing, termination, and staleness rules live here, with no I/O.
func transition(state SyncState, event syncEvent) (SyncState, syncEffect) {
	switch ev := event.(type) {
	case evLoadNext:
		if state.Loading || state.Refreshing || !state.HasMore {
			return state, noEffect
		}
		state.Loading = true
		return state, syncEffect{fetch: true, page: state.NextPage, gen: state.Generation}

	case evRefresh:
		state.Items = nil
		state.NextPage = 1
		state.HasMore = true
		state.LastError = nil
		// an in-flight LoadNext now belongs to a dead generation; its
		// completion event will be dropped below
		state.Loading = false
		state.Refreshing = true
		state.Generation++
		return state, syncEffect{fetch: true, page: 1, refresh: true, gen: state.Generation}

	case evPageLoaded:
		if ev.gen != state.Generation {
			return state, noEffect
		}
		state.Loading = false
		state.Refreshing = false
		state.LastError = nil
		if len(ev.records) == 0 {
			state.HasMore = false
			return state, noEffect
		}
		state.Items = append(state.Items[:len(state.Items):len(state.Items)], ev.records...)
		state.NextPage++
		return state, noEffect

	case evPageFailed:
		if ev.gen != state.Generation {
			return state, noEffect
		}
		// the page was not consumed: NextPage stays, so a retry re-requests
		// the same page
		state.Loading = false
		state.Refreshing = false
		state.LastError = ev.err
		return state, noEffect

	default:
		return state, noEffect
	}
}
