package datatable

// State is the display state of a table for one render.
type State int

const (
	// StateLoading shows placeholder rows and ignores data.
	StateLoading State = iota
	// StateEmpty shows a single full-width message row.
	StateEmpty
	// StatePopulated shows one row per data element.
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// DeriveState computes the state of a render. Loading wins over any row count.
func DeriveState(loading bool, rowCount int) State {
	switch {
	case loading:
		return StateLoading
	case rowCount == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}
