package auth

// State is the lifecycle state of the session controller. Transitions:
// Initializing moves to ExchangingSession when the initial URL carries a
// session artifact, otherwise directly to Authenticated or
// Unauthenticated; ExchangingSession resolves to one of the latter two.
type State int

const (
	StateInitializing State = iota
	StateExchangingSession
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateExchangingSession:
		return "exchanging_session"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}
