package client

// clientState tracks where in its lifecycle a Client is.
// State only moves forward: NEW -> AUTHED -> LOGGED_OFF -> CLOSED,
// except that a logged-off client may authenticate again.
type clientState uint16

const (
	STATE_NEW clientState = iota
	STATE_AUTHED
	STATE_LOGGED_OFF
	STATE_CLOSED
)

func (cs clientState) String() string {
	switch cs {
	case STATE_NEW:
		return "NEW"
	case STATE_AUTHED:
		return "AUTHED"
	case STATE_LOGGED_OFF:
		return "LOGGED_OFF"
	case STATE_CLOSED:
		return "CLOSED"
	}
	return "UNKNOWN"
}
