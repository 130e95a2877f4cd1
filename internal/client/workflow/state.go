package workflow

// State is a workflow state.
type State int

const (
	Idle State = iota
	Previewing
	AwaitingPayment
	Confirmed
	Editing
	Deleting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Previewing:
		return "previewing"
	case AwaitingPayment:
		return "awaiting payment"
	case Confirmed:
		return "confirmed"
	case Editing:
		return "editing"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}
