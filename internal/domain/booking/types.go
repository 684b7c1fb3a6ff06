package booking

type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// transitions is the allowed edge table. completed and cancelled are
// terminal. The identity edge (same status re-written) is not listed here;
// callers only consult the table when the status actually changed.
var transitions = map[Status][]Status{
	StatusPending:    {StatusPaid, StatusCancelled},
	StatusPaid:       {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransition(to Status) bool {
	if s.Terminal() {
		return false
	}
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
