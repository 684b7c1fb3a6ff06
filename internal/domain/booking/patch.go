package booking

import "time"

// Patch is a partial field map for a merge-write against the document
// store. Fields absent from the map are left untouched by the store.
type Patch map[string]any

// SnapshotPatch is the one-time creation enrichment: the denormalized tutor
// facts, the initial status, and the acceptance deadline. createdAt carries
// the creator's value when it supplied one.
func SnapshotPatch(tutorName string, hourlyRate float64, createdAt, acceptDeadline time.Time) Patch {
	return Patch{
		"tutorName":      tutorName,
		"hourlyRate":     hourlyRate,
		"status":         StatusPending,
		"createdAt":      createdAt,
		"acceptDeadline": acceptDeadline,
	}
}

// DeadlinePatch resets the acceptance window, used when payment confirms.
func DeadlinePatch(acceptDeadline time.Time) Patch {
	return Patch{
		"acceptDeadline": acceptDeadline,
	}
}

// ForceCancelPatch closes out a booking whose deadline passed.
func ForceCancelPatch(now time.Time) Patch {
	return Patch{
		"status":      StatusCancelled,
		"cancelledAt": now,
	}
}

// RevertStatusPatch undoes an illegal transition. Only the status field is
// touched; other changes from the offending write survive.
func RevertStatusPatch(prior Status) Patch {
	return Patch{
		"status": prior,
	}
}
