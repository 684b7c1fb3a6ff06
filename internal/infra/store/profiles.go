package store

import (
	"context"
	"encoding/json"

	"github.com/chateudechevrole/tutor-app-yp/internal/infra"
	"github.com/chateudechevrole/tutor-app-yp/internal/usecase/lifecycle"
)

// TutorProfiles reads the external tutor-profile collection. Missing
// profiles come back as (nil, nil); the initializer falls back to fields
// already on the booking.
type TutorProfiles struct {
	docs *Documents
}

func NewTutorProfiles(docs *Documents) *TutorProfiles {
	return &TutorProfiles{docs: docs}
}

func (s *TutorProfiles) Find(ctx context.Context, tutorID string) (*lifecycle.TutorSnapshot, error) {
	raw, err := s.docs.Get(ctx, CollectionTutorProfiles, tutorID)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var snap lifecycle.TutorSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, infra.WrapRepoErr("failed to decode tutor profile", err)
	}
	return &snap, nil
}

// Users reads the external user collection for device tokens.
type Users struct {
	docs *Documents
}

func NewUsers(docs *Documents) *Users {
	return &Users{docs: docs}
}

func (s *Users) Find(ctx context.Context, userID string) (*lifecycle.UserSnapshot, error) {
	raw, err := s.docs.Get(ctx, CollectionUsers, userID)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var snap lifecycle.UserSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, infra.WrapRepoErr("failed to decode user record", err)
	}
	return &snap, nil
}
