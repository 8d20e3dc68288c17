package identify_user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	profileRepo "github.com/m04kA/SMC-AppointmentAssistant/internal/infra/storage/profile"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/logger"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/phone"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/ptr"
)

type stubProfiles struct {
	profiles map[string]*domain.UserProfile
	err      error
	lookups  []string
}

func (s *stubProfiles) Find(_ context.Context, contact string) (*domain.UserProfile, error) {
	s.lookups = append(s.lookups, contact)
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.profiles[contact]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return p, nil
}

func TestExecute_ReturningCaller(t *testing.T) {
	repo := &stubProfiles{profiles: map[string]*domain.UserProfile{
		"15551234567": {ContactNumber: "15551234567", Name: ptr.Ptr("Jana")},
	}}
	uc := NewUseCase(repo, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", PhoneNumber: "+1 (555) 123-4567"})
	require.NoError(t, err)

	assert.Equal(t, []string{"15551234567"}, repo.lookups)
	assert.Equal(t, "15551234567", resp.Caller.ContactNumber)
	assert.Equal(t, "Jana", resp.Caller.DisplayName())
	assert.False(t, resp.Caller.IsNew)
	assert.NotNil(t, resp.Profile)
}

func TestExecute_NewCaller(t *testing.T) {
	uc := NewUseCase(&stubProfiles{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", PhoneNumber: "555-0100 22"})
	require.NoError(t, err)

	assert.Equal(t, "555010022", resp.Caller.ContactNumber)
	assert.True(t, resp.Caller.IsNew)
	assert.Nil(t, resp.Caller.Name)
	assert.Nil(t, resp.Profile)
}

func TestExecute_InvalidPhone(t *testing.T) {
	repo := &stubProfiles{}
	uc := NewUseCase(repo, logger.NewNop())

	cases := map[string]error{
		"":                   phone.ErrEmpty,
		"12345":              phone.ErrTooShort,
		"1234567890123456":   phone.ErrTooLong,
		"call me maybe 1234": phone.ErrTooShort,
	}
	for input, want := range cases {
		_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", PhoneNumber: input})
		assert.ErrorIs(t, err, ErrInvalidPhone, input)
		assert.ErrorContains(t, err, want.Error(), input)
	}
	assert.Empty(t, repo.lookups)
}

func TestExecute_StoreError(t *testing.T) {
	uc := NewUseCase(&stubProfiles{err: errors.New("connection reset")}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", PhoneNumber: "5551234567"})
	assert.ErrorIs(t, err, ErrInternal)
}
