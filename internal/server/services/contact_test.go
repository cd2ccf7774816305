package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sharandeepreddy/pf/internal/common"
	"github.com/sharandeepreddy/pf/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() ContactRequest {
	return ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Nice site!",
	}
}

func TestContactSubmit_Valid(t *testing.T) {
	db := newSQLMockDB(t)
	svc := NewContactService(db, &fakeRepoManager{contacts: &fakeContactsRepo{}})

	msg, err := svc.Submit(context.Background(), validContact(), models.ClientInfo{IPAddress: "1.2.3.4", UserAgent: "ua"})
	require.NoError(t, err)
	assert.Positive(t, msg.ID)
	assert.Equal(t, "1.2.3.4", msg.IPAddress)
}

func TestContactSubmit_MissingFields(t *testing.T) {
	db := newSQLMockDB(t)
	svc := NewContactService(db, &fakeRepoManager{contacts: &fakeContactsRepo{}})

	tests := []struct {
		name   string
		mutate func(*ContactRequest)
	}{
		{"name", func(r *ContactRequest) { r.Name = "" }},
		{"email", func(r *ContactRequest) { r.Email = "" }},
		{"subject", func(r *ContactRequest) { r.Subject = "" }},
		{"message", func(r *ContactRequest) { r.Message = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validContact()
			tc.mutate(&req)

			_, err := svc.Submit(context.Background(), req, models.ClientInfo{})

			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "All fields are required", ve.Message)
		})
	}
}

func TestContactSubmit_InvalidEmail(t *testing.T) {
	db := newSQLMockDB(t)
	repo := &fakeContactsRepo{err: errors.New("must not be called")}
	svc := NewContactService(db, &fakeRepoManager{contacts: repo})

	for _, email := range []string{"no-at-sign", "two@@example.com ", "a@b", "a b@example.com"} {
		req := validContact()
		req.Email = email

		_, err := svc.Submit(context.Background(), req, models.ClientInfo{})

		var ve *common.ValidationError
		require.ErrorAs(t, err, &ve, "email %q must be rejected", email)
		assert.Equal(t, "Invalid email format", ve.Message)
	}
}

func TestContactSubmit_RepoError(t *testing.T) {
	db := newSQLMockDB(t)
	svc := NewContactService(db, &fakeRepoManager{contacts: &fakeContactsRepo{err: errors.New("boom")}})

	_, err := svc.Submit(context.Background(), validContact(), models.ClientInfo{})
	require.Error(t, err)

	var ve *common.ValidationError
	assert.False(t, errors.As(err, &ve), "storage errors are not validation errors")
}
