package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-helper/internal/app"
	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

func validContactInput(name string) app.ContactInput {
	return app.ContactInput{
		Name:         name,
		Relationship: "daughter",
		PhonePrimary: "555-0101",
		Email:        "contact@example.com",
	}
}

func TestCreateContactError(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(in *app.ContactInput)
		expectedField string
	}{
		{
			name:          "empty name",
			modify:        func(in *app.ContactInput) { in.Name = "" },
			expectedField: "name",
		},
		{
			name:          "empty relationship",
			modify:        func(in *app.ContactInput) { in.Relationship = "" },
			expectedField: "relationship",
		},
		{
			name:          "empty phone",
			modify:        func(in *app.ContactInput) { in.PhonePrimary = "" },
			expectedField: "phone_primary",
		},
		{
			name:          "invalid email",
			modify:        func(in *app.ContactInput) { in.Email = "not-an-email" },
			expectedField: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := setupUseCaseTest(t)

			input := validContactInput("Sam")
			tt.modify(&input)

			_, err := uc.contacts.CreateContact(context.Background(), input)

			var validationErr *app.ValidationError

			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.expectedField, validationErr.Field)
		})
	}
}

func TestContactLifecycleSuccess(t *testing.T) {
	uc := setupUseCaseTest(t)
	ctx := context.Background()

	first, err := uc.contacts.CreateContact(ctx, validContactInput("First"))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)

	second, err := uc.contacts.CreateContact(ctx, validContactInput("Second"))
	require.NoError(t, err)

	list, err := uc.contacts.ListContacts(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(2), list.Count)
	assert.Equal(t, second.ID, list.Contacts[0].ID)

	updateInput := validContactInput("First")
	updateInput.Relationship = "neighbor"
	updateInput.Email = ""

	updated, err := uc.contacts.UpdateContact(ctx, app.UpdateContactInput{ID: first.ID, ContactInput: updateInput})
	require.NoError(t, err)
	assert.Equal(t, "neighbor", updated.Relationship)

	got, err := uc.contacts.GetContact(ctx, app.GetContactInput{ID: first.ID})
	require.NoError(t, err)
	assert.Empty(t, got.Email)

	require.NoError(t, uc.contacts.DeleteContact(ctx, app.DeleteContactInput{ID: first.ID}))

	_, err = uc.contacts.GetContact(ctx, app.GetContactInput{ID: first.ID})
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestDeleteContactError(t *testing.T) {
	uc := setupUseCaseTest(t)

	err := uc.contacts.DeleteContact(context.Background(), app.DeleteContactInput{ID: domain.NewContactID().String()})

	assert.ErrorIs(t, err, app.ErrNotFound)
}
