package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"nexusai-site/internal/domain"
)

type stubStore struct {
	created []domain.ContactSubmission
	err     error
}

func (s *stubStore) Create(_ context.Context, sub domain.ContactSubmission) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, sub)
	return nil
}

func (s *stubStore) ListRecent(_ context.Context, _ int) ([]domain.ContactSubmission, error) {
	return s.created, nil
}

func validInput() Input {
	return Input{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Automation project",
		Message: "We would like to automate our invoice processing.",
		Company: "Analytical Engines",
	}
}

func TestSubmit_Success(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fixed := time.Date(2025, 4, 15, 9, 30, 0, 0, time.UTC)
	store := &stubStore{}
	svc := New(Options{Store: store, Logger: zap.New(core), Now: func() time.Time { return fixed }})

	res, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, SuccessMessage, res.Message)
	_, err = uuid.Parse(res.ID)
	assert.NoError(t, err)

	require.Len(t, store.created, 1)
	assert.Equal(t, res.ID, store.created[0].ID)
	assert.Equal(t, fixed, store.created[0].ReceivedAt)
	assert.Equal(t, "Analytical Engines", store.created[0].Company)

	entries := logs.FilterMessage("contact form submission").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ada@example.com", entries[0].ContextMap()["email"])
}

func TestSubmit_WithoutStore(t *testing.T) {
	svc := New(Options{})
	res, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestSubmit_MissingEmail(t *testing.T) {
	store := &stubStore{}
	svc := New(Options{Store: store})
	in := validInput()
	in.Email = ""

	res, err := svc.Submit(context.Background(), in)
	assert.Nil(t, res)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MissingFieldsMessage, verr.Message)
	assert.Equal(t, map[string]string{"email": "required"}, verr.Fields)
	assert.Empty(t, store.created)
}

func TestSubmit_WhitespaceCountsAsMissing(t *testing.T) {
	svc := New(Options{})
	in := validInput()
	in.Name = "   "
	in.Message = "\n\t"

	_, err := svc.Submit(context.Background(), in)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "message")
	assert.Equal(t, "Missing required fields: name, message", verr.Error())
}

func TestSubmit_OptionalFieldsMayBeEmpty(t *testing.T) {
	store := &stubStore{}
	svc := New(Options{Store: store})
	in := validInput()
	in.Company = ""

	_, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, store.created[0].Phone)
	assert.Empty(t, store.created[0].Service)
}

func TestSubmit_LenientAcceptsShortValues(t *testing.T) {
	svc := New(Options{})
	_, err := svc.Submit(context.Background(), Input{Name: "A", Email: "not-an-email", Subject: "Hi", Message: "Short"})
	assert.NoError(t, err)
}

func TestSubmit_StrictRejectsSchemaViolations(t *testing.T) {
	store := &stubStore{}
	svc := New(Options{Strict: true, Store: store})

	_, err := svc.Submit(context.Background(), Input{Name: "A", Email: "not-an-email", Subject: "Hi", Message: "Short"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, InvalidFieldsMessage, verr.Message)
	assert.Equal(t, "Name must be at least 2 characters", verr.Fields["name"])
	assert.Equal(t, "Please enter a valid email address", verr.Fields["email"])
	assert.Contains(t, verr.Fields, "subject")
	assert.Contains(t, verr.Fields, "message")
	assert.Empty(t, store.created)
}

func TestSubmit_StrictAcceptsValidInput(t *testing.T) {
	svc := New(Options{Strict: true})
	_, err := svc.Submit(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestSubmit_StoreFailureIsUnexpected(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := New(Options{Store: &stubStore{err: storeErr}})

	res, err := svc.Submit(context.Background(), validInput())
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
