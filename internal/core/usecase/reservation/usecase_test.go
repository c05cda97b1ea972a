package reservation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sobasite/internal/adapters/repository/memory"
	"sobasite/internal/core/domain/reservation"
	"sobasite/internal/core/domain/session"
	portsMocks "sobasite/internal/core/ports/mocks"
	"sobasite/internal/core/usecase/reservation/mocks"
)

var baseTime = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func inquiryForm() reservation.FormState {
	return reservation.FormState{
		Name:     "山田太郎",
		Furigana: "ヤマダタロウ",
		Email:    "a@b.com",
		Details:  "予約について",
		Category: reservation.CategoryInquiry,
		Consent:  true,
	}
}

type fixture struct {
	uc       *Usecase
	repo     *memory.SessionRepository
	sink     *portsMocks.MockInquirySink
	recorder *mocks.MockSubmissionRecorder
	clock    *time.Time
}

func newFixture(t *testing.T, settings Settings) *fixture {
	t.Helper()

	f := &fixture{
		repo:     memory.NewSessionRepository(),
		sink:     portsMocks.NewMockInquirySink(t),
		recorder: mocks.NewMockSubmissionRecorder(t),
	}
	now := baseTime
	f.clock = &now

	f.uc = NewUsecase(f.repo, f.sink, f.recorder, settings)
	f.uc.now = func() time.Time { return *f.clock }
	ids := 0
	f.uc.newID = func() string {
		ids++
		return []string{"s-1", "s-2", "s-3", "s-4"}[ids-1]
	}
	return f
}

func (f *fixture) advance(d time.Duration) {
	*f.clock = f.clock.Add(d)
}

func TestNewUsecase(t *testing.T) {
	repo := portsMocks.NewMockSessionRepository(t)
	sink := portsMocks.NewMockInquirySink(t)
	recorder := mocks.NewMockSubmissionRecorder(t)
	settings := Settings{SessionTTL: time.Minute, MaxSessions: 5}

	uc := NewUsecase(repo, sink, recorder, settings)

	require.NotNil(t, uc)
	assert.Equal(t, repo, uc.sessions)
	assert.Equal(t, sink, uc.sink)
	assert.Equal(t, recorder, uc.recorder)
	assert.Equal(t, settings, uc.settings)
	assert.NotEmpty(t, uc.newID())
}

func TestUsecase_Validate(t *testing.T) {
	f := newFixture(t, Settings{})

	errs, valid := f.uc.Validate(context.Background(), inquiryForm())
	assert.True(t, valid)
	assert.True(t, errs.Valid())

	state := inquiryForm()
	state.Email = "nope"
	errs, valid = f.uc.Validate(context.Background(), state)
	assert.False(t, valid)
	assert.Equal(t, reservation.KindFormat, errs[reservation.FieldEmail].Kind)
}

func TestUsecase_Submit(t *testing.T) {
	sinkErr := errors.New("mail relay down")

	tests := []struct {
		name       string
		state      func() reservation.FormState
		setupMocks func(*portsMocks.MockInquirySink, *mocks.MockSubmissionRecorder)
		wantReset  bool
		wantErr    error
		wantFailed []reservation.Field
	}{
		{
			name:  "accepted inquiry",
			state: inquiryForm,
			setupMocks: func(sink *portsMocks.MockInquirySink, rec *mocks.MockSubmissionRecorder) {
				sink.EXPECT().Deliver(mock.Anything, inquiryForm()).Return(nil).Once()
				rec.EXPECT().RecordSubmission(mock.Anything, OutcomeAccepted, "inquiry").Return().Once()
			},
			wantReset: true,
		},
		{
			name: "rejected soba reservation",
			state: func() reservation.FormState {
				s := inquiryForm()
				s.Category = reservation.CategorySoba
				return s
			},
			setupMocks: func(_ *portsMocks.MockInquirySink, rec *mocks.MockSubmissionRecorder) {
				for _, field := range []string{"phone", "date", "guests"} {
					rec.EXPECT().RecordFieldError(mock.Anything, field, "required").Return().Once()
				}
				rec.EXPECT().RecordSubmission(mock.Anything, OutcomeRejected, "soba").Return().Once()
			},
			wantErr:    reservation.ErrInvalidForm,
			wantFailed: []reservation.Field{reservation.FieldPhone, reservation.FieldDate, reservation.FieldGuests},
		},
		{
			name:  "delivery failure",
			state: inquiryForm,
			setupMocks: func(sink *portsMocks.MockInquirySink, _ *mocks.MockSubmissionRecorder) {
				sink.EXPECT().Deliver(mock.Anything, inquiryForm()).Return(sinkErr).Once()
			},
			wantErr: sinkErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Settings{})
			tt.setupMocks(f.sink, f.recorder)

			next, errs, err := f.uc.Submit(context.Background(), tt.state())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.state(), next, "state is kept on failure")
			} else {
				require.NoError(t, err)
			}
			if tt.wantReset {
				assert.Equal(t, reservation.NewFormState(), next)
				assert.True(t, errs.Valid())
			}
			for _, field := range tt.wantFailed {
				assert.NotNil(t, errs[field], field.String())
			}
		})
	}
}

func TestUsecase_OpenSession(t *testing.T) {
	f := newFixture(t, Settings{MaxSessions: 2})
	ctx := context.Background()

	s, err := f.uc.OpenSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s-1", s.ID)
	assert.Equal(t, baseTime, s.CreatedAt)
	assert.Equal(t, reservation.NewFormState(), s.Form.State)

	_, err = f.uc.OpenSession(ctx)
	require.NoError(t, err)

	_, err = f.uc.OpenSession(ctx)
	assert.ErrorIs(t, err, session.ErrTooManySessions)

	count, err := f.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUsecase_OpenSession_CountError(t *testing.T) {
	repo := portsMocks.NewMockSessionRepository(t)
	countErr := errors.New("store closed")
	repo.EXPECT().Count(mock.Anything).Return(0, countErr).Once()

	uc := NewUsecase(repo, portsMocks.NewMockInquirySink(t), mocks.NewMockSubmissionRecorder(t), Settings{MaxSessions: 1})

	s, err := uc.OpenSession(context.Background())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, countErr)
}

func TestUsecase_OpenSession_ConcurrentLimit(t *testing.T) {
	const maxSessions = 5
	repo := memory.NewSessionRepository()
	uc := NewUsecase(repo, portsMocks.NewMockInquirySink(t), mocks.NewMockSubmissionRecorder(t), Settings{MaxSessions: maxSessions})

	var (
		wg       sync.WaitGroup
		opened   atomic.Int32
		rejected atomic.Int32
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.OpenSession(context.Background())
			switch {
			case err == nil:
				opened.Add(1)
			case errors.Is(err, session.ErrTooManySessions):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, maxSessions, count)
	assert.EqualValues(t, maxSessions, opened.Load())
	assert.EqualValues(t, 200-maxSessions, rejected.Load())
}

func TestUsecase_ChangeFieldDuringExpiry(t *testing.T) {
	repo := memory.NewSessionRepository()
	uc := NewUsecase(repo, portsMocks.NewMockInquirySink(t), mocks.NewMockSubmissionRecorder(t), Settings{SessionTTL: time.Nanosecond})

	ctx := context.Background()
	ids := make([]string, 20)
	for i := range ids {
		s, err := uc.OpenSession(ctx)
		require.NoError(t, err)
		ids[i] = s.ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				s, err := uc.ChangeField(ctx, id, reservation.FieldName, "山田")
				if err != nil {
					assert.ErrorIs(t, err, session.ErrSessionNotFound)
					return
				}
				assert.Equal(t, "山田", s.Form.State.Name)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 10; j++ {
			_, err := uc.ExpireSessions(ctx)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	time.Sleep(time.Millisecond)
	_, err := uc.ExpireSessions(ctx)
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "an expired session is never written back by a late change")
}

func TestUsecase_GetSession_ReturnsCopy(t *testing.T) {
	f := newFixture(t, Settings{})
	ctx := context.Background()

	opened, err := f.uc.OpenSession(ctx)
	require.NoError(t, err)

	got, err := f.uc.GetSession(ctx, opened.ID)
	require.NoError(t, err)
	got.Form.State.Name = "mutated"

	again, err := f.uc.GetSession(ctx, opened.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Form.State.Name)

	_, err = f.uc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestUsecase_ChangeField(t *testing.T) {
	f := newFixture(t, Settings{})
	ctx := context.Background()

	opened, err := f.uc.OpenSession(ctx)
	require.NoError(t, err)

	f.advance(time.Minute)
	s, err := f.uc.ChangeField(ctx, opened.ID, reservation.FieldName, "山田太郎")
	require.NoError(t, err)
	assert.Equal(t, "山田太郎", s.Form.State.Name)
	assert.Equal(t, baseTime.Add(time.Minute), s.UpdatedAt)

	s, err = f.uc.ChangeField(ctx, opened.ID, reservation.FieldConsent, "on")
	require.NoError(t, err)
	assert.True(t, s.Form.State.Consent)

	_, err = f.uc.ChangeField(ctx, opened.ID, reservation.FieldCategory, "catering")
	assert.ErrorIs(t, err, reservation.ErrUnknownCategory)

	_, err = f.uc.ChangeField(ctx, "missing", reservation.FieldName, "x")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	stored, err := f.uc.GetSession(ctx, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, reservation.CategoryUnset, stored.Form.State.Category, "rejected change is not stored")
}

func TestUsecase_SubmitSession_Rejected(t *testing.T) {
	f := newFixture(t, Settings{})
	ctx := context.Background()

	f.recorder.EXPECT().RecordFieldError(mock.Anything, mock.Anything, mock.Anything).Return()
	f.recorder.EXPECT().RecordSubmission(mock.Anything, OutcomeRejected, "unset").Return().Once()

	opened, err := f.uc.OpenSession(ctx)
	require.NoError(t, err)
	_, err = f.uc.ChangeField(ctx, opened.ID, reservation.FieldName, "山田太郎")
	require.NoError(t, err)

	s, err := f.uc.SubmitSession(ctx, opened.ID)

	var formErr *reservation.FormError
	require.ErrorAs(t, err, &formErr)
	require.NotNil(t, s)
	assert.Equal(t, "山田太郎", s.Form.State.Name)
	assert.Nil(t, s.Form.Errors[reservation.FieldName])
	assert.NotNil(t, s.Form.Errors[reservation.FieldConsent])

	stored, err := f.uc.GetSession(ctx, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Form.Errors.Messages(), stored.Form.Errors.Messages(), "errors are kept on the session")
}

func TestUsecase_SubmitSession_Accepted(t *testing.T) {
	f := newFixture(t, Settings{})
	ctx := context.Background()

	f.sink.EXPECT().Deliver(mock.Anything, inquiryForm()).Return(nil).Once()
	f.recorder.EXPECT().RecordSubmission(mock.Anything, OutcomeAccepted, "inquiry").Return().Once()

	opened, err := f.uc.OpenSession(ctx)
	require.NoError(t, err)

	want := inquiryForm()
	for _, field := range reservation.Fields {
		_, err := f.uc.ChangeField(ctx, opened.ID, field, want.Value(field))
		require.NoError(t, err)
	}

	s, err := f.uc.SubmitSession(ctx, opened.ID)

	require.NoError(t, err)
	assert.Equal(t, reservation.NewFormState(), s.Form.State)
	assert.True(t, s.Form.Errors.Valid())
}

func TestUsecase_SubmitSession_DeliveryFailureKeepsForm(t *testing.T) {
	f := newFixture(t, Settings{})
	ctx := context.Background()

	f.sink.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("down")).Once()

	opened, err := f.uc.OpenSession(ctx)
	require.NoError(t, err)
	want := inquiryForm()
	for _, field := range reservation.Fields {
		_, err := f.uc.ChangeField(ctx, opened.ID, field, want.Value(field))
		require.NoError(t, err)
	}

	s, err := f.uc.SubmitSession(ctx, opened.ID)
	assert.Error(t, err)
	assert.Nil(t, s)

	stored, err := f.uc.GetSession(ctx, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, want, stored.Form.State)
}

func TestUsecase_CloseSession(t *testing.T) {
	f := newFixture(t, Settings{})
	ctx := context.Background()

	opened, err := f.uc.OpenSession(ctx)
	require.NoError(t, err)

	require.NoError(t, f.uc.CloseSession(ctx, opened.ID))
	assert.ErrorIs(t, f.uc.CloseSession(ctx, opened.ID), session.ErrSessionNotFound)
}

func TestUsecase_ExpireSessions(t *testing.T) {
	f := newFixture(t, Settings{SessionTTL: 30 * time.Minute})
	ctx := context.Background()

	idle, err := f.uc.OpenSession(ctx)
	require.NoError(t, err)
	f.advance(20 * time.Minute)
	active, err := f.uc.OpenSession(ctx)
	require.NoError(t, err)

	f.advance(15 * time.Minute)
	removed, err := f.uc.ExpireSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = f.uc.GetSession(ctx, idle.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = f.uc.GetSession(ctx, active.ID)
	assert.NoError(t, err)
}

func TestUsecase_ExpireSessions_Error(t *testing.T) {
	repo := portsMocks.NewMockSessionRepository(t)
	repo.EXPECT().DeleteIf(mock.Anything, mock.Anything).Return(0, context.Canceled).Once()

	uc := NewUsecase(repo, portsMocks.NewMockInquirySink(t), mocks.NewMockSubmissionRecorder(t), Settings{SessionTTL: time.Minute})

	removed, err := uc.ExpireSessions(context.Background())

	assert.Zero(t, removed)
	assert.ErrorIs(t, err, context.Canceled)
}
