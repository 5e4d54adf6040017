package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/mock"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/models"
)

const testPageSize = 10

func newLeaveFixture(t *testing.T) (service.ClientLeaveService, *mock.MockClientSessionService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockClientSessionService(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	svc := service.NewClientLeaveService(sessions, serverAdapter, testPageSize, logger.Nop())
	return svc, sessions, serverAdapter
}

func loggedIn(sessions *mock.MockClientSessionService) {
	sessions.EXPECT().State().
		Return(service.SessionState{Identity: testUser, Credential: testToken, Ready: true}).
		AnyTimes()
}

func makePage(ids ...string) []models.LeaveRequest {
	records := make([]models.LeaveRequest, 0, len(ids))
	for _, id := range ids {
		records = append(records, models.LeaveRequest{ID: id, Subject: "subject-" + id, Status: models.LeavePending})
	}
	return records
}

// ── LoadNext ──────────────────────────────────────────────────────────────────

func TestLeaveService_LoadNext_RequiresSession(t *testing.T) {
	svc, sessions, _ := newLeaveFixture(t)
	sessions.EXPECT().State().Return(service.SessionState{Ready: true})

	err := svc.LoadNext(context.Background())
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestLeaveService_LoadNext_AccumulatesPages(t *testing.T) {
	svc, sessions, serverAdapter := newLeaveFixture(t)
	loggedIn(sessions)

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(makePage("a", "b"), nil)
	require.NoError(t, svc.LoadNext(context.Background()))

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 2, testPageSize).Return(makePage("c"), nil)
	require.NoError(t, svc.LoadNext(context.Background()))

	state := svc.State()
	require.Len(t, state.Items, 3)
	assert.Equal(t, "a", state.Items[0].ID)
	assert.Equal(t, "c", state.Items[2].ID)
	assert.Equal(t, 3, state.NextPage)
	assert.True(t, state.HasMore)
	assert.False(t, state.Loading)
}

func TestLeaveService_LoadNext_EmptyPageStopsFetching(t *testing.T) {
	svc, sessions, serverAdapter := newLeaveFixture(t)
	loggedIn(sessions)

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(nil, nil)
	require.NoError(t, svc.LoadNext(context.Background()))

	state := svc.State()
	assert.False(t, state.HasMore)
	assert.Empty(t, state.Items)

	// no further network call once exhausted
	require.NoError(t, svc.LoadNext(context.Background()))
	require.NoError(t, svc.LoadNext(context.Background()))
}

func TestLeaveService_LoadNext_FailureRetriesSamePage(t *testing.T) {
	svc, sessions, serverAdapter := newLeaveFixture(t)
	loggedIn(sessions)

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(makePage("a"), nil)
	require.NoError(t, svc.LoadNext(context.Background()))

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 2, testPageSize).Return(nil, assert.AnError)
	err := svc.LoadNext(context.Background())
	require.Error(t, err)

	state := svc.State()
	assert.ErrorIs(t, state.LastError, assert.AnError)
	assert.False(t, state.Loading)
	require.Len(t, state.Items, 1)

	// the failed page was not consumed
	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 2, testPageSize).Return(makePage("b"), nil)
	require.NoError(t, svc.LoadNext(context.Background()))

	state = svc.State()
	assert.NoError(t, state.LastError)
	require.Len(t, state.Items, 2)
	assert.Equal(t, "b", state.Items[1].ID)
}

// ── Refresh ───────────────────────────────────────────────────────────────────

func TestLeaveService_Refresh_ReplacesList(t *testing.T) {
	svc, sessions, serverAdapter := newLeaveFixture(t)
	loggedIn(sessions)

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(makePage("old-1", "old-2"), nil)
	require.NoError(t, svc.LoadNext(context.Background()))

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(makePage("new-1"), nil)
	require.NoError(t, svc.Refresh(context.Background()))

	state := svc.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "new-1", state.Items[0].ID)
	assert.Equal(t, 2, state.NextPage)
	assert.False(t, state.Refreshing)
}

func TestLeaveService_Refresh_RevivesExhaustedList(t *testing.T) {
	svc, sessions, serverAdapter := newLeaveFixture(t)
	loggedIn(sessions)

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(nil, nil)
	require.NoError(t, svc.LoadNext(context.Background()))
	require.False(t, svc.State().HasMore)

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(makePage("a"), nil)
	require.NoError(t, svc.Refresh(context.Background()))

	state := svc.State()
	assert.True(t, state.HasMore)
	require.Len(t, state.Items, 1)
}

func TestLeaveService_Refresh_RequiresSession(t *testing.T) {
	svc, sessions, _ := newLeaveFixture(t)
	sessions.EXPECT().State().Return(service.SessionState{Ready: true})

	err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

// ── Submit ────────────────────────────────────────────────────────────────────

func TestLeaveService_Submit_TriggersSingleRefresh(t *testing.T) {
	svc, sessions, serverAdapter := newLeaveFixture(t)
	loggedIn(sessions)

	form := models.LeaveRequestForm{Subject: "vacation", Reason: "family trip"}
	created := models.LeaveRequest{ID: "lr-1", Subject: "vacation", Status: models.LeavePending}

	serverAdapter.EXPECT().CreateLeaveRequest(gomock.Any(), form).Return(created, nil)
	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(makePage("lr-1"), nil).Times(1)

	require.NoError(t, svc.Submit(context.Background(), form))

	state := svc.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "lr-1", state.Items[0].ID)
}

func TestLeaveService_Submit_FailureLeavesListUntouched(t *testing.T) {
	svc, sessions, serverAdapter := newLeaveFixture(t)
	loggedIn(sessions)

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(makePage("a"), nil)
	require.NoError(t, svc.LoadNext(context.Background()))
	before := svc.State()

	serverAdapter.EXPECT().CreateLeaveRequest(gomock.Any(), gomock.Any()).
		Return(models.LeaveRequest{}, assert.AnError)

	err := svc.Submit(context.Background(), models.LeaveRequestForm{Subject: "vacation"})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrSubmitLeave)

	// no refresh ran: the list state is exactly what it was
	assert.Equal(t, before, svc.State())
}

func TestLeaveService_Submit_RequiresSession(t *testing.T) {
	svc, sessions, _ := newLeaveFixture(t)
	sessions.EXPECT().State().Return(service.SessionState{Ready: true})

	err := svc.Submit(context.Background(), models.LeaveRequestForm{Subject: "vacation"})
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

// ── Subscribe ─────────────────────────────────────────────────────────────────

func TestLeaveService_Subscribe_NotifiesOnTransitions(t *testing.T) {
	svc, sessions, serverAdapter := newLeaveFixture(t)
	loggedIn(sessions)

	var seen []service.SyncState
	unsubscribe := svc.Subscribe(func(state service.SyncState) { seen = append(seen, state) })

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(makePage("a"), nil)
	require.NoError(t, svc.LoadNext(context.Background()))

	// one broadcast when the fetch starts, one when it resolves
	require.Len(t, seen, 2)
	assert.True(t, seen[0].Loading)
	assert.False(t, seen[1].Loading)
	require.Len(t, seen[1].Items, 1)

	unsubscribe()

	serverAdapter.EXPECT().ListLeaveRequests(gomock.Any(), 1, testPageSize).Return(makePage("b"), nil)
	require.NoError(t, svc.Refresh(context.Background()))
	assert.Len(t, seen, 2)
}
