package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipdesk/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockDeskSweeper struct{ mock.Mock }

func (m *MockDeskSweeper) Sweep(now time.Time, idle time.Duration) int {
	args := m.Called(now, idle)
	return args.Int(0)
}

func (m *MockDeskSweeper) Len() int {
	return m.Called().Int(0)
}

type MockJournalPruner struct{ mock.Mock }

func (m *MockJournalPruner) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestDeskJanitorJob_RunOnce(t *testing.T) {
	registry := new(MockDeskSweeper)
	registry.On("Sweep", mock.AnythingOfType("time.Time"), 30*time.Minute).Return(2).Once()
	registry.On("Len").Return(3).Once()
	core, logs := observer.New(zap.InfoLevel)

	job := jobs.NewDeskJanitorJob(registry, 30*time.Minute, "", zap.New(core))

	assert.Equal(t, 2, job.RunOnce())
	registry.AssertExpectations(t)
	entries := logs.FilterMessage("idle desks closed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["open"])
}

func TestDeskJanitorJob_NothingIdle(t *testing.T) {
	registry := new(MockDeskSweeper)
	registry.On("Sweep", mock.AnythingOfType("time.Time"), 30*time.Minute).Return(0).Once()

	job := jobs.NewDeskJanitorJob(registry, 30*time.Minute, "", zap.NewNop())

	assert.Zero(t, job.RunOnce())
	registry.AssertNotCalled(t, "Len")
}

func TestDeskJanitorJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewDeskJanitorJob(new(MockDeskSweeper), time.Minute, "every now and then", zap.NewNop())

	assert.Error(t, job.Start())
}

func TestJournalRetentionJob_RunOnce(t *testing.T) {
	journal := new(MockJournalPruner)
	before := time.Now().Add(-30 * 24 * time.Hour)
	journal.On("PruneBefore", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		return !cutoff.Before(before) && cutoff.Before(time.Now())
	})).Return(int64(7), nil).Once()

	job := jobs.NewJournalRetentionJob(journal, 30*24*time.Hour, "", zap.NewNop())

	removed, err := job.RunOnce(t.Context())

	require.NoError(t, err)
	assert.Equal(t, int64(7), removed)
	journal.AssertExpectations(t)
}

func TestJournalRetentionJob_RunOnceFailure(t *testing.T) {
	journal := new(MockJournalPruner)
	journal.On("PruneBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()

	job := jobs.NewJournalRetentionJob(journal, time.Hour, "", zap.NewNop())

	_, err := job.RunOnce(t.Context())

	assert.EqualError(t, err, "db down")
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	jm := jobs.NewJobManager(new(MockDeskSweeper), new(MockJournalPruner), jobs.Settings{
		DeskIdle:         30 * time.Minute,
		JournalRetention: 24 * time.Hour,
	}, zap.NewNop())

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_StartAllFailsOnBadRetentionSchedule(t *testing.T) {
	jm := jobs.NewJobManager(new(MockDeskSweeper), new(MockJournalPruner), jobs.Settings{
		DeskIdle:          time.Minute,
		JournalRetention:  time.Hour,
		RetentionSchedule: "not a schedule",
	}, zap.NewNop())

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal retention job")
}

func TestJobManager_WithoutJournal(t *testing.T) {
	jm := jobs.NewJobManager(new(MockDeskSweeper), nil, jobs.Settings{DeskIdle: time.Minute, JournalRetention: time.Hour}, zap.NewNop())

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
