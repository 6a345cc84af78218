package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell-api/internal/domain"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	tests := []struct {
		name        string
		userID      uuid.UUID
		title       string
		description string
		status      domain.TaskStatus
		wantErr     error
		wantStatus  domain.TaskStatus
	}{
		{
			name:       "valid task with explicit status",
			userID:     ownerID,
			title:      "Buy milk",
			status:     domain.TaskStatusDone,
			wantStatus: domain.TaskStatusDone,
		},
		{
			name:       "empty status defaults to pending",
			userID:     ownerID,
			title:      "Buy milk",
			wantStatus: domain.TaskStatusPending,
		},
		{
			name:    "empty title rejected",
			userID:  ownerID,
			title:   "",
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "whitespace-only title rejected",
			userID:  ownerID,
			title:   "   \t ",
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "unknown status rejected",
			userID:  ownerID,
			title:   "Buy milk",
			status:  domain.TaskStatus("archived"),
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:    "missing owner rejected",
			userID:  uuid.Nil,
			title:   "Buy milk",
			wantErr: domain.ErrEmptyTaskOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := domain.NewTask(tt.userID, tt.title, tt.description, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, task.ID)
			assert.Equal(t, tt.userID, task.UserID)
			assert.Equal(t, tt.wantStatus, task.Status)
			assert.False(t, task.CreatedAt.IsZero())
		})
	}
}

func TestNewTask_TrimsFields(t *testing.T) {
	t.Parallel()

	task, err := domain.NewTask(uuid.New(), "  Buy milk  ", "  from the corner shop ", "")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "from the corner shop", task.Description)
}

func TestTaskStatus_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.TaskStatusPending.IsValid())
	assert.True(t, domain.TaskStatusDone.IsValid())
	assert.False(t, domain.TaskStatus("").IsValid())
	assert.False(t, domain.TaskStatus("all").IsValid())
	assert.False(t, domain.TaskStatus("DONE").IsValid())
}

func TestTaskStatus_Toggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.TaskStatusDone, domain.TaskStatusPending.Toggle())
	assert.Equal(t, domain.TaskStatusPending, domain.TaskStatusDone.Toggle())
}
