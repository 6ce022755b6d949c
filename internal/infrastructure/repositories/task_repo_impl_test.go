package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
)

func TestTaskRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createTaskTable(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := &entities.Task{
		Title:      "Call Acme",
		AssignedTo: 1,
		RelatedTo:  &entities.RelatedRef{Kind: entities.RelatedKindDeal, ID: 7},
	}
	require.NoError(t, repo.Create(ctx, task))
	require.NotZero(t, task.ID)
	require.Equal(t, entities.TaskPriorityMedium, task.Priority)

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Call Acme", got.Title)
	require.NotNil(t, got.RelatedTo)
	require.Equal(t, entities.RelatedKindDeal, got.RelatedTo.Kind)
	require.EqualValues(t, 7, got.RelatedTo.ID)

	got.Title = "Call Acme again"
	got.Priority = entities.TaskPriorityHigh
	got.RelatedTo = nil
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Call Acme again", got.Title)
	require.Equal(t, entities.TaskPriorityHigh, got.Priority)
	require.Nil(t, got.RelatedTo)

	require.NoError(t, repo.Delete(ctx, task.ID))
	_, err = repo.GetByID(ctx, task.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTaskRepository_ListDueBetween_LexicalTimeOrder(t *testing.T) {
	db := newTestDB(t)
	createTaskTable(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	due := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	for _, tt := range []struct {
		title string
		slot  string
	}{
		{"Afternoon call", "1:00 PM - 2:00 PM"},
		{"Morning standup", "9:00 AM - 9:30 AM"},
		{"Lunch demo", "11:00 AM - 12:00 PM"},
	} {
		require.NoError(t, repo.Create(ctx, &entities.Task{
			Title:      tt.title,
			DueDate:    null.TimeFrom(due),
			Time:       null.StringFrom(tt.slot),
			AssignedTo: 1,
		}))
	}
	// Different user, same day: must not appear.
	require.NoError(t, repo.Create(ctx, &entities.Task{
		Title: "Someone else's task", DueDate: null.TimeFrom(due), AssignedTo: 2,
	}))

	from := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1).Add(-time.Nanosecond)
	tasks, err := repo.ListDueBetween(ctx, 1, from, to)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// The time column is free text and sorts lexically: "11:00 AM" comes
	// before "1:00 PM" (':' sorts after '1'), and both before "9:00 AM".
	require.Equal(t, "Lunch demo", tasks[0].Title)
	require.Equal(t, "Afternoon call", tasks[1].Title)
	require.Equal(t, "Morning standup", tasks[2].Title)
}

func TestTaskRepository_ToggleCompletion(t *testing.T) {
	db := newTestDB(t)
	createTaskTable(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := &entities.Task{Title: "Flip me", AssignedTo: 1}
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.ToggleCompletion(ctx, task.ID))
	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, got.Completed)

	require.NoError(t, repo.ToggleCompletion(ctx, task.ID))
	got, err = repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.False(t, got.Completed)

	require.ErrorIs(t, repo.ToggleCompletion(ctx, 999), domainerrors.ErrNotFound)
}

func TestTaskRepository_ListByRelated(t *testing.T) {
	db := newTestDB(t)
	createTaskTable(t, db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	ref := entities.RelatedRef{Kind: entities.RelatedKindContact, ID: 3}
	require.NoError(t, repo.Create(ctx, &entities.Task{Title: "Email intro", AssignedTo: 1, RelatedTo: &ref}))
	require.NoError(t, repo.Create(ctx, &entities.Task{Title: "Unrelated", AssignedTo: 1}))
	require.NoError(t, repo.Create(ctx, &entities.Task{
		Title: "Deal task", AssignedTo: 1,
		RelatedTo: &entities.RelatedRef{Kind: entities.RelatedKindDeal, ID: 3},
	}))

	tasks, err := repo.ListByRelated(ctx, ref)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Email intro", tasks[0].Title)
}
