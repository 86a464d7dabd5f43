package store_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcarden/taskdesk/internal/logging"
	"github.com/mcarden/taskdesk/internal/model"
	"github.com/mcarden/taskdesk/internal/storage"
	"github.com/mcarden/taskdesk/internal/store"
	"github.com/mcarden/taskdesk/tests/testutil"
)

func newTaskStore(t *testing.T, st storage.Storage) *store.TaskStore {
	t.Helper()
	s, err := store.NewTaskStore(context.Background(), st, logging.Discard())
	require.NoError(t, err)
	return s
}

func addTask(t *testing.T, s *store.TaskStore, task model.Task) model.Task {
	t.Helper()
	created, err := s.AddTask(context.Background(), task)
	require.NoError(t, err)
	return created
}

func TestAddTask(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	created := addTask(t, tasks, model.Task{Title: "Ship report", User: "Ann", FolderID: "f1"})

	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Attachments)
	assert.Empty(t, created.Attachments)
	assert.False(t, created.CreatedAt.IsZero())

	notifs := tasks.Notifications()
	require.Len(t, notifs, 1)
	assert.Equal(t, `Task "Ship report" created by Ann`, notifs[0].Message)
	assert.Equal(t, model.NotificationInfo, notifs[0].Type)
	assert.False(t, notifs[0].Seen)
}

func TestAddTaskDefaultUserLabel(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	addTask(t, tasks, model.Task{Title: "Untitled ownership"})

	notifs := tasks.Notifications()
	require.Len(t, notifs, 1)
	assert.Equal(t, `Task "Untitled ownership" created by You`, notifs[0].Message)
}

func TestEditTaskPartialPatchPreservesFields(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	created := addTask(t, tasks, model.Task{
		Title:    "Draft budget",
		DueDate:  "2026-09-15",
		Status:   model.StatusInProgress,
		FolderID: "f1",
		User:     "Ann",
	})

	newTitle := "Final budget"
	require.NoError(t, tasks.EditTask(context.Background(), created.ID, store.TaskPatch{Title: &newTitle}))

	got := tasks.TaskByID(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Final budget", got.Title)
	assert.Equal(t, "2026-09-15", got.DueDate)
	assert.Equal(t, model.StatusInProgress, got.Status)
	assert.Equal(t, "f1", got.FolderID)
	assert.Equal(t, "Ann", got.User)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
}

func TestEditTaskNotificationUsesPrePatchTitle(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	created := addTask(t, tasks, model.Task{Title: "Old name"})

	newTitle := "New name"
	require.NoError(t, tasks.EditTask(context.Background(), created.ID, store.TaskPatch{Title: &newTitle}))

	notifs := tasks.Notifications()
	require.Len(t, notifs, 2)
	assert.Equal(t, `Task "Old name" updated`, notifs[0].Message)
}

func TestEditTaskMissingIDIsSilentNoOp(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	title := "nope"
	require.NoError(t, tasks.EditTask(context.Background(), "missing", store.TaskPatch{Title: &title}))
	assert.Empty(t, tasks.Tasks())
	assert.Empty(t, tasks.Notifications())
}

func TestDeleteTask(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	created := addTask(t, tasks, model.Task{Title: "Temp"})
	require.NoError(t, tasks.DeleteTask(context.Background(), created.ID))

	assert.Empty(t, tasks.Tasks())
	notifs := tasks.Notifications()
	require.Len(t, notifs, 2)
	assert.Equal(t, `Task "Temp" deleted`, notifs[0].Message)
}

func TestDeleteTaskMissingIDIsPureNoOp(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	created := addTask(t, tasks, model.Task{Title: "Keep"})
	before := tasks.Notifications()

	require.NoError(t, tasks.DeleteTask(context.Background(), "missing"))

	require.Len(t, tasks.Tasks(), 1)
	assert.Equal(t, created.ID, tasks.Tasks()[0].ID)
	assert.Equal(t, before, tasks.Notifications())
}

func TestUpdateTaskStatusEmitsTwoNotificationsEachWay(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)
	ctx := context.Background()

	created := addTask(t, tasks, model.Task{Title: "Review PR"})

	require.NoError(t, tasks.UpdateTaskStatus(ctx, created.ID, model.StatusCompleted))
	require.NoError(t, tasks.UpdateTaskStatus(ctx, created.ID, model.StatusInProgress))

	got := tasks.TaskByID(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusInProgress, got.Status)

	// One creation notification plus four from the two status changes,
	// most recent first.
	notifs := tasks.Notifications()
	require.Len(t, notifs, 5)

	assert.Equal(t, `moved "Review PR" back to In Progress`, notifs[0].Message)
	assert.Equal(t, model.NotificationInfo, notifs[0].Type)
	assert.Equal(t, created.ID, notifs[0].TaskID)

	assert.Equal(t, `Task "Review PR" marked In Progress`, notifs[1].Message)

	assert.Equal(t, `completed "Review PR"`, notifs[2].Message)
	assert.Equal(t, model.NotificationSuccess, notifs[2].Type)
	assert.Equal(t, created.ID, notifs[2].TaskID)

	assert.Equal(t, `Task "Review PR" marked Completed`, notifs[3].Message)
	assert.Equal(t, model.NotificationInfo, notifs[3].Type)
}

func TestUpdateTaskStatusMissingIDIsSilentNoOp(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	require.NoError(t, tasks.UpdateTaskStatus(context.Background(), "missing", model.StatusCompleted))
	assert.Empty(t, tasks.Notifications())
}

func TestArchiveTask(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	created := addTask(t, tasks, model.Task{Title: "Wrap up"})
	require.NoError(t, tasks.ArchiveTask(context.Background(), created.ID))

	assert.Empty(t, tasks.Tasks())

	archived := tasks.ArchivedTasks()
	require.Len(t, archived, 1)
	assert.Equal(t, created.ID, archived[0].ID)
	assert.Equal(t, "Wrap up", archived[0].Title)
	assert.False(t, archived[0].ArchivedAt.Before(created.CreatedAt))

	// Archive produces two notifications: the delegated delete's, then its own.
	notifs := tasks.Notifications()
	require.Len(t, notifs, 3)
	assert.Equal(t, `Task "Wrap up" archived`, notifs[0].Message)
	assert.Equal(t, `Task "Wrap up" deleted`, notifs[1].Message)
}

func TestArchiveTaskMissingIDIsPureNoOp(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	require.NoError(t, tasks.ArchiveTask(context.Background(), "missing"))
	assert.Empty(t, tasks.ArchivedTasks())
	assert.Empty(t, tasks.Notifications())
}

func TestAddAttachment(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)
	ctx := context.Background()

	created := addTask(t, tasks, model.Task{Title: "With file"})

	err := <-tasks.AddAttachment(ctx, created.ID, "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	got := tasks.TaskByID(created.ID)
	require.NotNil(t, got)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "notes.txt", got.Attachments[0].Name)
	assert.True(t, strings.HasPrefix(got.Attachments[0].Data, "data:"))
	assert.Contains(t, got.Attachments[0].Data, ";base64,")

	notifs := tasks.Notifications()
	require.Len(t, notifs, 2)
	assert.Equal(t, `Attachment "notes.txt" added to "With file"`, notifs[0].Message)
}

func TestAddAttachmentToDeletedTask(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)
	ctx := context.Background()

	created := addTask(t, tasks, model.Task{Title: "Gone soon"})
	require.NoError(t, tasks.DeleteTask(ctx, created.ID))
	before := tasks.Notifications()

	err := <-tasks.AddAttachment(ctx, created.ID, "late.txt", strings.NewReader("too late"))
	require.NoError(t, err)

	assert.Empty(t, tasks.Tasks())
	assert.Equal(t, before, tasks.Notifications())
}

func TestRemoveAttachment(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)
	ctx := context.Background()

	created := addTask(t, tasks, model.Task{Title: "Two files"})
	require.NoError(t, <-tasks.AddAttachment(ctx, created.ID, "a.txt", strings.NewReader("a")))
	require.NoError(t, <-tasks.AddAttachment(ctx, created.ID, "b.txt", strings.NewReader("b")))

	before := len(tasks.Notifications())
	require.NoError(t, tasks.RemoveAttachment(ctx, created.ID, 0))

	got := tasks.TaskByID(created.ID)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "b.txt", got.Attachments[0].Name)

	// No notification for attachment removal.
	assert.Len(t, tasks.Notifications(), before)
}

func TestRemoveAttachmentOutOfRangeIndex(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)
	ctx := context.Background()

	created := addTask(t, tasks, model.Task{Title: "One file"})
	require.NoError(t, <-tasks.AddAttachment(ctx, created.ID, "a.txt", strings.NewReader("a")))

	require.NoError(t, tasks.RemoveAttachment(ctx, created.ID, 5))
	require.Len(t, tasks.TaskByID(created.ID).Attachments, 1)
}

func TestMarkNotificationSeen(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)
	ctx := context.Background()

	require.NoError(t, tasks.AddNotification(ctx, "hello", model.NotificationWarning, ""))
	id := tasks.Notifications()[0].ID

	require.NoError(t, tasks.MarkNotificationSeen(ctx, id))
	assert.True(t, tasks.Notifications()[0].Seen)

	// Absent id is a no-op.
	require.NoError(t, tasks.MarkNotificationSeen(ctx, "missing"))
}

func TestNotificationsPrependAtHead(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)
	ctx := context.Background()

	for _, msg := range []string{"first", "second", "third"} {
		require.NoError(t, tasks.AddNotification(ctx, msg, model.NotificationInfo, ""))
	}

	notifs := tasks.Notifications()
	require.Len(t, notifs, 3)
	assert.Equal(t, "third", notifs[0].Message)
	assert.Equal(t, "second", notifs[1].Message)
	assert.Equal(t, "first", notifs[2].Message)
}

func TestTaskStateSurvivesReload(t *testing.T) {
	st := testutil.NewTestStorage(t)
	ctx := context.Background()

	tasks := newTaskStore(t, st)
	created := addTask(t, tasks, model.Task{Title: "Persisted", DueDate: "2026-09-30"})
	require.NoError(t, <-tasks.AddAttachment(ctx, created.ID, "a.txt", strings.NewReader("a")))
	require.NoError(t, tasks.UpdateTaskStatus(ctx, created.ID, model.StatusCompleted))

	reloaded := newTaskStore(t, st)

	gotTasks := reloaded.Tasks()
	require.Len(t, gotTasks, 1)
	want := tasks.TaskByID(created.ID)
	assert.Equal(t, *want, gotTasks[0])
	assert.Equal(t, tasks.Notifications(), reloaded.Notifications())
	assert.Equal(t, tasks.ArchivedTasks(), reloaded.ArchivedTasks())
}

func TestArchiveTimestampIsUTCWallClock(t *testing.T) {
	st := testutil.NewTestStorage(t)
	tasks := newTaskStore(t, st)

	start := time.Now().UTC()
	created := addTask(t, tasks, model.Task{Title: "Timed"})
	require.NoError(t, tasks.ArchiveTask(context.Background(), created.ID))

	archived := tasks.ArchivedTasks()
	require.Len(t, archived, 1)
	assert.False(t, archived[0].ArchivedAt.Before(start))
	assert.False(t, archived[0].ArchivedAt.After(time.Now().UTC()))
}
