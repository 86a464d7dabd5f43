package store

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcarden/taskdesk/internal/attachment"
	"github.com/mcarden/taskdesk/internal/logging"
	"github.com/mcarden/taskdesk/internal/model"
	"github.com/mcarden/taskdesk/internal/storage"
)

// TaskPatch carries the fields an edit may change. Nil fields are left
// untouched on the task (shallow merge).
type TaskPatch struct {
	Title    *string
	DueDate  *string
	Status   *string
	FolderID *string
	User     *string
}

// TaskStore manages live tasks, their archived copies, and the notification
// log derived from task mutations.
//
// Operations that reference a missing task ID are silent no-ops: they return
// nil and emit no notification. Callers must not assume success. The mutex
// exists because attachment encoding completes on its own goroutine; every
// other caller is the single command loop.
type TaskStore struct {
	mu            sync.Mutex
	storage       storage.Storage
	log           logging.Logger
	tasks         []model.Task
	archived      []model.ArchivedTask
	notifications []model.Notification
}

// NewTaskStore loads tasks, archived tasks, and notifications.
func NewTaskStore(ctx context.Context, st storage.Storage, log logging.Logger) (*TaskStore, error) {
	s := &TaskStore{storage: st, log: log}

	if _, err := st.Load(ctx, storage.KeyTasks, &s.tasks); err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	if _, err := st.Load(ctx, storage.KeyArchivedTasks, &s.archived); err != nil {
		return nil, fmt.Errorf("loading archived tasks: %w", err)
	}
	if _, err := st.Load(ctx, storage.KeyNotifications, &s.notifications); err != nil {
		return nil, fmt.Errorf("loading notifications: %w", err)
	}

	return s, nil
}

// AddTask appends the task with an initialized empty attachment list and
// emits a creation notification attributed to the task's user, or "You"
// when unset. A missing ID is generated.
func (s *TaskStore) AddTask(ctx context.Context, task model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	task.Attachments = []model.Attachment{}

	s.tasks = append(s.tasks, task)
	if err := s.saveTasks(ctx); err != nil {
		return model.Task{}, err
	}

	user := task.User
	if user == "" {
		user = "You"
	}
	if err := s.addNotification(ctx, fmt.Sprintf("Task %q created by %s", task.Title, user), model.NotificationInfo, ""); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// EditTask merges the patch into the matching task. The "updated"
// notification carries the pre-patch title, matching the snapshot the
// mutation was issued against.
func (s *TaskStore) EditTask(ctx context.Context, id string, patch TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	oldTitle := s.tasks[i].Title
	if patch.Title != nil {
		s.tasks[i].Title = *patch.Title
	}
	if patch.DueDate != nil {
		s.tasks[i].DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		s.tasks[i].Status = *patch.Status
	}
	if patch.FolderID != nil {
		s.tasks[i].FolderID = *patch.FolderID
	}
	if patch.User != nil {
		s.tasks[i].User = *patch.User
	}

	if err := s.saveTasks(ctx); err != nil {
		return err
	}
	return s.addNotification(ctx, fmt.Sprintf("Task %q updated", oldTitle), model.NotificationInfo, "")
}

// DeleteTask removes the task and emits a "deleted" notification.
func (s *TaskStore) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteTask(ctx, id)
}

// deleteTask is DeleteTask without the lock, shared with ArchiveTask.
func (s *TaskStore) deleteTask(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	title := s.tasks[i].Title
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	if err := s.saveTasks(ctx); err != nil {
		return err
	}
	return s.addNotification(ctx, fmt.Sprintf("Task %q deleted", title), model.NotificationInfo, "")
}

// UpdateTaskStatus sets the status and emits two notifications: a generic
// "marked <status>" one, then a typed one (success on Completed, info on the
// move back to In Progress). Both use the pre-mutation snapshot of the task.
func (s *TaskStore) UpdateTaskStatus(ctx context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	snapshot := s.tasks[i]
	s.tasks[i].Status = status
	if err := s.saveTasks(ctx); err != nil {
		return err
	}

	if err := s.addNotification(ctx, fmt.Sprintf("Task %q marked %s", snapshot.Title, status), model.NotificationInfo, ""); err != nil {
		return err
	}

	switch status {
	case model.StatusCompleted:
		return s.addNotification(ctx, fmt.Sprintf("completed %q", snapshot.Title), model.NotificationSuccess, snapshot.ID)
	case model.StatusInProgress:
		return s.addNotification(ctx, fmt.Sprintf("moved %q back to In Progress", snapshot.Title), model.NotificationInfo, snapshot.ID)
	}
	return nil
}

// ArchiveTask copies the task into the archived list stamped with the
// current time, then deletes it from the live list. The delegated delete
// emits its own notification, so one archive produces two entries.
func (s *TaskStore) ArchiveTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	snapshot := s.tasks[i]
	s.archived = append(s.archived, model.ArchivedTask{
		Task:       snapshot,
		ArchivedAt: time.Now().UTC(),
	})
	if err := s.storage.Save(ctx, storage.KeyArchivedTasks, s.archived); err != nil {
		return fmt.Errorf("saving archived tasks: %w", err)
	}

	if err := s.deleteTask(ctx, id); err != nil {
		return err
	}
	return s.addNotification(ctx, fmt.Sprintf("Task %q archived", snapshot.Title), model.NotificationInfo, "")
}

// AddAttachment encodes the file content on its own goroutine and, once
// encoding completes, appends the attachment to the task and emits a
// notification. The notification reads the task's state as of completion; a
// task deleted while encoding was in flight gets no attachment and no
// notification. The returned channel receives the single outcome; there is
// no cancellation.
func (s *TaskStore) AddAttachment(ctx context.Context, taskID, name string, r io.Reader) <-chan error {
	done := make(chan error, 1)

	go func() {
		att, err := attachment.Encode(name, r)
		if err != nil {
			s.log.Error(ctx, "encoding attachment failed", "task_id", taskID, "name", name, "err", err)
			done <- err
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		i := s.indexOf(taskID)
		if i < 0 {
			done <- nil
			return
		}

		s.tasks[i].Attachments = append(s.tasks[i].Attachments, att)
		if err := s.saveTasks(ctx); err != nil {
			done <- err
			return
		}
		done <- s.addNotification(ctx, fmt.Sprintf("Attachment %q added to %q", name, s.tasks[i].Title), model.NotificationInfo, "")
	}()

	return done
}

// RemoveAttachment drops the attachment at the given position. An
// out-of-range index leaves the list as it was. No notification is emitted.
func (s *TaskStore) RemoveAttachment(ctx context.Context, taskID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(taskID)
	if i < 0 {
		return nil
	}

	kept := make([]model.Attachment, 0, len(s.tasks[i].Attachments))
	for j, att := range s.tasks[i].Attachments {
		if j != index {
			kept = append(kept, att)
		}
	}
	s.tasks[i].Attachments = kept

	return s.saveTasks(ctx)
}

// AddNotification prepends an unseen notification with a generated ID and
// the current timestamp. taskID may be empty.
func (s *TaskStore) AddNotification(ctx context.Context, message, typ, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNotification(ctx, message, typ, taskID)
}

// addNotification is AddNotification without the lock, used by the mutators.
func (s *TaskStore) addNotification(ctx context.Context, message, typ, taskID string) error {
	n := model.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Type:      typ,
		TaskID:    taskID,
		Seen:      false,
		CreatedAt: time.Now().UTC(),
	}

	s.notifications = append([]model.Notification{n}, s.notifications...)
	if err := s.storage.Save(ctx, storage.KeyNotifications, s.notifications); err != nil {
		return fmt.Errorf("saving notifications: %w", err)
	}
	return nil
}

// MarkNotificationSeen flips the seen flag for the matching notification.
func (s *TaskStore) MarkNotificationSeen(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Seen = true
			if err := s.storage.Save(ctx, storage.KeyNotifications, s.notifications); err != nil {
				return fmt.Errorf("saving notifications: %w", err)
			}
			return nil
		}
	}
	return nil
}

// Tasks returns a copy of the live task list.
func (s *TaskStore) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TaskByID returns a copy of the task with the given ID, or nil.
func (s *TaskStore) TaskByID(id string) *model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	t := s.tasks[i]
	return &t
}

// ArchivedTasks returns a copy of the archived list in archive order.
func (s *TaskStore) ArchivedTasks() []model.ArchivedTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ArchivedTask, len(s.archived))
	copy(out, s.archived)
	return out
}

// Notifications returns a copy of the notification list, most recent first.
func (s *TaskStore) Notifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// indexOf returns the position of the task with the given ID, or -1.
// Callers must hold the lock.
func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// saveTasks persists the live task list. Callers must hold the lock.
func (s *TaskStore) saveTasks(ctx context.Context) error {
	if err := s.storage.Save(ctx, storage.KeyTasks, s.tasks); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}
