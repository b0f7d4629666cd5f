package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/repository"
	"github.com/AquaPirot/pirotskevesti/schedule"
	"github.com/AquaPirot/pirotskevesti/services"
	"github.com/AquaPirot/pirotskevesti/utils"
)

const taskCollection = "tasks"

type TaskService struct {
	repo     *repository.TaskRepo
	userRepo *repository.UserRepo
	cache    *services.ListCache
}

func NewTaskService(repo *repository.TaskRepo, userRepo *repository.UserRepo, cache *services.ListCache) *TaskService {
	return &TaskService{repo: repo, userRepo: userRepo, cache: cache}
}

// List returns all tasks, newest first
func (svc *TaskService) List(ctx context.Context) ([]model.Task, error) {
	var cached []model.Task
	if svc.cache.Get(ctx, taskCollection, &cached) {
		return cached, nil
	}

	tasks, err := svc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	svc.cache.Set(ctx, taskCollection, tasks)
	return tasks, nil
}

// Create resolves the owner by display name (creating them on first
// reference), applies defaults and stores the task.
func (svc *TaskService) Create(ctx context.Context, task *model.Task, ownerName string) error {
	if ownerName == "" {
		return errors.New("user name is required")
	}

	user, err := svc.userRepo.ResolveOrCreate(ctx, ownerName)
	if err != nil {
		return err
	}
	task.UserID = user.ID

	now := time.Now()
	if task.Status == "" {
		task.Status = model.StatusInProgress
	}
	if task.Date.IsZero() {
		task.Date = now
	}
	task.CreatedAt = now

	if err := svc.repo.Create(ctx, task); err != nil {
		return err
	}
	task.User = *user

	svc.cache.Invalidate(ctx, taskCollection)
	utils.TrackRecordOperation(taskCollection, "create")
	return nil
}

// Delete removes a task by id
func (svc *TaskService) Delete(ctx context.Context, id string) error {
	if err := svc.repo.Delete(ctx, id); err != nil {
		return err
	}

	svc.cache.Invalidate(ctx, taskCollection)
	utils.TrackRecordOperation(taskCollection, "delete")
	return nil
}

// TodaysTasks returns the tasks dated on now's calendar day
func (svc *TaskService) TodaysTasks(ctx context.Context, now time.Time) ([]model.Task, error) {
	tasks, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.TodaysTasks(tasks, now), nil
}
