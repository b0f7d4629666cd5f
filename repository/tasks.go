package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/utils"
)

type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// Add a new task into the database
func (r *TaskRepo) Create(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	if task.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		utils.TrackError("database", "task_creation_failed")
		return err
	}
	return nil
}

// List returns all tasks with their owners, newest first
func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	var tasks []model.Task
	if err := r.db.WithContext(ctx).Preload("User").
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	return tasks, nil
}

// Delete removes a task by id; gorm.ErrRecordNotFound if it does not exist.
// A repeated delete of the same id is therefore NotFound, not success.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.TrackError("database", "task_not_found")
		}
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&task).Error; err != nil {
		utils.TrackError("database", "task_deletion_failed")
		return err
	}
	return nil
}

// CountByStatus returns task totals broken down by status
func (r *TaskRepo) CountByStatus(ctx context.Context) (map[model.TaskStatus]int, error) {
	timer := utils.TrackDBOperation("count", "tasks")
	defer timer.ObserveDuration()

	var rows []struct {
		Status model.TaskStatus
		Count  int
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		utils.TrackError("database", "task_count_failed")
		return nil, err
	}

	counts := make(map[model.TaskStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
