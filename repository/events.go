package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/utils"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db: db}
}

// Add a new event into the database
func (r *EventRepo) Create(ctx context.Context, event *model.Event) error {
	timer := utils.TrackDBOperation("insert", "events")
	defer timer.ObserveDuration()

	if event.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		utils.TrackError("database", "event_creation_failed")
		return err
	}
	return nil
}

// List returns all events with their owners, soonest first
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	timer := utils.TrackDBOperation("find", "events")
	defer timer.ObserveDuration()

	var events []model.Event
	if err := r.db.WithContext(ctx).Preload("User").
		Order("date ASC").
		Find(&events).Error; err != nil {
		utils.TrackError("database", "event_fetch_failed")
		return nil, err
	}
	return events, nil
}

// Delete removes an event by id; gorm.ErrRecordNotFound if it does not exist.
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	timer := utils.TrackDBOperation("delete", "events")
	defer timer.ObserveDuration()

	var event model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.TrackError("database", "event_not_found")
		}
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&event).Error; err != nil {
		utils.TrackError("database", "event_deletion_failed")
		return err
	}
	return nil
}

// CountByPriority returns event totals broken down by priority
func (r *EventRepo) CountByPriority(ctx context.Context) (map[string]int, error) {
	timer := utils.TrackDBOperation("count", "events")
	defer timer.ObserveDuration()

	var rows []struct {
		Priority string
		Count    int
	}
	if err := r.db.WithContext(ctx).Model(&model.Event{}).
		Select("priority, count(*) as count").
		Group("priority").
		Scan(&rows).Error; err != nil {
		utils.TrackError("database", "event_count_failed")
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}
