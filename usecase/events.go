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

const eventCollection = "events"

type EventService struct {
	repo     *repository.EventRepo
	userRepo *repository.UserRepo
	cache    *services.ListCache
}

func NewEventService(repo *repository.EventRepo, userRepo *repository.UserRepo, cache *services.ListCache) *EventService {
	return &EventService{repo: repo, userRepo: userRepo, cache: cache}
}

// List returns all events, soonest first
func (svc *EventService) List(ctx context.Context) ([]model.Event, error) {
	var cached []model.Event
	if svc.cache.Get(ctx, eventCollection, &cached) {
		return cached, nil
	}

	events, err := svc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	svc.cache.Set(ctx, eventCollection, events)
	return events, nil
}

// Create resolves the owner, applies defaults and stores the event.
func (svc *EventService) Create(ctx context.Context, event *model.Event, ownerName string) error {
	if ownerName == "" {
		return errors.New("user name is required")
	}
	if event.Title == "" {
		return errors.New("event title is required")
	}
	if event.Date.IsZero() {
		return errors.New("event date is required")
	}

	user, err := svc.userRepo.ResolveOrCreate(ctx, ownerName)
	if err != nil {
		return err
	}
	event.UserID = user.ID

	if event.Priority == "" {
		event.Priority = model.PriorityMedium
	}
	event.CreatedAt = time.Now()

	if err := svc.repo.Create(ctx, event); err != nil {
		return err
	}
	event.User = *user

	svc.cache.Invalidate(ctx, eventCollection)
	utils.TrackRecordOperation(eventCollection, "create")
	return nil
}

// Delete removes an event by id
func (svc *EventService) Delete(ctx context.Context, id string) error {
	if err := svc.repo.Delete(ctx, id); err != nil {
		return err
	}

	svc.cache.Invalidate(ctx, eventCollection)
	utils.TrackRecordOperation(eventCollection, "delete")
	return nil
}

// Upcoming returns at most five events inside the next-7-days window,
// soonest first
func (svc *EventService) Upcoming(ctx context.Context, now time.Time) ([]model.Event, error) {
	events, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Upcoming(events, now), nil
}

// MonthGrid lays out the given zero-based month with its events
func (svc *EventService) MonthGrid(ctx context.Context, year, month int, now time.Time) ([]schedule.Cell, error) {
	events, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.BuildMonthGrid(year, month, events, now), nil
}
