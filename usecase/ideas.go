package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/repository"
	"github.com/AquaPirot/pirotskevesti/services"
	"github.com/AquaPirot/pirotskevesti/utils"
)

const ideaCollection = "ideas"

type IdeaService struct {
	repo     *repository.IdeaRepo
	userRepo *repository.UserRepo
	cache    *services.ListCache
}

func NewIdeaService(repo *repository.IdeaRepo, userRepo *repository.UserRepo, cache *services.ListCache) *IdeaService {
	return &IdeaService{repo: repo, userRepo: userRepo, cache: cache}
}

// List returns all ideas, newest first
func (svc *IdeaService) List(ctx context.Context) ([]model.Idea, error) {
	var cached []model.Idea
	if svc.cache.Get(ctx, ideaCollection, &cached) {
		return cached, nil
	}

	ideas, err := svc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	svc.cache.Set(ctx, ideaCollection, ideas)
	return ideas, nil
}

// Create resolves the owner, applies defaults and stores the idea.
func (svc *IdeaService) Create(ctx context.Context, idea *model.Idea, ownerName string) error {
	if ownerName == "" {
		return errors.New("user name is required")
	}
	if idea.Title == "" {
		return errors.New("idea title is required")
	}

	user, err := svc.userRepo.ResolveOrCreate(ctx, ownerName)
	if err != nil {
		return err
	}
	idea.UserID = user.ID

	if idea.Priority == "" {
		idea.Priority = model.PriorityMedium
	}
	if idea.Category == "" {
		idea.Category = model.DefaultIdeaCategory
	}
	idea.CreatedAt = time.Now()

	if err := svc.repo.Create(ctx, idea); err != nil {
		return err
	}
	idea.User = *user

	svc.cache.Invalidate(ctx, ideaCollection)
	utils.TrackRecordOperation(ideaCollection, "create")
	return nil
}

// Delete removes an idea by id
func (svc *IdeaService) Delete(ctx context.Context, id string) error {
	if err := svc.repo.Delete(ctx, id); err != nil {
		return err
	}

	svc.cache.Invalidate(ctx, ideaCollection)
	utils.TrackRecordOperation(ideaCollection, "delete")
	return nil
}
