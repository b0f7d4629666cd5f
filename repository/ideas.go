package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AquaPirot/pirotskevesti/model"
	"github.com/AquaPirot/pirotskevesti/utils"
)

type IdeaRepo struct {
	db *gorm.DB
}

func NewIdeaRepo(db *gorm.DB) *IdeaRepo {
	return &IdeaRepo{db: db}
}

// Add a new idea into the database
func (r *IdeaRepo) Create(ctx context.Context, idea *model.Idea) error {
	timer := utils.TrackDBOperation("insert", "ideas")
	defer timer.ObserveDuration()

	if idea.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}
	if idea.ID == "" {
		idea.ID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(idea).Error; err != nil {
		utils.TrackError("database", "idea_creation_failed")
		return err
	}
	return nil
}

// List returns all ideas with their owners, newest first
func (r *IdeaRepo) List(ctx context.Context) ([]model.Idea, error) {
	timer := utils.TrackDBOperation("find", "ideas")
	defer timer.ObserveDuration()

	var ideas []model.Idea
	if err := r.db.WithContext(ctx).Preload("User").
		Order("created_at DESC").
		Find(&ideas).Error; err != nil {
		utils.TrackError("database", "idea_fetch_failed")
		return nil, err
	}
	return ideas, nil
}

// Delete removes an idea by id; gorm.ErrRecordNotFound if it does not exist.
func (r *IdeaRepo) Delete(ctx context.Context, id string) error {
	timer := utils.TrackDBOperation("delete", "ideas")
	defer timer.ObserveDuration()

	var idea model.Idea
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&idea).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.TrackError("database", "idea_not_found")
		}
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&idea).Error; err != nil {
		utils.TrackError("database", "idea_deletion_failed")
		return err
	}
	return nil
}

// CountByPriority returns idea totals broken down by priority
func (r *IdeaRepo) CountByPriority(ctx context.Context) (map[string]int, error) {
	timer := utils.TrackDBOperation("count", "ideas")
	defer timer.ObserveDuration()

	var rows []struct {
		Priority string
		Count    int
	}
	if err := r.db.WithContext(ctx).Model(&model.Idea{}).
		Select("priority, count(*) as count").
		Group("priority").
		Scan(&rows).Error; err != nil {
		utils.TrackError("database", "idea_count_failed")
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}
