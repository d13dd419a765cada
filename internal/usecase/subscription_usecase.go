package usecase

import (
	"context"
	"errors"
	"strings"

	"subscription_billing/internal/domain/entities"
	"subscription_billing/internal/usecase/interfaces"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

// ISubscriptionUseCase exposes the subscription read model.

type ISubscriptionUseCase interface {
	GetByUserID(ctx context.Context, userID string) (entities.Subscription, error)
}

type SubscriptionUseCase struct {
	repo interfaces.ISubscriptionRepository
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo}
}

func (u *SubscriptionUseCase) GetByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Subscription{}, ErrInvalidUserID
	}

	s, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if s.UserID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	return s, nil
}
