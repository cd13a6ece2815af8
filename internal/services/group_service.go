package services

import (
	"context"
	"errors"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// GroupService keeps users in the permission groups their account state
// requires.
type GroupService interface {
	// EnsureMember adds the user to the group with the given handle,
	// preserving every group they already belong to. Calling it again is a
	// no-op.
	EnsureMember(ctx context.Context, userID, groupHandle string) error
}

type groupService struct {
	userRepo repositories.UserRepository
}

func NewGroupService(userRepo repositories.UserRepository) GroupService {
	return &groupService{userRepo: userRepo}
}

func (s *groupService) EnsureMember(ctx context.Context, userID, groupHandle string) error {
	group, err := s.userRepo.FindGroupByHandle(groupHandle)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			logger.CtxWarn(ctx, "Group does not exist, skipping assignment", "handle", groupHandle)
			return nil
		}
		return apperrors.InternalError(err)
	}

	current, err := s.userRepo.GetUserGroups(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "users", "User not found")
		}
		return apperrors.InternalError(err)
	}

	for _, g := range current {
		if g.Handle == groupHandle {
			return nil
		}
	}

	// Union, not replacement: assignment writes the full set, so the new
	// group is appended to the existing memberships.
	next := make([]models.UserGroup, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, *group)

	if err := s.userRepo.AssignUserToGroups(userID, next); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User added to group", "user_id", userID, "handle", groupHandle)
	return nil
}
