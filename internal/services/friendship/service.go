package friendship

import (
	errs "minipay/internal/errors"
	"minipay/internal/models"
)

// Service handles friendship between users.
type Service interface {
	AddFriend(user, friend *models.User) error
}

type service struct{}

// NewService creates a friendship service.
func NewService() Service {
	return &service{}
}

// AddFriend records a symmetric friendship between user and friend and
// appends a matching entry to both feeds. Fails if they are already
// friends; on failure neither user is mutated.
func (s *service) AddFriend(user, friend *models.User) error {
	if user.IsFriendsWith(friend) {
		return errs.Newf(errs.CodeDuplicateFriend, "%s is already your friend", friend.Username)
	}

	user.Friends[friend.Username] = friend
	friend.Friends[user.Username] = user

	user.Feed.AddFriendEntry(user, friend)
	friend.Feed.AddFriendEntry(user, friend)
	return nil
}
