package redis

import (
	"fmt"

	"github.com/bebe-pirat/edugame-api/internal/model"
)

// Key prefix for all application data
const keyPrefix = "edugame"

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// usersIndexKey returns the Redis key for the SET of all user ids
func usersIndexKey() string {
	return fmt.Sprintf("%s:users", keyPrefix)
}

// resultKey returns the Redis key for a GameResult
func resultKey(id model.ResultID) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, id)
}

// resultsForUserIndexKey returns the Redis key for the SET of result keys
// belonging to a user
func resultsForUserIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:results_for_user:%s", keyPrefix, userID)
}

// resultsIndexKey returns the Redis key for the SET of all result keys
func resultsIndexKey() string {
	return fmt.Sprintf("%s:results", keyPrefix)
}
