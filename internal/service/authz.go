package service

import "github.com/google/uuid"

// CanMutate is the single authorship capability check: only the author may
// mutate a resource. Every author-gated operation funnels through this.
func CanMutate(userID, authorID uuid.UUID) bool {
	return userID != uuid.Nil && userID == authorID
}
