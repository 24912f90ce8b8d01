// Package policy holds authorization rules that decide whether a principal
// may act on a resource.
package policy

import (
	"fmt"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
)

// Action is a mutation guarded by the ownership rule.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Owned is implemented by every resource with a single author.
type Owned interface {
	OwnerID() int64
	ResourceKind() string
}

// IsOwner reports whether principal authored resource.
// A nil principal or resource is never an owner.
func IsOwner(resource Owned, principal *entity.User) bool {
	if resource == nil || principal == nil {
		return false
	}

	return resource.OwnerID() == principal.ID
}

// Authorize returns a forbidden error unless principal owns resource.
func Authorize(resource Owned, principal *entity.User, action Action) error {
	if IsOwner(resource, principal) {
		return nil
	}

	kind := "resource"
	if resource != nil {
		kind = resource.ResourceKind()
	}

	return domainerrors.ErrForbidden.WithMessage(
		fmt.Sprintf("Only the %s author can %s this %s", kind, action, kind),
	)
}
