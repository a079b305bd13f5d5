package domain

import "context"

// Store persists the two collections under fixed keys, each rewritten in
// full after every mutation. Implementations return empty slices, not
// errors, when a key has never been written.
type Store interface {
	LoadUsers(ctx context.Context) ([]User, error)
	SaveUsers(ctx context.Context, users []User) error
	LoadActivities(ctx context.Context) ([]Activity, error)
	SaveActivities(ctx context.Context, activities []Activity) error
}
