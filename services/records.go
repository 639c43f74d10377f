package services

import (
	"context"
	"time"
)

// owned is any per-user record.
type owned interface {
	comparable
	OwnerID() int64
}

// authorize turns a repository lookup into the record the caller may act on.
// A missing record is ErrNotFound and another user's record is ErrForbidden.
func authorize[T owned](rec T, err error, userID int64) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if rec == zero {
		return zero, ErrNotFound
	}
	if rec.OwnerID() != userID {
		return zero, ErrForbidden
	}
	return rec, nil
}

// fetch loads a record by id and authorizes it for userID
func fetch[T owned](ctx context.Context, get func(context.Context, int64) (T, error), id, userID int64) (T, error) {
	rec, err := get(ctx, id)
	return authorize(rec, err, userID)
}

// remove authorizes and deletes a record
func remove[T owned](ctx context.Context, get func(context.Context, int64) (T, error), del func(context.Context, int64) (bool, error), id, userID int64) error {
	if _, err := fetch(ctx, get, id, userID); err != nil {
		return err
	}
	deleted, err := del(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// set copies *src into *dst when src is non-nil.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
