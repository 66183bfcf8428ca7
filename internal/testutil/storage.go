package testutil

import (
	"context"
	"errors"
)

// ErrStorageDown is returned by FailingStorage.
var ErrStorageDown = errors.New("storage unavailable")

// FailingStorage rejects every read and write, counting the attempts.
type FailingStorage struct {
	Reads  int
	Writes int
}

func (f *FailingStorage) Get(context.Context, string) (string, bool, error) {
	f.Reads++
	return "", false, ErrStorageDown
}

func (f *FailingStorage) Set(context.Context, string, string) error {
	f.Writes++
	return ErrStorageDown
}
