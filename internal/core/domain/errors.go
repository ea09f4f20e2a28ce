package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAnimalNotFound      = errors.New("animal not found")
	ErrTrainingLogNotFound = errors.New("training log not found")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email & password combination")

	// ErrBrokenReference is returned when a training log references a user or
	// animal that does not exist.
	ErrBrokenReference = errors.New("referenced user or animal does not exist")

	// ErrOwnershipMismatch is returned when a referenced entity is not owned
	// by the expected user.
	ErrOwnershipMismatch = errors.New("entity not owned by the expected user")

	// ErrStorageWorker is returned when the external storage worker replies
	// with a non-200 status.
	ErrStorageWorker = errors.New("storage worker rejected the upload")
)
