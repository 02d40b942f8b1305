package chatlog

import "errors"

// Sentinel errors.
var (
	// ErrUnparsableLine is returned by ParseReader/ParseFile in strict mode
	// when a non-blank line doesn't match the export format.
	ErrUnparsableLine = errors.New("line does not match chat-export format")

	// ErrFollowerClosed is returned when using a Follower after Close.
	ErrFollowerClosed = errors.New("follower is closed")

	// ErrAlreadyFollowing is returned when Follow is called twice on the
	// same Follower.
	ErrAlreadyFollowing = errors.New("follower is already following")
)
