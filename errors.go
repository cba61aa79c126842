package chainmap

import "errors"

var (
	// Returned by Insert when the key is already present. Insert never
	// overwrites; Update is the dedicated path for that.
	ErrDuplicateKey = errors.New("chainmap: duplicate key")

	// Returned by Update and Delete when the key is absent.
	ErrNotFound = errors.New("chainmap: key not found")
)
