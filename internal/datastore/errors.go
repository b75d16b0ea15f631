package datastore

import "errors"

// ErrFileExists is returned when an export target is already on disk.
var ErrFileExists = errors.New("export file already exists")
