package server

import "errors"

var (
	errListening = errors.New("error listening on print address")
)
