package services

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// status codes with errors.Is.
var (
	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrNoteNotFound          = errors.New("note not found")
	ErrNotePrivate           = errors.New("cannot like a private note")
	ErrAlreadyLiked          = errors.New("note already liked")
	ErrNotLiked              = errors.New("note not liked")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrNotificationForbidden = errors.New("notification belongs to another user")
	ErrRecognitionUpstream   = errors.New("recognition model unavailable")
)
