package storage

import "errors"

var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWishlistDuplicate = errors.New("product already in wishlist")
	ErrSessionNotFound   = errors.New("session not found")
)
