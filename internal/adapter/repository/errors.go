package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFound reports whether a Firestore call failed because the document is missing.
func IsNotFound(err error) bool {
	return err != nil && status.Code(err) == codes.NotFound
}
