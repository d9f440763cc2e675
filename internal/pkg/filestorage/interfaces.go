package filestorage

import (
	"context"
	"mime/multipart"
	"strings"
)

// Well-known storage folders
const (
	FolderStudentPhotos    = "student-photos"
	FolderStudentDocuments = "student-documents"
	FolderTeacherWork      = "teacher-work"
)

// Storage defines the interface for file storage backends. Save returns a
// reference that is either a path relative to the uploads directory (local
// backend) or a full URL (remote backend).
type Storage interface {
	// Save stores an uploaded file under the given folder and returns its reference
	Save(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)

	// Delete removes a previously stored file by its reference
	Delete(ctx context.Context, ref string) error
}

// FolderCreator is implemented by backends that support creating named
// folders for grouped uploads.
type FolderCreator interface {
	// CreateFolder creates a folder below the backend root and returns its identifier
	CreateFolder(ctx context.Context, name string) (string, error)
}

// IsRemoteRef reports whether a stored reference points at an external URL
// rather than a file in the local uploads directory.
func IsRemoteRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// ResolveURL turns a stored reference into a client-facing URL. Remote
// references pass through unchanged; local references are served below the
// application base URL.
func ResolveURL(baseURL, ref string) string {
	if ref == "" {
		return ""
	}
	if IsRemoteRef(ref) {
		return ref
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(ref, "/")
}
