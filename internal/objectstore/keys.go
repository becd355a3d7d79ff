package objectstore

import (
	"fmt"
	"mime"
	"path"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lms/internal/utils"
)

const (
	avatarPrefix     = "avatars"
	submissionPrefix = "submissions"
)

// AvatarKey builds a fresh object key for a user's avatar:
// avatars/<userID>/<uuid><ext>.
func AvatarKey(ids *utils.UUIDGenerator, userID int64, contentType string) string {
	return fmt.Sprintf("%s/%d/%s%s", avatarPrefix, userID, ids.Generate(), extensionFor(contentType))
}

// CheckAvatarKey verifies that key was issued for userID by [AvatarKey].
func CheckAvatarKey(userID int64, key string) error {
	if key == "" || strings.Contains(key, "..") || path.Clean(key) != key {
		return ErrInvalidKeyPath
	}

	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != avatarPrefix || parts[2] == "" {
		return ErrInvalidKeyPath
	}
	if parts[1] != strconv.FormatInt(userID, 10) {
		return ErrForeignObject
	}
	return nil
}

// SubmissionKey builds a fresh object key for a file handed in by userID:
// submissions/<assignmentID>/<userID>/<uuid><ext>. The extension comes from
// the client's filename, falling back to the content type.
func SubmissionKey(ids *utils.UUIDGenerator, assignmentID, userID int64, filename, contentType string) string {
	ext := sanitizeExtension(path.Ext(filename))
	if ext == "" {
		ext = extensionFor(contentType)
	}
	return fmt.Sprintf("%s/%d/%d/%s%s", submissionPrefix, assignmentID, userID, ids.Generate(), ext)
}

// CheckSubmissionKey verifies that key was issued by [SubmissionKey] for
// this assignment and user.
func CheckSubmissionKey(assignmentID, userID int64, key string) error {
	if key == "" || strings.Contains(key, "..") || path.Clean(key) != key {
		return ErrInvalidKeyPath
	}

	parts := strings.Split(key, "/")
	if len(parts) != 4 || parts[0] != submissionPrefix || parts[3] == "" {
		return ErrInvalidKeyPath
	}
	if parts[1] != strconv.FormatInt(assignmentID, 10) || parts[2] != strconv.FormatInt(userID, 10) {
		return ErrForeignObject
	}
	return nil
}

// sanitizeExtension keeps short alphanumeric extensions only.
func sanitizeExtension(ext string) string {
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ""
		}
	}
	return strings.ToLower(ext)
}

func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
