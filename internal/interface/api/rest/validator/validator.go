package validator

import (
	"errors"
	"strconv"

	"github.com/google/uuid"

	domain "files-manager-api/internal/domain/file"
	fileDTO "files-manager-api/internal/interface/api/rest/dto/file"
	userDTO "files-manager-api/internal/interface/api/rest/dto/user"
)

// ValidatePage parses a 0-indexed page number, defaulting to 0.
func ValidatePage(page string) (int, error) {
	if page == "" {
		return 0, nil
	}

	p, err := strconv.Atoi(page)
	if err != nil || p < 0 {
		return 0, errors.New("invalid page")
	}

	return p, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateNewUser reports the first missing field, email before
// password.
func ValidateNewUser(r userDTO.Request) error {
	if r.Email == "" {
		return errors.New("Missing email")
	}
	if r.Password == "" {
		return errors.New("Missing password")
	}

	return nil
}

// ValidateUpload checks required fields in order name, type, data and
// returns the typed kind on success.
func ValidateUpload(r fileDTO.UploadRequest) (domain.Type, error) {
	if r.Name == "" {
		return "", errors.New("Missing name")
	}
	t, ok := domain.ParseType(r.Type)
	if !ok {
		return "", errors.New("Missing type")
	}
	if r.Data == "" && t != domain.TypeFolder {
		return "", errors.New("Missing data")
	}

	return t, nil
}

// ParseParentID maps the request parent to the internal form: absent or
// "0" is the root sentinel (nil).
func ParseParentID(s string) (*domain.ID, error) {
	if s == "" || s == fileDTO.RootParentID {
		return nil, nil
	}

	ok, id := IsUUID(s)
	if !ok {
		return nil, errors.New("Parent not found")
	}

	return &id, nil
}

// ValidateSize accepts only the configured derivative widths; 0 selects
// the original content.
func ValidateSize(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	switch s {
	case "500", "250", "100":
		w, _ := strconv.Atoi(s)
		return w, nil
	}

	return 0, errors.New("invalid size")
}
