package file

// UploadInput is a validated creation request; Data carries the
// base64-encoded content and stays empty for folders.
type UploadInput struct {
	Name     string
	Type     Type
	ParentID *ID
	IsPublic bool
	Data     string
}
