package entities

import "strings"

// DocumentRef points at an uploaded file.
//
// Location is either a retrievable URL (object storage) or a self-contained
// data URL ("data:<content-type>;base64,<payload>"). Refs are never edited.
type DocumentRef struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Location    string `json:"location"`
}

// Embedded reports whether the payload travels inside Location.
func (d DocumentRef) Embedded() bool {
	return strings.HasPrefix(d.Location, "data:")
}

// DocumentUpload is a raw file received from a citizen before it is stored.
type DocumentUpload struct {
	Name        string
	ContentType string
	Content     []byte
}

// Size returns the payload length in bytes.
func (u DocumentUpload) Size() int64 {
	return int64(len(u.Content))
}
