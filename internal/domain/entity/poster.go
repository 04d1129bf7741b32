package entity

import "time"

// Poster is the single marketing banner the back-office can publish to the
// storefront. Only metadata is kept locally; the image itself lives at the
// hosting provider's URL.
type Poster struct {
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadDate time.Time `json:"uploadDate"`
	Size       int64     `json:"size"`
	Hidden     bool      `json:"hidden"`
}
