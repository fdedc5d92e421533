package model

import "io"

// Attachment is one file blob submitted alongside the entry form. It exists
// only for the duration of a request; nothing of it is persisted except the
// storage URL that ends up in Entry.VisualLinks.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
