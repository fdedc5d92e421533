package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"entryapi/internal/model"
	"entryapi/internal/storage"
)

// visualsNamespace is the key prefix under which all entry attachments live.
const visualsNamespace = "entries"

// allowedContentTypes is the fixed allow-list of attachment media types.
// A blob outside this list is rejected before any upload is attempted.
var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"image/tiff":      {},
	"video/mp4":       {},
	"video/quicktime": {},
	"video/x-msvideo": {},
	"audio/mpeg":      {},
	"audio/mp3":       {},
	"audio/wav":       {},
	"audio/x-wav":     {},
	"audio/wave":      {},
}

// UploadResult carries the derived visual_links value and the storage keys
// behind it, so a later stage can discard the objects if it fails.
type UploadResult struct {
	// VisualLinks is the comma-joined list of retrieval URLs in original
	// attachment order, or nil when the batch was empty.
	VisualLinks *string
	Keys        []string
}

// AttachmentUploader turns a batch of in-memory attachments into durable
// storage objects and the combined visual_links reference string.
type AttachmentUploader interface {
	// UploadAll validates the whole batch against the allow-list, then fires
	// all uploads concurrently and awaits them as a unit. If any single
	// upload fails the batch fails and no reference string is produced.
	UploadAll(ctx context.Context, attachments []model.Attachment) (*UploadResult, error)

	// Discard removes the given keys from storage, best effort. Used to avoid
	// orphaned objects when a stage after the upload fails.
	Discard(ctx context.Context, keys []string)
}

type attachmentUploader struct {
	store storage.Storage
}

// NewAttachmentUploader constructs an AttachmentUploader on top of the given
// object store.
func NewAttachmentUploader(store storage.Storage) AttachmentUploader {
	return &attachmentUploader{store: store}
}

func (u *attachmentUploader) UploadAll(ctx context.Context, attachments []model.Attachment) (*UploadResult, error) {
	if len(attachments) == 0 {
		return &UploadResult{}, nil
	}

	// Allow-list check first, across the whole batch. One disallowed type
	// means zero uploads are attempted.
	for _, att := range attachments {
		if _, ok := allowedContentTypes[normalizeContentType(att.ContentType)]; !ok {
			return nil, &DisallowedTypeError{Filename: att.Filename, ContentType: att.ContentType}
		}
	}

	keys := make([]string, len(attachments))
	for i, att := range attachments {
		keys[i] = objectKey(att.Filename)
	}

	urls := make([]string, len(attachments))
	g, gctx := errgroup.WithContext(ctx)
	for i, att := range attachments {
		g.Go(func() error {
			info, err := u.store.Put(gctx, keys[i], att.Reader, storage.PutObjectOptions{
				Size:        att.Size,
				ContentType: att.ContentType,
				Metadata:    map[string]string{"original-filename": att.Filename},
			})
			if err != nil {
				return &UploadError{Key: keys[i], Err: err}
			}
			urls[i] = info.URL
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Some objects may already have landed; remove what we can so a
		// failed batch does not leak storage.
		u.Discard(ctx, keys)
		return nil, err
	}

	joined := strings.Join(urls, ",")
	return &UploadResult{VisualLinks: &joined, Keys: keys}, nil
}

func (u *attachmentUploader) Discard(ctx context.Context, keys []string) {
	for _, key := range keys {
		// Removing an object that was never written is a no-op on
		// S3-compatible stores, so no bookkeeping of which uploads landed.
		_ = u.store.Delete(ctx, key)
	}
}

// objectKey builds a collision-resistant storage key. The UUID keeps two
// requests landing in the same millisecond from colliding.
func objectKey(filename string) string {
	return fmt.Sprintf("%s/%d-%s-%s", visualsNamespace, time.Now().UnixMilli(), uuid.NewString(), filename)
}

// normalizeContentType strips parameters such as charset and lowercases the
// media type before the allow-list lookup.
func normalizeContentType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
