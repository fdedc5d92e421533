package service

import (
	"context"
	"database/sql"
	"errors"

	"entryapi/internal/model"
	"entryapi/internal/repository"
)

// EntryListResult is the service-level DTO for paginated entries.
type EntryListResult struct {
	Items []model.Entry `json:"data"`
	Total int           `json:"total"`
}

// EntryService defines the use cases for contest entries. Submit is the
// request coordinator: it sequences validation, attachment upload, and the
// row insert, and is the only component aware of all three.
type EntryService interface {
	// Submit validates the entry, resolves its attachments into visual_links,
	// inserts exactly one row, and returns the stored record. On any failure
	// before the insert no row is written.
	Submit(ctx context.Context, entry *model.Entry, attachments []model.Attachment) (*model.Entry, error)

	// Get returns a single entry by its identifier.
	Get(ctx context.Context, id int64) (*model.Entry, error)

	// List returns entries using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*EntryListResult, error)
}

// entryService is a concrete implementation of EntryService. It holds no
// per-request state; every Submit call runs the full pipeline independently.
type entryService struct {
	uploader AttachmentUploader
	repo     repository.EntryRepository
}

// NewEntryService constructs a new EntryService.
func NewEntryService(uploader AttachmentUploader, repo repository.EntryRepository) EntryService {
	return &entryService{uploader: uploader, repo: repo}
}

func (s *entryService) Submit(ctx context.Context, entry *model.Entry, attachments []model.Attachment) (*model.Entry, error) {
	if err := ValidateEntry(entry); err != nil {
		return nil, err
	}

	// The uploader is only engaged when there is something to upload; a
	// zero-attachment submission goes straight to the insert with a NULL
	// visual_links.
	var uploaded *UploadResult
	if len(attachments) > 0 {
		res, err := s.uploader.UploadAll(ctx, attachments)
		if err != nil {
			return nil, err
		}
		uploaded = res
		entry.VisualLinks = res.VisualLinks
	}

	stored, err := s.repo.Create(ctx, entry)
	if err != nil {
		// The insert never ran to completion, so the uploaded objects have no
		// row referencing them. Remove them best effort.
		if uploaded != nil {
			s.uploader.Discard(ctx, uploaded.Keys)
		}
		return nil, err
	}
	return stored, nil
}

// Get returns an entry by ID.
func (s *entryService) Get(ctx context.Context, id int64) (*model.Entry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// List returns paginated entries without exposing repository types.
func (s *entryService) List(ctx context.Context, limit, offset int) (*EntryListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &EntryListResult{Items: res.Items, Total: res.Total}, nil
}
