package mocks

import (
	"context"

	"entryapi/internal/model"
	"entryapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) Submit(ctx context.Context, entry *model.Entry, attachments []model.Attachment) (*model.Entry, error) {
	args := m.Called(ctx, entry, attachments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryService) Get(ctx context.Context, id int64) (*model.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryService) List(ctx context.Context, limit, offset int) (*service.EntryListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EntryListResult), args.Error(1)
}
