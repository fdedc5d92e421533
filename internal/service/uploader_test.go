package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"entryapi/internal/model"
	"entryapi/internal/storage"
	storeMocks "entryapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func attachment(name, contentType, content string) model.Attachment {
	return model.Attachment{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(content)),
		Reader:      strings.NewReader(content),
	}
}

func TestAttachmentUploader_UploadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("zero attachments yields nil visual_links without touching storage", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		u := NewAttachmentUploader(mStore)

		res, err := u.UploadAll(ctx, nil)

		require.NoError(t, err)
		assert.Nil(t, res.VisualLinks)
		assert.Empty(t, res.Keys)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("joins urls in original attachment order", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		u := NewAttachmentUploader(mStore)

		mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key, URL: "http://minio/visuals/" + key}
			}, nil).Twice()

		res, err := u.UploadAll(ctx, []model.Attachment{
			attachment("first.png", "image/png", "aaa"),
			attachment("second.jpg", "image/jpeg", "bbb"),
		})

		require.NoError(t, err)
		require.NotNil(t, res.VisualLinks)
		urls := strings.Split(*res.VisualLinks, ",")
		require.Len(t, urls, 2)
		assert.Contains(t, urls[0], "first.png")
		assert.Contains(t, urls[1], "second.jpg")
		require.Len(t, res.Keys, 2)
		mStore.AssertExpectations(t)
	})

	t.Run("storage keys carry namespace, timestamp, and disambiguator", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		u := NewAttachmentUploader(mStore)

		mStore.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			if !strings.HasPrefix(key, "entries/") {
				return false
			}
			// entries/<millis>-<uuid>-<filename>; uuid itself contains dashes
			rest := strings.TrimPrefix(key, "entries/")
			return strings.Count(rest, "-") >= 5 && strings.HasSuffix(rest, "report.pdf")
		}), mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{URL: "http://minio/visuals/x"}, nil).Once()

		_, err := u.UploadAll(ctx, []model.Attachment{
			attachment("report.pdf", "application/pdf", "pdf"),
		})

		require.NoError(t, err)
		mStore.AssertExpectations(t)
	})

	t.Run("disallowed type anywhere in the batch blocks every upload", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		u := NewAttachmentUploader(mStore)

		res, err := u.UploadAll(ctx, []model.Attachment{
			attachment("ok.png", "image/png", "aaa"),
			attachment("bad.exe", "application/x-msdownload", "bbb"),
		})

		require.Error(t, err)
		var typeErr *DisallowedTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "bad.exe", typeErr.Filename)
		assert.Nil(t, res)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("content type parameters are ignored by the allow-list", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		u := NewAttachmentUploader(mStore)

		mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{URL: "http://minio/visuals/x"}, nil).Once()

		_, err := u.UploadAll(ctx, []model.Attachment{
			attachment("a.png", "image/PNG; charset=binary", "aaa"),
		})

		require.NoError(t, err)
		mStore.AssertExpectations(t)
	})

	t.Run("single upload failure fails the batch and discards the keys", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		u := NewAttachmentUploader(mStore)

		boom := errors.New("connection reset")
		mStore.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "good.png")
		}), mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{URL: "http://minio/visuals/good"}, nil)
		mStore.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "flaky.png")
		}), mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, boom)
		mStore.On("Delete", mock.Anything, mock.Anything).Return(nil).Twice()

		res, err := u.UploadAll(ctx, []model.Attachment{
			attachment("good.png", "image/png", "aaa"),
			attachment("flaky.png", "image/png", "bbb"),
		})

		require.Error(t, err)
		var upErr *UploadError
		require.ErrorAs(t, err, &upErr)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, res)
		mStore.AssertExpectations(t)
	})
}

func TestAttachmentUploader_Discard(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	u := NewAttachmentUploader(mStore)

	// Delete failures are swallowed; discard is best effort.
	mStore.On("Delete", mock.Anything, "entries/a").Return(errors.New("gone already")).Once()
	mStore.On("Delete", mock.Anything, "entries/b").Return(nil).Once()

	u.Discard(context.Background(), []string{"entries/a", "entries/b"})

	mStore.AssertExpectations(t)
}

func TestNormalizeContentType(t *testing.T) {
	assert.Equal(t, "image/png", normalizeContentType("image/png"))
	assert.Equal(t, "image/png", normalizeContentType(" IMAGE/PNG ; charset=binary"))
	assert.Equal(t, "application/pdf", normalizeContentType("application/pdf;"))
}
