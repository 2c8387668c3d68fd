package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/mock"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPostService(t *testing.T, ctrl *gomock.Controller) (PostService, *mock.MockDispatcher) {
	t.Helper()

	dispatcher := mock.NewMockDispatcher(ctrl)
	return NewPostService(dispatcher, logger.Nop()), dispatcher
}

func TestPostService_Posts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, dispatcher := newTestPostService(t, ctrl)
	ctx := context.Background()

	want := []models.Post{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}}
	dispatcher.EXPECT().FetchPosts(ctx).Return(want, nil)

	got, err := svc.Posts(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostService_Post_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, dispatcher := newTestPostService(t, ctrl)
	ctx := context.Background()

	dispatcher.EXPECT().FetchPost(ctx, int64(99)).Return(models.Post{}, store.ErrNotFound)

	_, err := svc.Post(ctx, 99)

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, dispatcher := newTestPostService(t, ctrl)
	ctx := context.Background()

	want := models.Post{ID: 10, Title: "title", Body: "body"}
	dispatcher.EXPECT().CreatePost(ctx, "title", "body").Return(want, nil)

	got, err := svc.Create(ctx, "title", "body")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestPostService_Create_EmptyTitle verifies the title guard rejects the
// request before anything reaches the dispatcher.
func TestPostService_Create_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestPostService(t, ctrl)

	_, err := svc.Create(context.Background(), "", "body without a title")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPostService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, dispatcher := newTestPostService(t, ctrl)
	ctx := context.Background()

	want := models.Post{ID: 5, Title: "new title", Body: "new body", Published: true}
	dispatcher.EXPECT().UpdatePost(ctx, int64(5), "new title", "new body", true).Return(want, nil)

	got, err := svc.Update(ctx, 5, "new title", "new body", true)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostService_Update_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestPostService(t, ctrl)

	_, err := svc.Update(context.Background(), 5, "", "body", false)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPostService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, dispatcher := newTestPostService(t, ctrl)
	ctx := context.Background()

	snapshot := models.Post{ID: 3, Title: "gone"}
	dispatcher.EXPECT().DeletePost(ctx, int64(3)).Return(snapshot, nil)

	got, err := svc.Delete(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestPostService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, dispatcher := newTestPostService(t, ctrl)
	ctx := context.Background()

	dispatcher.EXPECT().DeletePost(ctx, int64(404)).Return(models.Post{}, store.ErrNotFound)

	_, err := svc.Delete(ctx, 404)

	assert.ErrorIs(t, err, store.ErrNotFound)
}
