package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"video-guestbook/internal/domain/entities"
	infra_repo "video-guestbook/internal/infrastructure/repositories"
	"video-guestbook/internal/pkg/logger"
)

type curationFixture struct {
	svc    CurationService
	videos *infra_repo.InMemoryVideoRepository
	blob   *memBlobStorage
}

func newCurationFixture(t *testing.T) *curationFixture {
	t.Helper()
	videos := infra_repo.NewInMemoryVideoRepository()
	blob := newMemBlobStorage()
	return &curationFixture{
		svc:    NewCurationService(videos, blob, logger.NewNop()),
		videos: videos,
		blob:   blob,
	}
}

func (f *curationFixture) seedVideo(t *testing.T, createdAt time.Time, orderIndex *int, hasNote bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	path := fmt.Sprintf("sess/%s.mp4", id)
	f.blob.objects[path] = []byte("bytes")
	require.NoError(t, f.videos.Create(context.Background(), &entities.Video{
		ID:          id,
		StoragePath: path,
		Duration:    42,
		IsVertical:  true,
		HasNote:     hasNote,
		CreatedAt:   createdAt,
		Tags:        datatypes.NewJSONSlice([]string{}),
		OrderIndex:  orderIndex,
	}))
	return id
}

func intPtr(v int) *int { return &v }

func TestListOrdersByIndexThenNewest(t *testing.T) {
	f := newCurationFixture(t)
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	oldest := f.seedVideo(t, base, nil, false)
	newest := f.seedVideo(t, base.Add(2*time.Hour), nil, true)
	pinnedSecond := f.seedVideo(t, base.Add(time.Hour), intPtr(1), false)
	pinnedFirst := f.seedVideo(t, base.Add(30*time.Minute), intPtr(0), true)

	resp, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Videos, 4)

	got := []string{resp.Videos[0].ID, resp.Videos[1].ID, resp.Videos[2].ID, resp.Videos[3].ID}
	want := []string{pinnedFirst.String(), pinnedSecond.String(), newest.String(), oldest.String()}
	assert.Equal(t, want, got)

	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 2, resp.WithNote)
	for _, video := range resp.Videos {
		assert.Equal(t, "https://signed.example/"+video.StoragePath, video.SignedURL)
	}
}

func TestListSurvivesSigningFailure(t *testing.T) {
	f := newCurationFixture(t)
	f.seedVideo(t, time.Now().UTC(), nil, false)
	f.blob.signErr = fmt.Errorf("presign down")

	resp, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Videos, 1)
	assert.Empty(t, resp.Videos[0].SignedURL)
}

func TestToggleTagIsSymmetric(t *testing.T) {
	f := newCurationFixture(t)
	ctx := context.Background()
	id := f.seedVideo(t, time.Now().UTC(), nil, false)

	require.NoError(t, f.svc.ToggleTag(ctx, id, "ceremony"))
	video, err := f.videos.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"ceremony"}, []string(video.Tags))

	require.NoError(t, f.svc.ToggleTag(ctx, id, "party"))
	video, err = f.videos.GetByID(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ceremony", "party"}, []string(video.Tags))

	require.NoError(t, f.svc.ToggleTag(ctx, id, "ceremony"))
	video, err = f.videos.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"party"}, []string(video.Tags))
}

func TestToggleFlag(t *testing.T) {
	f := newCurationFixture(t)
	ctx := context.Background()
	id := f.seedVideo(t, time.Now().UTC(), nil, false)

	require.NoError(t, f.svc.ToggleFlag(ctx, id, "favorite"))
	video, err := f.videos.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, video.Favorite)
	assert.False(t, video.Selected)

	require.NoError(t, f.svc.ToggleFlag(ctx, id, "favorite"))
	video, err = f.videos.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, video.Favorite)

	err = f.svc.ToggleFlag(ctx, id, "published")
	require.Error(t, err)
}

func TestReorderRewritesZeroBasedIndexes(t *testing.T) {
	f := newCurationFixture(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	// Yeniden eskiye: c, b, a
	a := f.seedVideo(t, base, nil, false)
	b := f.seedVideo(t, base.Add(time.Hour), nil, false)
	c := f.seedVideo(t, base.Add(2*time.Hour), nil, false)

	// a'yı c'nin önüne taşı: a, c, b
	results, err := f.svc.Reorder(ctx, a, c)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, result := range results {
		assert.Empty(t, result.Error)
	}

	resp, err := f.svc.List(ctx)
	require.NoError(t, err)
	got := []string{resp.Videos[0].ID, resp.Videos[1].ID, resp.Videos[2].ID}
	assert.Equal(t, []string{a.String(), c.String(), b.String()}, got)

	for i, video := range resp.Videos {
		require.NotNil(t, video.OrderIndex)
		assert.Equal(t, i, *video.OrderIndex)
	}
}

func TestReorderSameIDIsNoOp(t *testing.T) {
	f := newCurationFixture(t)
	id := f.seedVideo(t, time.Now().UTC(), nil, false)

	results, err := f.svc.Reorder(context.Background(), id, id)
	require.NoError(t, err)
	assert.Nil(t, results)

	video, err := f.videos.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, video.OrderIndex)
}

func TestReorderUnknownIDs(t *testing.T) {
	f := newCurationFixture(t)
	id := f.seedVideo(t, time.Now().UTC(), nil, false)

	_, err := f.svc.Reorder(context.Background(), id, uuid.New())
	require.Error(t, err)

	_, err = f.svc.Reorder(context.Background(), uuid.New(), id)
	require.Error(t, err)
}

func TestDeleteRemovesBlobAndRow(t *testing.T) {
	f := newCurationFixture(t)
	ctx := context.Background()
	id := f.seedVideo(t, time.Now().UTC(), nil, false)

	require.NoError(t, f.svc.Delete(ctx, id))

	assert.Equal(t, 0, f.videos.Count())
	assert.Equal(t, 0, f.blob.count())

	err := f.svc.Delete(ctx, id)
	require.Error(t, err)
}
