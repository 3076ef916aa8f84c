package media

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func newTestMemoryProvider() *MemoryProvider {
	p := NewMemoryProvider("https://media.test/demo")
	p.now = fixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	return p
}

func uploadBytes(t *testing.T, p *MemoryProvider, params UploadParams, content string) *UploadResult {
	t.Helper()
	params.File = bytes.NewReader([]byte(content))
	params.Size = int64(len(content))
	res, err := p.Upload(context.Background(), params)
	require.NoError(t, err)
	return res
}

func TestMemoryProvider_UploadAndAsset(t *testing.T) {
	p := newTestMemoryProvider()

	res := uploadBytes(t, p, UploadParams{
		Filename:     "photo.PNG",
		PublicID:     "cat_1",
		Folder:       "pets",
		ResourceType: ResourceImage,
	}, "png-bytes")

	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, "pets/cat_1", res.PublicID)
	assert.Equal(t, "pets", res.Folder)
	assert.Equal(t, "png", res.Format)
	assert.Equal(t, DeliveryUpload, res.Type)
	assert.Equal(t, 9, res.Bytes)
	assert.Contains(t, res.SecureURL, "https://media.test/demo/image/upload/v")
	assert.Contains(t, res.SecureURL, "/pets/cat_1.png")
	assert.Regexp(t, `^http://`, res.URL)

	got, err := p.Asset(context.Background(), AssetParams{PublicID: "pets/cat_1", ResourceType: ResourceImage})
	require.NoError(t, err)
	assert.Equal(t, 200, got.StatusCode)
	assert.Equal(t, res.Asset, got.Asset)

	content, ok := p.Content(ResourceImage, "pets/cat_1")
	assert.True(t, ok)
	assert.Equal(t, "png-bytes", string(content))
}

func TestMemoryProvider_UploadReadError(t *testing.T) {
	p := newTestMemoryProvider()
	boom := fmt.Errorf("disk gone")

	res, err := p.Upload(context.Background(), UploadParams{
		File:         iotest.ErrReader(boom),
		PublicID:     "cat",
		ResourceType: ResourceImage,
	})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "read upload content")
}

func TestMemoryProvider_UploadRejectsEmptyContent(t *testing.T) {
	p := newTestMemoryProvider()

	res := uploadBytes(t, p, UploadParams{Filename: "a.jpg", PublicID: "a", ResourceType: ResourceImage}, "")
	assert.Equal(t, 400, res.StatusCode)
	assert.Equal(t, "Empty file", res.Error)

	res = uploadBytes(t, p, UploadParams{Filename: "a.jpg", ResourceType: ResourceImage}, "x")
	assert.Equal(t, 400, res.StatusCode)
	assert.NotEmpty(t, res.Error)
}

func TestMemoryProvider_UploadWithoutOverwriteKeepsExisting(t *testing.T) {
	p := newTestMemoryProvider()
	params := UploadParams{Filename: "a.jpg", PublicID: "uploads/a", ResourceType: ResourceImage}

	first := uploadBytes(t, p, params, "first")
	second := uploadBytes(t, p, params, "second")

	assert.Equal(t, first.Asset, second.Asset)
	content, _ := p.Content(ResourceImage, "uploads/a")
	assert.Equal(t, "first", string(content))
}

func TestMemoryProvider_OverwriteReplacesContent(t *testing.T) {
	p := newTestMemoryProvider()

	first := uploadBytes(t, p, UploadParams{
		Filename: "a.jpg", PublicID: "a", Folder: "album", ResourceType: ResourceImage,
	}, "first")

	second := uploadBytes(t, p, UploadParams{
		Filename: "b.webp", PublicID: "album/a", ResourceType: ResourceImage, Overwrite: true,
	}, "second one")

	assert.Equal(t, 200, second.StatusCode)
	assert.Equal(t, "album/a", second.PublicID)
	assert.Equal(t, "album", second.Folder)
	assert.Equal(t, "webp", second.Format)
	assert.Greater(t, second.Version, first.Version)

	content, _ := p.Content(ResourceImage, "album/a")
	assert.Equal(t, "second one", string(content))
}

func TestMemoryProvider_DestroyTwice(t *testing.T) {
	p := newTestMemoryProvider()
	uploadBytes(t, p, UploadParams{Filename: "v.mp4", PublicID: "clip", ResourceType: ResourceVideo}, "video")

	res, err := p.Destroy(context.Background(), DestroyParams{PublicID: "clip", ResourceType: ResourceVideo})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Result)

	res, err = p.Destroy(context.Background(), DestroyParams{PublicID: "clip", ResourceType: ResourceVideo})
	require.NoError(t, err)
	assert.Equal(t, "not found", res.Result)

	got, err := p.Asset(context.Background(), AssetParams{PublicID: "clip", ResourceType: ResourceVideo})
	require.NoError(t, err)
	assert.Equal(t, 404, got.StatusCode)
}

func TestMemoryProvider_ResourceTypesAreSeparate(t *testing.T) {
	p := newTestMemoryProvider()
	uploadBytes(t, p, UploadParams{Filename: "a.jpg", PublicID: "same", ResourceType: ResourceImage}, "img")

	got, err := p.Asset(context.Background(), AssetParams{PublicID: "same", ResourceType: ResourceVideo})
	require.NoError(t, err)
	assert.Equal(t, 404, got.StatusCode)
}

func TestMemoryProvider_AssetsPrefixOrderAndCap(t *testing.T) {
	p := newTestMemoryProvider()
	for i := 0; i < 5; i++ {
		uploadBytes(t, p, UploadParams{
			Filename:     "a.jpg",
			PublicID:     fmt.Sprintf("img_%d", i),
			Folder:       "gallery",
			ResourceType: ResourceImage,
		}, "x")
	}
	uploadBytes(t, p, UploadParams{Filename: "a.jpg", PublicID: "other", Folder: "misc", ResourceType: ResourceImage}, "x")
	uploadBytes(t, p, UploadParams{Filename: "a.mp4", PublicID: "clip", Folder: "gallery", ResourceType: ResourceVideo}, "x")

	res, err := p.Assets(context.Background(), AssetsParams{
		Prefix:       "gallery",
		ResourceType: ResourceImage,
		DeliveryType: DeliveryUpload,
		MaxResults:   3,
	})
	require.NoError(t, err)
	require.Len(t, res.Assets, 3)
	assert.Equal(t, "gallery/img_4", res.Assets[0].PublicID)
	assert.Equal(t, "gallery/img_3", res.Assets[1].PublicID)
	for _, a := range res.Assets {
		assert.Equal(t, ResourceImage, a.ResourceType)
	}

	empty, err := p.Assets(context.Background(), AssetsParams{Prefix: "nothing", ResourceType: ResourceImage})
	require.NoError(t, err)
	assert.NotNil(t, empty.Assets)
	assert.Empty(t, empty.Assets)
}

func TestMemoryProvider_CancelledContext(t *testing.T) {
	p := newTestMemoryProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Asset(ctx, AssetParams{PublicID: "x", ResourceType: ResourceImage})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryProvider_ConcurrentUploads(t *testing.T) {
	p := newTestMemoryProvider()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := p.Upload(context.Background(), UploadParams{
				File:         bytes.NewReader([]byte("x")),
				Filename:     "a.jpg",
				PublicID:     fmt.Sprintf("c_%d", i),
				ResourceType: ResourceImage,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	res, err := p.Assets(context.Background(), AssetsParams{Prefix: "c_", ResourceType: ResourceImage})
	require.NoError(t, err)
	assert.Len(t, res.Assets, 20)
}
