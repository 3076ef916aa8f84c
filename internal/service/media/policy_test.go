package media

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPolicy_Folder(t *testing.T) {
	image := PolicyFor(KindImage)
	video := PolicyFor(KindVideo)

	assert.Equal(t, "", image.Folder(PlacementDefault, ""))
	assert.Equal(t, DefaultImageFolder, image.Folder(PlacementFolder, " "))
	assert.Equal(t, "cats", image.Folder(PlacementFolder, " cats "))

	assert.Equal(t, DefaultVideoFolder, video.Folder(PlacementDefault, ""))
	assert.Equal(t, DefaultVideoUploadFolder, video.Folder(PlacementFolder, ""))
	assert.Equal(t, "trips", video.Folder(PlacementFolder, "trips"))
}

func TestPolicy_PublicID(t *testing.T) {
	image := PolicyFor(KindImage)
	video := PolicyFor(KindVideo)

	assert.Equal(t, "uploads/t1", image.PublicID(PlacementDefault, "", "photo.png", "t1"))
	assert.Equal(t, "photo_t1", image.PublicID(PlacementFolder, "", "photo.png", "t1"))
	assert.Equal(t, "clip_t1", video.PublicID(PlacementDefault, "", "clip.mp4", "t1"))
	assert.Equal(t, "explicit", video.PublicID(PlacementFolder, " explicit ", "clip.mp4", "t1"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "photo", baseName("photo.png"))
	assert.Equal(t, "photo", baseName(`C:\Users\me\photo.png`))
	assert.Equal(t, "archive.tar", baseName("dir/archive.tar.gz"))
	assert.Equal(t, "", baseName(""))
}

func TestNewToken_IsUUID(t *testing.T) {
	a, b := newToken(), newToken()

	_, err := uuid.Parse(a)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
