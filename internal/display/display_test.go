package display

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	gaugeimage "livegauge/internal/image"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestHeadless(t *testing.T) {
	h := NewHeadless()
	assert.Equal(t, int64(-1), h.LastSeq())
	assert.False(t, h.QuitRequested())

	frame := gocv.NewMat()
	defer frame.Close()
	require.NoError(t, h.Show(frame, 4))
	require.NoError(t, h.Show(frame, 9))
	require.NoError(t, h.Poll())

	assert.Equal(t, int64(2), h.Shown())
	assert.Equal(t, int64(9), h.LastSeq())

	h.RequestQuit()
	assert.True(t, h.QuitRequested())
	assert.NoError(t, h.Close())
}

func TestSnapshotterPath(t *testing.T) {
	s := NewSnapshotter("/tmp/shots", "run-1")
	assert.Equal(t, filepath.Join("/tmp/shots", "run-1-000042.png"), s.Path(42))
}

func TestSnapshotterSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewSnapshotter(dir, "abc")

	frame := gocv.NewMatWithSize(20, 30, gocv.MatTypeCV8UC3)
	defer frame.Close()
	gocv.Rectangle(&frame, image.Rect(5, 5, 10, 10), color.RGBA{R: 255, A: 255}, -1)

	path, err := s.Save(frame, 7)
	require.NoError(t, err)
	assert.Equal(t, s.Path(7), path)

	_, err = os.Stat(path)
	require.NoError(t, err)

	img, err := gaugeimage.Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())
	r, g, b, _ := img.At(7, 7).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b})
}

func TestSnapshotterRejectsEmptyFrame(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	_, err := NewSnapshotter(t.TempDir(), "x").Save(frame, 0)
	assert.Error(t, err)
}
