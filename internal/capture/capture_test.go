package capture

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	gaugeimage "livegauge/internal/image"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func frame(seq int64) Frame {
	return Frame{Mat: gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC1), Seq: seq}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(3)
	ctx := context.Background()
	for i := int64(0); i < 3; i++ {
		require.NoError(t, q.Put(ctx, frame(i)))
	}
	q.Close()

	var got []int64
	for {
		f, err := q.Get(ctx)
		if err != nil {
			assert.ErrorIs(t, err, ErrQueueClosed)
			break
		}
		got = append(got, f.Seq)
		f.Close()
	}
	assert.Equal(t, []int64{0, 1, 2}, got)
	assert.Equal(t, int64(3), q.Accepted())
}

func TestQueueOfferDropsWhenFull(t *testing.T) {
	q := NewQueue(2)
	assert.True(t, q.Offer(frame(0)))
	assert.True(t, q.Offer(frame(1)))
	assert.False(t, q.Offer(frame(2)))
	assert.False(t, q.Offer(frame(3)))

	assert.Equal(t, int64(2), q.Dropped())
	assert.Equal(t, int64(2), q.Accepted())

	f, err := q.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.Seq)
	f.Close()

	q.Close()
	q.Drain()
	_, err = q.Get(context.Background())
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestQueueMinimumSize(t *testing.T) {
	q := NewQueue(0)
	assert.True(t, q.Offer(frame(0)))
	assert.False(t, q.Offer(frame(1)))
	q.Close()
	q.Drain()
}

func TestQueueGetCancelled(t *testing.T) {
	q := NewQueue(1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := q.Get(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueuePutCancelled(t *testing.T) {
	q := NewQueue(1)
	require.True(t, q.Offer(frame(0)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, q.Put(ctx, frame(1)), context.Canceled)

	q.Close()
	q.Drain()
}

func TestQueueCloseTwice(t *testing.T) {
	q := NewQueue(1)
	q.Close()
	assert.NotPanics(t, q.Close)
}

func writePNG(t *testing.T, path string, shade uint8) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: shade, G: shade, B: shade, A: 255})
		}
	}
	require.NoError(t, gaugeimage.Save(path, img))
}

func TestFilesReplaysInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "02.png"), 20)
	writePNG(t, filepath.Join(dir, "01.png"), 10)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "03.png"), []byte("not a png"), 0o644))
	writePNG(t, filepath.Join(dir, "04.png"), 40)

	src, err := NewFiles([]string{dir})
	require.NoError(t, err)
	assert.Len(t, src.Paths(), 4)
	assert.Contains(t, src.Name(), "4 images")

	q := NewQueue(1)
	ctx := context.Background()
	errc := make(chan error, 1)
	go func() { errc <- src.Run(ctx, q) }()

	var shades []uint8
	var seqs []int64
	for {
		f, err := q.Get(ctx)
		if err != nil {
			require.ErrorIs(t, err, ErrQueueClosed)
			break
		}
		assert.Equal(t, 3, f.Mat.Channels())
		shades = append(shades, f.Mat.GetUCharAt(0, 0))
		seqs = append(seqs, f.Seq)
		f.Close()
	}
	require.NoError(t, <-errc)

	assert.Equal(t, []uint8{10, 20, 40}, shades)
	assert.Equal(t, []int64{0, 1, 3}, seqs)
	assert.Zero(t, q.Dropped())
	assert.NoError(t, src.Close())
}

func TestFilesStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 1)
	writePNG(t, filepath.Join(dir, "b.png"), 2)

	src, err := NewFiles([]string{dir})
	require.NoError(t, err)
	src.Interval = time.Hour

	q := NewQueue(4)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- src.Run(ctx, q) }()

	f, err := q.Get(ctx)
	require.NoError(t, err)
	f.Close()
	cancel()

	require.NoError(t, <-errc)
	q.Drain()
}

func TestNewFilesEmptyDir(t *testing.T) {
	_, err := NewFiles([]string{t.TempDir()})
	assert.Error(t, err)
}
