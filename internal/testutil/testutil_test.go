package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	names []string
	i     int
}

func (s *sliceSource) Next() (string, bool) {
	if s.i >= len(s.names) {
		return "", false
	}
	s.i++
	return s.names[s.i-1], true
}

func TestAssertSequence(t *testing.T) {
	src := &sliceSource{names: SampleImages()}
	AssertSequence(t, src, SampleImages())
	AssertExhausted(t, src, 2)
}

func TestSampleImagesIsFresh(t *testing.T) {
	a := SampleImages()
	a[0] = "changed"
	assert.Equal(t, "A.jpg", SampleImages()[0])
}

func TestQuietLogger(t *testing.T) {
	l, buf := QuietLogger()
	l.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestWriteTestFile(t *testing.T) {
	path := WriteTestFile(t, t.TempDir(), "nested/dir/site.yaml", []byte(SampleConfigYAML))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, SampleConfigYAML, string(data))
}

func TestShortOperationContext(t *testing.T) {
	ctx, cancel := ShortOperationContext(t)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.True(t, deadline.After(time.Now()))
}
