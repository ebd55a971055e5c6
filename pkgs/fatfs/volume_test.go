//go:build !nofatfs

package fatfs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testImageSize = 64 * 1024 * 1024

func TestVolume_WriteAndReadBack(t *testing.T) {
	image := filepath.Join(t.TempDir(), "fat.img")
	v, err := Create(image, testImageSize, "TESTVOL")
	if !assert.Nil(t, err) {
		return
	}

	f, err := v.OpenFile("LOG.TXT", false)
	assert.Nil(t, err)
	n, err := f.Write([]byte("first line\n"))
	assert.Nil(t, err)
	assert.Equal(t, 11, n)
	assert.Nil(t, f.Close())
	assert.Nil(t, v.Close())

	v, err = Open(image)
	if !assert.Nil(t, err) {
		return
	}
	defer v.Close()

	data, err := v.ReadFile("/LOG.TXT")
	assert.Nil(t, err)
	assert.Equal(t, "first line\n", string(data))
}

func TestVolume_Append(t *testing.T) {
	image := filepath.Join(t.TempDir(), "fat.img")
	v, err := Create(image, testImageSize, "TESTVOL")
	if !assert.Nil(t, err) {
		return
	}
	defer v.Close()

	for _, line := range []string{"a\n", "b\n"} {
		f, err := v.OpenFile("APPEND.TXT", true)
		assert.Nil(t, err)
		_, err = f.Write([]byte(line))
		assert.Nil(t, err)
		assert.Nil(t, f.Close())
	}

	data, err := v.ReadFile("APPEND.TXT")
	assert.Nil(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestVolume_OverwriteTruncates(t *testing.T) {
	image := filepath.Join(t.TempDir(), "fat.img")
	v, err := Create(image, testImageSize, "TESTVOL")
	if !assert.Nil(t, err) {
		return
	}
	defer v.Close()

	for _, content := range []string{"hello world\n", "hi\n"} {
		f, err := v.OpenFile("OUT.TXT", false)
		assert.Nil(t, err)
		_, err = f.Write([]byte(content))
		assert.Nil(t, err)
		assert.Nil(t, f.Close())
	}

	data, err := v.ReadFile("OUT.TXT")
	assert.Nil(t, err)
	assert.Equal(t, "hi\n", string(data))
}

func TestOpen_MissingImage(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.img"))
	assert.NotNil(t, err)
}
