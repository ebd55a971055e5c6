//go:build !nofatfs

package app

import (
	"path/filepath"
	"testing"

	"github.com/keskad/chprintf/pkgs/fatfs"
	"github.com/stretchr/testify/assert"
)

func TestFileAction_MkfsAndAppend(t *testing.T) {
	app, _ := newTestApp(t)
	fa := FileArgs{
		Image:  filepath.Join(t.TempDir(), "out.img"),
		Path:   "LOG.TXT",
		Append: true,
		Mkfs:   true,
		Size:   64 * 1024 * 1024,
		Label:  "TEST",
	}

	assert.Nil(t, app.FileAction(fa, "line %d\n", []any{int64(1)}))
	assert.Nil(t, app.FileAction(fa, "line %d\n", []any{int64(2)}))

	v, err := fatfs.Open(fa.Image)
	if !assert.Nil(t, err) {
		return
	}
	defer v.Close()
	data, err := v.ReadFile(fa.Path)
	assert.Nil(t, err)
	assert.Equal(t, "line 1\nline 2\n", string(data))
}

func TestFileAction_OverwriteReplacesContent(t *testing.T) {
	app, _ := newTestApp(t)
	fa := FileArgs{
		Image: filepath.Join(t.TempDir(), "out.img"),
		Path:  "OUT.TXT",
		Mkfs:  true,
		Size:  64 * 1024 * 1024,
		Label: "TEST",
	}

	assert.Nil(t, app.FileAction(fa, "hello world\n", nil))
	assert.Nil(t, app.FileAction(fa, "hi\n", nil))

	v, err := fatfs.Open(fa.Image)
	if !assert.Nil(t, err) {
		return
	}
	defer v.Close()
	data, err := v.ReadFile(fa.Path)
	assert.Nil(t, err)
	assert.Equal(t, "hi\n", string(data))
}

func TestFileAction_MissingImage(t *testing.T) {
	app, _ := newTestApp(t)
	err := app.FileAction(FileArgs{Image: filepath.Join(t.TempDir(), "none.img"), Path: "X.TXT"}, "x", nil)
	assert.NotNil(t, err)
}

func TestPrintAction_File(t *testing.T) {
	app, _ := newTestApp(t)
	app.Config.Fat.Image = filepath.Join(t.TempDir(), "cfg.img")
	app.Config.Fat.Path = "CFG.TXT"
	app.Config.Fat.Mkfs = true
	assert.Nil(t, app.PrintAction("file", "%s\n", []any{"from config"}))

	v, err := fatfs.Open(app.Config.Fat.Image)
	if !assert.Nil(t, err) {
		return
	}
	defer v.Close()
	data, err := v.ReadFile("CFG.TXT")
	assert.Nil(t, err)
	assert.Equal(t, "from config\n", string(data))
}
