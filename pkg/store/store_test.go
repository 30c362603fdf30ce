package store

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/helpex/pkg/errors"
	"github.com/arthur-debert/helpex/pkg/helpdoc"
	"github.com/arthur-debert/helpex/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "tar.json", "{}")
	testutil.CreateFile(t, dir, "cp.yaml", "{}")
	testutil.CreateFile(t, dir, "cp.json", "{}")
	testutil.CreateFile(t, dir, "ls.toml", "")
	testutil.CreateFile(t, dir, "notes.txt", "ignored")
	testutil.CreateFile(t, dir, ".json", "no name")
	testutil.CreateDir(t, dir, "dir.json")

	names, err := New(dir, nil).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"cp", "ls", "tar"}, names)

	jsonOnly, err := New(dir, []string{".json"}).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"cp", "tar"}, jsonOnly)
}

func TestList_MissingDirectory(t *testing.T) {
	names, err := New(filepath.Join(t.TempDir(), "absent"), nil).List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	jsonPath := testutil.CreateFile(t, dir, "cp.json", "{}")
	testutil.CreateFile(t, dir, "cp.yaml", "{}")
	yamlPath := testutil.CreateFile(t, dir, "mv.yml", "{}")

	s := New(dir, nil)

	path, err := s.Find("cp")
	require.NoError(t, err)
	assert.Equal(t, jsonPath, path, "first extension wins")

	path, err = s.Find("mv")
	require.NoError(t, err)
	assert.Equal(t, yamlPath, path)

	_, err = s.Find("rm")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandNotFound))
	assert.Equal(t, "rm", errors.DetailString(err, "command"))
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	yamlPath := testutil.CreateFile(t, dir, "mv.yaml", "{}")
	s := New(dir, nil)

	path, err := s.Path("mv")
	require.NoError(t, err)
	assert.Equal(t, yamlPath, path)

	path, err = s.Path("new")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "new.json"), path)
}

func TestInvalidNames(t *testing.T) {
	s := New(t.TempDir(), nil)

	for _, name := range []string{"", ".", "..", "../etc/passwd", `a\b`} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Find(name)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

			_, err = s.Path(name)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "foo.json", `{
		"name": "foo",
		"signature": "foo [-x] FILE",
		"description": ["Does a thing.", {"type": "options", "items": [["-x", "enable x"]]}]
	}`)

	record, got, err := New(dir, nil).Load("foo")
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "foo", record[helpdoc.KeyName])

	doc, err := helpdoc.New(record, helpdoc.Options{Width: 40})
	require.NoError(t, err)
	assert.Equal(t, "foo: foo [-x] FILE\n    Does a thing.\n\n    Options:\n      -x   enable x", doc.String())
}

func TestLoad_DecodeError(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "bad.json", `{"name": "bad",`)

	_, got, err := New(dir, nil).Load("bad")
	require.Error(t, err)
	assert.Equal(t, path, got)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRecordDecode))
	assert.Equal(t, path, errors.DetailString(err, "path"))
}

func TestLoad_NotFound(t *testing.T) {
	_, _, err := New(t.TempDir(), nil).Load("nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandNotFound))
}
