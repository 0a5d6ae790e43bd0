// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_ValidRepo(t *testing.T) {
	dir, _ := initTestRepo(t)
	r, err := Open(dir)
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestOpen_NotARepo(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoGit))
}

func TestHead_ReturnsCommitHash(t *testing.T) {
	dir, hash := initTestRepo(t)
	r, err := Open(dir)
	require.NoError(t, err)

	head, err := r.Head()
	require.NoError(t, err)
	assert.Equal(t, hash, head)
	assert.Len(t, head, 40)
}

func TestRevision_FromSubdirectory(t *testing.T) {
	dir, hash := initTestRepo(t)
	sub := filepath.Join(dir, "src", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	assert.Equal(t, hash, Revision(sub))
}

func TestRevision_EmptyRepoOrNoRepo(t *testing.T) {
	assert.Empty(t, Revision(t.TempDir()))

	empty := t.TempDir()
	_, err := gogit.PlainInit(empty, false)
	require.NoError(t, err)
	assert.Empty(t, Revision(empty))
}

// initTestRepo creates a temp dir with a git repo and an initial commit,
// returning the directory and the commit hash.
func initTestRepo(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := r.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte("def main():\n    pass\n"), 0o644))
	_, err = wt.Add("main.py")
	require.NoError(t, err)

	hash, err := wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@test.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir, hash.String()
}
