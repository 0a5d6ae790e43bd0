// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git reads repository metadata for an analyzed project.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNoGit is returned when the directory is not inside a git repository.
var ErrNoGit = errors.New("not a git repository")

// Repo wraps a go-git repository opened read-only.
type Repo struct {
	repo *gogit.Repository
}

// Open opens the repository containing dir, searching parent directories
// for the .git directory. Returns ErrNoGit when none is found.
func Open(dir string) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	return &Repo{repo: r}, nil
}

// Head returns the hash of the commit HEAD points to.
func (r *Repo) Head() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// Revision returns the HEAD commit of the repository containing dir, or ""
// when dir is not in a repository or the repository has no commits.
func Revision(dir string) string {
	r, err := Open(dir)
	if err != nil {
		return ""
	}
	rev, err := r.Head()
	if err != nil {
		return ""
	}
	return rev
}
