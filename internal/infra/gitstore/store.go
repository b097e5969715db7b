// Package gitstore provides a Git plumbing-based implementation of domain.KVStore.
package gitstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/runoshun/locrec/internal/domain"
)

// Store implements domain.KVStore using Git plumbing (refs, commits and blobs).
//
// Data structure:
//
//	refs/locrec/kv/
//	  <key> → commit
//	            tree: value.json → blob (stored text)
//	            parent: previous write of the same key
//
// Every SetItem appends a commit, so the ref log of a key is its revision history.
type Store struct {
	repo  *git.Repository
	clock domain.Clock
	mu    sync.RWMutex
}

// Ensure Store implements domain.KVStore and domain.HistoryStore.
var (
	_ domain.KVStore      = (*Store)(nil)
	_ domain.HistoryStore = (*Store)(nil)
)

const (
	refPrefix     = "refs/locrec/kv/"
	valueFileName = "value.json"
	authorName    = "locrec"
	authorEmail   = "locrec@localhost"
)

// Open opens the repository at path, creating a bare repository if none exists.
func Open(path string, clock domain.Clock) (*Store, error) {
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		if mkErr := os.MkdirAll(path, 0o750); mkErr != nil {
			return nil, fmt.Errorf("create repository directory: %w", mkErr)
		}
		repo, err = git.PlainInit(path, true)
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, clock), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, clock domain.Clock) *Store {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{repo: repo, clock: clock}
}

// keyRef returns the ref name for a key.
func keyRef(key string) (plumbing.ReferenceName, error) {
	if key == "" {
		return "", domain.ErrEmptyStorageKey
	}
	if strings.ContainsAny(key, " ~^:?*[\\/") || strings.Contains(key, "..") || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid storage key %q for git backend", key)
	}
	return plumbing.ReferenceName(refPrefix + key), nil
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	name, err := keyRef(key)
	if err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(name, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get ref %s: %w", key, err)
	}

	data, err := s.readCommitValue(ref.Hash())
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// SetItem records value as a new revision of key.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := keyRef(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var parents []plumbing.Hash
	if ref, refErr := s.repo.Reference(name, true); refErr == nil {
		parents = append(parents, ref.Hash())
	} else if !errors.Is(refErr, plumbing.ErrReferenceNotFound) {
		return fmt.Errorf("get ref %s: %w", key, refErr)
	}

	blobHash, err := s.writeBlob([]byte(value))
	if err != nil {
		return err
	}
	treeHash, err := s.writeTree(blobHash)
	if err != nil {
		return err
	}
	commitHash, err := s.writeCommit(treeHash, parents, "set "+key)
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(name, commitHash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set ref %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key and its history.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := keyRef(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Storer.RemoveReference(name); err != nil && !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return fmt.Errorf("remove ref %s: %w", key, err)
	}
	return nil
}

// History returns up to limit revisions of key, newest first.
// A limit of zero or less returns every revision.
func (s *Store) History(ctx context.Context, key string, limit int) ([]domain.Revision, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := keyRef(key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(name, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ref %s: %w", key, err)
	}

	commit, err := s.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("get commit: %w", err)
	}

	var revisions []domain.Revision
	for commit != nil {
		data, err := s.readCommitValue(commit.Hash)
		if err != nil {
			return nil, err
		}
		revisions = append(revisions, domain.Revision{
			ID:   commit.Hash.String(),
			When: commit.Committer.When,
			Size: len(data),
		})
		if limit > 0 && len(revisions) >= limit {
			break
		}
		if commit.NumParents() == 0 {
			break
		}
		if commit, err = commit.Parent(0); err != nil {
			return nil, fmt.Errorf("get parent commit: %w", err)
		}
	}
	return revisions, nil
}

// Revision returns the value recorded by the revision with the given id.
func (s *Store) Revision(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.readCommitValue(plumbing.NewHash(id))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeBlob writes data to a blob and returns the hash.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

// writeTree stores a tree holding the value blob.
func (s *Store) writeTree(blob plumbing.Hash) (plumbing.Hash, error) {
	tree := &object.Tree{
		Entries: []object.TreeEntry{{
			Name: valueFileName,
			Mode: filemode.Regular,
			Hash: blob,
		}},
	}

	obj := s.repo.Storer.NewEncodedObject()
	if err := tree.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encode tree: %w", err)
	}

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store tree: %w", err)
	}
	return hash, nil
}

// writeCommit stores a commit pointing at tree.
func (s *Store) writeCommit(tree plumbing.Hash, parents []plumbing.Hash, msg string) (plumbing.Hash, error) {
	sig := object.Signature{Name: authorName, Email: authorEmail, When: s.clock.Now()}
	commit := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      msg,
		TreeHash:     tree,
		ParentHashes: parents,
	}

	obj := s.repo.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encode commit: %w", err)
	}

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store commit: %w", err)
	}
	return hash, nil
}

// readCommitValue reads the value blob of a commit.
func (s *Store) readCommitValue(hash plumbing.Hash) ([]byte, error) {
	commit, err := s.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("get tree: %w", err)
	}
	file, err := tree.File(valueFileName)
	if err != nil {
		return nil, fmt.Errorf("get value file: %w", err)
	}

	reader, err := file.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}
	return data, nil
}
