package configs

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	kerrors "github.com/ai-builder/ai-builder/internal/errors"
)

// readDocument loads a scope's full document.
//
// Reads are lenient toward data faults: an absent blob yields an empty
// document, and an unreadable or corrupted one is logged and also yields an
// empty document, so read paths stay available. Scope resolution errors
// (unconfigured project, unknown scope) are not data faults and propagate.
func (s *Store) readDocument(scope Scope) (Document, error) {
	path, err := s.documentPath(scope)
	if err != nil {
		return nil, err
	}

	if !s.blob.Exists(path) {
		return Document{}, nil
	}

	data, err := s.blob.Read(path)
	if err != nil {
		s.log.Warnf("Failed to read configuration document at %s: %v. Treating it as empty.", path, err)
		return Document{}, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warnf("Configuration document at %s is corrupted: %v. Treating it as empty.", path, err)
		return Document{}, nil
	}
	if doc == nil {
		doc = Document{}
	}

	return doc, nil
}

// writeDocument persists a scope's full document, replacing prior content.
// Unlike reads, write failures propagate: a silently dropped write would
// lose data.
func (s *Store) writeDocument(scope Scope, doc Document) error {
	path, err := s.documentPath(scope)
	if err != nil {
		return err
	}

	if err := s.blob.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrPersistence, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrPersistence, err)
	}

	if err := s.blob.Write(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrPersistence, err)
	}

	s.log.Debugf("wrote %d entr(ies) to %s", len(doc), path)
	return nil
}

// deleteDocument removes a scope's backing blob. Absent blobs are a no-op.
func (s *Store) deleteDocument(scope Scope) error {
	path, err := s.documentPath(scope)
	if err != nil {
		return err
	}
	return s.blob.Delete(path)
}
