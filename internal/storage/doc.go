// Package storage abstracts the durable blob store backing configuration
// documents and key material.
//
// The store treats every blob as a whole document: reads return the full
// content, writes fully replace it. Disk writes go through a temporary file
// followed by a rename, so a document on disk is either the previous version
// or the new one, never a partial write.
//
// The configuration store only talks to this interface, which keeps the
// filesystem swappable in tests.
package storage
