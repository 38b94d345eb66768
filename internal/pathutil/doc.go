// Package pathutil provides path building utilities for schema traversal.
//
// The primary type is [PointerBuilder], which uses push/pop semantics to
// build RFC 6901 JSON pointers incrementally. Tokens are escaped as they are
// pushed, and the full pointer is only materialized when String() is called.
// Recursive walkers push a keyword and a key on the way down and pop them on
// the way back up.
//
// Use [Get] to obtain a pooled PointerBuilder, and [Put] to return it:
//
//	ptr := pathutil.Get("#")
//	defer pathutil.Put(ptr)
//
//	ptr.Push("properties")
//	ptr.Push(propName)
//	// ... recurse ...
//	ptr.Pop()
//	ptr.Pop()
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths written by the
// command line tool. It rejects symlinks and directories.
package pathutil
