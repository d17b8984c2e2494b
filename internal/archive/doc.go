// Package archive downloads a repository tarball and extracts one example
// directory out of it.
//
// The pair shares a single resource, the temporary archive file:
//
//	Fetcher.Fetch    -> *TempArchive (on disk, owned by the caller)
//	Extractor.Extract -> consumes the TempArchive and always releases it
//
// Fetch releases the partial file itself when the download fails, so no
// temporary archive outlives the fetch+extract stage on any path.
package archive
