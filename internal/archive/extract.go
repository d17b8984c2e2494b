package archive

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/klauspost/compress/gzip"

	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/utils"
)

// StripComponents is the number of leading segments removed from every
// kept entry: "<repo>-<branch>/examples/<example>/"
const StripComponents = 3

// Extractor writes one example subtree of a tarball to disk
type Extractor struct {
	logger *utils.Logger
}

// NewExtractor creates a new Extractor
func NewExtractor(logger *utils.Logger) *Extractor {
	return &Extractor{logger: logger.OrNop().WithComponent("archive")}
}

// Extract keeps only the entries under req.SubtreePrefix() and writes them
// below root. The archive is released before Extract returns, whatever the
// outcome.
func (e *Extractor) Extract(ctx context.Context, archive *TempArchive, root string, req domain.ExampleRequest) domain.ExtractStatus {
	defer archive.Release()

	if archive == nil {
		return domain.ExtractFailed
	}

	prefix := req.SubtreePrefix()
	written, err := e.extractFile(ctx, archive.Path(), root, prefix)
	if err == nil && written == 0 {
		err = domain.ErrEmptySubtree
	}
	if err != nil {
		e.logger.Debug().Err(err).Str("prefix", prefix).Msg("Extraction failed")
		return domain.ExtractFailed
	}

	e.logger.Debug().Int("entries", written).Str("root", root).Msg("Example extracted")
	return domain.ExtractSuccess
}

func (e *Extractor) extractFile(ctx context.Context, path, root, prefix string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return ExtractTarGz(ctx, f, root, prefix)
}

// ExtractTarGz writes the entries of a gzip-compressed tar stream that start
// with prefix below root and returns how many entries were written.
// Entries resolving outside root are skipped, including entries reached
// through links written earlier from the same stream.
func ExtractTarGz(ctx context.Context, r io.Reader, root, prefix string) (int, error) {
	root = filepath.Clean(root)

	gzr, err := gzip.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("gzip reader failed: %w", err)
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)
	written := 0

	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return written, fmt.Errorf("tar read failed: %w", err)
		}

		name := strings.TrimPrefix(header.Name, "./")
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		rel := stripComponents(name, StripComponents)
		if rel == "" {
			continue
		}

		if !utils.WithinDir(root, filepath.Join(root, filepath.FromSlash(rel))) {
			continue
		}
		target, err := resolveTarget(root, rel)
		if err != nil {
			return written, err
		}
		if !utils.WithinDir(root, target) || target == root {
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return written, fmt.Errorf("mkdir failed: %w", err)
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, header.FileInfo().Mode().Perm()); err != nil {
				return written, err
			}
		case tar.TypeSymlink:
			if !safeLink(root, target, header.Linkname) {
				continue
			}
			if err := writeSymlink(target, header.Linkname); err != nil {
				return written, err
			}
		default:
			continue
		}
		written++
	}

	return written, nil
}

// stripComponents drops the first n slash-separated segments of name
func stripComponents(name string, n int) string {
	parts := strings.SplitN(name, "/", n+1)
	if len(parts) <= n {
		return ""
	}
	return strings.TrimSuffix(parts[n], "/")
}

func writeFile(target string, r io.Reader, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}
	if perm == 0 {
		perm = 0o644
	}

	// never write through a link left by a previous run
	if info, err := os.Lstat(target); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if err := os.Remove(target); err != nil {
			return fmt.Errorf("replace symlink failed: %w", err)
		}
	}

	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create file failed: %w", err)
	}
	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		return fmt.Errorf("copy failed: %w", err)
	}
	return file.Close()
}

// resolveTarget joins rel onto root with every directory component
// resolved on disk and clamped to root. The last component is left
// unresolved so an existing link there is replaced, not followed.
func resolveTarget(root, rel string) (string, error) {
	dir, base := path.Split(rel)
	parent, err := securejoin.SecureJoin(root, filepath.FromSlash(dir))
	if err != nil {
		return "", fmt.Errorf("resolve %s failed: %w", rel, err)
	}
	return filepath.Join(parent, base), nil
}

// safeLink reports whether a relative link at target stays inside root.
// target must come from resolveTarget so its parent holds no links.
func safeLink(root, target, linkname string) bool {
	if linkname == "" || filepath.IsAbs(linkname) {
		return false
	}
	resolved := filepath.Join(filepath.Dir(target), filepath.FromSlash(linkname))
	return utils.WithinDir(root, resolved)
}

func writeSymlink(target, linkname string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}
	if err := utils.RemoveFile(target); err != nil {
		return fmt.Errorf("replace entry failed: %w", err)
	}
	if err := os.Symlink(filepath.FromSlash(linkname), target); err != nil {
		return fmt.Errorf("symlink failed: %w", err)
	}
	return nil
}
