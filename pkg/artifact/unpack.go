package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported bundle encodings. Archive encodings unpack a whole
// toolchain tree; zstd decodes a single file.
const (
	EncodingZstd    = "zstd"
	EncodingTarGzip = "tar+gzip"
	EncodingTarXz   = "tar+xz"
)

// DetectEncoding infers the bundle encoding from the file name.
func DetectEncoding(name string) (string, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return EncodingTarGzip, nil
	case strings.HasSuffix(lower, ".tar.xz"), strings.HasSuffix(lower, ".txz"):
		return EncodingTarXz, nil
	case strings.HasSuffix(lower, ".tar.zst"):
		return "", fmt.Errorf("unsupported encoding for %q (use tar+gzip or tar+xz for archives)", name)
	case strings.HasSuffix(lower, ".zst"):
		return EncodingZstd, nil
	default:
		return "", fmt.Errorf("cannot infer encoding from %q", name)
	}
}

// Unpack decodes or extracts srcPath into dstDir. Archives unpack into
// a temporary sibling first so a failed extraction never leaves a
// half-written toolchain behind; a zstd payload decodes to the source
// file name without its suffix.
func Unpack(encoding, srcPath, dstDir string) error {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	switch normalizeEncoding(encoding) {
	case EncodingZstd:
		name := strings.TrimSuffix(filepath.Base(srcPath), ".zst")
		return decodeZstd(srcPath, filepath.Join(dstDir, name))
	case EncodingTarGzip, EncodingTarXz:
		return extractBundle(encoding, srcPath, dstDir)
	default:
		return fmt.Errorf("unsupported encoding: %s", encoding)
	}
}

func normalizeEncoding(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func extractBundle(encoding, srcPath, dstDir string) error {
	tmpDir, err := os.MkdirTemp(filepath.Dir(dstDir), "wrapitsh-unpack-*")
	if err != nil {
		return fmt.Errorf("create temp extraction directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	switch normalizeEncoding(encoding) {
	case EncodingTarGzip:
		if err := decodeTarGzip(srcPath, tmpDir); err != nil {
			return err
		}
	case EncodingTarXz:
		if err := decodeTarXz(srcPath, tmpDir); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported encoding: %s", encoding)
	}

	if err := moveDirectoryContents(tmpDir, dstDir); err != nil {
		return fmt.Errorf("move extracted contents: %w", err)
	}
	return nil
}

func safeRelativePath(path string) (string, error) {
	cleaned := filepath.Clean(path)
	if cleaned == "." {
		return ".", nil
	}
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("absolute path %q is not allowed", path)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal in %q is not allowed", path)
	}
	return cleaned, nil
}
