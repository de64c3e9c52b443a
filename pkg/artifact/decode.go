package artifact

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

func decodeZstd(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	decoder, err := zstd.NewReader(src)
	if err != nil {
		return fmt.Errorf("init decoder: %w", err)
	}
	defer decoder.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(dst, decoder); err != nil {
		dst.Close()
		removeOnError(dstPath)
		return fmt.Errorf("decode: %w", err)
	}

	if err := dst.Close(); err != nil {
		removeOnError(dstPath)
		return fmt.Errorf("close destination: %w", err)
	}

	return nil
}

func removeOnError(path string) {
	_ = os.Remove(path)
}
