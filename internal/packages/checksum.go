package packages

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// md5HexLength is the length of a hex-encoded MD5 digest.
const md5HexLength = 32

// ReadChecksum returns the checksum token from a sidecar manifest: the first
// 32 characters of the manifest's first line. Anything after the token,
// typically the filename the digest was computed over, is ignored.
func ReadChecksum(manifestPath string) (string, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return "", fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read manifest %s: %w", manifestPath, err)
		}
		return "", fmt.Errorf("manifest %s is empty", manifestPath)
	}

	line := scanner.Text()
	if len(line) < md5HexLength {
		return "", fmt.Errorf("manifest %s holds no md5 checksum", manifestPath)
	}

	return line[:md5HexLength], nil
}

// FileMD5 computes the hex-encoded MD5 digest of a file's contents.
func FileMD5(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
