// Package image provides utilities for loading images from disk.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/webp" // Register WebP format
)

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct {
	logger hclog.Logger
}

// NewFileLoader creates a FileLoader. A nil logger discards output.
func NewFileLoader(logger hclog.Logger) *FileLoader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &FileLoader{logger: logger}
}

// Load decodes the image file at path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s (extension %s): %w", path, filepath.Ext(path), err)
	}

	b := img.Bounds()
	l.logger.Debug("decoded image", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	return img, nil
}

// checkFile reports why path cannot be opened as an image file, if anything.
func checkFile(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("image file not found: %s", path)
	case err != nil:
		return fmt.Errorf("failed to stat image file: %w", err)
	case info.IsDir():
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

// LoadAll loads every path in order using the given loader.
func LoadAll(loader Loader, paths []string) ([]image.Image, error) {
	images := make([]image.Image, 0, len(paths))
	for _, path := range paths {
		img, err := loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectoryForImages returns the supported image files in dirPath in
// os.ReadDir order, which is sorted by name. Subdirectories are skipped;
// symlinks are followed.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	imageFiles := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !isImageFile(entry.Name()) {
			continue
		}
		fullPath := filepath.Join(dirPath, entry.Name())
		// Stat resolves symlinks; broken links are skipped.
		if info, err := os.Stat(fullPath); err == nil && info.Mode().IsRegular() {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}
	return imageFiles, nil
}

// ExpandPaths resolves command-line arguments into image file paths.
// Files are kept as-is; directories are replaced by the images they contain.
func ExpandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if arg == "" {
			return nil, fmt.Errorf("image path cannot be empty")
		}
		info, err := os.Stat(arg)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("image file or directory not found: %s", arg)
			}
			return nil, fmt.Errorf("failed to access image path: %w", err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := ScanDirectoryForImages(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images given")
	}
	return paths, nil
}
