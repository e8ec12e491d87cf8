package funsd

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultImageDir is where the FUNSD training images live in the dataset archive
	DefaultImageDir = "data/raw/funsd/dataset/training_data/images"
	// DefaultAnnotationDir is where the FUNSD training annotations live in the dataset archive
	DefaultAnnotationDir = "data/raw/funsd/dataset/training_data/annotations"
	// DefaultImageExt is the file extension of the FUNSD images
	DefaultImageExt = "png"

	annotationExt = ".json"
)

var (
	ErrImageNotFound      = errors.New("image not found")
	ErrImageDecode        = errors.New("image could not be decoded")
	ErrAnnotationNotFound = errors.New("annotation not found")
	ErrAnnotationDecode   = errors.New("annotation could not be decoded")
)

// Dataset resolves document IDs to their image and annotation files
type Dataset struct {
	ImageDir      string
	AnnotationDir string
	ImageExt      string
}

// New creates a dataset rooted at the given directories.
// An empty ext falls back to DefaultImageExt.
func New(imageDir, annotationDir, ext string) *Dataset {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		ext = DefaultImageExt
	}
	return &Dataset{
		ImageDir:      imageDir,
		AnnotationDir: annotationDir,
		ImageExt:      ext,
	}
}

// ImagePath returns {ImageDir}/{id}.{ImageExt}
func (d *Dataset) ImagePath(id string) string {
	return filepath.Join(d.ImageDir, id+"."+d.ImageExt)
}

// AnnotationPath returns {AnnotationDir}/{id}.json
func (d *Dataset) AnnotationPath(id string) string {
	return filepath.Join(d.AnnotationDir, id+annotationExt)
}

// Dimensions returns the image size for a document, or a zero Size when the
// image is missing or cannot be decoded. The failure is logged and never returned
// so a batch can carry on with the next document.
func (d *Dataset) Dimensions(id string) Size {
	size, err := d.LookupDimensions(id)
	if err != nil {
		slog.Warn("Unable to read image dimensions", "id", id, "err", err)
		return Size{}
	}
	return size
}

// LookupDimensions is the strict variant of Dimensions. The returned error wraps
// ErrImageNotFound or ErrImageDecode.
func (d *Dataset) LookupDimensions(id string) (Size, error) {
	path := d.ImagePath(id)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Size{}, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return Size{}, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}

	return Size{Width: config.Width, Height: config.Height}, nil
}

// Load reads and parses the annotation file for a document.
// The returned error wraps ErrAnnotationNotFound or ErrAnnotationDecode.
func (d *Dataset) Load(id string) (*Annotation, error) {
	path := d.AnnotationPath(id)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAnnotationNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrAnnotationDecode, path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s: invalid UTF-8", ErrAnnotationDecode, path)
	}

	var annotation Annotation
	if err := json.Unmarshal(data, &annotation); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAnnotationDecode, path, err)
	}
	annotation.applyDefaults()

	return &annotation, nil
}

// DocumentIDs lists the IDs of all annotation files in AnnotationDir, sorted.
// The extension must match AnnotationPath exactly, so X.JSON is not listed.
func (d *Dataset) DocumentIDs() ([]string, error) {
	entries, err := os.ReadDir(d.AnnotationDir)
	if err != nil {
		return nil, fmt.Errorf("cannot read annotation directory %q: %w", d.AnnotationDir, err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || filepath.Ext(name) != annotationExt {
			continue
		}
		// Must be a regular file or a symlink
		if !entry.Type().IsRegular() && entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	sort.Strings(ids)

	return ids, nil
}
