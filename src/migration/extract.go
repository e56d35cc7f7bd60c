package migration

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	excelize "github.com/xuri/excelize/v2"

	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
)

// ProductRow is a candidate product record read from the spreadsheet, before
// category mapping and JSON encoding.
type ProductRow struct {
	RowNumber     int
	Category      string
	Name          string
	Description   string
	Applications  string
	Features      string
	Usage         string
	Advantages    string
	TechnicalSpec string
}

// ProjectCandidate is a candidate project discovered from the photo tree.
// The folder name encodes the category; the filename encodes the name.
type ProjectCandidate struct {
	Name     string
	Category string
	ImageURL string
}

// LogoCandidate is a candidate client or approval discovered from one logo
// image file.
type LogoCandidate struct {
	Name      string
	LogoURL   string
	SortOrder int
}

// MediaCandidate is one file discovered under the media root.
type MediaCandidate struct {
	Filename     string
	OriginalName string
	FilePath     string
	FileSize     int64
	MimeType     string
}

// ContentSeed is one (page, section, key) content value from the static
// templates.
type ContentSeed struct {
	Page    string
	Section string
	Key     string
	Value   string
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
}

func isImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// junkCategoryMarkers are spreadsheet cell values that mark a row as not a
// real product (section dividers, placeholders, the header row itself).
var junkCategoryMarkers = map[string]bool{
	"-":        true,
	"n/a":      true,
	"na":       true,
	"none":     true,
	"nil":      true,
	"tbd":      true,
	"category": true,
}

// ExcelExtractor reads candidate product rows from the legacy spreadsheet.
type ExcelExtractor struct {
	Path  string
	Sheet string
	log   *logger.Logger
}

func NewExcelExtractor(path, sheet string, log *logger.Logger) *ExcelExtractor {
	return &ExcelExtractor{Path: path, Sheet: sheet, log: log.With("extractor", "excel")}
}

// Extract reads every row that looks like a real product. A missing
// spreadsheet is a warning and an empty result, not an error, so the
// pipeline proceeds with partial data. A corrupt spreadsheet propagates.
func (e *ExcelExtractor) Extract() ([]ProductRow, error) {
	if _, err := os.Stat(e.Path); os.IsNotExist(err) {
		e.log.Warn("product spreadsheet not found, continuing with no products", "path", e.Path)
		return nil, nil
	}

	f, err := excelize.OpenFile(e.Path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet %s: %w", e.Path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(e.Sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", e.Sheet, err)
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	products := make([]ProductRow, 0, len(rows))
	for i, row := range rows {
		p := ProductRow{
			RowNumber:     i + 1,
			Category:      cell(row, 0),
			Name:          cell(row, 1),
			Description:   cell(row, 2),
			Applications:  cell(row, 3),
			Features:      cell(row, 4),
			Usage:         cell(row, 5),
			Advantages:    cell(row, 6),
			TechnicalSpec: cell(row, 7),
		}
		if !looksLikeProduct(p) {
			continue
		}
		products = append(products, p)
	}

	e.log.Info("product rows extracted", "rows", len(rows), "products", len(products))
	return products, nil
}

// looksLikeProduct filters out header rows, section dividers and half-empty
// rows: a real product has a category, a name and a description, and the
// category is not a known junk marker.
func looksLikeProduct(p ProductRow) bool {
	if p.Category == "" || p.Name == "" || p.Description == "" {
		return false
	}
	return !junkCategoryMarkers[strings.ToLower(p.Category)]
}

// DirectoryExtractor discovers candidate records from image directories. All
// methods treat a missing directory as a warning plus an empty result.
type DirectoryExtractor struct {
	Root      string
	URLPrefix string
	log       *logger.Logger
}

func NewDirectoryExtractor(root, urlPrefix string, log *logger.Logger) *DirectoryExtractor {
	return &DirectoryExtractor{Root: root, URLPrefix: urlPrefix, log: log.With("extractor", "directory")}
}

// ExtractProjects walks the immediate subdirectories of the root. Each
// subdirectory name encodes a project category ("Metro Rail") and each image
// file inside yields one candidate named after the file.
func (e *DirectoryExtractor) ExtractProjects() []ProjectCandidate {
	entries, err := os.ReadDir(e.Root)
	if err != nil {
		e.log.Warn("projects directory not readable, continuing with no projects", "path", e.Root, "error", err)
		return nil
	}

	var candidates []ProjectCandidate
	for _, dir := range entries {
		if !dir.IsDir() {
			continue
		}
		category := ProjectCategoryFromDir(dir.Name())
		files := e.listImages(filepath.Join(e.Root, dir.Name()))
		for _, file := range files {
			candidates = append(candidates, ProjectCandidate{
				Name:     DisplayNameFromFile(file),
				Category: category,
				ImageURL: path.Join(e.URLPrefix, dir.Name(), file),
			})
		}
	}
	e.log.Info("project candidates extracted", "count", len(candidates))
	return candidates
}

// ExtractLogos lists the image files directly under the root, one candidate
// per file, ordered by any numeric filename prefix.
func (e *DirectoryExtractor) ExtractLogos() []LogoCandidate {
	files := e.listImages(e.Root)
	if files == nil {
		e.log.Warn("logo directory not readable, continuing with no records", "path", e.Root)
		return nil
	}

	candidates := make([]LogoCandidate, 0, len(files))
	for i, file := range files {
		candidates = append(candidates, LogoCandidate{
			Name:      DisplayNameFromFile(file),
			LogoURL:   path.Join(e.URLPrefix, file),
			SortOrder: i + 1,
		})
	}
	e.log.Info("logo candidates extracted", "count", len(candidates))
	return candidates
}

func (e *DirectoryExtractor) listImages(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && isImageFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files
}

// ScanMediaFiles walks the media root recursively and returns one candidate
// per image file, with its public URL path and detected mime type. A missing
// root yields a warning and no candidates.
func ScanMediaFiles(root, urlPrefix string, log *logger.Logger) []MediaCandidate {
	if _, err := os.Stat(root); err != nil {
		log.Warn("media root not readable, continuing with no media records", "path", root, "error", err)
		return nil
	}

	var candidates []MediaCandidate
	_ = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isImageFile(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		candidates = append(candidates, MediaCandidate{
			Filename:     d.Name(),
			OriginalName: d.Name(),
			FilePath:     path.Join(urlPrefix, filepath.ToSlash(rel)),
			FileSize:     info.Size(),
			MimeType:     mimeTypeForFile(d.Name()),
		})
		return nil
	})
	log.Info("media files scanned", "count", len(candidates))
	return candidates
}

func mimeTypeForFile(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// TemplateExtractor returns the static, hand-authored site content. No real
// document parsing is available for page copy, so the templates stand in for
// an extraction step.
type TemplateExtractor struct{}

func (TemplateExtractor) Extract() []ContentSeed {
	return defaultContentSeeds()
}
