package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/rs/zerolog"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/media"
	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/repository/ports"
)

//go:embed places.yaml
var defaultCatalog []byte

type PlaceEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Importance  string `json:"importance"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	ImageURL    string `json:"imageUrl"`
}

type catalog struct {
	Places []PlaceEntry `json:"places"`
}

// DefaultCatalog returns the built-in destinations.
func DefaultCatalog() ([]PlaceEntry, error) {
	return ParseCatalog(defaultCatalog)
}

func ParseCatalog(data []byte) ([]PlaceEntry, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse place catalog: %w", err)
	}
	for i, p := range c.Places {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("parse place catalog: entry %d has no name", i)
		}
	}
	return c.Places, nil
}

type Config struct {
	// Images holds the files named by PlaceEntry.Image. Nil disables uploads.
	Images       fs.FS
	Bucket       string
	MaxDimension int
}

type Report struct {
	Created []string
	Skipped []string
}

// Seeder creates catalog places that are not in the store yet. Places are
// matched by name, so running it twice creates nothing the second time.
type Seeder struct {
	places    ports.PlaceRepository
	storage   ports.ObjectStorage
	processor media.Processor
	cfg       Config
}

func NewSeeder(places ports.PlaceRepository, storage ports.ObjectStorage, processor media.Processor, cfg Config) *Seeder {
	return &Seeder{places: places, storage: storage, processor: processor, cfg: cfg}
}

func (s *Seeder) Run(ctx context.Context, entries []PlaceEntry) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	existing, err := s.places.ExistingNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("check existing places: %w", err)
	}
	present := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		present[name] = struct{}{}
	}

	report := &Report{}
	for _, entry := range entries {
		if _, ok := present[entry.Name]; ok {
			report.Skipped = append(report.Skipped, entry.Name)
			continue
		}

		imageURL, err := s.imageURL(ctx, entry)
		if err != nil {
			return report, fmt.Errorf("place %q: %w", entry.Name, err)
		}

		created, err := s.places.Create(ctx, domain.Place{
			Name:        entry.Name,
			Description: strings.TrimSpace(entry.Description),
			Importance:  strings.TrimSpace(entry.Importance),
			ImageURL:    imageURL,
			Location:    entry.Location,
			Category:    entry.Category,
		})
		if err != nil {
			return report, fmt.Errorf("create place %q: %w", entry.Name, err)
		}
		// Names are unique within a run too.
		present[entry.Name] = struct{}{}
		report.Created = append(report.Created, created.Name)
		logger.Info().Str("place_id", created.ID.String()).Str("name", created.Name).Msg("place seeded")
	}
	return report, nil
}

// imageURL uploads the entry's image when storage and a source directory are
// configured, falling back to the catalog URL when the file is missing.
func (s *Seeder) imageURL(ctx context.Context, entry PlaceEntry) (string, error) {
	if s.storage == nil || s.cfg.Images == nil || entry.Image == "" {
		return entry.ImageURL, nil
	}

	data, err := fs.ReadFile(s.cfg.Images, entry.Image)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			zerolog.Ctx(ctx).Warn().Str("image", entry.Image).Msg("seed image missing, keeping catalog url")
			return entry.ImageURL, nil
		}
		return "", fmt.Errorf("read image: %w", err)
	}

	reader, size, contentType, err := prepareImageForUpload(ctx, s.processor, media.Upload{
		Reader:   bytes.NewReader(data),
		Size:     int64(len(data)),
		FileName: entry.Image,
	}, s.cfg.MaxDimension)
	if err != nil {
		return "", fmt.Errorf("process image: %w", err)
	}

	url, err := s.storage.Upload(ctx, s.cfg.Bucket, objectName(entry.Image, contentType), contentType, reader, size)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}

func prepareImageForUpload(ctx context.Context, processor media.Processor, upload media.Upload, maxDimension int) (io.Reader, int64, string, error) {
	if processor == nil {
		contentType := upload.ContentType
		if contentType == "" {
			contentType = contentTypeFor(upload.FileName)
		}
		return upload.Reader, upload.Size, contentType, nil
	}
	result, err := processor.Process(ctx, upload, maxDimension)
	if err != nil {
		return nil, 0, "", err
	}
	return bytes.NewReader(result.Bytes), int64(len(result.Bytes)), result.ContentType, nil
}

// objectName keeps the file stem and picks the extension from the stored
// content type, which may differ from the source after processing.
func objectName(file, contentType string) string {
	base := path.Base(file)
	stem := strings.TrimSuffix(base, path.Ext(base))
	ext := path.Ext(base)
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	}
	return "places/" + stem + ext
}

func contentTypeFor(file string) string {
	switch strings.ToLower(path.Ext(file)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
