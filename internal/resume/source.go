package resume

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-timeline/internal/config"
	"github.com/jonathan/resume-timeline/internal/db"
	"github.com/jonathan/resume-timeline/internal/fetch"
)

// Source produces the raw bytes of a resume document.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
	String() string
}

// FileSource reads the document from a local file.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return data, nil
}

func (s *FileSource) String() string {
	return "file " + s.Path
}

// HTTPSource fetches the document from a URL. HTML pages are searched for an
// embedded JSON document.
type HTTPSource struct {
	URL     string
	Options *fetch.Options
}

func (s *HTTPSource) Load(ctx context.Context) ([]byte, error) {
	return fetch.Document(ctx, s.URL, s.Options)
}

func (s *HTTPSource) String() string {
	return "url " + s.URL
}

// DocumentGetter reads the latest stored revision of a document.
type DocumentGetter interface {
	GetDocument(ctx context.Context, slug string) (*db.DocumentRevision, error)
}

// DBSource reads the latest revision of Slug from PostgreSQL. When Getter is
// nil it connects with DatabaseURL for the duration of Load.
type DBSource struct {
	DatabaseURL string
	Slug        string
	Getter      DocumentGetter
}

func (s *DBSource) Load(ctx context.Context) ([]byte, error) {
	getter := s.Getter
	if getter == nil {
		database, err := db.Connect(ctx, s.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer database.Close()
		getter = database
	}

	rev, err := getter.GetDocument(ctx, s.Slug)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, fmt.Errorf("no document stored under slug %q", s.Slug)
	}
	return rev.Content, nil
}

func (s *DBSource) String() string {
	return "postgres slug " + s.Slug
}

// NewSource picks the source described by cfg.
func NewSource(cfg *config.Config) (Source, error) {
	switch kind := cfg.ResolvedSourceKind(); kind {
	case config.SourceFile:
		if cfg.Source == "" {
			return nil, fmt.Errorf("file source requires a path")
		}
		return &FileSource{Path: cfg.Source}, nil
	case config.SourceHTTP:
		if cfg.Source == "" {
			return nil, fmt.Errorf("http source requires a URL")
		}
		opts := fetch.DefaultOptions()
		opts.Timeout = cfg.FetchTimeoutDuration(fetch.DefaultTimeout)
		return &HTTPSource{URL: cfg.Source, Options: opts}, nil
	case config.SourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres source requires a database URL")
		}
		slug := cfg.Slug
		if slug == "" {
			slug = config.DefaultSlug
		}
		return &DBSource{DatabaseURL: cfg.DatabaseURL, Slug: slug}, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", kind)
	}
}
