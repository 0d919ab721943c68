package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/amandev/folio/internal/content"
	"github.com/amandev/folio/internal/db"
	"github.com/amandev/folio/internal/repository"
)

type contentService struct {
	observer UseCaseObserver
	newUoW   func(*sql.DB) db.UnitOfWork
}

func NewContentService(observers ...UseCaseObserver) ContentService {
	return &contentService{
		observer: useCaseObserverOrNoop(observers),
		newUoW: func(conn *sql.DB) db.UnitOfWork {
			return db.NewSQLiteUnitOfWork(conn, db.WithSeal())
		},
	}
}

func (s *contentService) Load(ctx context.Context, path string) (store *content.Store, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "load-content", fields, &err)()

	if path == "" {
		fields["path"] = content.SourceBuiltin
		store, err = content.Default()
	} else {
		var format content.Format
		format, err = content.FormatForPath(path)
		if err != nil {
			return nil, err
		}
		if format == content.FormatBundle {
			store, err = LoadBundle(ctx, path)
		} else {
			store, err = content.LoadFile(path)
		}
	}
	if err != nil {
		return nil, err
	}
	c := store.Counts()
	fields["case_studies"] = c.CaseStudies
	fields["skills"] = c.Skills
	fields["achievements"] = c.Achievements
	return store, nil
}

func (s *contentService) Validate(ctx context.Context, path string) (problems []error, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "validate-content", fields, &err)()

	var doc *content.Document
	switch {
	case path == "":
		doc, err = content.DefaultDocument()
	default:
		var format content.Format
		format, err = content.FormatForPath(path)
		if err != nil {
			return nil, err
		}
		if format == content.FormatBundle {
			var store *content.Store
			store, err = LoadBundle(ctx, path)
			var verr *content.ValidationError
			if errors.As(err, &verr) {
				return verr.Errs, nil
			}
			if err != nil {
				return nil, err
			}
			doc = content.ToDocument(store)
		} else {
			doc, err = content.ReadDocument(path)
		}
	}
	if err != nil {
		return nil, err
	}
	problems = content.Validate(doc)
	fields["problems"] = len(problems)
	return problems, nil
}

func (s *contentService) Export(ctx context.Context, store *content.Store, w io.Writer, format content.Format) (err error) {
	defer observe(ctx, s.observer, "export-content", map[string]any{"format": string(format)}, &err)()
	return content.Encode(w, content.ToDocument(store), format)
}

// WriteBundle builds the bundle in a temporary file next to path and moves
// it into place only once the write has committed, so a failed write never
// touches an existing bundle.
func (s *contentService) WriteBundle(ctx context.Context, store *content.Store, path string, opts BundleOptions) (result *BundleResult, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "write-bundle", fields, &err)()

	if _, statErr := os.Stat(path); statErr == nil && !opts.Force {
		return nil, fmt.Errorf("%s already exists (use --force to replace it)", path)
	}

	tmp, err := tempBundlePath(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = removeBundle(tmp)
		}
	}()

	conn, err := db.OpenDB(tmp)
	if err != nil {
		return nil, fmt.Errorf("creating bundle: %w", err)
	}
	if err = writeStore(ctx, s.newUoW(conn), store); err != nil {
		conn.Close()
		return nil, err
	}
	if err = conn.Close(); err != nil {
		return nil, fmt.Errorf("closing bundle: %w", err)
	}

	// A stale write-ahead log beside path would be replayed over the new file.
	if err = removeSidecars(path); err != nil {
		return nil, err
	}
	if err = os.Rename(tmp, path); err != nil {
		return nil, fmt.Errorf("replacing bundle: %w", err)
	}

	result = &BundleResult{Path: path, Counts: store.Counts()}
	fields["case_studies"] = result.Counts.CaseStudies
	return result, nil
}

// tempBundlePath reserves an unused file name in the directory of path.
func tempBundlePath(path string) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating bundle directory: %w", err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating bundle: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("creating bundle: %w", err)
	}
	return f.Name(), nil
}

func removeBundle(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing bundle: %w", err)
	}
	return removeSidecars(path)
}

func removeSidecars(path string) error {
	for _, p := range []string{path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", filepath.Base(p), err)
		}
	}
	return nil
}

// writeStore copies every collection of store into the bundle in one
// transaction.
func writeStore(ctx context.Context, uow db.UnitOfWork, store *content.Store) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		meta := repository.NewSQLiteMetaRepo(tx)
		if err := meta.Set(ctx, repository.MetaSource, store.Source()); err != nil {
			return err
		}
		if err := meta.Stamp(ctx); err != nil {
			return err
		}

		profile := store.Profile()
		if err := repository.NewSQLiteProfileRepo(tx).Put(ctx, &profile); err != nil {
			return err
		}

		studies := repository.NewSQLiteCaseStudyRepo(tx)
		for _, cs := range store.CaseStudies() {
			if err := studies.Create(ctx, cs); err != nil {
				return err
			}
		}

		skills := repository.NewSQLiteSkillRepo(tx)
		for _, sk := range store.Skills() {
			if err := skills.Create(ctx, &sk); err != nil {
				return err
			}
		}

		achievements := repository.NewSQLiteAchievementRepo(tx)
		for _, a := range store.Achievements() {
			if err := achievements.Create(ctx, &a); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadBundle reads a SQLite bundle into a store. The result is
// shape-checked like any other content source.
func LoadBundle(ctx context.Context, path string) (*content.Store, error) {
	conn, err := db.OpenBundle(path)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return readStore(ctx, conn, path)
}

func readStore(ctx context.Context, conn db.DBTX, source string) (*content.Store, error) {
	profile, err := repository.NewSQLiteProfileRepo(conn).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}
	studies, err := repository.NewSQLiteCaseStudyRepo(conn).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}
	skills, err := repository.NewSQLiteSkillRepo(conn).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}
	achievements, err := repository.NewSQLiteAchievementRepo(conn).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}

	store := content.NewStore(source, *profile, studies, skills, achievements)
	if errs := content.Validate(content.ToDocument(store)); len(errs) > 0 {
		return nil, &content.ValidationError{Errs: errs}
	}
	return store, nil
}
