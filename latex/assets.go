package latex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"doctex/utils/images"
)

// resolve makes reference absolute relative to directory of the document.
func resolve(ref, document string) string {
	p := filepath.FromSlash(ref)
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(document), p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// registerAsset records image and copies or converts it, returns reference
// to be emitted.
func (r *run) registerAsset(ref string) (string, error) {
	a := Asset{Ref: ref, Source: resolve(ref, r.src), Destination: resolve(ref, r.dst)}
	if !r.doc.AddAsset(a) {
		r.log.Debug("Image already registered", zap.String("source", a.Source))
		return r.doc.asset(a.Source).Target(), nil
	}
	if !r.opts.CopyImages {
		return ref, nil
	}

	registered := r.doc.asset(a.Source)
	if r.opts.ConvertImages {
		convert, err := images.NeedsConversion(a.Source)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrAsset, err)
		}
		if convert {
			rendition := images.PNGName(a.Destination)
			if err := convertAsset(a.Source, rendition, r.opts.SVGWidth, r.log); err != nil {
				return "", err
			}
			registered.Converted = rendition
			return registered.Target(), nil
		}
	}
	if err := copyAsset(a.Source, a.Destination, r.log); err != nil {
		return "", err
	}
	registered.Copied = true
	return ref, nil
}

// convertAsset writes PNG rendition of the image.
func convertAsset(src, dst string, width int, log *zap.Logger) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrAsset, err)
	}
	if err := images.ToPNG(src, dst, width); err != nil {
		return fmt.Errorf("%w: %w", ErrAsset, err)
	}
	log.Debug("Image converted", zap.String("from", src), zap.String("to", dst))
	return nil
}

// copyAsset copies file preserving modification time. Existing directories
// and copying file onto itself are not errors.
func copyAsset(src, dst string, log *zap.Logger) error {
	si, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAsset, err)
	}
	if !si.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrAsset, src)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrAsset, err)
	}
	if di, err := os.Stat(dst); err == nil && os.SameFile(si, di) {
		log.Debug("Image is already in place", zap.String("path", dst))
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrAsset, err)
	}
	if err := os.Chtimes(dst, si.ModTime(), si.ModTime()); err != nil {
		return fmt.Errorf("%w: %w", ErrAsset, err)
	}
	log.Debug("Image copied", zap.String("from", src), zap.String("to", dst))

	checkEmbeddable(dst, log)
	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(out, in)
	return err
}

// checkEmbeddable warns about images pdflatex is unable to include.
func checkEmbeddable(path string, log *zap.Logger) {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		log.Warn("Unable to detect image type", zap.String("path", path), zap.Error(err))
		return
	}
	switch kind.Extension {
	case "png", "jpg", "pdf":
	default:
		if kind == filetype.Unknown {
			log.Warn("Image type is unknown, it may not be embeddable", zap.String("path", path))
			return
		}
		log.Warn("Image type may not be embeddable", zap.String("path", path), zap.String("type", kind.MIME.Value))
	}
}
