package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"doctex/archive"
	"doctex/config"
	"doctex/doctree"
	"doctex/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	tc := &env.Cfg.Document.Translator
	if cmd.IsSet("to") {
		variant, err := config.ParseMappingVariant(cmd.String("to"))
		if err != nil {
			log.Warn("Unknown mapping requested, using configured one", zap.Stringer("mapping", tc.Mapping), zap.Error(err))
		} else {
			tc.Mapping = variant
		}
	}
	if cmd.IsSet("no-chapters") {
		tc.NoChapters = cmd.Bool("no-chapters")
	}
	if cmd.IsSet("add-title") {
		tc.AddTitle = cmd.Bool("add-title")
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("mapping", tc.Mapping))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process handles the core conversion logic independently of CLI framework.
// Source could be a single document, zip archive or directory, single
// document may be converted into explicitly named .tex file.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		if strings.EqualFold(filepath.Ext(dst), outputExt) {
			return fmt.Errorf("destination for directory cannot be a file (%s)", dst)
		}
		return processDir(ctx, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	if isArchiveFile(src) {
		if strings.EqualFold(filepath.Ext(dst), outputExt) {
			return fmt.Errorf("destination for archive cannot be a file (%s)", dst)
		}
		count, failed, err := processArchive(ctx, src, "", dst, log)
		return summarize(count, failed, err)
	}

	var outputName string
	if strings.EqualFold(filepath.Ext(dst), outputExt) {
		outputName, dst = dst, filepath.Dir(dst)
	}
	return processFile(ctx, src, filepath.Base(src), dst, outputName, log)
}

func summarize(count, failed int, err error) error {
	if err == nil && failed > 0 {
		err = fmt.Errorf("unable to process %d of %d documents", failed, count)
	}
	return err
}

// processDir walks directory tree finding documents and archives and
// processes them. Failed documents are reported and do not stop processing.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	count, failed := 0, 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		switch {
		case isArchiveFile(path):
			c, f, err := processArchive(ctx, path, src, dst, log)
			count, failed = count+c, failed+f
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
		case isDocumentFile(path):
			count++
			if err := processFile(ctx, path, src, dst, "", log); err != nil {
				failed++
				log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			}
		default:
			log.Debug("Skipping file, not recognized as document", zap.String("file", path))
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return summarize(count, failed, err)
}

// processArchive converts all documents found inside zip archive. "src" is
// archive path relative to processed source, documents keep their archive
// structure under it. Relative image references are resolved against
// archive location on disk.
func processArchive(ctx context.Context, path, src, dst string, log *zap.Logger) (count, failed int, err error) {
	pathOut := strings.TrimSuffix(src, filepath.Ext(src))

	err = archive.Walk(path, isDocumentFile, func(e *archive.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		count++

		r, err := e.Open()
		if err != nil {
			failed++
			log.Error("Unable to process file in archive", zap.String("archive", e.Archive), zap.String("file", e.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		name := filepath.FromSlash(e.Name)
		docPath := filepath.Join(filepath.Dir(path), name)
		if err := processDocument(ctx, r, docPath, filepath.Join(pathOut, name), dst, "", log); err != nil {
			failed++
			log.Error("Unable to process file in archive", zap.String("archive", e.Archive), zap.String("file", e.Name), zap.Error(err))
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return count, failed, err
}

func processFile(ctx context.Context, path, src, dst, outputName string, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open document (%s): %w", src, err)
	}
	defer f.Close()
	return processDocument(ctx, f, path, src, dst, outputName, log)
}

// processDocument converts single document read from "r". "path" is where
// document lives on disk and is used to resolve images, "src" is path of the
// document relative to the processed source (always including file name),
// "dst" is the destination directory. When "outputName" is not empty it is
// used as is.
func processDocument(ctx context.Context, r io.Reader, path, src, dst, outputName string, log *zap.Logger) (rerr error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	tree, err := doctree.Read(r, env.Cfg.Document.Translator.IgnoredRoles, log)
	if err != nil {
		return fmt.Errorf("unable to read document (%s): %w", src, err)
	}
	s := &Source{Tree: tree, SrcName: src, Path: path, Variant: env.Cfg.Document.Translator.Mapping}
	if env.Rpt != nil {
		env.Rpt.StoreData(reportName(env, src, "tree.txt"), []byte(tree.String()))
	}

	if len(outputName) == 0 {
		outputName = buildOutputPath(s, dst, env)
	}
	if err := prepareOutput(outputName, env.Overwrite, log); err != nil {
		return err
	}

	t, err := env.Translator()
	if err != nil {
		return err
	}
	res, err := t.Translate(tree, path, outputName)
	if err != nil {
		return fmt.Errorf("unable to translate document (%s): %w", src, err)
	}
	if err := os.WriteFile(outputName, []byte(res.Text), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	for _, a := range res.Assets {
		log.Debug("Image", zap.String("ref", a.Ref), zap.String("destination", a.Destination), zap.Bool("copied", a.Copied))
	}

	// Store conversion result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(reportName(env, src, "result"+outputExt), outputName)
	}
	return nil
}

// prepareOutput makes sure output file could be written. Existing file is
// left in place, it is replaced only by successful translation.
func prepareOutput(name string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Existing file will be overwritten", zap.String("file", name))
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

func reportName(env *state.LocalEnv, src, suffix string) string {
	return fmt.Sprintf("%s/%s-%s", env.RunID, filepath.ToSlash(src), suffix)
}
