package dist

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/robgonnella/bumpver/internal/command"
	"github.com/robgonnella/bumpver/internal/config"
	"github.com/robgonnella/bumpver/internal/logger"
	"github.com/robgonnella/bumpver/internal/rewrite"
)

// compressors maps a compression name to the external command applied to
// the tarball and the extension that command produces
var compressors = map[string]struct {
	argv []string
	ext  string
}{
	"gzip":  {argv: []string{"gzip", "-f"}, ext: ".gz"},
	"bzip2": {argv: []string{"bzip2", "-f"}, ext: ".bz2"},
	"xz":    {argv: []string{"xz", "-f"}, ext: ".xz"},
}

// Packager creates release archives of the project at its current version
type Packager struct {
	runner command.Runner
	conf   *config.Config
	opts   config.RunOptions
	log    logger.Logger
}

// NewPackager returns a new instance of Packager
func NewPackager(runner command.Runner, conf *config.Config, opts config.RunOptions) *Packager {
	return &Packager{
		runner: runner,
		conf:   conf,
		opts:   opts,
		log:    logger.New(),
	}
}

// Archive creates a tarball of HEAD named after the project and current
// version, optionally compressed. Existing artifacts are never
// overwritten.
func (p *Packager) Archive(ctx context.Context, compression string) (string, error) {
	if compression != "" {
		if _, ok := compressors[compression]; !ok {
			return "", fmt.Errorf("unknown compression %q", compression)
		}
	}

	version, err := rewrite.ReadVersionFile(
		path.Join(p.opts.SrcDir, p.conf.VersionFile),
	)

	if err != nil {
		return "", err
	}

	base := fmt.Sprintf("%s-%s", p.conf.Name, version)

	tarball := base + ".tar"

	artifact := tarball

	if compression != "" {
		artifact = tarball + compressors[compression].ext
	}

	for _, existing := range []string{tarball, artifact} {
		if _, err := os.Stat(path.Join(p.opts.SrcDir, existing)); err == nil {
			return "", fmt.Errorf("refusing to overwrite existing archive %s", existing)
		}
	}

	if p.opts.DryRun {
		p.log.Info().Str("archive", artifact).Msg("pretend: create archive")

		return artifact, nil
	}

	err = p.runner.Run(
		ctx,
		"git",
		"archive",
		"--format=tar",
		"--prefix="+base+"/",
		"-o",
		tarball,
		"HEAD",
	)

	if err != nil {
		return "", err
	}

	if compression != "" {
		argv := append(
			append([]string{}, compressors[compression].argv...),
			tarball,
		)

		if err := p.runner.Run(ctx, argv[0], argv[1:]...); err != nil {
			return "", err
		}
	}

	p.log.Info().Str("archive", artifact).Msg("created archive")

	return artifact, nil
}
