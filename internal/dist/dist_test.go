package dist_test

import (
	"context"
	"os"
	"path"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/bumpver/internal/config"
	"github.com/robgonnella/bumpver/internal/dist"
	mock_command "github.com/robgonnella/bumpver/internal/mock/command"
	"github.com/stretchr/testify/assert"
)

func setupProject(t *testing.T) (string, *config.Config) {
	t.Helper()

	srcDir := t.TempDir()

	err := os.WriteFile(path.Join(srcDir, "VERSION"), []byte("0.1.0\n"), 0644)

	if err != nil {
		t.Fatalf("failed to seed version file: %s", err.Error())
	}

	conf := &config.Config{Name: "dmiid", VersionFile: "VERSION"}

	return srcDir, conf
}

func TestPackager(t *testing.T) {
	ctx := context.Background()

	t.Run("creates plain tarball", func(st *testing.T) {
		ctrl := gomock.NewController(st)

		defer ctrl.Finish()

		srcDir, conf := setupProject(st)

		mockRunner := mock_command.NewMockRunner(ctrl)

		mockRunner.EXPECT().
			Run(
				ctx,
				"git",
				"archive",
				"--format=tar",
				"--prefix=dmiid-0.1.0/",
				"-o",
				"dmiid-0.1.0.tar",
				"HEAD",
			).
			Return(nil)

		packager := dist.NewPackager(mockRunner, conf, config.RunOptions{SrcDir: srcDir})

		artifact, err := packager.Archive(ctx, "")

		assert.NoError(st, err)
		assert.Equal(st, "dmiid-0.1.0.tar", artifact)
	})

	t.Run("compresses tarball", func(st *testing.T) {
		ctrl := gomock.NewController(st)

		defer ctrl.Finish()

		srcDir, conf := setupProject(st)

		mockRunner := mock_command.NewMockRunner(ctrl)

		mockRunner.EXPECT().
			Run(ctx, "git", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockRunner.EXPECT().
			Run(ctx, "gzip", "-f", "dmiid-0.1.0.tar").
			Return(nil)

		packager := dist.NewPackager(mockRunner, conf, config.RunOptions{SrcDir: srcDir})

		artifact, err := packager.Archive(ctx, "gzip")

		assert.NoError(st, err)
		assert.Equal(st, "dmiid-0.1.0.tar.gz", artifact)
	})

	t.Run("rejects unknown compression", func(st *testing.T) {
		ctrl := gomock.NewController(st)

		defer ctrl.Finish()

		srcDir, conf := setupProject(st)

		packager := dist.NewPackager(
			mock_command.NewMockRunner(ctrl),
			conf,
			config.RunOptions{SrcDir: srcDir},
		)

		_, err := packager.Archive(ctx, "zstd")

		assert.Error(st, err)
	})

	t.Run("refuses to overwrite existing artifact", func(st *testing.T) {
		ctrl := gomock.NewController(st)

		defer ctrl.Finish()

		srcDir, conf := setupProject(st)

		err := os.WriteFile(path.Join(srcDir, "dmiid-0.1.0.tar"), []byte{}, 0644)

		assert.NoError(st, err)

		packager := dist.NewPackager(
			mock_command.NewMockRunner(ctrl),
			conf,
			config.RunOptions{SrcDir: srcDir},
		)

		_, err = packager.Archive(ctx, "")

		assert.Error(st, err)
	})

	t.Run("dry run invokes nothing", func(st *testing.T) {
		ctrl := gomock.NewController(st)

		defer ctrl.Finish()

		srcDir, conf := setupProject(st)

		packager := dist.NewPackager(
			mock_command.NewMockRunner(ctrl),
			conf,
			config.RunOptions{SrcDir: srcDir, DryRun: true},
		)

		artifact, err := packager.Archive(ctx, "gzip")

		assert.NoError(st, err)
		assert.Equal(st, "dmiid-0.1.0.tar.gz", artifact)
	})
}
