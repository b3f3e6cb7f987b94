package project

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/picotools/picogen/internal/buildtool"
	"github.com/picotools/picogen/internal/catalog"
	"github.com/picotools/picogen/internal/config"
	"github.com/picotools/picogen/internal/defs"
	"github.com/picotools/picogen/internal/generator"
)

// ancillaryFS holds the per-feature support files shipped with the
// generator, currently only the lwIP configuration header needed by the
// Pico W lwIP options.
//
//go:embed assets
var ancillaryFS embed.FS

// Result summarizes one materialization run.
type Result struct {
	ProjectDir   string   // absolute path of the generated project
	SourceFile   string   // generated main file name
	CreatedFiles []string // paths relative to ProjectDir, in creation order
	Configured   bool     // whether cmake configuration ran
	Built        bool     // whether the build driver ran
}

// Materializer turns a validated Config into files on disk.
type Materializer interface {
	// Generate runs the full generation sequence. Errors after the project
	// directory exists leave a partially populated directory behind; the
	// overwrite path is the supported way to repair.
	Generate(ctx context.Context, cfg *config.Config) (*Result, error)
}

// materializer is the concrete implementation of Materializer.
type materializer struct {
	catalog *catalog.Catalog
	builder buildtool.Runner // may be nil when external tools are disabled
	logger  *slog.Logger
}

// New creates a Materializer. A nil builder skips the configure and build
// steps entirely.
func New(cat *catalog.Catalog, builder buildtool.Runner, logger *slog.Logger) Materializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &materializer{catalog: cat, builder: builder, logger: logger}
}

// Exists reports whether dir already holds a generated project. The build
// descriptor is the marker file; nothing else is inspected.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, defs.CMakeListsFile))
	return err == nil
}

// Generate runs the generation sequence in fixed order.
func (m *materializer) Generate(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	projectDir := filepath.Join(cfg.ProjectRoot, cfg.ProjectName)

	m.logger.Info("materializing project",
		"dir", projectDir,
		"board", cfg.BoardType,
		"features", cfg.Features,
	)

	if err := os.MkdirAll(projectDir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", config.ErrIO, projectDir, err)
	}

	// The build descriptor is the only overwrite guard; every later step
	// overwrites unconditionally.
	if Exists(projectDir) && !cfg.Overwrite {
		return nil, ErrProjectExists
	}

	result := &Result{ProjectDir: projectDir}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := m.copySDKImport(cfg, projectDir, result); err != nil {
		return nil, err
	}

	features := m.catalog.EffectiveFeatures(cfg.Features, cfg.WantExamples)

	if err := m.writeSource(cfg, projectDir, features, result); err != nil {
		return nil, err
	}
	if err := m.writeCMake(cfg, projectDir, features, result); err != nil {
		return nil, err
	}
	if err := m.copyAncillaryFiles(projectDir, features, result); err != nil {
		return nil, err
	}
	if err := m.prepareBuildDir(projectDir, result); err != nil {
		return nil, err
	}

	if cfg.WantsIDE("vscode") {
		if err := m.writeVSCode(cfg, projectDir, result); err != nil {
			return nil, err
		}
	}

	if m.builder != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buildDir := filepath.Join(projectDir, defs.BuildDir)
		if err := m.builder.Configure(ctx, buildDir); err != nil {
			return nil, err
		}
		result.Configured = true

		if cfg.RunBuild {
			if err := m.builder.Build(ctx, buildDir); err != nil {
				return nil, err
			}
			result.Built = true
		}
	}

	m.logger.Info("project materialized", "files", len(result.CreatedFiles))
	return result, nil
}

// copySDKImport copies the fixed SDK locator file into the project so the
// generated CMakeLists can find the SDK.
func (m *materializer) copySDKImport(cfg *config.Config, projectDir string, result *Result) error {
	src := filepath.Join(cfg.SDKPath, "external", defs.SDKImportFile)
	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSDKImportMissing, src)
		}
		return fmt.Errorf("%w: read %s: %v", config.ErrIO, src, err)
	}

	return m.writeFile(projectDir, defs.SDKImportFile, string(data), result)
}

func (m *materializer) writeSource(cfg *config.Config, projectDir string, features []string, result *Result) error {
	name := generator.SourceFileName(cfg.ProjectName, cfg.Language)
	content := generator.RenderMainSource(m.catalog, features)
	result.SourceFile = name
	return m.writeFile(projectDir, name, content, result)
}

func (m *materializer) writeCMake(cfg *config.Config, projectDir string, features []string, result *Result) error {
	content := generator.RenderCMake(m.catalog, cfg, features)
	return m.writeFile(projectDir, defs.CMakeListsFile, content, result)
}

// copyAncillaryFiles writes each effective feature's support file next to
// the generated source. Duplicate file names across features collapse to a
// single copy.
func (m *materializer) copyAncillaryFiles(projectDir string, features []string, result *Result) error {
	written := make(map[string]bool)
	for _, key := range features {
		d, ok := m.catalog.Lookup(key)
		if !ok || d.AncillaryFile == "" || written[d.AncillaryFile] {
			continue
		}
		data, err := ancillaryFS.ReadFile("assets/" + d.AncillaryFile)
		if err != nil {
			return fmt.Errorf("%w: ancillary file %s: %v", config.ErrIO, d.AncillaryFile, err)
		}
		if err := m.writeFile(projectDir, d.AncillaryFile, string(data), result); err != nil {
			return err
		}
		written[d.AncillaryFile] = true
	}
	return nil
}

// prepareBuildDir creates the out-of-tree build directory and drops any
// stale CMake cache so a changed board type or SDK path takes effect.
func (m *materializer) prepareBuildDir(projectDir string, result *Result) error {
	buildDir := filepath.Join(projectDir, defs.BuildDir)
	if err := os.MkdirAll(buildDir, defs.DirPerm); err != nil {
		return fmt.Errorf("%w: create %s: %v", config.ErrIO, buildDir, err)
	}

	cache := filepath.Join(buildDir, defs.CMakeCacheFile)
	if err := os.Remove(cache); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove %s: %v", config.ErrIO, cache, err)
	}

	result.CreatedFiles = append(result.CreatedFiles, defs.BuildDir+string(os.PathSeparator))
	return nil
}

func (m *materializer) writeVSCode(cfg *config.Config, projectDir string, result *Result) error {
	files, err := generator.RenderVSCode(m.catalog, cfg)
	if err != nil {
		return err
	}

	dir := filepath.Join(projectDir, defs.VSCodeDir)
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return fmt.Errorf("%w: create %s: %v", config.ErrIO, dir, err)
	}

	// Fixed write order for stable results and logs.
	for _, name := range []string{
		defs.VSCodeLaunchJSON,
		defs.VSCodePropertiesJSON,
		defs.VSCodeSettingsJSON,
		defs.VSCodeExtensionsJSON,
	} {
		if err := m.writeFile(dir, name, files[name], result); err != nil {
			return err
		}
	}
	return nil
}

func (m *materializer) writeFile(dir, name, content string, result *Result) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), defs.FilePerm); err != nil {
		return fmt.Errorf("%w: write %s: %v", config.ErrIO, path, err)
	}

	rel, err := filepath.Rel(result.ProjectDir, path)
	if err != nil {
		rel = name
	}
	result.CreatedFiles = append(result.CreatedFiles, rel)
	return nil
}
