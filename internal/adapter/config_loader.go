package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	m "github.com/mouse-blink/litsplice/internal/model"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// ConfigLoader reads embedding targets from a configuration file.
type ConfigLoader interface {
	// Load returns the targets declared in the file at path, with defaults
	// applied and relative paths resolved against the file's directory.
	Load(path m.Path) ([]m.Target, error)
}

// LocalConfigLoader loads YAML (.yaml, .yml) and HCL (.hcl) target files.
type LocalConfigLoader struct {
	environ func() []string
}

// NewLocalConfigLoader constructs a LocalConfigLoader that exposes the process
// environment to HCL files as env.NAME.
func NewLocalConfigLoader() *LocalConfigLoader {
	return &LocalConfigLoader{environ: os.Environ}
}

// yamlConfigFile is the top-level structure of a YAML target file.
type yamlConfigFile struct {
	Targets []yamlTarget `yaml:"targets"`
}

type yamlTarget struct {
	Name                string `yaml:"name"`
	Asset               string `yaml:"asset"`
	Host                string `yaml:"host"`
	StartMarker         string `yaml:"start_marker"`
	EndMarker           string `yaml:"end_marker"`
	Encoding            string `yaml:"encoding"`
	KeepStartMarkerLine *bool  `yaml:"keep_start_marker_line"`
	Declaration         string `yaml:"declaration"`
	Indent              string `yaml:"indent"`
}

// hclConfigFile is the top-level structure of an HCL target file.
type hclConfigFile struct {
	Targets []*hclTarget `hcl:"target,block"`
}

type hclTarget struct {
	Name                string  `hcl:"name,label"`
	Asset               string  `hcl:"asset"`
	Host                string  `hcl:"host"`
	StartMarker         string  `hcl:"start_marker"`
	EndMarker           string  `hcl:"end_marker"`
	Encoding            *string `hcl:"encoding,optional"`
	KeepStartMarkerLine *bool   `hcl:"keep_start_marker_line,optional"`
	Declaration         *string `hcl:"declaration,optional"`
	Indent              *string `hcl:"indent,optional"`
}

// Load reads the file at path and returns its targets.
func (l *LocalConfigLoader) Load(path m.Path) ([]m.Target, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var targets []m.Target

	switch strings.ToLower(filepath.Ext(abs)) {
	case ".yaml", ".yml":
		targets, err = l.loadYAML(abs)
	case ".hcl":
		targets, err = l.loadHCL(abs)
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .hcl)", filepath.Ext(abs))
	}

	if err != nil {
		return nil, err
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("config %s declares no targets", path)
	}

	return finalizeTargets(filepath.Dir(abs), targets)
}

func (l *LocalConfigLoader) loadYAML(path string) ([]m.Target, error) {
	// #nosec G304 - config path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var file yamlConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	targets := make([]m.Target, 0, len(file.Targets))
	for _, yt := range file.Targets {
		targets = append(targets, m.Target{
			Name:                yt.Name,
			Asset:               m.Path(yt.Asset),
			Host:                m.Path(yt.Host),
			StartMarker:         yt.StartMarker,
			EndMarker:           yt.EndMarker,
			Encoding:            yt.Encoding,
			KeepStartMarkerLine: boolOrDefault(yt.KeepStartMarkerLine, true),
			Declaration:         yt.Declaration,
			Indent:              yt.Indent,
		})
	}

	return targets, nil
}

func (l *LocalConfigLoader) loadHCL(path string) ([]m.Target, error) {
	parser := hclparse.NewParser()

	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var file hclConfigFile

	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(filepath.Dir(path)), &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	targets := make([]m.Target, 0, len(file.Targets))
	for _, ht := range file.Targets {
		targets = append(targets, m.Target{
			Name:                ht.Name,
			Asset:               m.Path(ht.Asset),
			Host:                m.Path(ht.Host),
			StartMarker:         ht.StartMarker,
			EndMarker:           ht.EndMarker,
			Encoding:            stringOrEmpty(ht.Encoding),
			KeepStartMarkerLine: boolOrDefault(ht.KeepStartMarkerLine, true),
			Declaration:         stringOrEmpty(ht.Declaration),
			Indent:              stringOrEmpty(ht.Indent),
		})
	}

	return targets, nil
}

// evalContext exposes env.NAME for every environment variable and config_dir
// for the directory holding the file.
func (l *LocalConfigLoader) evalContext(configDir string) *hcl.EvalContext {
	env := map[string]cty.Value{}

	if l.environ != nil {
		for _, kv := range l.environ() {
			name, value, ok := strings.Cut(kv, "=")
			if !ok || !hclsyntax.ValidIdentifier(name) {
				continue
			}

			env[name] = cty.StringVal(value)
		}
	}

	envVal := cty.EmptyObjectVal
	if len(env) > 0 {
		envVal = cty.ObjectVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":        envVal,
			"config_dir": cty.StringVal(configDir),
		},
	}
}

func finalizeTargets(baseDir string, targets []m.Target) ([]m.Target, error) {
	seen := make(map[string]int, len(targets))
	out := make([]m.Target, 0, len(targets))

	var errs []error

	for i, target := range targets {
		target.Asset = resolvePath(baseDir, target.Asset)
		target.Host = resolvePath(baseDir, target.Host)
		target = target.WithDefaults()

		if err := target.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("target %d (%s): %w", i+1, target.Name, err))
			continue
		}

		if prev, ok := seen[target.Name]; ok {
			errs = append(errs, fmt.Errorf("target %d: duplicate name %q (first declared as target %d)", i+1, target.Name, prev))
			continue
		}

		seen[target.Name] = i + 1
		out = append(out, target)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return out, nil
}

func resolvePath(baseDir string, p m.Path) m.Path {
	if p == "" || filepath.IsAbs(string(p)) {
		return p
	}

	return m.Path(filepath.Join(baseDir, string(p)))
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}

	return *v
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}
