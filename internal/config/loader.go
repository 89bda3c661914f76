package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/zkconfig/pkg/artifacts"
	"github.com/leapstack-labs/zkconfig/pkg/zksolc"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "ZKCONFIG_"

// keyDelim separates nested config keys. Library and output selection keys
// are file names, which contain dots.
const keyDelim = "::"

// configFileNames are searched in order.
var configFileNames = []string{"zkconfig.yaml", "zkconfig.yml", "zkconfig.toml"}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// flagKeys maps flag names to config keys. Flags not listed here use their
// name with dashes replaced by underscores.
var flagKeys = map[string]string{
	"force-evmla": "settings" + keyDelim + "forceEvmla",
	"system-mode": "settings" + keyDelim + "isSystem",
	"remapping":   "settings" + keyDelim + "remappings",
	// Handled after decoding.
	"config":  "",
	"library": "",
}

// findConfigFile returns the first config file present in dir.
func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// FindProjectRoot walks up from startDir to the first directory holding a
// config file. Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if findConfigFile(dir) != "" {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// parserFor picks the koanf parser for a config file by extension.
func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOMLParser()
	}
	return yaml.Parser()
}

// Load loads the project configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Without an explicit cfgFile the config file is searched upward from the
// working directory.
func Load(cfgFile string, flags *pflag.FlagSet) (*Project, error) {
	k := koanf.New(keyDelim)

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"compiler_path": DefaultCompilerPath,
		"base_dir":      DefaultBaseDir,
	}, keyDelim), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	root := cwd
	if cfgFile != "" {
		abs, err := filepath.Abs(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path %s: %w", cfgFile, err)
		}
		cfgFile = abs
		root = filepath.Dir(abs)
	} else if found := FindProjectRoot(cwd); found != "" {
		root = found
		cfgFile = findConfigFile(found)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), parserFor(cfgFile)); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment variables: ZKCONFIG_COMPILER_PATH -> compiler_path
	if err := k.Load(env.Provider(EnvPrefix, keyDelim, func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, keyDelim, k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			if key == "" {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Decode, using the JSON names of the compiler input
	var p Project
	if err := k.UnmarshalWithConf("", &p, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           &p,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Libraries given as file:Name:address flags
	if flags != nil && flags.Changed("library") {
		specs, _ := flags.GetStringSlice("library")
		libs, err := artifacts.ParseLibraries(specs)
		if err != nil {
			return nil, err
		}
		if p.Settings == nil {
			defaults := zksolc.DefaultSettings()
			p.Settings = &defaults
		}
		p.Settings.ApplyDefaults()
		p.Settings.Libraries.Merge(libs)
	}

	ApplyDefaults(&p)
	p.Root = root
	p.ConfigFile = cfgFile
	p.BaseDir = resolvePathRelativeTo(p.BaseDir, root)
	p.Output = resolvePathRelativeTo(p.Output, root)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &p, nil
}
