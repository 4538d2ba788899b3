package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const ConfigFileName = "flexgov.toml"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".flexgov"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Engine:         DefaultEngineParams(),
	}

	fileCfg, err := loadFlexgovConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ConfigFileName, err)
	}
	applyFileConfig(cfg, fileCfg)

	if from := v.GetString("from"); from != "" {
		if !common.IsHexAddress(from) {
			return nil, fmt.Errorf("invalid --from account %q", from)
		}
		cfg.Caller = common.HexToAddress(from)
	}

	return cfg, nil
}

// loadFlexgovConfig parses flexgov.toml from the project root
func loadFlexgovConfig(projectRoot string) (*FlexgovConfig, error) {
	path := filepath.Join(projectRoot, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FlexgovConfig{}, nil
		}
		return nil, err
	}

	var cfg FlexgovConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyFileConfig overlays flexgov.toml values onto the defaults
func applyFileConfig(cfg *RuntimeConfig, file *FlexgovConfig) {
	if file.Engine.VotingWindow.Duration > 0 {
		cfg.Engine.VotingWindow = file.Engine.VotingWindow.Duration
	}
	if file.Engine.EpochLength.Duration > 0 {
		cfg.Engine.EpochLength = file.Engine.EpochLength.Duration
	}
	if file.Engine.RateScale > 0 {
		cfg.Engine.RateScale = file.Engine.RateScale
	}
	if file.Engine.MaxClaimEpochs > 0 {
		cfg.Engine.MaxClaimEpochs = file.Engine.MaxClaimEpochs
	}
	if file.Engine.EscrowAccount != "" && common.IsHexAddress(file.Engine.EscrowAccount) {
		cfg.Engine.EscrowAccount = common.HexToAddress(file.Engine.EscrowAccount)
	}
	cfg.Genesis = file.Genesis
}

// FindProjectRoot walks up from current directory to find flexgov.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		marker := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(marker); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a flexgov project (%s not found)", ConfigFileName)
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	// Load .env from the project root before AutomaticEnv picks
	// variables up
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".flexgov"))

	v.SetEnvPrefix("FLEXGOV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Ignore error if no config file is present
	_ = v.ReadInConfig()

	bind := func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	}
	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)

	return v
}
