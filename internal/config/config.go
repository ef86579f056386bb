// Package config 从 YAML 文件或环境变量加载输出目录等配置。
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// 配置路径与环境变量名
const (
	defaultConfigPath = "config.yaml"
	defaultOutputDir  = "market_daily"
	envConfigPath     = "CONFIG_PATH"
	envOutputDir      = "MARKETDAILY_OUTPUT_DIR"
)

type Config struct {
	OutputDir string `yaml:"output_dir"`
}

// Load 先读 envConfigPath 指定文件（默认 config.yaml），再被环境变量覆盖；
// 都没给时输出目录取 market_daily。配置文件缺失不算错误。
func Load() *Config {
	cfg := &Config{}
	path := os.Getenv(envConfigPath)
	if path == "" {
		path = defaultConfigPath
	}
	if b, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(b, cfg)
	}
	if v := os.Getenv(envOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = defaultOutputDir
	}
	return cfg
}
