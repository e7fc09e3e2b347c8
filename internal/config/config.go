package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Artifact ArtifactConfig
	CORS     CORSConfig
	Metrics  MetricsConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// ArtifactConfig locates the model and scaler files. Relative paths are
// resolved against Dir, which defaults to the directory of the running binary.
type ArtifactConfig struct {
	Dir        string
	ModelPath  string
	ScalerPath string
}

// CORSConfig.AllowOrigins comes from a space-separated CORS_ALLOW_ORIGINS value.
type CORSConfig struct {
	AllowOrigins []string
}

type MetricsConfig struct {
	Enabled bool
}

type LoggerConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("PORT", 5000)
	v.SetDefault("ARTIFACT_DIR", "")
	v.SetDefault("MODEL_PATH", "model/car_price_model.json")
	v.SetDefault("SCALER_PATH", "model/scaler.json")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")
	v.SetDefault("LOGGER_MAX_SIZE_MB", 100)
	v.SetDefault("LOGGER_MAX_BACKUPS", 3)

	// Env
	v.AutomaticEnv()

	port := v.GetInt("PORT")
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", v.GetString("PORT"))
	}

	dir := v.GetString("ARTIFACT_DIR")
	if dir == "" {
		var err error
		dir, err = executableDir()
		if err != nil {
			return nil, fmt.Errorf("resolve artifact dir: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: port,
		},
		Artifact: ArtifactConfig{
			Dir:        dir,
			ModelPath:  v.GetString("MODEL_PATH"),
			ScalerPath: v.GetString("SCALER_PATH"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetStringSlice("CORS_ALLOW_ORIGINS"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Logger: LoggerConfig{
			Level:      v.GetString("LOGGER_LEVEL"),
			Format:     v.GetString("LOGGER_FORMAT"),
			File:       v.GetString("LOGGER_FILE"),
			MaxSizeMB:  v.GetInt("LOGGER_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOGGER_MAX_BACKUPS"),
		},
	}

	return cfg, nil
}

// Resolve returns p unchanged when absolute, otherwise joined onto the artifact dir.
func (a ArtifactConfig) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.Dir, p)
}

func (a ArtifactConfig) ModelFile() string  { return a.Resolve(a.ModelPath) }
func (a ArtifactConfig) ScalerFile() string { return a.Resolve(a.ScalerPath) }

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
