// Package config loads the application's configuration from environment
// variables and documented defaults, warning and falling back whenever a
// supplied numeric value fails validation rather than aborting startup.
// It mirrors the source implementation's config module (AppConfig /
// ApiConfig / OptimizerConfig), rebuilt on top of spf13/viper with
// env > default precedence. No command-line flags are read here; the CLI
// front end does not use this package.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/91xusir/boxpacker3d/internal/packconfig"
)

const envPrefix = "BOXPACKER3D"

// AppConfig is the complete, resolved configuration for a running process.
type AppConfig struct {
	API       APIConfig
	Optimizer packconfig.Config
}

// APIConfig configures the HTTP server front end.
type APIConfig struct {
	Host string
	Port int
}

const (
	defaultHost     = "0.0.0.0"
	defaultPort     = 8080
	defaultLogLevel = "info"
)

// FromEnv resolves a complete AppConfig from environment variables
// (prefixed BOXPACKER3D_) falling back to documented defaults for anything
// absent or invalid. log receives a warning for every rejected override.
func FromEnv(log *logrus.Logger) AppConfig {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("host", defaultHost)
	v.SetDefault("port", defaultPort)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("grid_step", packconfig.DefaultGridStep)
	v.SetDefault("support_ratio", packconfig.DefaultSupportRatio)
	v.SetDefault("height_epsilon", packconfig.DefaultHeightEpsilon)
	v.SetDefault("general_epsilon", packconfig.DefaultGeneralEpsilon)
	v.SetDefault("balance_limit_ratio", packconfig.DefaultBalanceLimitRatio)
	v.SetDefault("footprint_cluster_tolerance", packconfig.DefaultFootprintClusterTolerance)
	v.SetDefault("allow_rotations", packconfig.DefaultAllowItemRotation)

	optimizer := packconfig.NewBuilder().
		GridStep(validatedFloat(log, v, "grid_step", packconfig.DefaultGridStep, positive, "must be greater than 0")).
		SupportRatio(validatedFloat(log, v, "support_ratio", packconfig.DefaultSupportRatio, unitInterval, "must be between 0 and 1")).
		HeightEpsilon(validatedFloat(log, v, "height_epsilon", packconfig.DefaultHeightEpsilon, positive, "must be greater than 0")).
		GeneralEpsilon(validatedFloat(log, v, "general_epsilon", packconfig.DefaultGeneralEpsilon, positive, "must be greater than 0")).
		BalanceLimitRatio(validatedFloat(log, v, "balance_limit_ratio", packconfig.DefaultBalanceLimitRatio, unitInterval, "must be between 0 and 1")).
		FootprintClusterTolerance(validatedFloat(log, v, "footprint_cluster_tolerance", packconfig.DefaultFootprintClusterTolerance, footprintRange, "must be between 0 and 0.5")).
		AllowItemRotation(v.GetBool("allow_rotations")).
		Build()

	return AppConfig{
		API: APIConfig{
			Host: v.GetString("host"),
			Port: validatedPort(log, v),
		},
		Optimizer: optimizer,
	}
}

func positive(v float64) bool       { return v > 0 }
func unitInterval(v float64) bool   { return v >= 0 && v <= 1 }
func footprintRange(v float64) bool { return v >= 0 && v <= 0.5 }

// validatedFloat reads a float override from v, falling back to fallback
// when the key is absent, and falling back with a warning when the value is
// unparsable or fails valid.
func validatedFloat(log *logrus.Logger, v *viper.Viper, key string, fallback float64, valid func(float64) bool, reason string) float64 {
	raw := v.GetString(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warnf("could not parse %s (%q): %v. Using %v.", envKey(key), raw, err, fallback)
		return fallback
	}
	if !valid(parsed) {
		log.Warnf("%s (%v) %s. Using %v.", envKey(key), parsed, reason, fallback)
		return fallback
	}
	return parsed
}

func validatedPort(log *logrus.Logger, v *viper.Viper) int {
	port := v.GetInt("port")
	if port <= 0 || port > 65535 {
		log.Warnf("%s must be between 1 and 65535. Using %d.", envKey("port"), defaultPort)
		return defaultPort
	}
	return port
}

func envKey(key string) string {
	return fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(key))
}
