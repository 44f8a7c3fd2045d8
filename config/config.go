// Package config loads service configuration from struct-tag defaults,
// environment variables, and command-line flags, in that order of
// precedence (flags win).
package config

import (
	"flag"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Config holds the settings for both binaries.
type Config struct {
	ListenAddr   string `env:"LISTEN_ADDR" default:":5000" description:"HTTP listen address"`
	DBPath       string `env:"DB_PATH" default:"database.db" description:"Path to the SQLite database"`
	LogLevel     string `env:"LOG_LEVEL" default:"info" description:"Logging level (debug, info, warn, error)"`
	RejectionLog string `env:"REJECTION_LOG" default:"output/suspicious_records.log" description:"Path to the ingest rejection log"`
	TripsCSV     string `env:"TRIPS_CSV" default:"" description:"Trip CSV export to load (loader only)"`
	ZonesCSV     string `env:"ZONES_CSV" default:"" description:"Zone CSV export to load (loader only)"`
}

// Load resolves the configuration. Environment variables are looked up as
// <prefix>_<tag>, e.g. TRIPS_LISTEN_ADDR.
func Load(prefix string, args []string) (*Config, error) {
	cfg := &Config{}

	if err := applyDefaults(cfg); err != nil {
		return nil, errors.Wrap(err, "loading defaults")
	}
	if err := applyEnv(prefix, cfg); err != nil {
		return nil, errors.Wrap(err, "loading env vars")
	}

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	registerFlags(cfg, flags)
	if err := flags.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing flags")
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if def := t.Field(i).Tag.Get("default"); def != "" {
			if err := setField(v.Field(i), def); err != nil {
				return errors.Wrapf(err, "default for %s", t.Field(i).Name)
			}
		}
	}
	return nil
}

func applyEnv(prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("env")
		if key == "" {
			continue
		}
		if val := os.Getenv(prefix + "_" + key); val != "" {
			if err := setField(v.Field(i), val); err != nil {
				return errors.Wrapf(err, "env var for %s", t.Field(i).Name)
			}
		}
	}
	return nil
}

func registerFlags(cfg *Config, flags *flag.FlagSet) {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := kebabCase(field.Tag.Get("env"))
		desc := field.Tag.Get("description")

		switch field.Type.Kind() {
		case reflect.String:
			flags.StringVar(v.Field(i).Addr().Interface().(*string), name, v.Field(i).String(), desc)
		case reflect.Int:
			flags.IntVar(v.Field(i).Addr().Interface().(*int), name, int(v.Field(i).Int()), desc)
		case reflect.Bool:
			flags.BoolVar(v.Field(i).Addr().Interface().(*bool), name, v.Field(i).Bool(), desc)
		}
	}
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return errors.Newf("unsupported field kind %s", field.Kind())
	}
	return nil
}

// kebabCase converts "LISTEN_ADDR" to "listen-addr".
func kebabCase(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", "-"))
}
