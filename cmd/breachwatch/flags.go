package main

import (
	"flag"
)

// AppFlags holds the parsed command-line flags.
type AppFlags struct {
	ConfigFile string
	Mode       string
}

// ParseFlags parses the command line. Mode defaults to onetime; the config
// file falls back to the default search locations when not given.
func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	modeFlag := flag.String("mode", "", "Mode to run the tool: onetime or automated (overrides config file if set)")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	flag.Parse()

	flags := AppFlags{}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *modeFlag != "" {
		flags.Mode = *modeFlag
	} else if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	return flags
}
