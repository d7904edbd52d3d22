/*
Package main implements the spelling correction server and CLI application.

spellserve corrects misspelled single words against a dictionary of known
valid words using bounded Damerau-Levenshtein distance. It can operate as a
msgpack IPC server for integration with editors, or as a CLI application for
interactive checking and debugging.

The matching core prunes dictionary entries by length before paying for a
distance computation, and aborts each computation early once a word is known
to exceed the configured maximum distance. Candidates are ranked by
ascending distance with alphabetical tie-breaks, so identical inputs always
produce identical output.

# Usage

Start the server against a plain word list:

	spellserve -dict /usr/share/dict/words

Use a chunk directory and enable debug mode:

	spellserve -data /path/to/chunks -d

Run in CLI mode for interactive checking:

	spellserve -dict words.txt -c -v

The data directory holds chunked binary files named dict_0001.bin,
dict_0002.bin, etc. A plain text word list has one word per line.

# Configuration

Runtime configuration is managed through a TOML file:

	[suggest]
	max_distance = 2
	max_results = 5
	case_sensitive = false

	[dict]
	path = ""
	max_chunks = 0

The config file is automatically created with defaults if it doesn't exist.
Flags explicitly passed on the command line override the config file; flags
left at their defaults do not, so the priority is flag > file > builtin.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. Correction requests
are processed synchronously with microsecond timing information included in
responses.

Send a correction request:

	{"id": "req1", "w": "helo", "l": 5}

Receive candidates ranked by edit distance:

	{"id": "req1", "s": [{"w": "hell", "d": 1}, {"w": "hello", "d": 1}], "c": 2, "t": 145}

Dictionary management requests allow runtime adjustment of loaded chunks:

	{"id": "dict1", "action": "get_info"}
	{"id": "dict2", "action": "set_size", "chunks": 5}

# CLI Mode

CLI mode reads one word per line from stdin and prints a numbered
"Did you mean?" list. Junk input (digits, symbols, repeated characters) is
filtered by default; -no-filter disables that for debugging. -v appends the
edit distance to each suggestion.

# Command Line Flags

The following flags control application behavior:

	-dict string
	    Plain text word list file (one word per line)
	-data string
	    Directory containing binary chunk files
	-chunks int
	    Number of chunks to load (0 for all)
	-dist int
	    Maximum edit distance for candidates
	-n int
	    Maximum number of suggestions to return
	-cs  Case-sensitive matching
	-c   Run in CLI mode instead of server mode
	-v   Show edit distances next to suggestions (CLI mode)
	-clean
	    Suppress headers and numbering (CLI mode)
	-no-filter
	    Disable input filtering for debugging
	-config string
	    Custom config file path
	-d   Enable debug mode with detailed logging
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// appFlags holds the flags that select a mode or a source rather than
// mirroring a config key.
type appFlags struct {
	showVersion *bool
	dictFile    *string
	dataDir     *string
	cliMode     *bool
	configPath  *string
	debugMode   *bool
}

// registerFlags declares every flag on fs. Flags mirroring a config key take
// their default from defaults so -h shows real values; their parsed results
// reach the config only through applyFlagOverrides.
func registerFlags(fs *flag.FlagSet, defaults *config.Config) *appFlags {
	f := &appFlags{}
	f.showVersion = fs.Bool("version", false, "Show current version")
	f.dictFile = fs.String("dict", "", "Plain text word list file (one word per line)")
	f.dataDir = fs.String("data", "", "Directory containing binary chunk files")
	f.cliMode = fs.Bool("c", false, "Run CLI -- useful for testing and debugging")
	f.configPath = fs.String("config", "", "Custom config file path")
	f.debugMode = fs.Bool("d", false, "Toggle debug mode")

	fs.Int("chunks", defaults.Dict.MaxChunks, "Number of chunks to load (0 for all)")
	fs.Int("dist", defaults.Suggest.MaxDistance, "Maximum edit distance for candidates")
	fs.Int("n", defaults.Suggest.MaxResults, "Maximum number of suggestions to return")
	fs.Bool("cs", defaults.Suggest.CaseSensitive, "Case-sensitive matching")
	fs.Bool("v", defaults.CLI.Verbose, "Show edit distances next to suggestions (CLI mode)")
	fs.Bool("clean", defaults.CLI.CleanOutput, "Suppress headers and numbering (CLI mode)")
	fs.Bool("no-filter", defaults.CLI.NoFilter, "Disable input filtering (DBG only)")
	return f
}

// applyFlagOverrides copies the flags the user actually passed onto cfg.
// Flags left at their default keep the config file's values, so the
// priority is flag > config file > builtin default.
func applyFlagOverrides(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		get := f.Value.(flag.Getter).Get
		switch f.Name {
		case "dist":
			cfg.Suggest.MaxDistance = get().(int)
		case "n":
			cfg.Suggest.MaxResults = get().(int)
		case "cs":
			cfg.Suggest.CaseSensitive = get().(bool)
		case "chunks":
			cfg.Dict.MaxChunks = get().(int)
		case "v":
			cfg.CLI.Verbose = get().(bool)
		case "clean":
			cfg.CLI.CleanOutput = get().(bool)
		case "no-filter":
			cfg.CLI.NoFilter = get().(bool)
		}
	})
}

// main wires the dictionary, engine and chosen front-end together; the
// packages own all the logic and main only manages the flow.
func main() {
	sigHandler()

	flags := registerFlags(flag.CommandLine, config.DefaultConfig())
	flag.Parse()

	if *flags.showVersion {
		printVersion()
		os.Exit(0)
	}

	if *flags.debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*flags.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Active config: %s", config.GetActiveConfigPath(activePath))

	applyFlagOverrides(flag.CommandLine, appConfig)

	opts := dictionary.Options{CaseSensitive: appConfig.Suggest.CaseSensitive}
	dict, loader, source := buildDictionary(*flags.dictFile, *flags.dataDir, appConfig.Dict.MaxChunks, appConfig, opts)

	engine, err := spell.NewEngine(dict, spell.Config{
		MaxDistance:   appConfig.Suggest.MaxDistance,
		MaxResults:    appConfig.Suggest.MaxResults,
		CaseSensitive: appConfig.Suggest.CaseSensitive,
	})
	if err != nil {
		log.Fatalf("Failed to init engine: %v", err)
	}

	if *flags.cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxDistance", appConfig.Suggest.MaxDistance,
			"maxResults", appConfig.Suggest.MaxResults,
			"verbose", appConfig.CLI.Verbose,
			"noFilter", appConfig.CLI.NoFilter)

		inputHandler := cli.NewInputHandler(engine, appConfig.CLI.Verbose, appConfig.CLI.CleanOutput, appConfig.CLI.NoFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(source, dict.Len())

	srv := server.NewServer(engine, appConfig, loader)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildDictionary loads words from the -dict file or -data chunk directory,
// with the config file's dict.path as fallback. Exits on failure since
// nothing works without a dictionary.
func buildDictionary(dictFile, dataDir string, maxChunks int, appConfig *config.Config, opts dictionary.Options) (*dictionary.Dictionary, *dictionary.Loader, string) {
	if dictFile == "" && dataDir == "" && appConfig.Dict.Path != "" {
		if utils.FileExists(appConfig.Dict.Path) {
			dictFile = appConfig.Dict.Path
		} else {
			dataDir = appConfig.Dict.Path
		}
	}

	switch {
	case dictFile != "":
		if err := dictionary.ValidateFileFormat(dictFile, dictionary.FormatText); err != nil {
			log.Debugf("Word list validation: %v", err)
		}
		dict, err := dictionary.LoadFile(dictFile, opts)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		return dict, nil, dictFile
	case dataDir != "":
		pathResolver, err := utils.NewPathResolver()
		if err != nil {
			log.Fatalf("Failed to initialize path resolver: %v", err)
		}
		resolved, err := pathResolver.GetDataDir(dataDir)
		if err != nil {
			log.Fatalf("Failed to resolve data dir: %v", err)
		}
		log.Debugf("Using data dir at: %s", resolved)

		loader := dictionary.NewLoader(resolved, maxChunks, opts)
		dict, err := loader.Load()
		if err != nil {
			log.Fatalf("Failed to load chunks: %v", err)
		}
		return dict, loader, resolved
	default:
		log.Fatal("No dictionary specified: use -dict, -data or set dict.path in the config")
		return nil, nil, ""
	}
}

// printVersion displays version info with some styling.
func printVersion() {
	l := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ spellserve ] Did you mean...?")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(source string, words int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("dictionary: ( %s ) %d words", source, words)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
