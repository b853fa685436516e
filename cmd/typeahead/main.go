// Copyright 2026 The Typeahead Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the typeahead suggestion server and CLI
application.

Typeahead provides inline autocomplete and spell correction for smart
text inputs: given a text buffer and a cursor offset it finds the word
under the cursor, ranks a domain vocabulary against it (prefix matches
first, then bounded-edit-distance fuzzy matches), and splices an
accepted suggestion back into the buffer while repositioning the
cursor.

The server mode drives one suggestion session over MessagePack IPC on
stdin/stdout, which is how editor hosts and the web app's smart input
control embed the engine. CLI mode provides an interactive loop for
testing and debugging the same session logic with human-readable
output.

# Usage

Start the server with the embedded vocabulary:

	typeahead

Use a custom word list and enable debug logging:

	typeahead -dict /path/to/words.txt -d

Run in CLI mode for interactive testing:

	typeahead -c -limit 10

# Configuration

Runtime configuration is managed through a TOML file that holds the
ranking tunables, server limits, and CLI defaults:

	[suggest]
	limit = 5
	min_word_length = 2
	max_edit_distance = 2

	[server]
	max_limit = 16
	max_buffer_len = 8192
	max_word_len = 60

The config file is automatically created with defaults if it doesn't
exist. The suggest defaults (5, 2, 2) are the compatibility contract
with existing hosts; flags override them per run without touching the
file.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Session
events are processed synchronously with microsecond timing information
included in responses.

Send a text change event:

	{"id": "ev1", "ev": "text_changed", "buf": "please sche", "cur": 11}

Receive the session state to render:

	{"id": "ev1", "v": true, "s": ["schedule", "scheduled"], "sel": 0, "c": 2, "t": 110}

Navigation ("arrow_up", "arrow_down"), "accept", "dismiss", one-shot
"rank" requests, and "health" round out the event set; see pkg/server
for the message details.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"typeahead/internal/cli"
	"typeahead/internal/logger"
	"typeahead/internal/utils"
	"typeahead/pkg/config"
	"typeahead/pkg/dictionary"
	"typeahead/pkg/server"
	"typeahead/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "typeahead"
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

// main wires config, dictionary, ranker, and either the IPC server or
// the CLI loop. It does not implement logic for them and only manages
// the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Plain text word list to load instead of the embedded vocabulary")
	configPath := flag.String("config", "", "Custom config.toml path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.Suggest.Limit, "Number of suggestions to return")
	minWord := flag.Int("minword", defaults.Suggest.MinWordLength, "Minimum word length for suggestions")
	maxDist := flag.Int("maxdist", defaults.Suggest.MaxEditDistance, "Maximum edit distance for fuzzy matches")
	noFilter := flag.Bool("no-filter", defaults.CLI.DefaultNoFilter, "Disable CLI input filtering (shows suggestions for numeric or repetitive input)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))
	}

	// Flags beat the config file for the ranking tunables.
	opts := appConfig.Suggest.Options()
	if *limit != defaults.Suggest.Limit {
		opts.Limit = *limit
	}
	if *minWord != defaults.Suggest.MinWordLength {
		opts.MinWordLength = *minWord
	}
	if *maxDist != defaults.Suggest.MaxEditDistance {
		opts.MaxEditDistance = *maxDist
	}

	dict := loadDictionary(*dictPath)
	log.Debugf("Dictionary ready: %d words", dict.Len())

	ranker := suggest.NewRanker(dict, opts)

	if *cliMode {
		log.SetReportTimestamp(false)

		// CLI overrides from the config file apply when no flag was given.
		if *limit == defaults.Suggest.Limit && appConfig.CLI.DefaultLimit > 0 {
			opts.Limit = appConfig.CLI.DefaultLimit
			ranker = suggest.NewRanker(dict, opts)
		}
		cliNoFilter := *noFilter || appConfig.CLI.DefaultNoFilter

		log.Debug("CLI info:",
			"limit", opts.Limit,
			"minWord", opts.MinWordLength,
			"maxDist", opts.MaxEditDistance,
			"noFilter", cliNoFilter)

		inputHandler := cli.NewInputHandler(ranker, cliNoFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(ranker, appConfig)

	showStartupInfo(dict.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadDictionary resolves and loads the word list, falling back to the
// embedded vocabulary.
func loadDictionary(userPath string) *dictionary.Dictionary {
	if userPath == "" {
		log.Debug("Using embedded vocabulary")
		return dictionary.Default()
	}

	resolved := userPath
	if pathResolver, err := utils.NewPathResolver(); err == nil {
		if found, ok := pathResolver.GetWordListPath(userPath); ok {
			resolved = found
		}
	} else {
		log.Warnf("Failed to initialize path resolver: %v", err)
	}

	dict, err := dictionary.Load(resolved)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	return dict
}

// printVersion shows the styled version banner.
func printVersion() {
	banner := logger.New("")

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Printf("[ %s ] inline autocomplete and spell correction", AppName)
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("vocabulary: %d words", wordCount)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
