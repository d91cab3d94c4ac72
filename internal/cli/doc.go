package cli

// Package cli is the headless command line: cobra commands that load YAML
// options, run the same request controller as the desktop window and render its
// stages as mpb progress bars.
