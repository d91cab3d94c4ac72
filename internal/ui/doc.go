package ui

// Package ui contains the Fyne-based desktop window: a single form that collects
// the video URL and the clip range, runs the request controller on a worker
// goroutine and renders its progress, status log and result. All UI strings are
// localized via Localization.
