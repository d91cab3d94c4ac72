package platform

// Package platform contains OS integration used by the display surfaces:
// downloads directory discovery, filename sanitizing, YouTube link detection
// and open/reveal of finished clips.
