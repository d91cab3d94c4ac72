// Package download fetches the full video for a clip using the ytdlp library.
//
// Each configured Innertube player client is tried in turn until one yields a
// file. HTTP traffic goes through a retrying client and the file is written to
// <dir>/<title>_full.mp4 so the trimmer can derive the clip name from it.
package download
