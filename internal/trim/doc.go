// Package trim cuts a downloaded video to the requested range by running
// ffmpeg. The source is probed with ffprobe when it is installed, progress is
// read from ffmpeg's -progress output and the untrimmed download is removed
// afterwards unless the user asked to keep it.
package trim
