// Package clip holds the request controller: it validates a clip request,
// asks the download collaborator for the full video, asks the trim
// collaborator for the clip, and reports every stage to a single listener.
//
// The controller owns no media logic. Collaborators are injected through the
// Downloader and Trimmer interfaces, and every failure is returned as an
// *Error carrying an ErrorKind.
package clip
