// Package watch implements the ChangeWatcher port on fsnotify. It
// emits paths of created or modified regular files in a directory so
// watch mode can import them as they appear. Hidden files, directories
// and editor write bursts are filtered before a path is emitted.
package watch
