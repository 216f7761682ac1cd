// Package binfile provides the file-backed byte source and byte sink used by
// the view and set commands.
//
// A Source materialises a positioned range of a file as a hexview.Window.
// A Sink exposes an existing file as a patch.Sink for in-place overwrites.
// Both own their *os.File and must be closed by the caller.
package binfile
