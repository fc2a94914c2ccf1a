// Package batch runs the compositor over an inbox directory.
//
// A pass scans the inbox for supported images, composes each one onto the
// configured canvas, writes <stem><suffix>.<ext> into the output directory
// and optionally moves the source into the done directory. Files are
// processed concurrently and independently: one failing file is logged and
// counted, never aborting the pass. Watch repeats the pass whenever the inbox
// changes.
package batch
