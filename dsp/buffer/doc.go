// Package buffer provides a reusable float64 buffer and a Framer that cuts
// a sample stream into contiguous fixed-size analysis frames.
package buffer
