// Package frame layers zero-delimited stream framing on top of the cobs
// codec. A frame is the COBS encoding of a payload followed by a single
// 0x00 delimiter; because encodings are zero-free, a receiver can always
// resynchronize on the next delimiter after corruption or a partial read.
//
// Writer emits frames onto an io.Writer, Reader pulls decoded frames off an
// io.Reader, and Scanner walks frames already held in memory.
package frame
