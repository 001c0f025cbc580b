// Package frame implements TF1 (TTREE Frame v1), a small transport
// envelope for sequencing complete TTREE nodes over a byte stream.
//
// A TTREE-encoded tree is self-delimiting on its own — Decode consumes
// exactly one top-level node and stops — but a stream that carries many
// trees back to back still needs a way to multiplex independent
// conversations, order them, detect corruption, and mark the end of a
// stream. TF1 supplies exactly that, and nothing else: it does not
// interpret the payload, which is passed to ttree.Decode unchanged.
//
// A frame's header is itself written with the ttree package's Buffer
// and varint helpers, so TF1 shares its integer encoding with the
// format it carries rather than inventing a second one.
package frame
