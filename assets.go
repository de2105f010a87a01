package sundowner

import "embed"

// Assets holds the static files compiled into the binary: the
// stylesheet, the newsletter form script, and the favicon. They are
// served under /public/ ahead of the on-disk static dir.
//
//go:embed assets/*
var Assets embed.FS
