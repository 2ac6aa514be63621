package config

const (
	// The wasm build is served on a fixed local port. Browsers only
	// expose SharedArrayBuffer to cross-origin isolated pages, so the
	// app is loaded through this server rather than from file://.
	Host = "127.0.0.1"
	Port = 3000
)
