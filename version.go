package lineviz

// Version is overridden at build time with -ldflags "-X github.com/aretw0/lineviz.Version=...".
var Version = "dev"
