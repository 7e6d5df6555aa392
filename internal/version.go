package internal

// Version is the current piscribe version.
const Version = "0.1.0"
