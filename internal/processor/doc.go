// Package processor contains the orchestration logic for a piscribe run.
// It opens the dictionary store, reads the input text, dispatches between
// batch transcription, interactive review and dictionary maintenance, and
// writes the result. This package serves as the coordinator between the
// cli, dictionary, transcriber and review packages.
package processor
