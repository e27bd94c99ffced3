// Command hufftable reads a message from a file (or stdin when no file is
// given), derives the Huffman code table for it, and prints one
// "'<symbol>' --> <codeword>" line per distinct symbol.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bitforest/huffman"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	message, err := readMessage(os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read message")
	}

	freqs := huffman.CountBytes(message)
	root, err := huffman.BuildTree(huffman.BuildForest(freqs))
	if err != nil {
		if errors.Is(err, huffman.ErrEmptyForest) {
			logger.Fatal().Msg("message is empty; nothing to encode")
		}
		logger.Fatal().Err(err).Msg("failed to build Huffman tree")
	}

	table := huffman.BuildCodeTable(root)
	logger.Info().
		Int("symbols", len(table)).
		Int("messageBytes", len(message)).
		Uint64("encodedBits", table.EncodedBits(freqs)).
		Msg("built code table")

	if _, err := table.Dump(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("failed to write code table")
	}
}

func readMessage(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
