package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mliezun/glox/internal"
	"github.com/peterh/liner"
)

// runPrompt reads source a chunk at a time and runs it against the same
// session, so declarations persist between entries
func runPrompt(session *internal.Interpreter, cfg *config) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := expandHome(cfg.HistoryFile)
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		source, err := readChunk(line, cfg)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(source) == "" {
			continue
		}
		line.AppendHistory(source)
		session.Run(source)
	}
}

// readChunk keeps reading lines while a brace is left open
func readChunk(line *liner.State, cfg *config) (string, error) {
	input, err := line.Prompt(cfg.Prompt)
	if err != nil {
		return "", err
	}
	chunk := input
	for openBraces(chunk) > 0 {
		input, err = line.Prompt(cfg.ContinuePrompt)
		if err != nil {
			return "", err
		}
		chunk += "\n" + input
	}
	return chunk, nil
}

// openBraces counts unclosed '{' ignoring strings and comments
func openBraces(source string) int {
	depth := 0
	inString := false
	for i := 0; i < len(source); i++ {
		c := source[i]
		if inString {
			if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '/':
			if i+1 < len(source) && source[i+1] == '/' {
				for i < len(source) && source[i] != '\n' {
					i++
				}
			}
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth
}
