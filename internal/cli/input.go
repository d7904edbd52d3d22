// Package cli handles cmd line input and corrections for testing and
// debugging various features.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	numberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	distanceStyle = lipgloss.NewStyle().Faint(true)
)

// InputHandler processes words from stdin and prints ranked corrections.
// It accepts flags to control behavior such as verbose distance output,
// clean output and input filtering.
type InputHandler struct {
	engine       spell.ISuggester
	log          *log.Logger
	verbose      bool
	clean        bool
	noFilter     bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic
// parameters. Output goes through an interactive logger without timestamps.
func NewInputHandler(engine spell.ISuggester, verbose, clean, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:   engine,
		log:      logger.New(""),
		verbose:  verbose,
		clean:    clean,
		noFilter: noFilter,
	}
}

// Start begins the interface loop. It continuously prompts for input, reads
// a line from stdin, and passes the trimmed token to handleInput for
// processing. The loop terminates on EOF or a read error.
func (h *InputHandler) Start() error {
	h.log.Print("spellserve CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a word and press Enter to check its spelling (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		word, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

// handleInput processes a single token. It filters junk input, asks the
// engine for corrections and prints the ranked list.
func (h *InputHandler) handleInput(word string) {
	h.requestCount++

	if !h.noFilter && !utils.IsValidWord(word) {
		h.log.Warnf("Skipping invalid input: '%s'", word)
		return
	}

	start := time.Now()
	result, err := h.engine.Suggest(word)
	elapsed := time.Since(start)
	if err != nil {
		h.log.Errorf("Suggest failed: %v", err)
		return
	}
	h.log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if result.Exact {
		h.log.Printf("'%s' is spelled correctly", word)
		return
	}
	if len(result.Candidates) == 0 {
		h.log.Warnf("No suggestions found for '%s'", word)
		return
	}

	if !h.clean {
		h.log.Print(headerStyle.Render("Did you mean?"))
	}
	indent := len(fmt.Sprint(len(result.Candidates)))
	for i, c := range result.Candidates {
		line := wordStyle.Render(c.Word)
		if !h.clean {
			line = fmt.Sprintf("%s %s", numberStyle.Render(fmt.Sprintf("%*d.", indent, i+1)), line)
		}
		if h.verbose {
			line += distanceStyle.Render(fmt.Sprintf(" (edit distance: %d)", c.Distance))
		}
		h.log.Print(line)
	}
}
