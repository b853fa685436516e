// Package cli handles command line input for debugging and testing the
// suggestion session interactively
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"typeahead/internal/logger"
	"typeahead/internal/utils"
	"typeahead/pkg/session"
	"typeahead/pkg/suggest"
)

// out is the user-facing logger; diagnostics still go through the
// global log so -d controls them.
var out = logger.New("")

// InputHandler drives a suggestion session from stdin. Each typed line
// becomes the text buffer with the cursor at the end of the line; a
// ":N" command accepts the Nth shown suggestion and prints the spliced
// buffer.
type InputHandler struct {
	sess         *session.Session
	requestCount int
	noFilter     bool
}

// NewInputHandler wires a session around the given ranker
func NewInputHandler(ranker suggest.Suggester, noFilter bool) *InputHandler {
	return &InputHandler{
		sess:     session.New(ranker),
		noFilter: noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and
// passes the trimmed input to handleInput for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	out.Print("typeahead CLI")
	reader := bufio.NewReader(os.Stdin)
	out.Print("type text and press Enter to see suggestions for the last word")
	out.Print("accept one with :1..:N, Ctrl+C to exit")

	for {
		out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			h.handleAccept(strings.TrimPrefix(line, ":"))
			continue
		}
		h.handleInput(line)
	}
}

// handleInput feeds a buffer into the session and prints the resulting
// suggestion list
func (h *InputHandler) handleInput(buffer string) {
	h.requestCount++

	span := session.Locate(buffer, len(buffer))
	if !h.noFilter && span.Word != "" && !utils.IsValidInput(span.Word) {
		log.Infof("Skipping filtered word: '%s'", span.Word)
		h.sess.Dismiss()
		return
	}

	start := time.Now()
	h.sess.TextChanged(buffer, len(buffer))
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, span.Word)

	if !h.sess.Visible() {
		log.Warnf("No suggestions for word: '%s'", span.Word)
		return
	}

	suggestions := h.sess.Suggestions()
	out.Printf("Found %d suggestions for '%s':", len(suggestions), span.Word)
	for i, s := range suggestions {
		marker := " "
		if i == h.sess.SelectedIndex() {
			marker = ">"
		}
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s)
		out.Printf("%s %2d. %s", marker, i+1, clWord)
	}
}

// handleAccept moves the selection to the requested entry and commits it
func (h *InputHandler) handleAccept(arg string) {
	if !h.sess.Visible() {
		log.Error("Nothing to accept, type some text first")
		return
	}

	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(h.sess.Suggestions()) {
		log.Errorf("Invalid suggestion number: %q", arg)
		return
	}

	// Selection always starts at the first entry after a text change;
	// walking down n-1 times lands on the requested one.
	for h.sess.SelectedIndex() != n-1 {
		h.sess.ArrowDown()
	}

	splice := h.sess.Accept()
	if splice == nil {
		log.Error("Accept returned nothing")
		return
	}
	out.Printf("buffer: %q", splice.NewBuffer)
	out.Printf("cursor: %d", splice.NewCursor)
}
