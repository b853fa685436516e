package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"typeahead/internal/utils"
	"typeahead/pkg/config"
	"typeahead/pkg/session"
	"typeahead/pkg/suggest"
)

// Server handles the IPC for one suggestion session
type Server struct {
	ranker  *suggest.Ranker
	sess    *session.Session
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a completion server using stdin/stdout for IPC
func NewServer(ranker *suggest.Ranker, cfg *config.Config) *Server {
	return NewServerWithIO(ranker, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on custom streams, used by tests
// and embedded hosts
func NewServerWithIO(ranker *suggest.Ranker, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		ranker:  ranker,
		sess:    session.New(ranker),
		cfg:     cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC events. Returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request EventRequest
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding event: %v", err)
			s.sendError("", "Invalid msgpack event", 400)
			return err
		}
		s.handleEvent(request)
	}
}

// handleEvent dispatches a single decoded event
func (s *Server) handleEvent(request EventRequest) {
	switch request.Event {
	case "text_changed":
		s.handleTextChanged(request)
	case "arrow_up":
		s.sess.ArrowUp()
		s.sendState(request.ID, 0)
	case "arrow_down":
		s.sess.ArrowDown()
		s.sendState(request.ID, 0)
	case "accept":
		s.handleAccept(request)
	case "dismiss":
		s.sess.Dismiss()
		s.sendState(request.ID, 0)
	case "rank":
		s.handleRank(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown event: %s", request.Event), 400)
	}
}

// handleTextChanged validates the buffer and re-ranks the word under
// the cursor
func (s *Server) handleTextChanged(request EventRequest) {
	if max := s.cfg.Server.MaxBufferLen; max > 0 && len(request.Buffer) > max {
		s.sendError(request.ID, fmt.Sprintf("Buffer exceeds maximum length of %d bytes", max), 400)
		log.Debug("Buffer too long in event")
		return
	}

	start := time.Now()
	s.sess.TextChanged(request.Buffer, request.Cursor)
	s.sendState(request.ID, time.Since(start).Microseconds())
}

// handleAccept commits the selected suggestion, if any. The host
// applies NewBuffer and NewCursor before restoring focus.
func (s *Server) handleAccept(request EventRequest) {
	var word string
	if s.sess.Visible() {
		word = s.sess.Suggestions()[s.sess.SelectedIndex()]
	}

	start := time.Now()
	splice := s.sess.Accept()
	elapsed := time.Since(start).Microseconds()

	if splice == nil {
		s.send(AcceptResponse{ID: request.ID, Accepted: false, TimeTaken: elapsed})
		return
	}

	s.send(AcceptResponse{
		ID:        request.ID,
		Accepted:  true,
		Word:      word,
		NewBuffer: splice.NewBuffer,
		NewCursor: splice.NewCursor,
		TimeTaken: elapsed,
	})
}

// handleRank answers a one-shot ranking request without touching the
// session
func (s *Server) handleRank(request EventRequest) {
	prefix := request.Prefix
	if prefix == "" {
		s.sendError(request.ID, "Missing 'p' parameter", 400)
		log.Debug("Prefix is empty in rank event")
		return
	}
	if max := s.cfg.Server.MaxWordLen; max > 0 && len(prefix) > max {
		s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", max), 400)
		log.Debug("Prefix too long in rank event")
		return
	}
	if s.cfg.Server.EnableFilter && !utils.IsValidInput(prefix) {
		s.send(RankResponse{ID: request.ID, Suggestions: nil, Count: 0})
		log.Debug("Prefix rejected by input filter")
		return
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.cfg.Suggest.Limit
	}
	if s.cfg.Server.MaxLimit > 0 && limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	suggestions := s.ranker.RankWithLimit(prefix, limit)
	elapsed := time.Since(start).Microseconds()

	s.send(RankResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed,
	})
}

// sendState encodes the session state the rendering layer needs
func (s *Server) sendState(id string, elapsed int64) {
	s.send(StateResponse{
		ID:          id,
		Visible:     s.sess.Visible(),
		Suggestions: s.sess.Suggestions(),
		Selected:    s.sess.SelectedIndex(),
		Count:       len(s.sess.Suggestions()),
		TimeTaken:   elapsed,
	})
}

// send marshals the given response and writes it to the host
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(EventError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
