package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spelling corrections. Requests are processed
// one at a time; the engine is swapped wholesale on set_size, so no locking
// is needed.
type Server struct {
	engine *spell.Engine
	cfg    *config.Config
	loader *dictionary.Loader // nil when the dictionary came from a word list
	chunks int
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a correction server using stdin/stdout for IPC. loader
// may be nil; dictionary set_size requests then report an error.
func NewServer(engine *spell.Engine, cfg *config.Config, loader *dictionary.Loader) *Server {
	return NewServerWithIO(engine, cfg, loader, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit streams.
func NewServerWithIO(engine *spell.Engine, cfg *config.Config, loader *dictionary.Loader, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine: engine,
		cfg:    cfg,
		loader: loader,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "":
		s.handleSuggest(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	case "get_info":
		s.handleDictInfo(request)
	case "set_size":
		s.handleDictResize(request)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleSuggest processes a correction request. It validates the word,
// asks the engine for candidates and sends the ranked response with
// microsecond timing.
func (s *Server) handleSuggest(request Request) {
	word := request.Word
	if word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in request")
		return
	}
	if len(word) > s.cfg.Suggest.MaxWordLen {
		s.sendError(request.ID, fmt.Sprintf("Word exceeds maximum length of %d characters", s.cfg.Suggest.MaxWordLen), 400)
		log.Debug("Word is too long in request")
		return
	}

	cfg := s.engine.Config()
	if request.Limit > 0 {
		cfg.MaxResults = request.Limit
	}

	start := time.Now()
	result, err := spell.Suggest(word, s.dict(), cfg)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(request.ID, err.Error(), 500)
		log.Errorf("Suggest failed for %q: %v", word, err)
		return
	}

	candidates := make([]ResponseCandidate, len(result.Candidates))
	for i, c := range result.Candidates {
		candidates[i] = ResponseCandidate{Word: c.Word, Distance: c.Distance}
	}

	s.send(SuggestResponse{
		ID:         request.ID,
		Candidates: candidates,
		Count:      len(candidates),
		Exact:      result.Exact,
		TimeTaken:  elapsed.Microseconds(),
	})
}

// handleDictInfo reports the loaded dictionary's size.
func (s *Server) handleDictInfo(request Request) {
	response := DictionaryResponse{
		ID:           request.ID,
		Status:       "ok",
		TotalWords:   s.dict().Len(),
		LoadedChunks: s.chunks,
	}
	if s.loader != nil {
		if available, err := s.loader.Available(); err == nil {
			response.AvailableChunks = len(available)
		}
	}
	s.send(response)
}

// handleDictResize rebuilds the engine on a fresh dictionary snapshot with
// the requested chunk count.
func (s *Server) handleDictResize(request Request) {
	if s.loader == nil {
		s.send(DictionaryResponse{ID: request.ID, Status: "error",
			Error: "dictionary was not loaded from chunks"})
		return
	}
	if request.Chunks == nil || *request.Chunks < 1 {
		s.send(DictionaryResponse{ID: request.ID, Status: "error",
			Error: "set_size requires a positive 'chunks' value"})
		return
	}

	dict, err := s.loader.LoadChunks(*request.Chunks)
	if err != nil {
		s.send(DictionaryResponse{ID: request.ID, Status: "error", Error: err.Error()})
		return
	}
	engine, err := spell.NewEngine(dict, s.engine.Config())
	if err != nil {
		s.send(DictionaryResponse{ID: request.ID, Status: "error", Error: err.Error()})
		return
	}
	s.engine = engine
	s.chunks = *request.Chunks
	log.Debugf("Dictionary resized to %d chunks (%d words)", s.chunks, dict.Len())

	s.send(DictionaryResponse{
		ID:           request.ID,
		Status:       "ok",
		TotalWords:   dict.Len(),
		LoadedChunks: s.chunks,
	})
}

// dict returns the engine's dictionary via a fresh Suggest-compatible
// handle. Kept as a helper so resize swaps stay in one place.
func (s *Server) dict() *dictionary.Dictionary {
	return s.engine.Dictionary()
}

// send encodes a response onto the output stream.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response.
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
