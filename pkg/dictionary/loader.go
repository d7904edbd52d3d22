package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// ChunkInfo contains metadata about one chunk file in a data directory.
type ChunkInfo struct {
	ID        int
	Filename  string
	WordCount int
}

// Loader reads word sets from a data directory of chunk files named
// dict_0001.bin, dict_0002.bin, ... and builds immutable Dictionary
// snapshots. Loading happens strictly before the matching core runs; there
// is no background loading, and resizing produces a fresh snapshot rather
// than mutating a live dictionary.
type Loader struct {
	dirPath   string
	maxChunks int
	opts      Options
}

// NewLoader creates a loader for dirPath. maxChunks caps how many chunks a
// Load call reads; zero means all available.
func NewLoader(dirPath string, maxChunks int, opts Options) *Loader {
	return &Loader{dirPath: dirPath, maxChunks: maxChunks, opts: opts}
}

// Available scans the directory for chunk files, sorted by ID.
func (l *Loader) Available() ([]ChunkInfo, error) {
	pattern := filepath.Join(l.dirPath, "dict_*.bin")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunk files: %w", err)
	}

	var chunks []ChunkInfo
	for _, file := range files {
		basename := filepath.Base(file)
		idStr := strings.TrimSuffix(strings.TrimPrefix(basename, "dict_"), ".bin")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		count, err := readChunkHeader(file)
		if err != nil {
			log.Warnf("Failed to read header of chunk %s: %v", file, err)
			continue
		}
		chunks = append(chunks, ChunkInfo{ID: id, Filename: file, WordCount: count})
	}

	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].ID < chunks[j].ID
	})
	return chunks, nil
}

// Load reads up to maxChunks chunk files and builds a Dictionary.
func (l *Loader) Load() (*Dictionary, error) {
	return l.LoadChunks(l.maxChunks)
}

// LoadChunks reads the first count chunks (zero means all) and builds a
// fresh Dictionary snapshot. The previous snapshot, if any, is untouched.
func (l *Loader) LoadChunks(count int) (*Dictionary, error) {
	chunks, err := l.Available()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no chunk files found in %s", l.dirPath)
	}
	if count <= 0 || count > len(chunks) {
		count = len(chunks)
	}

	var words []string
	for _, chunk := range chunks[:count] {
		chunkWords, err := ReadChunk(chunk.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to load chunk %d: %w", chunk.ID, err)
		}
		words = append(words, chunkWords...)
		log.Debugf("Chunk %d loaded: %d words", chunk.ID, len(chunkWords))
	}

	dict := New(words, l.opts)
	log.Debugf("Dictionary built from %d chunks: %d unique words", count, dict.Len())
	return dict, nil
}

// readChunkHeader reads the word count from a chunk file's header.
func readChunkHeader(filename string) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var count int32
	if err := binary.Read(file, binary.LittleEndian, &count); err != nil {
		return 0, err
	}
	return int(count), nil
}

// ReadChunk reads every word from a chunk file: an int32 little-endian word
// count header followed by uint16 length-prefixed UTF-8 words.
func ReadChunk(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open chunk file %s: %w", filename, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	var total int32
	if err := binary.Read(reader, binary.LittleEndian, &total); err != nil {
		return nil, fmt.Errorf("failed to read chunk header: %w", err)
	}

	words := make([]string, 0, total)
	for i := 0; i < int(total); i++ {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read word length: %w", err)
		}
		buf := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, fmt.Errorf("failed to read word: %w", err)
		}
		words = append(words, string(buf))
	}
	return words, nil
}

// WriteChunk writes words to filename in the chunk format ReadChunk expects.
func WriteChunk(filename string, words []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chunk file %s: %w", filename, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := binary.Write(writer, binary.LittleEndian, int32(len(words))); err != nil {
		return fmt.Errorf("failed to write chunk header: %w", err)
	}
	for _, w := range words {
		if err := binary.Write(writer, binary.LittleEndian, uint16(len(w))); err != nil {
			return fmt.Errorf("failed to write word length: %w", err)
		}
		if _, err := writer.WriteString(w); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
	}
	return writer.Flush()
}

// LoadWordList builds a Dictionary from newline-delimited words.
func LoadWordList(r io.Reader, opts Options) (*Dictionary, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return New(words, opts), nil
}

// LoadFile builds a Dictionary from a newline-delimited word list file.
func LoadFile(path string, opts Options) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()
	return LoadWordList(file, opts)
}
