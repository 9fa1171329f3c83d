package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Capture files hold one byte per sample: 0 while the demodulator reports
// carrier, 1 while the line idles. Files ending in .zst are zstd compressed.

// ReplayCaptureFile streams a capture file through the receiver at full
// speed and returns the number of samples fed.
func ReplayCaptureFile(path string, receiver *Receiver) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open capture file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return 0, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		defer dec.Close()
		reader = dec
	}

	var total int64
	buf := make([]uint8, 64*1024)
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			// Normalize to 0/1: recorded files are already binary but hand
			// edited captures sometimes use ASCII '0'/'1'.
			chunk := buf[:n]
			for i, b := range chunk {
				if b == '0' {
					chunk[i] = 0
				} else if b == '1' {
					chunk[i] = 1
				}
			}
			receiver.Feed(chunk)
			total += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("failed to read capture file: %w", err)
		}
	}
	return total, nil
}

// CaptureRecorder writes the live sample stream to a timestamped file for
// later replay.
type CaptureRecorder struct {
	file   *os.File
	writer io.Writer
	zw     *zstd.Encoder
	mu     sync.Mutex
	path   string
}

// NewCaptureRecorder creates the capture directory and opens a new file.
func NewCaptureRecorder(cfg RecorderConfig) (*CaptureRecorder, error) {
	if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create capture directory: %w", err)
	}
	name := fmt.Sprintf("capture_%s.bin", time.Now().Format("20060102_150405"))
	if cfg.Compress {
		name += ".zst"
	}
	path := filepath.Join(cfg.Directory, name)
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create capture file: %w", err)
	}

	r := &CaptureRecorder{file: file, writer: file, path: path}
	if cfg.Compress {
		zw, err := zstd.NewWriter(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		r.zw = zw
		r.writer = zw
	}
	log.Printf("[Capture] Recording samples to %s", path)
	return r, nil
}

// Write appends a sample chunk.
func (r *CaptureRecorder) Write(samples []uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.writer.Write(samples); err != nil {
		log.Printf("[Capture] Failed to write capture data: %v", err)
	}
}

// Close flushes and closes the capture file.
func (r *CaptureRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.zw != nil {
		if err := r.zw.Close(); err != nil {
			log.Printf("[Capture] Failed to flush zstd stream: %v", err)
		}
	}
	return r.file.Close()
}
