// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fillprobe/fillprobe/lib/chunk"
)

// Record is the fingerprint of one successfully written chunk. The
// ordered record sequence is the handoff contract between the two
// phases: its length is always the count of chunks actually on storage,
// never the count that was requested.
type Record struct {
	Index  int
	Digest chunk.Digest
}

// Options configures a probe run.
type Options struct {
	// ChunkCount is the requested number of chunks (may be zero).
	ChunkCount int

	// ChunkSize is the uniform size of every chunk in bytes.
	ChunkSize int64

	// Progress receives per-chunk events. Nil means no reporting.
	Progress Reporter

	// Logger receives diagnostics. Nil means discard.
	Logger *slog.Logger
}

// Probe is the run state: configuration, the growing record sequence,
// and byte counters. It is created fresh per invocation, mutated only
// by the phase that is currently running, and never persisted.
type Probe struct {
	storage  Storage
	count    int
	size     int64
	progress Reporter
	logger   *slog.Logger

	records       []Record
	bytesWritten  int64
	verified      int
	bytesVerified int64
}

// New creates a probe over the given storage. Configuration errors are
// reported here, before anything touches the target.
func New(storage Storage, options Options) (*Probe, error) {
	if options.ChunkCount < 0 {
		return nil, fmt.Errorf("chunk count must be non-negative, got %d", options.ChunkCount)
	}
	if options.ChunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", options.ChunkSize)
	}

	progress := options.Progress
	if progress == nil {
		progress = NopReporter{}
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Probe{
		storage:  storage,
		count:    options.ChunkCount,
		size:     options.ChunkSize,
		progress: progress,
		logger:   logger,
	}, nil
}

// Run executes both phases in sequence and returns the summary. Any
// returned error is fatal for the run; storage exhaustion during the
// write phase is not an error.
func (p *Probe) Run() (*Summary, error) {
	if err := p.Write(); err != nil {
		return nil, err
	}
	if err := p.Verify(); err != nil {
		return nil, err
	}
	return p.Summary(), nil
}

// Write is the first phase: for each index in ascending order, generate
// a random chunk, write it to storage, and record the digest of the
// in-memory buffer. The digest is deliberately not re-derived from the
// file — the verify phase owns the round trip through the medium.
func (p *Probe) Write() error {
	p.logStartingConditions()

	p.progress.PhaseStarted(PhaseWrite, p.count)
	defer p.progress.PhaseFinished(PhaseWrite)

	for index := 0; index < p.count; index++ {
		data, err := chunk.Generate(int(p.size))
		if err != nil {
			return fmt.Errorf("generating chunk %d: %w", index, err)
		}

		name := chunk.FileName(index)
		writeErr := p.storage.WriteChunk(name, data)

		switch classifyWrite(writeErr) {
		case outcomeExhausted:
			// The interrupted write may have left a partial file.
			// Drop it so the directory holds exactly the recorded
			// chunks when the verify phase walks it.
			if removeErr := p.storage.RemoveChunk(name); removeErr != nil {
				p.logger.Warn("could not remove partial chunk", "file", name, "error", removeErr)
			}
			p.logger.Warn("storage exhausted, stopping write phase early",
				"chunk", index, "written", len(p.records), "requested", p.count)
			return nil

		case outcomeFatal:
			return fmt.Errorf("writing chunk %d (%s): %w", index, name, writeErr)
		}

		p.records = append(p.records, Record{Index: index, Digest: chunk.DigestBuffer(data)})
		p.bytesWritten += int64(len(data))
		p.progress.ChunkDone(PhaseWrite, index)
	}

	p.logger.Info("write phase complete", "chunks", len(p.records), "bytes", p.bytesWritten)
	return nil
}

// Verify is the second phase: re-read every recorded chunk from
// storage, re-derive its digest, and compare with the record. It walks
// exactly the chunks the write phase recorded — not the requested
// count — in ascending index order.
func (p *Probe) Verify() error {
	p.progress.PhaseStarted(PhaseVerify, len(p.records))
	defer p.progress.PhaseFinished(PhaseVerify)

	for _, record := range p.records {
		name := chunk.FileName(record.Index)

		file, err := p.storage.OpenChunk(name)
		if err != nil {
			return fmt.Errorf("opening chunk %d (%s) for verification: %w", record.Index, name, err)
		}
		digest, consumed, err := chunk.DigestReader(file)
		closeErr := file.Close()
		if err != nil {
			return fmt.Errorf("reading chunk %d (%s): %w", record.Index, name, err)
		}
		if closeErr != nil {
			return fmt.Errorf("closing chunk %d (%s): %w", record.Index, name, closeErr)
		}

		if digest != record.Digest {
			return &VerifyError{Index: record.Index, File: name, Want: record.Digest, Got: digest}
		}

		p.verified++
		p.bytesVerified += consumed
		p.progress.ChunkDone(PhaseVerify, record.Index)
	}

	p.logger.Info("verify phase complete", "chunks", p.verified, "bytes", p.bytesVerified)
	return nil
}

// Records returns the chunk records accumulated by the write phase.
func (p *Probe) Records() []Record {
	return p.records
}

// logStartingConditions logs the requested workload against the space
// the filesystem claims to have. When the request exceeds the claim the
// early stop is expected; the log line makes that visible up front.
func (p *Probe) logStartingConditions() {
	requested := int64(p.count) * p.size
	available, err := p.storage.AvailableBytes()
	if err != nil {
		p.logger.Debug("available space unknown", "error", err)
		p.logger.Info("starting write phase", "chunks", p.count, "chunk_bytes", p.size)
		return
	}

	p.logger.Info("starting write phase",
		"chunks", p.count, "chunk_bytes", p.size,
		"requested_bytes", requested, "available_bytes", available)
	if requested > 0 && uint64(requested) > available {
		p.logger.Warn("requested total exceeds available space, expecting early stop")
	}
}
