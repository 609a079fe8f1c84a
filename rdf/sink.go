// Copyright 2026 The Axiolotl Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rdf

import "github.com/jonathanvajda/axiolotl/util/cmp"

// A Chunk carries a batch of statements through a result channel.
type Chunk struct {
	Statements []Statement
}

// ChunkReadyCallback is called when a StatementSink has a ready chunk to
// pass along.
type ChunkReadyCallback func(*Chunk) error

// StatementSink accumulates statements and sends them to the destination in
// large chunks.
type StatementSink struct {
	// Chunks are sent here.
	dest ChunkReadyCallback
	// The next chunk to send.
	res *Chunk
	// When the chunk is considered full and should be flushed.
	flushAtSize int
}

// NewStatementSink constructs a new StatementSink, once 'flushAtSize' items
// have been accumulated the readyCallback function will be called with the
// new chunk.
func NewStatementSink(readyCallback ChunkReadyCallback, flushAtSize int) *StatementSink {
	return &StatementSink{
		dest:        readyCallback,
		res:         new(Chunk),
		flushAtSize: cmp.MaxInt(1, flushAtSize),
	}
}

// Write accumulates the statement to send to the destination. It may also
// flush a chunk of statements. Write returns nil on success, or an error if
// flushing failed.
func (b *StatementSink) Write(stmt Statement) error {
	b.res.Statements = append(b.res.Statements, stmt)
	if len(b.res.Statements) == b.flushAtSize {
		return b.Flush()
	}
	return nil
}

// Flush sends a chunk of statements to the destination, if needed. It
// returns nil on success, or an error if sending the chunk failed.
func (b *StatementSink) Flush() error {
	if len(b.res.Statements) == 0 {
		return nil
	}
	err := b.dest(b.res)
	b.res = new(Chunk)
	return err
}
