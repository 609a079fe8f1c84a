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

// MockChunkStream is designed to be used as a ChunkReadyCallback to collect
// all chunks flushed out of a StatementSink into a set. This is for writing
// tests.
type MockChunkStream struct {
	// All chunks sent to the stream.
	chunks []*Chunk
	// Returned on next call to Send, then cleared.
	nextErr error
}

// SetNextError will cause the next callback (and only the next callback) to
// Send to return an error.
func (s *MockChunkStream) SetNextError(err error) {
	s.nextErr = err
}

// Reset will discard all collected chunks and reset nextErr.
func (s *MockChunkStream) Reset() {
	s.nextErr = nil
	s.chunks = s.chunks[:0]
}

// Send implements ChunkReadyCallback so that this can be a destination of a
// StatementSink.
func (s *MockChunkStream) Send(chunk *Chunk) error {
	s.chunks = append(s.chunks, chunk)
	err := s.nextErr
	if err != nil {
		s.nextErr = nil
	}
	return err
}

// Chunks returns the list of chunks accumulated, each Chunk was from a
// callback to Send.
func (s *MockChunkStream) Chunks() []*Chunk {
	return s.chunks
}

// Flatten returns all the statements previously sent as one flat list.
func (s *MockChunkStream) Flatten() []Statement {
	var all []Statement
	for _, chunk := range s.chunks {
		all = append(all, chunk.Statements...)
	}
	return all
}
