// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/teradata-labs/tabularuq/pkg/rdb"
)

// CSVPorter reads a comma separated file whose first row is a header.
// Every record must have as many fields as the header.
type CSVPorter struct {
	file   *os.File
	reader *csv.Reader

	headers    []string
	headerRead bool
	err        error
}

var _ Porter = (*CSVPorter)(nil)

// OpenCSV opens the file at path.
func OpenCSV(path string) (*CSVPorter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	reader := csv.NewReader(file)
	return &CSVPorter{file: file, reader: reader}, nil
}

// Headers returns the header row, reading it if no cursor has yet.
func (p *CSVPorter) Headers() ([]string, error) {
	if err := p.readHeader(); err != nil {
		return nil, err
	}
	return append([]string(nil), p.headers...), nil
}

func (p *CSVPorter) readHeader() error {
	if p.headerRead {
		return nil
	}
	headers, err := p.reader.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return rdb.Unknown("failed to read CSV header", err)
	}
	p.headers = headers
	p.headerRead = true
	return nil
}

// Cursor yields the records after the header.
func (p *CSVPorter) Cursor() (iter.Seq[Record], error) {
	if p.file == nil {
		return nil, rdb.NotInitialized("CSV file is closed")
	}
	if err := p.readHeader(); err != nil {
		return nil, err
	}
	p.err = nil

	return func(yield func(Record) bool) {
		for {
			fields, err := p.reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				p.err = rdb.Unknown("failed to read CSV record", err)
				return
			}
			if !yield(Record(fields)) {
				return
			}
		}
	}, nil
}

// Err returns the error that ended the last cursor early.
func (p *CSVPorter) Err() error { return p.err }

// Close closes the file.
func (p *CSVPorter) Close() error {
	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	return err
}
