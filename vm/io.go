// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

const promptText = "Enter an integer: "

// readInput reads a value from the interactive input.
func (i *Instance) readInput() (Cell, error) {
	if f, ok := i.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return 0, errors.Wrap(err, "flush output")
		}
	}
	if i.prompt != nil {
		if _, err := io.WriteString(i.prompt, promptText); err != nil {
			return 0, errors.Wrap(err, "write prompt")
		}
		if f, ok := i.prompt.(flusher); ok {
			if err := f.Flush(); err != nil {
				return 0, errors.Wrap(err, "flush prompt")
			}
		}
	}
	line, err := i.in.ReadString('\n')
	if err != nil {
		// accept a last line without terminator
		if err != io.EOF || line == "" {
			return 0, errors.Wrap(err, "read input")
		}
	}
	line = strings.TrimRight(line, "\r\n")
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedInput, "%q", line)
	}
	return Cell(v), nil
}

// emit sends v to the interactive output, or appends it to the output log.
func (i *Instance) emit(v Cell) error {
	if i.out == nil {
		i.output = append(i.output, v)
		return nil
	}
	var buf [24]byte
	b := strconv.AppendInt(buf[:0], int64(v), 10)
	b = append(b, '\n')
	_, err := i.out.Write(b)
	return errors.Wrap(err, "write output")
}
