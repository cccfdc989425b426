/*
 * dump.go, part of gobox.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package nlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	box "github.com/rmera/gobox"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

const cutoffTag = "# cutoff"

// Dump writes the list as text, after a header line with the cutoff:
// one line per point, with the index of the point, its number of neighbors,
// and the neighbors.
//
//	0 2 5 7
//
// If compress is true, the text is zstd-compressed.
func (N *NeighborList) Dump(w io.Writer, compress bool) (err error) {
	out := w
	if compress {
		z, zerr := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if zerr != nil {
			return box.ErrDecorate(zerr, "Dump")
		}
		defer func() {
			if err2 := z.Close(); err == nil && err2 != nil {
				err = err2
			}
		}()
		out = z
	}
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "%s %s\n", cutoffTag, strconv.FormatFloat(N.cutoff, 'g', -1, 64))
	for i, l := range N.lists {
		bw.WriteString(strconv.Itoa(i))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(len(l)))
		for _, j := range l {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(j))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Load reads a list written by Dump, compressed or not.
// The cutoff header has to come before the first point. Other lines
// starting with # are ignored, as are empty lines. Points must appear in order.
func Load(r io.Reader) (*NeighborList, error) {
	br := bufio.NewReader(r)
	var in io.Reader = br
	if magic, err := br.Peek(len(zstdMagic)); err == nil && bytes.Equal(magic, zstdMagic) {
		z, err := zstd.NewReader(br)
		if err != nil {
			return nil, box.ErrDecorate(err, "Load")
		}
		defer z.Close()
		in = z
	}
	nl := &NeighborList{}
	header := false
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			if strings.HasPrefix(text, cutoffTag) {
				c, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(text, cutoffTag)), 64)
				if err != nil {
					return nil, malformed(line, err.Error())
				}
				if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
					return nil, box.NewError(box.InvalidCutoff, fmt.Sprintf("line %d: cutoff must be positive and finite, got %v", line, c), "Load")
				}
				nl.cutoff = c
				header = true
			}
			continue
		}
		if !header {
			return nil, malformed(line, "no cutoff header before the first point")
		}
		fields := strings.Fields(text)
		nums := make([]int, len(fields))
		for k, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, malformed(line, err.Error())
			}
			nums[k] = v
		}
		if len(nums) < 2 {
			return nil, malformed(line, "expected at least an index and a neighbor count")
		}
		if nums[0] != len(nl.lists) {
			return nil, malformed(line, fmt.Sprintf("expected point %d, got %d", len(nl.lists), nums[0]))
		}
		if nums[1] != len(nums)-2 {
			return nil, malformed(line, fmt.Sprintf("%d neighbors announced, %d given", nums[1], len(nums)-2))
		}
		l := nums[2:]
		sort.Ints(l)
		nl.lists = append(nl.lists, l)
	}
	if err := sc.Err(); err != nil {
		return nil, box.ErrDecorate(err, "Load")
	}
	if !header {
		return nil, malformed(line, "no cutoff header")
	}
	n := len(nl.lists)
	for i, l := range nl.lists {
		for _, j := range l {
			if j < 0 || j >= n || j == i {
				return nil, box.NewError(box.IndexOutOfRange, fmt.Sprintf("point %d has an invalid neighbor %d (%d points)", i, j, n), "Load")
			}
		}
	}
	return nl, nil
}

func malformed(line int, msg string) error {
	return box.NewError(box.DimensionMismatch, fmt.Sprintf("line %d: %s", line, msg), "Load")
}
