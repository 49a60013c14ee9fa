// Package qc performs quality control on gene by cell count matrices.
package qc

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported matrix format")

// Format of the count matrix on disk.
type Format string

const (
	FormatMTX   Format = "mtx"
	FormatPlain Format = "plain"
	FormatH5    Format = "h5"
)

// CountMatrix is a gene by cell count matrix in cell major order, only
// nonzero entries are stored.
type CountMatrix struct {
	// FeatureLines keeps the feature rows verbatim, one line per gene,
	// so the filtered output carries whatever columns the input had.
	FeatureLines []string
	Barcodes     []string
	Columns      []Column
}

// Column holds the nonzero entries of one cell. Rows index into
// FeatureLines.
type Column struct {
	Rows   []int
	Values []float64
}

// Read loads a count matrix. The feature and barcode paths are only used
// for the mtx format. There is no h5 support, those matrices have to be
// converted to mtx or plain text first.
func Read(format Format, matrix, feature, barcode string) (*CountMatrix, error) {
	switch format {
	case FormatMTX:
		return ReadMTX(matrix, feature, barcode)
	case FormatPlain:
		return ReadPlain(matrix)
	case FormatH5:
		return nil, fmt.Errorf("%w: h5, convert the matrix to mtx or plain text first", ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ReadMTX loads a MatrixMarket coordinate matrix with its feature and
// barcode files, the trio 10x Genomics tools write. All three files may be
// gzip compressed.
func ReadMTX(matrixPath, featurePath, barcodePath string) (*CountMatrix, error) {

	features, err := readLines(featurePath)
	if err != nil {
		return nil, fmt.Errorf("read features: %w", err)
	}

	barcodes, err := readLines(barcodePath)
	if err != nil {
		return nil, fmt.Errorf("read barcodes: %w", err)
	}

	r, err := openMaybeGzip(matrixPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%s: empty matrix file", matrixPath)
	}
	header := strings.Fields(scanner.Text())
	if len(header) < 3 || header[0] != "%%MatrixMarket" || header[1] != "matrix" || header[2] != "coordinate" {
		return nil, fmt.Errorf("%s: not a MatrixMarket coordinate file", matrixPath)
	}

	// Skip remaining comment lines, the next line carries the dimensions.
	var dims []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		dims = strings.Fields(line)
		break
	}
	if len(dims) != 3 {
		return nil, fmt.Errorf("%s: missing dimension line", matrixPath)
	}

	rows, err := strconv.Atoi(dims[0])
	if err != nil {
		return nil, fmt.Errorf("%s: bad row count %q", matrixPath, dims[0])
	}
	cols, err := strconv.Atoi(dims[1])
	if err != nil {
		return nil, fmt.Errorf("%s: bad column count %q", matrixPath, dims[1])
	}

	if rows != len(features) {
		return nil, fmt.Errorf("matrix has %d rows but the feature file has %d lines", rows, len(features))
	}
	if cols != len(barcodes) {
		return nil, fmt.Errorf("matrix has %d columns but the barcode file has %d lines", cols, len(barcodes))
	}

	m := &CountMatrix{
		FeatureLines: features,
		Barcodes:     barcodes,
		Columns:      make([]Column, cols),
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s: bad entry %q", matrixPath, line)
		}

		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s: bad row index %q", matrixPath, fields[0])
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s: bad column index %q", matrixPath, fields[1])
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad value %q", matrixPath, fields[2])
		}

		// Indices are 1-based.
		if row < 1 || row > rows || col < 1 || col > cols {
			return nil, fmt.Errorf("%s: entry %q is out of bounds", matrixPath, line)
		}
		if value == 0 {
			continue
		}

		m.Columns[col-1].Rows = append(m.Columns[col-1].Rows, row-1)
		m.Columns[col-1].Values = append(m.Columns[col-1].Values, value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", matrixPath, err)
	}

	return m, nil
}

// ReadPlain loads a tab separated gene by cell table: first column gene
// names, header row cell barcodes. The header may or may not carry a label
// over the gene column.
func ReadPlain(path string) (*CountMatrix, error) {

	r, err := openMaybeGzip(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	c := csv.NewReader(r)
	c.Comma = '\t'
	c.Comment = '#'
	c.FieldsPerRecord = -1

	header, err := c.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s: %w", path, io.ErrUnexpectedEOF)
		}
		return nil, err
	}

	first, err := c.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s: %w", path, io.ErrUnexpectedEOF)
		}
		return nil, err
	}

	barcodes := header
	if len(header) == len(first)-1 {
		// Header without a label over the gene column.
	} else if len(header) == len(first) {
		barcodes = header[1:]
	} else {
		return nil, fmt.Errorf("%s: header has %d fields but rows have %d", path, len(header), len(first))
	}

	m := &CountMatrix{
		Barcodes: barcodes,
		Columns:  make([]Column, len(barcodes)),
	}

	row := 0
	record := first
	for {
		if len(record) != len(barcodes)+1 {
			return nil, fmt.Errorf("%s: row %q has %d fields, want %d", path, record[0], len(record), len(barcodes)+1)
		}

		m.FeatureLines = append(m.FeatureLines, record[0])
		for i, cell := range record[1:] {
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: bad count %q for gene %q", path, cell, record[0])
			}
			if value == 0 {
				continue
			}
			m.Columns[i].Rows = append(m.Columns[i].Rows, row)
			m.Columns[i].Values = append(m.Columns[i].Values, value)
		}
		row++

		record, err = c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

func readLines(path string) ([]string, error) {

	r, err := openMaybeGzip(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// openMaybeGzip opens path, transparently decompressing .gz files.
func openMaybeGzip(path string) (io.ReadCloser, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &gzipReadCloser{gz: gz, file: f}, nil
}

type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (r *gzipReadCloser) Read(p []byte) (int, error) {
	return r.gz.Read(p)
}

func (r *gzipReadCloser) Close() error {
	if err := r.gz.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
