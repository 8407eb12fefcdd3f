// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readColumns reads the numeric columns of a .csv or .xlsx file.
// A first row that does not parse as numbers is taken as column names.
func readColumns(path, sheet string) (names []string, cols [][]float64, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path, sheet)
	}
	return nil, nil, fmt.Errorf("unsupported data file %q: need .csv or .xlsx", path)
}

func readCSV(path string) ([]string, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return columns(rows)
}

func readXLSX(path, sheet string) ([]string, [][]float64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	return columns(rows)
}

// columns transposes string rows into float columns, peeling off a
// header row when the first row is not numeric.
func columns(rows [][]string) ([]string, [][]float64, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no data rows")
	}
	n := len(rows[0])
	names := make([]string, n)
	start := 0
	if !numericRow(rows[0]) {
		copy(names, rows[0])
		start = 1
	}
	cols := make([][]float64, n)
	for r, row := range rows[start:] {
		for c := 0; c < n; c++ {
			cell := ""
			if c < len(row) {
				cell = strings.TrimSpace(row[c])
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d, column %d: %q is not a number", start+r+1, c+1, cell)
			}
			cols[c] = append(cols[c], v)
		}
	}
	return names, cols, nil
}

func numericRow(row []string) bool {
	for _, cell := range row {
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
			return false
		}
	}
	return len(row) > 0
}
