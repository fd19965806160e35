// Package extract flattens structured files into a newline-separated text
// blob suitable for the delimit pipeline. It is a convenience importer: the
// pipeline itself treats all input uniformly, so extraction only exists to
// pull cell and scalar values out of formats that would otherwise parse as
// noise (quoted CSV rows, JSON punctuation, markup).
package extract

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

// Flatten converts file content into a newline-separated blob based on the
// file extension. Unrecognized extensions pass the content through
// unchanged. Values appear in document order, one per line.
func Flatten(name string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return flattenCSV(data, ',')
	case ".tsv":
		return flattenCSV(data, '\t')
	case ".json":
		return flattenJSON(data)
	case ".xml":
		return flattenXML(data)
	case ".html", ".htm":
		return flattenHTML(data)
	case ".xlsx", ".xlsm":
		return flattenXLSX(data)
	}
	return string(data), nil
}

// Supported reports whether Flatten does more than pass name through.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv", ".json", ".xml", ".html", ".htm", ".xlsx", ".xlsm":
		return true
	}
	return false
}

func flattenCSV(data []byte, comma rune) (string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var cells []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse csv: %w", err)
		}
		for _, cell := range record {
			if cell = strings.TrimSpace(cell); cell != "" {
				cells = append(cells, cell)
			}
		}
	}
	return strings.Join(cells, "\n"), nil
}

// flattenJSON walks the token stream so scalar values keep document order.
func flattenJSON(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		values  []string
		stack   []json.Delim
		keyNext bool
	)
	inObject := func() bool {
		return len(stack) > 0 && stack[len(stack)-1] == '{'
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse json: %w", err)
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				stack = append(stack, v)
			case '}', ']':
				stack = stack[:len(stack)-1]
			}
			keyNext = inObject()
		case string:
			if keyNext {
				// Object key; the value follows.
				keyNext = false
				continue
			}
			keyNext = inObject()
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		case json.Number:
			keyNext = inObject()
			values = append(values, v.String())
		case bool:
			keyNext = inObject()
			values = append(values, fmt.Sprintf("%t", v))
		case nil:
			keyNext = inObject()
		}
	}
	return strings.Join(values, "\n"), nil
}

func flattenXML(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var values []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse xml: %w", err)
		}
		if cd, ok := tok.(xml.CharData); ok {
			if text := strings.TrimSpace(string(cd)); text != "" {
				values = append(values, text)
			}
		}
	}
	return strings.Join(values, "\n"), nil
}

// flattenHTML pulls table cells and list items. Documents without either
// fall back to the full text content, one trimmed line per line.
func flattenHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var values []string
	doc.Find("td, th, li").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			values = append(values, text)
		}
	})
	if len(values) == 0 {
		for _, line := range strings.Split(doc.Text(), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				values = append(values, line)
			}
		}
	}
	return strings.Join(values, "\n"), nil
}

func flattenXLSX(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	var cells []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, cell := range row {
				if cell = strings.TrimSpace(cell); cell != "" {
					cells = append(cells, cell)
				}
			}
		}
	}
	return strings.Join(cells, "\n"), nil
}
