package storage

import (
	"bytes"
	"io"
	"strings"
)

// lineBreaks flattens embedded line breaks so one task always maps to one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// newlines normalizes "\r\n" and bare "\r" to "\n".
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseLines reads one task name per line. "\n", "\r\n" and "\r" all end a
// line, and lines have no length limit. Each line is trimmed of surrounding
// whitespace. Blank lines yield empty names unless skipBlank is set.
func ParseLines(r io.Reader, skipBlank bool) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, nil
	}

	lines := strings.Split(newlines.Replace(string(content)), "\n")
	// A trailing newline terminates the last line rather than starting a new one.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var names []string
	for _, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" && skipBlank {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// SerializeLines renders names as newline-terminated lines.
func SerializeLines(names []string) []byte {
	var buf bytes.Buffer
	for _, name := range names {
		buf.WriteString(lineBreaks.Replace(name))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
