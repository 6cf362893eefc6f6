package ast

import "strings"

// SliceText extracts the [r.Start, r.End) substring of src, honoring the
// character-based column convention. It reports false when r reaches outside
// src.
func SliceText(src string, r Range) (string, bool) {
	lines := strings.Split(src, "\n")
	if r.Start.Line < 1 || r.End.Line > len(lines) || r.End.Before(r.Start) {
		return "", false
	}
	if r.Start.Line == r.End.Line {
		return sliceLine(lines[r.Start.Line-1], r.Start.Column, r.End.Column)
	}
	var b strings.Builder
	head, ok := sliceLine(lines[r.Start.Line-1], r.Start.Column, -1)
	if !ok {
		return "", false
	}
	b.WriteString(head)
	for ln := r.Start.Line + 1; ln < r.End.Line; ln++ {
		b.WriteByte('\n')
		b.WriteString(lines[ln-1])
	}
	tail, ok := sliceLine(lines[r.End.Line-1], 1, r.End.Column)
	if !ok {
		return "", false
	}
	b.WriteByte('\n')
	b.WriteString(tail)
	return b.String(), true
}

// sliceLine takes rune columns [from, to) of line; to < 0 means to the end.
func sliceLine(line string, from, to int) (string, bool) {
	runes := []rune(line)
	if from < 1 || from > len(runes)+1 {
		return "", false
	}
	if to < 0 {
		return string(runes[from-1:]), true
	}
	if to < from || to > len(runes)+1 {
		return "", false
	}
	return string(runes[from-1 : to-1]), true
}
