package sprechpass

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Model text format, used for the built-in data and for the CLI's -emit
// output. Lines starting with '#' are comments. Two header lines name the
// alphabets, then one "[stage]" section per chain table with one
// "key: v1, v2, ..." line per key; lines starting with whitespace continue
// the previous key. The empty group is a valid value ("no suffix") and is
// written as a literal "" token; an empty key is written as a line starting
// with ":". Group texts containing ',' or '"' cannot be represented.

const encodeWidth = 72

// EncodeModel writes m in the model text format. Keys are emitted in
// ascending order and value order is preserved, so encoding is
// deterministic for a given model.
func EncodeModel(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "vowels %s\n", m.Vowels)
	fmt.Fprintf(bw, "digits %s\n", m.Digits)
	for _, stage := range []Stage{StageStartVowel, StageVowelConsonant, StageConsonantVowel, StageVowelEnd} {
		fmt.Fprintf(bw, "\n[%s]\n", stage)
		table := m.Table(stage)
		for _, key := range table.Keys() {
			values := make([]string, len(table[key]))
			for i, v := range table[key] {
				if v == "" {
					v = `""`
				}
				values[i] = v
			}
			writeWrapped(bw, key+": "+strings.Join(values, ", "))
		}
	}
	return bw.Flush()
}

// writeWrapped breaks a key line at value boundaries so no line exceeds
// encodeWidth, indenting continuations with four spaces.
func writeWrapped(w *bufio.Writer, line string) {
	indent := ""
	for len(line) > encodeWidth {
		cut := strings.LastIndex(line[:encodeWidth+1], " ")
		if cut <= len(indent) {
			break
		}
		w.WriteString(line[:cut] + "\n")
		line = "    " + line[cut+1:]
		indent = "    "
	}
	w.WriteString(line + "\n")
}

// DecodeModel parses the model text format.
func DecodeModel(r io.Reader) (*Model, error) {
	m := &Model{}
	var table ChainTable
	var lastKey string
	haveKey := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Continuation of the previous key's value list.
		if line[0] == ' ' || line[0] == '\t' {
			if table == nil || !haveKey {
				return nil, fmt.Errorf("line %d: continuation without a key", lineNo)
			}
			table[lastKey] = append(table[lastKey], splitValues(line)...)
			continue
		}

		switch {
		case strings.HasPrefix(line, "vowels "):
			m.Vowels = strings.TrimSpace(strings.TrimPrefix(line, "vowels "))
		case strings.HasPrefix(line, "digits "):
			m.Digits = strings.TrimSpace(strings.TrimPrefix(line, "digits "))
		case strings.HasPrefix(line, "["):
			name := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			table = make(ChainTable)
			haveKey = false
			switch name {
			case StageStartVowel.String():
				m.StartVowel = table
			case StageVowelConsonant.String():
				m.VowelConsonant = table
			case StageConsonantVowel.String():
				m.ConsonantVowel = table
			case StageVowelEnd.String():
				m.VowelEnd = table
			default:
				return nil, fmt.Errorf("line %d: unknown stage %q", lineNo, name)
			}
		default:
			if table == nil {
				return nil, fmt.Errorf("line %d: key outside a stage section", lineNo)
			}
			key, rest, ok := strings.Cut(line, ":")
			if !ok {
				return nil, fmt.Errorf("line %d: expected \"key: values\"", lineNo)
			}
			lastKey = strings.TrimSpace(key)
			haveKey = true
			table[lastKey] = append(table[lastKey], splitValues(rest)...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for _, stage := range []Stage{StageStartVowel, StageVowelConsonant, StageConsonantVowel, StageVowelEnd} {
		if len(m.Table(stage)) == 0 {
			return nil, &EmptyTableError{Stage: stage}
		}
	}
	return m, nil
}

// splitValues parses one comma-separated value list. Bare empty fields are
// wrap artifacts (a continued line ends with ','); the empty group is spelled
// with an explicit "" token.
func splitValues(s string) []string {
	var values []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		switch p {
		case "":
			continue
		case `""`:
			values = append(values, "")
		default:
			values = append(values, p)
		}
	}
	return values
}
