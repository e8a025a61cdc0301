package store

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// maxLineSize bounds a single NDJSON line. Resource objects are small;
// 4MB leaves generous headroom.
const maxLineSize = 4 << 20

// decodeNDJSON reads newline-delimited JSON objects. Blank lines are
// skipped; lines that fail to parse are counted and dropped rather than
// failing the whole object, since upstream data is not guaranteed clean.
func decodeNDJSON(r io.Reader) (resources []map[string]any, badLines int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			badLines++
			continue
		}
		resources = append(resources, obj)
	}

	if err := scanner.Err(); err != nil {
		return nil, badLines, err
	}
	return resources, badLines, nil
}
