package notebook

import (
	"encoding/json"
	"strings"
)

// Source is multi-line cell text. On disk it is either one string or a list
// of lines each keeping its trailing newline; both decode to the joined text.
type Source string

func (s *Source) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var lines []string
		if err := json.Unmarshal(data, &lines); err != nil {
			return err
		}
		*s = Source(strings.Join(lines, ""))
		return nil
	}
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*s = Source(text)
	return nil
}

func (s Source) MarshalJSON() ([]byte, error) {
	return marshal(s.Lines())
}

// Lines splits the text after every newline, matching Python's
// str.splitlines(keepends=True) for \n-terminated text.
func (s Source) Lines() []string {
	lines := []string{}
	rest := string(s)
	for rest != "" {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			lines = append(lines, rest)
			break
		}
		lines = append(lines, rest[:i+1])
		rest = rest[i+1:]
	}
	return lines
}
