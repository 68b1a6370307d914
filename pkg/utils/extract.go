package utils

import "strings"

// ExtractJSONBlock returns the substring spanning the first '{' through the
// last '}' of raw. The span is greedy: if the text contains more than one
// object, everything between them is included and the caller's JSON parse
// will fail. That matches the extraction contract this service has always
// had; tightening it to a balanced-brace scan would change which model
// responses succeed, so any such change has to be made deliberately.
func ExtractJSONBlock(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrExtraction
	}
	return raw[start : end+1], nil
}
