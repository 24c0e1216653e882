package digest

import "strings"

// TokenizerBufferSize mirrors the 32-byte stack-buffer threshold the
// original tokenizer used to avoid a heap allocation for short inputs
// (PROXYSQL_TOKENIZER_BUFFSIZE). Go's strings/slices don't get that
// small-buffer optimization from a fixed-size array the way a C
// struct field does, so Split2 does not use it; it's exported only
// for contract-compatibility with callers that assert on it.
const TokenizerBufferSize = 32

// Split2 splits in on any byte in delimiters, skips empty fields, and
// returns the first two non-empty tokens found ("" for a missing
// one). It is the Go shape of the original c_split_2 helper, used
// elsewhere in the proxy to pull "user@host"-style pairs apart.
func Split2(in string, delimiters string) (first, second string) {
	start := 0
	for start < len(in) {
		end := strings.IndexAny(in[start:], delimiters)
		var tok string
		if end < 0 {
			tok = in[start:]
			start = len(in)
		} else {
			tok = in[start : start+end]
			start += end + 1
		}
		if tok == "" {
			continue
		}
		if first == "" {
			first = tok
			continue
		}
		if second == "" {
			second = tok
			break
		}
	}
	return first, second
}
