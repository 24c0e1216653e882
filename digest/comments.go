package digest

// FirstCommentMaxLength bounds the captured first-comment payload,
// including its terminating null in the original C contract; the Go
// API simply never returns more than this many bytes of comment text.
const FirstCommentMaxLength = 128

// isHintStripByte reports whether c belongs to the leading run a hint
// comment's post-processing strips before re-emitting the payload:
// the "/*!" prefix remnants, a MySQL version number, and the
// separating spaces.
func isHintStripByte(c byte) bool {
	switch c {
	case '/', '*', '!', ' ':
		return true
	}
	return c >= '0' && c <= '9'
}

// trimHintPrefix returns the index of the first byte in payload that
// is not part of the leading /,*,!,digit,space run, or len(payload)
// if the whole thing is such bytes.
func trimHintPrefix(payload []byte) int {
	i := 0
	for i < len(payload) && isHintStripByte(payload[i]) {
		i++
	}
	return i
}

// finalizeFirstComment renders the accumulated first-comment capture.
// A comment that never reached its closing "*/" (fc != 2) leaves the
// slot untouched in the original C contract; here that means an empty
// string rather than a half-written buffer.
//
// The original only strips the closing "*/" itself (fc_len -= 2),
// leaving the surrounding whitespace the payload started and ended
// with (e.g. "/* first */" captures " first ", not "first"). This
// module trims that leading/trailing run of collapsed-whitespace
// bytes, matching the documented first-comment contract ("first", not
// " first ") the same way trimSignOnly widens past its literal
// source to satisfy the binding end-to-end scenario.
func finalizeFirstComment(fc int, buf []byte, length int) string {
	if fc != 2 {
		return ""
	}
	payload := buf[:length]
	start := 0
	for start < len(payload) && payload[start] == ' ' {
		start++
	}
	end := len(payload)
	for end > start && payload[end-1] == ' ' {
		end--
	}
	return string(payload[start:end])
}
