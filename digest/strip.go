package digest

// StripComments returns query with every comment (/* */, #, --)
// removed and whitespace runs collapsed, without touching literals.
// It is the degenerate projection of Digest that a caller reaches for
// when it only wants comments gone, e.g. before logging a query
// verbatim.
func StripComments(query string, cfg Config) string {
	return string(stripCore(cfg, []byte(query)))
}

// StripCommentsBytes is StripComments over a []byte input.
func StripCommentsBytes(query []byte, cfg Config) []byte {
	return stripCore(cfg, query)
}

// stripCore mirrors mysql_query_strip_comments: a pared-down FSM with
// only the three comment modes, no literal folding. The dash-comment
// lookahead here only accepts space/LF/CR/tab after "--", unlike the
// digester, which also starts a comment at any "--" not preceded by
// another '-', whatever byte follows — the two comment detectors are
// independently ported from their respective originals and
// intentionally differ on this edge.
func stripCore(cfg Config, s []byte) []byte {
	n := cfg.clampLen(len(s))
	s = s[:n]

	out := make([]byte, 0, n+1)

	var (
		i             int
		md            mode
		prevChar      byte
		fns           bool
		w0            int
	)

	for i < n {
		if md == modeNormal {
			w0 = len(out)

			switch {
			case prevChar == '/' && s[i] == '*':
				md = modeBlockComment

			case s[i] == '#':
				md = modeLineHash

			case prevChar == '-' && s[i] == '-' && i != n-1 && isDashCommentLookahead(s[i+1]):
				md = modeLineDash

			default:
				if !fns && isSpace(s[i]) {
					i++
					continue
				}
				if !fns {
					fns = true
				}
				if isSpace(prevChar) && isSpace(s[i]) {
					prevChar = ' '
					if len(out) > 0 {
						out[len(out)-1] = ' '
					}
					i++
					continue
				}
			}
		} else {
			switch md {
			case modeBlockComment:
				if prevChar == '*' && s[i] == '/' {
					out = out[:rewindComment(w0, true)]
					prevChar = ' '
					md = modeNormal
					i++
					continue
				}
			case modeLineHash, modeLineDash:
				if s[i] == '\n' || s[i] == '\r' || i == n-1 {
					// A dash comment is recognized on its second '-', so
					// the first one is already in out just before w0.
					out = out[:rewindComment(w0, i == n-1 || md == modeLineDash)]
					prevChar = ' '
					md = modeNormal
					i++
					continue
				}
			}
		}

		b := s[i]
		if isSpace(b) {
			b = ' '
		} else if cfg.Lowercase {
			b = toLowerASCII(b)
		}
		out = append(out, b)
		prevChar = s[i]
		i++
	}

	if len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}

	return out
}

func isDashCommentLookahead(c byte) bool {
	switch c {
	case ' ', '\n', '\r', '\t':
		return true
	}
	return false
}
