package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_EndToEnd(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		cfg      Config
		expected string
	}{
		{
			name:     "simple equality literal",
			sql:      "SELECT * FROM t WHERE id=7",
			cfg:      DefaultConfig(),
			expected: "SELECT * FROM t WHERE id=?",
		},
		{
			name:     "dash comment and duplicated-quote string",
			sql:      "SELECT  *  FROM t -- trailing\nWHERE x='a''b'",
			cfg:      DefaultConfig(),
			expected: "SELECT * FROM t WHERE x=?",
		},
		{
			name:     "grouping compression",
			sql:      "INSERT INTO t VALUES (1,2,3,4,5,6)",
			cfg:      DefaultConfig(),
			expected: "INSERT INTO t VALUES (?,?,?,...)",
		},
		{
			name:     "hint comment re-emitted",
			sql:      "SELECT /*! STRAIGHT_JOIN */ a FROM t",
			cfg:      DefaultConfig(),
			expected: "SELECT STRAIGHT_JOIN a FROM t",
		},
		{
			name:     "NULL folding",
			sql:      "SELECT * FROM t WHERE c IS NULL",
			cfg:      DefaultConfig(),
			expected: "SELECT * FROM t WHERE c IS ?",
		},
		{
			name:     "signed literal trim",
			sql:      "SELECT x + -3 , (-4) FROM t",
			cfg:      DefaultConfig(),
			expected: "SELECT x + ? , (?) FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := Digest(tt.sql, tt.cfg)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestDigest_FirstComment(t *testing.T) {
	out, fc := Digest("/* first */ SELECT 1 /* second */", DefaultConfig())
	assert.Equal(t, "SELECT ?", out)
	assert.Equal(t, "first", fc)
}

func TestDigest_Lowercase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lowercase = true
	out, _ := Digest("SELECT Name FROM Users WHERE Id=5", cfg)
	assert.Equal(t, "select name from users where id=?", out)
	assert.NotContains(t, out, "N")
}

func TestDigest_NoDigits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoDigits = true
	out, _ := Digest("SELECT * FROM t LIMIT 10", cfg)
	assert.Equal(t, "SELECT * FROM t LIMIT ?", out)
}

func TestDigest_GroupingLimitZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroupingLimit = 0
	out, _ := Digest("INSERT INTO t VALUES (1,2,3)", cfg)
	assert.Equal(t, "INSERT INTO t VALUES (...)", out)
}

func TestDigest_MaxQueryLengthTruncates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxQueryLength = 10
	out, _ := Digest("SELECT * FROM very_long_table_name", cfg)
	assert.LessOrEqual(t, len(out), 13)
}

func TestDigest_BlockComment(t *testing.T) {
	out, _ := Digest("SELECT /* noise */ 1", DefaultConfig())
	assert.Equal(t, "SELECT ?", out)
}

func TestDigest_HashComment(t *testing.T) {
	out, _ := Digest("SELECT 1 # trailing comment", DefaultConfig())
	assert.Equal(t, "SELECT ?", out)
}

func TestDigest_DoubleQuotedString(t *testing.T) {
	out, _ := Digest(`SELECT "value" FROM t`, DefaultConfig())
	assert.Equal(t, "SELECT ? FROM t", out)
}

func TestDigest_NoCommentDelimitersLeak(t *testing.T) {
	out, _ := Digest("SELECT 1 /* x */ -- y\nFROM t # z", DefaultConfig())
	assert.NotContains(t, out, "/*")
	assert.NotContains(t, out, "*/")
	assert.NotContains(t, out, "#")
}

func TestDigest_HexLiteral(t *testing.T) {
	out, _ := Digest("SELECT * FROM t WHERE flags=0x1F", DefaultConfig())
	assert.Equal(t, "SELECT * FROM t WHERE flags=?", out)
}

func TestDigest_FloatLiteral(t *testing.T) {
	out, _ := Digest("SELECT * FROM t WHERE ratio=3.14", DefaultConfig())
	assert.Equal(t, "SELECT * FROM t WHERE ratio=?", out)
}

func TestDigestInto_ReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	out, _ := DigestInto([]byte("SELECT 1"), DefaultConfig(), buf)
	assert.Equal(t, "SELECT ?", string(out))
}

func TestDigest_EmptyInput(t *testing.T) {
	out, fc := Digest("", DefaultConfig())
	assert.Equal(t, "", out)
	assert.Equal(t, "", fc)
}
