package xieee

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/omeyang/ouikit/pkg/registry/xoui"
)

// maxLineLen 单行上限，超过即报错
const maxLineLen = 1 << 20

var base16Line = regexp.MustCompile(`^\s*([0-9A-Fa-f]{6})\s+\(base 16\)\s+(.*)$`)

// Stats 扫描统计
type Stats struct {
	// Lines 读取的总行数
	Lines int
	// Entries 产出的记录数，包含重复前缀
	Entries int
	// Duplicates 与之前记录前缀相同的记录数
	Duplicates int
	// EmptyNames 因厂商名为空被跳过的行数
	EmptyNames int
	// Latin1Lines 按 ISO-8859-1 解码的行数
	Latin1Lines int
}

// Scanner 逐条读取 oui.txt 中的记录，用法与 [bufio.Scanner] 相同
type Scanner struct {
	sc     *bufio.Scanner
	latin1 *encoding.Decoder
	seen   map[uint32]struct{}
	entry  xoui.Entry
	stats  Stats
	err    error
}

// NewScanner 创建读取 r 的 Scanner
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)
	return &Scanner{
		sc:     sc,
		latin1: charmap.ISO8859_1.NewDecoder(),
		seen:   make(map[uint32]struct{}),
	}
}

// Scan 前进到下一条记录，没有更多记录或出错时返回 false
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.sc.Scan() {
		s.stats.Lines++
		e, ok, err := s.parseLine(s.sc.Bytes())
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.stats.Lines, err)
			return false
		}
		if !ok {
			continue
		}
		if _, dup := s.seen[e.Key()]; dup {
			s.stats.Duplicates++
		}
		s.seen[e.Key()] = struct{}{}
		s.stats.Entries++
		s.entry = e
		return true
	}
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("xieee: read line %d: %w", s.stats.Lines+1, err)
	}
	return false
}

// Entry 返回最近一次 Scan 产出的记录
func (s *Scanner) Entry() xoui.Entry { return s.entry }

// Err 返回扫描过程中的第一个错误，正常结束时为 nil
func (s *Scanner) Err() error { return s.err }

// Stats 返回当前统计
func (s *Scanner) Stats() Stats { return s.stats }

func (s *Scanner) parseLine(raw []byte) (xoui.Entry, bool, error) {
	line, err := s.decode(raw)
	if err != nil {
		return xoui.Entry{}, false, err
	}
	m := base16Line.FindStringSubmatch(line)
	if m == nil {
		return xoui.Entry{}, false, nil
	}

	name := strings.TrimRightFunc(norm.NFC.String(m[2]), unicode.IsSpace)
	if name == "" {
		s.stats.EmptyNames++
		return xoui.Entry{}, false, nil
	}
	id, err := hex.DecodeString(m[1])
	if err != nil {
		return xoui.Entry{}, false, fmt.Errorf("%w: %v", ErrInvalidLine, err)
	}
	e, err := xoui.NewEntry(id, name)
	if err != nil {
		return xoui.Entry{}, false, fmt.Errorf("%w: %w", ErrInvalidLine, err)
	}
	return e, true, nil
}

func (s *Scanner) decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	s.stats.Latin1Lines++
	decoded, err := s.latin1.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: decode ISO-8859-1: %v", ErrInvalidLine, err)
	}
	return string(decoded), nil
}
