package rounds

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/lines"
)

// maxEntriesPerRound bounds the "<count> <color>" entries of a single round.
const maxEntriesPerRound = 3

type parser struct {
	s   string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return &lines.ParseError{Column: p.pos + 1, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.s)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) skipSpaces() {
	for !p.eof() && p.s[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) expect(lit string) error {
	if !strings.HasPrefix(p.s[p.pos:], lit) {
		return p.errorf("expected %q", lit)
	}
	p.pos += len(lit)
	return nil
}

// number reads an unsigned decimal integer.
func (p *parser) number() (int, error) {
	start := p.pos
	n := 0
	for !p.eof() && lines.IsDigit(p.s[p.pos]) {
		n = n*10 + int(p.s[p.pos]-'0')
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected a number")
	}
	return n, nil
}

func (p *parser) color() (Color, error) {
	for c, name := range colorNames {
		if strings.HasPrefix(p.s[p.pos:], name) {
			p.pos += len(name)
			return Color(c), nil
		}
	}
	return 0, p.errorf("expected one of red, green, blue")
}

// separator consumes optional spaces, sep, optional spaces. When sep is not
// present the cursor is left untouched.
func (p *parser) separator(sep byte) bool {
	save := p.pos
	p.skipSpaces()
	if p.peek() != sep {
		p.pos = save
		return false
	}
	p.pos++
	p.skipSpaces()
	return true
}

func (p *parser) round() (Round, error) {
	var r Round
	for entries := 1; ; entries++ {
		n, err := p.number()
		if err != nil {
			return Round{}, err
		}
		p.skipSpaces()
		c, err := p.color()
		if err != nil {
			return Round{}, err
		}
		// A repeated colour overwrites the earlier count.
		r.set(c, n)

		if !p.separator(',') {
			return r, nil
		}
		if entries == maxEntriesPerRound {
			return Round{}, p.errorf("round has more than %d entries", maxEntriesPerRound)
		}
	}
}

// ParseGame parses a single "Game <id>: <round>; <round>..." line.
func ParseGame(line string) (Game, error) {
	p := &parser{s: line}

	if err := p.expect("Game "); err != nil {
		return Game{}, err
	}
	id, err := p.number()
	if err != nil {
		return Game{}, err
	}
	if err := p.expect(": "); err != nil {
		return Game{}, err
	}

	g := Game{ID: id}
	for {
		r, err := p.round()
		if err != nil {
			return Game{}, err
		}
		g.Rounds = append(g.Rounds, r)
		if !p.separator(';') {
			break
		}
	}

	if !p.eof() {
		return Game{}, p.errorf("unexpected trailing input %q", p.s[p.pos:])
	}
	return g, nil
}

// ParseGames parses every line of text as a game. The first malformed line
// aborts parsing; its error carries the 1-based line number.
func ParseGames(text string) ([]Game, error) {
	var games []Game
	for i, line := range lines.Lines(text) {
		g, err := ParseGame(line)
		if err != nil {
			return nil, lines.AtLine(err, i+1)
		}
		games = append(games, g)
	}
	return games, nil
}
