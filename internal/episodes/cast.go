package episodes

import (
	"strings"
	"unicode"
)

// ParseCast deserializes a textual list of names, as written by a
// save-as-text round trip: ['Mariska Hargitay', "Ice-T"]. Both quote styles
// and backslash escapes are understood. Input that is empty or not a list of
// strings yields an empty cast; it never fails.
func ParseCast(raw string) Cast {
	p := castParser{src: []rune(strings.TrimSpace(raw))}
	names, ok := p.parse()
	if !ok {
		return Cast{}
	}
	return Cast(names).Normalize()
}

// Normalize trims names, drops empty ones and removes repeats while keeping
// the first occurrence. Normalizing twice gives the same result as once.
func (c Cast) Normalize() Cast {
	out := make(Cast, 0, len(c))
	seen := make(map[string]struct{}, len(c))
	for _, name := range c {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

type castParser struct {
	src []rune
	pos int
}

func (p *castParser) parse() ([]string, bool) {
	if !p.consume('[') {
		return nil, false
	}

	names := []string{}
	p.skipSpace()
	if p.consume(']') {
		return names, p.atEnd()
	}

	for {
		p.skipSpace()
		name, ok := p.quoted()
		if !ok {
			return nil, false
		}
		names = append(names, name)

		p.skipSpace()
		if p.consume(']') {
			return names, p.atEnd()
		}
		if !p.consume(',') {
			return nil, false
		}
		p.skipSpace()
		// trailing comma: ['A', ]
		if p.consume(']') {
			return names, p.atEnd()
		}
	}
}

func (p *castParser) quoted() (string, bool) {
	if p.pos >= len(p.src) {
		return "", false
	}
	quote := p.src[p.pos]
	if quote != '\'' && quote != '"' {
		return "", false
	}
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		p.pos++
		switch r {
		case '\\':
			if p.pos >= len(p.src) {
				return "", false
			}
			b.WriteRune(unescape(p.src[p.pos]))
			p.pos++
		case quote:
			return b.String(), true
		default:
			b.WriteRune(r)
		}
	}
	return "", false
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	default:
		return r
	}
}

func (p *castParser) consume(r rune) bool {
	if p.pos < len(p.src) && p.src[p.pos] == r {
		p.pos++
		return true
	}
	return false
}

func (p *castParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *castParser) atEnd() bool {
	p.skipSpace()
	return p.pos == len(p.src)
}
