package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/strconv"

	"viewkit/internal/view"
)

// ParseCSS parses a primitive stylesheet: selectors .class, #id, optionally with
// one :state pseudo-class, and blocks of "property: value;". Properties are
// kebab-case attribute names. No combinators, no @rules.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)
	var open []Rule
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() == io.EOF {
				return sheet, nil
			}
			return nil, fmt.Errorf("stylesheet: %w", p.Err())
		case css.BeginRulesetGrammar:
			open = parseSelectors(p.Values())
		case css.DeclarationGrammar:
			if len(open) == 0 {
				continue
			}
			key := camel(string(data))
			val := declValue(p.Values())
			for i := range open {
				setProp(open[i].Attrs, key, val)
			}
		case css.EndRulesetGrammar:
			sheet.Rules = append(sheet.Rules, open...)
			open = nil
		case css.BeginAtRuleGrammar, css.AtRuleGrammar, css.EndAtRuleGrammar:
			open = nil
		}
	}
}

// parseSelectors splits a selector list on commas. Unsupported selectors are
// dropped, and a block with none left is skipped.
func parseSelectors(tokens []css.Token) []Rule {
	var rules []Rule
	var b strings.Builder
	flush := func() {
		if r, ok := parseSelector(b.String()); ok {
			rules = append(rules, r)
		}
		b.Reset()
	}
	for _, t := range tokens {
		if t.TokenType == css.CommaToken {
			flush()
			continue
		}
		b.Write(t.Data)
	}
	flush()
	return rules
}

func parseSelector(s string) (Rule, bool) {
	s = strings.TrimSpace(s)
	target, state, _ := strings.Cut(s, ":")
	if len(target) < 2 || (target[0] != '.' && target[0] != '#') || strings.ContainsAny(target[1:], " .#>+~[:") {
		return Rule{}, false
	}
	r := Rule{Selector: target, Attrs: make(view.Bag)}
	if state != "" {
		if strings.ContainsAny(state, " :") {
			return Rule{}, false
		}
		r.State = strings.ToUpper(state[:1]) + camel(state)[1:]
	}
	return r, true
}

// declValue converts declaration tokens into an attribute value: a lone number
// becomes a float64, a quoted string is unquoted, anything else is the source text.
func declValue(tokens []css.Token) any {
	var parts []css.Token
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken && (len(parts) == 0 || parts[len(parts)-1].TokenType == css.WhitespaceToken) {
			continue
		}
		parts = append(parts, t)
	}
	for len(parts) > 0 && parts[len(parts)-1].TokenType == css.WhitespaceToken {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 1 {
		t := parts[0]
		switch t.TokenType {
		case css.NumberToken:
			if f, n := strconv.ParseFloat(t.Data); n == len(t.Data) {
				return f
			}
		case css.StringToken:
			if len(t.Data) >= 2 {
				return string(t.Data[1 : len(t.Data)-1])
			}
		}
	}
	var b strings.Builder
	for _, t := range parts {
		b.Write(t.Data)
	}
	return b.String()
}
