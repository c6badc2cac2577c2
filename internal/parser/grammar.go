package parser

import (
	"strconv"

	"cfgpp/internal/diag"
	"cfgpp/internal/token"
	"cfgpp/internal/value"
)

// parseTopLevel parses one document. A document is either a sequence of
// top-level statements (`name { ... }`, `key = value;`, include directives)
// building an implicit root object, or a single value production.
func (p *Parser) parseTopLevel() (*value.Value, error) {
	if p.at(token.EOF) {
		if p.opts.SyntaxOnly {
			return value.Null(), nil
		}
		return value.Object(), nil
	}
	if !p.atTopLevelStatement() {
		return p.parseValue()
	}

	root := value.Object()
	for !p.at(token.EOF) {
		switch {
		case p.at(token.Ident):
			name := p.advance().Text
			var child *value.Value
			var err error
			switch {
			case p.at(token.LBrace):
				child, err = p.parseObjectBody()
			case p.eat(token.Equals):
				child, err = p.parseValue()
			default:
				return nil, p.syntaxError(diag.SynUnexpectedToken, p.peek(),
					"expected '{' or '=' after top-level identifier '"+name+"'")
			}
			if err != nil {
				return nil, err
			}
			if !p.opts.SyntaxOnly {
				if err := root.Set(name, child); err != nil {
					return nil, err
				}
			}
			p.eat(token.Semicolon)

		case p.peek().IsDirective():
			included, err := p.parseInclude()
			if err != nil {
				return nil, err
			}
			if !p.opts.SyntaxOnly && included.IsObject() {
				for _, key := range included.Keys() {
					child, _ := included.Get(key)
					if err := root.Set(key, child); err != nil {
						return nil, err
					}
				}
			}
			p.eat(token.Semicolon)

		default:
			return nil, p.syntaxError(diag.SynUnexpectedToken, p.peek(),
				"unexpected token at top level: "+p.peek().Kind.String())
		}
	}

	if p.opts.SyntaxOnly {
		return value.Null(), nil
	}
	return root, nil
}

// atTopLevelStatement reports whether the stream starts a statement
// sequence rather than a single value: an identifier followed by '{' or
// '=', or an include directive.
func (p *Parser) atTopLevelStatement() bool {
	if p.peek().IsDirective() {
		return true
	}
	if !p.at(token.Ident) || p.cur+1 >= len(p.toks) {
		return false
	}
	next := p.toks[p.cur+1].Kind
	return next == token.LBrace || next == token.Equals
}

// parseValue parses one value production.
func (p *Parser) parseValue() (*value.Value, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.String:
		p.advance()
		return value.Str(tok.Text), nil

	case token.Integer:
		p.advance()
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.syntaxError(diag.SynExpectValue, tok, "invalid integer: "+tok.Text)
		}
		return value.Int(n), nil

	case token.Double:
		p.advance()
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.syntaxError(diag.SynExpectValue, tok, "invalid double: "+tok.Text)
		}
		return value.Double(f), nil

	case token.Boolean:
		p.advance()
		return value.Bool(tok.Text == "true"), nil

	case token.Null:
		p.advance()
		return value.Null(), nil

	case token.LBrace:
		return p.parseObjectBody()

	case token.LBracket:
		return p.parseArray()

	case token.Ident:
		p.advance()
		if p.at(token.LBrace) {
			// Named object in value position yields the inner object.
			return p.parseObjectBody()
		}
		return value.Enum(tok.Text), nil

	case token.KwInclude, token.KwImport:
		return p.parseInclude()

	case token.EnvVar:
		p.advance()
		return p.expandEnvVar(tok)

	default:
		return nil, p.syntaxError(diag.SynUnexpectedToken, tok,
			"unexpected token: "+tok.Kind.String())
	}
}

// parseObjectBody parses '{' (ident '=' value ';'? | ident '{'...'}' ';'?)* '}'.
// The nested-object form is sugar for key = { ... }. Later assignment to an
// existing key overwrites the earlier one.
func (p *Parser) parseObjectBody() (*value.Value, error) {
	if _, err := p.expect(token.LBrace, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}

	obj := value.Object()
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			return nil, p.syntaxError(diag.SynUnclosedBrace, p.peek(), "unclosed object: expected '}'")
		}

		keyTok, err := p.expect(token.Ident, diag.SynExpectIdentifier)
		if err != nil {
			return nil, err
		}

		var child *value.Value
		if p.at(token.LBrace) {
			child, err = p.parseObjectBody()
		} else {
			if _, err = p.expect(token.Equals, diag.SynExpectEquals); err != nil {
				return nil, err
			}
			child, err = p.parseValue()
		}
		if err != nil {
			return nil, err
		}

		if !p.opts.SyntaxOnly {
			if err := obj.Set(keyTok.Text, child); err != nil {
				return nil, err
			}
		}
		p.eat(token.Semicolon)
	}
	p.advance() // '}'

	if p.opts.SyntaxOnly {
		return value.Null(), nil
	}
	return obj, nil
}

// parseArray parses '[' (value ','?)* ']'. Element order is preserved
// exactly as written.
func (p *Parser) parseArray() (*value.Value, error) {
	if _, err := p.expect(token.LBracket, diag.SynUnexpectedToken); err != nil {
		return nil, err
	}

	arr := value.Array()
	for !p.at(token.RBracket) {
		if p.at(token.EOF) {
			return nil, p.syntaxError(diag.SynUnclosedBracket, p.peek(), "unclosed array: expected ']'")
		}

		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if !p.opts.SyntaxOnly {
			if err := arr.Push(elem); err != nil {
				return nil, err
			}
		}
		p.eat(token.Comma)
	}
	p.advance() // ']'

	if p.opts.SyntaxOnly {
		return value.Null(), nil
	}
	return arr, nil
}
