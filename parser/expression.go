package parser

import (
	"fmt"

	"github.com/jvanstraten/libcqasm/ast"
	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/lexer"
)

// parseExpression parses the full additive-precedence expression grammar
// (§6.1's "standard" literals/operators, with unary `-` > `**` > `*`/`/` >
// `+`/`-` precedence and right-associative `**`; so `-2**2` parses as
// `(-2)**2`).
func (p *parser) parseExpression() (ast.Expression, error) {
	return p.parseAdditive()
}

func (p *parser) parseAdditive() (ast.Expression, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.Plus) || p.at(lexer.Minus) {
		op := p.advance()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		lhs = combineBinary(op.Kind, lhs, rhs, op.Loc)
	}
	return lhs, nil
}

func (p *parser) parseMultiplicative() (ast.Expression, error) {
	lhs, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.Star) || p.at(lexer.Slash) {
		op := p.advance()
		rhs, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		lhs = combineBinary(op.Kind, lhs, rhs, op.Loc)
	}
	return lhs, nil
}

func (p *parser) parsePower() (ast.Expression, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.StarStar) {
		op := p.advance()
		rhs, err := p.parsePower() // right-associative
		if err != nil {
			return nil, err
		}
		return combineBinary(op.Kind, lhs, rhs, op.Loc), nil
	}
	return lhs, nil
}

func (p *parser) parseUnary() (ast.Expression, error) {
	if p.at(lexer.Minus) {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		n := &ast.Negate{}
		n.SetLocation(op.Loc)
		n.Expr.Set(operand)
		return n, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.LBracket) {
		start := p.cur().Loc
		p.advance()
		idxList, err := p.parseIndexList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBracket); err != nil {
			return nil, err
		}
		idx := &ast.Index{}
		idx.SetLocation(start)
		idx.Expr.Set(expr)
		idx.Indices.Set(idxList)
		expr = idx
	}
	return expr, nil
}

func (p *parser) parseIndexList() (*ast.IndexList, error) {
	list := &ast.IndexList{}
	for {
		entry, err := p.parseIndexEntry()
		if err != nil {
			return nil, err
		}
		list.Items.Append(entry, -1)
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	return list, nil
}

func (p *parser) parseIndexEntry() (ast.IndexEntry, error) {
	start := p.cur().Loc
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.Colon) {
		p.advance()
		last, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		r := &ast.IndexRange{}
		r.SetLocation(start)
		r.First.Set(first)
		r.Last.Set(last)
		return r, nil
	}
	item := &ast.IndexItem{}
	item.SetLocation(start)
	item.Index.Set(first)
	return item, nil
}

func (p *parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.Int:
		p.advance()
		n := &ast.IntegerLiteral{Value: tok.IntValue}
		n.SetLocation(tok.Loc)
		return n, nil
	case lexer.Float:
		p.advance()
		n := &ast.FloatLiteral{Value: tok.FloatValue}
		n.SetLocation(tok.Loc)
		return n, nil
	case lexer.String:
		p.advance()
		n := &ast.StringLiteral{Value: tok.StringValue}
		n.SetLocation(tok.Loc)
		return n, nil
	case lexer.Json:
		p.advance()
		n := &ast.JsonLiteral{Value: tok.StringValue}
		n.SetLocation(tok.Loc)
		return n, nil
	case lexer.LParen:
		p.advance()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return e, nil
	case lexer.LBracket:
		return p.parseMatrixLiteral()
	case lexer.Ident:
		p.advance()
		name := &ast.Identifier{Name: tok.Text}
		name.SetLocation(tok.Loc)
		if p.at(lexer.LParen) {
			p.advance()
			args := &ast.ExpressionList{}
			for !p.at(lexer.RParen) {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args.Items.Append(arg, -1)
				if p.at(lexer.Comma) {
					p.advance()
					continue
				}
				break
			}
			if _, err := p.expect(lexer.RParen); err != nil {
				return nil, err
			}
			call := &ast.FunctionCall{}
			call.SetLocation(tok.Loc)
			call.Name.Set(name)
			call.Arguments.Set(args)
			return call, nil
		}
		return name, nil
	default:
		return nil, fmt.Errorf("unexpected token %s %q in expression", tok.Kind, tok.Text)
	}
}

// parseMatrixLiteral parses `[[ row (';' row)* ]]`, where row is a
// comma-separated expression list. A single row becomes a flat
// MatrixLiteral1; two or more becomes a row-structured MatrixLiteral2 (a
// grammar-level convention adopted because the spec leaves the concrete
// bracket syntax undescribed beyond "flat" vs "rectangular" forms).
func (p *parser) parseMatrixLiteral() (ast.Expression, error) {
	start := p.cur().Loc
	if _, err := p.expect(lexer.LBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBracket); err != nil {
		return nil, err
	}

	var rows [][]ast.Expression
	row, err := p.parseMatrixRow()
	if err != nil {
		return nil, err
	}
	rows = append(rows, row)
	for p.at(lexer.Semicolon) {
		p.advance()
		row, err := p.parseMatrixRow()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if _, err := p.expect(lexer.RBracket); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBracket); err != nil {
		return nil, err
	}

	if len(rows) == 1 {
		list := &ast.ExpressionList{}
		for _, c := range rows[0] {
			list.Items.Append(c, -1)
		}
		m := &ast.MatrixLiteral1{}
		m.SetLocation(start)
		m.Pairs.Set(list)
		return m, nil
	}

	m := &ast.MatrixLiteral2{}
	m.SetLocation(start)
	for _, r := range rows {
		list := &ast.ExpressionList{}
		for _, c := range r {
			list.Items.Append(c, -1)
		}
		m.Rows.Append(list, -1)
	}
	return m, nil
}

func (p *parser) parseMatrixRow() ([]ast.Expression, error) {
	var cells []ast.Expression
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, e)
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	return cells, nil
}

func combineBinary(op lexer.Kind, lhs, rhs ast.Expression, loc diagnostics.Location) ast.Expression {
	type locatable interface {
		SetLocation(diagnostics.Location)
	}
	var out ast.Expression
	switch op {
	case lexer.Plus:
		n := &ast.Add{}
		n.Lhs.Set(lhs)
		n.Rhs.Set(rhs)
		out = n
	case lexer.Minus:
		n := &ast.Subtract{}
		n.Lhs.Set(lhs)
		n.Rhs.Set(rhs)
		out = n
	case lexer.Star:
		n := &ast.Multiply{}
		n.Lhs.Set(lhs)
		n.Rhs.Set(rhs)
		out = n
	case lexer.Slash:
		n := &ast.Divide{}
		n.Lhs.Set(lhs)
		n.Rhs.Set(rhs)
		out = n
	case lexer.StarStar:
		n := &ast.Power{}
		n.Lhs.Set(lhs)
		n.Rhs.Set(rhs)
		out = n
	}
	out.(locatable).SetLocation(loc)
	return out
}
