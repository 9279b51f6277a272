// Package parser is a hand-written recursive-descent parser turning a
// lexer.Token stream into an ast.Root (§3.1, §6.1). Like lexer, it carries
// no grounding dependency: no repo in the retrieval pack ships a parser
// generator or combinator library, and grammar-level parsing is explicitly
// outside this system's core design risk.
package parser

import (
	"fmt"
	"strings"

	"github.com/jvanstraten/libcqasm/ast"
	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/lexer"
	"github.com/jvanstraten/libcqasm/primitives"
)

// Parse tokenizes and parses a complete cQASM source file. It never
// returns a nil Root: on unrecoverable error it returns an
// *ast.ErroneousProgram alongside the diagnostics explaining why.
func Parse(filename, src string) (ast.Root, *diagnostics.List) {
	list := &diagnostics.List{}
	toks, err := lexer.Tokenize(filename, src)
	if err != nil {
		list.Append(lexErrorToDiagnostic(err))
		return &ast.ErroneousProgram{}, list
	}
	p := &parser{toks: toks, errs: list}
	root := p.parseProgram()
	return root, list
}

func lexErrorToDiagnostic(err error) error {
	if le, ok := err.(*lexer.Error); ok {
		return diagnostics.New(diagnostics.KindParseError, le.Msg).WithLocation(le.Loc)
	}
	return diagnostics.New(diagnostics.KindParseError, err.Error())
}

type parser struct {
	toks []lexer.Token
	pos  int
	errs *diagnostics.List
}

func (p *parser) cur() lexer.Token  { return p.toks[p.pos] }
func (p *parser) at(k lexer.Kind) bool { return p.cur().Kind == k }
func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k lexer.Kind) (lexer.Token, error) {
	if !p.at(k) {
		return lexer.Token{}, fmt.Errorf("expected %s, got %s %q", k, p.cur().Kind, p.cur().Text)
	}
	return p.advance(), nil
}

func (p *parser) skipNewlines() {
	for p.at(lexer.Newline) {
		p.advance()
	}
}

// parseProgram parses `version ... \n qubits ... \n` followed by a
// newline-separated statement list.
func (p *parser) parseProgram() ast.Root {
	p.skipNewlines()
	version, err := p.parseVersionLine()
	if err != nil {
		p.fail(err)
		return &ast.ErroneousProgram{}
	}
	p.skipNewlines()
	numQubits, err := p.parseQubitsLine()
	if err != nil {
		p.fail(err)
		return &ast.ErroneousProgram{}
	}
	p.skipNewlines()

	prog := &ast.Program{}
	prog.Version.Set(version)
	prog.NumQubits.Set(numQubits)

	stmts := &ast.StatementList{}
	for !p.at(lexer.EOF) {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			stmts.Items.Append(stmt, -1)
		}
		if p.pos == before {
			// parseStatement failed before consuming anything (e.g. the
			// current token starts none of the statement forms): skip it
			// so a malformed statement can't stall the loop forever.
			p.advance()
		}
		p.skipNewlines()
	}
	prog.Statements.Set(stmts)
	return prog
}

func (p *parser) fail(err error) {
	p.errs.Append(diagnostics.New(diagnostics.KindParseError, "%s", err.Error()).WithLocation(p.cur().Loc))
}

func (p *parser) parseVersionLine() (*ast.Version, error) {
	start := p.cur().Loc
	if _, err := p.expect(lexer.Version); err != nil {
		return nil, err
	}
	var components []int
	switch {
	case p.at(lexer.Float):
		text := p.advance().Text
		parts := strings.SplitN(text, ".", 2)
		for _, part := range parts {
			n := 0
			for _, r := range part {
				n = n*10 + int(r-'0')
			}
			components = append(components, n)
		}
	case p.at(lexer.Int):
		components = append(components, int(p.advance().IntValue))
	default:
		return nil, fmt.Errorf("expected a version number, got %s", p.cur().Kind)
	}
	for p.at(lexer.Dot) {
		p.advance()
		tok, err := p.expect(lexer.Int)
		if err != nil {
			return nil, err
		}
		components = append(components, int(tok.IntValue))
	}
	v := &ast.Version{Items: primitives.Version(components)}
	v.SetLocation(start)
	return v, nil
}

func (p *parser) parseQubitsLine() (ast.Expression, error) {
	if _, err := p.expect(lexer.Qubits); err != nil {
		return nil, err
	}
	return p.parseExpression()
}

// parseStatement parses one top-level statement: a subcircuit header, a
// mapping, an error-model declaration, or an instruction bundle.
func (p *parser) parseStatement() ast.Statement {
	switch {
	case p.at(lexer.Dot):
		return p.parseSubcircuit()
	case p.at(lexer.Map):
		return p.parseMapping()
	case p.at(lexer.Ident) && strings.EqualFold(p.cur().Text, "error_model"):
		return p.parseErrorModelDecl()
	default:
		return p.parseBundleStatement()
	}
}

func (p *parser) parseSubcircuit() ast.Statement {
	start := p.cur().Loc
	p.advance() // '.'
	nameTok, err := p.expect(lexer.Ident)
	if err != nil {
		p.fail(err)
		return &ast.ErroneousStatement{}
	}
	name := &ast.Identifier{Name: nameTok.Text}
	name.SetLocation(nameTok.Loc)

	sc := &ast.Subcircuit{}
	sc.SetLocation(start)
	sc.Name.Set(name)

	if p.at(lexer.LParen) {
		p.advance()
		iter, err := p.parseExpression()
		if err != nil {
			p.fail(err)
			return &ast.ErroneousStatement{}
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			p.fail(err)
			return &ast.ErroneousStatement{}
		}
		sc.Iterations.Set(iter)
	}
	return sc
}

func (p *parser) parseMapping() ast.Statement {
	start := p.cur().Loc
	p.advance() // 'map'
	expr, err := p.parseExpression()
	if err != nil {
		p.fail(err)
		return &ast.ErroneousStatement{}
	}
	if _, err := p.expect(lexer.Comma); err != nil {
		p.fail(err)
		return &ast.ErroneousStatement{}
	}
	aliasTok, err := p.expect(lexer.Ident)
	if err != nil {
		p.fail(err)
		return &ast.ErroneousStatement{}
	}
	alias := &ast.Identifier{Name: aliasTok.Text}
	alias.SetLocation(aliasTok.Loc)

	m := &ast.Mapping{}
	m.SetLocation(start)
	m.Alias.Set(alias)
	m.Expr.Set(expr)
	return m
}

func (p *parser) parseErrorModelDecl() ast.Statement {
	start := p.cur().Loc
	p.advance() // 'error_model'
	nameTok, err := p.expect(lexer.Ident)
	if err != nil {
		p.fail(err)
		return &ast.ErroneousStatement{}
	}
	name := &ast.Identifier{Name: nameTok.Text}
	name.SetLocation(nameTok.Loc)

	operands := &ast.ExpressionList{}
	if p.at(lexer.LParen) {
		p.advance()
		for !p.at(lexer.RParen) {
			e, err := p.parseExpression()
			if err != nil {
				p.fail(err)
				return &ast.ErroneousStatement{}
			}
			operands.Items.Append(e, -1)
			if p.at(lexer.Comma) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			p.fail(err)
			return &ast.ErroneousStatement{}
		}
	}
	decl := &ast.ErrorModelDecl{}
	decl.SetLocation(start)
	decl.Name.Set(name)
	decl.Operands.Set(operands)
	return decl
}

// parseBundleStatement parses one source line (or a {...} block captured
// verbatim by the lexer as a single Json token) into a Bundle.
func (p *parser) parseBundleStatement() ast.Statement {
	if p.at(lexer.Json) {
		tok := p.advance()
		return p.parseBraceBundle(tok)
	}
	start := p.cur().Loc
	bundle := &ast.Bundle{}
	bundle.SetLocation(start)
	for {
		instr := p.parseInstruction()
		if instr == nil {
			return &ast.ErroneousStatement{}
		}
		bundle.Items.Append(instr, -1)
		if p.at(lexer.Pipe) {
			p.advance()
			continue
		}
		break
	}
	return bundle
}

// parseBraceBundle re-lexes the raw text of a `{...}` span captured as a
// single Json token and parses its interior as a sequence of
// pipe/newline-separated instruction lines, per lexer's design note on
// disambiguating JSON literals from multi-line bundle grouping.
func (p *parser) parseBraceBundle(tok lexer.Token) ast.Statement {
	inner := strings.TrimSuffix(strings.TrimPrefix(tok.Text, "{"), "}")
	innerToks, err := lexer.Tokenize(tok.Loc.Filename, inner)
	if err != nil {
		p.errs.Append(lexErrorToDiagnostic(err))
		return &ast.ErroneousStatement{}
	}
	sub := &parser{toks: innerToks, errs: p.errs}
	bundle := &ast.Bundle{}
	bundle.SetLocation(tok.Loc)
	sub.skipNewlines()
	for !sub.at(lexer.EOF) {
		instr := sub.parseInstruction()
		if instr == nil {
			return &ast.ErroneousStatement{}
		}
		bundle.Items.Append(instr, -1)
		if sub.at(lexer.Pipe) {
			sub.advance()
			sub.skipNewlines()
			continue
		}
		sub.skipNewlines()
	}
	return bundle
}

func (p *parser) parseInstruction() *ast.Instruction {
	start := p.cur().Loc
	conditional := false
	if p.at(lexer.CMinus) {
		p.advance()
		conditional = true
	}
	nameTok, err := p.expect(lexer.Ident)
	if err != nil {
		p.fail(err)
		return nil
	}
	name := &ast.Identifier{Name: nameTok.Text}
	name.SetLocation(nameTok.Loc)

	var allOperands []ast.Expression
	for p.exprStartsHere() {
		e, err := p.parseExpression()
		if err != nil {
			p.fail(err)
			return nil
		}
		allOperands = append(allOperands, e)
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}

	instr := &ast.Instruction{}
	instr.SetLocation(start)
	instr.Name.Set(name)

	operands := &ast.ExpressionList{}
	if conditional && len(allOperands) > 0 {
		instr.Condition.Set(allOperands[0])
		allOperands = allOperands[1:]
	}
	for _, o := range allOperands {
		operands.Items.Append(o, -1)
	}
	instr.Operands.Set(operands)

	for p.at(lexer.At) {
		ann := p.parseAnnotation()
		if ann == nil {
			return nil
		}
		instr.Annotations.Append(ann, -1)
	}
	return instr
}

func (p *parser) parseAnnotation() *ast.AnnotationData {
	start := p.cur().Loc
	p.advance() // '@'
	ifaceTok, err := p.expect(lexer.Ident)
	if err != nil {
		p.fail(err)
		return nil
	}
	if _, err := p.expect(lexer.Dot); err != nil {
		p.fail(err)
		return nil
	}
	opTok, err := p.expect(lexer.Ident)
	if err != nil {
		p.fail(err)
		return nil
	}
	iface := &ast.Identifier{Name: ifaceTok.Text}
	iface.SetLocation(ifaceTok.Loc)
	op := &ast.Identifier{Name: opTok.Text}
	op.SetLocation(opTok.Loc)

	ann := &ast.AnnotationData{}
	ann.SetLocation(start)
	ann.Interface.Set(iface)
	ann.Operation.Set(op)

	if p.at(lexer.LParen) {
		p.advance()
		operands := &ast.ExpressionList{}
		for !p.at(lexer.RParen) {
			e, err := p.parseExpression()
			if err != nil {
				p.fail(err)
				return nil
			}
			operands.Items.Append(e, -1)
			if p.at(lexer.Comma) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			p.fail(err)
			return nil
		}
		ann.Operands.Set(operands)
	}
	return ann
}

func (p *parser) exprStartsHere() bool {
	switch p.cur().Kind {
	case lexer.Int, lexer.Float, lexer.String, lexer.Json, lexer.Ident, lexer.LParen, lexer.LBracket, lexer.Minus:
		return true
	default:
		return false
	}
}
