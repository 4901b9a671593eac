package parser

import (
	"github.com/cwbudde/go-latexast/internal/ast"
	"github.com/cwbudde/go-latexast/internal/errors"
	"github.com/cwbudde/go-latexast/internal/lexer"
	"github.com/cwbudde/go-latexast/internal/symbols"
)

// parseCommand dispatches a COMMAND token: user macros first, then the
// structural command table, then the symbol table, then a generic
// fallback (spec.md §4.3, "Command dispatch (structural commands)").
func (p *Parser) parseCommand() ast.Node {
	tok := p.advance()
	name := tok.Literal

	if m, ok := p.macros.Lookup(name); ok {
		return p.expandMacro(tok, name, m, p.macroDepth)
	}

	switch name {
	case "newcommand":
		return p.parseNewcommand(tok)
	case "frac", "dfrac", "tfrac", "cfrac":
		return p.parseFraction(tok, name)
	case "sqrt":
		return p.parseRoot(tok)
	case "binom", "tbinom", "dbinom":
		return p.parseBinomial(tok, name)
	case "hat", "tilde", "bar", "dot", "ddot", "vec", "widehat",
		"overline", "underline", "overbrace", "underbrace",
		"overrightarrow", "overleftarrow", "cancel":
		return p.parseAccent(tok, name)
	case "overset", "underset":
		return p.parseStack(tok, name)
	case "xrightarrow", "xleftarrow", "xleftrightarrow":
		return p.parseExtensibleArrow(tok, name)
	case "mathbf", "boldsymbol", "mathit", "mathrm", "mathsf", "mathtt",
		"mathbb", "mathfrak", "mathscr", "mathcal", "textbf", "textit":
		return p.parseStyle(tok, name)
	case "displaystyle", "textstyle", "scriptstyle", "scriptscriptstyle":
		return p.parseStyleModifier(tok, name)
	case "text":
		return p.parseTextMode(tok)
	case "color":
		return p.parseColorScope(tok)
	case "textcolor":
		return p.parseTextColor(tok)
	case ",", ":", ";", "!", "quad", "qquad":
		return p.parseSpace(tok, name)
	case "hspace":
		return p.parseHSpace(tok)
	case "left":
		return p.parseDelimited(tok)
	case "right":
		p.issue(errors.KindUnmatchedRight, tok.Pos, "\\right with no matching \\left")
		return &ast.Text{Token: tok, Content: p.readDelimiterGlyph()}
	case "big", "Big", "bigg", "Bigg":
		return p.parseManualSizedDelimiter(tok, name)
	}

	if symbols.IsBigOperator(name) {
		return &ast.BigOperator{Token: tok, Op: "\\" + name}
	}
	if uni, ok := symbols.Resolve(name); ok {
		return &ast.Symbol{Token: tok, Name: name, Unicode: uni}
	}
	return p.parseGenericCommand(tok, name)
}

func (p *Parser) parseFraction(tok lexer.Token, name string) ast.Node {
	num := p.readArg()
	den := p.readArg()
	frac := &ast.Fraction{Token: tok, Numerator: num, Denominator: den}
	switch name {
	case "dfrac":
		return &ast.Style{Token: tok, Content: []ast.Node{frac}, Kind: ast.StyleDisplay}
	case "tfrac":
		return &ast.Style{Token: tok, Content: []ast.Node{frac}, Kind: ast.StyleText}
	default: // frac, cfrac
		return frac
	}
}

func (p *Parser) parseRoot(tok lexer.Token) ast.Node {
	index, hasIndex := p.readOptionalBracket()
	content := p.readArg()
	r := &ast.Root{Token: tok, Content: content}
	if hasIndex {
		r.Index = index
	}
	return r
}

func (p *Parser) parseBinomial(tok lexer.Token, name string) ast.Node {
	top := p.readArg()
	bottom := p.readArg()
	style := ast.BinomialNormal
	switch name {
	case "tbinom":
		style = ast.BinomialText
	case "dbinom":
		style = ast.BinomialDisplay
	}
	return &ast.Binomial{Token: tok, Top: top, Bottom: bottom, Style: style}
}

var accentKinds = map[string]ast.AccentKind{
	"hat": ast.AccentHat, "tilde": ast.AccentTilde, "bar": ast.AccentBar,
	"dot": ast.AccentDot, "ddot": ast.AccentDDot, "vec": ast.AccentVec,
	"widehat": ast.AccentWideHat, "overline": ast.AccentOverline,
	"underline": ast.AccentUnderline, "overbrace": ast.AccentOverbrace,
	"underbrace":     ast.AccentUnderbrace,
	"overrightarrow": ast.AccentOverRightArrow, "overleftarrow": ast.AccentOverLeftArrow,
	"cancel": ast.AccentCancel,
}

func (p *Parser) parseAccent(tok lexer.Token, name string) ast.Node {
	content := p.readArg()
	return &ast.Accent{Token: tok, Content: content, Kind: accentKinds[name]}
}

func (p *Parser) parseStack(tok lexer.Token, name string) ast.Node {
	a := p.readArg()
	b := p.readArg()
	if name == "overset" {
		return &ast.Stack{Token: tok, Base: b, Above: a}
	}
	return &ast.Stack{Token: tok, Base: b, Below: a}
}

func (p *Parser) parseExtensibleArrow(tok lexer.Token, name string) ast.Node {
	below, hasBelow := p.readOptionalBracket()
	above := p.readArg()
	dir := ast.ArrowRight
	switch name {
	case "xleftarrow":
		dir = ast.ArrowLeft
	case "xleftrightarrow":
		dir = ast.ArrowBoth
	}
	arrow := &ast.ExtensibleArrow{Token: tok, Above: above, Direction: dir}
	if hasBelow {
		arrow.Below = below
	}
	return arrow
}

var styleKinds = map[string]ast.StyleKind{
	"mathbf": ast.StyleBold, "boldsymbol": ast.StyleBold,
	"mathit": ast.StyleItalic, "mathrm": ast.StyleRoman,
	"mathsf": ast.StyleSansSerif, "mathtt": ast.StyleTypewriter,
	"mathbb": ast.StyleBlackboardBold, "mathfrak": ast.StyleFraktur,
	"mathscr": ast.StyleScript, "mathcal": ast.StyleCalligraphic,
	"textbf": ast.StyleBold, "textit": ast.StyleItalic,
}

func (p *Parser) parseStyle(tok lexer.Token, name string) ast.Node {
	arg := p.readArg()
	content := []ast.Node{arg}
	if g, ok := arg.(*ast.Group); ok {
		content = g.Children
	}
	return &ast.Style{Token: tok, Content: content, Kind: styleKinds[name]}
}

var styleModifierKinds = map[string]ast.StyleKind{
	"displaystyle": ast.StyleDisplay, "textstyle": ast.StyleText,
	"scriptstyle": ast.StyleScriptStyle, "scriptscriptstyle": ast.StyleScriptScriptStyle,
}

// parseStyleModifier implements the display-style-change commands as a
// Style node with no wrapped Content: they change the current
// container's mode rather than taking an argument (spec.md §4.3,
// "Math-style modifiers ... may be represented as Style").
func (p *Parser) parseStyleModifier(tok lexer.Token, name string) ast.Node {
	return &ast.Style{Token: tok, Kind: styleModifierKinds[name]}
}

func (p *Parser) parseTextMode(tok lexer.Token) ast.Node {
	if p.peek().Type != lexer.LBRACE {
		p.issue(errors.KindUnterminatedGroup, tok.Pos, "\\text requires a {...} argument")
		return &ast.TextMode{Token: tok, Text: ""}
	}
	return &ast.TextMode{Token: tok, Text: tokensToRaw(p.readBalancedGroupTokens())}
}

// parseColorScope implements `\color{name}`, which opens a scope
// consuming the rest of the enclosing container rather than taking a
// braced body (spec.md §4.3).
func (p *Parser) parseColorScope(tok lexer.Token) ast.Node {
	name := ""
	if p.peek().Type == lexer.LBRACE {
		name = tokensToRaw(p.readBalancedGroupTokens())
	}
	rest := p.parseContainer(p.currentStop())
	return &ast.Color{Token: tok, Content: rest, Name: name}
}

func (p *Parser) parseTextColor(tok lexer.Token) ast.Node {
	name := ""
	if p.peek().Type == lexer.LBRACE {
		name = tokensToRaw(p.readBalancedGroupTokens())
	}
	body := p.readArg()
	return &ast.Color{Token: tok, Content: []ast.Node{body}, Name: name}
}

var spaceKinds = map[string]ast.SpaceKind{
	",": ast.SpaceThin, ":": ast.SpaceMedium, ";": ast.SpaceThick,
	"!": ast.SpaceNegativeThin, "quad": ast.SpaceQuad, "qquad": ast.SpaceQQuad,
}

func (p *Parser) parseSpace(tok lexer.Token, name string) ast.Node {
	return &ast.Space{Token: tok, Kind: spaceKinds[name]}
}

func (p *Parser) parseHSpace(tok lexer.Token) ast.Node {
	dim := ""
	if p.peek().Type == lexer.LBRACE {
		dim = tokensToRaw(p.readBalancedGroupTokens())
	}
	return &ast.HSpace{Token: tok, Dimension: dim}
}

// readDelimiterGlyph reads a single delimiter glyph following \left,
// \right, or a \big-family command. Since ordinary delimiter
// characters like '(' are not special to the tokenizer, they usually
// arrive fused into a longer TEXT run; only the first rune is taken as
// the glyph and the remainder is spliced back for continued parsing
// (spec.md §4.3, "<d> is either a single char, a paired-bracket
// command name ..., or '.'").
func (p *Parser) readDelimiterGlyph() string {
	tok := p.peek()
	switch tok.Type {
	case lexer.COMMAND:
		p.advance()
		return symbols.ResolveDelimiter(tok.Literal)
	case lexer.TEXT:
		p.advance()
		runes := []rune(tok.Literal)
		glyph := string(runes[0])
		if len(runes) > 1 {
			p.pushBackText(string(runes[1:]), tok.Pos)
		}
		return symbols.ResolveDelimiter(glyph)
	default:
		p.advance()
		return tok.Literal
	}
}

func (p *Parser) parseDelimited(tok lexer.Token) ast.Node {
	left := p.readDelimiterGlyph()
	var content []ast.Node
	for {
		t := p.peek()
		if t.Type == lexer.EOF {
			p.issue(errors.KindUnterminatedGroup, tok.Pos, "unterminated \\left without a matching \\right")
			return &ast.Delimited{Token: tok, Left: left, Right: ".", Content: content, Scalable: true}
		}
		if t.Type == lexer.COMMAND && t.Literal == "right" {
			p.advance()
			right := p.readDelimiterGlyph()
			return &ast.Delimited{Token: tok, Left: left, Right: right, Content: content, Scalable: true}
		}
		node := p.parsePrimary()
		if node != nil {
			content = append(content, p.attachPostfix(node))
		}
	}
}

func manualScale(name string) ast.DelimiterScale {
	switch name {
	case "big":
		return ast.ScaleBig
	case "Big":
		return ast.ScaleBigUpper
	case "bigg":
		return ast.ScaleBigg
	case "Bigg":
		return ast.ScaleBiggUpper
	}
	return ast.ScaleBig
}

func (p *Parser) parseManualSizedDelimiter(tok lexer.Token, name string) ast.Node {
	glyph := p.readDelimiterGlyph()
	return &ast.ManualSizedDelimiter{Token: tok, Glyph: glyph, Scale: manualScale(name)}
}

// parseGenericCommand handles any command with no structural or
// symbol-table match: optional bracketed options followed by zero or
// more braced group arguments (spec.md §4.3, "if still unmatched").
// Each such command is also recorded as an unknown-command issue.
func (p *Parser) parseGenericCommand(tok lexer.Token, name string) ast.Node {
	p.issue(errors.KindUnknownCommand, tok.Pos, "unknown command \\"+name)
	var options []string
	for p.peek().Type == lexer.LBRACKET {
		p.advance()
		options = append(options, tokensToRaw(p.readUntilRBracket()))
	}
	var args []ast.Node
	for p.peek().Type == lexer.LBRACE {
		args = append(args, p.parseGroup())
	}
	return &ast.Command{Token: tok, Name: name, Args: args, Options: options}
}
