package parser

// Operator precedence, highest binds tightest. The unary levels sit between
// the binary ones: Not binds looser than the comparisons, the unary sign
// looser only than exponentiation.
const (
	precImpEqv     = 1
	precOrXor      = 2
	precAnd        = 3
	precNot        = 4
	precComparison = 5
	precConcat     = 6
	precAdditive   = 7
	precMod        = 8
	precIntDiv     = 9
	precMultiply   = 10
	precUnarySign  = 11
	precPower      = 12
)

var binaryPrecedence = map[SyntaxKind]int{
	TokenImp:       precImpEqv,
	TokenEqv:       precImpEqv,
	TokenOr:        precOrXor,
	TokenXor:       precOrXor,
	TokenAnd:       precAnd,
	TokenEQ:        precComparison,
	TokenNE:        precComparison,
	TokenLT:        precComparison,
	TokenGT:        precComparison,
	TokenLE:        precComparison,
	TokenGE:        precComparison,
	TokenLike:      precComparison,
	TokenIs:        precComparison,
	TokenAmpersand: precConcat,
	TokenPlus:      precAdditive,
	TokenMinus:     precAdditive,
	TokenMod:       precMod,
	TokenBackslash: precIntDiv,
	TokenStar:      precMultiply,
	TokenSlash:     precMultiply,
	TokenCaret:     precPower,
}

func (p *Parser) parseExpression() *Node {
	return p.parseBinaryExpr(precImpEqv)
}

// parseBinaryExpr is a precedence climber: it folds operators of at least
// minPrec into left-leaning BinaryExpression nodes.
func (p *Parser) parseBinaryExpr(minPrec int) *Node {
	if !p.enter() {
		p.leave()
		return p.exhaustedNode()
	}
	defer p.leave()

	left := p.parseUnaryExpr()
	for {
		prec, ok := binaryPrecedence[p.peek().Kind]
		if !ok || prec < minPrec {
			return left
		}
		node := p.startNode(KindBinaryExpression)
		node.AddChild(left)
		p.bump(node)
		node.AddChild(p.parseBinaryExpr(prec + 1))
		left = p.finishNode(node)
	}
}

func (p *Parser) parseUnaryExpr() *Node {
	switch p.peek().Kind {
	case TokenNot:
		node := p.startNode(KindUnaryExpression)
		p.bump(node)
		node.AddChild(p.parseBinaryExpr(precComparison))
		return p.finishNode(node)
	case TokenMinus, TokenPlus:
		node := p.startNode(KindUnaryExpression)
		p.bump(node)
		node.AddChild(p.parseBinaryExpr(precPower))
		return p.finishNode(node)
	}
	return p.parsePostfixExpression()
}

// parsePostfixExpression parses a primary and its trailing member
// accesses, bang accesses, and call or index argument lists. Calls and
// array indexing share one generic shape; no callee gets its own grammar.
func (p *Parser) parsePostfixExpression() *Node {
	if !p.enter() {
		p.leave()
		return p.exhaustedNode()
	}
	defer p.leave()

	node := p.parsePrimary()
	for {
		switch p.peek().Kind {
		case TokenDot:
			member := p.startNode(KindMemberAccessExpression)
			member.AddChild(node)
			p.bump(member)
			if p.check(TokenIdentifier) || p.peek().Kind.IsKeyword() {
				p.bump(member)
				p.bumpExprSuffix(member)
			} else {
				member.AddChild(p.errorExpression("expected member name after ."))
			}
			node = p.finishNode(member)
		case TokenBang:
			if p.peekN(1).Kind != TokenIdentifier {
				return node
			}
			member := p.startNode(KindMemberAccessExpression)
			member.AddChild(node)
			p.bump(member)
			p.bump(member)
			node = p.finishNode(member)
		case TokenLParen:
			call := p.startNode(KindCallExpression)
			call.AddChild(node)
			call.AddChild(p.parseArgumentList())
			node = p.finishNode(call)
		default:
			return node
		}
	}
}

// functionKeywords are keywords that double as callable names in
// expression position, like `Len(s)` or `Mid(s, 1, 3)`.
var functionKeywords = []SyntaxKind{
	TokenLen, TokenMid, TokenMidB, TokenString, TokenDate, TokenTime,
	TokenError, TokenInput, TokenSeek,
}

func (p *Parser) parsePrimary() *Node {
	kind := p.peek().Kind

	if kind.IsLiteral() {
		node := p.startNode(KindLiteralExpression)
		p.bump(node)
		return p.finishNode(node)
	}

	switch kind {
	case TokenTrue, TokenFalse, TokenNothing, TokenNull, TokenEmpty:
		node := p.startNode(KindLiteralExpression)
		p.bump(node)
		return p.finishNode(node)

	case TokenIdentifier, TokenMe:
		node := p.startNode(KindIdentifierExpression)
		p.bump(node)
		p.bumpExprSuffix(node)
		return p.finishNode(node)

	case TokenDot:
		// Leading-dot member access inside a With block.
		node := p.startNode(KindMemberAccessExpression)
		p.bump(node)
		if p.check(TokenIdentifier) || p.peek().Kind.IsKeyword() {
			p.bump(node)
			p.bumpExprSuffix(node)
		} else {
			node.AddChild(p.errorExpression("expected member name after ."))
		}
		return p.finishNode(node)

	case TokenLParen:
		node := p.startNode(KindParenthesizedExpression)
		p.bump(node)
		node.AddChild(p.parseExpression())
		for p.check(TokenComma) {
			p.bump(node)
			node.AddChild(p.parseExpression())
		}
		p.expect(node, TokenRParen)
		return p.finishNode(node)

	case TokenNew:
		node := p.startNode(KindNewExpression)
		p.bump(node)
		p.parseTypeName(node)
		return p.finishNode(node)

	case TokenAddressOf:
		node := p.startNode(KindAddressOfExpression)
		p.bump(node)
		node.AddChild(p.parsePostfixExpression())
		return p.finishNode(node)

	case TokenTypeOf:
		node := p.startNode(KindTypeOfExpression)
		p.bump(node)
		node.AddChild(p.parseBinaryExpr(precConcat))
		p.expect(node, TokenIs)
		p.parseTypeName(node)
		return p.finishNode(node)
	}

	for _, fn := range functionKeywords {
		if kind == fn {
			node := p.startNode(KindIdentifierExpression)
			p.bump(node)
			return p.finishNode(node)
		}
	}

	return p.errorExpression("expected expression")
}

// bumpExprSuffix consumes a type suffix character glued to the name just
// bumped. A bang followed by a name is member access and stays put.
func (p *Parser) bumpExprSuffix(node *Node) {
	if p.pos >= len(p.tokens) {
		return
	}
	kind := p.tokens[p.pos].Kind
	if kind == TokenBang && p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == TokenIdentifier {
		return
	}
	switch kind {
	case TokenPercent, TokenAmpersand, TokenBang, TokenOctothorpe, TokenAt, TokenDollar:
		node.AddChild(leaf(p.tokens[p.pos]))
		p.pos++
	}
}

// startsExpression reports whether the next token can begin an expression.
func (p *Parser) startsExpression() bool {
	kind := p.peek().Kind
	if kind.IsLiteral() {
		return true
	}
	switch kind {
	case TokenIdentifier, TokenLParen, TokenMinus, TokenPlus, TokenNot,
		TokenNew, TokenAddressOf, TokenTypeOf, TokenMe,
		TokenTrue, TokenFalse, TokenNothing, TokenNull, TokenEmpty, TokenDot:
		return true
	}
	for _, fn := range functionKeywords {
		if kind == fn {
			return true
		}
	}
	return false
}

// parseArgumentList consumes a parenthesized argument list. Omitted
// arguments, as in `f(, 2)`, leave nothing between the commas.
func (p *Parser) parseArgumentList() *Node {
	list := p.startNode(KindArgumentList)
	p.bump(list)
	for !p.check(TokenRParen) && !p.check(TokenNewline) && !p.check(TokenEOF) {
		progress := p.mustProgress(list)
		if p.check(TokenComma) {
			p.bump(list)
			continue
		}
		list.AddChild(p.parseArgument())
		if !progress() {
			break
		}
	}
	p.expect(list, TokenRParen)
	return p.finishNode(list)
}

// parseArgument handles positional and `name:=value` named arguments.
func (p *Parser) parseArgument() *Node {
	if p.check(TokenIdentifier) && p.peekN(1).Kind == TokenColon && p.peekN(2).Kind == TokenEQ {
		node := p.startNode(KindNamedArgument)
		p.bump(node)
		p.bump(node)
		p.bump(node)
		node.AddChild(p.parseExpression())
		return p.finishNode(node)
	}
	return p.parseExpression()
}

// errorExpression records a structural diagnostic and wraps the offending
// token, if any, in an Error node. Unlike statement recovery it consumes at
// most one token: the enclosing construct decides how much to skip.
func (p *Parser) errorExpression(msg string) *Node {
	tok := p.peek()
	p.errorAt(tok.Span.Start, DiagStructural, msg+", found "+tok.Kind.String())
	node := &Node{
		Kind:  KindError,
		Span:  Span{Start: tok.Span.Start, End: tok.Span.End},
		Error: &Error{Message: msg, Got: &tok},
	}
	if !p.atLineEnd() {
		p.bump(node)
	}
	return p.finishNode(node)
}
